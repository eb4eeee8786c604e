// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/telecare/telecare_backend/internal/repo/onboardinginsurance"
	"github.com/telecare/telecare_backend/internal/repo/predicate"
)

// OnboardingInsuranceDelete is the builder for deleting a OnboardingInsurance entity.
type OnboardingInsuranceDelete struct {
	config
	hooks    []Hook
	mutation *OnboardingInsuranceMutation
}

// Where appends a list predicates to the OnboardingInsuranceDelete builder.
func (_d *OnboardingInsuranceDelete) Where(ps ...predicate.OnboardingInsurance) *OnboardingInsuranceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OnboardingInsuranceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OnboardingInsuranceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OnboardingInsuranceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(onboardinginsurance.Table, sqlgraph.NewFieldSpec(onboardinginsurance.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// OnboardingInsuranceDeleteOne is the builder for deleting a single OnboardingInsurance entity.
type OnboardingInsuranceDeleteOne struct {
	_d *OnboardingInsuranceDelete
}

// Where appends a list predicates to the OnboardingInsuranceDelete builder.
func (_d *OnboardingInsuranceDeleteOne) Where(ps ...predicate.OnboardingInsurance) *OnboardingInsuranceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OnboardingInsuranceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{onboardinginsurance.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OnboardingInsuranceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
