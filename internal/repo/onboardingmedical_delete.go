// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/telecare/telecare_backend/internal/repo/onboardingmedical"
	"github.com/telecare/telecare_backend/internal/repo/predicate"
)

// OnboardingMedicalDelete is the builder for deleting a OnboardingMedical entity.
type OnboardingMedicalDelete struct {
	config
	hooks    []Hook
	mutation *OnboardingMedicalMutation
}

// Where appends a list predicates to the OnboardingMedicalDelete builder.
func (_d *OnboardingMedicalDelete) Where(ps ...predicate.OnboardingMedical) *OnboardingMedicalDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OnboardingMedicalDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OnboardingMedicalDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OnboardingMedicalDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(onboardingmedical.Table, sqlgraph.NewFieldSpec(onboardingmedical.FieldID, field.TypeUUID))
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

// OnboardingMedicalDeleteOne is the builder for deleting a single OnboardingMedical entity.
type OnboardingMedicalDeleteOne struct {
	_d *OnboardingMedicalDelete
}

// Where appends a list predicates to the OnboardingMedicalDelete builder.
func (_d *OnboardingMedicalDeleteOne) Where(ps ...predicate.OnboardingMedical) *OnboardingMedicalDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OnboardingMedicalDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{onboardingmedical.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OnboardingMedicalDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
