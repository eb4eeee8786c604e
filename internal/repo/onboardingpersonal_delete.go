// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/telecare/telecare_backend/internal/repo/onboardingpersonal"
	"github.com/telecare/telecare_backend/internal/repo/predicate"
)

// OnboardingPersonalDelete is the builder for deleting a OnboardingPersonal entity.
type OnboardingPersonalDelete struct {
	config
	hooks    []Hook
	mutation *OnboardingPersonalMutation
}

// Where appends a list predicates to the OnboardingPersonalDelete builder.
func (_d *OnboardingPersonalDelete) Where(ps ...predicate.OnboardingPersonal) *OnboardingPersonalDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OnboardingPersonalDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OnboardingPersonalDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OnboardingPersonalDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(onboardingpersonal.Table, sqlgraph.NewFieldSpec(onboardingpersonal.FieldID, field.TypeUUID))
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

// OnboardingPersonalDeleteOne is the builder for deleting a single OnboardingPersonal entity.
type OnboardingPersonalDeleteOne struct {
	_d *OnboardingPersonalDelete
}

// Where appends a list predicates to the OnboardingPersonalDelete builder.
func (_d *OnboardingPersonalDeleteOne) Where(ps ...predicate.OnboardingPersonal) *OnboardingPersonalDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OnboardingPersonalDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{onboardingpersonal.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OnboardingPersonalDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
