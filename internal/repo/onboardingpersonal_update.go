// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/telecare/telecare_backend/internal/repo/onboardingpersonal"
	"github.com/telecare/telecare_backend/internal/repo/predicate"
)

// OnboardingPersonalUpdate is the builder for updating OnboardingPersonal entities.
type OnboardingPersonalUpdate struct {
	config
	hooks    []Hook
	mutation *OnboardingPersonalMutation
}

// Where appends a list predicates to the OnboardingPersonalUpdate builder.
func (_u *OnboardingPersonalUpdate) Where(ps ...predicate.OnboardingPersonal) *OnboardingPersonalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OnboardingPersonalUpdate) SetUpdatedAt(v time.Time) *OnboardingPersonalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *OnboardingPersonalUpdate) SetPatientID(v uuid.UUID) *OnboardingPersonalUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *OnboardingPersonalUpdate) SetNillablePatientID(v *uuid.UUID) *OnboardingPersonalUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *OnboardingPersonalUpdate) SetDateOfBirth(v time.Time) *OnboardingPersonalUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *OnboardingPersonalUpdate) SetNillableDateOfBirth(v *time.Time) *OnboardingPersonalUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *OnboardingPersonalUpdate) SetGender(v onboardingpersonal.Gender) *OnboardingPersonalUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *OnboardingPersonalUpdate) SetNillableGender(v *onboardingpersonal.Gender) *OnboardingPersonalUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *OnboardingPersonalUpdate) SetPhone(v string) *OnboardingPersonalUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *OnboardingPersonalUpdate) SetNillablePhone(v *string) *OnboardingPersonalUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *OnboardingPersonalUpdate) SetAddress(v string) *OnboardingPersonalUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *OnboardingPersonalUpdate) SetNillableAddress(v *string) *OnboardingPersonalUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// Mutation returns the OnboardingPersonalMutation object of the builder.
func (_u *OnboardingPersonalUpdate) Mutation() *OnboardingPersonalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OnboardingPersonalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnboardingPersonalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OnboardingPersonalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnboardingPersonalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OnboardingPersonalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := onboardingpersonal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OnboardingPersonalUpdate) check() error {
	if v, ok := _u.mutation.Gender(); ok {
		if err := onboardingpersonal.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "OnboardingPersonal.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := onboardingpersonal.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "OnboardingPersonal.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address(); ok {
		if err := onboardingpersonal.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`repo: validator failed for field "OnboardingPersonal.address": %w`, err)}
		}
	}
	return nil
}

func (_u *OnboardingPersonalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(onboardingpersonal.Table, onboardingpersonal.Columns, sqlgraph.NewFieldSpec(onboardingpersonal.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(onboardingpersonal.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(onboardingpersonal.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(onboardingpersonal.FieldDateOfBirth, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(onboardingpersonal.FieldGender, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(onboardingpersonal.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(onboardingpersonal.FieldAddress, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onboardingpersonal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OnboardingPersonalUpdateOne is the builder for updating a single OnboardingPersonal entity.
type OnboardingPersonalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OnboardingPersonalMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OnboardingPersonalUpdateOne) SetUpdatedAt(v time.Time) *OnboardingPersonalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *OnboardingPersonalUpdateOne) SetPatientID(v uuid.UUID) *OnboardingPersonalUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *OnboardingPersonalUpdateOne) SetNillablePatientID(v *uuid.UUID) *OnboardingPersonalUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *OnboardingPersonalUpdateOne) SetDateOfBirth(v time.Time) *OnboardingPersonalUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *OnboardingPersonalUpdateOne) SetNillableDateOfBirth(v *time.Time) *OnboardingPersonalUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *OnboardingPersonalUpdateOne) SetGender(v onboardingpersonal.Gender) *OnboardingPersonalUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *OnboardingPersonalUpdateOne) SetNillableGender(v *onboardingpersonal.Gender) *OnboardingPersonalUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *OnboardingPersonalUpdateOne) SetPhone(v string) *OnboardingPersonalUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *OnboardingPersonalUpdateOne) SetNillablePhone(v *string) *OnboardingPersonalUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *OnboardingPersonalUpdateOne) SetAddress(v string) *OnboardingPersonalUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *OnboardingPersonalUpdateOne) SetNillableAddress(v *string) *OnboardingPersonalUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// Mutation returns the OnboardingPersonalMutation object of the builder.
func (_u *OnboardingPersonalUpdateOne) Mutation() *OnboardingPersonalMutation {
	return _u.mutation
}

// Where appends a list predicates to the OnboardingPersonalUpdate builder.
func (_u *OnboardingPersonalUpdateOne) Where(ps ...predicate.OnboardingPersonal) *OnboardingPersonalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OnboardingPersonalUpdateOne) Select(field string, fields ...string) *OnboardingPersonalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OnboardingPersonal entity.
func (_u *OnboardingPersonalUpdateOne) Save(ctx context.Context) (*OnboardingPersonal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnboardingPersonalUpdateOne) SaveX(ctx context.Context) *OnboardingPersonal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OnboardingPersonalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnboardingPersonalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OnboardingPersonalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := onboardingpersonal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OnboardingPersonalUpdateOne) check() error {
	if v, ok := _u.mutation.Gender(); ok {
		if err := onboardingpersonal.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "OnboardingPersonal.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := onboardingpersonal.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "OnboardingPersonal.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Address(); ok {
		if err := onboardingpersonal.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`repo: validator failed for field "OnboardingPersonal.address": %w`, err)}
		}
	}
	return nil
}

func (_u *OnboardingPersonalUpdateOne) sqlSave(ctx context.Context) (_node *OnboardingPersonal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(onboardingpersonal.Table, onboardingpersonal.Columns, sqlgraph.NewFieldSpec(onboardingpersonal.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "OnboardingPersonal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, onboardingpersonal.FieldID)
		for _, f := range fields {
			if !onboardingpersonal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != onboardingpersonal.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(onboardingpersonal.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(onboardingpersonal.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(onboardingpersonal.FieldDateOfBirth, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(onboardingpersonal.FieldGender, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(onboardingpersonal.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(onboardingpersonal.FieldAddress, field.TypeString, value)
	}
	_node = &OnboardingPersonal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onboardingpersonal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
