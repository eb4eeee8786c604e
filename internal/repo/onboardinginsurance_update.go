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
	"github.com/telecare/telecare_backend/internal/repo/onboardinginsurance"
	"github.com/telecare/telecare_backend/internal/repo/predicate"
)

// OnboardingInsuranceUpdate is the builder for updating OnboardingInsurance entities.
type OnboardingInsuranceUpdate struct {
	config
	hooks    []Hook
	mutation *OnboardingInsuranceMutation
}

// Where appends a list predicates to the OnboardingInsuranceUpdate builder.
func (_u *OnboardingInsuranceUpdate) Where(ps ...predicate.OnboardingInsurance) *OnboardingInsuranceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OnboardingInsuranceUpdate) SetUpdatedAt(v time.Time) *OnboardingInsuranceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *OnboardingInsuranceUpdate) SetPatientID(v uuid.UUID) *OnboardingInsuranceUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *OnboardingInsuranceUpdate) SetNillablePatientID(v *uuid.UUID) *OnboardingInsuranceUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *OnboardingInsuranceUpdate) SetProvider(v string) *OnboardingInsuranceUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *OnboardingInsuranceUpdate) SetNillableProvider(v *string) *OnboardingInsuranceUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetMemberIDEncrypted sets the "member_id_encrypted" field.
func (_u *OnboardingInsuranceUpdate) SetMemberIDEncrypted(v string) *OnboardingInsuranceUpdate {
	_u.mutation.SetMemberIDEncrypted(v)
	return _u
}

// SetNillableMemberIDEncrypted sets the "member_id_encrypted" field if the given value is not nil.
func (_u *OnboardingInsuranceUpdate) SetNillableMemberIDEncrypted(v *string) *OnboardingInsuranceUpdate {
	if v != nil {
		_u.SetMemberIDEncrypted(*v)
	}
	return _u
}

// SetPreferredDoctorID sets the "preferred_doctor_id" field.
func (_u *OnboardingInsuranceUpdate) SetPreferredDoctorID(v uuid.UUID) *OnboardingInsuranceUpdate {
	_u.mutation.SetPreferredDoctorID(v)
	return _u
}

// SetNillablePreferredDoctorID sets the "preferred_doctor_id" field if the given value is not nil.
func (_u *OnboardingInsuranceUpdate) SetNillablePreferredDoctorID(v *uuid.UUID) *OnboardingInsuranceUpdate {
	if v != nil {
		_u.SetPreferredDoctorID(*v)
	}
	return _u
}

// ClearPreferredDoctorID clears the value of the "preferred_doctor_id" field.
func (_u *OnboardingInsuranceUpdate) ClearPreferredDoctorID() *OnboardingInsuranceUpdate {
	_u.mutation.ClearPreferredDoctorID()
	return _u
}

// Mutation returns the OnboardingInsuranceMutation object of the builder.
func (_u *OnboardingInsuranceUpdate) Mutation() *OnboardingInsuranceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OnboardingInsuranceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnboardingInsuranceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OnboardingInsuranceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnboardingInsuranceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OnboardingInsuranceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := onboardinginsurance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OnboardingInsuranceUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := onboardinginsurance.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "OnboardingInsurance.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *OnboardingInsuranceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(onboardinginsurance.Table, onboardinginsurance.Columns, sqlgraph.NewFieldSpec(onboardinginsurance.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(onboardinginsurance.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(onboardinginsurance.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(onboardinginsurance.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemberIDEncrypted(); ok {
		_spec.SetField(onboardinginsurance.FieldMemberIDEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredDoctorID(); ok {
		_spec.SetField(onboardinginsurance.FieldPreferredDoctorID, field.TypeUUID, value)
	}
	if _u.mutation.PreferredDoctorIDCleared() {
		_spec.ClearField(onboardinginsurance.FieldPreferredDoctorID, field.TypeUUID)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onboardinginsurance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OnboardingInsuranceUpdateOne is the builder for updating a single OnboardingInsurance entity.
type OnboardingInsuranceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OnboardingInsuranceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OnboardingInsuranceUpdateOne) SetUpdatedAt(v time.Time) *OnboardingInsuranceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *OnboardingInsuranceUpdateOne) SetPatientID(v uuid.UUID) *OnboardingInsuranceUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *OnboardingInsuranceUpdateOne) SetNillablePatientID(v *uuid.UUID) *OnboardingInsuranceUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *OnboardingInsuranceUpdateOne) SetProvider(v string) *OnboardingInsuranceUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *OnboardingInsuranceUpdateOne) SetNillableProvider(v *string) *OnboardingInsuranceUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetMemberIDEncrypted sets the "member_id_encrypted" field.
func (_u *OnboardingInsuranceUpdateOne) SetMemberIDEncrypted(v string) *OnboardingInsuranceUpdateOne {
	_u.mutation.SetMemberIDEncrypted(v)
	return _u
}

// SetNillableMemberIDEncrypted sets the "member_id_encrypted" field if the given value is not nil.
func (_u *OnboardingInsuranceUpdateOne) SetNillableMemberIDEncrypted(v *string) *OnboardingInsuranceUpdateOne {
	if v != nil {
		_u.SetMemberIDEncrypted(*v)
	}
	return _u
}

// SetPreferredDoctorID sets the "preferred_doctor_id" field.
func (_u *OnboardingInsuranceUpdateOne) SetPreferredDoctorID(v uuid.UUID) *OnboardingInsuranceUpdateOne {
	_u.mutation.SetPreferredDoctorID(v)
	return _u
}

// SetNillablePreferredDoctorID sets the "preferred_doctor_id" field if the given value is not nil.
func (_u *OnboardingInsuranceUpdateOne) SetNillablePreferredDoctorID(v *uuid.UUID) *OnboardingInsuranceUpdateOne {
	if v != nil {
		_u.SetPreferredDoctorID(*v)
	}
	return _u
}

// ClearPreferredDoctorID clears the value of the "preferred_doctor_id" field.
func (_u *OnboardingInsuranceUpdateOne) ClearPreferredDoctorID() *OnboardingInsuranceUpdateOne {
	_u.mutation.ClearPreferredDoctorID()
	return _u
}

// Mutation returns the OnboardingInsuranceMutation object of the builder.
func (_u *OnboardingInsuranceUpdateOne) Mutation() *OnboardingInsuranceMutation {
	return _u.mutation
}

// Where appends a list predicates to the OnboardingInsuranceUpdate builder.
func (_u *OnboardingInsuranceUpdateOne) Where(ps ...predicate.OnboardingInsurance) *OnboardingInsuranceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OnboardingInsuranceUpdateOne) Select(field string, fields ...string) *OnboardingInsuranceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OnboardingInsurance entity.
func (_u *OnboardingInsuranceUpdateOne) Save(ctx context.Context) (*OnboardingInsurance, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnboardingInsuranceUpdateOne) SaveX(ctx context.Context) *OnboardingInsurance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OnboardingInsuranceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnboardingInsuranceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OnboardingInsuranceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := onboardinginsurance.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OnboardingInsuranceUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := onboardinginsurance.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "OnboardingInsurance.provider": %w`, err)}
		}
	}
	return nil
}

func (_u *OnboardingInsuranceUpdateOne) sqlSave(ctx context.Context) (_node *OnboardingInsurance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(onboardinginsurance.Table, onboardinginsurance.Columns, sqlgraph.NewFieldSpec(onboardinginsurance.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "OnboardingInsurance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, onboardinginsurance.FieldID)
		for _, f := range fields {
			if !onboardinginsurance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != onboardinginsurance.FieldID {
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
		_spec.SetField(onboardinginsurance.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(onboardinginsurance.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(onboardinginsurance.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemberIDEncrypted(); ok {
		_spec.SetField(onboardinginsurance.FieldMemberIDEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.PreferredDoctorID(); ok {
		_spec.SetField(onboardinginsurance.FieldPreferredDoctorID, field.TypeUUID, value)
	}
	if _u.mutation.PreferredDoctorIDCleared() {
		_spec.ClearField(onboardinginsurance.FieldPreferredDoctorID, field.TypeUUID)
	}
	_node = &OnboardingInsurance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onboardinginsurance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
