// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/telecare/telecare_backend/internal/repo/onboardingmedical"
	"github.com/telecare/telecare_backend/internal/repo/predicate"
)

// OnboardingMedicalUpdate is the builder for updating OnboardingMedical entities.
type OnboardingMedicalUpdate struct {
	config
	hooks    []Hook
	mutation *OnboardingMedicalMutation
}

// Where appends a list predicates to the OnboardingMedicalUpdate builder.
func (_u *OnboardingMedicalUpdate) Where(ps ...predicate.OnboardingMedical) *OnboardingMedicalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OnboardingMedicalUpdate) SetUpdatedAt(v time.Time) *OnboardingMedicalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *OnboardingMedicalUpdate) SetPatientID(v uuid.UUID) *OnboardingMedicalUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *OnboardingMedicalUpdate) SetNillablePatientID(v *uuid.UUID) *OnboardingMedicalUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *OnboardingMedicalUpdate) SetAllergies(v []string) *OnboardingMedicalUpdate {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *OnboardingMedicalUpdate) AppendAllergies(v []string) *OnboardingMedicalUpdate {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *OnboardingMedicalUpdate) ClearAllergies() *OnboardingMedicalUpdate {
	_u.mutation.ClearAllergies()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *OnboardingMedicalUpdate) SetConditions(v []string) *OnboardingMedicalUpdate {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *OnboardingMedicalUpdate) AppendConditions(v []string) *OnboardingMedicalUpdate {
	_u.mutation.AppendConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *OnboardingMedicalUpdate) ClearConditions() *OnboardingMedicalUpdate {
	_u.mutation.ClearConditions()
	return _u
}

// SetMedications sets the "medications" field.
func (_u *OnboardingMedicalUpdate) SetMedications(v []string) *OnboardingMedicalUpdate {
	_u.mutation.SetMedications(v)
	return _u
}

// AppendMedications appends value to the "medications" field.
func (_u *OnboardingMedicalUpdate) AppendMedications(v []string) *OnboardingMedicalUpdate {
	_u.mutation.AppendMedications(v)
	return _u
}

// ClearMedications clears the value of the "medications" field.
func (_u *OnboardingMedicalUpdate) ClearMedications() *OnboardingMedicalUpdate {
	_u.mutation.ClearMedications()
	return _u
}

// SetPrimaryConcern sets the "primary_concern" field.
func (_u *OnboardingMedicalUpdate) SetPrimaryConcern(v string) *OnboardingMedicalUpdate {
	_u.mutation.SetPrimaryConcern(v)
	return _u
}

// SetNillablePrimaryConcern sets the "primary_concern" field if the given value is not nil.
func (_u *OnboardingMedicalUpdate) SetNillablePrimaryConcern(v *string) *OnboardingMedicalUpdate {
	if v != nil {
		_u.SetPrimaryConcern(*v)
	}
	return _u
}

// Mutation returns the OnboardingMedicalMutation object of the builder.
func (_u *OnboardingMedicalUpdate) Mutation() *OnboardingMedicalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OnboardingMedicalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnboardingMedicalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OnboardingMedicalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnboardingMedicalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OnboardingMedicalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := onboardingmedical.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OnboardingMedicalUpdate) check() error {
	if v, ok := _u.mutation.PrimaryConcern(); ok {
		if err := onboardingmedical.PrimaryConcernValidator(v); err != nil {
			return &ValidationError{Name: "primary_concern", err: fmt.Errorf(`repo: validator failed for field "OnboardingMedical.primary_concern": %w`, err)}
		}
	}
	return nil
}

func (_u *OnboardingMedicalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(onboardingmedical.Table, onboardingmedical.Columns, sqlgraph.NewFieldSpec(onboardingmedical.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(onboardingmedical.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(onboardingmedical.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(onboardingmedical.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, onboardingmedical.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(onboardingmedical.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(onboardingmedical.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, onboardingmedical.FieldConditions, value)
		})
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(onboardingmedical.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Medications(); ok {
		_spec.SetField(onboardingmedical.FieldMedications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, onboardingmedical.FieldMedications, value)
		})
	}
	if _u.mutation.MedicationsCleared() {
		_spec.ClearField(onboardingmedical.FieldMedications, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrimaryConcern(); ok {
		_spec.SetField(onboardingmedical.FieldPrimaryConcern, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onboardingmedical.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OnboardingMedicalUpdateOne is the builder for updating a single OnboardingMedical entity.
type OnboardingMedicalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OnboardingMedicalMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OnboardingMedicalUpdateOne) SetUpdatedAt(v time.Time) *OnboardingMedicalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *OnboardingMedicalUpdateOne) SetPatientID(v uuid.UUID) *OnboardingMedicalUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *OnboardingMedicalUpdateOne) SetNillablePatientID(v *uuid.UUID) *OnboardingMedicalUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *OnboardingMedicalUpdateOne) SetAllergies(v []string) *OnboardingMedicalUpdateOne {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *OnboardingMedicalUpdateOne) AppendAllergies(v []string) *OnboardingMedicalUpdateOne {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *OnboardingMedicalUpdateOne) ClearAllergies() *OnboardingMedicalUpdateOne {
	_u.mutation.ClearAllergies()
	return _u
}

// SetConditions sets the "conditions" field.
func (_u *OnboardingMedicalUpdateOne) SetConditions(v []string) *OnboardingMedicalUpdateOne {
	_u.mutation.SetConditions(v)
	return _u
}

// AppendConditions appends value to the "conditions" field.
func (_u *OnboardingMedicalUpdateOne) AppendConditions(v []string) *OnboardingMedicalUpdateOne {
	_u.mutation.AppendConditions(v)
	return _u
}

// ClearConditions clears the value of the "conditions" field.
func (_u *OnboardingMedicalUpdateOne) ClearConditions() *OnboardingMedicalUpdateOne {
	_u.mutation.ClearConditions()
	return _u
}

// SetMedications sets the "medications" field.
func (_u *OnboardingMedicalUpdateOne) SetMedications(v []string) *OnboardingMedicalUpdateOne {
	_u.mutation.SetMedications(v)
	return _u
}

// AppendMedications appends value to the "medications" field.
func (_u *OnboardingMedicalUpdateOne) AppendMedications(v []string) *OnboardingMedicalUpdateOne {
	_u.mutation.AppendMedications(v)
	return _u
}

// ClearMedications clears the value of the "medications" field.
func (_u *OnboardingMedicalUpdateOne) ClearMedications() *OnboardingMedicalUpdateOne {
	_u.mutation.ClearMedications()
	return _u
}

// SetPrimaryConcern sets the "primary_concern" field.
func (_u *OnboardingMedicalUpdateOne) SetPrimaryConcern(v string) *OnboardingMedicalUpdateOne {
	_u.mutation.SetPrimaryConcern(v)
	return _u
}

// SetNillablePrimaryConcern sets the "primary_concern" field if the given value is not nil.
func (_u *OnboardingMedicalUpdateOne) SetNillablePrimaryConcern(v *string) *OnboardingMedicalUpdateOne {
	if v != nil {
		_u.SetPrimaryConcern(*v)
	}
	return _u
}

// Mutation returns the OnboardingMedicalMutation object of the builder.
func (_u *OnboardingMedicalUpdateOne) Mutation() *OnboardingMedicalMutation {
	return _u.mutation
}

// Where appends a list predicates to the OnboardingMedicalUpdate builder.
func (_u *OnboardingMedicalUpdateOne) Where(ps ...predicate.OnboardingMedical) *OnboardingMedicalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OnboardingMedicalUpdateOne) Select(field string, fields ...string) *OnboardingMedicalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OnboardingMedical entity.
func (_u *OnboardingMedicalUpdateOne) Save(ctx context.Context) (*OnboardingMedical, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnboardingMedicalUpdateOne) SaveX(ctx context.Context) *OnboardingMedical {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OnboardingMedicalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnboardingMedicalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OnboardingMedicalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := onboardingmedical.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OnboardingMedicalUpdateOne) check() error {
	if v, ok := _u.mutation.PrimaryConcern(); ok {
		if err := onboardingmedical.PrimaryConcernValidator(v); err != nil {
			return &ValidationError{Name: "primary_concern", err: fmt.Errorf(`repo: validator failed for field "OnboardingMedical.primary_concern": %w`, err)}
		}
	}
	return nil
}

func (_u *OnboardingMedicalUpdateOne) sqlSave(ctx context.Context) (_node *OnboardingMedical, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(onboardingmedical.Table, onboardingmedical.Columns, sqlgraph.NewFieldSpec(onboardingmedical.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "OnboardingMedical.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, onboardingmedical.FieldID)
		for _, f := range fields {
			if !onboardingmedical.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != onboardingmedical.FieldID {
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
		_spec.SetField(onboardingmedical.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(onboardingmedical.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(onboardingmedical.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, onboardingmedical.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(onboardingmedical.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Conditions(); ok {
		_spec.SetField(onboardingmedical.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, onboardingmedical.FieldConditions, value)
		})
	}
	if _u.mutation.ConditionsCleared() {
		_spec.ClearField(onboardingmedical.FieldConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Medications(); ok {
		_spec.SetField(onboardingmedical.FieldMedications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, onboardingmedical.FieldMedications, value)
		})
	}
	if _u.mutation.MedicationsCleared() {
		_spec.ClearField(onboardingmedical.FieldMedications, field.TypeJSON)
	}
	if value, ok := _u.mutation.PrimaryConcern(); ok {
		_spec.SetField(onboardingmedical.FieldPrimaryConcern, field.TypeString, value)
	}
	_node = &OnboardingMedical{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onboardingmedical.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
