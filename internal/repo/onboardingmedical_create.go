// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/telecare/telecare_backend/internal/repo/onboardingmedical"
)

// OnboardingMedicalCreate is the builder for creating a OnboardingMedical entity.
type OnboardingMedicalCreate struct {
	config
	mutation *OnboardingMedicalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *OnboardingMedicalCreate) SetCreatedAt(v time.Time) *OnboardingMedicalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OnboardingMedicalCreate) SetNillableCreatedAt(v *time.Time) *OnboardingMedicalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OnboardingMedicalCreate) SetUpdatedAt(v time.Time) *OnboardingMedicalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OnboardingMedicalCreate) SetNillableUpdatedAt(v *time.Time) *OnboardingMedicalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *OnboardingMedicalCreate) SetPatientID(v uuid.UUID) *OnboardingMedicalCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetAllergies sets the "allergies" field.
func (_c *OnboardingMedicalCreate) SetAllergies(v []string) *OnboardingMedicalCreate {
	_c.mutation.SetAllergies(v)
	return _c
}

// SetConditions sets the "conditions" field.
func (_c *OnboardingMedicalCreate) SetConditions(v []string) *OnboardingMedicalCreate {
	_c.mutation.SetConditions(v)
	return _c
}

// SetMedications sets the "medications" field.
func (_c *OnboardingMedicalCreate) SetMedications(v []string) *OnboardingMedicalCreate {
	_c.mutation.SetMedications(v)
	return _c
}

// SetPrimaryConcern sets the "primary_concern" field.
func (_c *OnboardingMedicalCreate) SetPrimaryConcern(v string) *OnboardingMedicalCreate {
	_c.mutation.SetPrimaryConcern(v)
	return _c
}

// SetID sets the "id" field.
func (_c *OnboardingMedicalCreate) SetID(v uuid.UUID) *OnboardingMedicalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OnboardingMedicalCreate) SetNillableID(v *uuid.UUID) *OnboardingMedicalCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the OnboardingMedicalMutation object of the builder.
func (_c *OnboardingMedicalCreate) Mutation() *OnboardingMedicalMutation {
	return _c.mutation
}

// Save creates the OnboardingMedical in the database.
func (_c *OnboardingMedicalCreate) Save(ctx context.Context) (*OnboardingMedical, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OnboardingMedicalCreate) SaveX(ctx context.Context) *OnboardingMedical {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnboardingMedicalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnboardingMedicalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OnboardingMedicalCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := onboardingmedical.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := onboardingmedical.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := onboardingmedical.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OnboardingMedicalCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "OnboardingMedical.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "OnboardingMedical.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "OnboardingMedical.patient_id"`)}
	}
	if _, ok := _c.mutation.PrimaryConcern(); !ok {
		return &ValidationError{Name: "primary_concern", err: errors.New(`repo: missing required field "OnboardingMedical.primary_concern"`)}
	}
	if v, ok := _c.mutation.PrimaryConcern(); ok {
		if err := onboardingmedical.PrimaryConcernValidator(v); err != nil {
			return &ValidationError{Name: "primary_concern", err: fmt.Errorf(`repo: validator failed for field "OnboardingMedical.primary_concern": %w`, err)}
		}
	}
	return nil
}

func (_c *OnboardingMedicalCreate) sqlSave(ctx context.Context) (*OnboardingMedical, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OnboardingMedicalCreate) createSpec() (*OnboardingMedical, *sqlgraph.CreateSpec) {
	var (
		_node = &OnboardingMedical{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(onboardingmedical.Table, sqlgraph.NewFieldSpec(onboardingmedical.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(onboardingmedical.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(onboardingmedical.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(onboardingmedical.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Allergies(); ok {
		_spec.SetField(onboardingmedical.FieldAllergies, field.TypeJSON, value)
		_node.Allergies = value
	}
	if value, ok := _c.mutation.Conditions(); ok {
		_spec.SetField(onboardingmedical.FieldConditions, field.TypeJSON, value)
		_node.Conditions = value
	}
	if value, ok := _c.mutation.Medications(); ok {
		_spec.SetField(onboardingmedical.FieldMedications, field.TypeJSON, value)
		_node.Medications = value
	}
	if value, ok := _c.mutation.PrimaryConcern(); ok {
		_spec.SetField(onboardingmedical.FieldPrimaryConcern, field.TypeString, value)
		_node.PrimaryConcern = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OnboardingMedical.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OnboardingMedicalUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *OnboardingMedicalCreate) OnConflict(opts ...sql.ConflictOption) *OnboardingMedicalUpsertOne {
	_c.conflict = opts
	return &OnboardingMedicalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OnboardingMedical.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OnboardingMedicalCreate) OnConflictColumns(columns ...string) *OnboardingMedicalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OnboardingMedicalUpsertOne{
		create: _c,
	}
}

type (
	// OnboardingMedicalUpsertOne is the builder for "upsert"-ing
	//  one OnboardingMedical node.
	OnboardingMedicalUpsertOne struct {
		create *OnboardingMedicalCreate
	}

	// OnboardingMedicalUpsert is the "OnConflict" setter.
	OnboardingMedicalUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *OnboardingMedicalUpsert) SetUpdatedAt(v time.Time) *OnboardingMedicalUpsert {
	u.Set(onboardingmedical.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OnboardingMedicalUpsert) UpdateUpdatedAt() *OnboardingMedicalUpsert {
	u.SetExcluded(onboardingmedical.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *OnboardingMedicalUpsert) SetPatientID(v uuid.UUID) *OnboardingMedicalUpsert {
	u.Set(onboardingmedical.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *OnboardingMedicalUpsert) UpdatePatientID() *OnboardingMedicalUpsert {
	u.SetExcluded(onboardingmedical.FieldPatientID)
	return u
}

// SetAllergies sets the "allergies" field.
func (u *OnboardingMedicalUpsert) SetAllergies(v []string) *OnboardingMedicalUpsert {
	u.Set(onboardingmedical.FieldAllergies, v)
	return u
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *OnboardingMedicalUpsert) UpdateAllergies() *OnboardingMedicalUpsert {
	u.SetExcluded(onboardingmedical.FieldAllergies)
	return u
}

// ClearAllergies clears the value of the "allergies" field.
func (u *OnboardingMedicalUpsert) ClearAllergies() *OnboardingMedicalUpsert {
	u.SetNull(onboardingmedical.FieldAllergies)
	return u
}

// SetConditions sets the "conditions" field.
func (u *OnboardingMedicalUpsert) SetConditions(v []string) *OnboardingMedicalUpsert {
	u.Set(onboardingmedical.FieldConditions, v)
	return u
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *OnboardingMedicalUpsert) UpdateConditions() *OnboardingMedicalUpsert {
	u.SetExcluded(onboardingmedical.FieldConditions)
	return u
}

// ClearConditions clears the value of the "conditions" field.
func (u *OnboardingMedicalUpsert) ClearConditions() *OnboardingMedicalUpsert {
	u.SetNull(onboardingmedical.FieldConditions)
	return u
}

// SetMedications sets the "medications" field.
func (u *OnboardingMedicalUpsert) SetMedications(v []string) *OnboardingMedicalUpsert {
	u.Set(onboardingmedical.FieldMedications, v)
	return u
}

// UpdateMedications sets the "medications" field to the value that was provided on create.
func (u *OnboardingMedicalUpsert) UpdateMedications() *OnboardingMedicalUpsert {
	u.SetExcluded(onboardingmedical.FieldMedications)
	return u
}

// ClearMedications clears the value of the "medications" field.
func (u *OnboardingMedicalUpsert) ClearMedications() *OnboardingMedicalUpsert {
	u.SetNull(onboardingmedical.FieldMedications)
	return u
}

// SetPrimaryConcern sets the "primary_concern" field.
func (u *OnboardingMedicalUpsert) SetPrimaryConcern(v string) *OnboardingMedicalUpsert {
	u.Set(onboardingmedical.FieldPrimaryConcern, v)
	return u
}

// UpdatePrimaryConcern sets the "primary_concern" field to the value that was provided on create.
func (u *OnboardingMedicalUpsert) UpdatePrimaryConcern() *OnboardingMedicalUpsert {
	u.SetExcluded(onboardingmedical.FieldPrimaryConcern)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OnboardingMedical.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(onboardingmedical.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OnboardingMedicalUpsertOne) UpdateNewValues() *OnboardingMedicalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(onboardingmedical.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(onboardingmedical.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OnboardingMedical.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OnboardingMedicalUpsertOne) Ignore() *OnboardingMedicalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OnboardingMedicalUpsertOne) DoNothing() *OnboardingMedicalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OnboardingMedicalCreate.OnConflict
// documentation for more info.
func (u *OnboardingMedicalUpsertOne) Update(set func(*OnboardingMedicalUpsert)) *OnboardingMedicalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OnboardingMedicalUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OnboardingMedicalUpsertOne) SetUpdatedAt(v time.Time) *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OnboardingMedicalUpsertOne) UpdateUpdatedAt() *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *OnboardingMedicalUpsertOne) SetPatientID(v uuid.UUID) *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *OnboardingMedicalUpsertOne) UpdatePatientID() *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.UpdatePatientID()
	})
}

// SetAllergies sets the "allergies" field.
func (u *OnboardingMedicalUpsertOne) SetAllergies(v []string) *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.SetAllergies(v)
	})
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *OnboardingMedicalUpsertOne) UpdateAllergies() *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.UpdateAllergies()
	})
}

// ClearAllergies clears the value of the "allergies" field.
func (u *OnboardingMedicalUpsertOne) ClearAllergies() *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.ClearAllergies()
	})
}

// SetConditions sets the "conditions" field.
func (u *OnboardingMedicalUpsertOne) SetConditions(v []string) *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.SetConditions(v)
	})
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *OnboardingMedicalUpsertOne) UpdateConditions() *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.UpdateConditions()
	})
}

// ClearConditions clears the value of the "conditions" field.
func (u *OnboardingMedicalUpsertOne) ClearConditions() *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.ClearConditions()
	})
}

// SetMedications sets the "medications" field.
func (u *OnboardingMedicalUpsertOne) SetMedications(v []string) *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.SetMedications(v)
	})
}

// UpdateMedications sets the "medications" field to the value that was provided on create.
func (u *OnboardingMedicalUpsertOne) UpdateMedications() *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.UpdateMedications()
	})
}

// ClearMedications clears the value of the "medications" field.
func (u *OnboardingMedicalUpsertOne) ClearMedications() *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.ClearMedications()
	})
}

// SetPrimaryConcern sets the "primary_concern" field.
func (u *OnboardingMedicalUpsertOne) SetPrimaryConcern(v string) *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.SetPrimaryConcern(v)
	})
}

// UpdatePrimaryConcern sets the "primary_concern" field to the value that was provided on create.
func (u *OnboardingMedicalUpsertOne) UpdatePrimaryConcern() *OnboardingMedicalUpsertOne {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.UpdatePrimaryConcern()
	})
}

// Exec executes the query.
func (u *OnboardingMedicalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OnboardingMedicalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OnboardingMedicalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OnboardingMedicalUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: OnboardingMedicalUpsertOne.ID is not supported by MySQL driver. Use OnboardingMedicalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OnboardingMedicalUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OnboardingMedicalCreateBulk is the builder for creating many OnboardingMedical entities in bulk.
type OnboardingMedicalCreateBulk struct {
	config
	err      error
	builders []*OnboardingMedicalCreate
	conflict []sql.ConflictOption
}

// Save creates the OnboardingMedical entities in the database.
func (_c *OnboardingMedicalCreateBulk) Save(ctx context.Context) ([]*OnboardingMedical, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OnboardingMedical, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OnboardingMedicalMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OnboardingMedicalCreateBulk) SaveX(ctx context.Context) []*OnboardingMedical {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnboardingMedicalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnboardingMedicalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OnboardingMedical.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OnboardingMedicalUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *OnboardingMedicalCreateBulk) OnConflict(opts ...sql.ConflictOption) *OnboardingMedicalUpsertBulk {
	_c.conflict = opts
	return &OnboardingMedicalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OnboardingMedical.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OnboardingMedicalCreateBulk) OnConflictColumns(columns ...string) *OnboardingMedicalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OnboardingMedicalUpsertBulk{
		create: _c,
	}
}

// OnboardingMedicalUpsertBulk is the builder for "upsert"-ing
// a bulk of OnboardingMedical nodes.
type OnboardingMedicalUpsertBulk struct {
	create *OnboardingMedicalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OnboardingMedical.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(onboardingmedical.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OnboardingMedicalUpsertBulk) UpdateNewValues() *OnboardingMedicalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(onboardingmedical.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(onboardingmedical.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OnboardingMedical.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OnboardingMedicalUpsertBulk) Ignore() *OnboardingMedicalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OnboardingMedicalUpsertBulk) DoNothing() *OnboardingMedicalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OnboardingMedicalCreateBulk.OnConflict
// documentation for more info.
func (u *OnboardingMedicalUpsertBulk) Update(set func(*OnboardingMedicalUpsert)) *OnboardingMedicalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OnboardingMedicalUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OnboardingMedicalUpsertBulk) SetUpdatedAt(v time.Time) *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OnboardingMedicalUpsertBulk) UpdateUpdatedAt() *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *OnboardingMedicalUpsertBulk) SetPatientID(v uuid.UUID) *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *OnboardingMedicalUpsertBulk) UpdatePatientID() *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.UpdatePatientID()
	})
}

// SetAllergies sets the "allergies" field.
func (u *OnboardingMedicalUpsertBulk) SetAllergies(v []string) *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.SetAllergies(v)
	})
}

// UpdateAllergies sets the "allergies" field to the value that was provided on create.
func (u *OnboardingMedicalUpsertBulk) UpdateAllergies() *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.UpdateAllergies()
	})
}

// ClearAllergies clears the value of the "allergies" field.
func (u *OnboardingMedicalUpsertBulk) ClearAllergies() *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.ClearAllergies()
	})
}

// SetConditions sets the "conditions" field.
func (u *OnboardingMedicalUpsertBulk) SetConditions(v []string) *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.SetConditions(v)
	})
}

// UpdateConditions sets the "conditions" field to the value that was provided on create.
func (u *OnboardingMedicalUpsertBulk) UpdateConditions() *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.UpdateConditions()
	})
}

// ClearConditions clears the value of the "conditions" field.
func (u *OnboardingMedicalUpsertBulk) ClearConditions() *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.ClearConditions()
	})
}

// SetMedications sets the "medications" field.
func (u *OnboardingMedicalUpsertBulk) SetMedications(v []string) *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.SetMedications(v)
	})
}

// UpdateMedications sets the "medications" field to the value that was provided on create.
func (u *OnboardingMedicalUpsertBulk) UpdateMedications() *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.UpdateMedications()
	})
}

// ClearMedications clears the value of the "medications" field.
func (u *OnboardingMedicalUpsertBulk) ClearMedications() *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.ClearMedications()
	})
}

// SetPrimaryConcern sets the "primary_concern" field.
func (u *OnboardingMedicalUpsertBulk) SetPrimaryConcern(v string) *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.SetPrimaryConcern(v)
	})
}

// UpdatePrimaryConcern sets the "primary_concern" field to the value that was provided on create.
func (u *OnboardingMedicalUpsertBulk) UpdatePrimaryConcern() *OnboardingMedicalUpsertBulk {
	return u.Update(func(s *OnboardingMedicalUpsert) {
		s.UpdatePrimaryConcern()
	})
}

// Exec executes the query.
func (u *OnboardingMedicalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the OnboardingMedicalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OnboardingMedicalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OnboardingMedicalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
