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
	"github.com/telecare/telecare_backend/internal/repo/onboardinginsurance"
)

// OnboardingInsuranceCreate is the builder for creating a OnboardingInsurance entity.
type OnboardingInsuranceCreate struct {
	config
	mutation *OnboardingInsuranceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *OnboardingInsuranceCreate) SetCreatedAt(v time.Time) *OnboardingInsuranceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OnboardingInsuranceCreate) SetNillableCreatedAt(v *time.Time) *OnboardingInsuranceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OnboardingInsuranceCreate) SetUpdatedAt(v time.Time) *OnboardingInsuranceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OnboardingInsuranceCreate) SetNillableUpdatedAt(v *time.Time) *OnboardingInsuranceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *OnboardingInsuranceCreate) SetPatientID(v uuid.UUID) *OnboardingInsuranceCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *OnboardingInsuranceCreate) SetProvider(v string) *OnboardingInsuranceCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetMemberIDEncrypted sets the "member_id_encrypted" field.
func (_c *OnboardingInsuranceCreate) SetMemberIDEncrypted(v string) *OnboardingInsuranceCreate {
	_c.mutation.SetMemberIDEncrypted(v)
	return _c
}

// SetPreferredDoctorID sets the "preferred_doctor_id" field.
func (_c *OnboardingInsuranceCreate) SetPreferredDoctorID(v uuid.UUID) *OnboardingInsuranceCreate {
	_c.mutation.SetPreferredDoctorID(v)
	return _c
}

// SetNillablePreferredDoctorID sets the "preferred_doctor_id" field if the given value is not nil.
func (_c *OnboardingInsuranceCreate) SetNillablePreferredDoctorID(v *uuid.UUID) *OnboardingInsuranceCreate {
	if v != nil {
		_c.SetPreferredDoctorID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OnboardingInsuranceCreate) SetID(v uuid.UUID) *OnboardingInsuranceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OnboardingInsuranceCreate) SetNillableID(v *uuid.UUID) *OnboardingInsuranceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the OnboardingInsuranceMutation object of the builder.
func (_c *OnboardingInsuranceCreate) Mutation() *OnboardingInsuranceMutation {
	return _c.mutation
}

// Save creates the OnboardingInsurance in the database.
func (_c *OnboardingInsuranceCreate) Save(ctx context.Context) (*OnboardingInsurance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OnboardingInsuranceCreate) SaveX(ctx context.Context) *OnboardingInsurance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnboardingInsuranceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnboardingInsuranceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OnboardingInsuranceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := onboardinginsurance.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := onboardinginsurance.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := onboardinginsurance.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OnboardingInsuranceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "OnboardingInsurance.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "OnboardingInsurance.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "OnboardingInsurance.patient_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`repo: missing required field "OnboardingInsurance.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := onboardinginsurance.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`repo: validator failed for field "OnboardingInsurance.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MemberIDEncrypted(); !ok {
		return &ValidationError{Name: "member_id_encrypted", err: errors.New(`repo: missing required field "OnboardingInsurance.member_id_encrypted"`)}
	}
	return nil
}

func (_c *OnboardingInsuranceCreate) sqlSave(ctx context.Context) (*OnboardingInsurance, error) {
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

func (_c *OnboardingInsuranceCreate) createSpec() (*OnboardingInsurance, *sqlgraph.CreateSpec) {
	var (
		_node = &OnboardingInsurance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(onboardinginsurance.Table, sqlgraph.NewFieldSpec(onboardinginsurance.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(onboardinginsurance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(onboardinginsurance.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(onboardinginsurance.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(onboardinginsurance.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.MemberIDEncrypted(); ok {
		_spec.SetField(onboardinginsurance.FieldMemberIDEncrypted, field.TypeString, value)
		_node.MemberIDEncrypted = value
	}
	if value, ok := _c.mutation.PreferredDoctorID(); ok {
		_spec.SetField(onboardinginsurance.FieldPreferredDoctorID, field.TypeUUID, value)
		_node.PreferredDoctorID = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OnboardingInsurance.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OnboardingInsuranceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *OnboardingInsuranceCreate) OnConflict(opts ...sql.ConflictOption) *OnboardingInsuranceUpsertOne {
	_c.conflict = opts
	return &OnboardingInsuranceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OnboardingInsurance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OnboardingInsuranceCreate) OnConflictColumns(columns ...string) *OnboardingInsuranceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OnboardingInsuranceUpsertOne{
		create: _c,
	}
}

type (
	// OnboardingInsuranceUpsertOne is the builder for "upsert"-ing
	//  one OnboardingInsurance node.
	OnboardingInsuranceUpsertOne struct {
		create *OnboardingInsuranceCreate
	}

	// OnboardingInsuranceUpsert is the "OnConflict" setter.
	OnboardingInsuranceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *OnboardingInsuranceUpsert) SetUpdatedAt(v time.Time) *OnboardingInsuranceUpsert {
	u.Set(onboardinginsurance.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsert) UpdateUpdatedAt() *OnboardingInsuranceUpsert {
	u.SetExcluded(onboardinginsurance.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *OnboardingInsuranceUpsert) SetPatientID(v uuid.UUID) *OnboardingInsuranceUpsert {
	u.Set(onboardinginsurance.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsert) UpdatePatientID() *OnboardingInsuranceUpsert {
	u.SetExcluded(onboardinginsurance.FieldPatientID)
	return u
}

// SetProvider sets the "provider" field.
func (u *OnboardingInsuranceUpsert) SetProvider(v string) *OnboardingInsuranceUpsert {
	u.Set(onboardinginsurance.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsert) UpdateProvider() *OnboardingInsuranceUpsert {
	u.SetExcluded(onboardinginsurance.FieldProvider)
	return u
}

// SetMemberIDEncrypted sets the "member_id_encrypted" field.
func (u *OnboardingInsuranceUpsert) SetMemberIDEncrypted(v string) *OnboardingInsuranceUpsert {
	u.Set(onboardinginsurance.FieldMemberIDEncrypted, v)
	return u
}

// UpdateMemberIDEncrypted sets the "member_id_encrypted" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsert) UpdateMemberIDEncrypted() *OnboardingInsuranceUpsert {
	u.SetExcluded(onboardinginsurance.FieldMemberIDEncrypted)
	return u
}

// SetPreferredDoctorID sets the "preferred_doctor_id" field.
func (u *OnboardingInsuranceUpsert) SetPreferredDoctorID(v uuid.UUID) *OnboardingInsuranceUpsert {
	u.Set(onboardinginsurance.FieldPreferredDoctorID, v)
	return u
}

// UpdatePreferredDoctorID sets the "preferred_doctor_id" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsert) UpdatePreferredDoctorID() *OnboardingInsuranceUpsert {
	u.SetExcluded(onboardinginsurance.FieldPreferredDoctorID)
	return u
}

// ClearPreferredDoctorID clears the value of the "preferred_doctor_id" field.
func (u *OnboardingInsuranceUpsert) ClearPreferredDoctorID() *OnboardingInsuranceUpsert {
	u.SetNull(onboardinginsurance.FieldPreferredDoctorID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OnboardingInsurance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(onboardinginsurance.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OnboardingInsuranceUpsertOne) UpdateNewValues() *OnboardingInsuranceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(onboardinginsurance.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(onboardinginsurance.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OnboardingInsurance.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OnboardingInsuranceUpsertOne) Ignore() *OnboardingInsuranceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OnboardingInsuranceUpsertOne) DoNothing() *OnboardingInsuranceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OnboardingInsuranceCreate.OnConflict
// documentation for more info.
func (u *OnboardingInsuranceUpsertOne) Update(set func(*OnboardingInsuranceUpsert)) *OnboardingInsuranceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OnboardingInsuranceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OnboardingInsuranceUpsertOne) SetUpdatedAt(v time.Time) *OnboardingInsuranceUpsertOne {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsertOne) UpdateUpdatedAt() *OnboardingInsuranceUpsertOne {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *OnboardingInsuranceUpsertOne) SetPatientID(v uuid.UUID) *OnboardingInsuranceUpsertOne {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsertOne) UpdatePatientID() *OnboardingInsuranceUpsertOne {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.UpdatePatientID()
	})
}

// SetProvider sets the "provider" field.
func (u *OnboardingInsuranceUpsertOne) SetProvider(v string) *OnboardingInsuranceUpsertOne {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsertOne) UpdateProvider() *OnboardingInsuranceUpsertOne {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.UpdateProvider()
	})
}

// SetMemberIDEncrypted sets the "member_id_encrypted" field.
func (u *OnboardingInsuranceUpsertOne) SetMemberIDEncrypted(v string) *OnboardingInsuranceUpsertOne {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.SetMemberIDEncrypted(v)
	})
}

// UpdateMemberIDEncrypted sets the "member_id_encrypted" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsertOne) UpdateMemberIDEncrypted() *OnboardingInsuranceUpsertOne {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.UpdateMemberIDEncrypted()
	})
}

// SetPreferredDoctorID sets the "preferred_doctor_id" field.
func (u *OnboardingInsuranceUpsertOne) SetPreferredDoctorID(v uuid.UUID) *OnboardingInsuranceUpsertOne {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.SetPreferredDoctorID(v)
	})
}

// UpdatePreferredDoctorID sets the "preferred_doctor_id" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsertOne) UpdatePreferredDoctorID() *OnboardingInsuranceUpsertOne {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.UpdatePreferredDoctorID()
	})
}

// ClearPreferredDoctorID clears the value of the "preferred_doctor_id" field.
func (u *OnboardingInsuranceUpsertOne) ClearPreferredDoctorID() *OnboardingInsuranceUpsertOne {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.ClearPreferredDoctorID()
	})
}

// Exec executes the query.
func (u *OnboardingInsuranceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OnboardingInsuranceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OnboardingInsuranceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OnboardingInsuranceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: OnboardingInsuranceUpsertOne.ID is not supported by MySQL driver. Use OnboardingInsuranceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OnboardingInsuranceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OnboardingInsuranceCreateBulk is the builder for creating many OnboardingInsurance entities in bulk.
type OnboardingInsuranceCreateBulk struct {
	config
	err      error
	builders []*OnboardingInsuranceCreate
	conflict []sql.ConflictOption
}

// Save creates the OnboardingInsurance entities in the database.
func (_c *OnboardingInsuranceCreateBulk) Save(ctx context.Context) ([]*OnboardingInsurance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OnboardingInsurance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OnboardingInsuranceMutation)
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
func (_c *OnboardingInsuranceCreateBulk) SaveX(ctx context.Context) []*OnboardingInsurance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnboardingInsuranceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnboardingInsuranceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OnboardingInsurance.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OnboardingInsuranceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *OnboardingInsuranceCreateBulk) OnConflict(opts ...sql.ConflictOption) *OnboardingInsuranceUpsertBulk {
	_c.conflict = opts
	return &OnboardingInsuranceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OnboardingInsurance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OnboardingInsuranceCreateBulk) OnConflictColumns(columns ...string) *OnboardingInsuranceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OnboardingInsuranceUpsertBulk{
		create: _c,
	}
}

// OnboardingInsuranceUpsertBulk is the builder for "upsert"-ing
// a bulk of OnboardingInsurance nodes.
type OnboardingInsuranceUpsertBulk struct {
	create *OnboardingInsuranceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OnboardingInsurance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(onboardinginsurance.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OnboardingInsuranceUpsertBulk) UpdateNewValues() *OnboardingInsuranceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(onboardinginsurance.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(onboardinginsurance.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OnboardingInsurance.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OnboardingInsuranceUpsertBulk) Ignore() *OnboardingInsuranceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OnboardingInsuranceUpsertBulk) DoNothing() *OnboardingInsuranceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OnboardingInsuranceCreateBulk.OnConflict
// documentation for more info.
func (u *OnboardingInsuranceUpsertBulk) Update(set func(*OnboardingInsuranceUpsert)) *OnboardingInsuranceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OnboardingInsuranceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OnboardingInsuranceUpsertBulk) SetUpdatedAt(v time.Time) *OnboardingInsuranceUpsertBulk {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsertBulk) UpdateUpdatedAt() *OnboardingInsuranceUpsertBulk {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *OnboardingInsuranceUpsertBulk) SetPatientID(v uuid.UUID) *OnboardingInsuranceUpsertBulk {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsertBulk) UpdatePatientID() *OnboardingInsuranceUpsertBulk {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.UpdatePatientID()
	})
}

// SetProvider sets the "provider" field.
func (u *OnboardingInsuranceUpsertBulk) SetProvider(v string) *OnboardingInsuranceUpsertBulk {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsertBulk) UpdateProvider() *OnboardingInsuranceUpsertBulk {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.UpdateProvider()
	})
}

// SetMemberIDEncrypted sets the "member_id_encrypted" field.
func (u *OnboardingInsuranceUpsertBulk) SetMemberIDEncrypted(v string) *OnboardingInsuranceUpsertBulk {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.SetMemberIDEncrypted(v)
	})
}

// UpdateMemberIDEncrypted sets the "member_id_encrypted" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsertBulk) UpdateMemberIDEncrypted() *OnboardingInsuranceUpsertBulk {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.UpdateMemberIDEncrypted()
	})
}

// SetPreferredDoctorID sets the "preferred_doctor_id" field.
func (u *OnboardingInsuranceUpsertBulk) SetPreferredDoctorID(v uuid.UUID) *OnboardingInsuranceUpsertBulk {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.SetPreferredDoctorID(v)
	})
}

// UpdatePreferredDoctorID sets the "preferred_doctor_id" field to the value that was provided on create.
func (u *OnboardingInsuranceUpsertBulk) UpdatePreferredDoctorID() *OnboardingInsuranceUpsertBulk {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.UpdatePreferredDoctorID()
	})
}

// ClearPreferredDoctorID clears the value of the "preferred_doctor_id" field.
func (u *OnboardingInsuranceUpsertBulk) ClearPreferredDoctorID() *OnboardingInsuranceUpsertBulk {
	return u.Update(func(s *OnboardingInsuranceUpsert) {
		s.ClearPreferredDoctorID()
	})
}

// Exec executes the query.
func (u *OnboardingInsuranceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the OnboardingInsuranceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OnboardingInsuranceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OnboardingInsuranceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
