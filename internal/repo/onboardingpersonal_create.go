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
	"github.com/telecare/telecare_backend/internal/repo/onboardingpersonal"
)

// OnboardingPersonalCreate is the builder for creating a OnboardingPersonal entity.
type OnboardingPersonalCreate struct {
	config
	mutation *OnboardingPersonalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *OnboardingPersonalCreate) SetCreatedAt(v time.Time) *OnboardingPersonalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OnboardingPersonalCreate) SetNillableCreatedAt(v *time.Time) *OnboardingPersonalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OnboardingPersonalCreate) SetUpdatedAt(v time.Time) *OnboardingPersonalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OnboardingPersonalCreate) SetNillableUpdatedAt(v *time.Time) *OnboardingPersonalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *OnboardingPersonalCreate) SetPatientID(v uuid.UUID) *OnboardingPersonalCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_c *OnboardingPersonalCreate) SetDateOfBirth(v time.Time) *OnboardingPersonalCreate {
	_c.mutation.SetDateOfBirth(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *OnboardingPersonalCreate) SetGender(v onboardingpersonal.Gender) *OnboardingPersonalCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *OnboardingPersonalCreate) SetPhone(v string) *OnboardingPersonalCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *OnboardingPersonalCreate) SetAddress(v string) *OnboardingPersonalCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetID sets the "id" field.
func (_c *OnboardingPersonalCreate) SetID(v uuid.UUID) *OnboardingPersonalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OnboardingPersonalCreate) SetNillableID(v *uuid.UUID) *OnboardingPersonalCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the OnboardingPersonalMutation object of the builder.
func (_c *OnboardingPersonalCreate) Mutation() *OnboardingPersonalMutation {
	return _c.mutation
}

// Save creates the OnboardingPersonal in the database.
func (_c *OnboardingPersonalCreate) Save(ctx context.Context) (*OnboardingPersonal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OnboardingPersonalCreate) SaveX(ctx context.Context) *OnboardingPersonal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnboardingPersonalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnboardingPersonalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OnboardingPersonalCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := onboardingpersonal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := onboardingpersonal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := onboardingpersonal.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OnboardingPersonalCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "OnboardingPersonal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "OnboardingPersonal.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "OnboardingPersonal.patient_id"`)}
	}
	if _, ok := _c.mutation.DateOfBirth(); !ok {
		return &ValidationError{Name: "date_of_birth", err: errors.New(`repo: missing required field "OnboardingPersonal.date_of_birth"`)}
	}
	if _, ok := _c.mutation.Gender(); !ok {
		return &ValidationError{Name: "gender", err: errors.New(`repo: missing required field "OnboardingPersonal.gender"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := onboardingpersonal.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`repo: validator failed for field "OnboardingPersonal.gender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`repo: missing required field "OnboardingPersonal.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := onboardingpersonal.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "OnboardingPersonal.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`repo: missing required field "OnboardingPersonal.address"`)}
	}
	if v, ok := _c.mutation.Address(); ok {
		if err := onboardingpersonal.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`repo: validator failed for field "OnboardingPersonal.address": %w`, err)}
		}
	}
	return nil
}

func (_c *OnboardingPersonalCreate) sqlSave(ctx context.Context) (*OnboardingPersonal, error) {
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

func (_c *OnboardingPersonalCreate) createSpec() (*OnboardingPersonal, *sqlgraph.CreateSpec) {
	var (
		_node = &OnboardingPersonal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(onboardingpersonal.Table, sqlgraph.NewFieldSpec(onboardingpersonal.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(onboardingpersonal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(onboardingpersonal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(onboardingpersonal.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DateOfBirth(); ok {
		_spec.SetField(onboardingpersonal.FieldDateOfBirth, field.TypeTime, value)
		_node.DateOfBirth = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(onboardingpersonal.FieldGender, field.TypeEnum, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(onboardingpersonal.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(onboardingpersonal.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OnboardingPersonal.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OnboardingPersonalUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *OnboardingPersonalCreate) OnConflict(opts ...sql.ConflictOption) *OnboardingPersonalUpsertOne {
	_c.conflict = opts
	return &OnboardingPersonalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OnboardingPersonal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OnboardingPersonalCreate) OnConflictColumns(columns ...string) *OnboardingPersonalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OnboardingPersonalUpsertOne{
		create: _c,
	}
}

type (
	// OnboardingPersonalUpsertOne is the builder for "upsert"-ing
	//  one OnboardingPersonal node.
	OnboardingPersonalUpsertOne struct {
		create *OnboardingPersonalCreate
	}

	// OnboardingPersonalUpsert is the "OnConflict" setter.
	OnboardingPersonalUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *OnboardingPersonalUpsert) SetUpdatedAt(v time.Time) *OnboardingPersonalUpsert {
	u.Set(onboardingpersonal.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OnboardingPersonalUpsert) UpdateUpdatedAt() *OnboardingPersonalUpsert {
	u.SetExcluded(onboardingpersonal.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *OnboardingPersonalUpsert) SetPatientID(v uuid.UUID) *OnboardingPersonalUpsert {
	u.Set(onboardingpersonal.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *OnboardingPersonalUpsert) UpdatePatientID() *OnboardingPersonalUpsert {
	u.SetExcluded(onboardingpersonal.FieldPatientID)
	return u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *OnboardingPersonalUpsert) SetDateOfBirth(v time.Time) *OnboardingPersonalUpsert {
	u.Set(onboardingpersonal.FieldDateOfBirth, v)
	return u
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *OnboardingPersonalUpsert) UpdateDateOfBirth() *OnboardingPersonalUpsert {
	u.SetExcluded(onboardingpersonal.FieldDateOfBirth)
	return u
}

// SetGender sets the "gender" field.
func (u *OnboardingPersonalUpsert) SetGender(v onboardingpersonal.Gender) *OnboardingPersonalUpsert {
	u.Set(onboardingpersonal.FieldGender, v)
	return u
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *OnboardingPersonalUpsert) UpdateGender() *OnboardingPersonalUpsert {
	u.SetExcluded(onboardingpersonal.FieldGender)
	return u
}

// SetPhone sets the "phone" field.
func (u *OnboardingPersonalUpsert) SetPhone(v string) *OnboardingPersonalUpsert {
	u.Set(onboardingpersonal.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *OnboardingPersonalUpsert) UpdatePhone() *OnboardingPersonalUpsert {
	u.SetExcluded(onboardingpersonal.FieldPhone)
	return u
}

// SetAddress sets the "address" field.
func (u *OnboardingPersonalUpsert) SetAddress(v string) *OnboardingPersonalUpsert {
	u.Set(onboardingpersonal.FieldAddress, v)
	return u
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *OnboardingPersonalUpsert) UpdateAddress() *OnboardingPersonalUpsert {
	u.SetExcluded(onboardingpersonal.FieldAddress)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OnboardingPersonal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(onboardingpersonal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OnboardingPersonalUpsertOne) UpdateNewValues() *OnboardingPersonalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(onboardingpersonal.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(onboardingpersonal.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OnboardingPersonal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OnboardingPersonalUpsertOne) Ignore() *OnboardingPersonalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OnboardingPersonalUpsertOne) DoNothing() *OnboardingPersonalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OnboardingPersonalCreate.OnConflict
// documentation for more info.
func (u *OnboardingPersonalUpsertOne) Update(set func(*OnboardingPersonalUpsert)) *OnboardingPersonalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OnboardingPersonalUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OnboardingPersonalUpsertOne) SetUpdatedAt(v time.Time) *OnboardingPersonalUpsertOne {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OnboardingPersonalUpsertOne) UpdateUpdatedAt() *OnboardingPersonalUpsertOne {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *OnboardingPersonalUpsertOne) SetPatientID(v uuid.UUID) *OnboardingPersonalUpsertOne {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *OnboardingPersonalUpsertOne) UpdatePatientID() *OnboardingPersonalUpsertOne {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.UpdatePatientID()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *OnboardingPersonalUpsertOne) SetDateOfBirth(v time.Time) *OnboardingPersonalUpsertOne {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *OnboardingPersonalUpsertOne) UpdateDateOfBirth() *OnboardingPersonalUpsertOne {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.UpdateDateOfBirth()
	})
}

// SetGender sets the "gender" field.
func (u *OnboardingPersonalUpsertOne) SetGender(v onboardingpersonal.Gender) *OnboardingPersonalUpsertOne {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *OnboardingPersonalUpsertOne) UpdateGender() *OnboardingPersonalUpsertOne {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.UpdateGender()
	})
}

// SetPhone sets the "phone" field.
func (u *OnboardingPersonalUpsertOne) SetPhone(v string) *OnboardingPersonalUpsertOne {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *OnboardingPersonalUpsertOne) UpdatePhone() *OnboardingPersonalUpsertOne {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.UpdatePhone()
	})
}

// SetAddress sets the "address" field.
func (u *OnboardingPersonalUpsertOne) SetAddress(v string) *OnboardingPersonalUpsertOne {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *OnboardingPersonalUpsertOne) UpdateAddress() *OnboardingPersonalUpsertOne {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.UpdateAddress()
	})
}

// Exec executes the query.
func (u *OnboardingPersonalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OnboardingPersonalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OnboardingPersonalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OnboardingPersonalUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: OnboardingPersonalUpsertOne.ID is not supported by MySQL driver. Use OnboardingPersonalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OnboardingPersonalUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OnboardingPersonalCreateBulk is the builder for creating many OnboardingPersonal entities in bulk.
type OnboardingPersonalCreateBulk struct {
	config
	err      error
	builders []*OnboardingPersonalCreate
	conflict []sql.ConflictOption
}

// Save creates the OnboardingPersonal entities in the database.
func (_c *OnboardingPersonalCreateBulk) Save(ctx context.Context) ([]*OnboardingPersonal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OnboardingPersonal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OnboardingPersonalMutation)
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
func (_c *OnboardingPersonalCreateBulk) SaveX(ctx context.Context) []*OnboardingPersonal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnboardingPersonalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnboardingPersonalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OnboardingPersonal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OnboardingPersonalUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *OnboardingPersonalCreateBulk) OnConflict(opts ...sql.ConflictOption) *OnboardingPersonalUpsertBulk {
	_c.conflict = opts
	return &OnboardingPersonalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OnboardingPersonal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OnboardingPersonalCreateBulk) OnConflictColumns(columns ...string) *OnboardingPersonalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OnboardingPersonalUpsertBulk{
		create: _c,
	}
}

// OnboardingPersonalUpsertBulk is the builder for "upsert"-ing
// a bulk of OnboardingPersonal nodes.
type OnboardingPersonalUpsertBulk struct {
	create *OnboardingPersonalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OnboardingPersonal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(onboardingpersonal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OnboardingPersonalUpsertBulk) UpdateNewValues() *OnboardingPersonalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(onboardingpersonal.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(onboardingpersonal.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OnboardingPersonal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OnboardingPersonalUpsertBulk) Ignore() *OnboardingPersonalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OnboardingPersonalUpsertBulk) DoNothing() *OnboardingPersonalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OnboardingPersonalCreateBulk.OnConflict
// documentation for more info.
func (u *OnboardingPersonalUpsertBulk) Update(set func(*OnboardingPersonalUpsert)) *OnboardingPersonalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OnboardingPersonalUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *OnboardingPersonalUpsertBulk) SetUpdatedAt(v time.Time) *OnboardingPersonalUpsertBulk {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *OnboardingPersonalUpsertBulk) UpdateUpdatedAt() *OnboardingPersonalUpsertBulk {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *OnboardingPersonalUpsertBulk) SetPatientID(v uuid.UUID) *OnboardingPersonalUpsertBulk {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *OnboardingPersonalUpsertBulk) UpdatePatientID() *OnboardingPersonalUpsertBulk {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.UpdatePatientID()
	})
}

// SetDateOfBirth sets the "date_of_birth" field.
func (u *OnboardingPersonalUpsertBulk) SetDateOfBirth(v time.Time) *OnboardingPersonalUpsertBulk {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.SetDateOfBirth(v)
	})
}

// UpdateDateOfBirth sets the "date_of_birth" field to the value that was provided on create.
func (u *OnboardingPersonalUpsertBulk) UpdateDateOfBirth() *OnboardingPersonalUpsertBulk {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.UpdateDateOfBirth()
	})
}

// SetGender sets the "gender" field.
func (u *OnboardingPersonalUpsertBulk) SetGender(v onboardingpersonal.Gender) *OnboardingPersonalUpsertBulk {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.SetGender(v)
	})
}

// UpdateGender sets the "gender" field to the value that was provided on create.
func (u *OnboardingPersonalUpsertBulk) UpdateGender() *OnboardingPersonalUpsertBulk {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.UpdateGender()
	})
}

// SetPhone sets the "phone" field.
func (u *OnboardingPersonalUpsertBulk) SetPhone(v string) *OnboardingPersonalUpsertBulk {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *OnboardingPersonalUpsertBulk) UpdatePhone() *OnboardingPersonalUpsertBulk {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.UpdatePhone()
	})
}

// SetAddress sets the "address" field.
func (u *OnboardingPersonalUpsertBulk) SetAddress(v string) *OnboardingPersonalUpsertBulk {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.SetAddress(v)
	})
}

// UpdateAddress sets the "address" field to the value that was provided on create.
func (u *OnboardingPersonalUpsertBulk) UpdateAddress() *OnboardingPersonalUpsertBulk {
	return u.Update(func(s *OnboardingPersonalUpsert) {
		s.UpdateAddress()
	})
}

// Exec executes the query.
func (u *OnboardingPersonalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the OnboardingPersonalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OnboardingPersonalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OnboardingPersonalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
