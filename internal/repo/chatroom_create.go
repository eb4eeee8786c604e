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
	"github.com/telecare/telecare_backend/internal/repo/chatroom"
)

// ChatRoomCreate is the builder for creating a ChatRoom entity.
type ChatRoomCreate struct {
	config
	mutation *ChatRoomMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatRoomCreate) SetCreatedAt(v time.Time) *ChatRoomCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatRoomCreate) SetNillableCreatedAt(v *time.Time) *ChatRoomCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *ChatRoomCreate) SetPatientID(v uuid.UUID) *ChatRoomCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *ChatRoomCreate) SetDoctorID(v uuid.UUID) *ChatRoomCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetLastMessageAt sets the "last_message_at" field.
func (_c *ChatRoomCreate) SetLastMessageAt(v time.Time) *ChatRoomCreate {
	_c.mutation.SetLastMessageAt(v)
	return _c
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_c *ChatRoomCreate) SetNillableLastMessageAt(v *time.Time) *ChatRoomCreate {
	if v != nil {
		_c.SetLastMessageAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatRoomCreate) SetID(v uuid.UUID) *ChatRoomCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChatRoomCreate) SetNillableID(v *uuid.UUID) *ChatRoomCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ChatRoomMutation object of the builder.
func (_c *ChatRoomCreate) Mutation() *ChatRoomMutation {
	return _c.mutation
}

// Save creates the ChatRoom in the database.
func (_c *ChatRoomCreate) Save(ctx context.Context) (*ChatRoom, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatRoomCreate) SaveX(ctx context.Context) *ChatRoom {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatRoomCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatRoomCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatRoomCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatroom.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := chatroom.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatRoomCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ChatRoom.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "ChatRoom.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "ChatRoom.doctor_id"`)}
	}
	return nil
}

func (_c *ChatRoomCreate) sqlSave(ctx context.Context) (*ChatRoom, error) {
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

func (_c *ChatRoomCreate) createSpec() (*ChatRoom, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatRoom{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatroom.Table, sqlgraph.NewFieldSpec(chatroom.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatroom.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(chatroom.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(chatroom.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.LastMessageAt(); ok {
		_spec.SetField(chatroom.FieldLastMessageAt, field.TypeTime, value)
		_node.LastMessageAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatRoom.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatRoomUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatRoomCreate) OnConflict(opts ...sql.ConflictOption) *ChatRoomUpsertOne {
	_c.conflict = opts
	return &ChatRoomUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatRoom.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatRoomCreate) OnConflictColumns(columns ...string) *ChatRoomUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatRoomUpsertOne{
		create: _c,
	}
}

type (
	// ChatRoomUpsertOne is the builder for "upsert"-ing
	//  one ChatRoom node.
	ChatRoomUpsertOne struct {
		create *ChatRoomCreate
	}

	// ChatRoomUpsert is the "OnConflict" setter.
	ChatRoomUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *ChatRoomUpsert) SetPatientID(v uuid.UUID) *ChatRoomUpsert {
	u.Set(chatroom.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ChatRoomUpsert) UpdatePatientID() *ChatRoomUpsert {
	u.SetExcluded(chatroom.FieldPatientID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *ChatRoomUpsert) SetDoctorID(v uuid.UUID) *ChatRoomUpsert {
	u.Set(chatroom.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *ChatRoomUpsert) UpdateDoctorID() *ChatRoomUpsert {
	u.SetExcluded(chatroom.FieldDoctorID)
	return u
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *ChatRoomUpsert) SetLastMessageAt(v time.Time) *ChatRoomUpsert {
	u.Set(chatroom.FieldLastMessageAt, v)
	return u
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *ChatRoomUpsert) UpdateLastMessageAt() *ChatRoomUpsert {
	u.SetExcluded(chatroom.FieldLastMessageAt)
	return u
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (u *ChatRoomUpsert) ClearLastMessageAt() *ChatRoomUpsert {
	u.SetNull(chatroom.FieldLastMessageAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ChatRoom.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatroom.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatRoomUpsertOne) UpdateNewValues() *ChatRoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chatroom.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chatroom.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatRoom.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatRoomUpsertOne) Ignore() *ChatRoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatRoomUpsertOne) DoNothing() *ChatRoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatRoomCreate.OnConflict
// documentation for more info.
func (u *ChatRoomUpsertOne) Update(set func(*ChatRoomUpsert)) *ChatRoomUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatRoomUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *ChatRoomUpsertOne) SetPatientID(v uuid.UUID) *ChatRoomUpsertOne {
	return u.Update(func(s *ChatRoomUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ChatRoomUpsertOne) UpdatePatientID() *ChatRoomUpsertOne {
	return u.Update(func(s *ChatRoomUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *ChatRoomUpsertOne) SetDoctorID(v uuid.UUID) *ChatRoomUpsertOne {
	return u.Update(func(s *ChatRoomUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *ChatRoomUpsertOne) UpdateDoctorID() *ChatRoomUpsertOne {
	return u.Update(func(s *ChatRoomUpsert) {
		s.UpdateDoctorID()
	})
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *ChatRoomUpsertOne) SetLastMessageAt(v time.Time) *ChatRoomUpsertOne {
	return u.Update(func(s *ChatRoomUpsert) {
		s.SetLastMessageAt(v)
	})
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *ChatRoomUpsertOne) UpdateLastMessageAt() *ChatRoomUpsertOne {
	return u.Update(func(s *ChatRoomUpsert) {
		s.UpdateLastMessageAt()
	})
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (u *ChatRoomUpsertOne) ClearLastMessageAt() *ChatRoomUpsertOne {
	return u.Update(func(s *ChatRoomUpsert) {
		s.ClearLastMessageAt()
	})
}

// Exec executes the query.
func (u *ChatRoomUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ChatRoomCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatRoomUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatRoomUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ChatRoomUpsertOne.ID is not supported by MySQL driver. Use ChatRoomUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatRoomUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatRoomCreateBulk is the builder for creating many ChatRoom entities in bulk.
type ChatRoomCreateBulk struct {
	config
	err      error
	builders []*ChatRoomCreate
	conflict []sql.ConflictOption
}

// Save creates the ChatRoom entities in the database.
func (_c *ChatRoomCreateBulk) Save(ctx context.Context) ([]*ChatRoom, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatRoom, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatRoomMutation)
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
func (_c *ChatRoomCreateBulk) SaveX(ctx context.Context) []*ChatRoom {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatRoomCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatRoomCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatRoom.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatRoomUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatRoomCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatRoomUpsertBulk {
	_c.conflict = opts
	return &ChatRoomUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatRoom.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatRoomCreateBulk) OnConflictColumns(columns ...string) *ChatRoomUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatRoomUpsertBulk{
		create: _c,
	}
}

// ChatRoomUpsertBulk is the builder for "upsert"-ing
// a bulk of ChatRoom nodes.
type ChatRoomUpsertBulk struct {
	create *ChatRoomCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChatRoom.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatroom.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatRoomUpsertBulk) UpdateNewValues() *ChatRoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chatroom.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chatroom.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatRoom.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatRoomUpsertBulk) Ignore() *ChatRoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatRoomUpsertBulk) DoNothing() *ChatRoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatRoomCreateBulk.OnConflict
// documentation for more info.
func (u *ChatRoomUpsertBulk) Update(set func(*ChatRoomUpsert)) *ChatRoomUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatRoomUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *ChatRoomUpsertBulk) SetPatientID(v uuid.UUID) *ChatRoomUpsertBulk {
	return u.Update(func(s *ChatRoomUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ChatRoomUpsertBulk) UpdatePatientID() *ChatRoomUpsertBulk {
	return u.Update(func(s *ChatRoomUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *ChatRoomUpsertBulk) SetDoctorID(v uuid.UUID) *ChatRoomUpsertBulk {
	return u.Update(func(s *ChatRoomUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *ChatRoomUpsertBulk) UpdateDoctorID() *ChatRoomUpsertBulk {
	return u.Update(func(s *ChatRoomUpsert) {
		s.UpdateDoctorID()
	})
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *ChatRoomUpsertBulk) SetLastMessageAt(v time.Time) *ChatRoomUpsertBulk {
	return u.Update(func(s *ChatRoomUpsert) {
		s.SetLastMessageAt(v)
	})
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *ChatRoomUpsertBulk) UpdateLastMessageAt() *ChatRoomUpsertBulk {
	return u.Update(func(s *ChatRoomUpsert) {
		s.UpdateLastMessageAt()
	})
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (u *ChatRoomUpsertBulk) ClearLastMessageAt() *ChatRoomUpsertBulk {
	return u.Update(func(s *ChatRoomUpsert) {
		s.ClearLastMessageAt()
	})
}

// Exec executes the query.
func (u *ChatRoomUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ChatRoomCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ChatRoomCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatRoomUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
