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
	"github.com/telecare/telecare_backend/internal/repo/onlinestatus"
)

// OnlineStatusCreate is the builder for creating a OnlineStatus entity.
type OnlineStatusCreate struct {
	config
	mutation *OnlineStatusMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *OnlineStatusCreate) SetUserID(v uuid.UUID) *OnlineStatusCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetOnline sets the "online" field.
func (_c *OnlineStatusCreate) SetOnline(v bool) *OnlineStatusCreate {
	_c.mutation.SetOnline(v)
	return _c
}

// SetNillableOnline sets the "online" field if the given value is not nil.
func (_c *OnlineStatusCreate) SetNillableOnline(v *bool) *OnlineStatusCreate {
	if v != nil {
		_c.SetOnline(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *OnlineStatusCreate) SetLastSeen(v time.Time) *OnlineStatusCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *OnlineStatusCreate) SetNillableLastSeen(v *time.Time) *OnlineStatusCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OnlineStatusCreate) SetID(v uuid.UUID) *OnlineStatusCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OnlineStatusCreate) SetNillableID(v *uuid.UUID) *OnlineStatusCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the OnlineStatusMutation object of the builder.
func (_c *OnlineStatusCreate) Mutation() *OnlineStatusMutation {
	return _c.mutation
}

// Save creates the OnlineStatus in the database.
func (_c *OnlineStatusCreate) Save(ctx context.Context) (*OnlineStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OnlineStatusCreate) SaveX(ctx context.Context) *OnlineStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnlineStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnlineStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OnlineStatusCreate) defaults() {
	if _, ok := _c.mutation.Online(); !ok {
		v := onlinestatus.DefaultOnline
		_c.mutation.SetOnline(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := onlinestatus.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OnlineStatusCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "OnlineStatus.user_id"`)}
	}
	if _, ok := _c.mutation.Online(); !ok {
		return &ValidationError{Name: "online", err: errors.New(`repo: missing required field "OnlineStatus.online"`)}
	}
	return nil
}

func (_c *OnlineStatusCreate) sqlSave(ctx context.Context) (*OnlineStatus, error) {
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

func (_c *OnlineStatusCreate) createSpec() (*OnlineStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &OnlineStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(onlinestatus.Table, sqlgraph.NewFieldSpec(onlinestatus.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(onlinestatus.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Online(); ok {
		_spec.SetField(onlinestatus.FieldOnline, field.TypeBool, value)
		_node.Online = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(onlinestatus.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OnlineStatus.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OnlineStatusUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *OnlineStatusCreate) OnConflict(opts ...sql.ConflictOption) *OnlineStatusUpsertOne {
	_c.conflict = opts
	return &OnlineStatusUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OnlineStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OnlineStatusCreate) OnConflictColumns(columns ...string) *OnlineStatusUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OnlineStatusUpsertOne{
		create: _c,
	}
}

type (
	// OnlineStatusUpsertOne is the builder for "upsert"-ing
	//  one OnlineStatus node.
	OnlineStatusUpsertOne struct {
		create *OnlineStatusCreate
	}

	// OnlineStatusUpsert is the "OnConflict" setter.
	OnlineStatusUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *OnlineStatusUpsert) SetUserID(v uuid.UUID) *OnlineStatusUpsert {
	u.Set(onlinestatus.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OnlineStatusUpsert) UpdateUserID() *OnlineStatusUpsert {
	u.SetExcluded(onlinestatus.FieldUserID)
	return u
}

// SetOnline sets the "online" field.
func (u *OnlineStatusUpsert) SetOnline(v bool) *OnlineStatusUpsert {
	u.Set(onlinestatus.FieldOnline, v)
	return u
}

// UpdateOnline sets the "online" field to the value that was provided on create.
func (u *OnlineStatusUpsert) UpdateOnline() *OnlineStatusUpsert {
	u.SetExcluded(onlinestatus.FieldOnline)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *OnlineStatusUpsert) SetLastSeen(v time.Time) *OnlineStatusUpsert {
	u.Set(onlinestatus.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *OnlineStatusUpsert) UpdateLastSeen() *OnlineStatusUpsert {
	u.SetExcluded(onlinestatus.FieldLastSeen)
	return u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (u *OnlineStatusUpsert) ClearLastSeen() *OnlineStatusUpsert {
	u.SetNull(onlinestatus.FieldLastSeen)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OnlineStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(onlinestatus.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OnlineStatusUpsertOne) UpdateNewValues() *OnlineStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(onlinestatus.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OnlineStatus.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OnlineStatusUpsertOne) Ignore() *OnlineStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OnlineStatusUpsertOne) DoNothing() *OnlineStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OnlineStatusCreate.OnConflict
// documentation for more info.
func (u *OnlineStatusUpsertOne) Update(set func(*OnlineStatusUpsert)) *OnlineStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OnlineStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *OnlineStatusUpsertOne) SetUserID(v uuid.UUID) *OnlineStatusUpsertOne {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OnlineStatusUpsertOne) UpdateUserID() *OnlineStatusUpsertOne {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.UpdateUserID()
	})
}

// SetOnline sets the "online" field.
func (u *OnlineStatusUpsertOne) SetOnline(v bool) *OnlineStatusUpsertOne {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.SetOnline(v)
	})
}

// UpdateOnline sets the "online" field to the value that was provided on create.
func (u *OnlineStatusUpsertOne) UpdateOnline() *OnlineStatusUpsertOne {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.UpdateOnline()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *OnlineStatusUpsertOne) SetLastSeen(v time.Time) *OnlineStatusUpsertOne {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *OnlineStatusUpsertOne) UpdateLastSeen() *OnlineStatusUpsertOne {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.UpdateLastSeen()
	})
}

// ClearLastSeen clears the value of the "last_seen" field.
func (u *OnlineStatusUpsertOne) ClearLastSeen() *OnlineStatusUpsertOne {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.ClearLastSeen()
	})
}

// Exec executes the query.
func (u *OnlineStatusUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OnlineStatusCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OnlineStatusUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OnlineStatusUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: OnlineStatusUpsertOne.ID is not supported by MySQL driver. Use OnlineStatusUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OnlineStatusUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OnlineStatusCreateBulk is the builder for creating many OnlineStatus entities in bulk.
type OnlineStatusCreateBulk struct {
	config
	err      error
	builders []*OnlineStatusCreate
	conflict []sql.ConflictOption
}

// Save creates the OnlineStatus entities in the database.
func (_c *OnlineStatusCreateBulk) Save(ctx context.Context) ([]*OnlineStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OnlineStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OnlineStatusMutation)
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
func (_c *OnlineStatusCreateBulk) SaveX(ctx context.Context) []*OnlineStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OnlineStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OnlineStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OnlineStatus.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OnlineStatusUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *OnlineStatusCreateBulk) OnConflict(opts ...sql.ConflictOption) *OnlineStatusUpsertBulk {
	_c.conflict = opts
	return &OnlineStatusUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OnlineStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OnlineStatusCreateBulk) OnConflictColumns(columns ...string) *OnlineStatusUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OnlineStatusUpsertBulk{
		create: _c,
	}
}

// OnlineStatusUpsertBulk is the builder for "upsert"-ing
// a bulk of OnlineStatus nodes.
type OnlineStatusUpsertBulk struct {
	create *OnlineStatusCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OnlineStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(onlinestatus.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OnlineStatusUpsertBulk) UpdateNewValues() *OnlineStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(onlinestatus.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OnlineStatus.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OnlineStatusUpsertBulk) Ignore() *OnlineStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OnlineStatusUpsertBulk) DoNothing() *OnlineStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OnlineStatusCreateBulk.OnConflict
// documentation for more info.
func (u *OnlineStatusUpsertBulk) Update(set func(*OnlineStatusUpsert)) *OnlineStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OnlineStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *OnlineStatusUpsertBulk) SetUserID(v uuid.UUID) *OnlineStatusUpsertBulk {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OnlineStatusUpsertBulk) UpdateUserID() *OnlineStatusUpsertBulk {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.UpdateUserID()
	})
}

// SetOnline sets the "online" field.
func (u *OnlineStatusUpsertBulk) SetOnline(v bool) *OnlineStatusUpsertBulk {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.SetOnline(v)
	})
}

// UpdateOnline sets the "online" field to the value that was provided on create.
func (u *OnlineStatusUpsertBulk) UpdateOnline() *OnlineStatusUpsertBulk {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.UpdateOnline()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *OnlineStatusUpsertBulk) SetLastSeen(v time.Time) *OnlineStatusUpsertBulk {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *OnlineStatusUpsertBulk) UpdateLastSeen() *OnlineStatusUpsertBulk {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.UpdateLastSeen()
	})
}

// ClearLastSeen clears the value of the "last_seen" field.
func (u *OnlineStatusUpsertBulk) ClearLastSeen() *OnlineStatusUpsertBulk {
	return u.Update(func(s *OnlineStatusUpsert) {
		s.ClearLastSeen()
	})
}

// Exec executes the query.
func (u *OnlineStatusUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the OnlineStatusCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for OnlineStatusCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OnlineStatusUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
