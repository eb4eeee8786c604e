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
	"github.com/telecare/telecare_backend/internal/repo/onlinestatus"
	"github.com/telecare/telecare_backend/internal/repo/predicate"
)

// OnlineStatusUpdate is the builder for updating OnlineStatus entities.
type OnlineStatusUpdate struct {
	config
	hooks    []Hook
	mutation *OnlineStatusMutation
}

// Where appends a list predicates to the OnlineStatusUpdate builder.
func (_u *OnlineStatusUpdate) Where(ps ...predicate.OnlineStatus) *OnlineStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OnlineStatusUpdate) SetUserID(v uuid.UUID) *OnlineStatusUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OnlineStatusUpdate) SetNillableUserID(v *uuid.UUID) *OnlineStatusUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOnline sets the "online" field.
func (_u *OnlineStatusUpdate) SetOnline(v bool) *OnlineStatusUpdate {
	_u.mutation.SetOnline(v)
	return _u
}

// SetNillableOnline sets the "online" field if the given value is not nil.
func (_u *OnlineStatusUpdate) SetNillableOnline(v *bool) *OnlineStatusUpdate {
	if v != nil {
		_u.SetOnline(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *OnlineStatusUpdate) SetLastSeen(v time.Time) *OnlineStatusUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *OnlineStatusUpdate) SetNillableLastSeen(v *time.Time) *OnlineStatusUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (_u *OnlineStatusUpdate) ClearLastSeen() *OnlineStatusUpdate {
	_u.mutation.ClearLastSeen()
	return _u
}

// Mutation returns the OnlineStatusMutation object of the builder.
func (_u *OnlineStatusUpdate) Mutation() *OnlineStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OnlineStatusUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnlineStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OnlineStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnlineStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OnlineStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(onlinestatus.Table, onlinestatus.Columns, sqlgraph.NewFieldSpec(onlinestatus.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(onlinestatus.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Online(); ok {
		_spec.SetField(onlinestatus.FieldOnline, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(onlinestatus.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.LastSeenCleared() {
		_spec.ClearField(onlinestatus.FieldLastSeen, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onlinestatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OnlineStatusUpdateOne is the builder for updating a single OnlineStatus entity.
type OnlineStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OnlineStatusMutation
}

// SetUserID sets the "user_id" field.
func (_u *OnlineStatusUpdateOne) SetUserID(v uuid.UUID) *OnlineStatusUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OnlineStatusUpdateOne) SetNillableUserID(v *uuid.UUID) *OnlineStatusUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetOnline sets the "online" field.
func (_u *OnlineStatusUpdateOne) SetOnline(v bool) *OnlineStatusUpdateOne {
	_u.mutation.SetOnline(v)
	return _u
}

// SetNillableOnline sets the "online" field if the given value is not nil.
func (_u *OnlineStatusUpdateOne) SetNillableOnline(v *bool) *OnlineStatusUpdateOne {
	if v != nil {
		_u.SetOnline(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *OnlineStatusUpdateOne) SetLastSeen(v time.Time) *OnlineStatusUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *OnlineStatusUpdateOne) SetNillableLastSeen(v *time.Time) *OnlineStatusUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (_u *OnlineStatusUpdateOne) ClearLastSeen() *OnlineStatusUpdateOne {
	_u.mutation.ClearLastSeen()
	return _u
}

// Mutation returns the OnlineStatusMutation object of the builder.
func (_u *OnlineStatusUpdateOne) Mutation() *OnlineStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the OnlineStatusUpdate builder.
func (_u *OnlineStatusUpdateOne) Where(ps ...predicate.OnlineStatus) *OnlineStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OnlineStatusUpdateOne) Select(field string, fields ...string) *OnlineStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OnlineStatus entity.
func (_u *OnlineStatusUpdateOne) Save(ctx context.Context) (*OnlineStatus, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OnlineStatusUpdateOne) SaveX(ctx context.Context) *OnlineStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OnlineStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OnlineStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *OnlineStatusUpdateOne) sqlSave(ctx context.Context) (_node *OnlineStatus, err error) {
	_spec := sqlgraph.NewUpdateSpec(onlinestatus.Table, onlinestatus.Columns, sqlgraph.NewFieldSpec(onlinestatus.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "OnlineStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, onlinestatus.FieldID)
		for _, f := range fields {
			if !onlinestatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != onlinestatus.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(onlinestatus.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Online(); ok {
		_spec.SetField(onlinestatus.FieldOnline, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(onlinestatus.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.LastSeenCleared() {
		_spec.ClearField(onlinestatus.FieldLastSeen, field.TypeTime)
	}
	_node = &OnlineStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{onlinestatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
