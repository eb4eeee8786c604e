// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/telecare/telecare_backend/internal/repo/onlinestatus"
)

// OnlineStatus is the model entity for the OnlineStatus schema.
type OnlineStatus struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Online holds the value of the "online" field.
	Online bool `json:"online,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     *time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OnlineStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case onlinestatus.FieldOnline:
			values[i] = new(sql.NullBool)
		case onlinestatus.FieldLastSeen:
			values[i] = new(sql.NullTime)
		case onlinestatus.FieldID, onlinestatus.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OnlineStatus fields.
func (_m *OnlineStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case onlinestatus.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case onlinestatus.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case onlinestatus.FieldOnline:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field online", values[i])
			} else if value.Valid {
				_m.Online = value.Bool
			}
		case onlinestatus.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = new(time.Time)
				*_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OnlineStatus.
// This includes values selected through modifiers, order, etc.
func (_m *OnlineStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OnlineStatus.
// Note that you need to call OnlineStatus.Unwrap() before calling this method if this OnlineStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OnlineStatus) Update() *OnlineStatusUpdateOne {
	return NewOnlineStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OnlineStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OnlineStatus) Unwrap() *OnlineStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: OnlineStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OnlineStatus) String() string {
	var builder strings.Builder
	builder.WriteString("OnlineStatus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("online=")
	builder.WriteString(fmt.Sprintf("%v", _m.Online))
	builder.WriteString(", ")
	if v := _m.LastSeen; v != nil {
		builder.WriteString("last_seen=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// OnlineStatusSlice is a parsable slice of OnlineStatus.
type OnlineStatusSlice []*OnlineStatus
