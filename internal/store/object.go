package store

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// Object is the store-native form of a record: its primary key plus named
// nullable text columns. A nil value is stored as SQL NULL.
type Object struct {
	Key    string
	Fields map[string]*string
}

func NewObject(key string) Object {
	return Object{Key: key, Fields: map[string]*string{}}
}

// Set stores a present value.
func (o Object) Set(column, value string) {
	o.Fields[column] = &value
}

// SetNullable stores value, or NULL when it is nil.
func (o Object) SetNullable(column string, value *string) {
	if value == nil {
		o.Fields[column] = nil
		return
	}
	v := *value
	o.Fields[column] = &v
}

// SetList stores a list as JSON text. A nil list is stored as NULL so that
// an absent list stays absent, while an empty one round-trips as empty.
func (o Object) SetList(column string, values []string) {
	if values == nil {
		o.Fields[column] = nil
		return
	}
	payload, _ := json.Marshal(values)
	o.Set(column, string(payload))
}

// String returns the column value, or "" when it is NULL or missing.
func (o Object) String(column string) string {
	if v := o.Fields[column]; v != nil {
		return *v
	}
	return ""
}

// Nullable returns a copy of the column value, or nil for NULL.
func (o Object) Nullable(column string) *string {
	v := o.Fields[column]
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// List decodes a column written by SetList.
func (o Object) List(column string) ([]string, error) {
	v := o.Fields[column]
	if v == nil {
		return nil, nil
	}
	out := []string{}
	if err := json.Unmarshal([]byte(*v), &out); err != nil {
		return nil, fmt.Errorf("decode list column %s: %w", column, err)
	}
	return out, nil
}

// Persistable is implemented by every record type the store can hold.
type Persistable interface {
	PrimaryKey() string
	ToObject() Object
}

// Collection is the fixed table description of one record type.
type Collection[T Persistable] struct {
	// Name is the table name.
	Name string
	// Columns lists the non-key columns, in storage order.
	Columns []string
	// FromObject rebuilds a record from its stored form.
	FromObject func(Object) (T, error)
}

var identifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func (c Collection[T]) validate() error {
	if !identifier.MatchString(c.Name) {
		return fmt.Errorf("invalid collection name %q", c.Name)
	}
	seen := map[string]bool{keyColumn: true}
	for _, col := range c.Columns {
		if !identifier.MatchString(col) {
			return fmt.Errorf("invalid column name %q", col)
		}
		if seen[col] {
			return fmt.Errorf("duplicate column %q", col)
		}
		seen[col] = true
	}
	if c.FromObject == nil {
		return fmt.Errorf("collection %s has no FromObject", c.Name)
	}
	return nil
}
