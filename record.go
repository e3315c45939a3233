package acctreports

import (
	"encoding/json"
	"fmt"
)

// Field names shared by all reports.
const (
	FieldCode     = "code"
	FieldType     = "type"
	FieldFullName = "fullname"
	FieldBalance  = "balance"
	FieldPeriod   = "period"

	FieldActualCode    = "actual_code"
	FieldActual        = "actual"
	FieldActualBalance = "actual_balance"
	FieldBudgetCode    = "budget_code"
	FieldBudget        = "budget"
	FieldBudgetBalance = "budget_balance"
)

// Field is a named value of a Record.
type Field struct {
	Key   string
	Value any
}

// F is a short hand to create a Field.
func F(key string, value any) Field { return Field{Key: key, Value: value} }

// Record is an ordered set of fields, one report row.
type Record struct {
	fields []Field
}

// NewRecord creates a record with fields in the given order.
func NewRecord(fields ...Field) Record {
	return Record{fields: append([]Field(nil), fields...)}
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Keys returns the field names in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Strings returns the field values formatted as text, in order.
func (r Record) Strings() []string {
	values := make([]string, len(r.fields))
	for i, f := range r.fields {
		values[i] = text(f.Value)
	}
	return values
}

// Get returns the value of the field named key.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func text(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// MarshalJSON writes the record as a JSON object with keys in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, f := range r.fields {
		w.Append(f.Key, f.Value)
	}
	return w.MarshalJSON()
}

var _ json.Marshaler = Record{}
