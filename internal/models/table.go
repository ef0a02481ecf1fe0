package models

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInconsistentColumns = errors.New("record columns do not match table columns")

type valueKind uint8

const (
	missingValue valueKind = iota
	stringValue
	numberValue
)

// Value is a single raw cell: a string, a number, or missing.
type Value struct {
	kind valueKind
	str  string
	num  float64
}

func String(s string) Value  { return Value{kind: stringValue, str: s} }
func Number(f float64) Value { return Value{kind: numberValue, num: f} }
func Missing() Value         { return Value{} }

func (v Value) IsMissing() bool { return v.kind == missingValue }

// Number returns the numeric payload when the value was built with Number.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == numberValue
}

// String coerces the value to text. Missing values render as the empty string.
func (v Value) String() string {
	switch v.kind {
	case stringValue:
		return v.str
	case numberValue:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Record maps column name to raw value.
type Record map[string]Value

// Table is an ordered, immutable set of records sharing one column set.
type Table struct {
	columns []string
	records []Record
}

// NewTable validates that every record carries exactly the given columns.
// Records are copied so later changes by the caller do not leak in.
func NewTable(columns []string, records []Record) (*Table, error) {
	cols := append([]string(nil), columns...)
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		seen[c] = struct{}{}
	}

	recs := make([]Record, len(records))
	for i, r := range records {
		if len(r) != len(cols) {
			return nil, fmt.Errorf("record %d: %w", i, ErrInconsistentColumns)
		}
		cp := make(Record, len(r))
		for k, v := range r {
			if _, ok := seen[k]; !ok {
				return nil, fmt.Errorf("record %d: unknown column %q: %w", i, k, ErrInconsistentColumns)
			}
			cp[k] = v
		}
		recs[i] = cp
	}

	return &Table{columns: cols, records: recs}, nil
}

func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

func (t *Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

func (t *Table) Len() int { return len(t.records) }

// Column returns the values of one column in record order.
func (t *Table) Column(name string) ([]Value, bool) {
	if !t.HasColumn(name) {
		return nil, false
	}
	values := make([]Value, len(t.records))
	for i, r := range t.records {
		values[i] = r[name]
	}
	return values, true
}
