package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	assert.Equal(t, "", Missing().String())
	assert.Equal(t, "4", Number(4).String())
	assert.Equal(t, "2.5", Number(2.5).String())
	assert.Equal(t, "80%", String("80%").String())
	assert.True(t, Missing().IsMissing())

	n, ok := Number(3).Number()
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)

	_, ok = String("3").Number()
	assert.False(t, ok)
}

func TestNewTable_RejectsMismatchedRecords(t *testing.T) {
	_, err := NewTable([]string{"a", "b"}, []Record{
		{"a": String("x"), "b": String("y")},
		{"a": String("x")},
	})
	assert.ErrorIs(t, err, ErrInconsistentColumns)

	_, err = NewTable([]string{"a"}, []Record{{"b": String("x")}})
	assert.ErrorIs(t, err, ErrInconsistentColumns)

	_, err = NewTable([]string{"a", "a"}, nil)
	assert.Error(t, err)
}

func TestTable_IsolatedFromCaller(t *testing.T) {
	rec := Record{"a": String("x")}
	cols := []string{"a"}
	tbl, err := NewTable(cols, []Record{rec})
	require.NoError(t, err)

	rec["a"] = String("changed")
	cols[0] = "z"

	vals, ok := tbl.Column("a")
	require.True(t, ok)
	assert.Equal(t, "x", vals[0].String())
	assert.Equal(t, []string{"a"}, tbl.Columns())

	_, ok = tbl.Column("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, tbl.Len())
}
