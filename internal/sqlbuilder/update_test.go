package sqlbuilder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialUpdateTranslatesColumns(t *testing.T) {
	set, vals, err := PartialUpdate(
		[]Field{{Name: "firstName", Value: "Aliya"}, {Name: "age", Value: 32}},
		map[string]string{"firstName": "first_name"},
	)

	assert.NoError(t, err)
	assert.Equal(t, `"first_name"=$1, "age"=$2`, set)
	assert.Equal(t, []any{"Aliya", 32}, vals)
}

func TestPartialUpdateSingleField(t *testing.T) {
	set, vals, err := PartialUpdate(
		[]Field{{Name: "numEmployees", Value: 42}},
		map[string]string{"numEmployees": "num_employees"},
	)

	assert.NoError(t, err)
	assert.Equal(t, `"num_employees"=$1`, set)
	assert.Equal(t, []any{42}, vals)
}

func TestPartialUpdateFallsBackToFieldName(t *testing.T) {
	set, vals, err := PartialUpdate([]Field{{Name: "description", Value: "New"}}, nil)

	assert.NoError(t, err)
	assert.Equal(t, `"description"=$1`, set)
	assert.Equal(t, []any{"New"}, vals)
}

func TestPartialUpdatePreservesFieldOrder(t *testing.T) {
	fields := []Field{
		{Name: "d", Value: 4},
		{Name: "a", Value: 1},
		{Name: "c", Value: 3},
		{Name: "b", Value: 2},
	}

	set, vals, err := PartialUpdate(fields, nil)

	assert.NoError(t, err)
	assert.Equal(t, `"d"=$1, "a"=$2, "c"=$3, "b"=$4`, set)
	assert.Equal(t, []any{4, 1, 3, 2}, vals)
}

func TestPartialUpdateOneFragmentPerField(t *testing.T) {
	fields := []Field{
		{Name: "name", Value: "n"},
		{Name: "description", Value: "d"},
		{Name: "logoUrl", Value: "l"},
	}

	set, vals, err := PartialUpdate(fields, map[string]string{"logoUrl": "logo_url"})

	assert.NoError(t, err)
	assert.Equal(t, len(fields), strings.Count(set, "=$"))
	assert.Len(t, vals, len(fields))
}

func TestPartialUpdateEmptyFields(t *testing.T) {
	_, _, err := PartialUpdate(nil, map[string]string{"firstName": "first_name"})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	_, _, err = PartialUpdate([]Field{}, nil)
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}
