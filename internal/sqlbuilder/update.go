package sqlbuilder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyUpdate is returned by PartialUpdate when no fields are supplied.
// An update that would touch nothing is a client error, not a silent no-op.
var ErrEmptyUpdate = errors.New("no fields to update")

// Field is one column assignment. Order matters: fragments and values are
// emitted in the order the fields appear.
type Field struct {
	Name  string
	Value any
}

// PartialUpdate renders the SET fragment of an UPDATE statement from an
// ordered field list.
//
// columnFor translates exposed field names to column names; a name missing
// from the map is used verbatim. Placeholders start at $1 and the returned
// values align with them:
//
//	PartialUpdate(
//		[]Field{{"firstName", "Aliya"}, {"age", 32}},
//		map[string]string{"firstName": "first_name"},
//	)
//	// `"first_name"=$1, "age"=$2`, []any{"Aliya", 32}
func PartialUpdate(fields []Field, columnFor map[string]string) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, ErrEmptyUpdate
	}

	assignments := make([]string, 0, len(fields))
	values := make([]any, 0, len(fields))
	for i, f := range fields {
		column, ok := columnFor[f.Name]
		if !ok {
			column = f.Name
		}
		assignments = append(assignments, fmt.Sprintf("\"%s\"=$%d", column, i+1))
		values = append(values, f.Value)
	}

	return strings.Join(assignments, ", "), values, nil
}
