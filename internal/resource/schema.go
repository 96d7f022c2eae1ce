package resource

import (
	"errors"

	"github.com/lib/pq"
)

// Schema describes how one entity maps onto storage. Column references are
// fixed strings owned by the per-entity catalog, never caller input.
type Schema struct {
	// Table is the FROM clause target including its alias, e.g. "courses c".
	Table string
	// Joins holds optional JOIN clauses for projection columns.
	Joins string
	// SelectColumns is the projection list for listing and single reads.
	SelectColumns string
	// IDColumn is the qualified primary key reference, e.g. "c.id".
	IDColumn string
	// SearchColumns are matched case-insensitively against the search term.
	SearchColumns []string
	// FilterColumns maps recognised filter parameter names onto storage
	// columns used for exact-match conjunctions.
	FilterColumns map[string]string
	// InsertQuery is a named insert ending in RETURNING id.
	InsertQuery string
	// UpdateQuery is a named update keyed on :id.
	UpdateQuery string
	// DeleteQuery deletes by positional id.
	DeleteQuery string
}

// IsConstraintViolation reports whether err is a PostgreSQL integrity
// constraint failure (class 23), e.g. a missing foreign key.
func IsConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}
	return false
}
