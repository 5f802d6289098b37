// Package paging holds the list query shared by the repositories: limit, offset and an
// optional sort column restricted to a per-aggregate allow list.
package paging

import (
	"fmt"
	"slices"

	"github.com/MGTheTrain/auth-admin/internal/pkg/validators"
)

// Sort orders
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Query represents paging and sorting parameters
type Query struct {
	Limit     int    `validate:"omitempty,gt=0"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// Validate checks the query and that SortBy is one of the allowed columns.
func (q *Query) Validate(sortable ...string) error {
	if err := validators.Struct(q); err != nil {
		return err
	}
	if q.SortBy != "" && !slices.Contains(sortable, q.SortBy) {
		return fmt.Errorf("validation failed: cannot sort by %q", q.SortBy)
	}
	return nil
}

// OrderClause renders the ORDER BY expression, or "" when no sort column is set.
func (q *Query) OrderClause() string {
	if q.SortBy == "" {
		return ""
	}
	order := q.SortOrder
	if order == "" {
		order = SortAsc
	}
	return fmt.Sprintf("%s %s", q.SortBy, order)
}
