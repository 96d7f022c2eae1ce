package query

import (
	"strconv"
	"strings"

	appErrors "github.com/unisched/campus-api/pkg/errors"
)

// Sort directions accepted on the wire.
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Params carries the raw, untrusted listing parameters from a request.
type Params struct {
	Page       string
	PageSize   string
	Search     string
	SortColumn string
	SortOrder  string
	Filters    map[string]string
}

// Spec is a validated, storage-agnostic description of listing intent.
// SortColumn holds the storage column resolved through the allowlist, never
// caller input.
type Spec struct {
	Page       int
	PageSize   int
	Search     string
	SortColumn string
	SortOrder  string
	Filters    map[string]string
}

// Offset returns the row offset for the page. Build guarantees page and
// pageSize are >= 1, so the result is never negative.
func (s Spec) Offset() int {
	return (s.Page - 1) * s.PageSize
}

// Builder validates listing parameters against a per-entity configuration.
type Builder struct {
	// SortColumns maps external sort names onto storage column references.
	SortColumns map[string]string
	// DefaultSort is the storage column used when no or an unknown sort
	// column is requested.
	DefaultSort     string
	DefaultPageSize int
	MaxPageSize     int
}

// Build normalises raw parameters into a Spec.
//
// Non-numeric or non-positive page/pageSize values are rejected rather than
// silently coerced. Oversized pageSize is clamped to MaxPageSize. An unknown
// sortColumn falls back to DefaultSort; it is never passed through verbatim.
func (b Builder) Build(p Params) (Spec, error) {
	defaultSize := b.DefaultPageSize
	if defaultSize <= 0 {
		defaultSize = 10
	}
	maxSize := b.MaxPageSize
	if maxSize <= 0 {
		maxSize = 100
	}

	page, err := parsePositive(p.Page, 1)
	if err != nil {
		return Spec{}, appErrors.Clone(appErrors.ErrInvalidPagination, "page must be a positive integer")
	}
	size, err := parsePositive(p.PageSize, defaultSize)
	if err != nil {
		return Spec{}, appErrors.Clone(appErrors.ErrInvalidPagination, "pageSize must be a positive integer")
	}
	if size > maxSize {
		size = maxSize
	}

	column := b.DefaultSort
	if requested := strings.TrimSpace(p.SortColumn); requested != "" {
		if mapped, ok := b.SortColumns[requested]; ok {
			column = mapped
		}
	}

	order := strings.ToUpper(strings.TrimSpace(p.SortOrder))
	if order != OrderAsc && order != OrderDesc {
		order = OrderAsc
	}

	spec := Spec{
		Page:       page,
		PageSize:   size,
		Search:     strings.TrimSpace(p.Search),
		SortColumn: column,
		SortOrder:  order,
	}
	if len(p.Filters) > 0 {
		spec.Filters = make(map[string]string, len(p.Filters))
		for key, value := range p.Filters {
			if value == "" {
				continue
			}
			spec.Filters[key] = value
		}
	}
	return spec, nil
}

func parsePositive(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, appErrors.ErrInvalidPagination
	}
	return n, nil
}
