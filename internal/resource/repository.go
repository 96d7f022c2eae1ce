package resource

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/unisched/campus-api/internal/query"
)

// QueryObserver receives per-query timings, typically the metrics service.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// Repository executes validated query specs against one entity's storage.
// R is the raw row type including joined projection columns.
type Repository[R any] struct {
	db       *sqlx.DB
	schema   Schema
	observer QueryObserver
}

// NewRepository constructs a Repository for the given schema.
func NewRepository[R any](db *sqlx.DB, schema Schema) *Repository[R] {
	return &Repository[R]{db: db, schema: schema}
}

// WithObserver attaches a query timing observer.
func (r *Repository[R]) WithObserver(observer QueryObserver) *Repository[R] {
	r.observer = observer
	return r
}

func (r *Repository[R]) observe(label string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveDBQuery(label, time.Since(start))
	}
}

// List returns the rows selected by the spec, ordered and paginated.
func (r *Repository[R]) List(ctx context.Context, spec query.Spec) ([]R, error) {
	defer r.observe("list "+r.schema.Table, time.Now())
	where, args := r.predicate(spec.Search, spec.Filters)
	q := fmt.Sprintf("SELECT %s %s ORDER BY %s %s LIMIT %d OFFSET %d",
		r.schema.SelectColumns, r.from()+where, spec.SortColumn, spec.SortOrder, spec.PageSize, spec.Offset())

	rows := []R{}
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.schema.Table, err)
	}
	return rows, nil
}

// ListAll returns every row matching the spec's predicate and ordering,
// ignoring pagination. Used by listing exports.
func (r *Repository[R]) ListAll(ctx context.Context, spec query.Spec) ([]R, error) {
	defer r.observe("list all "+r.schema.Table, time.Now())
	where, args := r.predicate(spec.Search, spec.Filters)
	q := fmt.Sprintf("SELECT %s %s ORDER BY %s %s",
		r.schema.SelectColumns, r.from()+where, spec.SortColumn, spec.SortOrder)

	rows := []R{}
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("list all %s: %w", r.schema.Table, err)
	}
	return rows, nil
}

// Count mirrors List's predicate without pagination so totals stay
// consistent with the filtered set.
func (r *Repository[R]) Count(ctx context.Context, search string, filters map[string]string) (int, error) {
	defer r.observe("count "+r.schema.Table, time.Now())
	where, args := r.predicate(search, filters)
	q := fmt.Sprintf("SELECT COUNT(*) %s", r.from()+where)

	var total int
	if err := r.db.GetContext(ctx, &total, q, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.schema.Table, err)
	}
	return total, nil
}

// FindByID fetches a single row through the same join projection as List.
// Returns sql.ErrNoRows when the id is absent.
func (r *Repository[R]) FindByID(ctx context.Context, id int64) (*R, error) {
	defer r.observe("get "+r.schema.Table, time.Now())
	q := fmt.Sprintf("SELECT %s %s WHERE %s = $1",
		r.schema.SelectColumns, r.from(), r.schema.IDColumn)

	var row R
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// Create runs the schema's named insert and returns the new id.
func (r *Repository[R]) Create(ctx context.Context, payload any) (int64, error) {
	defer r.observe("insert "+r.schema.Table, time.Now())
	rows, err := r.db.NamedQueryContext(ctx, r.schema.InsertQuery, payload)
	if err != nil {
		return 0, err
	}
	defer rows.Close() //nolint:errcheck

	if !rows.Next() {
		return 0, fmt.Errorf("insert %s: no id returned", r.schema.Table)
	}
	var id int64
	if err := rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("insert %s: %w", r.schema.Table, err)
	}
	return id, nil
}

// Update runs the schema's named update. Returns sql.ErrNoRows when the
// payload's id matched nothing, so callers can distinguish a missing record
// from a successful no-op.
func (r *Repository[R]) Update(ctx context.Context, payload any) error {
	defer r.observe("update "+r.schema.Table, time.Now())
	result, err := r.db.NamedExecContext(ctx, r.schema.UpdateQuery, payload)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", r.schema.Table, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the row with the given id. Returns sql.ErrNoRows when
// nothing was deleted.
func (r *Repository[R]) Delete(ctx context.Context, id int64) error {
	defer r.observe("delete "+r.schema.Table, time.Now())
	result, err := r.db.ExecContext(ctx, r.schema.DeleteQuery, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.schema.Table, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *Repository[R]) from() string {
	base := "FROM " + r.schema.Table
	if r.schema.Joins != "" {
		base += " " + r.schema.Joins
	}
	return base
}

// predicate builds the WHERE clause shared by List, ListAll and Count.
// Search is a case-insensitive substring match across the schema's search
// columns; filters are exact-match conjunctions over allowlisted columns.
func (r *Repository[R]) predicate(search string, filters map[string]string) (string, []interface{}) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if search != "" && len(r.schema.SearchColumns) > 0 {
		arg := len(args) + 1
		matches := make([]string, 0, len(r.schema.SearchColumns))
		for _, column := range r.schema.SearchColumns {
			matches = append(matches, fmt.Sprintf("LOWER(%s) LIKE $%d", column, arg))
		}
		conditions = append(conditions, "("+strings.Join(matches, " OR ")+")")
		args = append(args, "%"+strings.ToLower(search)+"%")
	}

	keys := make([]string, 0, len(filters))
	for key := range filters {
		if _, ok := r.schema.FilterColumns[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", r.schema.FilterColumns[key], len(args)+1))
		args = append(args, filters[key])
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}
