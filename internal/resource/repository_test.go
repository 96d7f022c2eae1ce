package resource

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unisched/campus-api/internal/query"
)

type roomRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Code      string    `db:"code"`
	CreatedAt time.Time `db:"created_at"`
}

type roomCreate struct {
	Name string `db:"name"`
	Code string `db:"code"`
}

type roomUpdate struct {
	WithID
	Name string `db:"name"`
	Code string `db:"code"`
}

func roomSchema() Schema {
	return Schema{
		Table:         "rooms r",
		SelectColumns: "r.id, r.name, r.code, r.created_at",
		IDColumn:      "r.id",
		SearchColumns: []string{"r.name", "r.code"},
		FilterColumns: map[string]string{"code": "r.code"},
		InsertQuery:   "INSERT INTO rooms (name, code, created_at) VALUES (:name, :code, NOW()) RETURNING id",
		UpdateQuery:   "UPDATE rooms SET name = :name, code = :code WHERE id = :id",
		DeleteQuery:   "DELETE FROM rooms WHERE id = $1",
	}
}

func newRepoMock(t *testing.T) (*Repository[roomRow], sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	repo := NewRepository[roomRow](sqlx.NewDb(db, "sqlmock"), roomSchema())
	return repo, mock, func() { db.Close() }
}

func TestRepositoryListPlain(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "code", "created_at"}).
		AddRow(1, "Lecture Hall A", "LH-A", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT r.id, r.name, r.code, r.created_at FROM rooms r WHERE 1=1 ORDER BY r.name ASC LIMIT 10 OFFSET 0")).
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), query.Spec{
		Page: 1, PageSize: 10, SortColumn: "r.name", SortOrder: "ASC",
	})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListSearchAndFilter(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT r.id, r.name, r.code, r.created_at FROM rooms r WHERE 1=1 AND (LOWER(r.name) LIKE $1 OR LOWER(r.code) LIKE $1) AND r.code = $2 ORDER BY r.created_at DESC LIMIT 5 OFFSET 5")).
		WithArgs("%hall%", "LH-A").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "created_at"}))

	_, err := repo.List(context.Background(), query.Spec{
		Page: 2, PageSize: 5, Search: "Hall",
		SortColumn: "r.created_at", SortOrder: "DESC",
		Filters: map[string]string{"code": "LH-A"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCountMirrorsPredicate(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM rooms r WHERE 1=1 AND (LOWER(r.name) LIKE $1 OR LOWER(r.code) LIKE $1)")).
		WithArgs("%hall%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	total, err := repo.Count(context.Background(), "hall", nil)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUnknownFilterIgnored(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM rooms r WHERE 1=1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.Count(context.Background(), "", map[string]string{"bogus": "x"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryFindByID(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT r.id, r.name, r.code, r.created_at FROM rooms r WHERE r.id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "created_at"}).
			AddRow(7, "Lab 1", "L1", time.Now()))

	row, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), row.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryFindByIDMissing(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT r.id, r.name, r.code, r.created_at FROM rooms r WHERE r.id = $1")).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestRepositoryCreateReturnsID(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO rooms").
		WithArgs("Lab 2", "L2").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	id, err := repo.Create(context.Background(), roomCreate{Name: "Lab 2", Code: "L2"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateMissingRow(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec("UPDATE rooms SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	payload := &roomUpdate{Name: "Lab 2", Code: "L2"}
	payload.SetResourceID(999)
	err := repo.Update(context.Background(), payload)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestRepositoryDelete(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeleteMissingRow(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rooms WHERE id = $1")).
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
