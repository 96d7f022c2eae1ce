package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unisched/campus-api/internal/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCatalogRouter(t *testing.T, opts Options) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	// List and Count run concurrently, so arrival order is not fixed.
	mock.MatchExpectationsInOrder(false)

	r := gin.New()
	api := r.Group("/api/v1")
	for _, res := range Build(sqlx.NewDb(db, "sqlmock"), validator.New(), zap.NewNop(), opts) {
		res.Register(api)
	}
	return r, mock
}

func TestBuildMountsAllEntities(t *testing.T) {
	r, _ := newCatalogRouter(t, Options{ExportsEnabled: true})

	paths := make(map[string]bool)
	for _, route := range r.Routes() {
		paths[route.Method+" "+route.Path] = true
	}

	for _, name := range []string{"departments", "buildings", "courses", "modules", "staff", "constraints"} {
		assert.True(t, paths["GET /api/v1/"+name], name)
		assert.True(t, paths["GET /api/v1/"+name+"/:id"], name)
		assert.True(t, paths["POST /api/v1/"+name], name)
		assert.True(t, paths["PUT /api/v1/"+name+"/:id"], name)
		assert.True(t, paths["DELETE /api/v1/"+name+"/:id"], name)
		assert.True(t, paths["GET /api/v1/"+name+"/export"], name)
	}
}

func TestBuildExportsDisabled(t *testing.T) {
	r, _ := newCatalogRouter(t, Options{})

	for _, route := range r.Routes() {
		assert.NotContains(t, route.Path, "/export")
	}
}

func TestCoursesListJoinsDepartment(t *testing.T) {
	r, mock := newCatalogRouter(t, Options{})

	dept := "Mathematics"
	listSQL := "SELECT c.id, c.name, c.code, c.department_id, c.credits, c.created_at, d.name AS department_name " +
		"FROM courses c LEFT JOIN departments d ON d.id = c.department_id " +
		"WHERE 1=1 AND c.department_id = $1 ORDER BY c.name ASC LIMIT 10 OFFSET 0"
	mock.ExpectQuery(regexp.QuoteMeta(listSQL)).
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "department_id", "credits", "created_at", "department_name"}).
			AddRow(1, "Linear Algebra", "MATH-201", 7, 10, time.Now(), dept))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM courses c LEFT JOIN departments d ON d.id = c.department_id WHERE 1=1 AND c.department_id = $1")).
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses?departmentId=7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Items      []dto.Course `json:"items"`
		TotalItems int          `json:"totalItems"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	require.NotNil(t, body.Items[0].DepartmentName)
	assert.Equal(t, dept, *body.Items[0].DepartmentName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStaffListNullDepartmentProjectsNull(t *testing.T) {
	r, mock := newCatalogRouter(t, Options{})

	listSQL := "SELECT s.id, s.full_name, s.email, s.title, s.department_id, s.image_url, s.created_at, d.name AS department_name " +
		"FROM staff s LEFT JOIN departments d ON d.id = s.department_id " +
		"WHERE 1=1 ORDER BY s.full_name ASC LIMIT 10 OFFSET 0"
	mock.ExpectQuery(regexp.QuoteMeta(listSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "title", "department_id", "image_url", "created_at", "department_name"}).
			AddRow(1, "Ada Byron", "ada@campus.example", "Lecturer", 3, "", time.Now(), nil))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM staff s LEFT JOIN departments d ON d.id = s.department_id WHERE 1=1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/staff", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body struct {
		Items []dto.Staff `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Nil(t, body.Items[0].DepartmentName)
	assert.Contains(t, w.Body.String(), `"departmentName":null`)
}

func TestCoursesCreateValidationError(t *testing.T) {
	r, _ := newCatalogRouter(t, Options{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", nil)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestDefinitionSortAllowlistsQualifyColumns(t *testing.T) {
	defs := []struct {
		name        string
		sortColumns map[string]string
	}{
		{"departments", Departments().Query.SortColumns},
		{"buildings", Buildings().Query.SortColumns},
		{"courses", Courses().Query.SortColumns},
		{"modules", Modules().Query.SortColumns},
		{"staff", Staff().Query.SortColumns},
		{"constraints", Constraints().Query.SortColumns},
	}
	for _, def := range defs {
		require.NotEmpty(t, def.sortColumns, def.name)
		for external, column := range def.sortColumns {
			assert.NotContains(t, external, ".", "%s exposes external names", def.name)
			assert.Contains(t, column, ".", "%s maps to qualified columns", def.name)
		}
	}
}

func TestDefinitionFilterParamsMatchSchema(t *testing.T) {
	check := func(name string, params []string, columns map[string]string) {
		for _, p := range params {
			_, ok := columns[p]
			assert.True(t, ok, "%s filter %q has a schema column", name, p)
		}
	}
	check("courses", Courses().FilterParams, Courses().Schema.FilterColumns)
	check("modules", Modules().FilterParams, Modules().Schema.FilterColumns)
	check("staff", Staff().FilterParams, Staff().Schema.FilterColumns)
	check("constraints", Constraints().FilterParams, Constraints().Schema.FilterColumns)
}
