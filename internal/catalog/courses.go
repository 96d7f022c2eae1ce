package catalog

import (
	"strconv"

	"github.com/unisched/campus-api/internal/dto"
	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/query"
	"github.com/unisched/campus-api/internal/resource"
)

// Courses defines the course resource, projected with its owning department.
func Courses() resource.Definition[models.CourseRow, dto.Course] {
	return resource.Definition[models.CourseRow, dto.Course]{
		Name:     "courses",
		Singular: "course",
		Schema: resource.Schema{
			Table:         "courses c",
			Joins:         "LEFT JOIN departments d ON d.id = c.department_id",
			SelectColumns: "c.id, c.name, c.code, c.department_id, c.credits, c.created_at, d.name AS department_name",
			IDColumn:      "c.id",
			SearchColumns: []string{"c.name", "c.code"},
			FilterColumns: map[string]string{
				"departmentId": "c.department_id",
			},
			InsertQuery: "INSERT INTO courses (name, code, department_id, credits, created_at) VALUES (:name, :code, :department_id, :credits, NOW()) RETURNING id",
			UpdateQuery: "UPDATE courses SET name = :name, code = :code, department_id = :department_id, credits = :credits WHERE id = :id",
			DeleteQuery: "DELETE FROM courses WHERE id = $1",
		},
		Query: query.Builder{
			SortColumns: map[string]string{
				"name":      "c.name",
				"code":      "c.code",
				"credits":   "c.credits",
				"createdAt": "c.created_at",
			},
			DefaultSort: "c.name",
		},
		Project:      dto.NewCourse,
		FilterParams: []string{"departmentId"},
		NewCreate:    func() any { return &dto.CreateCourseRequest{} },
		NewUpdate:    func() resource.Identified { return &dto.UpdateCourseRequest{} },
		ExportHeaders: []string{"ID", "Name", "Code", "Department", "Credits"},
		ExportRow: func(d dto.Course) []string {
			department := ""
			if d.DepartmentName != nil {
				department = *d.DepartmentName
			}
			return []string{strconv.FormatInt(d.ID, 10), d.Name, d.Code, department, strconv.Itoa(d.Credits)}
		},
	}
}
