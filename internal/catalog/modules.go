package catalog

import (
	"strconv"

	"github.com/unisched/campus-api/internal/dto"
	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/query"
	"github.com/unisched/campus-api/internal/resource"
)

// Modules defines the module resource, projected with its owning course.
func Modules() resource.Definition[models.ModuleRow, dto.Module] {
	return resource.Definition[models.ModuleRow, dto.Module]{
		Name:     "modules",
		Singular: "module",
		Schema: resource.Schema{
			Table:         "modules m",
			Joins:         "LEFT JOIN courses c ON c.id = m.course_id",
			SelectColumns: "m.id, m.name, m.code, m.course_id, m.semester, m.created_at, c.name AS course_name",
			IDColumn:      "m.id",
			SearchColumns: []string{"m.name", "m.code"},
			FilterColumns: map[string]string{
				"courseId": "m.course_id",
				"semester": "m.semester",
			},
			InsertQuery: "INSERT INTO modules (name, code, course_id, semester, created_at) VALUES (:name, :code, :course_id, :semester, NOW()) RETURNING id",
			UpdateQuery: "UPDATE modules SET name = :name, code = :code, course_id = :course_id, semester = :semester WHERE id = :id",
			DeleteQuery: "DELETE FROM modules WHERE id = $1",
		},
		Query: query.Builder{
			SortColumns: map[string]string{
				"name":      "m.name",
				"code":      "m.code",
				"semester":  "m.semester",
				"createdAt": "m.created_at",
			},
			DefaultSort: "m.name",
		},
		Project:      dto.NewModule,
		FilterParams: []string{"courseId", "semester"},
		NewCreate:    func() any { return &dto.CreateModuleRequest{} },
		NewUpdate:    func() resource.Identified { return &dto.UpdateModuleRequest{} },
		ExportHeaders: []string{"ID", "Name", "Code", "Course", "Semester"},
		ExportRow: func(d dto.Module) []string {
			course := ""
			if d.CourseName != nil {
				course = *d.CourseName
			}
			return []string{strconv.FormatInt(d.ID, 10), d.Name, d.Code, course, strconv.Itoa(d.Semester)}
		},
	}
}
