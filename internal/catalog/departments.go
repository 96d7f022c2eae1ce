package catalog

import (
	"strconv"

	"github.com/unisched/campus-api/internal/dto"
	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/query"
	"github.com/unisched/campus-api/internal/resource"
)

// Departments defines the department resource.
func Departments() resource.Definition[models.Department, dto.Department] {
	return resource.Definition[models.Department, dto.Department]{
		Name:     "departments",
		Singular: "department",
		Schema: resource.Schema{
			Table:         "departments d",
			SelectColumns: "d.id, d.name, d.created_at",
			IDColumn:      "d.id",
			SearchColumns: []string{"d.name"},
			InsertQuery:   "INSERT INTO departments (name, created_at) VALUES (:name, NOW()) RETURNING id",
			UpdateQuery:   "UPDATE departments SET name = :name WHERE id = :id",
			DeleteQuery:   "DELETE FROM departments WHERE id = $1",
		},
		Query: query.Builder{
			SortColumns: map[string]string{
				"name":      "d.name",
				"createdAt": "d.created_at",
			},
			DefaultSort: "d.name",
		},
		Project:   dto.NewDepartment,
		NewCreate: func() any { return &dto.CreateDepartmentRequest{} },
		NewUpdate: func() resource.Identified { return &dto.UpdateDepartmentRequest{} },
		ExportHeaders: []string{"ID", "Name", "Created"},
		ExportRow: func(d dto.Department) []string {
			return []string{strconv.FormatInt(d.ID, 10), d.Name, d.CreatedAt.Format("2006-01-02")}
		},
	}
}
