package catalog

import (
	"strconv"

	"github.com/unisched/campus-api/internal/dto"
	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/query"
	"github.com/unisched/campus-api/internal/resource"
)

// Staff defines the staff resource, projected with its department.
func Staff() resource.Definition[models.StaffRow, dto.Staff] {
	return resource.Definition[models.StaffRow, dto.Staff]{
		Name:     "staff",
		Singular: "staff member",
		Schema: resource.Schema{
			Table:         "staff s",
			Joins:         "LEFT JOIN departments d ON d.id = s.department_id",
			SelectColumns: "s.id, s.full_name, s.email, s.title, s.department_id, s.image_url, s.created_at, d.name AS department_name",
			IDColumn:      "s.id",
			SearchColumns: []string{"s.full_name", "s.email"},
			FilterColumns: map[string]string{
				"departmentId": "s.department_id",
			},
			InsertQuery: "INSERT INTO staff (full_name, email, title, department_id, image_url, created_at) VALUES (:full_name, :email, :title, :department_id, :image_url, NOW()) RETURNING id",
			UpdateQuery: "UPDATE staff SET full_name = :full_name, email = :email, title = :title, department_id = :department_id, image_url = :image_url WHERE id = :id",
			DeleteQuery: "DELETE FROM staff WHERE id = $1",
		},
		Query: query.Builder{
			SortColumns: map[string]string{
				"fullName":  "s.full_name",
				"email":     "s.email",
				"createdAt": "s.created_at",
			},
			DefaultSort: "s.full_name",
		},
		Project:      dto.NewStaff,
		FilterParams: []string{"departmentId"},
		NewCreate:    func() any { return &dto.CreateStaffRequest{} },
		NewUpdate:    func() resource.Identified { return &dto.UpdateStaffRequest{} },
		ExportHeaders: []string{"ID", "Name", "Email", "Title", "Department"},
		ExportRow: func(d dto.Staff) []string {
			department := ""
			if d.DepartmentName != nil {
				department = *d.DepartmentName
			}
			return []string{strconv.FormatInt(d.ID, 10), d.FullName, d.Email, d.Title, department}
		},
	}
}
