package catalog

import (
	"strconv"

	"github.com/unisched/campus-api/internal/dto"
	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/query"
	"github.com/unisched/campus-api/internal/resource"
)

// Constraints defines the scheduling constraint resource. The portal only
// stores constraints; solving them is out of scope.
func Constraints() resource.Definition[models.ConstraintRow, dto.Constraint] {
	return resource.Definition[models.ConstraintRow, dto.Constraint]{
		Name:     "constraints",
		Singular: "constraint",
		Schema: resource.Schema{
			Table:         "scheduling_constraints sc",
			Joins:         "LEFT JOIN staff st ON st.id = sc.staff_id",
			SelectColumns: "sc.id, sc.title, sc.kind, sc.staff_id, sc.day_of_week, sc.weight, sc.created_at, st.full_name AS staff_name",
			IDColumn:      "sc.id",
			SearchColumns: []string{"sc.title"},
			FilterColumns: map[string]string{
				"kind":    "sc.kind",
				"staffId": "sc.staff_id",
			},
			InsertQuery: "INSERT INTO scheduling_constraints (title, kind, staff_id, day_of_week, weight, created_at) VALUES (:title, :kind, :staff_id, :day_of_week, :weight, NOW()) RETURNING id",
			UpdateQuery: "UPDATE scheduling_constraints SET title = :title, kind = :kind, staff_id = :staff_id, day_of_week = :day_of_week, weight = :weight WHERE id = :id",
			DeleteQuery: "DELETE FROM scheduling_constraints WHERE id = $1",
		},
		Query: query.Builder{
			SortColumns: map[string]string{
				"title":     "sc.title",
				"kind":      "sc.kind",
				"weight":    "sc.weight",
				"createdAt": "sc.created_at",
			},
			DefaultSort: "sc.created_at",
		},
		Project:      dto.NewConstraint,
		FilterParams: []string{"kind", "staffId"},
		NewCreate:    func() any { return &dto.CreateConstraintRequest{} },
		NewUpdate:    func() resource.Identified { return &dto.UpdateConstraintRequest{} },
		ExportHeaders: []string{"ID", "Title", "Kind", "Staff", "Weight"},
		ExportRow: func(d dto.Constraint) []string {
			staff := ""
			if d.StaffName != nil {
				staff = *d.StaffName
			}
			return []string{strconv.FormatInt(d.ID, 10), d.Title, d.Kind, staff, strconv.Itoa(d.Weight)}
		},
	}
}
