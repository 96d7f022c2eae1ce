package catalog

import (
	"strconv"

	"github.com/unisched/campus-api/internal/dto"
	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/query"
	"github.com/unisched/campus-api/internal/resource"
)

// Buildings defines the building resource.
func Buildings() resource.Definition[models.Building, dto.Building] {
	return resource.Definition[models.Building, dto.Building]{
		Name:     "buildings",
		Singular: "building",
		Schema: resource.Schema{
			Table:         "buildings b",
			SelectColumns: "b.id, b.name, b.code, b.address, b.floors, b.created_at",
			IDColumn:      "b.id",
			SearchColumns: []string{"b.name", "b.code"},
			FilterColumns: map[string]string{
				"code": "b.code",
			},
			InsertQuery: "INSERT INTO buildings (name, code, address, floors, created_at) VALUES (:name, :code, :address, :floors, NOW()) RETURNING id",
			UpdateQuery: "UPDATE buildings SET name = :name, code = :code, address = :address, floors = :floors WHERE id = :id",
			DeleteQuery: "DELETE FROM buildings WHERE id = $1",
		},
		Query: query.Builder{
			SortColumns: map[string]string{
				"name":      "b.name",
				"code":      "b.code",
				"floors":    "b.floors",
				"createdAt": "b.created_at",
			},
			DefaultSort: "b.name",
		},
		Project:      dto.NewBuilding,
		FilterParams: []string{"code"},
		NewCreate:    func() any { return &dto.CreateBuildingRequest{} },
		NewUpdate:    func() resource.Identified { return &dto.UpdateBuildingRequest{} },
		ExportHeaders: []string{"ID", "Name", "Code", "Address", "Floors"},
		ExportRow: func(d dto.Building) []string {
			return []string{strconv.FormatInt(d.ID, 10), d.Name, d.Code, d.Address, strconv.Itoa(d.Floors)}
		},
	}
}
