package dto

import (
	"time"

	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/resource"
)

// Department is the external projection of a department record.
type Department struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewDepartment maps a raw record onto the wire shape.
func NewDepartment(row models.Department) Department {
	return Department{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}

// CreateDepartmentRequest holds the payload for creating departments.
type CreateDepartmentRequest struct {
	Name string `json:"name" db:"name" validate:"required"`
}

// UpdateDepartmentRequest holds the payload for updating departments.
type UpdateDepartmentRequest struct {
	resource.WithID
	Name string `json:"name" db:"name" validate:"required"`
}
