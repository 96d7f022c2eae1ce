package dto

import (
	"time"

	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/resource"
)

// Constraint is the external projection of a scheduling constraint.
type Constraint struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind"`
	StaffID   *int64    `json:"staffId"`
	StaffName *string   `json:"staffName"`
	DayOfWeek *int      `json:"dayOfWeek"`
	Weight    int       `json:"weight"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewConstraint maps a raw listing row onto the wire shape.
func NewConstraint(row models.ConstraintRow) Constraint {
	return Constraint{
		ID:        row.ID,
		Title:     row.Title,
		Kind:      row.Kind,
		StaffID:   row.StaffID,
		StaffName: row.StaffName,
		DayOfWeek: row.DayOfWeek,
		Weight:    row.Weight,
		CreatedAt: row.CreatedAt,
	}
}

// CreateConstraintRequest holds the payload for creating constraints.
type CreateConstraintRequest struct {
	Title     string `json:"title" db:"title" validate:"required"`
	Kind      string `json:"kind" db:"kind" validate:"required,oneof=AVAILABILITY ROOM PRECEDENCE"`
	StaffID   *int64 `json:"staffId" db:"staff_id"`
	DayOfWeek *int   `json:"dayOfWeek" db:"day_of_week" validate:"omitempty,min=0,max=6"`
	Weight    int    `json:"weight" db:"weight" validate:"min=1,max=10"`
}

// UpdateConstraintRequest holds the payload for updating constraints.
type UpdateConstraintRequest struct {
	resource.WithID
	Title     string `json:"title" db:"title" validate:"required"`
	Kind      string `json:"kind" db:"kind" validate:"required,oneof=AVAILABILITY ROOM PRECEDENCE"`
	StaffID   *int64 `json:"staffId" db:"staff_id"`
	DayOfWeek *int   `json:"dayOfWeek" db:"day_of_week" validate:"omitempty,min=0,max=6"`
	Weight    int    `json:"weight" db:"weight" validate:"min=1,max=10"`
}
