package dto

import (
	"time"

	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/resource"
)

// Module is the external projection of a module record.
type Module struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	CourseID   int64     `json:"courseId"`
	CourseName *string   `json:"courseName"`
	Semester   int       `json:"semester"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewModule maps a raw listing row onto the wire shape.
func NewModule(row models.ModuleRow) Module {
	return Module{
		ID:         row.ID,
		Name:       row.Name,
		Code:       row.Code,
		CourseID:   row.CourseID,
		CourseName: row.CourseName,
		Semester:   row.Semester,
		CreatedAt:  row.CreatedAt,
	}
}

// CreateModuleRequest holds the payload for creating modules.
type CreateModuleRequest struct {
	Name     string `json:"name" db:"name" validate:"required"`
	Code     string `json:"code" db:"code" validate:"required"`
	CourseID int64  `json:"courseId" db:"course_id" validate:"required"`
	Semester int    `json:"semester" db:"semester" validate:"min=1,max=12"`
}

// UpdateModuleRequest holds the payload for updating modules.
type UpdateModuleRequest struct {
	resource.WithID
	Name     string `json:"name" db:"name" validate:"required"`
	Code     string `json:"code" db:"code" validate:"required"`
	CourseID int64  `json:"courseId" db:"course_id" validate:"required"`
	Semester int    `json:"semester" db:"semester" validate:"min=1,max=12"`
}
