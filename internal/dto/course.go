package dto

import (
	"time"

	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/resource"
)

// Course is the external projection of a course record. DepartmentName is
// joined and null when the department row is missing.
type Course struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	DepartmentID   int64     `json:"departmentId"`
	DepartmentName *string   `json:"departmentName"`
	Credits        int       `json:"credits"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewCourse maps a raw listing row onto the wire shape.
func NewCourse(row models.CourseRow) Course {
	return Course{
		ID:             row.ID,
		Name:           row.Name,
		Code:           row.Code,
		DepartmentID:   row.DepartmentID,
		DepartmentName: row.DepartmentName,
		Credits:        row.Credits,
		CreatedAt:      row.CreatedAt,
	}
}

// CreateCourseRequest holds the payload for creating courses.
type CreateCourseRequest struct {
	Name         string `json:"name" db:"name" validate:"required"`
	Code         string `json:"code" db:"code" validate:"required"`
	DepartmentID int64  `json:"departmentId" db:"department_id" validate:"required"`
	Credits      int    `json:"credits" db:"credits" validate:"gte=0"`
}

// UpdateCourseRequest holds the payload for updating courses.
type UpdateCourseRequest struct {
	resource.WithID
	Name         string `json:"name" db:"name" validate:"required"`
	Code         string `json:"code" db:"code" validate:"required"`
	DepartmentID int64  `json:"departmentId" db:"department_id" validate:"required"`
	Credits      int    `json:"credits" db:"credits" validate:"gte=0"`
}
