package dto

import (
	"time"

	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/resource"
)

// Staff is the external projection of a staff record.
type Staff struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	Title          string    `json:"title"`
	DepartmentID   int64     `json:"departmentId"`
	DepartmentName *string   `json:"departmentName"`
	ImageURL       *string   `json:"imageUrl"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewStaff maps a raw listing row onto the wire shape.
func NewStaff(row models.StaffRow) Staff {
	return Staff{
		ID:             row.ID,
		FullName:       row.FullName,
		Email:          row.Email,
		Title:          row.Title,
		DepartmentID:   row.DepartmentID,
		DepartmentName: row.DepartmentName,
		ImageURL:       row.ImageURL,
		CreatedAt:      row.CreatedAt,
	}
}

// CreateStaffRequest holds the payload for creating staff members.
// ImageURL typically carries the url returned by the upload endpoint.
type CreateStaffRequest struct {
	FullName     string  `json:"fullName" db:"full_name" validate:"required"`
	Email        string  `json:"email" db:"email" validate:"required,email"`
	Title        string  `json:"title" db:"title"`
	DepartmentID int64   `json:"departmentId" db:"department_id" validate:"required"`
	ImageURL     *string `json:"imageUrl" db:"image_url"`
}

// UpdateStaffRequest holds the payload for updating staff members.
type UpdateStaffRequest struct {
	resource.WithID
	FullName     string  `json:"fullName" db:"full_name" validate:"required"`
	Email        string  `json:"email" db:"email" validate:"required,email"`
	Title        string  `json:"title" db:"title"`
	DepartmentID int64   `json:"departmentId" db:"department_id" validate:"required"`
	ImageURL     *string `json:"imageUrl" db:"image_url"`
}
