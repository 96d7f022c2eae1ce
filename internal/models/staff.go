package models

import "time"

// Staff is a lecturer or administrator attached to a department.
type Staff struct {
	ID           int64     `db:"id"`
	FullName     string    `db:"full_name"`
	Email        string    `db:"email"`
	Title        string    `db:"title"`
	DepartmentID int64     `db:"department_id"`
	ImageURL     *string   `db:"image_url"`
	CreatedAt    time.Time `db:"created_at"`
}

// StaffRow is the listing projection including joined department context.
type StaffRow struct {
	Staff
	DepartmentName *string `db:"department_name"`
}
