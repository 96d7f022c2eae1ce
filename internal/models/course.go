package models

import "time"

// Course is a degree programme owned by a department.
type Course struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Code         string    `db:"code"`
	DepartmentID int64     `db:"department_id"`
	Credits      int       `db:"credits"`
	CreatedAt    time.Time `db:"created_at"`
}

// CourseRow is the listing projection including joined department context.
type CourseRow struct {
	Course
	DepartmentName *string `db:"department_name"`
}
