package models

import "time"

// Module is a teaching unit delivered within a course.
type Module struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Code      string    `db:"code"`
	CourseID  int64     `db:"course_id"`
	Semester  int       `db:"semester"`
	CreatedAt time.Time `db:"created_at"`
}

// ModuleRow is the listing projection including joined course context.
type ModuleRow struct {
	Module
	CourseName *string `db:"course_name"`
}
