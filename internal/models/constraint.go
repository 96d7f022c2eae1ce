package models

import "time"

// Constraint kinds recognised by the scheduling frontend.
const (
	ConstraintKindAvailability = "AVAILABILITY"
	ConstraintKindRoom         = "ROOM"
	ConstraintKindPrecedence   = "PRECEDENCE"
)

// Constraint is a scheduling preference or restriction, optionally bound to
// a staff member.
type Constraint struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Kind      string    `db:"kind"`
	StaffID   *int64    `db:"staff_id"`
	DayOfWeek *int      `db:"day_of_week"`
	Weight    int       `db:"weight"`
	CreatedAt time.Time `db:"created_at"`
}

// ConstraintRow is the listing projection including the owning staff name.
type ConstraintRow struct {
	Constraint
	StaffName *string `db:"staff_name"`
}
