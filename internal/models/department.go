package models

import "time"

// Department groups courses and staff members.
type Department struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
