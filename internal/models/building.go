package models

import "time"

// Building represents a campus building rooms are scheduled into.
type Building struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Code      string    `db:"code"`
	Address   string    `db:"address"`
	Floors    int       `db:"floors"`
	CreatedAt time.Time `db:"created_at"`
}
