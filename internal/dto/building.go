package dto

import (
	"time"

	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/resource"
)

// Building is the external projection of a building record.
type Building struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Address   string    `json:"address"`
	Floors    int       `json:"floors"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewBuilding maps a raw record onto the wire shape.
func NewBuilding(row models.Building) Building {
	return Building{
		ID:        row.ID,
		Name:      row.Name,
		Code:      row.Code,
		Address:   row.Address,
		Floors:    row.Floors,
		CreatedAt: row.CreatedAt,
	}
}

// CreateBuildingRequest holds the payload for creating buildings.
type CreateBuildingRequest struct {
	Name    string `json:"name" db:"name" validate:"required"`
	Code    string `json:"code" db:"code" validate:"required"`
	Address string `json:"address" db:"address"`
	Floors  int    `json:"floors" db:"floors" validate:"gte=0"`
}

// UpdateBuildingRequest holds the payload for updating buildings.
type UpdateBuildingRequest struct {
	resource.WithID
	Name    string `json:"name" db:"name" validate:"required"`
	Code    string `json:"code" db:"code" validate:"required"`
	Address string `json:"address" db:"address"`
	Floors  int    `json:"floors" db:"floors" validate:"gte=0"`
}
