package models

import (
	"time"

	"github.com/google/uuid"
)

// Container is an immutable packaging catalog entry, used by couriers whose
// cost model includes physical boxes.
type Container struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierCode string    `gorm:"index;not null"`
	Name        string    `gorm:"not null"`
	VolumeM3    float64   `gorm:"not null"`
	WeightKg    float64   `gorm:"not null"`
	CostExclVat float64   `gorm:"not null"`
	CostInclVat float64   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName implements gorm's naming override.
func (Container) TableName() string {
	return "containers"
}
