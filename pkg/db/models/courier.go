package models

import (
	"time"

	"github.com/google/uuid"
	dbtypes "github.com/matteoferrante/spediquote-backend/pkg/db/types"
	"github.com/matteoferrante/spediquote-backend/pkg/enums"
)

// Courier is one configured courier. The declarative pricing configuration
// lives in Config as a versioned JSON document; the engine receives it fully
// materialized and never writes back.
type Courier struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Code      string            `gorm:"uniqueIndex;not null"`
	Kind      enums.CourierKind `gorm:"not null"`
	Active    bool              `gorm:"not null;default:true"`
	Config    dbtypes.JSONB     `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName implements gorm's naming override.
func (Courier) TableName() string {
	return "couriers"
}
