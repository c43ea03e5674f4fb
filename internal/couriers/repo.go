package couriers

import (
	"context"

	"github.com/google/uuid"
	"github.com/matteoferrante/spediquote-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository wraps courier persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every configured courier, active or not.
func (r *Repository) List(ctx context.Context) ([]models.Courier, error) {
	var couriers []models.Courier
	if err := r.db.WithContext(ctx).Order("code").Find(&couriers).Error; err != nil {
		return nil, err
	}
	return couriers, nil
}

// ListActive returns the couriers that participate in quoting.
func (r *Repository) ListActive(ctx context.Context) ([]models.Courier, error) {
	var couriers []models.Courier
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("code").Find(&couriers).Error; err != nil {
		return nil, err
	}
	return couriers, nil
}

// GetByCode loads one courier by its unique code.
func (r *Repository) GetByCode(ctx context.Context, code string) (*models.Courier, error) {
	var courier models.Courier
	if err := r.db.WithContext(ctx).First(&courier, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &courier, nil
}

// Upsert inserts the courier or replaces its kind, active flag and config
// document keyed by code.
func (r *Repository) Upsert(ctx context.Context, courier *models.Courier) error {
	if courier.ID == uuid.Nil {
		courier.ID = uuid.New()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"kind", "active", "config", "updated_at"}),
		}).
		Create(courier).Error
}
