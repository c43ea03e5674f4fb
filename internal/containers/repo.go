package containers

import (
	"context"

	"github.com/google/uuid"
	"github.com/matteoferrante/spediquote-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository wraps the packaging catalog.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns the whole catalog ordered by courier and box volume.
func (r *Repository) List(ctx context.Context) ([]models.Container, error) {
	var containers []models.Container
	if err := r.db.WithContext(ctx).Order("courier_code, volume_m3").Find(&containers).Error; err != nil {
		return nil, err
	}
	return containers, nil
}

// ListByCourier returns one courier's boxes ordered by volume.
func (r *Repository) ListByCourier(ctx context.Context, courierCode string) ([]models.Container, error) {
	var containers []models.Container
	if err := r.db.WithContext(ctx).
		Where("courier_code = ?", courierCode).
		Order("volume_m3").
		Find(&containers).Error; err != nil {
		return nil, err
	}
	return containers, nil
}

// ReplaceForCourier swaps one courier's catalog atomically.
func (r *Repository) ReplaceForCourier(ctx context.Context, courierCode string, items []models.Container) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("courier_code = ?", courierCode).Delete(&models.Container{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			if items[i].ID == uuid.Nil {
				items[i].ID = uuid.New()
			}
			items[i].CourierCode = courierCode
		}
		return tx.Create(&items).Error
	})
}
