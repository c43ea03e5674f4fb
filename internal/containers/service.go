package containers

import (
	"context"
	"fmt"

	"github.com/matteoferrante/spediquote-backend/pkg/db/models"
	pkgerrors "github.com/matteoferrante/spediquote-backend/pkg/errors"
	"github.com/matteoferrante/spediquote-backend/pkg/logger"
)

// Service owns the packaging catalog.
type Service struct {
	repo *Repository
	logg *logger.Logger
}

// NewService constructs the container catalog service.
func NewService(repo *Repository, logg *logger.Logger) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("container repository required")
	}
	return &Service{repo: repo, logg: logg}, nil
}

// List returns the whole catalog.
func (s *Service) List(ctx context.Context) ([]models.Container, error) {
	containers, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing containers")
	}
	return containers, nil
}

// ListByCourier returns one courier's boxes.
func (s *Service) ListByCourier(ctx context.Context, courierCode string) ([]models.Container, error) {
	containers, err := s.repo.ListByCourier(ctx, courierCode)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing courier containers")
	}
	return containers, nil
}

// ReplaceForCourier validates and swaps a courier's catalog.
func (s *Service) ReplaceForCourier(ctx context.Context, courierCode string, items []models.Container) error {
	for i, item := range items {
		if item.Name == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("containers[%d]: name is required", i))
		}
		if item.VolumeM3 <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("containers[%d]: volumeM3 must be positive", i))
		}
		if item.WeightKg < 0 || item.CostExclVat < 0 || item.CostInclVat < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("containers[%d]: negative weight or cost", i))
		}
	}

	if err := s.repo.ReplaceForCourier(ctx, courierCode, items); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replacing courier containers")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithCourier(ctx, courierCode), "container catalog replaced")
	}
	return nil
}

// EnsureSeeded installs the default FedEx box catalog when the courier has
// none configured yet.
func (s *Service) EnsureSeeded(ctx context.Context) error {
	existing, err := s.repo.ListByCourier(ctx, "fedex")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []models.Container{
		{Name: "FedEx Small Box", VolumeM3: 0.006, WeightKg: 0.25, CostExclVat: 2.46, CostInclVat: 3.00},
		{Name: "FedEx Medium Box", VolumeM3: 0.015, WeightKg: 0.45, CostExclVat: 4.10, CostInclVat: 5.00},
		{Name: "FedEx Large Box", VolumeM3: 0.035, WeightKg: 0.80, CostExclVat: 6.56, CostInclVat: 8.00},
		{Name: "FedEx Insulated Crate", VolumeM3: 0.060, WeightKg: 2.10, CostExclVat: 11.48, CostInclVat: 14.00},
	}
	if err := s.repo.ReplaceForCourier(ctx, "fedex", defaults); err != nil {
		return err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithCourier(ctx, "fedex"), "seeded default container catalog")
	}
	return nil
}
