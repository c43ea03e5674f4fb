package couriers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/matteoferrante/spediquote-backend/internal/rating"
	"github.com/matteoferrante/spediquote-backend/pkg/db/models"
	dbtypes "github.com/matteoferrante/spediquote-backend/pkg/db/types"
	"github.com/matteoferrante/spediquote-backend/pkg/enums"
	pkgerrors "github.com/matteoferrante/spediquote-backend/pkg/errors"
	"github.com/matteoferrante/spediquote-backend/pkg/logger"
	"gorm.io/gorm"
)

type containerLister interface {
	ListByCourier(ctx context.Context, courierCode string) ([]models.Container, error)
}

// Service owns courier configuration: loading, validation, and the
// materialized snapshots the rate engine consumes.
type Service struct {
	repo       *Repository
	containers containerLister
	logg       *logger.Logger
}

// NewService constructs the courier config service.
func NewService(repo *Repository, containers containerLister, logg *logger.Logger) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("courier repository required")
	}
	if containers == nil {
		return nil, fmt.Errorf("container repository required")
	}
	return &Service{repo: repo, containers: containers, logg: logg}, nil
}

// Snapshots materializes every active courier into an engine-ready spec.
// A courier whose stored document fails decoding or validation is logged and
// skipped so the remaining couriers still quote.
func (s *Service) Snapshots(ctx context.Context) ([]rating.CourierSpec, error) {
	records, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing active couriers")
	}

	specs := make([]rating.CourierSpec, 0, len(records))
	for _, record := range records {
		doc, err := Decode(record.Config)
		if err == nil {
			doc.ApplyDefaults()
			err = doc.Validate()
		}
		if err != nil {
			if s.logg != nil {
				s.logg.Warn(
					s.logg.WithCourier(s.logg.WithField(ctx, "reason", err.Error()), record.Code),
					"skipping courier with invalid stored config",
				)
			}
			continue
		}

		var containers []models.Container
		if record.Kind.UsesContainers() {
			containers, err = s.containers.ListByCourier(ctx, record.Code)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing courier containers")
			}
		}

		specs = append(specs, Materialize(record.Code, record.Kind, doc, containers))
	}
	return specs, nil
}

// List returns every stored courier record.
func (s *Service) List(ctx context.Context) ([]models.Courier, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing couriers")
	}
	return records, nil
}

// Get loads one courier and its decoded document.
func (s *Service) Get(ctx context.Context, code string) (*models.Courier, *Document, error) {
	record, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("courier %s not found", code))
		}
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading courier")
	}

	doc, err := Decode(record.Config)
	if err != nil {
		return nil, nil, err
	}
	doc.ApplyDefaults()
	return record, doc, nil
}

// Replace validates and stores a courier's full configuration. Invalid
// documents are rejected before anything touches the database.
func (s *Service) Replace(ctx context.Context, code string, kind enums.CourierKind, active bool, doc *Document) error {
	if !kind.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown courier kind %q", kind))
	}
	doc.ApplyDefaults()
	if err := doc.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding courier config")
	}

	record := &models.Courier{
		Code:   code,
		Kind:   kind,
		Active: active,
		Config: dbtypes.JSONB(raw),
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing courier config")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithCourier(ctx, code), "courier config replaced")
	}
	return nil
}
