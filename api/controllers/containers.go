package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matteoferrante/spediquote-backend/api/responses"
	"github.com/matteoferrante/spediquote-backend/api/validators"
	"github.com/matteoferrante/spediquote-backend/pkg/db/models"
	pkgerrors "github.com/matteoferrante/spediquote-backend/pkg/errors"
	"github.com/matteoferrante/spediquote-backend/pkg/logger"
)

// ContainerAdmin is the catalog surface the admin handlers need.
type ContainerAdmin interface {
	List(ctx context.Context) ([]models.Container, error)
	ListByCourier(ctx context.Context, courierCode string) ([]models.Container, error)
	ReplaceForCourier(ctx context.Context, courierCode string, items []models.Container) error
}

type containerDTO struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required"`
	VolumeM3    float64 `json:"volumeM3" validate:"gt=0"`
	WeightKg    float64 `json:"weightKg"`
	CostExclVat float64 `json:"costExclVat"`
	CostInclVat float64 `json:"costInclVat"`
}

type containerPutRequest struct {
	Containers []containerDTO `json:"containers" validate:"dive"`
}

func toContainerDTO(m models.Container) containerDTO {
	return containerDTO{
		ID:          m.ID.String(),
		Name:        m.Name,
		VolumeM3:    m.VolumeM3,
		WeightKg:    m.WeightKg,
		CostExclVat: m.CostExclVat,
		CostInclVat: m.CostInclVat,
	}
}

// ContainersList returns one courier's packaging catalog.
func ContainersList(svc ContainerAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "container service unavailable"))
			return
		}

		courierCode := chi.URLParam(r, "code")
		items, err := svc.ListByCourier(r.Context(), courierCode)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dtos := make([]containerDTO, 0, len(items))
		for _, item := range items {
			dtos = append(dtos, toContainerDTO(item))
		}
		responses.WriteSuccess(w, dtos)
	}
}

// ContainersPut replaces one courier's packaging catalog.
func ContainersPut(svc ContainerAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "container service unavailable"))
			return
		}

		courierCode := chi.URLParam(r, "code")

		var payload containerPutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]models.Container, 0, len(payload.Containers))
		for _, dto := range payload.Containers {
			items = append(items, models.Container{
				Name:        dto.Name,
				VolumeM3:    dto.VolumeM3,
				WeightKg:    dto.WeightKg,
				CostExclVat: dto.CostExclVat,
				CostInclVat: dto.CostInclVat,
			})
		}

		if err := svc.ReplaceForCourier(r.Context(), courierCode, items); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "updated"})
	}
}
