package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matteoferrante/spediquote-backend/api/responses"
	"github.com/matteoferrante/spediquote-backend/api/validators"
	"github.com/matteoferrante/spediquote-backend/internal/couriers"
	"github.com/matteoferrante/spediquote-backend/pkg/db/models"
	"github.com/matteoferrante/spediquote-backend/pkg/enums"
	pkgerrors "github.com/matteoferrante/spediquote-backend/pkg/errors"
	"github.com/matteoferrante/spediquote-backend/pkg/logger"
)

// CourierAdmin is the config-management surface the admin handlers need.
type CourierAdmin interface {
	List(ctx context.Context) ([]models.Courier, error)
	Get(ctx context.Context, code string) (*models.Courier, *couriers.Document, error)
	Replace(ctx context.Context, code string, kind enums.CourierKind, active bool, doc *couriers.Document) error
}

type courierSummaryDTO struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Active bool   `json:"active"`
}

type courierDetailDTO struct {
	Code   string            `json:"code"`
	Kind   string            `json:"kind"`
	Active bool              `json:"active"`
	Config couriers.Document `json:"config"`
}

type courierPutRequest struct {
	Kind   string            `json:"kind" validate:"required"`
	Active bool              `json:"active"`
	Config couriers.Document `json:"config" validate:"required"`
}

// CouriersList returns every configured courier with its active flag.
func CouriersList(svc CourierAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "courier service unavailable"))
			return
		}

		records, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summaries := make([]courierSummaryDTO, 0, len(records))
		for _, record := range records {
			name := record.Code
			if doc, err := couriers.Decode(record.Config); err == nil && doc.BasicInfo.Name != "" {
				name = doc.BasicInfo.Name
			}
			summaries = append(summaries, courierSummaryDTO{
				Code:   record.Code,
				Name:   name,
				Kind:   record.Kind.String(),
				Active: record.Active,
			})
		}

		responses.WriteSuccess(w, summaries)
	}
}

// CourierGet returns one courier's full configuration document.
func CourierGet(svc CourierAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "courier service unavailable"))
			return
		}

		code := chi.URLParam(r, "code")
		record, doc, err := svc.Get(r.Context(), code)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, courierDetailDTO{
			Code:   record.Code,
			Kind:   record.Kind.String(),
			Active: record.Active,
			Config: *doc,
		})
	}
}

// CourierPut replaces one courier's configuration. The document is fully
// revalidated before it is stored.
func CourierPut(svc CourierAdmin, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "courier service unavailable"))
			return
		}

		code := chi.URLParam(r, "code")

		var payload courierPutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		kind, err := enums.ParseCourierKind(payload.Kind)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid courier kind"))
			return
		}

		if err := svc.Replace(r.Context(), code, kind, payload.Active, &payload.Config); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "updated"})
	}
}
