package controllers

import (
	"net/http"

	"github.com/matteoferrante/spediquote-backend/api/responses"
	"github.com/matteoferrante/spediquote-backend/pkg/config"
	"github.com/matteoferrante/spediquote-backend/pkg/db"
	pkgerrors "github.com/matteoferrante/spediquote-backend/pkg/errors"
	"github.com/matteoferrante/spediquote-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SpediQuote-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-SpediQuote-Env", cfg.App.Env)

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database not reachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
