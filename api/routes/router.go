package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matteoferrante/spediquote-backend/api/controllers"
	"github.com/matteoferrante/spediquote-backend/api/middleware"
	"github.com/matteoferrante/spediquote-backend/pkg/config"
	"github.com/matteoferrante/spediquote-backend/pkg/db"
	"github.com/matteoferrante/spediquote-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	courierService controllers.CourierAdmin,
	snapshotProvider controllers.SnapshotProvider,
	containerService controllers.ContainerAdmin,
	aggregator controllers.Quoter,
	metricsRegistry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if metricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/rates", controllers.RatesQuote(snapshotProvider, aggregator, logg, cfg.Quotes.RequestTimeout))

		r.Route("/admin", func(r chi.Router) {
			r.Route("/couriers", func(r chi.Router) {
				r.Get("/", controllers.CouriersList(courierService, logg))
				r.Get("/{code}", controllers.CourierGet(courierService, logg))
				r.Put("/{code}", controllers.CourierPut(courierService, logg))
				r.Get("/{code}/containers", controllers.ContainersList(containerService, logg))
				r.Put("/{code}/containers", controllers.ContainersPut(containerService, logg))
			})
		})
	})

	return r
}
