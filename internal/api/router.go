package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/dstasiak/med-reminder/docs"
	"github.com/dstasiak/med-reminder/internal/api/handler"
	"github.com/dstasiak/med-reminder/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	profileHandler  *handler.ProfileHandler
	medicineHandler *handler.MedicineHandler
	scheduleHandler *handler.ScheduleHandler
	insightsHandler *handler.InsightsHandler
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	medicineHandler *handler.MedicineHandler,
	scheduleHandler *handler.ScheduleHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		profileHandler:  profileHandler,
		medicineHandler: medicineHandler,
		scheduleHandler: scheduleHandler,
		insightsHandler: insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Profiles
		r.Route("/profiles", func(r chi.Router) {
			r.Post("/", rt.profileHandler.Create)
			r.Get("/", rt.profileHandler.List)

			r.Route("/{profileId}", func(r chi.Router) {
				r.Get("/", rt.profileHandler.GetByID)
				r.Put("/", rt.profileHandler.Update)
				r.Delete("/", rt.profileHandler.Delete)

				// Medicines (nested under profiles)
				r.Route("/medicines", func(r chi.Router) {
					r.Post("/", rt.medicineHandler.Create)
					r.Get("/", rt.medicineHandler.List)
				})

				// Schedules (nested under profiles)
				r.Route("/schedules", func(r chi.Router) {
					r.Get("/", rt.scheduleHandler.History)
					r.Get("/today", rt.scheduleHandler.Today)
				})

				// Adherence analytics
				r.Get("/adherence", rt.insightsHandler.GetAdherence)
				r.Get("/report", rt.insightsHandler.GetReport)
				r.Get("/insights", rt.insightsHandler.GetInsights)
			})
		})

		// Medicines addressed directly by ID
		r.Route("/medicines/{medicineId}", func(r chi.Router) {
			r.Get("/", rt.medicineHandler.GetByID)
			r.Delete("/", rt.medicineHandler.Delete)
		})

		// Dose resolution
		r.Post("/schedules/{scheduleId}/resolve", rt.scheduleHandler.Resolve)
	})

	return r
}
