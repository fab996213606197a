package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bracu-tools/gradesheet-analyzer/internal/config"
	"github.com/bracu-tools/gradesheet-analyzer/internal/session"
)

// NewRouter assembles the full gateway surface. Everything that touches a
// session record sits behind the bearer-token middleware; session creation,
// the static catalog queries and the health probe stay open.
func NewRouter(cfg config.Config, store *session.Store, tokens *session.TokenService) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/session", CreateSessionHandler(store, tokens))
	r.Get("/catalog/courses", CatalogCoursesHandler())
	r.Get("/catalog/requirements", RequirementsHandler())

	r.Group(func(pr chi.Router) {
		pr.Use(session.Middleware(tokens))

		pr.Post("/gradesheet", UploadGradesheetHandler(store, cfg.MaxUploadBytes))

		pr.Get("/record", GetRecordHandler(store))
		pr.Put("/record/student", UpdateStudentHandler(store))
		pr.Delete("/record", ResetRecordHandler(store))
		pr.Post("/record/courses", AddCourseHandler(store))
		pr.Put("/record/courses/{code}", UpdateCourseHandler(store))
		pr.Delete("/record/courses/{code}", DeleteCourseHandler(store))

		pr.Get("/analytics/trends", TrendsHandler(store))
		pr.Get("/analytics/distribution", DistributionHandler(store))
		pr.Get("/analytics/stats", StatsHandler(store))

		pr.Post("/planner/projection", ProjectionHandler(store))
		pr.Post("/planner/semesters", PlanSemestersHandler(store))
		pr.Post("/planner/retakes", RetakesHandler(store))
		pr.Post("/planner/whatif", WhatIfHandler(store))

		pr.Get("/catalog/unlocked", UnlockedHandler(store))
		pr.Get("/catalog/gened-plan", GenEdPlanHandler(store))
	})

	return r
}
