package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/actor"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/export"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/freeze"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/importcsv"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/job"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/query"
	"github.com/FDCTax/fdctax-core-api-sub002/internal/http/transaction"
)

func New(
	jobsV1 *job.Handler,
	transactionsV1 *transaction.Handler,
	queriesV1 *query.Handler,
	freezeV1 *freeze.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", actor.HeaderID, actor.HeaderEmail},
	}))
	router.Use(actor.Middleware)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/jobs", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			jobsV1.JobRoutes(r)
			queriesV1.JobRoutes(r)
			freezeV1.JobRoutes(r)
		})

		r.Route("/modules", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			jobsV1.ModuleRoutes(r)
			freezeV1.ModuleRoutes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/queries", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			queriesV1.Routes(r)
		})

		r.Route("/tasks", queriesV1.TaskRoutes)

		r.Route("/snapshots", freezeV1.SnapshotRoutes)

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)
	})

	return router
}
