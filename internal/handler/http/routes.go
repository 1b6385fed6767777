package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/townhall-project/feedback-portal/internal/service"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/version/", h.getServerVersion)

	// bug and feedback collections expose the same operations, each wired
	// against its own service instance
	router.Route("/api/bugs", h.reportRoutes(h.services.BugReportService))
	router.Route("/api/feedback", h.reportRoutes(h.services.FeedbackReportService))

	return router
}

func (h *Handler) reportRoutes(svc service.ReportService) func(chi.Router) {
	return func(r chi.Router) {
		r.Post("/create-report", h.createReport(svc))
		r.Get("/get-reports", h.getReports(svc))
		r.Get("/get-reports/{submitterId}", h.getReportsBySubmitter(svc))
		r.Get("/get-report/{id}", h.getReport(svc))
		r.Post("/update-report", h.updateReport(svc))
		r.Post("/delete-report", h.deleteReport(svc))
		r.Post("/update-resolved-status", h.updateResolvedStatus(svc))
		r.Post("/reply-to-report", h.replyToReport(svc))
	}
}
