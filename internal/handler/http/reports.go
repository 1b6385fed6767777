// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/townhall-project/feedback-portal/internal/logger"
	"github.com/townhall-project/feedback-portal/internal/service"
	"github.com/townhall-project/feedback-portal/internal/utils"
	"github.com/townhall-project/feedback-portal/internal/validators"
	"github.com/townhall-project/feedback-portal/models"
)

// clientErrorMessage is the uniform body returned for every rejected request.
// Clients learn nothing about whether a report exists, belongs to someone
// else, or failed validation.
const clientErrorMessage = "Some error occurred. Please try again"

func (h *Handler) createReport(svc service.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var request models.CreateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Err(err).Str("func", "*Handler.createReport").Msg("Invalid JSON was passed")
			http.Error(w, clientErrorMessage, http.StatusBadRequest)
			return
		}

		report, err := svc.Create(r.Context(), request)
		if err != nil {
			h.writeError(w, r, "*Handler.createReport", err)
			return
		}

		utils.WriteJSON(w, models.ReportCreatedResponse{ID: report.ID}, http.StatusOK)
	}
}

func (h *Handler) getReports(svc service.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := listQueryFromRequest(r)
		if err != nil {
			h.writeError(w, r, "*Handler.getReports", err)
			return
		}

		reports, count, err := svc.List(r.Context(), query)
		if err != nil {
			h.writeError(w, r, "*Handler.getReports", err)
			return
		}

		utils.WriteJSON(w, models.ReportListResponse{Reports: reports, Count: count}, http.StatusOK)
	}
}

func (h *Handler) getReportsBySubmitter(svc service.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := listQueryFromRequest(r)
		if err != nil {
			h.writeError(w, r, "*Handler.getReportsBySubmitter", err)
			return
		}

		var request models.IdentityRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.getReportsBySubmitter").Msg("Invalid JSON was passed")
			http.Error(w, clientErrorMessage, http.StatusBadRequest)
			return
		}

		submitterID := chi.URLParam(r, "submitterId")

		reports, count, err := svc.ListBySubmitter(r.Context(), submitterID, request, query)
		if err != nil {
			h.writeError(w, r, "*Handler.getReportsBySubmitter", err)
			return
		}

		utils.WriteJSON(w, models.ReportListResponse{Reports: reports, Count: count}, http.StatusOK)
	}
}

func (h *Handler) getReport(svc service.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			h.writeError(w, r, "*Handler.getReport", err)
			return
		}

		utils.WriteJSON(w, models.ReportResponse{Report: report}, http.StatusOK)
	}
}

func (h *Handler) updateReport(svc service.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var request models.UpdateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Err(err).Str("func", "*Handler.updateReport").Msg("Invalid JSON was passed")
			http.Error(w, clientErrorMessage, http.StatusBadRequest)
			return
		}

		if err := svc.UpdateDescription(r.Context(), request); err != nil {
			h.writeError(w, r, "*Handler.updateReport", err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func (h *Handler) deleteReport(svc service.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var request models.DeleteReportRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Err(err).Str("func", "*Handler.deleteReport").Msg("Invalid JSON was passed")
			http.Error(w, clientErrorMessage, http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), request); err != nil {
			h.writeError(w, r, "*Handler.deleteReport", err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func (h *Handler) updateResolvedStatus(svc service.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var request models.SetResolvedStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Err(err).Str("func", "*Handler.updateResolvedStatus").Msg("Invalid JSON was passed")
			http.Error(w, clientErrorMessage, http.StatusBadRequest)
			return
		}

		if err := svc.SetResolvedStatus(r.Context(), request); err != nil {
			h.writeError(w, r, "*Handler.updateResolvedStatus", err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func (h *Handler) replyToReport(svc service.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var request models.ReplyToReportRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Err(err).Str("func", "*Handler.replyToReport").Msg("Invalid JSON was passed")
			http.Error(w, clientErrorMessage, http.StatusBadRequest)
			return
		}

		report, err := svc.Reply(r.Context(), request)
		if err != nil {
			h.writeError(w, r, "*Handler.replyToReport", err)
			return
		}

		utils.WriteJSON(w, models.ReportResponse{Report: report}, http.StatusOK)
	}
}

// listQueryFromRequest parses the pagination and filter query parameters of a
// listing request.
func listQueryFromRequest(r *http.Request) (models.ListReportsQuery, error) {
	params := r.URL.Query()

	page, err := validators.ParsePage(params.Get("page"))
	if err != nil {
		return models.ListReportsQuery{}, err
	}

	ascending, err := validators.ParseSortOrder(params.Get("ascending"))
	if err != nil {
		return models.ListReportsQuery{}, err
	}

	resolved, err := validators.ParseResolvedFilter(params.Get("resolved"))
	if err != nil {
		return models.ListReportsQuery{}, err
	}

	return models.ListReportsQuery{Page: page, Ascending: ascending, Resolved: resolved}, nil
}

// writeError maps a service or store error onto an HTTP response. Client
// faults all share one status and body; infrastructure faults surface as 500
// with no detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("internal error")
		http.Error(w, "internal error", status)
		return
	}

	log.Warn().Err(err).Str("func", fn).Msg("request rejected")
	http.Error(w, clientErrorMessage, status)
}
