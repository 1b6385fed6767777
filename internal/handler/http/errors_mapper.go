package http

import (
	"errors"
	"net/http"

	"github.com/townhall-project/feedback-portal/internal/service"
	"github.com/townhall-project/feedback-portal/internal/store"
	"github.com/townhall-project/feedback-portal/internal/validators"
)

// errorStatusMap collapses every client-caused failure to one status so that
// responses do not reveal whether a report exists or who owns it. Only
// infrastructure failures map to 5xx.
var errorStatusMap = map[error]int{
	validators.ErrUnsupportedType:          http.StatusBadRequest,
	validators.ErrUnknownField:             http.StatusBadRequest,
	validators.ErrEmptyDescription:         http.StatusBadRequest,
	validators.ErrEmptyTownhallID:          http.StatusBadRequest,
	validators.ErrNoUser:                   http.StatusBadRequest,
	validators.ErrEmptyUserID:              http.StatusBadRequest,
	validators.ErrEmptyReportID:            http.StatusBadRequest,
	validators.ErrEmptyNewDescription:      http.StatusBadRequest,
	validators.ErrEmptyReplyContent:        http.StatusBadRequest,
	validators.ErrResolvedStatusNotBoolean: http.StatusBadRequest,
	validators.ErrPageOutOfRange:           http.StatusBadRequest,
	validators.ErrInvalidSortOrder:         http.StatusBadRequest,
	validators.ErrInvalidResolvedFilter:    http.StatusBadRequest,

	service.ErrNotReportOwner: http.StatusBadRequest,
	service.ErrNotPermitted:   http.StatusBadRequest,
	service.ErrPageTooLarge:   http.StatusBadRequest,

	store.ErrReportNotFound: http.StatusBadRequest,

	store.ErrReportNotSaved:     http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
