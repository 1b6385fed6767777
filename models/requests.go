package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Request bodies accepted by the report endpoints. All of them carry the
// caller identity inline; validation of required fields happens in the
// validators package before any store access.

// CreateReportRequest is the body of POST /create-report.
// TownhallID is required for bug reports only.
type CreateReportRequest struct {
	Description string `json:"description"`
	TownhallID  string `json:"townhallId,omitempty"`
	User        *User  `json:"user"`
}

// UpdateReportRequest is the body of POST /update-report. The description
// is replaced wholesale, no merging.
type UpdateReportRequest struct {
	ID             string `json:"id"`
	NewDescription string `json:"newDescription"`
	User           *User  `json:"user"`
}

// DeleteReportRequest is the body of POST /delete-report.
type DeleteReportRequest struct {
	ID   string `json:"id"`
	User *User  `json:"user"`
}

// SetResolvedStatusRequest is the body of POST /update-resolved-status.
//
// ResolvedStatus is kept as a raw JSON token so that the validation layer
// can insist on a strict boolean: the strings "true"/"false" or numeric
// stand-ins are rejected rather than coerced.
type SetResolvedStatusRequest struct {
	ID             string          `json:"id"`
	ResolvedStatus json.RawMessage `json:"resolvedStatus"`
}

// Resolved returns the strictly-parsed boolean value of ResolvedStatus.
// It fails for any JSON token that is not exactly true or false; null in
// particular is an error, not a zero value, which json.Unmarshal into a
// bool would silently produce.
func (r SetResolvedStatusRequest) Resolved() (bool, error) {
	switch string(bytes.TrimSpace(r.ResolvedStatus)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errors.New("resolved status is not a boolean token")
	}
}

// ReplyToReportRequest is the body of POST /reply-to-report.
type ReplyToReportRequest struct {
	ID           string `json:"id"`
	ReplyContent string `json:"replyContent"`
	User         *User  `json:"user"`
}

// IdentityRequest carries only the caller identity. It is the body of the
// submitter-scoped list endpoint, where the target submitter comes from the
// URL and the caller proves ownership by matching it.
type IdentityRequest struct {
	User *User `json:"user"`
}

// ListReportsQuery is the normalized form of the list endpoints' query
// parameters, produced by the validation pipeline.
type ListReportsQuery struct {
	// Page is the one-based page number. Zero or negative selects the
	// first page.
	Page int64

	// Ascending orders the page by date ascending when true, descending
	// otherwise.
	Ascending bool

	// Resolved, when non-nil, restricts both the page and the total count
	// to reports with the matching resolved flag.
	Resolved *bool
}
