package models

import "time"

// ReportKind discriminates the two report collections served by the
// application. Every repository and service operation is scoped to
// exactly one kind.
type ReportKind string

const (
	// KindBug identifies reports about bugs observed during a townhall session.
	KindBug ReportKind = "bug"

	// KindFeedback identifies general feedback reports.
	KindFeedback ReportKind = "feedback"
)

// Report is the persistence and wire model shared by bug reports and
// feedback reports. Field names on the wire follow the public API contract
// (camelCase).
type Report struct {
	// ID is the unique identifier of the report, assigned by the store on
	// creation and immutable thereafter.
	ID string `json:"id"`

	// Kind tells which collection the report belongs to. It is implied by
	// the endpoint and never serialized.
	Kind ReportKind `json:"-"`

	// Date is the creation timestamp, stamped server-side.
	Date time.Time `json:"date"`

	// Description is the free-text body of the report. Must be non-empty at
	// creation; mutable via the update-report operation.
	Description string `json:"description"`

	// SubmitterID identifies the user who created the report. Set once at
	// creation and never changed; it is the authorization anchor for all
	// owner-gated operations.
	SubmitterID string `json:"submitterId"`

	// Resolved marks whether the report has been addressed. Defaults to
	// false; changed only by the update-resolved-status operation.
	Resolved bool `json:"resolved"`

	// Replies is the append-only reply thread, ordered by RepliedDate
	// ascending. Individual replies are never edited or removed.
	Replies []Reply `json:"replies"`

	// TownhallID is the session the bug occurred in. Required for bug
	// reports, absent for feedback reports.
	TownhallID string `json:"townhallId,omitempty"`
}

// TableName returns the name of the database table
// associated with the Report model.
func (r Report) TableName() string {
	return "reports"
}

// Reply is a single timestamped note attached to a report. Any identity may
// reply, not just the report owner.
type Reply struct {
	Content     string    `json:"content"`
	RepliedBy   User      `json:"repliedBy"`
	RepliedDate time.Time `json:"repliedDate"`
}
