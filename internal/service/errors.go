package service

import "errors"

var (
	// ErrNotReportOwner is returned when a caller tries to modify or delete a
	// report submitted by someone else.
	ErrNotReportOwner = errors.New("report belongs to another submitter")

	// ErrNotPermitted is returned by an [AuthorizationPolicy] when the caller
	// lacks the required permission.
	ErrNotPermitted = errors.New("operation is not permitted")

	// ErrPageTooLarge is returned when a requested page lies beyond the
	// configured pagination ceiling.
	ErrPageTooLarge = errors.New("requested page is too large")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
