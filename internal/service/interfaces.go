package service

import (
	"context"

	"github.com/townhall-project/feedback-portal/models"
)

// ReportService is the business-logic surface for one report collection.
// Two instances exist at runtime, one per report kind, sharing the same
// implementation.
type ReportService interface {
	Create(ctx context.Context, request models.CreateReportRequest) (models.Report, error)
	GetByID(ctx context.Context, id string) (models.Report, error)
	List(ctx context.Context, query models.ListReportsQuery) ([]models.Report, int64, error)
	ListBySubmitter(ctx context.Context, submitterID string, request models.IdentityRequest, query models.ListReportsQuery) ([]models.Report, int64, error)
	UpdateDescription(ctx context.Context, request models.UpdateReportRequest) error
	Delete(ctx context.Context, request models.DeleteReportRequest) error
	SetResolvedStatus(ctx context.Context, request models.SetResolvedStatusRequest) error
	Reply(ctx context.Context, request models.ReplyToReportRequest) (models.Report, error)
}

// AppInfoService exposes build metadata about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Permission names a moderation capability checked before privileged
// operations.
type Permission string

const (
	PermissionListAllReports    Permission = "reports:list-all"
	PermissionSetResolvedStatus Permission = "reports:set-resolved"
	PermissionReplyToReport     Permission = "reports:reply"
)

// AuthorizationPolicy decides whether the caller may perform a privileged
// operation. Allowed returns nil to permit and [ErrNotPermitted] to refuse.
//
// The default policy permits everything; deployments that front the server
// with their own access layer can swap in a stricter one.
type AuthorizationPolicy interface {
	Allowed(ctx context.Context, permission Permission) error
}

type allowAllPolicy struct{}

func (allowAllPolicy) Allowed(context.Context, Permission) error { return nil }

// NewAllowAllPolicy returns the default policy that permits every operation.
func NewAllowAllPolicy() AuthorizationPolicy {
	return allowAllPolicy{}
}
