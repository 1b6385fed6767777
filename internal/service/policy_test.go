package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/townhall-project/feedback-portal/internal/config"
	"github.com/townhall-project/feedback-portal/internal/logger"
	"github.com/townhall-project/feedback-portal/internal/mock"
	"github.com/townhall-project/feedback-portal/internal/service"
	"github.com/townhall-project/feedback-portal/internal/store"
	"github.com/townhall-project/feedback-portal/models"
)

// idleReportRepository must never be reached: the policy refuses every
// operation before the repository is consulted.
type idleReportRepository struct{}

func (idleReportRepository) Insert(context.Context, models.Report) (models.Report, error) {
	return models.Report{}, nil
}

func (idleReportRepository) FindByID(context.Context, models.ReportKind, string) (models.Report, error) {
	return models.Report{}, nil
}

func (idleReportRepository) Find(context.Context, store.ReportFilter, store.PageWindow) ([]models.Report, error) {
	return nil, nil
}

func (idleReportRepository) Count(context.Context, store.ReportFilter) (int64, error) {
	return 0, nil
}

func (idleReportRepository) UpdateDescription(context.Context, models.ReportKind, string, string) error {
	return nil
}

func (idleReportRepository) SetResolved(context.Context, models.ReportKind, string, bool) error {
	return nil
}

func (idleReportRepository) AppendReply(context.Context, models.ReportKind, string, models.Reply) error {
	return nil
}

func (idleReportRepository) Delete(context.Context, models.ReportKind, string) error {
	return nil
}

// Each privileged operation must consult the policy with its own permission
// and surface the refusal unchanged.
func TestReportService_PrivilegedOperationsConsultPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	policy := mock.NewMockAuthorizationPolicy(ctrl)

	svc := service.NewReportService(models.KindBug, idleReportRepository{}, policy,
		config.Reports{MaxPageSkip: 100_000}, logger.Nop())

	ctx := context.Background()

	policy.EXPECT().
		Allowed(gomock.Any(), service.PermissionListAllReports).
		Return(service.ErrNotPermitted)
	_, _, err := svc.List(ctx, models.ListReportsQuery{})
	require.ErrorIs(t, err, service.ErrNotPermitted)

	policy.EXPECT().
		Allowed(gomock.Any(), service.PermissionSetResolvedStatus).
		Return(service.ErrNotPermitted)
	err = svc.SetResolvedStatus(ctx, models.SetResolvedStatusRequest{ID: "r-1", ResolvedStatus: []byte(`true`)})
	require.ErrorIs(t, err, service.ErrNotPermitted)

	policy.EXPECT().
		Allowed(gomock.Any(), service.PermissionReplyToReport).
		Return(service.ErrNotPermitted)
	_, err = svc.Reply(ctx, models.ReplyToReportRequest{
		ID:           "r-1",
		ReplyContent: "noted",
		User:         &models.User{ID: "mod-1"},
	})
	require.ErrorIs(t, err, service.ErrNotPermitted)
}
