package service

import (
	"github.com/townhall-project/feedback-portal/internal/config"
	"github.com/townhall-project/feedback-portal/internal/logger"
	"github.com/townhall-project/feedback-portal/internal/store"
	"github.com/townhall-project/feedback-portal/models"
)

type Services struct {
	AppInfoService        AppInfoService
	BugReportService      ReportService
	FeedbackReportService ReportService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	policy := NewAllowAllPolicy()

	return &Services{
		AppInfoService:        appInfo,
		BugReportService:      NewReportService(models.KindBug, storages.ReportRepository, policy, cfg.Reports, logger),
		FeedbackReportService: NewReportService(models.KindFeedback, storages.ReportRepository, policy, cfg.Reports, logger),
	}, nil
}
