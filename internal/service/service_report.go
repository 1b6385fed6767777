// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/townhall-project/feedback-portal/internal/config"
	"github.com/townhall-project/feedback-portal/internal/logger"
	"github.com/townhall-project/feedback-portal/internal/store"
	"github.com/townhall-project/feedback-portal/internal/validators"
	"github.com/townhall-project/feedback-portal/models"
)

// reportService implements [ReportService] for one report kind. Validation
// runs before every repository call so that malformed input never reaches
// the database.
type reportService struct {
	kind      models.ReportKind
	reports   store.ReportRepository
	validator validators.Validator
	policy    AuthorizationPolicy

	maxPageSkip int64

	logger *logger.Logger
}

func NewReportService(kind models.ReportKind, reports store.ReportRepository, policy AuthorizationPolicy, cfg config.Reports, logger *logger.Logger) ReportService {
	return &reportService{
		kind:        kind,
		reports:     reports,
		validator:   validators.NewReportValidator(kind),
		policy:      policy,
		maxPageSkip: cfg.MaxPageSkip,
		logger:      logger,
	}
}

// Create validates the submission, stamps the server-controlled fields and
// persists the report. A fresh report is never resolved and starts with an
// empty reply thread, whatever the client sent.
func (s *reportService) Create(ctx context.Context, request models.CreateReportRequest) (models.Report, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Report{}, fmt.Errorf("error during report validation before saving: %w", err)
	}

	report := models.Report{
		Kind:        s.kind,
		Date:        time.Now().UTC(),
		Description: request.Description,
		SubmitterID: request.User.ID,
		Resolved:    false,
		Replies:     []models.Reply{},
	}
	if s.kind == models.KindBug {
		report.TownhallID = request.TownhallID
	}

	return s.reports.Insert(ctx, report)
}

func (s *reportService) GetByID(ctx context.Context, id string) (models.Report, error) {
	if id == "" {
		return models.Report{}, validators.ErrEmptyReportID
	}

	return s.reports.FindByID(ctx, s.kind, id)
}

// List returns one page of the collection together with the total number of
// reports matching the filter. The page of rows and the total are computed
// over the same filter.
func (s *reportService) List(ctx context.Context, query models.ListReportsQuery) ([]models.Report, int64, error) {
	if err := s.policy.Allowed(ctx, PermissionListAllReports); err != nil {
		return nil, 0, err
	}

	filter := store.ReportFilter{Kind: s.kind, Resolved: query.Resolved}
	return s.listPage(ctx, filter, query)
}

// ListBySubmitter narrows the listing to one submitter's reports. Only the
// submitter may read their own scoped listing; any other caller is rejected
// exactly like a non-owner mutation. Pagination behaves as in
// [reportService.List].
func (s *reportService) ListBySubmitter(ctx context.Context, submitterID string, request models.IdentityRequest, query models.ListReportsQuery) ([]models.Report, int64, error) {
	if submitterID == "" {
		return nil, 0, validators.ErrEmptyUserID
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		return nil, 0, fmt.Errorf("error during identity validation before listing: %w", err)
	}
	if request.User.ID != submitterID {
		return nil, 0, ErrNotReportOwner
	}

	filter := store.ReportFilter{Kind: s.kind, SubmitterID: submitterID, Resolved: query.Resolved}
	return s.listPage(ctx, filter, query)
}

func (s *reportService) listPage(ctx context.Context, filter store.ReportFilter, query models.ListReportsQuery) ([]models.Report, int64, error) {
	log := logger.FromContext(ctx)

	skip, err := resolvePageSkip(query.Page, s.maxPageSkip)
	if err != nil {
		return nil, 0, err
	}

	window := store.PageWindow{Skip: skip, Limit: reportsPerPage, Ascending: query.Ascending}

	reports, err := s.reports.Find(ctx, filter, window)
	if err != nil {
		log.Err(err).Str("func", "*reportService.listPage").Msg("error fetching report page")
		return nil, 0, err
	}

	count, err := s.reports.Count(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*reportService.listPage").Msg("error counting reports")
		return nil, 0, err
	}

	return reports, count, nil
}

// UpdateDescription replaces a report's description. Only the original
// submitter may edit a report; anyone else gets [ErrNotReportOwner].
func (s *reportService) UpdateDescription(ctx context.Context, request models.UpdateReportRequest) error {
	if err := s.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("error during report validation before update: %w", err)
	}

	if err := s.checkOwnership(ctx, request.ID, request.User.ID); err != nil {
		return err
	}

	return s.reports.UpdateDescription(ctx, s.kind, request.ID, request.NewDescription)
}

// Delete removes a report. Only the original submitter may delete it.
func (s *reportService) Delete(ctx context.Context, request models.DeleteReportRequest) error {
	if err := s.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("error during report validation before delete: %w", err)
	}

	if err := s.checkOwnership(ctx, request.ID, request.User.ID); err != nil {
		return err
	}

	return s.reports.Delete(ctx, s.kind, request.ID)
}

// SetResolvedStatus flips a report's resolved flag. The operation is guarded
// by the authorization policy rather than ownership: whoever runs the portal
// resolves reports, not the submitter.
func (s *reportService) SetResolvedStatus(ctx context.Context, request models.SetResolvedStatusRequest) error {
	if err := s.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("error during report validation before status change: %w", err)
	}

	if err := s.policy.Allowed(ctx, PermissionSetResolvedStatus); err != nil {
		return err
	}

	resolved, err := request.Resolved()
	if err != nil {
		return validators.ErrResolvedStatusNotBoolean
	}

	return s.reports.SetResolved(ctx, s.kind, request.ID, resolved)
}

// Reply appends a reply to a report's thread and returns the updated report.
// The reply date is stamped server-side; the repository keeps the thread
// sorted by that date.
func (s *reportService) Reply(ctx context.Context, request models.ReplyToReportRequest) (models.Report, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Report{}, fmt.Errorf("error during report validation before reply: %w", err)
	}

	if err := s.policy.Allowed(ctx, PermissionReplyToReport); err != nil {
		return models.Report{}, err
	}

	reply := models.Reply{
		Content:     request.ReplyContent,
		RepliedBy:   *request.User,
		RepliedDate: time.Now().UTC(),
	}

	if err := s.reports.AppendReply(ctx, s.kind, request.ID, reply); err != nil {
		return models.Report{}, err
	}

	return s.reports.FindByID(ctx, s.kind, request.ID)
}

// checkOwnership fetches the report and confirms it belongs to the caller.
// A missing report surfaces as [store.ErrReportNotFound] from the lookup.
func (s *reportService) checkOwnership(ctx context.Context, reportID string, userID string) error {
	report, err := s.reports.FindByID(ctx, s.kind, reportID)
	if err != nil {
		return err
	}

	if report.SubmitterID != userID {
		return ErrNotReportOwner
	}

	return nil
}
