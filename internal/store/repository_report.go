// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/townhall-project/feedback-portal/internal/logger"
	"github.com/townhall-project/feedback-portal/models"
)

// reportRepository is the PostgreSQL-backed implementation of [ReportRepository].
// Bug and feedback reports share the "reports" table; the kind column keeps
// the two collections apart.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type reportRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReportRepository constructs a [ReportRepository] backed by the provided
// database connection and logger.
func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a new report and returns the fully populated [models.Report]
// with the server-assigned id.
//
// The INSERT uses the [insertReport] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created report.
func (r *reportRepository) Insert(ctx context.Context, report models.Report) (models.Report, error) {
	log := logger.FromContext(ctx)

	replies, err := json.Marshal(report.Replies)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Insert").Msg("error: marshalling replies")
		return models.Report{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, insertReport,
		report.Kind, report.Date, report.Description, report.SubmitterID,
		report.Resolved, replies, nullableText(report.TownhallID))

	// insert report into db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*reportRepository.Insert").Msg("error: row is nil")
		return models.Report{}, r.executionError(log, err)
	}

	// scan saved report from db
	saved, err := scanReport(row)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Insert").Msg("error: scanning error")
		if errors.Is(err, sql.ErrNoRows) {
			return models.Report{}, ErrReportNotSaved
		}
		return models.Report{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// FindByID retrieves one report by id within the given kind.
//
// Error handling:
//   - No matching row → [ErrReportNotFound].
//   - PostgreSQL invalid_text_representation (22P02, a malformed uuid) →
//     [ErrReportNotFound], so a garbage id behaves like a missing one.
//   - Any other driver-level error → wrapped in [ErrExecutingQuery].
func (r *reportRepository) FindByID(ctx context.Context, kind models.ReportKind, id string) (models.Report, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findReportByID, id, kind)

	if err := row.Err(); err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return models.Report{}, ErrReportNotFound
		}
		log.Err(err).Str("func", "*reportRepository.FindByID").Msg("error: row is nil")
		return models.Report{}, r.executionError(log, err)
	}

	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Report{}, ErrReportNotFound
		}
		log.Err(err).Str("func", "*reportRepository.FindByID").Msg("error: scanning error")
		return models.Report{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return report, nil
}

// Find returns one page of reports matching the filter, ordered by creation
// date. The window's skip, limit and sort direction come straight from the
// pagination policy; the filter is shared with [reportRepository.Count].
func (r *reportRepository) Find(ctx context.Context, filter ReportFilter, window PageWindow) ([]models.Report, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindQuery(filter, window)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Find").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Find").Msg("error: executing query")
		return nil, r.executionError(log, err)
	}
	defer rows.Close()

	reports := make([]models.Report, 0, window.Limit)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			log.Err(err).Str("func", "*reportRepository.Find").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*reportRepository.Find").Msg("error: rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reports, nil
}

// Count returns the total number of reports matching the filter. Callers must
// pass the same filter they hand to [reportRepository.Find] so that the total
// describes the collection being paged over.
func (r *reportRepository) Count(ctx context.Context, filter ReportFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Count").Msg("error: building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*reportRepository.Count").Msg("error: executing query")
		return 0, r.executionError(log, err)
	}

	return count, nil
}

// UpdateDescription replaces the description of one report. A zero-row update
// means the report does not exist within the kind → [ErrReportNotFound].
func (r *reportRepository) UpdateDescription(ctx context.Context, kind models.ReportKind, id string, description string) error {
	return r.execTargeted(ctx, "*reportRepository.UpdateDescription", updateReportDescription, description, id, kind)
}

// SetResolved flips the resolved flag of one report.
func (r *reportRepository) SetResolved(ctx context.Context, kind models.ReportKind, id string, resolved bool) error {
	return r.execTargeted(ctx, "*reportRepository.SetResolved", setReportResolved, resolved, id, kind)
}

// AppendReply atomically appends one reply to the report's thread and keeps
// the whole thread sorted by reply date. The append and the re-sort happen in
// a single UPDATE, so two concurrent replies can interleave in any order
// without corrupting the thread.
func (r *reportRepository) AppendReply(ctx context.Context, kind models.ReportKind, id string, reply models.Reply) error {
	log := logger.FromContext(ctx)

	encoded, err := json.Marshal([]models.Reply{reply})
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.AppendReply").Msg("error: marshalling reply")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execTargeted(ctx, "*reportRepository.AppendReply", appendReportReply, encoded, id, kind)
}

// Delete removes one report by id within the given kind.
func (r *reportRepository) Delete(ctx context.Context, kind models.ReportKind, id string) error {
	return r.execTargeted(ctx, "*reportRepository.Delete", deleteReport, id, kind)
}

// execTargeted runs a DML statement that addresses exactly one report and
// maps "zero rows affected" to [ErrReportNotFound].
func (r *reportRepository) execTargeted(ctx context.Context, fn string, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return ErrReportNotFound
		}
		log.Err(err).Str("func", fn).Msg("error: executing statement")
		return r.statementError(log, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error: reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrReportNotFound
	}

	return nil
}

// executionError wraps a read-path driver error, noting transient failures
// that a caller could retry.
func (r *reportRepository) executionError(log *logger.Logger, err error) error {
	if r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Msg("transient database error, operation may be retried")
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// statementError wraps a write-path driver error, noting transient failures
// that a caller could retry.
func (r *reportRepository) statementError(log *logger.Logger, err error) error {
	if r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Msg("transient database error, operation may be retried")
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanReport reads one row of report columns. The replies column is stored as
// a jsonb array and the townhall id may be NULL for feedback reports.
func scanReport(row rowScanner) (models.Report, error) {
	var (
		report   models.Report
		replies  []byte
		townhall sql.NullString
	)

	err := row.Scan(&report.ID, &report.Kind, &report.Date, &report.Description,
		&report.SubmitterID, &report.Resolved, &replies, &townhall)
	if err != nil {
		return models.Report{}, err
	}

	report.Replies = []models.Reply{}
	if len(replies) > 0 {
		if err := json.Unmarshal(replies, &report.Replies); err != nil {
			return models.Report{}, err
		}
	}
	if townhall.Valid {
		report.TownhallID = townhall.String
	}

	return report, nil
}

// nullableText maps an empty string to SQL NULL.
func nullableText(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
