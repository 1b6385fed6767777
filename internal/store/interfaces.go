package store

import (
	"context"

	"github.com/townhall-project/feedback-portal/models"
)

// ReportRepository is the persistence contract for bug and feedback reports.
// Implementations are kind-agnostic: every method takes the report kind
// explicitly so that a single repository can back both collections.
type ReportRepository interface {
	Insert(ctx context.Context, report models.Report) (models.Report, error)
	FindByID(ctx context.Context, kind models.ReportKind, id string) (models.Report, error)
	Find(ctx context.Context, filter ReportFilter, window PageWindow) ([]models.Report, error)
	Count(ctx context.Context, filter ReportFilter) (int64, error)
	UpdateDescription(ctx context.Context, kind models.ReportKind, id string, description string) error
	SetResolved(ctx context.Context, kind models.ReportKind, id string, resolved bool) error
	AppendReply(ctx context.Context, kind models.ReportKind, id string, reply models.Reply) error
	Delete(ctx context.Context, kind models.ReportKind, id string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier] for the PostgreSQL implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ReportFilter restricts which reports a Find or Count touches. The same
// filter value must be passed to both calls of a paginated listing so that
// the returned total matches the rows being paged over.
type ReportFilter struct {
	Kind        models.ReportKind
	SubmitterID string
	Resolved    *bool
}

// PageWindow describes one page of a listing: how many rows to skip, how many
// to return, and the creation-date sort direction.
type PageWindow struct {
	Skip      uint64
	Limit     uint64
	Ascending bool
}
