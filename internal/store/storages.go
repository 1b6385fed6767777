package store

import (
	"context"
	"fmt"

	"github.com/townhall-project/feedback-portal/internal/config"
	"github.com/townhall-project/feedback-portal/internal/logger"
	"github.com/townhall-project/feedback-portal/migrations"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	ReportRepository ReportRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires up
// the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		ReportRepository: NewReportRepository(db, log),
	}, nil
}
