package services

import (
	"context"

	"github.com/catalogsvc/catalog/internal/domain/deletionlog"
	"github.com/catalogsvc/catalog/internal/metrics"
)

const deletionLogServiceName = "deletionlog"

// DeletionLogService exposes the append-only deletion-log audit view.
// It never mutates the log itself — entries are appended only by the
// deletion strategies, as part of a physical-delete operation.
type DeletionLogService struct {
	repo deletionlog.Repository
}

// NewDeletionLogService builds a DeletionLogService bound to repo.
func NewDeletionLogService(repo deletionlog.Repository) *DeletionLogService {
	return &DeletionLogService{repo: repo}
}

// FindAll lists deletion-log entries, optionally scoped to one product.
func (s *DeletionLogService) FindAll(ctx context.Context, filter deletionlog.Filter) ([]deletionlog.Entry, error) {
	return metrics.WithMetricsResult(ctx, deletionLogServiceName, "find_all", func(ctx context.Context) ([]deletionlog.Entry, error) {
		return s.repo.FindAll(ctx, filter)
	})
}
