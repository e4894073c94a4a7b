package repository

import (
	"context"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	InsertRun(ctx context.Context, opts InsertRunOptions) (model.MonitorRunRecord, error)
	ListRuns(ctx context.Context, opts ListRunsOptions) ([]model.MonitorRunRecord, paginator.Paginator, error)
}
