package repository

import (
	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
)

// InsertRunOptions contains the run summary to append.
type InsertRunOptions struct {
	Record model.MonitorRunRecord
}

// ListRunsOptions contains options for listing run history, newest first.
type ListRunsOptions struct {
	PaginateQuery paginator.PaginateQuery
}
