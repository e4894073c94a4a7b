package postgres

import (
	"context"

	"github.com/friendsofgo/errors"

	"monitor-srv/internal/model"
	"monitor-srv/internal/monitor/repository"
	"monitor-srv/pkg/paginator"
)

// InsertRun appends one run summary. The table is append-only; rows are
// never updated or deleted.
func (r *implRepository) InsertRun(ctx context.Context, opts repository.InsertRunOptions) (model.MonitorRunRecord, error) {
	rec := opts.Record

	err := r.db.QueryRowContext(ctx, insertRunQuery,
		rec.RunTimestamp,
		rec.ExceptionsFound,
		rec.ShipmentsChecked,
		rec.NotificationsSent,
		rec.RunDurationMS,
	).Scan(&rec.ID)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.InsertRun: %v", err)
		return model.MonitorRunRecord{}, errors.Wrap(err, "insert monitor run")
	}

	return rec, nil
}

func (r *implRepository) ListRuns(ctx context.Context, opts repository.ListRunsOptions) ([]model.MonitorRunRecord, paginator.Paginator, error) {
	pq := opts.PaginateQuery
	pq.Adjust()

	var total int64
	if err := r.db.QueryRowContext(ctx, countRunsQuery).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.ListRuns.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "count monitor runs")
	}

	rows, err := r.db.QueryContext(ctx, listRunsQuery, pq.Limit, pq.Offset())
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.ListRuns.Query: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "list monitor runs")
	}
	defer rows.Close()

	var runs []model.MonitorRunRecord
	for rows.Next() {
		var rec model.MonitorRunRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.RunTimestamp,
			&rec.ExceptionsFound,
			&rec.ShipmentsChecked,
			&rec.NotificationsSent,
			&rec.RunDurationMS,
		); err != nil {
			r.l.Errorf(ctx, "internal.monitor.repository.postgres.ListRuns.Scan: %v", err)
			return nil, paginator.Paginator{}, errors.Wrap(err, "scan monitor run")
		}
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.ListRuns.Rows: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "iterate monitor runs")
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(runs)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}

	return runs, pag, nil
}
