package postgres

const insertRunQuery = `
INSERT INTO exception_monitor_runs
	(run_timestamp, exceptions_found, shipments_checked, notifications_sent, run_duration_ms)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

const listRunsQuery = `
SELECT id, run_timestamp, exceptions_found, shipments_checked, notifications_sent, run_duration_ms
FROM exception_monitor_runs
ORDER BY run_timestamp DESC
LIMIT $1 OFFSET $2`

const countRunsQuery = `SELECT COUNT(*) FROM exception_monitor_runs`
