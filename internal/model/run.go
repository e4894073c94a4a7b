package model

import "time"

// MonitorRunRecord is the durable audit row written once per completed
// monitoring cycle. Rows are append-only and never updated or deleted.
type MonitorRunRecord struct {
	ID                int64     `json:"id"`
	RunTimestamp      time.Time `json:"run_timestamp"`
	ShipmentsChecked  int       `json:"shipments_checked"`
	ExceptionsFound   int       `json:"exceptions_found"`
	NotificationsSent int       `json:"notifications_sent"`
	RunDurationMS     int64     `json:"run_duration_ms"`
}
