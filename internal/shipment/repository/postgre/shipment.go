package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/lib/pq"

	"monitor-srv/internal/model"
	"monitor-srv/internal/shipment/repository"
	"monitor-srv/pkg/geo"
)

// ListActive loads every shipment still in flight together with its reefer
// reading and last observed milestone. All three reads run inside one
// repeatable-read transaction so the returned snapshots agree on a single
// database state.
func (r *implRepository) ListActive(ctx context.Context, opts repository.ListActiveOptions) ([]model.ShipmentSnapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		r.l.Errorf(ctx, "internal.shipment.repository.postgres.ListActive.BeginTx: %v", err)
		return nil, errors.Wrap(err, "begin snapshot tx")
	}
	defer tx.Rollback()

	snapshots, err := r.scanShipments(ctx, tx, listActiveQuery, model.ShipmentStatusDelivered)
	if err != nil {
		r.l.Errorf(ctx, "internal.shipment.repository.postgres.ListActive.scanShipments: %v", err)
		return nil, errors.Wrap(err, "list active shipments")
	}
	if len(snapshots) == 0 {
		return snapshots, nil
	}

	ids := make([]string, len(snapshots))
	for i, s := range snapshots {
		ids[i] = s.ShipmentID
	}

	reefers, err := r.scanReefers(ctx, tx, ids)
	if err != nil {
		r.l.Errorf(ctx, "internal.shipment.repository.postgres.ListActive.scanReefers: %v", err)
		return nil, errors.Wrap(err, "list reefer containers")
	}

	milestones, err := r.scanLastMilestones(ctx, tx, opts.AsOf, ids)
	if err != nil {
		r.l.Errorf(ctx, "internal.shipment.repository.postgres.ListActive.scanLastMilestones: %v", err)
		return nil, errors.Wrap(err, "list last milestones")
	}

	for i := range snapshots {
		if reefer, ok := reefers[snapshots[i].ShipmentID]; ok {
			snapshots[i].Reefer = &reefer
		}
		if at, ok := milestones[snapshots[i].ShipmentID]; ok {
			snapshots[i].LastMilestoneAt = at
		}
	}

	return snapshots, nil
}

// GetOne loads a single shipment snapshot regardless of status, enriched the
// same way ListActive enriches the fleet.
func (r *implRepository) GetOne(ctx context.Context, opts repository.GetOneOptions) (model.ShipmentSnapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		r.l.Errorf(ctx, "internal.shipment.repository.postgres.GetOne.BeginTx: %v", err)
		return model.ShipmentSnapshot{}, errors.Wrap(err, "begin snapshot tx")
	}
	defer tx.Rollback()

	snapshots, err := r.scanShipments(ctx, tx, getOneQuery, opts.ShipmentID)
	if err != nil {
		r.l.Errorf(ctx, "internal.shipment.repository.postgres.GetOne.scanShipments: %v", err)
		return model.ShipmentSnapshot{}, errors.Wrap(err, "get shipment")
	}
	if len(snapshots) == 0 {
		return model.ShipmentSnapshot{}, repository.ErrNotFound
	}
	snapshot := snapshots[0]

	ids := []string{snapshot.ShipmentID}

	reefers, err := r.scanReefers(ctx, tx, ids)
	if err != nil {
		r.l.Errorf(ctx, "internal.shipment.repository.postgres.GetOne.scanReefers: %v", err)
		return model.ShipmentSnapshot{}, errors.Wrap(err, "get reefer container")
	}
	if reefer, ok := reefers[snapshot.ShipmentID]; ok {
		snapshot.Reefer = &reefer
	}

	milestones, err := r.scanLastMilestones(ctx, tx, opts.AsOf, ids)
	if err != nil {
		r.l.Errorf(ctx, "internal.shipment.repository.postgres.GetOne.scanLastMilestones: %v", err)
		return model.ShipmentSnapshot{}, errors.Wrap(err, "get last milestone")
	}
	if at, ok := milestones[snapshot.ShipmentID]; ok {
		snapshot.LastMilestoneAt = at
	}

	return snapshot, nil
}

func (r *implRepository) scanShipments(ctx context.Context, tx *sql.Tx, query string, args ...any) ([]model.ShipmentSnapshot, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []model.ShipmentSnapshot
	for rows.Next() {
		var (
			s               model.ShipmentSnapshot
			originPort      sql.NullString
			destinationPort sql.NullString
			departure       sql.NullTime
			currentETA      sql.NullTime
			transitDays     sql.NullInt64
			reliability     sql.NullFloat64
			confidence      sql.NullFloat64
			predictedHours  sql.NullFloat64
			riskFactors     pq.StringArray
			corridor        []byte
			lat             sql.NullFloat64
			lon             sql.NullFloat64
			intervalHours   sql.NullFloat64
		)

		if err := rows.Scan(
			&s.ShipmentID,
			&s.Status,
			&originPort,
			&destinationPort,
			&departure,
			&s.ScheduledETA,
			&currentETA,
			&transitDays,
			&reliability,
			&s.RiskFlagged,
			&confidence,
			&predictedHours,
			&riskFactors,
			&corridor,
			&lat,
			&lon,
			&intervalHours,
		); err != nil {
			return nil, err
		}

		s.OriginPort = originPort.String
		s.DestinationPort = destinationPort.String
		if departure.Valid {
			s.ScheduledDeparture = departure.Time
		}
		// Without an updated estimate the shipment is assumed on schedule.
		s.CurrentETAEstimate = s.ScheduledETA
		if currentETA.Valid {
			s.CurrentETAEstimate = currentETA.Time
		}
		s.TransitDays = int(transitDays.Int64)
		s.CarrierReliability = reliability.Float64
		s.MLDelayConfidence = confidence.Float64
		s.MLPredictedDelayHours = predictedHours.Float64
		s.MLRiskFactors = riskFactors
		s.ExpectedMilestoneInterval = time.Duration(intervalHours.Float64 * float64(time.Hour))
		if lat.Valid && lon.Valid {
			s.Position = &geo.Point{Lat: lat.Float64, Lon: lon.Float64}
		}
		if len(corridor) > 0 {
			if err := json.Unmarshal(corridor, &s.RouteCorridor); err != nil {
				return nil, errors.Wrapf(err, "decode route corridor for %s", s.ShipmentID)
			}
		}

		snapshots = append(snapshots, s)
	}

	return snapshots, rows.Err()
}

func (r *implRepository) scanReefers(ctx context.Context, tx *sql.Tx, ids []string) (map[string]model.ReeferTelemetry, error) {
	rows, err := tx.QueryContext(ctx, listReeferQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reefers := make(map[string]model.ReeferTelemetry)
	for rows.Next() {
		var (
			shipmentID string
			reefer     model.ReeferTelemetry
		)
		if err := rows.Scan(&shipmentID, &reefer.ContainerID, &reefer.TemperatureCelsius, &reefer.SetpointCelsius); err != nil {
			return nil, err
		}
		reefers[shipmentID] = reefer
	}

	return reefers, rows.Err()
}

func (r *implRepository) scanLastMilestones(ctx context.Context, tx *sql.Tx, asOf time.Time, ids []string) (map[string]time.Time, error) {
	rows, err := tx.QueryContext(ctx, lastMilestoneQuery, asOf, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	milestones := make(map[string]time.Time)
	for rows.Next() {
		var (
			shipmentID string
			at         time.Time
		)
		if err := rows.Scan(&shipmentID, &at); err != nil {
			return nil, err
		}
		milestones[shipmentID] = at
	}

	return milestones, rows.Err()
}
