package redis

import (
	"context"
	"encoding/json"

	"monitor-srv/internal/model"
)

// telemetryKeyPrefix is where the tracking pipeline caches the latest
// position fix and reefer reading per shipment.
const telemetryKeyPrefix = "shipment:telemetry:"

func telemetryKey(shipmentID string) string {
	return telemetryKeyPrefix + shipmentID
}

func (r *implRepository) GetLiveTelemetry(ctx context.Context, shipmentIDs []string) (map[string]model.LiveTelemetry, error) {
	if len(shipmentIDs) == 0 {
		return map[string]model.LiveTelemetry{}, nil
	}

	keys := make([]string, len(shipmentIDs))
	for i, id := range shipmentIDs {
		keys[i] = telemetryKey(id)
	}

	values, err := r.redis.MGet(ctx, keys...)
	if err != nil {
		r.l.Errorf(ctx, "internal.shipment.repository.redis.GetLiveTelemetry.MGet: %v", err)
		return nil, err
	}

	telemetry := make(map[string]model.LiveTelemetry, len(shipmentIDs))
	for i, value := range values {
		if value == nil {
			continue
		}
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var t model.LiveTelemetry
		if err := json.Unmarshal([]byte(raw), &t); err != nil {
			// Malformed cache entries are skipped, not fatal.
			r.l.Warnf(ctx, "internal.shipment.repository.redis.GetLiveTelemetry: decode %s: %v", keys[i], err)
			continue
		}

		telemetry[shipmentIDs[i]] = t
	}

	return telemetry, nil
}
