package postgres

const listActiveQuery = `
SELECT
	shipment_id,
	status,
	origin_port,
	destination_port,
	scheduled_departure,
	scheduled_eta,
	current_eta_estimate,
	transit_days,
	carrier_reliability,
	risk_flag,
	ml_delay_confidence,
	ml_predicted_delay_hours,
	ml_risk_factors,
	route_corridor,
	last_known_lat,
	last_known_lon,
	expected_milestone_interval_hours
FROM shipments
WHERE status <> $1
ORDER BY shipment_id`

const getOneQuery = `
SELECT
	shipment_id,
	status,
	origin_port,
	destination_port,
	scheduled_departure,
	scheduled_eta,
	current_eta_estimate,
	transit_days,
	carrier_reliability,
	risk_flag,
	ml_delay_confidence,
	ml_predicted_delay_hours,
	ml_risk_factors,
	route_corridor,
	last_known_lat,
	last_known_lon,
	expected_milestone_interval_hours
FROM shipments
WHERE shipment_id = $1`

// One reefer row per shipment; the container with the largest deviation wins
// so a single snapshot field still reflects the worst reading on board.
const listReeferQuery = `
SELECT DISTINCT ON (shipment_id)
	shipment_id,
	container_id,
	current_temp,
	target_temp
FROM containers
WHERE container_type = 'reefer'
	AND current_temp IS NOT NULL
	AND target_temp IS NOT NULL
	AND shipment_id = ANY($1)
ORDER BY shipment_id, ABS(current_temp - target_temp) DESC`

const lastMilestoneQuery = `
SELECT shipment_id, MAX(actual_time)
FROM milestones
WHERE actual_time IS NOT NULL
	AND actual_time <= $1
	AND shipment_id = ANY($2)
GROUP BY shipment_id`
