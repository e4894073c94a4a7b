package classifier

import (
	"context"

	"monitor-srv/internal/model"
)

// Classifier scores the delay risk of a single shipment. Implementations
// must be deterministic for a given snapshot so the periodic monitor and the
// on-demand warning path never disagree about the same shipment.
type Classifier interface {
	PredictDelay(ctx context.Context, snapshot model.ShipmentSnapshot) (model.Prediction, error)
}
