package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"monitor-srv/internal/classifier"
	"monitor-srv/internal/notification"
	"monitor-srv/internal/shipment"
	"monitor-srv/pkg/a2a"
	pkgLog "monitor-srv/pkg/log"
)

const defaultTrackingBaseURL = "https://track.cwlogistics.com"

type implUseCase struct {
	l          pkgLog.Logger
	cfg        notification.Config
	agent      a2a.IA2A
	transport  notification.Transport
	shipments  shipment.UseCase
	classifier classifier.Classifier
	now        func() time.Time
}

func New(l pkgLog.Logger, cfg notification.Config, agent a2a.IA2A, transport notification.Transport, shipments shipment.UseCase, classifier classifier.Classifier) notification.UseCase {
	if cfg.TrackingBaseURL == "" {
		cfg.TrackingBaseURL = defaultTrackingBaseURL
	}
	return &implUseCase{
		l:          l,
		cfg:        cfg,
		agent:      agent,
		transport:  transport,
		shipments:  shipments,
		classifier: classifier,
		now:        time.Now,
	}
}

// newNotificationID mints the id before any delivery attempt, so a send that
// fails downstream is still correlatable in the logs.
func (uc *implUseCase) newNotificationID() string {
	return fmt.Sprintf("NOTIF-%s-%s", uc.now().UTC().Format("20060102"), uuid.New().String()[:8])
}

func (uc *implUseCase) trackingURL(shipmentID string) string {
	return uc.cfg.TrackingBaseURL + "/" + shipmentID
}
