package redis

import (
	"monitor-srv/internal/shipment/repository"
	pkgLog "monitor-srv/pkg/log"
	pkgRedis "monitor-srv/pkg/redis"
)

type implRepository struct {
	l     pkgLog.Logger
	redis pkgRedis.IRedis
}

var _ repository.TelemetryRepository = &implRepository{}

func New(l pkgLog.Logger, redis pkgRedis.IRedis) *implRepository {
	return &implRepository{
		l:     l,
		redis: redis,
	}
}
