package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"monitor-srv/internal/monitor"
	"monitor-srv/internal/notification"
	"monitor-srv/pkg/log"
	pkgRedis "monitor-srv/pkg/redis"
	"monitor-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const defaultShutdownTimeout = 30 * time.Second

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting the scheduler and HTTP serving.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	logger      log.Logger
	port        int
	environment string

	// Monitoring core
	monitorUC       monitor.UseCase
	scheduler       monitor.Scheduler
	notificationUC  notification.UseCase
	shutdownTimeout time.Duration

	// Auth & security
	jwtMgr scope.Manager

	// External services
	db    *sql.DB
	redis pkgRedis.IRedis
}

// Config is the constructor input for HTTPServer.
// Keep this minimal: only fields really needed by HTTPServer.
type Config struct {
	// Server configuration
	Port        int
	Environment string

	// Monitoring core
	MonitorUC       monitor.UseCase
	Scheduler       monitor.Scheduler
	NotificationUC  notification.UseCase
	ShutdownTimeout time.Duration

	// Auth & security
	JWTManager scope.Manager

	// External services
	DB    *sql.DB
	Redis pkgRedis.IRedis
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Environment) // cfg.Environment should map to gin mode by convention

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		// Server configuration
		gin:         gin.Default(),
		logger:      logger,
		port:        cfg.Port,
		environment: cfg.Environment,

		// Monitoring core
		monitorUC:       cfg.MonitorUC,
		scheduler:       cfg.Scheduler,
		notificationUC:  cfg.NotificationUC,
		shutdownTimeout: cfg.ShutdownTimeout,

		// Auth & security
		jwtMgr: cfg.JWTManager,

		// External services
		db:    cfg.DB,
		redis: cfg.Redis,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.monitorUC == nil {
		return errors.New("monitor usecase is required")
	}
	if s.scheduler == nil {
		return errors.New("scheduler is required")
	}
	if s.notificationUC == nil {
		return errors.New("notification usecase is required")
	}
	if s.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if s.db == nil {
		return errors.New("PostgreSQL client is required")
	}
	if s.redis == nil {
		return errors.New("Redis client is required")
	}

	return nil
}
