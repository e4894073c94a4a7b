package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

// Config holds all service configuration.
type Config struct {
	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig

	// Authentication & Security Configuration
	JWT JWTConfig

	// Monitoring Configuration
	Monitor      MonitorConfig
	Notification NotificationConfig
	A2A          A2AConfig
	Discord      DiscordConfig
}

// HTTPServerConfig is the configuration for the HTTP server.
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"true"`
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"monitor"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
}

// RedisConfig is the configuration for Redis.
// Note: Only standalone mode is supported.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	UseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	// Connection pool settings
	MaxRetries      int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	PoolTimeout     time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
	ConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"REDIS_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// JWTConfig is the configuration for the JWT.
type JWTConfig struct {
	SecretKey string `env:"JWT_SECRET_KEY"`
}

// MonitorConfig is the configuration for the exception monitor.
// Thresholds mirror the documented defaults; every one is overridable.
type MonitorConfig struct {
	Interval               time.Duration `env:"MONITOR_INTERVAL" envDefault:"5m"`
	DelayThreshold         time.Duration `env:"MONITOR_DELAY_THRESHOLD" envDefault:"24h"`
	ConfidenceThreshold    float64       `env:"MONITOR_CONFIDENCE_THRESHOLD" envDefault:"0.70"`
	TempDeviationThreshold float64       `env:"MONITOR_TEMP_DEVIATION_THRESHOLD" envDefault:"5.0"`
	MilestoneThreshold     time.Duration `env:"MONITOR_MILESTONE_THRESHOLD" envDefault:"72h"`
	CycleTimeout           time.Duration `env:"MONITOR_CYCLE_TIMEOUT" envDefault:"4m"`
	ShutdownTimeout        time.Duration `env:"MONITOR_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	Workers                int           `env:"MONITOR_WORKERS" envDefault:"4"`
}

// A2AConfig is the configuration for the outbound exception-handling agent.
type A2AConfig struct {
	BaseURL    string        `env:"A2A_BASE_URL" envDefault:"http://localhost:9000"`
	Timeout    time.Duration `env:"A2A_TIMEOUT" envDefault:"30s"`
	RetryCount int           `env:"A2A_RETRY_COUNT" envDefault:"1"`
	RetryDelay time.Duration `env:"A2A_RETRY_DELAY" envDefault:"2s"`
}

// NotificationConfig is the configuration for customer notifications.
type NotificationConfig struct {
	TrackingBaseURL string `env:"TRACKING_BASE_URL" envDefault:"https://track.cwlogistics.com"`
}

// DiscordConfig is the configuration for ops alerting. An empty webhook URL
// disables Discord alerts.
type DiscordConfig struct {
	WebhookURL string `env:"DISCORD_WEBHOOK_URL"`
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		fmt.Printf("Error loading configuration: %v", err)
		return nil, err
	}
	return cfg, nil
}
