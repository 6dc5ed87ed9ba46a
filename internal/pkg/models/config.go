package models

import "time"

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	NATS        NATSConfig
	JWT         JWTConfig
	Matchmaking MatchmakingConfig
	NewRelic    NewRelicConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// MatchmakingConfig contains matchmaking specific configuration
type MatchmakingConfig struct {
	DefaultRadiusKm  int           `json:"default_radius_km"`
	MaxRadiusKm      int           `json:"max_radius_km"`
	DefaultTTL       time.Duration `json:"default_ttl"`
	SweepInterval    time.Duration `json:"sweep_interval"`
	SweepLockTTL     time.Duration `json:"sweep_lock_ttl"`
	GeohashPrecision uint          `json:"geohash_precision"`
	CreateRateLimit  int           `json:"create_rate_limit"`
	CreateRateWindow time.Duration `json:"create_rate_window"`
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
