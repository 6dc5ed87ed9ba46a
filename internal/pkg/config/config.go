package config

import (
	"log"
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig builds the service configuration from the environment.
// In the local environment the env file at configPath is read first; real
// environment variables always take precedence over it.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	if v.GetString("APP_ENV") == "local" && configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "matchmaking-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_PORT", 9994)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")

	v.SetDefault("JWT_EXPIRATION", 60)

	v.SetDefault("MATCH_DEFAULT_RADIUS_KM", 10)
	v.SetDefault("MATCH_MAX_RADIUS_KM", 20000)
	v.SetDefault("MATCH_DEFAULT_TTL", time.Hour)
	v.SetDefault("MATCH_SWEEP_INTERVAL", time.Minute)
	v.SetDefault("MATCH_SWEEP_LOCK_TTL", 30*time.Second)
	v.SetDefault("MATCH_GEOHASH_PRECISION", 7)
	v.SetDefault("MATCH_CREATE_RATE_LIMIT", 30)
	v.SetDefault("MATCH_CREATE_RATE_WINDOW", time.Minute)

	v.SetDefault("NEW_RELIC_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_TYPE", "console")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Matchmaking config
	configs.Matchmaking.DefaultRadiusKm = v.GetInt("MATCH_DEFAULT_RADIUS_KM")
	configs.Matchmaking.MaxRadiusKm = v.GetInt("MATCH_MAX_RADIUS_KM")
	configs.Matchmaking.DefaultTTL = v.GetDuration("MATCH_DEFAULT_TTL")
	configs.Matchmaking.SweepInterval = v.GetDuration("MATCH_SWEEP_INTERVAL")
	configs.Matchmaking.SweepLockTTL = v.GetDuration("MATCH_SWEEP_LOCK_TTL")
	configs.Matchmaking.GeohashPrecision = v.GetUint("MATCH_GEOHASH_PRECISION")
	configs.Matchmaking.CreateRateLimit = v.GetInt("MATCH_CREATE_RATE_LIMIT")
	configs.Matchmaking.CreateRateWindow = v.GetDuration("MATCH_CREATE_RATE_WINDOW")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LogsEnabled = v.GetBool("NEW_RELIC_LOGS_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")
	configs.Logger.Type = v.GetString("LOG_TYPE")

	return configs
}
