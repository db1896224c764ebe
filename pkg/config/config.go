package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Remote     RemoteConfig
	Sync       SyncConfig
	LocalStore LocalStoreConfig
	Redis      RedisConfig
	Cache      CacheConfig
	JWT        JWTConfig
	Auth       AuthConfig
	Jobs       JobsConfig
	CORS       CORSConfig
	Log        LogConfig
}

// RemoteConfig locates the scheduling service and bounds its probes.
type RemoteConfig struct {
	BaseURL        string
	HealthTimeout  time.Duration
	RequestTimeout time.Duration
}

// SyncConfig bounds the startup readiness wait of the mode arbiter.
type SyncConfig struct {
	PollInterval        time.Duration
	GatewayWaitAttempts int
	ReadyWaitAttempts   int
}

// LocalStoreConfig locates the embedded fallback store.
type LocalStoreConfig struct {
	Path string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig governs the optional redis-backed statistics cache.
type CacheConfig struct {
	Enabled  bool
	StatsTTL time.Duration
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// AuthConfig gates the JWT guard on mutating entity routes.
type AuthConfig struct {
	GuardEnabled bool
}

// JobsConfig tunes the asynchronous auto-reschedule queue.
type JobsConfig struct {
	Enabled    bool
	Workers    int
	BufferSize int
	MaxRetries int
	RetryDelay time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Remote = RemoteConfig{
		BaseURL:        v.GetString("REMOTE_BASE_URL"),
		HealthTimeout:  parseDuration(v.GetString("REMOTE_HEALTH_TIMEOUT"), 3*time.Second),
		RequestTimeout: parseDuration(v.GetString("REMOTE_REQUEST_TIMEOUT"), 0),
	}

	cfg.Sync = SyncConfig{
		PollInterval:        parseDuration(v.GetString("SYNC_POLL_INTERVAL"), 100*time.Millisecond),
		GatewayWaitAttempts: v.GetInt("SYNC_GATEWAY_WAIT_ATTEMPTS"),
		ReadyWaitAttempts:   v.GetInt("SYNC_READY_WAIT_ATTEMPTS"),
	}

	cfg.LocalStore = LocalStoreConfig{
		Path: v.GetString("LOCAL_STORE_PATH"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Cache = CacheConfig{
		Enabled:  v.GetBool("REDIS_CACHE_ENABLED"),
		StatsTTL: parseDuration(v.GetString("STATS_CACHE_TTL"), 5*time.Minute),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
	}

	cfg.Auth = AuthConfig{
		GuardEnabled: v.GetBool("AUTH_GUARD_ENABLED"),
	}

	cfg.Jobs = JobsConfig{
		Enabled:    v.GetBool("JOBS_ENABLED"),
		Workers:    v.GetInt("JOBS_WORKERS"),
		BufferSize: v.GetInt("JOBS_BUFFER_SIZE"),
		MaxRetries: v.GetInt("JOBS_MAX_RETRIES"),
		RetryDelay: parseDuration(v.GetString("JOBS_RETRY_DELAY"), 5*time.Second),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("REMOTE_BASE_URL", "http://localhost:5000")
	v.SetDefault("REMOTE_HEALTH_TIMEOUT", "3s")
	v.SetDefault("REMOTE_REQUEST_TIMEOUT", "0")

	v.SetDefault("SYNC_POLL_INTERVAL", "100ms")
	v.SetDefault("SYNC_GATEWAY_WAIT_ATTEMPTS", 20)
	v.SetDefault("SYNC_READY_WAIT_ATTEMPTS", 50)

	v.SetDefault("LOCAL_STORE_PATH", "./data/dashboard.db")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_CACHE_ENABLED", false)
	v.SetDefault("STATS_CACHE_TTL", "5m")

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("AUTH_GUARD_ENABLED", false)

	v.SetDefault("JOBS_ENABLED", false)
	v.SetDefault("JOBS_WORKERS", 1)
	v.SetDefault("JOBS_BUFFER_SIZE", 8)
	v.SetDefault("JOBS_MAX_RETRIES", 3)
	v.SetDefault("JOBS_RETRY_DELAY", "5s")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
