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

// Credential verification schemes.
const (
	PasswordSchemePlain  = "plain"
	PasswordSchemeBcrypt = "bcrypt"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Database      DatabaseConfig
	Redis         RedisConfig
	Auth          AuthConfig
	CORS          CORSConfig
	Log           LogConfig
	Events        EventsConfig
	Registrations RegistrationsConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// AuthConfig governs login behaviour and the optional token guard.
type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	PasswordScheme string
	RequireTokens  bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// EventsConfig tunes the event lifecycle behaviour.
type EventsConfig struct {
	CacheEnabled        bool
	CacheTTL            time.Duration
	ScopedPendingFilter bool
	PurgeEnabled        bool
	PurgeWorkers        int
}

// RegistrationsConfig tunes registration consistency rules.
type RegistrationsConfig struct {
	EnforceUnique bool
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

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Auth = AuthConfig{
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTExpiration:  parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		PasswordScheme: v.GetString("AUTH_PASSWORD_SCHEME"),
		RequireTokens:  v.GetBool("AUTH_REQUIRE_TOKENS"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Events = EventsConfig{
		CacheEnabled:        v.GetBool("EVENTS_CACHE_ENABLED"),
		CacheTTL:            parseDuration(v.GetString("EVENTS_CACHE_TTL"), 5*time.Minute),
		ScopedPendingFilter: v.GetBool("EVENTS_SCOPED_PENDING_FILTER"),
		PurgeEnabled:        v.GetBool("EVENTS_PURGE_ENABLED"),
		PurgeWorkers:        v.GetInt("EVENTS_PURGE_WORKERS"),
	}

	cfg.Registrations = RegistrationsConfig{
		EnforceUnique: v.GetBool("REGISTRATIONS_ENFORCE_UNIQUE"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "campus_events")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("AUTH_PASSWORD_SCHEME", PasswordSchemePlain)
	v.SetDefault("AUTH_REQUIRE_TOKENS", false)

	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("EVENTS_CACHE_ENABLED", false)
	v.SetDefault("EVENTS_CACHE_TTL", "5m")
	v.SetDefault("EVENTS_SCOPED_PENDING_FILTER", false)
	v.SetDefault("EVENTS_PURGE_ENABLED", false)
	v.SetDefault("EVENTS_PURGE_WORKERS", 1)

	v.SetDefault("REGISTRATIONS_ENFORCE_UNIQUE", false)
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
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
