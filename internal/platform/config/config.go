package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const insecureJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Back-office administrator. The password is stored as a bcrypt hash.
	AdminUsername     string
	AdminPasswordHash string

	// Pricing snapshot cache. An empty RedisAddr disables caching.
	RedisAddr               string
	SnapshotCacheTTL        time.Duration
	SnapshotRefreshSchedule string // cron spec; empty disables the warm-up job

	LoginRateLimit     string // ulule formatted rate, e.g. "5-M"
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", insecureJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "bizhub-pricing")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("SNAPSHOT_CACHE_TTL", "5m")
	v.SetDefault("SNAPSHOT_REFRESH_SCHEDULE", "*/5 * * * *")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// an explicitly empty SNAPSHOT_REFRESH_SCHEDULE or REDIS_ADDR switches the feature off
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:             v.GetString("PGSQL_URL"),
		Port:                    v.GetString("PORT"),
		IsProduction:            v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:           v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:               v.GetString("JWT_SECRET"),
		JWTIssuer:               v.GetString("JWT_ISSUER"),
		AdminUsername:           v.GetString("ADMIN_USERNAME"),
		AdminPasswordHash:       v.GetString("ADMIN_PASSWORD_HASH"),
		RedisAddr:               v.GetString("REDIS_ADDR"),
		SnapshotRefreshSchedule: strings.TrimSpace(v.GetString("SNAPSHOT_REFRESH_SCHEDULE")),
		LoginRateLimit:          v.GetString("LOGIN_RATE_LIMIT"),
		CORSAllowedOrigins:      splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "bizhub-pricing"
	}
	if cfg.LoginRateLimit == "" {
		cfg.LoginRateLimit = "5-M"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = insecureJWTSecret
	}

	var err error
	if cfg.JWTExpiryDuration, err = durationOrDefault(v, "JWT_EXPIRY_DURATION", time.Hour); err != nil {
		return nil, err
	}
	if cfg.SnapshotCacheTTL, err = durationOrDefault(v, "SNAPSHOT_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == insecureJWTSecret {
		if cfg.IsProduction {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Administrator login is disabled.")
	}

	return cfg, nil
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
