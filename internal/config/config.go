package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Database struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

type Auth struct {
	JWTSecret        string
	AdminUser        string
	AdminPass        string
	TokenTTL         time.Duration
	LoginMaxAttempts int
	LoginWindow      time.Duration
}

type Cache struct {
	RedisURL string
	TTL      time.Duration
}

type Config struct {
	Env  string
	Port string
	// TrustedProxies lists the proxy addresses or CIDRs whose
	// X-Forwarded-For is honoured. Empty means the socket peer is the client.
	TrustedProxies []string
	Database       Database
	Auth           Auth
	Cache          Cache
}

// Production reports whether the process runs with APP_ENV=production.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from the environment. Files in envFiles are
// loaded first when present; a missing file is not an error.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", f, err)
			}
		}
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		TrustedProxies: getEnvList("TRUSTED_PROXIES"),
		Database: Database{
			Driver:       strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			DSN:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 10),
		},
		Auth: Auth{
			JWTSecret:        os.Getenv("JWT_SECRET"),
			AdminUser:        os.Getenv("ADMIN_USER"),
			AdminPass:        os.Getenv("ADMIN_PASS"),
			TokenTTL:         getEnvDuration("TOKEN_TTL", time.Hour),
			LoginMaxAttempts: getEnvInt("LOGIN_MAX_ATTEMPTS", 5),
			LoginWindow:      getEnvDuration("LOGIN_WINDOW", 15*time.Minute),
		},
		Cache: Cache{
			RedisURL: os.Getenv("REDIS_URL"),
			TTL:      getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
	}

	if cfg.Database.DSN == "" && cfg.Database.Driver == "postgres" {
		cfg.Database.DSN = postgresDSN()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.Auth.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.Auth.AdminUser == "" {
		missing = append(missing, "ADMIN_USER")
	}
	if c.Auth.AdminPass == "" {
		missing = append(missing, "ADMIN_PASS")
	}
	if c.Database.DSN == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}

// postgresDSN assembles a key/value DSN from the individual DB_* variables.
func postgresDSN() string {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s application_name=localnews",
		host,
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvList splits a comma-separated variable, dropping blank entries.
func getEnvList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
