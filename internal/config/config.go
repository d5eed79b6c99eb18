package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devSessionSecret = "dev-secret-change-in-production"

type Config struct {
	Port          string
	Env           string
	DBDriver      string
	DatabaseDSN   string
	SessionSecret string
	SessionTTL    time.Duration
	RememberTTL   time.Duration
	CookieName    string
	CookieSecure  bool
	AuthRateLimit float64
	AuthRateBurst int
}

func Load() Config {
	driver := getEnv("DB_DRIVER", "sqlite")

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		DBDriver:      driver,
		DatabaseDSN:   getEnv("DATABASE_DSN", defaultDSN(driver)),
		SessionSecret: getEnv("SESSION_SECRET", devSessionSecret),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
		RememberTTL:   getDuration("REMEMBER_TTL", 30*24*time.Hour),
		CookieName:    getEnv("COOKIE_NAME", "blog_session"),
		CookieSecure:  getBool("COOKIE_SECURE", false),
		AuthRateLimit: getFloat("AUTH_RATE_LIMIT", 5),
		AuthRateBurst: getInt("AUTH_RATE_BURST", 10),
	}

	if cfg.Env == "production" && cfg.SessionSecret == devSessionSecret {
		slog.Error("SESSION_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func defaultDSN(driver string) string {
	if driver == "mysql" {
		return "root:password@tcp(127.0.0.1:3306)/blog"
	}
	return "file:blog.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
