package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultSessionSecret signs flash cookies when SESSION_SECRET is unset. It is
// public, so production must override it.
const DefaultSessionSecret = "change-me"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort       string
	APIBaseURL       string
	APITimeout       time.Duration
	RedisAddr        string
	RedisDB          int
	RedisPass        string
	SessionSecret    string
	CookieSecure     bool
	PendingUploadTTL time.Duration
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:3001"),
		APITimeout:       getEnvDuration("API_TIMEOUT", 15*time.Second),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		SessionSecret:    getEnv("SESSION_SECRET", DefaultSessionSecret),
		CookieSecure:     getEnvBool("COOKIE_SECURE", false),
		PendingUploadTTL: getEnvDuration("PENDING_UPLOAD_TTL", 24*time.Hour),
	}
}

// UsesDefaultSessionSecret reports whether cookies are signed with DefaultSessionSecret.
func (c *Config) UsesDefaultSessionSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
