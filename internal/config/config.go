package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr string

	// Session tokens.
	SessionSecret string
	SessionTTL    time.Duration

	// Janitor settings for idle session cleanup.
	SessionMaxIdle time.Duration
	SweepSchedule  string // cron expression

	// Upload guard for gradesheet PDFs.
	MaxUploadBytes int64

	CORSOrigins []string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:       addr,
		SessionSecret:  envOr("SESSION_SECRET", "dev-only-secret"),
		SessionTTL:     envDuration("SESSION_TTL", 24*time.Hour),
		SessionMaxIdle: envDuration("SESSION_MAX_IDLE", 2*time.Hour),
		SweepSchedule:  envOr("SWEEP_SCHEDULE", "@every 15m"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10<<20),
		CORSOrigins:    csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func envInt64(k string, def int64) int64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
