package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the settings for both binaries: the console client and
// the in-memory dev server. Everything comes from the environment, with
// an optional .env file for local development.
type Config struct {
	// Console.
	APIBaseURL      string
	RequestTimeout  time.Duration
	StateFile       string
	LogstashTCPAddr string

	// Dev server.
	Port         string
	JWTSecret    string
	SessionTTL   time.Duration
	AllowOrigins []string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	return Config{
		APIBaseURL:      getenv("API_BASE_URL", "http://localhost:7060"),
		RequestTimeout:  getduration("REQUEST_TIMEOUT", 30*time.Second),
		StateFile:       getenv("STATE_FILE", ""),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),
		Port:            getenv("PORT", "7060"),
		JWTSecret:       getenv("JWT_SECRET", "voyagedesk-dev-secret"),
		SessionTTL:      getduration("SESSION_TTL", 30*time.Minute),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getduration(k string, d time.Duration) time.Duration {
	raw := os.Getenv(k)
	if raw == "" {
		return d
	}
	if v, err := time.ParseDuration(raw); err == nil && v > 0 {
		return v
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	log.Printf("Warning: invalid duration for %s: %q, using %s", k, raw, d)
	return d
}
