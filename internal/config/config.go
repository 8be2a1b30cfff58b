// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/hoopstats.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Season bounds and table names
// --------------------------------------------------------------------------

// FirstSeason is the earliest season the upstream API carries complete
// regular-season results for.
const FirstSeason = 1979

const (
	TeamStatsTable = "team_stats"

	TeamStatsCSVFile  = "team-stats.csv"
	TeamStatsJSONFile = "team-stats.json"
)

// --------------------------------------------------------------------------
// Config
// --------------------------------------------------------------------------

// Config is populated from environment variables.
type Config struct {
	// BallDontLie
	BDLBaseURL           string
	BDLAPIKey            string
	BDLRequestsPerMinute int
	BDLTimeout           time.Duration

	// Output
	OutputDir  string
	SQLitePath string

	// Database (only required for the postgres output)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost string
	APIPort int

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		BDLBaseURL:           envOr("BALLDONTLIE_BASE_URL", "https://www.balldontlie.io/api/v1"),
		BDLAPIKey:            envOr("BALLDONTLIE_API_KEY", ""),
		BDLRequestsPerMinute: envInt("BALLDONTLIE_REQUESTS_PER_MINUTE", 60),
		BDLTimeout:           time.Duration(envInt("BALLDONTLIE_TIMEOUT_SECONDS", 30)) * time.Second,

		OutputDir:  envOr("OUTPUT_DIR", "."),
		SQLitePath: envOr("SQLITE_PATH", "team_stats.db"),

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 4),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost: envOr("API_HOST", "0.0.0.0"),
		APIPort: envInt("API_PORT", envInt("PORT", 8000)),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}
}

// HasDatabase reports whether a Postgres URL was configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
