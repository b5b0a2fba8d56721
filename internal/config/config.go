package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DataDir      string // directory holding the device-local database
	ScriptureDir string // directory holding chapter JSON files
	PlanFile     string // path to the reading plans YAML file (optional, empty = built-in plan)

	// Remote sync backend (optional, empty = anonymous/local-only device)
	DatabaseURL string // postgres DSN for the per-user sync tables

	// Session tokens
	TokenSecret string        // HMAC secret for session tokens (required when DatabaseURL is set)
	TokenTTL    time.Duration // session token lifetime (default: 30 days)

	// Scripture chapter cache (optional, empty = cache disabled)
	RedisAddr           string        // ex: "localhost:6379"
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDialTimeout    time.Duration // Redis dial timeout (ex: 5s)
	RedisReadTimeout    time.Duration // Redis read timeout (ex: 3s)
	RedisWriteTimeout   time.Duration // Redis write timeout (ex: 3s)
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 15s)
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 2s)
	CacheTTL            time.Duration // chapter cache TTL (default: 24h)

	AllowedOrigins []string // origins allowed to call the API (the reading UI)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("SELAH_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("SELAH_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("SELAH_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SELAH_PRETTY_LOG", true),

		// Content and local data
		DataDir:      getenv("SELAH_DATA_DIR", "./data"),
		ScriptureDir: getenv("SELAH_SCRIPTURE_DIR", "./scripture"),
		PlanFile:     getenv("SELAH_PLAN_FILE", ""),

		// Remote sync
		DatabaseURL: getenv("SELAH_DATABASE_URL", ""),

		// Session tokens
		TokenSecret: getenv("SELAH_TOKEN_SECRET", ""),
		TokenTTL:    mustDuration("SELAH_TOKEN_TTL", 30*24*time.Hour),

		// Chapter cache
		RedisAddr:           getenv("SELAH_REDIS_ADDR", ""),
		RedisPassword:       getenv("SELAH_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("SELAH_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("SELAH_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("SELAH_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("SELAH_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisConnectTimeout: mustDuration("SELAH_REDIS_CONNECT_TIMEOUT", 15*time.Second),
		RedisRetryInterval:  mustDuration("SELAH_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("SELAH_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("SELAH_REDIS_PING_TIMEOUT", 2*time.Second),
		CacheTTL:            mustDuration("SELAH_CACHE_TTL", 24*time.Hour),

		AllowedOrigins: getenvSlice("SELAH_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
	}

	// A sync backend without a token secret would mint forgeable sessions.
	if cfg.DatabaseURL != "" && cfg.TokenSecret == "" {
		panic("FATAL: SELAH_TOKEN_SECRET is required when SELAH_DATABASE_URL is set")
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvSlice(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return splitAndTrim(v)
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
