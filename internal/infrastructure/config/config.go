package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	PricingSourceDynamo = "dynamodb"
	PricingSourceHTTP   = "http"
	PricingSourceFile   = "file"

	SessionStoreRedis  = "redis"
	SessionStoreDynamo = "dynamodb"
	SessionStoreMemory = "memory"
)

// PriceTables names the four read-only DynamoDB pricing tables.
type PriceTables struct {
	Rooms       string
	Accessories string
	Features    string
	Packages    string
}

// Config is the process configuration, read once at startup.
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	PricingSource     string
	PricingAPIBaseURL string
	PricingAPITimeout time.Duration
	PricingFile       string
	PriceTables       PriceTables

	SessionStore  string
	SessionsTable string
	SessionTTL    time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret          string
	CORSAllowedOrigins []string

	// SessionRateLimit caps new wizard sessions per client IP per window.
	SessionRateLimit  int
	SessionRateWindow time.Duration
}

// Load reads the environment. Unset or malformed values fall back to defaults.
func Load() Config {
	return Config{
		Port:      getenvInt("PORT", 8080),
		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "json"),

		PricingSource:     strings.ToLower(getenvDefault("PRICING_SOURCE", PricingSourceDynamo)),
		PricingAPIBaseURL: os.Getenv("PRICING_API_BASE_URL"),
		PricingAPITimeout: getenvDuration("PRICING_API_TIMEOUT", 10*time.Second),
		PricingFile:       getenvDefault("PRICING_FILE", "pricing.yaml"),
		PriceTables: PriceTables{
			Rooms:       getenvDefault("ROOM_PRICES_TABLE", "room_prices"),
			Accessories: getenvDefault("ACCESSORY_PRICES_TABLE", "accessory_prices"),
			Features:    getenvDefault("FEATURE_PRICES_TABLE", "feature_prices"),
			Packages:    getenvDefault("PACKAGES_TABLE", "packages"),
		},

		SessionStore:  strings.ToLower(getenvDefault("SESSION_STORE", SessionStoreMemory)),
		SessionsTable: getenvDefault("WIZARD_SESSIONS_TABLE", "wizard_sessions"),
		SessionTTL:    getenvDuration("SESSION_TTL", 24*time.Hour),
		RedisAddr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getenvInt("REDIS_DB", 0),

		JWTSecret:          os.Getenv("JWT_SECRET"),
		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),

		SessionRateLimit:  getenvInt("SESSION_RATE_LIMIT", 20),
		SessionRateWindow: getenvDuration("SESSION_RATE_WINDOW", time.Minute),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
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
