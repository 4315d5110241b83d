package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Upstream hotel-inventory API
	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	// Price polling
	PollMaxAttempts int
	PollDelay       time.Duration

	// HTTP boundary
	RequestTimeout time.Duration
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "https://hotelapi.loyalty.dev/api"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),

		PollMaxAttempts: getEnvInt("POLL_MAX_ATTEMPTS", 15),
		PollDelay:       getEnvDuration("POLL_DELAY", 1500*time.Millisecond),

		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 60*time.Second),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid value %q for %s, using default %d", v, key, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid value %q for %s, using default %s", v, key, fallback)
		return fallback
	}
	return d
}

func getEnvSlice(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
