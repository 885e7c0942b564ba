package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	APIKeyFile string

	PlacesBaseURL     string
	PlaceType         string
	RequestTimeoutSec int
	PageTokenDelayMs  int

	DefaultRadius int
	DefaultLimit  int
	RatingBands   string

	CSVOutputPath  string
	YAMLOutputPath string
	LogLevel       string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		APIKeyFile: getEnv("API_KEY_FILE", ".env"),

		PlacesBaseURL:     strings.TrimRight(getEnv("PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place"), "/"),
		PlaceType:         getEnv("PLACE_TYPE", "restaurant"),
		RequestTimeoutSec: getEnvInt("REQUEST_TIMEOUT_SEC", 10),
		PageTokenDelayMs:  getEnvInt("PAGE_TOKEN_DELAY_MS", 2000),

		DefaultRadius: getEnvInt("DEFAULT_RADIUS", 1500),
		DefaultLimit:  getEnvInt("DEFAULT_LIMIT", 60),
		RatingBands:   strings.ToLower(getEnv("RATING_BANDS", "legacy")),

		CSVOutputPath:  getEnv("CSV_OUTPUT_PATH", "./output/restaurants.csv"),
		YAMLOutputPath: getEnv("YAML_OUTPUT_PATH", "./output/indexes.yaml"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// RequestTimeout returns the per-request upper bound for upstream calls.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// PageTokenDelay returns the wait required before a page token may be reused.
func (c *Config) PageTokenDelay() time.Duration {
	return time.Duration(c.PageTokenDelayMs) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
		log.Printf("[config] Invalid integer for %s=%q, using default %d", key, val, fallback)
	}
	return fallback
}
