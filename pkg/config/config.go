package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	HTTP HTTPConfig

	// Logging
	LogLevel  string
	LogFormat string

	// Remote dataset downloads (CLI)
	FetchTimeout    time.Duration
	FetchRetries    int           // 0 disables retry
	FetchRetryDelay time.Duration // first backoff step, doubled per attempt
	FetchRPS        float64       // <= 0 means unlimited

	// AnalysisConfigPath points to an optional YAML file with analysis defaults
	AnalysisConfigPath string
}

// HTTPConfig holds request handling limits
type HTTPConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxUploadBytes int64

	// Per-client token bucket. RateLimitRPS <= 0 disables it.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8000"),
		Env:  getEnv("ENV", "development"),

		HTTP: HTTPConfig{
			ReadTimeout:    getEnvAsDuration("READ_TIMEOUT", "30s"),
			WriteTimeout:   getEnvAsDuration("WRITE_TIMEOUT", "60s"),
			IdleTimeout:    getEnvAsDuration("IDLE_TIMEOUT", "120s"),
			MaxUploadBytes: int64(getEnvAsInt("MAX_UPLOAD_MB", 32)) << 20,
			RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 0),
			RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 10),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		FetchTimeout:    getEnvAsDuration("FETCH_TIMEOUT", "30s"),
		FetchRetries:    getEnvAsInt("FETCH_RETRIES", 3),
		FetchRetryDelay: getEnvAsDuration("FETCH_RETRY_DELAY", "1s"),
		FetchRPS:        getEnvAsFloat("FETCH_RPS", 0),

		AnalysisConfigPath: getEnv("ANALYSIS_CONFIG", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks that configuration values are usable
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.HTTP.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}

	if c.HTTP.RateLimitRPS > 0 && c.HTTP.RateLimitBurst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}

	if c.FetchRetries < 0 {
		return fmt.Errorf("FETCH_RETRIES must not be negative")
	}

	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}

	return nil
}

// LoadEnvFile loads variables from an explicit .env file. Variables already
// set in the environment win.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
