package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerPort      string `yaml:"server_port"`
	CSVPath         string `yaml:"csv_path"`
	CSVEscapeQuotes bool   `yaml:"csv_escape_quotes"`
	EnableEvents    bool   `yaml:"enable_events"`
	EnableSwagger   bool   `yaml:"enable_swagger"`
	DatabaseDSN     string `yaml:"database_dsn"`
	MaxBodyBytes    int64  `yaml:"max_body_bytes"`
}

func Default() *Config {
	return &Config{
		ServerPort:   "5000",
		CSVPath:      "quiz_data.csv",
		MaxBodyBytes: 100 << 10,
	}
}

// Load builds the config from defaults, then the optional CONFIG_FILE, then
// environment variables.
func Load() *Config {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.MergeFile(path); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.CSVPath = getEnv("QUIZ_CSV_PATH", cfg.CSVPath)
	cfg.CSVEscapeQuotes = getEnvBool("CSV_ESCAPE_QUOTES", cfg.CSVEscapeQuotes)
	cfg.EnableEvents = getEnvBool("ENABLE_EVENTS", cfg.EnableEvents)
	cfg.EnableSwagger = getEnvBool("ENABLE_SWAGGER", cfg.EnableSwagger)
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", cfg.DatabaseDSN)
	cfg.MaxBodyBytes = getEnvInt64("MAX_BODY_BYTES", cfg.MaxBodyBytes)
	return cfg
}

// MergeFile overlays the keys present in a YAML file onto cfg.
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, val, err)
		return fallback
	}
	return parsed
}

func getEnvInt64(key string, fallback int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil || parsed <= 0 {
		log.Printf("config: ignoring %s=%q: must be a positive integer", key, val)
		return fallback
	}
	return parsed
}
