// Package config reads tool defaults from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the default file locations and logging settings. CLI flags
// take precedence over these.
type Config struct {
	WorkbookPath string
	MappingPath  string
	BaseDir      string
	LogLevel     string
	LogFormat    string
}

// Load reads configuration from environment variables, falling back to the
// conventional locations. A .env file is loaded when present but is
// optional.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		WorkbookPath: getEnv("EXAMSYNC_WORKBOOK", "2026 수능 LLM 풀이.xlsx"),
		MappingPath:  getEnv("EXAMSYNC_MAPPING", "model_mapping.json"),
		BaseDir:      getEnv("EXAMSYNC_BASE_DIR", "."),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "pretty"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
