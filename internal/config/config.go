// Package config loads application settings from defaults, an optional config file,
// environment variables and an optional .env file.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/txn-analyzer/internal/logging"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file in the current or parent
// directory, if one exists. Variables already set in the environment win.
// Only the first call has an effect.
func LoadEnv(logger logging.Logger) {
	if logger == nil {
		logger = logging.Nop()
	}
	envOnce.Do(func() {
		envFile, ok := findEnvFile()
		if !ok {
			logger.Debug("No .env file found, using environment variables")
			return
		}

		if err := godotenv.Load(envFile); err != nil {
			logger.WithError(err).Warn("Error loading .env file", logging.F(logging.FieldFile, envFile))
			return
		}
		logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, envFile))
	})
}

func findEnvFile() (string, bool) {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
