package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config stores the application configuration. It is built once at startup and
// passed to constructors; request handlers never read the environment directly.
type Config struct {
	Port     string // HTTP listen port
	AudioDir string // Root directory containing the audio library

	LogLevel string
	LogPath  string // Empty disables file logging (console only)

	WatchLibrary bool // Log audio files appearing/disappearing under AudioDir
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool gets an environment variable as bool or returns a default value.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override variables already set in the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on existing environment variables and defaults.")
	}

	return &Config{
		Port:         getEnv("PORT", "9339"),
		AudioDir:     getEnv("AUDIO_DIR", "./audio"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogPath:      getEnv("LOG_PATH", ""),
		WatchLibrary: getEnvBool("WATCH_LIBRARY", false),
	}
}
