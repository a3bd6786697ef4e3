package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port            string
	SpotdlBin       string
	DownloadPath    string
	DownloadThreads int
	LogLevel        string
}

// Load reads configuration from .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	threads, err := strconv.Atoi(getEnv("DOWNLOAD_THREADS", "4"))
	if err != nil {
		threads = 4
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		SpotdlBin:       getEnv("SPOTDL_BIN", "spotdl"),
		DownloadPath:    getEnv("DOWNLOAD_PATH", defaultDownloadPath()),
		DownloadThreads: threads,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

// defaultDownloadPath is ~/Music, falling back to ./Music when the home
// directory cannot be determined.
func defaultDownloadPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Music"
	}
	return filepath.Join(home, "Music")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
