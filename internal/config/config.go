package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverJSONFile = "jsonfile"
	DriverPostgres = "postgres"
)

type Config struct {
	Port          string
	StorageDriver string // DriverJSONFile or DriverPostgres
	DataDir       string // jsonfile driver only
	DatabaseURL   string // postgres driver only
	CORSOrigins   []string
}

// Load reads configuration from the environment, with a .env file layered
// in for local development.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		StorageDriver: getenv("STORAGE_DRIVER", DriverJSONFile),
		DataDir:       getenv("DATA_DIR", "./data"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}
	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
