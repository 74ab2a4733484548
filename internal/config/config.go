package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Port       string
	DBFile     string
	MongoURI   string
	CORSOrigin []string
}

// Load reads .env if present and returns application config populated
// from environment variables with sensible defaults.
func Load() App {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Failed to load .env file")
	}

	return App{
		Port:       getEnv("PORT", "3000"),
		DBFile:     getEnv("DB_FILE", "data.json"),
		MongoURI:   os.Getenv("MONGO_URI"),
		CORSOrigin: []string{getEnv("CORS_ORIGIN", "http://localhost:8080"), "http://127.0.0.1:8080"},
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
