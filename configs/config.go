package configs

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/M-Sanjay12o52o/formulate/configs/configslog"
)

// Config holds the process-level settings read from the environment.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	AutoMigrate bool
}

// LoadEnv reads a .env file if present. Missing files are not an error;
// container environments inject variables directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env file not found, using process environment")
	}
}

// GetConfig builds a Config from the environment with defaults.
func GetConfig() Config {
	return Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "3000"),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=formulate port=5432 sslmode=disable"),
		AutoMigrate: getEnv("AUTO_MIGRATE", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
