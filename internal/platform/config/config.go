package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the composition roots need. Values come from the
// environment, optionally seeded from a .env file for local runs.
type Config struct {
	AppEnv string
	Port   string

	DBDriver    string // "sqlite" or "postgres"
	DBPath      string // sqlite file path
	DatabaseURL string // postgres DSN

	DistanceBackend string // "local" or "remote"
	DelegateURL     string
	DelegatePort    string

	ViaCEPBaseURL     string
	NominatimBaseURL  string
	GeocoderUserAgent string
}

// Load reads the environment. A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBPath:      getEnv("DB_PATH", "data/cep-distance.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		DistanceBackend: getEnv("DISTANCE_BACKEND", "local"),
		DelegateURL:     getEnv("DELEGATE_URL", "http://127.0.0.1:8081"),
		DelegatePort:    getEnv("DELEGATE_PORT", "8081"),

		ViaCEPBaseURL:     os.Getenv("VIACEP_BASE_URL"),
		NominatimBaseURL:  os.Getenv("NOMINATIM_BASE_URL"),
		GeocoderUserAgent: os.Getenv("GEOCODER_USER_AGENT"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
