package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment      string
	ServicePort      string
	MetricsPort      string
	SessionSecret    string
	TemplatesGlob    string
	MigrationsSource string
	PostgreSQLConfig PostgreSQLConfig
	TracingConfig    TracingConfig
}

type PostgreSQLConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		Environment:      getEnv("ENVIRONMENT", "development"),
		ServicePort:      getEnv("SERVICE_PORT", "8080"),
		MetricsPort:      getEnv("METRICS_PORT", "9090"),
		SessionSecret:    getEnv("SESSION_SECRET", "dev-session-secret"),
		TemplatesGlob:    getEnv("TEMPLATES_GLOB", "web/templates/*.html"),
		MigrationsSource: getEnv("MIGRATIONS_SOURCE", "file://migrations"),
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     os.Getenv("DB_HOST"),
			DBName:     os.Getenv("DB_NAME"),
			DBPort:     os.Getenv("DB_PORT"),
			DBUsername: os.Getenv("DB_USERNAME"),
			DBPassword: os.Getenv("DB_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
