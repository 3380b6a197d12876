package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Redis, cache and rate-limit settings have their
// own loaders in this package; Config covers the HTTP server, the database
// and the directory's own knobs.
type Config struct {
	Env               string // application environment (e.g. "dev", "prod")
	Port              string // HTTP port to listen on
	DBUser            string // database username
	DBPass            string // database password (optional)
	DBHost            string // database host address
	DBPort            string // database port number
	DBName            string // database name
	TerritoryGroupKey string // venue grouping key: "city" (legacy) or "city_state"
	AMQPURL           string // RabbitMQ URL for show events (optional)
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	cfg := Config{
		Env:               must("APP_ENV"),      // environment (dev/test/prod)
		Port:              must("APP_PORT"),     // port to bind the HTTP server
		DBUser:            must("DB_USER"),      // database user
		DBPass:            os.Getenv("DB_PASS"), // database password (empty allowed)
		DBHost:            must("DB_HOST"),      // database host
		DBPort:            must("DB_PORT"),      // database port
		DBName:            must("DB_NAME"),      // database name
		TerritoryGroupKey: os.Getenv("TERRITORY_GROUP_KEY"),
		AMQPURL:           os.Getenv("RABBITMQ_URL"), // empty falls back to the publisher default
	}
	// Venues have historically been grouped by city alone, which merges
	// same-named cities across states.  "city_state" opts into the full pair.
	switch cfg.TerritoryGroupKey {
	case "":
		cfg.TerritoryGroupKey = "city"
	case "city", "city_state":
	default:
		log.Fatalf("invalid TERRITORY_GROUP_KEY: %q (want city or city_state)", cfg.TerritoryGroupKey)
	}
	return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
