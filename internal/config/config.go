package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env          string         // Env is the current environment: local, development, production.
	HTTPPort     string         // HTTPPort is the port the API server listens on.
	QueryTimeout time.Duration  // QueryTimeout bounds every storage call issued by the services.
	Postgres     PostgresConfig // Postgres holds the database configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Dbname   string // Dbname is the name of the database.
}

// MustLoad loads the configuration from the environment and returns a Config struct.
// A .env file in the working directory is honored when present. The function panics
// if a required database setting is missing or the query timeout cannot be parsed.
func MustLoad() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env file")
	}

	viper.AutomaticEnv()

	viper.SetDefault("SEATDESK_ENV", "local")
	viper.SetDefault("HTTP_PORT", "8080")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("SEATDESK_QUERY_TIMEOUT", "5s")

	timeout, err := time.ParseDuration(viper.GetString("SEATDESK_QUERY_TIMEOUT"))
	if err != nil {
		panic("failed to parse query timeout from configuration")
	}

	cfg := &Config{
		Env:          viper.GetString("SEATDESK_ENV"),
		HTTPPort:     viper.GetString("HTTP_PORT"),
		QueryTimeout: timeout,
		Postgres: PostgresConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USERNAME"),
			Password: viper.GetString("DB_PASSWORD"),
			Dbname:   viper.GetString("DB_NAME"),
		},
	}

	if cfg.Postgres.Host == "" {
		panic("DB_HOST is required but not set")
	}
	if cfg.Postgres.User == "" {
		panic("DB_USERNAME is required but not set")
	}
	if cfg.Postgres.Dbname == "" {
		panic("DB_NAME is required but not set")
	}

	return cfg
}
