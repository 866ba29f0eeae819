package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort        string
	JWTSecret       string
	JWTExpiresIn    time.Duration
	OperatorWorkers int
	RunMigrations   bool
	LogLevel        logrus.Level

	// Empty AMQPURL disables event publishing.
	AMQPURL      string
	AMQPExchange string
}

// ProcessEnvironmentVariables builds the Config from the process environment,
// after loading a .env file from the working directory when one exists.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		JWTExpiresIn:     24 * time.Hour,
		OperatorWorkers:  4,
		RunMigrations:    true,
		LogLevel:         logrus.InfoLevel,
		AMQPExchange:     "fuel.operations",
	}

	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.HTTPPort, "HTTP_PORT")
	setString(&env.JWTSecret, "JWT_SECRET")
	setString(&env.AMQPURL, "AMQP_URL")
	setString(&env.AMQPExchange, "AMQP_EXCHANGE")

	if v := os.Getenv("JWT_EXPIRES_IN"); len(v) != 0 {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
		}
		env.JWTExpiresIn = d
	}

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("OPERATOR_WORKERS: %w", err)
		}
		env.OperatorWorkers = n
	}

	if v := os.Getenv("RUN_MIGRATIONS"); len(v) != 0 {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("RUN_MIGRATIONS: %w", err)
		}
		env.RunMigrations = b
	}

	if v := os.Getenv("LOG_LEVEL"); len(v) != 0 {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		env.LogLevel = level
	}

	return &env, nil
}

// Validate reports every setting the server cannot start with. The migration
// script only needs the Postgres settings and does not call it.
func (c *Config) Validate() error {
	var errs []error
	if len(c.JWTSecret) == 0 {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTExpiresIn <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRES_IN must be positive"))
	}
	if c.OperatorWorkers < 1 {
		errs = append(errs, errors.New("OPERATOR_WORKERS must be at least 1"))
	}
	if _, err := strconv.Atoi(c.HTTPPort); err != nil {
		errs = append(errs, fmt.Errorf("HTTP_PORT: %w", err))
	}
	return errors.Join(errs...)
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*dst = v
	}
}
