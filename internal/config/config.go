package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", EnvDevelopment)))
}

// SetLogLevel sets the level of the configuration loader logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// Application modes read from APP_ENV
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// LevelForEnvironment maps APP_ENV to a logrus level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case EnvDevelopment:
		return logrus.DebugLevel
	case EnvProduction:
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBPath     string `json:"db_path"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_sslmode"`

	// Logging configuration, empty means the APP_ENV default
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret          string   `json:"jwt_secret"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`

	// Sale events, disabled when KafkaBroker is empty
	KafkaBroker     string `json:"kafka_broker"`
	KafkaSalesTopic string `json:"kafka_sales_topic"`

	// Receipt QR codes point at this base URL
	ReceiptBaseURL string `json:"receipt_base_url"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DBDriver: %s, DBPath: %s, DBHost: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], LogLevel: %s, JWTSecret: [REDACTED], KafkaBroker: %s, KafkaSalesTopic: %s}",
		c.Port, c.Host, c.Environment, c.DBDriver, c.DBPath, c.DBHost, c.DBName, c.DBUser, c.LogLevel, c.KafkaBroker, c.KafkaSalesTopic)
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Level is the logrus level for every application logger: LOG_LEVEL when set,
// otherwise the APP_ENV default
func (c *Config) Level() logrus.Level {
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		return level
	}
	return LevelForEnvironment(c.Environment)
}

// Database builds the connection settings for the database package
func (c *Config) Database() database.DatabaseConfig {
	return database.DatabaseConfig{
		Driver:   c.DBDriver,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSSLMode,
		Path:     c.DBPath,
	}
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "sqlite", "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: postgres, sqlite)", driver)
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if _, err := logrus.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	config := &Config{
		Port:               port,
		Host:               GetEnvWithDefault("APP_HOST", "localhost"),
		Environment:        GetEnvWithDefault("APP_ENV", EnvDevelopment),
		DBDriver:           driver,
		DBPath:             GetEnvWithDefault("DB_PATH", "pizza.sqlite"),
		DBHost:             GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:             GetEnvWithDefault("DB_PORT", "5432"),
		DBName:             GetEnvWithDefault("DB_NAME", "pizza"),
		DBUser:             GetEnvWithDefault("DB_USER", "pizza"),
		DBPassword:         GetEnvWithDefault("DB_PASSWORD", "password"),
		DBSSLMode:          GetEnvWithDefault("DB_SSLMODE", "disable"),
		LogLevel:           strings.ToLower(GetEnvWithDefault("LOG_LEVEL", "")),
		JWTSecret:          GetEnvWithDefault("JWT_SECRET", "secret"),
		CORSAllowedOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
		KafkaBroker:        GetEnvAsType("KAFKA_BROKER", ""),
		KafkaSalesTopic:    GetEnvWithDefault("KAFKA_SALES_TOPIC", "pizza.sales"),
		ReceiptBaseURL:     GetEnvWithDefault("RECEIPT_BASE_URL", "http://localhost:8080"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
