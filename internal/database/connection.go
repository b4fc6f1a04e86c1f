package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel sets the level of the database logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// DefaultRetryDelays is the backoff between connection attempts, one attempt
// more than there are delays
var DefaultRetryDelays = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second}

// InitDatabase initializes the database connection based on the provided configuration
// It supports both PostgreSQL and SQLite drivers with automatic retry logic and connection pooling
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	log.WithFields(logrus.Fields{
		"db_driver": strings.ToLower(cfg.Driver),
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	return Connect(dialector, DefaultRetryDelays)
}

// Dialector selects the GORM dialector for the configured driver
func Dialector(cfg DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "postgres", "postgresql":
		log.WithField("dsn_host", cfg.Host).Debug("Using PostgreSQL")
		return postgres.Open(cfg.DSN()), nil
	case "sqlite", "":
		log.WithField("db_path", cfg.Path).Debug("Using SQLite")
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}
}

// GormConfig is shared by every connection. TranslateError turns driver
// specific unique and foreign key violations into gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

// Connect opens the dialector, retrying after each delay until a ping succeeds
func Connect(dialector gorm.Dialector, delays []time.Duration) (*gorm.DB, error) {
	maxRetries := len(delays) + 1
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":     attempt,
			"max_retries": maxRetries,
		}).Info("Attempting database connection")

		var db *gorm.DB
		db, err = gorm.Open(dialector, GormConfig())
		if err == nil {
			var sqlDB *sql.DB
			sqlDB, err = verify(db)
			if err == nil {
				log.Info("Database connection successful, configuring connection pool")
				configureConnectionPool(sqlDB)

				log.WithFields(logrus.Fields{
					"db_driver": dialector.Name(),
					"attempt":   attempt,
				}).Info("Database initialized successfully")
				return db, nil
			}
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxRetries {
			delay := delays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// verify unwraps the pool and pings it
func verify(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Failed to get database instance")
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		log.WithError(err).Error("Failed to ping database")
		return nil, err
	}
	return sqlDB, nil
}

// configureConnectionPool sets up connection pool parameters
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    25,
		"max_idle_conns":    5,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}
