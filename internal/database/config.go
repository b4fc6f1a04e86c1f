package database

import (
	"fmt"
	"strings"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLite-specific configuration
	Path string
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// sqlitePragmas are appended to every SQLite DSN unless the path sets them.
// Foreign keys make the order cascades apply; the busy timeout and immediate
// transactions let concurrent writers queue instead of failing with
// "database is locked".
var sqlitePragmas = []struct{ key, value string }{
	{"_foreign_keys", "on"},
	{"_busy_timeout", "5000"},
	{"_txlock", "immediate"},
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case "sqlite", "":
		dsn := c.Path
		for _, p := range sqlitePragmas {
			if strings.Contains(dsn, p.key+"=") {
				continue
			}
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + p.key + "=" + p.value
		}
		return dsn
	default:
		return ""
	}
}
