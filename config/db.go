package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNoDatabase signals that no backend database is configured. Callers
// degrade to the static catalog and anonymous sessions instead of failing.
var ErrNoDatabase = errors.New("no database configured")

// HasDB reports whether any database backend is configured via env.
func HasDB() bool {
	return os.Getenv("MYSQL_DSN") != "" || os.Getenv("MYSQL_HOST") != "" || os.Getenv("SQLITE_PATH") != ""
}

// NewDB opens the configured backend database: MySQL when MYSQL_DSN or
// MYSQL_HOST is set, an embedded sqlite file when SQLITE_PATH is set,
// ErrNoDatabase otherwise.
func NewDB() (*gorm.DB, error) {
	logMode := logger.Info
	if os.Getenv("GORM_LOG") == "off" {
		logMode = logger.Silent
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // Use log.Logger for Printf support
		logger.Config{
			SlowThreshold: time.Second, // Slow SQL threshold
			LogLevel:      logMode,     // Log level
			Colorful:      true,        // Enable color
		},
	)

	cfg := &gorm.Config{Logger: gormLogger}

	if dsn := mysqlDSN(); dsn != "" {
		return gorm.Open(mysql.Open(dsn), cfg)
	}
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		return gorm.Open(sqlite.Open(path), cfg)
	}
	return nil, ErrNoDatabase
}

// MySQLDSN returns the configured MySQL DSN, or "" when MySQL is not
// configured. Used by the migration command.
func MySQLDSN() string {
	return mysqlDSN()
}

func mysqlDSN() string {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		return dsn
	}
	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		return ""
	}
	user := os.Getenv("MYSQL_USER")
	pass := os.Getenv("MYSQL_PASS")
	port := os.Getenv("MYSQL_PORT")
	db := os.Getenv("MYSQL_DB")
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local", user, pass, host, port, db)
}
