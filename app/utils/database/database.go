package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// Config holds database connection configuration
type Config struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	ConnTimeout     time.Duration
}

// Connection represents a database connection wrapper around database/sql,
// used by the migration runner. Application queries go through pgx.
type Connection struct {
	db     *sql.DB
	config *Config
	logger *slog.Logger
}

// NewConnection creates a new database connection
func NewConnection(config *Config, logger *slog.Logger) (*Connection, error) {
	conn := &Connection{
		config: config,
		logger: logger.With("component", "database"),
	}

	if err := conn.connect(); err != nil {
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return conn, nil
}

func (c *Connection) connect() error {
	dsn := c.buildDSN()

	c.logger.Info("Connecting to database",
		"host", c.config.Host,
		"port", c.config.Port,
		"database", c.config.Database,
		"ssl_mode", c.config.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(c.config.MaxOpenConns)
	db.SetMaxIdleConns(c.config.MaxIdleConns)
	db.SetConnMaxLifetime(c.config.ConnMaxLifetime)
	db.SetConnMaxIdleTime(c.config.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), c.config.ConnTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.db = db
	c.logger.Info("Database connection established successfully")
	return nil
}

func (c *Connection) buildDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		c.config.Host,
		c.config.Port,
		c.config.User,
		c.config.Password,
		c.config.Database,
		c.config.SSLMode,
		int(c.config.ConnTimeout.Seconds()),
	)
}

// NewConnectionFromURL opens a connection from a postgres:// URL, the
// same value the pgx pool is configured with
func NewConnectionFromURL(url string, logger *slog.Logger) (*Connection, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	defaults := DefaultConfig()
	db.SetMaxOpenConns(defaults.MaxOpenConns)
	db.SetMaxIdleConns(defaults.MaxIdleConns)
	db.SetConnMaxLifetime(defaults.ConnMaxLifetime)
	db.SetConnMaxIdleTime(defaults.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), defaults.ConnTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	conn := &Connection{
		db:     db,
		config: defaults,
		logger: logger.With("component", "database"),
	}
	conn.logger.Info("Database connection established successfully")
	return conn, nil
}

// DB returns the underlying *sql.DB instance
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the database connection
func (c *Connection) Close() error {
	if c.db != nil {
		c.logger.Info("Closing database connection")
		return c.db.Close()
	}
	return nil
}

// Health checks the database connection health
func (c *Connection) Health(ctx context.Context) error {
	if c.db == nil {
		return fmt.Errorf("database connection is nil")
	}

	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// WithTransaction executes a function within a database transaction
func (c *Connection) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DefaultConfig returns a default database configuration
func DefaultConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            5432,
		User:            "postgres",
		Password:        "password",
		Database:        "store_ratings",
		SSLMode:         "prefer",
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		ConnTimeout:     10 * time.Second,
	}
}
