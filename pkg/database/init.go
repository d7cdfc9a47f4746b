package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Alijeyrad/datalux_backend/config"
)

// InitializeDatabase creates the configured application database if it does
// not exist, connecting through the server's maintenance 'postgres' database.
func InitializeDatabase(cfg config.DatabaseConfig) error {
	if cfg.URL != "" {
		return fmt.Errorf("database init needs discrete host settings; database.url is set")
	}
	if cfg.DBName == "" {
		return fmt.Errorf("no database name provided")
	}

	maintenance := FromCentralConfig(cfg)
	maintenance.DBName = "postgres"

	conn, err := Open(maintenance)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}
	defer conn.Close()

	if err := createDatabaseIfNotExists(conn, cfg.DBName); err != nil {
		return fmt.Errorf("failed to create database %q: %w", cfg.DBName, err)
	}
	return nil
}

func createDatabaseIfNotExists(conn *sql.DB, dbName string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`
	if err := conn.QueryRowContext(ctx, query, dbName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := conn.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(dbName)); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	return nil
}
