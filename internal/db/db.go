package db

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"messenger-service/internal/models"
)

// SeedUsernames are the fixed accounts created on first start.
var SeedUsernames = []string{"alexey", "maria", "ivan"}

// SeedPassword is the shared password of the seed accounts.
const SeedPassword = "123456"

// Connect opens the store and ensures the schema exists. Schema failures are
// fatal to the caller; seeding is not (see Seed).
func Connect(driver, dsn string) (*sqlx.DB, error) {
	if driver == "sqlite3" {
		dsn = sqliteDSN(dsn)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := EnsureSchema(db); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return db, nil
}

// sqliteDSN appends the connection options every pooled connection needs.
// SQLite's LIKE is case-insensitive for ASCII by default and the user search
// contract requires case-sensitive matching; the busy timeout queues
// concurrent writers instead of surfacing "database is locked". These must
// ride on the DSN: a PRAGMA issued through db.Exec binds to whichever single
// pool connection runs it, and fresh connections revert to the defaults.
func sqliteDSN(dsn string) string {
	const options = "_case_sensitive_like=1&_busy_timeout=5000"
	if strings.Contains(dsn, "?") {
		return dsn + "&" + options
	}
	return dsn + "?" + options
}

// EnsureSchema creates the users and messages tables if absent. Idempotent;
// safe to run on every start.
func EnsureSchema(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            username TEXT UNIQUE,
            password TEXT,
            created_at TEXT
        );`,
		`CREATE TABLE IF NOT EXISTS messages (
            id TEXT PRIMARY KEY,
            sender TEXT,
            receiver TEXT,
            text TEXT,
            timestamp TEXT
        );`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	log.Println("store schema ensured")
	return nil
}

// Seed inserts the fixed test accounts that do not exist yet. Existing rows,
// seeded or registered, are never touched, so repeated runs are idempotent.
func Seed(ctx context.Context, db *sqlx.DB) error {
	for _, username := range SeedUsernames {
		var exists bool
		query := db.Rebind(`SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`)
		if err := db.GetContext(ctx, &exists, query, username); err != nil {
			return fmt.Errorf("check seed user %s: %w", username, err)
		}
		if exists {
			continue
		}

		insert := db.Rebind(`INSERT INTO users (id, username, password, created_at) VALUES (?, ?, ?, ?)`)
		if _, err := db.ExecContext(ctx, insert, uuid.NewString(), username, SeedPassword, models.NewTimestamp()); err != nil {
			return fmt.Errorf("seed user %s: %w", username, err)
		}
		log.Printf("seeded user %s", username)
	}
	return nil
}
