package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. DB_TYPE selects sqlite
// (default) or postgres; postgres reads DATABASE_URL.
func Connect() error {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	var db *sqlx.DB
	var err error

	switch dbType {
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
	default:
		dataDir := "data"
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}

		dbPath := filepath.Join(dataDir, "kanabot.db")
		db, err = sqlx.Connect("sqlite3", dbPath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %v", err)
		}

		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// IsSQLite reports whether the active connection is the sqlite backend.
func IsSQLite() bool {
	return os.Getenv("DB_TYPE") != "postgres"
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	serial := "SERIAL PRIMARY KEY"
	if IsSQLite() {
		serial = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			telegram_id BIGINT PRIMARY KEY,
			username TEXT,
			first_name TEXT,
			last_name TEXT,
			is_admin BOOLEAN DEFAULT false,
			notification_enabled BOOLEAN DEFAULT true,
			notification_hour INTEGER DEFAULT 9,
			items_per_day INTEGER DEFAULT 10,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS characters (
			id %s,
			script TEXT NOT NULL,
			glyph TEXT NOT NULL,
			romaji TEXT NOT NULL,
			meaning TEXT DEFAULT '',
			category TEXT DEFAULT '',
			difficulty INTEGER DEFAULT 1,
			examples TEXT DEFAULT '',
			tips TEXT DEFAULT '',
			mnemonic TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(script, glyph, romaji)
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS review_items (
			id %s,
			user_id BIGINT NOT NULL,
			item_id TEXT NOT NULL,
			difficulty INTEGER DEFAULT 3,
			interval INTEGER DEFAULT 1,
			repetitions INTEGER DEFAULT 0,
			ease_factor REAL DEFAULT 2.5,
			next_review_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			last_review_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			correct_count INTEGER DEFAULT 0,
			incorrect_count INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(user_id, item_id)
		)`, serial),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS study_sessions (
			id %s,
			user_id BIGINT NOT NULL,
			mode TEXT NOT NULL,
			items INTEGER DEFAULT 0,
			correct INTEGER DEFAULT 0,
			accuracy REAL DEFAULT 0,
			xp_earned INTEGER DEFAULT 0,
			duration INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, serial),
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}
	return nil
}
