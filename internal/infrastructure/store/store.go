package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store wraps the SQLite connection shared by the repositories.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database file and prepares the connection
// pool. WAL mode keeps concurrent match reads from blocking ingestion.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(4)

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying sql.DB connection
func (s *Store) DB() *sql.DB {
	return s.db
}

// Migrate creates the schema when missing. Nested deal and profile
// structures are stored as JSON documents; the opt-out preference flags are
// flat columns so the candidate pre-filter can run in SQL.
func (s *Store) Migrate() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS buyers (
			id           TEXT PRIMARY KEY,
			full_name    TEXT NOT NULL,
			email        TEXT NOT NULL,
			company_name TEXT NOT NULL DEFAULT '',
			created_at   TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS deals (
			id                       TEXT PRIMARY KEY,
			title                    TEXT NOT NULL,
			company_description      TEXT NOT NULL DEFAULT '',
			deal_type                TEXT NOT NULL DEFAULT 'other',
			status                   TEXT NOT NULL DEFAULT 'draft',
			reward_level             TEXT NOT NULL,
			industry_sector          TEXT NOT NULL DEFAULT '',
			geography_selection      TEXT NOT NULL DEFAULT '',
			years_in_business        INTEGER NOT NULL DEFAULT 0,
			employee_count           INTEGER,
			deals_completed_last5y   INTEGER,
			seller_id                TEXT NOT NULL,
			financial_details        TEXT NOT NULL DEFAULT '{}',
			business_model           TEXT NOT NULL DEFAULT '{}',
			management_preferences   TEXT NOT NULL DEFAULT '{}',
			stake_percentage         REAL,
			tags                     TEXT NOT NULL DEFAULT '[]',
			is_public                INTEGER NOT NULL DEFAULT 0,
			created_at               TEXT NOT NULL,
			updated_at               TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_deals_seller ON deals(seller_id)`,
		`CREATE TABLE IF NOT EXISTS company_profiles (
			id                          TEXT PRIMARY KEY,
			company_name                TEXT NOT NULL,
			website                     TEXT NOT NULL DEFAULT '',
			selected_currency           TEXT NOT NULL DEFAULT 'USD',
			company_type                TEXT NOT NULL DEFAULT '',
			capital_entity              TEXT NOT NULL DEFAULT '',
			deals_completed_last5y      INTEGER,
			average_deal_size           REAL,
			stop_sending_deals          INTEGER NOT NULL DEFAULT 0,
			do_not_send_marketed_deals  INTEGER NOT NULL DEFAULT 0,
			allow_buyer_like_deals      INTEGER NOT NULL DEFAULT 1,
			target_criteria             TEXT NOT NULL DEFAULT '{}',
			buyer_id                    TEXT NOT NULL,
			created_at                  TEXT NOT NULL,
			updated_at                  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_buyer ON company_profiles(buyer_id)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_opt_out ON company_profiles(stop_sending_deals)`,
	}

	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
