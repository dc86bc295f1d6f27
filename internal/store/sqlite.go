package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/journal"
	"github.com/tallybook-dev/tallybook/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS journal_entries (
	seq            INTEGER PRIMARY KEY AUTOINCREMENT,
	entry_id       TEXT NOT NULL UNIQUE,
	date           TEXT NOT NULL,
	description    TEXT NOT NULL,
	debit_account  TEXT NOT NULL,
	credit_account TEXT NOT NULL,
	amount         TEXT NOT NULL,
	reference      TEXT NOT NULL DEFAULT '',
	posted_at      TEXT NOT NULL DEFAULT ''
);
`

// SQLite stores the journal in a SQLite database. Amounts are stored as
// fixed-point decimal strings, never floats.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) a journal database at dbPath. WAL mode is
// enabled so readers do not block the single writer.
func OpenSQLite(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database dir: %w", err)
	}

	connStr := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", dbPath)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Append inserts one entry.
func (s *SQLite) Append(e model.Entry) error {
	postedAt := ""
	if !e.PostedAt.IsZero() {
		postedAt = e.PostedAt.UTC().Format(time.RFC3339)
	}

	_, err := s.db.Exec(`
		INSERT INTO journal_entries (entry_id, date, description, debit_account, credit_account, amount, reference, posted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Date.Format(journal.DateFormat), e.Description,
		e.DebitAccountID, e.CreditAccountID, e.Amount.StringFixed(2),
		e.Reference, postedAt)
	if err != nil {
		return fmt.Errorf("inserting entry %s: %w", e.ID, err)
	}
	return nil
}

// All returns every entry in insertion order.
func (s *SQLite) All() ([]model.Entry, error) {
	rows, err := s.db.Query(`
		SELECT entry_id, date, description, debit_account, credit_account, amount, reference, posted_at
		FROM journal_entries ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		var dateStr, amountStr, postedAtStr string
		if err := rows.Scan(&e.ID, &dateStr, &e.Description, &e.DebitAccountID,
			&e.CreditAccountID, &amountStr, &e.Reference, &postedAtStr); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		e.Date, err = time.Parse(journal.DateFormat, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing date %q: %w", dateStr, err)
		}

		e.Amount, err = decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("parsing amount %q: %w", amountStr, err)
		}

		if postedAtStr != "" {
			e.PostedAt, err = time.Parse(time.RFC3339, postedAtStr)
			if err != nil {
				return nil, fmt.Errorf("parsing posted_at %q: %w", postedAtStr, err)
			}
		}

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading journal rows: %w", err)
	}
	return entries, nil
}
