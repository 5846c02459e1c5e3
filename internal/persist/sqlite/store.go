// Package sqlite is the tracker's local durable store: one SQLite file holding
// every account's ledger documents.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/MrJamesThe3rd/stash/internal/account"
)

const schema = `
CREATE TABLE IF NOT EXISTS ledgers (
	ledger     TEXT NOT NULL,
	letter     TEXT NOT NULL,
	code       TEXT NOT NULL,
	data       BLOB NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (ledger, letter, code)
);
`

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the ledger database and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Load(ctx context.Context, key account.Key, ledger string) ([]byte, bool, error) {
	query := `SELECT data FROM ledgers WHERE ledger = ? AND letter = ? AND code = ?`

	var data []byte

	err := s.db.QueryRowContext(ctx, query, ledger, key.Letter, key.Code).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("loading ledger %s: %w", ledger, err)
	}

	return data, true, nil
}

func (s *Store) Save(ctx context.Context, key account.Key, ledger string, data []byte) error {
	query := `
		INSERT INTO ledgers (ledger, letter, code, data, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (ledger, letter, code)
		DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, ledger, key.Letter, key.Code, data, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("saving ledger %s: %w", ledger, err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
