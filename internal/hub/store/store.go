package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/hub"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS inbox_deposits (
	id         UUID PRIMARY KEY,
	letter     TEXT NOT NULL,
	code       TEXT NOT NULL,
	amount_cad NUMERIC(20, 8) NOT NULL,
	amount_usd NUMERIC(20, 8) NOT NULL,
	note       TEXT NOT NULL DEFAULT '',
	date       TEXT NOT NULL DEFAULT '',
	source     TEXT NOT NULL DEFAULT '',
	pushed_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS inbox_deposits_account_idx ON inbox_deposits (letter, code, pushed_at);

CREATE TABLE IF NOT EXISTS snapshots (
	letter     TEXT NOT NULL,
	code       TEXT NOT NULL,
	slot       TEXT NOT NULL,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (letter, code, slot)
);

CREATE TABLE IF NOT EXISTS ledger_docs (
	ledger     TEXT NOT NULL,
	letter     TEXT NOT NULL,
	code       TEXT NOT NULL,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (ledger, letter, code)
);

CREATE TABLE IF NOT EXISTS routes (
	letter   TEXT NOT NULL,
	code     TEXT NOT NULL,
	label    TEXT NOT NULL DEFAULT '',
	is_admin BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (letter, code)
);
`

// Init applies the schema. Safe to run on every start.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	return nil
}

const (
	slotAccountSync = "account_sync"
	slotApp         = "app"
	slotWebsite     = "website"
)

func (s *Store) EnqueueDeposit(ctx context.Context, key account.Key, d hub.InboxDeposit) error {
	query := `
		INSERT INTO inbox_deposits (id, letter, code, amount_cad, amount_usd, note, date, source, pushed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.ExecContext(ctx, query,
		d.ID, key.Letter, key.Code, d.AmountCAD, d.AmountUSD, d.Note, d.Date, d.Source, d.PushedAt,
	)
	if err != nil {
		return fmt.Errorf("enqueueing deposit: %w", err)
	}

	return nil
}

// DrainDeposits deletes the account's queued deposits and returns them in push
// order. The delete and the read are one statement, so a crashed caller can
// never observe the same deposit twice.
func (s *Store) DrainDeposits(ctx context.Context, key account.Key) ([]hub.InboxDeposit, error) {
	query := `
		DELETE FROM inbox_deposits
		WHERE letter = $1 AND code = $2
		RETURNING id, amount_cad, amount_usd, note, date, source, pushed_at
	`

	rows, err := s.db.QueryContext(ctx, query, key.Letter, key.Code)
	if err != nil {
		return nil, fmt.Errorf("draining deposits: %w", err)
	}
	defer rows.Close()

	var deposits []hub.InboxDeposit

	for rows.Next() {
		var d hub.InboxDeposit

		if err := rows.Scan(&d.ID, &d.AmountCAD, &d.AmountUSD, &d.Note, &d.Date, &d.Source, &d.PushedAt); err != nil {
			return nil, fmt.Errorf("scanning deposit: %w", err)
		}

		deposits = append(deposits, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("draining deposits: %w", err)
	}

	// DELETE ... RETURNING has no ORDER BY; restore push order here.
	sort.Slice(deposits, func(i, j int) bool { return deposits[i].PushedAt.Before(deposits[j].PushedAt) })

	return deposits, nil
}

func (s *Store) saveSnapshot(ctx context.Context, key account.Key, slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s snapshot: %w", slot, err)
	}

	query := `
		INSERT INTO snapshots (letter, code, slot, data, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (letter, code, slot)
		DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, key.Letter, key.Code, slot, data); err != nil {
		return fmt.Errorf("saving %s snapshot: %w", slot, err)
	}

	return nil
}

func (s *Store) loadSnapshot(ctx context.Context, key account.Key, slot string, out any) (bool, error) {
	query := `SELECT data FROM snapshots WHERE letter = $1 AND code = $2 AND slot = $3`

	var data []byte

	err := s.db.QueryRowContext(ctx, query, key.Letter, key.Code, slot).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}

		return false, fmt.Errorf("loading %s snapshot: %w", slot, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decoding %s snapshot: %w", slot, err)
	}

	return true, nil
}

func (s *Store) SaveAccountSync(ctx context.Context, key account.Key, snap hub.AccountSync) error {
	return s.saveSnapshot(ctx, key, slotAccountSync, snap)
}

func (s *Store) LatestAccountSync(ctx context.Context, key account.Key) (*hub.AccountSync, error) {
	var snap hub.AccountSync

	ok, err := s.loadSnapshot(ctx, key, slotAccountSync, &snap)
	if err != nil || !ok {
		return nil, err
	}

	return &snap, nil
}

func (s *Store) SaveAppSnapshot(ctx context.Context, key account.Key, snap hub.AppSnapshot) error {
	return s.saveSnapshot(ctx, key, slotApp, snap)
}

func (s *Store) LatestAppSnapshot(ctx context.Context, key account.Key) (*hub.AppSnapshot, error) {
	var snap hub.AppSnapshot

	ok, err := s.loadSnapshot(ctx, key, slotApp, &snap)
	if err != nil || !ok {
		return nil, err
	}

	return &snap, nil
}

func (s *Store) SaveWebsiteSnapshot(ctx context.Context, key account.Key, snap hub.WebsiteSnapshot) error {
	return s.saveSnapshot(ctx, key, slotWebsite, snap)
}

func (s *Store) LatestWebsiteSnapshot(ctx context.Context, key account.Key) (*hub.WebsiteSnapshot, error) {
	var snap hub.WebsiteSnapshot

	ok, err := s.loadSnapshot(ctx, key, slotWebsite, &snap)
	if err != nil || !ok {
		return nil, err
	}

	return &snap, nil
}

func (s *Store) GetLedger(ctx context.Context, key account.Key, ledger string) ([]byte, bool, error) {
	query := `SELECT data FROM ledger_docs WHERE ledger = $1 AND letter = $2 AND code = $3`

	var data []byte

	err := s.db.QueryRowContext(ctx, query, ledger, key.Letter, key.Code).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("getting ledger %s: %w", ledger, err)
	}

	return data, true, nil
}

func (s *Store) PutLedger(ctx context.Context, key account.Key, ledger string, data []byte) error {
	query := `
		INSERT INTO ledger_docs (ledger, letter, code, data, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (ledger, letter, code)
		DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, ledger, key.Letter, key.Code, data); err != nil {
		return fmt.Errorf("putting ledger %s: %w", ledger, err)
	}

	return nil
}

func (s *Store) Routes(ctx context.Context) ([]account.Route, error) {
	query := `SELECT letter, code, label, is_admin FROM routes ORDER BY letter, code`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing routes: %w", err)
	}
	defer rows.Close()

	var routes []account.Route

	for rows.Next() {
		var r account.Route

		if err := rows.Scan(&r.Letter, &r.Code, &r.Label, &r.IsAdmin); err != nil {
			return nil, fmt.Errorf("scanning route: %w", err)
		}

		routes = append(routes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing routes: %w", err)
	}

	return routes, nil
}

func (s *Store) FindRoute(ctx context.Context, key account.Key) (*account.Route, error) {
	query := `SELECT letter, code, label, is_admin FROM routes WHERE letter = $1 AND code = $2`

	var r account.Route

	err := s.db.QueryRowContext(ctx, query, key.Letter, key.Code).Scan(&r.Letter, &r.Code, &r.Label, &r.IsAdmin)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, hub.ErrNotFound
		}

		return nil, fmt.Errorf("finding route: %w", err)
	}

	return &r, nil
}

func (s *Store) AddRoute(ctx context.Context, route account.Route) error {
	query := `
		INSERT INTO routes (letter, code, label, is_admin)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (letter, code)
		DO UPDATE SET label = EXCLUDED.label, is_admin = EXCLUDED.is_admin
	`

	if _, err := s.db.ExecContext(ctx, query, route.Letter, route.Code, route.Label, route.IsAdmin); err != nil {
		return fmt.Errorf("adding route: %w", err)
	}

	return nil
}

func (s *Store) RemoveRoute(ctx context.Context, key account.Key) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM routes WHERE letter = $1 AND code = $2`, key.Letter, key.Code)
	if err != nil {
		return fmt.Errorf("removing route: %w", err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return hub.ErrNotFound
	}

	return nil
}
