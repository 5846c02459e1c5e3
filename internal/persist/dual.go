package persist

import (
	"context"
	"log/slog"

	"github.com/MrJamesThe3rd/stash/internal/account"
)

// Dual is the persistence adapter: reads come from the local store, writes go
// to the local store synchronously and to the remote store fire-and-forget.
// Remote failures are logged and swallowed so the ledgers keep working against
// the local copy.
type Dual struct {
	local  Store
	remote Store
}

func NewDual(local, remote Store) *Dual {
	return &Dual{local: local, remote: remote}
}

func (d *Dual) Load(ctx context.Context, key account.Key, ledger string) ([]byte, bool, error) {
	return d.local.Load(ctx, key, ledger)
}

func (d *Dual) Save(ctx context.Context, key account.Key, ledger string, data []byte) error {
	if err := d.local.Save(ctx, key, ledger, data); err != nil {
		return err
	}

	// The remote write outlives the request; its result is discarded either way.
	bg := context.WithoutCancel(ctx)

	go func() {
		if err := d.remote.Save(bg, key, ledger, data); err != nil {
			slog.Warn("remote ledger write failed", "ledger", ledger, "account", key.String(), "error", err)
		}
	}()

	return nil
}

// Hydrate reconciles each named ledger on cold start. Three remote states:
// unreachable keeps the local copy, a populated document overwrites it, and a
// reachable-but-empty slot is seeded with the local copy.
func (d *Dual) Hydrate(ctx context.Context, key account.Key, ledgers []string) error {
	for _, ledger := range ledgers {
		data, ok, err := d.remote.Load(ctx, key, ledger)
		if err != nil {
			slog.Warn("remote ledger unavailable, keeping local copy", "ledger", ledger, "error", err)
			continue
		}

		if ok && !isEmptyDoc(data) {
			if err := d.local.Save(ctx, key, ledger, data); err != nil {
				return err
			}

			continue
		}

		local, localOK, err := d.local.Load(ctx, key, ledger)
		if err != nil {
			return err
		}

		if !localOK || isEmptyDoc(local) {
			continue
		}

		if err := d.remote.Save(ctx, key, ledger, local); err != nil {
			slog.Warn("seeding remote ledger failed", "ledger", ledger, "error", err)
		}
	}

	return nil
}
