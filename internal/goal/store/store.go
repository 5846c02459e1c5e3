package store

import (
	"context"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/goal"
	"github.com/MrJamesThe3rd/stash/internal/persist"
)

// Store backs the goal ledger with two persisted documents: the chain itself
// and the append-only deposit log.
type Store struct {
	goals    *persist.Collection[goal.Goal]
	deposits *persist.Collection[goal.Deposit]
}

func New(p persist.Store) *Store {
	return &Store{
		goals:    persist.NewCollection[goal.Goal](p, "goals"),
		deposits: persist.NewCollection[goal.Deposit](p, "goalDeposits"),
	}
}

func (s *Store) LoadGoals(ctx context.Context, key account.Key) ([]goal.Goal, error) {
	return s.goals.Load(ctx, key)
}

func (s *Store) SaveGoals(ctx context.Context, key account.Key, goals []goal.Goal) error {
	return s.goals.Save(ctx, key, goals)
}

func (s *Store) LoadDeposits(ctx context.Context, key account.Key) ([]goal.Deposit, error) {
	return s.deposits.Load(ctx, key)
}

func (s *Store) SaveDeposits(ctx context.Context, key account.Key, deposits []goal.Deposit) error {
	return s.deposits.Save(ctx, key, deposits)
}
