package store

import (
	"context"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/bill"
	"github.com/MrJamesThe3rd/stash/internal/persist"
)

// Store backs the bill ledger: the bills document plus the payment audit log.
type Store struct {
	bills    *persist.Collection[bill.Bill]
	payments *persist.Collection[bill.Payment]
}

func New(p persist.Store) *Store {
	return &Store{
		bills:    persist.NewCollection[bill.Bill](p, "bills"),
		payments: persist.NewCollection[bill.Payment](p, "billPayments"),
	}
}

func (s *Store) LoadBills(ctx context.Context, key account.Key) ([]bill.Bill, error) {
	return s.bills.Load(ctx, key)
}

func (s *Store) SaveBills(ctx context.Context, key account.Key, bills []bill.Bill) error {
	return s.bills.Save(ctx, key, bills)
}

func (s *Store) LoadPayments(ctx context.Context, key account.Key) ([]bill.Payment, error) {
	return s.payments.Load(ctx, key)
}

func (s *Store) SavePayments(ctx context.Context, key account.Key, payments []bill.Payment) error {
	return s.payments.Save(ctx, key, payments)
}
