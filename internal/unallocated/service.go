package unallocated

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/money"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("deposit not found")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=unallocated
type Repository interface {
	Load(ctx context.Context, key account.Key) ([]Deposit, error)
	Save(ctx context.Context, key account.Key, deposits []Deposit) error
}

// Service is shared between the HTTP handlers and the sync engine goroutine;
// mu keeps their load-mutate-save cycles from interleaving.
type Service struct {
	repo Repository
	mu   sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddParams carries an incoming deposit. The id is assigned here; de-dup by
// origin happens at the sync boundary, not in the queue.
type AddParams struct {
	AmountCAD decimal.Decimal
	AmountUSD decimal.Decimal
	Note      string
	Date      string
	Source    string
	PushedAt  time.Time
}

func (s *Service) List(ctx context.Context, key account.Key) ([]Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Load(ctx, key)
}

func (s *Service) Add(ctx context.Context, key account.Key, params AddParams) (*Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deposits, err := s.repo.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	d := Deposit{
		ID:        uuid.New(),
		AmountCAD: money.NonNegative(params.AmountCAD),
		AmountUSD: money.NonNegative(params.AmountUSD),
		Note:      params.Note,
		Date:      params.Date,
		Source:    params.Source,
		PushedAt:  params.PushedAt,
	}

	if err := s.repo.Save(ctx, key, append(deposits, d)); err != nil {
		return nil, err
	}

	return &d, nil
}

// Remove dismisses a deposit outright. The money stops being tracked.
func (s *Service) Remove(ctx context.Context, key account.Key, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deposits, err := s.repo.Load(ctx, key)
	if err != nil {
		return err
	}

	kept := deposits[:0]
	found := false

	for _, d := range deposits {
		if d.ID == id {
			found = true
			continue
		}

		kept = append(kept, d)
	}

	if !found {
		return ErrNotFound
	}

	return s.repo.Save(ctx, key, kept)
}

// Allocate drains amount from a deposit's CAD balance. When the remainder
// falls to the epsilon or below, the deposit is removed rather than left as a
// zero-cent ghost. What the money was allocated to is the caller's business.
func (s *Service) Allocate(ctx context.Context, key account.Key, id uuid.UUID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deposits, err := s.repo.Load(ctx, key)
	if err != nil {
		return err
	}

	i := -1

	for j := range deposits {
		if deposits[j].ID == id {
			i = j
			break
		}
	}

	if i < 0 {
		return ErrNotFound
	}

	// A zero allocation never changes anything, even for a deposit already
	// sitting at the removal threshold.
	if amount.IsZero() {
		return nil
	}

	remaining := deposits[i].AmountCAD.Sub(amount)
	if remaining.LessThanOrEqual(money.Epsilon) {
		deposits = append(deposits[:i], deposits[i+1:]...)
	} else {
		deposits[i].AmountCAD = remaining
	}

	return s.repo.Save(ctx, key, deposits)
}

// Total sums the held CAD balances. Always recomputed from the store.
func (s *Service) Total(ctx context.Context, key account.Key) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deposits, err := s.repo.Load(ctx, key)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, d := range deposits {
		total = total.Add(d.AmountCAD)
	}

	return total, nil
}
