package spending

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stash/internal/account"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("entry not found")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=spending
type Repository interface {
	Load(ctx context.Context, key account.Key) ([]Entry, error)
	Save(ctx context.Context, key account.Key, entries []Entry) error
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

type AddParams struct {
	Title    string
	Amount   decimal.Decimal
	Date     time.Time
	Category string
}

func (s *Service) List(ctx context.Context, key account.Key) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Load(ctx, key)
}

func (s *Service) Add(ctx context.Context, key account.Key, params AddParams) (*Entry, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, fmt.Errorf("title is blank: %w", ErrInvalidInput)
	}

	if !params.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	e := Entry{
		ID:       uuid.NewString(),
		Title:    params.Title,
		Amount:   params.Amount,
		Date:     params.Date,
		Category: params.Category,
	}

	if err := s.repo.Save(ctx, key, append(entries, e)); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Service) Remove(ctx context.Context, key account.Key, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.Load(ctx, key)
	if err != nil {
		return err
	}

	kept := entries[:0]
	found := false

	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}

		kept = append(kept, e)
	}

	if !found {
		return ErrNotFound
	}

	return s.repo.Save(ctx, key, kept)
}

// MergeRemote folds the counterpart app's expense list in. The app is the
// single source for its own entries: anything already present by id is
// skipped, local edits to it are never reconciled back. Returns how many
// entries were appended.
func (s *Service) MergeRemote(ctx context.Context, key account.Key, incoming []Entry) (int, error) {
	if len(incoming) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.Load(ctx, key)
	if err != nil {
		return 0, err
	}

	present := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		present[e.ID] = struct{}{}
	}

	added := 0

	for _, e := range incoming {
		if _, ok := present[e.ID]; ok {
			continue
		}

		present[e.ID] = struct{}{}
		entries = append(entries, e)
		added++
	}

	if added == 0 {
		return 0, nil
	}

	return added, s.repo.Save(ctx, key, entries)
}
