package bill

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
	ErrNotFound     = errors.New("bill not found")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bill
type Repository interface {
	LoadBills(ctx context.Context, key account.Key) ([]Bill, error)
	SaveBills(ctx context.Context, key account.Key, bills []Bill) error
	LoadPayments(ctx context.Context, key account.Key) ([]Payment, error)
	SavePayments(ctx context.Context, key account.Key, payments []Payment) error
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
	Name              string
	Amount            decimal.Decimal
	DueDay            int
	Frequency         Frequency
	Category          string
	ChargeToAccountID string
}

func (s *Service) List(ctx context.Context, key account.Key) ([]Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.LoadBills(ctx, key)
}

func (s *Service) Add(ctx context.Context, key account.Key, params AddParams) (*Bill, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("name is blank: %w", ErrInvalidInput)
	}

	if !params.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", ErrInvalidInput)
	}

	if params.DueDay < 1 || params.DueDay > 31 {
		return nil, fmt.Errorf("due day must be 1-31: %w", ErrInvalidInput)
	}

	if !params.Frequency.Valid() {
		return nil, fmt.Errorf("unknown frequency %q: %w", params.Frequency, ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bills, err := s.repo.LoadBills(ctx, key)
	if err != nil {
		return nil, err
	}

	b := Bill{
		ID:                uuid.NewString(),
		Name:              params.Name,
		Amount:            params.Amount,
		DueDay:            params.DueDay,
		Frequency:         params.Frequency,
		Category:          params.Category,
		ChargeToAccountID: params.ChargeToAccountID,
	}

	if err := s.repo.SaveBills(ctx, key, append(bills, b)); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Service) Remove(ctx context.Context, key account.Key, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bills, err := s.repo.LoadBills(ctx, key)
	if err != nil {
		return err
	}

	kept := bills[:0]
	found := false

	for _, b := range bills {
		if b.ID == id {
			found = true
			continue
		}

		kept = append(kept, b)
	}

	if !found {
		return ErrNotFound
	}

	return s.repo.SaveBills(ctx, key, kept)
}

// TogglePaid flips a bill's paid flag. The false-to-true edge appends a
// Payment snapshot and stamps LastPaidDate; the true-to-false edge retracts
// nothing, so paying twice leaves two Payment records.
func (s *Service) TogglePaid(ctx context.Context, key account.Key, id string) (*Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bills, err := s.repo.LoadBills(ctx, key)
	if err != nil {
		return nil, err
	}

	i := -1

	for j := range bills {
		if bills[j].ID == id {
			i = j
			break
		}
	}

	if i < 0 {
		return nil, ErrNotFound
	}

	nowPaid := !bills[i].IsPaid
	bills[i].IsPaid = nowPaid

	if nowPaid {
		now := time.Now().UTC()
		bills[i].LastPaidDate = &now
	}

	if err := s.repo.SaveBills(ctx, key, bills); err != nil {
		return nil, err
	}

	if nowPaid {
		payments, err := s.repo.LoadPayments(ctx, key)
		if err != nil {
			return nil, err
		}

		payments = append(payments, Payment{
			ID:       uuid.New(),
			BillName: bills[i].Name,
			Amount:   bills[i].Amount,
			Date:     *bills[i].LastPaidDate,
		})

		if err := s.repo.SavePayments(ctx, key, payments); err != nil {
			return nil, err
		}
	}

	b := bills[i]

	return &b, nil
}

// Payments returns the payment audit log, oldest first.
func (s *Service) Payments(ctx context.Context, key account.Key) ([]Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.LoadPayments(ctx, key)
}

// MergeRemote upserts the counterpart app's bill list. Absent bills are
// inserted as-is; present ones take Name and Amount from the remote while
// IsPaid, LastPaidDate and the charge account stay local. Returns how many
// bills were inserted or updated.
func (s *Service) MergeRemote(ctx context.Context, key account.Key, incoming []Bill) (int, error) {
	if len(incoming) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bills, err := s.repo.LoadBills(ctx, key)
	if err != nil {
		return 0, err
	}

	index := make(map[string]int, len(bills))
	for i, b := range bills {
		index[b.ID] = i
	}

	changed := 0

	for _, in := range incoming {
		i, ok := index[in.ID]
		if !ok {
			index[in.ID] = len(bills)
			bills = append(bills, in)
			changed++

			continue
		}

		if bills[i].Name == in.Name && bills[i].Amount.Equal(in.Amount) {
			continue
		}

		bills[i].Name = in.Name
		bills[i].Amount = in.Amount
		changed++
	}

	if changed == 0 {
		return 0, nil
	}

	return changed, s.repo.SaveBills(ctx, key, bills)
}
