package hub

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/money"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrSelfRemoval  = errors.New("cannot remove own route")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=hub
type Repository interface {
	EnqueueDeposit(ctx context.Context, key account.Key, d InboxDeposit) error
	DrainDeposits(ctx context.Context, key account.Key) ([]InboxDeposit, error)

	SaveAccountSync(ctx context.Context, key account.Key, s AccountSync) error
	LatestAccountSync(ctx context.Context, key account.Key) (*AccountSync, error)
	SaveAppSnapshot(ctx context.Context, key account.Key, s AppSnapshot) error
	LatestAppSnapshot(ctx context.Context, key account.Key) (*AppSnapshot, error)
	SaveWebsiteSnapshot(ctx context.Context, key account.Key, s WebsiteSnapshot) error
	LatestWebsiteSnapshot(ctx context.Context, key account.Key) (*WebsiteSnapshot, error)

	GetLedger(ctx context.Context, key account.Key, ledger string) ([]byte, bool, error)
	PutLedger(ctx context.Context, key account.Key, ledger string, data []byte) error

	Routes(ctx context.Context) ([]account.Route, error)
	FindRoute(ctx context.Context, key account.Key) (*account.Route, error)
	AddRoute(ctx context.Context, route account.Route) error
	RemoveRoute(ctx context.Context, key account.Key) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Push handles one inbox POST after its note has been decoded into a variant.
func (s *Service) Push(ctx context.Context, req PushRequest) (*PushResult, error) {
	key, err := account.ParseKey(req.Letter, req.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, ErrInvalidInput)
	}

	// Account balances may ride along on any push that carries them.
	if req.AccountSync != nil {
		if err := s.repo.SaveAccountSync(ctx, key, *req.AccountSync); err != nil {
			return nil, err
		}
	}

	switch req.Kind() {
	case KindPing:
		return &PushResult{}, nil

	case KindWebsiteSnapshot:
		if req.WebsiteData == nil {
			return nil, fmt.Errorf("website sync without websiteData: %w", ErrInvalidInput)
		}

		return &PushResult{}, s.repo.SaveWebsiteSnapshot(ctx, key, *req.WebsiteData)

	case KindFullSync:
		if req.AppData != nil {
			if err := s.repo.SaveAppSnapshot(ctx, key, *req.AppData); err != nil {
				return nil, err
			}
		}

		website, err := s.repo.LatestWebsiteSnapshot(ctx, key)
		if err != nil {
			return nil, err
		}

		return &PushResult{Website: website}, nil

	default:
		if !req.AmountCAD.IsPositive() && !req.AmountUSD.IsPositive() {
			return nil, fmt.Errorf("deposit needs a positive amount: %w", ErrInvalidInput)
		}

		d := InboxDeposit{
			ID:        uuid.New(),
			AmountCAD: money.NonNegative(req.AmountCAD),
			AmountUSD: money.NonNegative(req.AmountUSD),
			Note:      req.Note,
			Date:      req.Date,
			Source:    req.Source,
			PushedAt:  time.Now().UTC(),
		}

		if err := s.repo.EnqueueDeposit(ctx, key, d); err != nil {
			return nil, err
		}

		return &PushResult{Queued: true}, nil
	}
}

// Drain performs the destructive inbox read: queued deposits are deleted as
// they are returned. Snapshot reads are repeatable.
func (s *Service) Drain(ctx context.Context, key account.Key) (*DrainResponse, error) {
	deposits, err := s.repo.DrainDeposits(ctx, key)
	if err != nil {
		return nil, err
	}

	accountSync, err := s.repo.LatestAccountSync(ctx, key)
	if err != nil {
		return nil, err
	}

	appData, err := s.repo.LatestAppSnapshot(ctx, key)
	if err != nil {
		return nil, err
	}

	return &DrainResponse{
		Deposits:    deposits,
		Count:       len(deposits),
		AccountSync: accountSync,
		AppData:     appData,
	}, nil
}

func (s *Service) GetLedger(ctx context.Context, key account.Key, ledger string) ([]byte, bool, error) {
	return s.repo.GetLedger(ctx, key, ledger)
}

func (s *Service) PutLedger(ctx context.Context, key account.Key, ledger string, data []byte) error {
	return s.repo.PutLedger(ctx, key, ledger, data)
}

// Authenticate resolves a credential pair to its route.
func (s *Service) Authenticate(ctx context.Context, letter, code string) (*account.Route, error) {
	key, err := account.ParseKey(letter, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, ErrInvalidInput)
	}

	route, err := s.repo.FindRoute(ctx, key)
	if err != nil {
		return nil, err
	}

	return route, nil
}

func (s *Service) Routes(ctx context.Context) ([]account.Route, error) {
	return s.repo.Routes(ctx)
}

func (s *Service) AddRoute(ctx context.Context, route account.Route) error {
	if _, err := account.ParseKey(route.Letter, route.Code); err != nil {
		return fmt.Errorf("%w: %w", err, ErrInvalidInput)
	}

	return s.repo.AddRoute(ctx, route)
}

// RemoveRoute deletes a credential pair. The acting admin cannot delete the
// route it is signed in with.
func (s *Service) RemoveRoute(ctx context.Context, actor, target account.Key) error {
	if actor == target {
		return ErrSelfRemoval
	}

	return s.repo.RemoveRoute(ctx, target)
}
