package goal

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/money"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("goal not found")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	LoadGoals(ctx context.Context, key account.Key) ([]Goal, error)
	SaveGoals(ctx context.Context, key account.Key, goals []Goal) error
	LoadDeposits(ctx context.Context, key account.Key) ([]Deposit, error)
	SaveDeposits(ctx context.Context, key account.Key, deposits []Deposit) error
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

// Distribution reports where AddFunds put the money. Allocations only holds
// goals that received a nonzero deposit. Leftover is whatever the chain could
// not absorb; it is not banked anywhere, only reported.
type Distribution struct {
	Allocations map[uuid.UUID]decimal.Decimal
	Leftover    decimal.Decimal
}

func (s *Service) List(ctx context.Context, key account.Key) ([]Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list(ctx, key)
}

func (s *Service) list(ctx context.Context, key account.Key) ([]Goal, error) {
	goals, err := s.repo.LoadGoals(ctx, key)
	if err != nil {
		return nil, err
	}

	sort.Slice(goals, func(i, j int) bool { return goals[i].OrderIndex < goals[j].OrderIndex })

	return goals, nil
}

func (s *Service) Add(ctx context.Context, key account.Key, title string, target decimal.Decimal) (*Goal, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is blank: %w", ErrInvalidInput)
	}

	if !target.IsPositive() {
		return nil, fmt.Errorf("target must be positive: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.LoadGoals(ctx, key)
	if err != nil {
		return nil, err
	}

	next := 0
	for _, g := range goals {
		if g.OrderIndex >= next {
			next = g.OrderIndex + 1
		}
	}

	g := Goal{
		ID:            uuid.New(),
		Title:         title,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		OrderIndex:    next,
	}

	goals = append(goals, g)
	if err := s.repo.SaveGoals(ctx, key, goals); err != nil {
		return nil, err
	}

	return &g, nil
}

// Remove deletes a goal along with its side goals, then reassigns contiguous
// order indices 0..n-1 preserving the relative order of the survivors.
func (s *Service) Remove(ctx context.Context, key account.Key, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.LoadGoals(ctx, key)
	if err != nil {
		return err
	}

	kept := goals[:0]
	found := false

	for _, g := range goals {
		if g.ID == id {
			found = true
			continue
		}

		kept = append(kept, g)
	}

	if !found {
		return ErrNotFound
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].OrderIndex < kept[j].OrderIndex })
	for i := range kept {
		kept[i].OrderIndex = i
	}

	return s.repo.SaveGoals(ctx, key, kept)
}

// Reorder commits a full permutation of the chain. Partial lists are rejected.
func (s *Service) Reorder(ctx context.Context, key account.Key, orderedIDs []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.LoadGoals(ctx, key)
	if err != nil {
		return err
	}

	if len(orderedIDs) != len(goals) {
		return fmt.Errorf("reorder must list every goal: %w", ErrInvalidInput)
	}

	position := make(map[uuid.UUID]int, len(orderedIDs))
	for i, id := range orderedIDs {
		if _, dup := position[id]; dup {
			return fmt.Errorf("duplicate goal id in reorder: %w", ErrInvalidInput)
		}

		position[id] = i
	}

	for i := range goals {
		pos, ok := position[goals[i].ID]
		if !ok {
			return fmt.Errorf("reorder is not a permutation of the chain: %w", ErrInvalidInput)
		}

		goals[i].OrderIndex = pos
	}

	return s.repo.SaveGoals(ctx, key, goals)
}

// AddFunds runs the waterfall: goals are walked ascending by OrderIndex and
// each absorbs min(remaining, capacity) until the amount is exhausted. Money
// left over once the whole chain is full is dropped; see Distribution.Leftover.
func (s *Service) AddFunds(ctx context.Context, key account.Key, amount decimal.Decimal) (*Distribution, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.LoadGoals(ctx, key)
	if err != nil {
		return nil, err
	}

	sort.Slice(goals, func(i, j int) bool { return goals[i].OrderIndex < goals[j].OrderIndex })

	dist := &Distribution{Allocations: make(map[uuid.UUID]decimal.Decimal)}
	remaining := amount

	var audit []Deposit

	for i := range goals {
		if remaining.IsZero() {
			break
		}

		dep := money.Min(remaining, goals[i].Capacity())
		if !dep.IsPositive() {
			continue
		}

		goals[i].CurrentAmount = goals[i].CurrentAmount.Add(dep)
		remaining = remaining.Sub(dep)
		dist.Allocations[goals[i].ID] = dep
		audit = append(audit, Deposit{
			ID:        uuid.New(),
			GoalID:    goals[i].ID,
			GoalTitle: goals[i].Title,
			Amount:    dep,
			Date:      time.Now().UTC(),
		})
	}

	dist.Leftover = remaining

	if err := s.repo.SaveGoals(ctx, key, goals); err != nil {
		return nil, err
	}

	if err := s.appendDeposits(ctx, key, audit); err != nil {
		return nil, err
	}

	return dist, nil
}

// AddFundsToGoal deposits min(amount, capacity) into a single goal, bypassing
// the waterfall. An unknown id is a no-op, not an error.
func (s *Service) AddFundsToGoal(ctx context.Context, key account.Key, id uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.LoadGoals(ctx, key)
	if err != nil {
		return err
	}

	i := indexOf(goals, id)
	if i < 0 {
		return nil
	}

	dep := money.Min(amount, goals[i].Capacity())
	if !dep.IsPositive() {
		return nil
	}

	goals[i].CurrentAmount = goals[i].CurrentAmount.Add(dep)

	if err := s.repo.SaveGoals(ctx, key, goals); err != nil {
		return err
	}

	return s.appendDeposits(ctx, key, []Deposit{{
		ID:        uuid.New(),
		GoalID:    goals[i].ID,
		GoalTitle: goals[i].Title,
		Amount:    dep,
		Date:      time.Now().UTC(),
	}})
}

func (s *Service) AddSideGoal(ctx context.Context, key account.Key, parentID uuid.UUID, title string, target decimal.Decimal) (*SideGoal, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is blank: %w", ErrInvalidInput)
	}

	if !target.IsPositive() {
		return nil, fmt.Errorf("target must be positive: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.LoadGoals(ctx, key)
	if err != nil {
		return nil, err
	}

	i := indexOf(goals, parentID)
	if i < 0 {
		return nil, ErrNotFound
	}

	sg := SideGoal{
		ID:            uuid.New(),
		Title:         title,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
	}

	goals[i].SideGoals = append(goals[i].SideGoals, sg)

	if err := s.repo.SaveGoals(ctx, key, goals); err != nil {
		return nil, err
	}

	return &sg, nil
}

// AddSubSideGoal appends a leaf one level below an existing side goal. The
// product never nests deeper than this.
func (s *Service) AddSubSideGoal(ctx context.Context, key account.Key, parentID, sideID uuid.UUID, title string, target decimal.Decimal) (*SideGoal, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is blank: %w", ErrInvalidInput)
	}

	if !target.IsPositive() {
		return nil, fmt.Errorf("target must be positive: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.LoadGoals(ctx, key)
	if err != nil {
		return nil, err
	}

	i := indexOf(goals, parentID)
	if i < 0 {
		return nil, ErrNotFound
	}

	var parent *SideGoal

	for j := range goals[i].SideGoals {
		if goals[i].SideGoals[j].ID == sideID {
			parent = &goals[i].SideGoals[j]
			break
		}
	}

	if parent == nil {
		return nil, ErrNotFound
	}

	sub := SideGoal{
		ID:            uuid.New(),
		Title:         title,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
	}

	parent.SubGoals = append(parent.SubGoals, sub)

	if err := s.repo.SaveGoals(ctx, key, goals); err != nil {
		return nil, err
	}

	return &sub, nil
}

// RemoveSideGoal drops a side goal and its entire SubGoals subtree.
func (s *Service) RemoveSideGoal(ctx context.Context, key account.Key, parentID, sideID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.LoadGoals(ctx, key)
	if err != nil {
		return err
	}

	i := indexOf(goals, parentID)
	if i < 0 {
		return ErrNotFound
	}

	kept := goals[i].SideGoals[:0]
	found := false

	for _, sg := range goals[i].SideGoals {
		if sg.ID == sideID {
			found = true
			continue
		}

		kept = append(kept, sg)
	}

	if !found {
		return ErrNotFound
	}

	goals[i].SideGoals = kept

	return s.repo.SaveGoals(ctx, key, goals)
}

// AddFundsToSideGoal deposits min(amount, capacity) into the addressed side
// goal. The id may name either a side goal or one of its sub goals.
func (s *Service) AddFundsToSideGoal(ctx context.Context, key account.Key, parentID, sideID uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.repo.LoadGoals(ctx, key)
	if err != nil {
		return err
	}

	i := indexOf(goals, parentID)
	if i < 0 {
		return ErrNotFound
	}

	target := findSideGoal(goals[i].SideGoals, sideID)
	if target == nil {
		return ErrNotFound
	}

	dep := money.Min(amount, target.Capacity())
	if !dep.IsPositive() {
		return nil
	}

	target.CurrentAmount = target.CurrentAmount.Add(dep)

	if err := s.repo.SaveGoals(ctx, key, goals); err != nil {
		return err
	}

	return s.appendDeposits(ctx, key, []Deposit{{
		ID:         uuid.New(),
		GoalID:     target.ID,
		GoalTitle:  target.Title,
		Amount:     dep,
		Date:       time.Now().UTC(),
		IsSideGoal: true,
	}})
}

// Deposits returns the audit log, oldest first.
func (s *Service) Deposits(ctx context.Context, key account.Key) ([]Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.LoadDeposits(ctx, key)
}

// Summaries digests the chain, in waterfall order, for the outbound snapshot.
func (s *Service) Summaries(ctx context.Context, key account.Key) ([]Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goals, err := s.list(ctx, key)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, len(goals))
	for i, g := range goals {
		summaries[i] = Summary{
			Title:         g.Title,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
		}
	}

	return summaries, nil
}

func (s *Service) appendDeposits(ctx context.Context, key account.Key, audit []Deposit) error {
	if len(audit) == 0 {
		return nil
	}

	deposits, err := s.repo.LoadDeposits(ctx, key)
	if err != nil {
		return err
	}

	return s.repo.SaveDeposits(ctx, key, append(deposits, audit...))
}

func indexOf(goals []Goal, id uuid.UUID) int {
	for i := range goals {
		if goals[i].ID == id {
			return i
		}
	}

	return -1
}

// findSideGoal searches the side goals and their sub goals, two levels total.
func findSideGoal(sideGoals []SideGoal, id uuid.UUID) *SideGoal {
	for i := range sideGoals {
		if sideGoals[i].ID == id {
			return &sideGoals[i]
		}

		for j := range sideGoals[i].SubGoals {
			if sideGoals[i].SubGoals[j].ID == id {
				return &sideGoals[i].SubGoals[j]
			}
		}
	}

	return nil
}
