package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is one link in the ordered savings chain. OrderIndex 0 is filled first
// by the waterfall; indices stay contiguous across removals.
type Goal struct {
	ID            uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	OrderIndex    int
	SideGoals     []SideGoal
}

// SideGoal hangs off a single parent Goal and is funded only by direct
// allocation, never by the waterfall. SubGoals nests one level further; sub
// goals always carry an empty subtree.
type SideGoal struct {
	ID            uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	SubGoals      []SideGoal
}

// Deposit is the append-only audit record written for every allocation that
// raises a goal or side-goal balance.
type Deposit struct {
	ID         uuid.UUID
	GoalID     uuid.UUID
	GoalTitle  string
	Amount     decimal.Decimal
	Date       time.Time
	IsSideGoal bool
}

// Summary is the per-goal digest published to the counterpart app.
type Summary struct {
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
}

// Capacity is how much the goal can still absorb.
func (g Goal) Capacity() decimal.Decimal {
	return g.TargetAmount.Sub(g.CurrentAmount)
}

func (s SideGoal) Capacity() decimal.Decimal {
	return s.TargetAmount.Sub(s.CurrentAmount)
}
