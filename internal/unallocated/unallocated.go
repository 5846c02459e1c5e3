// Package unallocated is the holding area for money that arrived from the
// counterpart app but has not been assigned to a goal, an expense, or a bill.
package unallocated

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deposit is one parked amount. AmountCAD is what allocation drains; AmountUSD
// rides along untouched for display.
type Deposit struct {
	ID        uuid.UUID
	AmountCAD decimal.Decimal
	AmountUSD decimal.Decimal
	Note      string
	Date      string
	Source    string
	PushedAt  time.Time
}
