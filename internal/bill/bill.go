package bill

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency is how often a bill recurs.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
	FrequencyOneTime  Frequency = "one-time"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyYearly, FrequencyOneTime:
		return true
	}

	return false
}

// Bill is a recurring obligation. IDs are strings for the same reason as
// spending entries: counterpart-owned bills keep their namespaced remote id.
// The counterpart owns Name and Amount; IsPaid and LastPaidDate are ours.
type Bill struct {
	ID                string
	Name              string
	Amount            decimal.Decimal
	DueDay            int
	Frequency         Frequency
	Category          string
	IsPaid            bool
	LastPaidDate      *time.Time
	ChargeToAccountID string
}

// Payment is the audit record appended when a bill flips to paid. It snapshots
// the bill's values at that instant; it is not a live reference and is never
// retracted when the bill is unmarked.
type Payment struct {
	ID       uuid.UUID
	BillName string
	Amount   decimal.Decimal
	Date     time.Time
}
