// Package hub is the remote side of the sync protocol: the deposit inbox the
// counterpart app pushes into, the snapshot slots both parties exchange, the
// wholesale ledger-document store, and the letter/code directory.
package hub

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestKind is the decoded intent of an inbox POST. The counterpart app
// multiplexes intents through sentinel note values; those strings are mapped
// to a variant exactly once, at the wire boundary, and never consulted again.
type RequestKind int

const (
	KindDepositPush RequestKind = iota
	KindPing
	KindWebsiteSnapshot
	KindFullSync
)

// Wire sentinels the counterpart already speaks. Kept for compatibility;
// outside the wire types everything works with RequestKind.
const (
	NotePing            = "__TEST_PING__"
	NoteWebsiteSnapshot = "__WEBSITE_SYNC__"
	NoteFullSync        = "__FULL_SYNC__"
)

// PushRequest is the inbox POST body.
type PushRequest struct {
	Letter      string           `json:"letter"`
	Code        string           `json:"code"`
	AmountCAD   decimal.Decimal  `json:"amountCAD"`
	AmountUSD   decimal.Decimal  `json:"amountUSD"`
	Note        string           `json:"note"`
	Date        string           `json:"date"`
	Source      string           `json:"source"`
	AccountSync *AccountSync     `json:"accountSync,omitempty"`
	AppData     *AppSnapshot     `json:"appData,omitempty"`
	WebsiteData *WebsiteSnapshot `json:"websiteData,omitempty"`
}

// Kind decodes the note sentinel into a tagged variant.
func (r PushRequest) Kind() RequestKind {
	switch r.Note {
	case NotePing:
		return KindPing
	case NoteWebsiteSnapshot:
		return KindWebsiteSnapshot
	case NoteFullSync:
		return KindFullSync
	default:
		return KindDepositPush
	}
}

// InboxDeposit is one queued deposit awaiting a destructive read.
type InboxDeposit struct {
	ID        uuid.UUID       `json:"id"`
	AmountCAD decimal.Decimal `json:"amountCAD"`
	AmountUSD decimal.Decimal `json:"amountUSD"`
	Note      string          `json:"note"`
	Date      string          `json:"date"`
	Source    string          `json:"source"`
	PushedAt  time.Time       `json:"pushedAt"`
}

// AccountBalance is one trading-account balance reported by the counterpart.
type AccountBalance struct {
	Name       string          `json:"name"`
	BalanceCAD decimal.Decimal `json:"balanceCAD"`
	BalanceUSD decimal.Decimal `json:"balanceUSD"`
}

type AccountSync struct {
	Accounts []AccountBalance `json:"accounts"`
	SyncedAt time.Time        `json:"syncedAt"`
}

// AppExpense / AppBill are the counterpart's own records. IDs are the remote
// app's; the website namespaces them with "app-" before merging.
type AppExpense struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	Category string          `json:"category,omitempty"`
}

type AppBill struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	DueDay    int             `json:"dueDay"`
	Frequency string          `json:"frequency"`
	Category  string          `json:"category,omitempty"`
}

// AppSnapshot is what the counterpart publishes about itself.
type AppSnapshot struct {
	Expenses []AppExpense `json:"expenses"`
	Bills    []AppBill    `json:"recurringBills"`
}

// WebsiteGoal is the per-goal digest inside the website snapshot.
type WebsiteGoal struct {
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
}

// WebsiteExpense / WebsiteBill mirror the website's ledgers outward.
type WebsiteExpense struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	Category string          `json:"category,omitempty"`
}

type WebsiteBill struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	DueDay    int             `json:"dueDay"`
	Frequency string          `json:"frequency"`
	Category  string          `json:"category,omitempty"`
	IsPaid    bool            `json:"isPaid"`
}

// WebsiteSnapshot is what the website republishes after each poll cycle for
// the counterpart to consume.
type WebsiteSnapshot struct {
	Spending  []WebsiteExpense `json:"spending"`
	Bills     []WebsiteBill    `json:"bills"`
	Goals     []WebsiteGoal    `json:"goals"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// DrainResponse is the inbox GET body. Deposits are gone from the hub the
// moment this is produced; the snapshots are repeatable reads.
type DrainResponse struct {
	Deposits    []InboxDeposit `json:"deposits"`
	Count       int            `json:"count"`
	AccountSync *AccountSync   `json:"accountSync"`
	AppData     *AppSnapshot   `json:"appData"`
}

// PushResult reports what an inbox POST did.
type PushResult struct {
	Queued  bool             `json:"queued"`
	Website *WebsiteSnapshot `json:"website,omitempty"`
}
