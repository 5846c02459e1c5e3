package spending

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one discretionary purchase. IDs are strings because merged-in
// counterpart entries keep a namespaced remote id ("app-<remoteID>") while
// local entries get a fresh uuid string.
type Entry struct {
	ID       string
	Title    string
	Amount   decimal.Decimal
	Date     time.Time
	Category string
}

// RemoteIDPrefix namespaces ids owned by the counterpart app.
const RemoteIDPrefix = "app-"
