package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of physical item kinds held in branch custody.
type Category string

const (
	CategoryDebitCard  Category = "DEBIT CARD"
	CategoryChequeBook Category = "CHEQUE BOOK"
	CategoryDPSSlip    Category = "DPS SLIP"
	CategoryPIN        Category = "PIN"
)

// Categories lists every category in fixed display and stats order.
var Categories = []Category{
	CategoryDebitCard,
	CategoryChequeBook,
	CategoryDPSSlip,
	CategoryPIN,
}

// ParseCategory resolves a free-form cell value to a known category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return known, true
		}
	}

	return "", false
}

// Item is one physical artifact in custody. IDs are assigned once at
// creation and never reused; the account number keeps the raw form it was
// first read with, while matching always goes through NormalizeAccount.
type Item struct {
	ID            uuid.UUID  `json:"id"`
	AccountNumber string     `json:"accountNumber"`
	CustomerName  string     `json:"customerName"`
	PhoneNumber   string     `json:"phoneNumber"`
	Address       string     `json:"address"`
	Category      Category   `json:"category"`
	ReceiveDate   time.Time  `json:"receiveDate"`
	DestroyDate   time.Time  `json:"destroyDate"`
	IsDelivered   bool       `json:"isDelivered"`
	DeliveryDate  *time.Time `json:"deliveryDate,omitempty"`
	IsTrashed     bool       `json:"isTrashed,omitempty"`
	Remarks       string     `json:"remarks,omitempty"`
}

// Key is the business key: at most one non-purged item may hold it.
type Key struct {
	Account  string
	Category Category
}

// Key returns the item's business key.
func (i Item) Key() Key {
	return Key{Account: NormalizeAccount(i.AccountNumber), Category: i.Category}
}

// NormalizeAccount produces the matching form of an account number:
// uppercase with everything but letters and digits stripped, so
// "123-456", "123 456" and "123456" all collide.
func NormalizeAccount(s string) string {
	var b strings.Builder

	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Candidate is a normalized record read from one source row, not yet merged
// into the collection. Delivered reflects only what the source claims;
// merging against local state is the engine's job.
type Candidate struct {
	AccountNumber string
	CustomerName  string
	PhoneNumber   string
	Address       string
	Category      Category
	ReceiveDate   time.Time
	Delivered     bool
	DeliveryDate  time.Time
}

// Retention is the fixed offset added to a receive date to derive the
// destruction-eligibility date.
type Retention struct {
	Years  int
	Months int
}

// DefaultRetention is three months from receipt, the current branch rule.
var DefaultRetention = Retention{Months: 3}

// DestroyDate derives the destruction date for a receive date.
func (r Retention) DestroyDate(receive time.Time) time.Time {
	return receive.AddDate(r.Years, r.Months, 0)
}

// TotalRow labels the aggregate row returned by Stats.
const TotalRow = "TOTAL"

// CategoryStats is a derived per-category summary; never persisted.
type CategoryStats struct {
	Category    string `json:"category"`
	Received    int    `json:"received"`
	Delivered   int    `json:"delivered"`
	Balance     int    `json:"balance"`
	Destruction int    `json:"destruction"`
}
