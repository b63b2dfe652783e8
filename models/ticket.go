package models

import (
	"time"
)

const (
	// MaxNameLen and MaxCategoryLen are the semantic field limits carried
	// over from the fixed-width storage layout (49 + NUL, 19 + NUL).
	MaxNameLen     = 49
	MaxCategoryLen = 19

	// DefaultTTL is how long a ticket stays sellable before the expiry
	// sweep picks it up.
	DefaultTTL = 7 * 24 * time.Hour
)

// Ticket is a concert ticket inventory record. IDs are assigned by the
// store, never by callers.
type Ticket struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"` // e.g. VIP, Reguler
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	CreatedAt int64   `json:"created_at"` // unix seconds, basis for expiry
}

// Expired reports whether the ticket is older than ttl at the given time.
func (t *Ticket) Expired(now time.Time, ttl time.Duration) bool {
	return now.Unix()-t.CreatedAt > int64(ttl.Seconds())
}

// Purchase is a completed transaction. Append-only: once recorded it is
// never mutated or deleted.
type Purchase struct {
	ID          int     `json:"purchase_id"`
	TicketID    int     `json:"ticket_id"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
	PurchasedAt int64   `json:"purchased_at"`
}

// Receipt is what a successful purchase returns to the caller.
type Receipt struct {
	PurchaseID     int
	Reference      string
	TicketID       int
	TicketName     string
	TicketCategory string
	Quantity       int
	UnitPrice      float64
	TotalPrice     float64
	RemainingStock int
}
