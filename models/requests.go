package models

import "fmt"

// CreateRequest carries the caller-supplied fields for a new ticket.
type CreateRequest struct {
	Name     string
	Category string
	Price    float64
	Stock    int
}

// Validate checks the request against the inventory invariants.
func (r *CreateRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if r.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if r.Stock < 0 {
		return &ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	return nil
}

// UpdateRequest is a partial update: nil fields are left unchanged. The
// legacy sentinel convention (empty string, price 0, stock -1) lives in the
// CLI adapter, not here.
type UpdateRequest struct {
	Name     *string
	Category *string
	Price    *float64
	Stock    *int

	// RefreshCreatedAt resets the creation timestamp so the expiry clock
	// starts over.
	RefreshCreatedAt bool
}

// Validate checks the fields that are present.
func (r *UpdateRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if r.Price != nil && *r.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if r.Stock != nil && *r.Stock < 0 {
		return &ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	return nil
}

// SortKey selects the ordering applied by SortBy.
type SortKey string

const (
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
)

// ParseSortKey maps a configuration/menu value onto a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortNameAsc:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// SearchField selects which attribute Search matches against.
type SearchField string

const (
	FieldID       SearchField = "id"
	FieldName     SearchField = "name"
	FieldCategory SearchField = "category"
)

// ExpiryPolicy selects what the sweep does with expired tickets.
type ExpiryPolicy string

const (
	// ExpiryDelete removes expired tickets from the store entirely.
	ExpiryDelete ExpiryPolicy = "delete"
	// ExpiryZeroStock keeps expired tickets but forces their stock to zero.
	ExpiryZeroStock ExpiryPolicy = "zero_stock"
)

// ParseExpiryPolicy maps a configuration value onto an ExpiryPolicy.
func ParseExpiryPolicy(s string) (ExpiryPolicy, error) {
	switch ExpiryPolicy(s) {
	case ExpiryDelete, ExpiryZeroStock:
		return ExpiryPolicy(s), nil
	}
	return "", fmt.Errorf("unknown expiry policy %q", s)
}

// SweepReport summarizes one expiry sweep.
type SweepReport struct {
	Policy  ExpiryPolicy
	Scanned int
	// Removed lists the IDs deleted under ExpiryDelete.
	Removed []int
	// Zeroed lists the IDs whose stock was forced to zero under
	// ExpiryZeroStock. Tickets already at zero stock are not re-reported.
	Zeroed []int
}

// Changed reports whether the sweep mutated the store.
func (r *SweepReport) Changed() bool {
	return len(r.Removed) > 0 || len(r.Zeroed) > 0
}
