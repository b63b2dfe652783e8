package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no ticket (or purchase) matches the
	// requested ID. The store is left unchanged.
	ErrNotFound = errors.New("ticket not found")

	// ErrNotConfirmed is returned by Delete when the caller has not
	// supplied an affirmative confirmation.
	ErrNotConfirmed = errors.New("deletion not confirmed")

	// ErrInvalidQuantity is returned by Purchase for quantities <= 0.
	ErrInvalidQuantity = errors.New("purchase quantity must be positive")
)

// ValidationError reports a rejected input field. Nothing is mutated when
// one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError reports a purchase that asked for more tickets
// than are available. The order is not partially fulfilled.
type InsufficientStockError struct {
	TicketID  int
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for ticket %d: requested %d, available %d",
		e.TicketID, e.Requested, e.Available)
}
