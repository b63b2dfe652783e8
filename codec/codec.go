// Package codec holds the two persistence formats the inventory has
// historically used: fixed-size binary records and semicolon-delimited
// text lines. They are incompatible on disk and are kept as separate
// strategies behind one interface so neither format's parsing quirks leak
// into the store.
package codec

import (
	"fmt"
	"io"

	"ticket-inventory/models"
)

// Format names a persistence strategy in configuration.
type Format string

const (
	FormatBinary Format = "binary"
	FormatText   Format = "text"
)

// Codec serializes full snapshots of the ticket and purchase stores.
// Decode never fails on a missing or short trailing record; it returns
// whatever parsed cleanly.
type Codec interface {
	Encode(w io.Writer, tickets []models.Ticket) error
	Decode(r io.Reader) ([]models.Ticket, error)

	EncodePurchases(w io.Writer, purchases []models.Purchase) error
	DecodePurchases(r io.Reader) ([]models.Purchase, error)
}

// ForFormat returns the codec registered for the given format.
func ForFormat(f Format) (Codec, error) {
	switch f {
	case FormatBinary:
		return &Binary{}, nil
	case FormatText:
		return &Text{}, nil
	}
	return nil, fmt.Errorf("unknown persistence format %q", f)
}
