package store

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"ticket-inventory/codec"
	"ticket-inventory/models"
)

// PurchaseStore holds the append-only transaction log. Records are never
// mutated or deleted once appended.
type PurchaseStore struct {
	path      string
	codec     codec.Codec
	purchases []models.Purchase
	logger    *slog.Logger
}

// NewPurchaseStore returns an empty purchase store persisted at path.
func NewPurchaseStore(path string, c codec.Codec, logger *slog.Logger) *PurchaseStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PurchaseStore{path: path, codec: c, logger: logger}
}

// Load replaces the in-memory log with the file contents, coming up empty
// on a missing or unreadable file.
func (s *PurchaseStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("purchase file not found, starting empty", "path", s.path)
			s.purchases = nil
			return nil
		}
		s.logger.Warn("could not read purchase file, starting empty", "path", s.path, "error", err)
		s.purchases = nil
		return nil
	}
	purchases, err := s.codec.DecodePurchases(bytes.NewReader(data))
	if err != nil {
		s.logger.Warn("purchase file corrupt, keeping readable prefix", "path", s.path, "loaded", len(purchases), "error", err)
	}
	s.purchases = purchases
	s.logger.Info("purchases loaded", "path", s.path, "count", len(purchases))
	return nil
}

// Save writes the full log back to the file.
func (s *PurchaseStore) Save() error {
	var buf bytes.Buffer
	if err := s.codec.EncodePurchases(&buf, s.purchases); err != nil {
		return fmt.Errorf("encode purchases: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// NextID returns 1 for an empty log, else 1 + the highest recorded ID.
func (s *PurchaseStore) NextID() int {
	maxID := 0
	for i := range s.purchases {
		if s.purchases[i].ID > maxID {
			maxID = s.purchases[i].ID
		}
	}
	return maxID + 1
}

// Append records a completed purchase.
func (s *PurchaseStore) Append(p models.Purchase) {
	s.purchases = append(s.purchases, p)
}

// All returns a copy of the log in append order.
func (s *PurchaseStore) All() []models.Purchase {
	out := make([]models.Purchase, len(s.purchases))
	copy(out, s.purchases)
	return out
}

// Len returns the number of recorded purchases.
func (s *PurchaseStore) Len() int {
	return len(s.purchases)
}
