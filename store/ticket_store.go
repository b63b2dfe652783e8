// Package store owns the in-memory record sequences and their file
// persistence. Stores do no validation and no business logic; that lives
// in services. Access is confined to a single caller at a time — the
// service layer serializes operations with its own mutex.
package store

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"ticket-inventory/codec"
	"ticket-inventory/models"
)

// TicketStore holds the ordered ticket sequence and its backing file.
type TicketStore struct {
	path    string
	codec   codec.Codec
	tickets []models.Ticket
	logger  *slog.Logger
}

// NewTicketStore returns an empty store persisted at path with the given
// codec.
func NewTicketStore(path string, c codec.Codec, logger *slog.Logger) *TicketStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TicketStore{path: path, codec: c, logger: logger}
}

// Load replaces the in-memory sequence with the file contents. A missing,
// empty or corrupt file is not an error: the store comes up empty and a
// diagnostic is logged. Load never crashes the process.
func (s *TicketStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("ticket file not found, starting empty", "path", s.path)
			s.tickets = nil
			return nil
		}
		s.logger.Warn("could not read ticket file, starting empty", "path", s.path, "error", err)
		s.tickets = nil
		return nil
	}
	tickets, err := s.codec.Decode(bytes.NewReader(data))
	if err != nil {
		s.logger.Warn("ticket file corrupt, keeping readable prefix", "path", s.path, "loaded", len(tickets), "error", err)
	}
	s.tickets = tickets
	s.logger.Info("tickets loaded", "path", s.path, "count", len(tickets))
	return nil
}

// Save writes the full sequence back to the file, overwriting prior
// contents. A count mismatch on re-read is reported as a diagnostic, not a
// failure.
func (s *TicketStore) Save() error {
	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, s.tickets); err != nil {
		return fmt.Errorf("encode tickets: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if n := s.countOnDisk(); n != len(s.tickets) {
		s.logger.Warn("saved ticket count mismatch", "path", s.path, "in_memory", len(s.tickets), "on_disk", n)
	}
	return nil
}

func (s *TicketStore) countOnDisk() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return -1
	}
	tickets, _ := s.codec.Decode(bytes.NewReader(data))
	return len(tickets)
}

// NextID returns 1 for an empty store, else 1 + the highest live ID. IDs
// are never recycled by this policy: deleting the max-ID ticket frees its
// number for the very next create, but lower deleted IDs are never reused.
// There is deliberately no persisted counter.
func (s *TicketStore) NextID() int {
	maxID := 0
	for i := range s.tickets {
		if s.tickets[i].ID > maxID {
			maxID = s.tickets[i].ID
		}
	}
	return maxID + 1
}

// Insert appends a ticket to the sequence.
func (s *TicketStore) Insert(t models.Ticket) {
	s.tickets = append(s.tickets, t)
}

// IndexByID returns the position of the ticket with the given ID, or -1.
func (s *TicketStore) IndexByID(id int) int {
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns a pointer to the ticket at index i. The pointer is only
// valid until the next insert or removal.
func (s *TicketStore) Get(i int) *models.Ticket {
	return &s.tickets[i]
}

// RemoveAt removes the ticket at index i with stable compaction: the
// survivors keep their relative order.
func (s *TicketStore) RemoveAt(i int) {
	s.tickets = append(s.tickets[:i], s.tickets[i+1:]...)
}

// All returns a copy of the sequence in store order.
func (s *TicketStore) All() []models.Ticket {
	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// Len returns the number of live tickets.
func (s *TicketStore) Len() int {
	return len(s.tickets)
}

// Replace swaps in a new sequence, used by the sort engine.
func (s *TicketStore) Replace(tickets []models.Ticket) {
	s.tickets = tickets
}
