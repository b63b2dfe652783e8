package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"

	"ticket-inventory/models"
)

// Binary writes each record as a fixed-layout little-endian struct, one
// after another with no header or checksum, mirroring the historical
// struct-dump files. A short final record is silently dropped on decode:
// the reader counts whole records and ignores the tail.
type Binary struct{}

// ticketRecord is the on-disk ticket layout: 90 bytes per record.
type ticketRecord struct {
	ID        int32
	Name      [models.MaxNameLen + 1]byte
	Category  [models.MaxCategoryLen + 1]byte
	Price     float32
	Stock     int32
	CreatedAt int64
}

// purchaseRecord is the on-disk purchase layout: 24 bytes per record.
type purchaseRecord struct {
	ID          int32
	TicketID    int32
	Quantity    int32
	TotalPrice  float32
	PurchasedAt int64
}

func (b *Binary) Encode(w io.Writer, tickets []models.Ticket) error {
	for i := range tickets {
		rec := packTicket(&tickets[i])
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}
	return nil
}

func (b *Binary) Decode(r io.Reader) ([]models.Ticket, error) {
	var tickets []models.Ticket
	for {
		var rec ticketRecord
		err := binary.Read(r, binary.LittleEndian, &rec)
		if errors.Is(err, io.EOF) {
			return tickets, nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			// Partial trailing record: drop it and keep what parsed.
			return tickets, nil
		}
		if err != nil {
			return tickets, err
		}
		tickets = append(tickets, unpackTicket(&rec))
	}
}

func (b *Binary) EncodePurchases(w io.Writer, purchases []models.Purchase) error {
	for i := range purchases {
		rec := purchaseRecord{
			ID:          int32(purchases[i].ID),
			TicketID:    int32(purchases[i].TicketID),
			Quantity:    int32(purchases[i].Quantity),
			TotalPrice:  float32(purchases[i].TotalPrice),
			PurchasedAt: purchases[i].PurchasedAt,
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}
	return nil
}

func (b *Binary) DecodePurchases(r io.Reader) ([]models.Purchase, error) {
	var purchases []models.Purchase
	for {
		var rec purchaseRecord
		err := binary.Read(r, binary.LittleEndian, &rec)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return purchases, nil
		}
		if err != nil {
			return purchases, err
		}
		purchases = append(purchases, models.Purchase{
			ID:          int(rec.ID),
			TicketID:    int(rec.TicketID),
			Quantity:    int(rec.Quantity),
			TotalPrice:  float64(rec.TotalPrice),
			PurchasedAt: rec.PurchasedAt,
		})
	}
}

func packTicket(t *models.Ticket) ticketRecord {
	rec := ticketRecord{
		ID:        int32(t.ID),
		Price:     float32(t.Price),
		Stock:     int32(t.Stock),
		CreatedAt: t.CreatedAt,
	}
	copyBounded(rec.Name[:], t.Name)
	copyBounded(rec.Category[:], t.Category)
	return rec
}

func unpackTicket(rec *ticketRecord) models.Ticket {
	return models.Ticket{
		ID:        int(rec.ID),
		Name:      fromBounded(rec.Name[:]),
		Category:  fromBounded(rec.Category[:]),
		Price:     float64(rec.Price),
		Stock:     int(rec.Stock),
		CreatedAt: rec.CreatedAt,
	}
}

// copyBounded fills dst with s truncated to len(dst)-1 bytes, always
// leaving a NUL terminator.
func copyBounded(dst []byte, s string) {
	n := copy(dst[:len(dst)-1], s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

func fromBounded(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return strings.ToValidUTF8(string(b), "")
}
