package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ticket-inventory/models"
)

// Text writes one record per line with semicolon-separated fields:
//
//	id;name;category;price;stock;created_at
//
// Price carries exactly two decimal digits, created_at is integer seconds.
// Decoding stops at the first line that does not match the expected field
// arity or fails numeric parsing, returning everything before it. That
// matches the historical loader, which counted cleanly scanned lines and
// ignored the rest.
type Text struct{}

const ticketFieldCount = 6

func (t *Text) Encode(w io.Writer, tickets []models.Ticket) error {
	for i := range tickets {
		tk := &tickets[i]
		_, err := fmt.Fprintf(w, "%d;%s;%s;%.2f;%d;%d\n",
			tk.ID, tk.Name, tk.Category, tk.Price, tk.Stock, tk.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *Text) Decode(r io.Reader) ([]models.Ticket, error) {
	var tickets []models.Ticket
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tk, ok := parseTicketLine(scanner.Text())
		if !ok {
			return tickets, nil
		}
		tickets = append(tickets, tk)
	}
	if err := scanner.Err(); err != nil {
		return tickets, err
	}
	return tickets, nil
}

func (t *Text) EncodePurchases(w io.Writer, purchases []models.Purchase) error {
	for i := range purchases {
		p := &purchases[i]
		_, err := fmt.Fprintf(w, "%d;%d;%d;%.2f;%d\n",
			p.ID, p.TicketID, p.Quantity, p.TotalPrice, p.PurchasedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *Text) DecodePurchases(r io.Reader) ([]models.Purchase, error) {
	var purchases []models.Purchase
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p, ok := parsePurchaseLine(scanner.Text())
		if !ok {
			return purchases, nil
		}
		purchases = append(purchases, p)
	}
	if err := scanner.Err(); err != nil {
		return purchases, err
	}
	return purchases, nil
}

func parseTicketLine(line string) (models.Ticket, bool) {
	parts := strings.Split(line, ";")
	if len(parts) != ticketFieldCount {
		return models.Ticket{}, false
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return models.Ticket{}, false
	}
	price, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return models.Ticket{}, false
	}
	stock, err := strconv.Atoi(parts[4])
	if err != nil {
		return models.Ticket{}, false
	}
	createdAt, err := strconv.ParseInt(parts[5], 10, 64)
	if err != nil {
		return models.Ticket{}, false
	}
	return models.Ticket{
		ID:        id,
		Name:      parts[1],
		Category:  parts[2],
		Price:     price,
		Stock:     stock,
		CreatedAt: createdAt,
	}, true
}

func parsePurchaseLine(line string) (models.Purchase, bool) {
	parts := strings.Split(line, ";")
	if len(parts) != 5 {
		return models.Purchase{}, false
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return models.Purchase{}, false
	}
	ticketID, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.Purchase{}, false
	}
	qty, err := strconv.Atoi(parts[2])
	if err != nil {
		return models.Purchase{}, false
	}
	total, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return models.Purchase{}, false
	}
	at, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		return models.Purchase{}, false
	}
	return models.Purchase{
		ID:          id,
		TicketID:    ticketID,
		Quantity:    qty,
		TotalPrice:  total,
		PurchasedAt: at,
	}, true
}
