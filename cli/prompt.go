package cli

import (
	"fmt"
	"strconv"
	"strings"

	"ticket-inventory/models"
)

func (m *Menu) readLine(prompt string) string {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		m.eof = true
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}

// readInt returns ok=false on non-numeric input; callers treat that as an
// aborted prompt.
func (m *Menu) readInt(prompt string) (int, bool) {
	line := strings.TrimSpace(m.readLine(prompt))
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m *Menu) readFloat(prompt string) (float64, bool) {
	line := strings.TrimSpace(m.readLine(prompt))
	f, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// readConfirm treats Y/y as affirmative and anything else as refusal.
func (m *Menu) readConfirm(prompt string) bool {
	line := strings.TrimSpace(m.readLine(prompt))
	return line == "Y" || line == "y"
}

// promptUpdateRequest collects a partial update using the legacy sentinel
// convention: empty text skips a field, price 0 skips (so a real price of
// exactly 0 cannot be set interactively), stock -1 skips. The sentinels
// are translated to optional fields here; the core API never sees them.
func (m *Menu) promptUpdateRequest(current models.Ticket) models.UpdateRequest {
	var req models.UpdateRequest

	if name := m.readLine(fmt.Sprintf("New name (%s, ENTER to skip): ", current.Name)); name != "" {
		req.Name = &name
	}
	if category := m.readLine(fmt.Sprintf("New category (%s, ENTER to skip): ", current.Category)); category != "" {
		req.Category = &category
	}
	if price, ok := m.readFloat(fmt.Sprintf("New price (%.2f, 0 to skip): Rp", current.Price)); ok && price > 0 {
		req.Price = &price
	}
	if stock, ok := m.readInt(fmt.Sprintf("New stock (%d, -1 to skip): ", current.Stock)); ok && stock >= 0 {
		req.Stock = &stock
	}
	req.RefreshCreatedAt = m.readConfirm("Restart the expiry clock (Y/N)? ")

	return req
}
