// Package cli owns all console interaction: the login gate, the numbered
// menu loop and every prompt. Core packages never print; they return
// values and errors that are rendered here.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"ticket-inventory/auth"
	"ticket-inventory/models"
	"ticket-inventory/monitoring"
	"ticket-inventory/services"
)

// Menu drives the interactive session over an input source and an output
// sink, both injectable for tests.
type Menu struct {
	rawIn   io.Reader
	in      *bufio.Reader
	out     io.Writer
	svc     *services.InventoryService
	gate    *auth.Gate
	monitor *monitoring.Monitor
	policy  models.ExpiryPolicy
	logger  *slog.Logger

	// eof is set once the input source runs dry; the loop then exits
	// instead of re-prompting forever.
	eof bool
}

// NewMenu wires the menu to the service layer. gate and monitor may be
// nil, which disables login and the metrics entry respectively.
func NewMenu(in io.Reader, out io.Writer, svc *services.InventoryService, gate *auth.Gate, monitor *monitoring.Monitor, policy models.ExpiryPolicy, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{
		rawIn:   in,
		in:      bufio.NewReader(in),
		out:     out,
		svc:     svc,
		gate:    gate,
		monitor: monitor,
		policy:  policy,
		logger:  logger,
	}
}

// Run executes the session: login, startup sweep, menu loop, final save.
func (m *Menu) Run() error {
	if m.gate != nil && !m.login() {
		fmt.Fprintln(m.out, errStyle.Render("Access denied. Exiting."))
		return nil
	}

	if report, err := m.svc.SweepExpired(m.policy); err == nil && report.Changed() {
		fmt.Fprintln(m.out, renderSweepReport(report))
	}

	for {
		m.printMenu()
		choice, ok := m.readInt("Choose an option: ")
		if !ok {
			if m.eof {
				return m.svc.Save()
			}
			fmt.Fprintln(m.out, errStyle.Render("Invalid input, enter a number."))
			continue
		}

		switch choice {
		case 1:
			m.addTicket()
		case 2:
			m.listTickets()
		case 3:
			m.searchTickets()
		case 4:
			m.updateTicket()
		case 5:
			m.deleteTicket()
		case 6:
			m.sortTickets()
		case 7:
			if err := m.svc.Save(); err != nil {
				fmt.Fprintln(m.out, errStyle.Render(fmt.Sprintf("Save failed: %v", err)))
			} else {
				fmt.Fprintln(m.out, okStyle.Render("Data saved. Goodbye."))
			}
			return nil
		case 8:
			m.buyTicket()
		case 9:
			m.purchaseReport()
		case 10:
			m.sweep()
		case 11:
			m.dumpMetrics()
		default:
			fmt.Fprintln(m.out, errStyle.Render("Invalid option, try again."))
		}
	}
}

func (m *Menu) login() bool {
	fmt.Fprintln(m.out, titleStyle.Render("Administrator login"))
	for attempt := 1; attempt <= auth.MaxAttempts; attempt++ {
		username := m.readLine("Username: ")
		password := m.promptPassword("Password: ")

		if err := m.gate.Authenticate(username, password); err == nil {
			fmt.Fprintln(m.out, okStyle.Render(fmt.Sprintf("Welcome, %s.", username)))
			return true
		}
		m.logger.Warn("failed login attempt", "username", username, "attempt", attempt)
		fmt.Fprintln(m.out, errStyle.Render("Wrong username or password."))
	}
	return false
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, titleStyle.Render("Concert Ticket Inventory"))
	fmt.Fprintln(m.out, "1. Add ticket")
	fmt.Fprintln(m.out, "2. List all tickets")
	fmt.Fprintln(m.out, "3. Search tickets")
	fmt.Fprintln(m.out, "4. Update ticket")
	fmt.Fprintln(m.out, "5. Delete ticket")
	fmt.Fprintln(m.out, "6. Sort tickets")
	fmt.Fprintln(m.out, "7. Save & exit")
	fmt.Fprintln(m.out, "8. Buy ticket")
	fmt.Fprintln(m.out, "9. Purchase report")
	fmt.Fprintln(m.out, "10. Run expiry sweep")
	fmt.Fprintln(m.out, "11. Show metrics")
}

func (m *Menu) addTicket() {
	name := m.readLine("Concert name: ")
	category := m.readLine("Category (e.g. VIP, Reguler): ")
	price, ok := m.readFloat("Price: Rp")
	if !ok {
		fmt.Fprintln(m.out, errStyle.Render("Invalid price."))
		return
	}
	stock, ok := m.readInt("Stock: ")
	if !ok {
		fmt.Fprintln(m.out, errStyle.Render("Invalid stock."))
		return
	}

	t, err := m.svc.Create(models.CreateRequest{
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
	})
	if err != nil {
		fmt.Fprintln(m.out, errStyle.Render(err.Error()))
		return
	}
	fmt.Fprintln(m.out, okStyle.Render(fmt.Sprintf("Ticket %d added.", t.ID)))
	fmt.Fprintln(m.out, renderTicketDetail(t))
}

func (m *Menu) listTickets() {
	tickets := m.svc.ListAll()
	if len(tickets) == 0 {
		fmt.Fprintln(m.out, warnStyle.Render("No tickets in the system."))
		return
	}
	fmt.Fprintln(m.out, titleStyle.Render(fmt.Sprintf("All tickets (%d)", len(tickets))))
	fmt.Fprint(m.out, renderTicketTable(tickets))
}

func (m *Menu) searchTickets() {
	fmt.Fprintln(m.out, "Search by:")
	fmt.Fprintln(m.out, "1. ID")
	fmt.Fprintln(m.out, "2. Name")
	fmt.Fprintln(m.out, "3. Category")
	fmt.Fprintln(m.out, "4. Any keyword")
	choice, ok := m.readInt("Choose (1-4): ")
	if !ok {
		fmt.Fprintln(m.out, errStyle.Render("Invalid input."))
		return
	}

	var results []models.Ticket
	switch choice {
	case 1:
		term := m.readLine("Ticket ID: ")
		results = m.svc.Search(term, models.FieldID)
	case 2:
		term := m.readLine("Concert name: ")
		results = m.svc.Search(term, models.FieldName)
	case 3:
		term := m.readLine("Category: ")
		results = m.svc.Search(term, models.FieldCategory)
	case 4:
		term := m.readLine("Keyword: ")
		results = m.svc.SearchAny(term)
	default:
		fmt.Fprintln(m.out, errStyle.Render("Invalid choice."))
		return
	}

	if len(results) == 0 {
		fmt.Fprintln(m.out, warnStyle.Render("No tickets found."))
		return
	}
	for _, t := range results {
		fmt.Fprintln(m.out, renderTicketDetail(t))
	}
	fmt.Fprintln(m.out, okStyle.Render(fmt.Sprintf("%d result(s).", len(results))))
}

func (m *Menu) updateTicket() {
	id, ok := m.readInt("Ticket ID to update: ")
	if !ok {
		fmt.Fprintln(m.out, errStyle.Render("Invalid ID."))
		return
	}

	current, err := m.svc.FindByID(id)
	if err != nil {
		fmt.Fprintln(m.out, errStyle.Render(fmt.Sprintf("Ticket %d not found.", id)))
		return
	}
	fmt.Fprintln(m.out, renderTicketDetail(current))

	req := m.promptUpdateRequest(current)
	if err := m.svc.Update(id, req); err != nil {
		fmt.Fprintln(m.out, errStyle.Render(err.Error()))
		return
	}

	updated, _ := m.svc.FindByID(id)
	fmt.Fprintln(m.out, okStyle.Render(fmt.Sprintf("Ticket %d updated.", id)))
	fmt.Fprintln(m.out, renderTicketDetail(updated))
}

func (m *Menu) deleteTicket() {
	id, ok := m.readInt("Ticket ID to delete: ")
	if !ok {
		fmt.Fprintln(m.out, errStyle.Render("Invalid ID."))
		return
	}

	t, err := m.svc.FindByID(id)
	if err != nil {
		fmt.Fprintln(m.out, errStyle.Render(fmt.Sprintf("Ticket %d not found.", id)))
		return
	}
	fmt.Fprintln(m.out, "About to delete:")
	fmt.Fprintln(m.out, renderTicketDetail(t))

	confirmed := m.readConfirm("Confirm (Y/N): ")
	err = m.svc.Delete(id, confirmed)
	switch {
	case errors.Is(err, models.ErrNotConfirmed):
		fmt.Fprintln(m.out, warnStyle.Render("Deletion cancelled."))
	case err != nil:
		fmt.Fprintln(m.out, errStyle.Render(err.Error()))
	default:
		fmt.Fprintln(m.out, okStyle.Render(fmt.Sprintf("Ticket %d deleted.", id)))
	}
}

func (m *Menu) sortTickets() {
	fmt.Fprintln(m.out, "Sort by:")
	fmt.Fprintln(m.out, "1. Price (lowest first)")
	fmt.Fprintln(m.out, "2. Price (highest first)")
	fmt.Fprintln(m.out, "3. Name (A-Z)")
	choice, ok := m.readInt("Choose (1-3): ")
	if !ok {
		fmt.Fprintln(m.out, errStyle.Render("Invalid input."))
		return
	}

	var key models.SortKey
	switch choice {
	case 1:
		key = models.SortPriceAsc
	case 2:
		key = models.SortPriceDesc
	case 3:
		key = models.SortNameAsc
	default:
		fmt.Fprintln(m.out, errStyle.Render("Invalid choice."))
		return
	}

	if err := m.svc.SortBy(key); err != nil {
		fmt.Fprintln(m.out, errStyle.Render(err.Error()))
		return
	}
	fmt.Fprintln(m.out, okStyle.Render("Tickets sorted."))
	m.listTickets()
}

func (m *Menu) buyTicket() {
	id, ok := m.readInt("Ticket ID to buy: ")
	if !ok {
		fmt.Fprintln(m.out, errStyle.Render("Invalid ID."))
		return
	}

	t, err := m.svc.FindByID(id)
	if err != nil {
		fmt.Fprintln(m.out, errStyle.Render(fmt.Sprintf("Ticket %d not found.", id)))
		return
	}
	fmt.Fprintln(m.out, renderTicketDetail(t))

	qty, ok := m.readInt("Quantity: ")
	if !ok {
		fmt.Fprintln(m.out, errStyle.Render("Invalid quantity."))
		return
	}

	receipt, err := m.svc.Purchase(id, qty)
	if err != nil {
		var insufficient *models.InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			fmt.Fprintln(m.out, errStyle.Render(fmt.Sprintf("Insufficient stock, %d available.", insufficient.Available)))
		case errors.Is(err, models.ErrInvalidQuantity):
			fmt.Fprintln(m.out, errStyle.Render("Quantity must be positive."))
		default:
			fmt.Fprintln(m.out, errStyle.Render(err.Error()))
		}
		return
	}
	fmt.Fprintln(m.out, renderReceipt(receipt))
}

func (m *Menu) purchaseReport() {
	report := m.svc.PurchaseReport()
	if len(report.Entries) == 0 {
		fmt.Fprintln(m.out, warnStyle.Render("No purchases recorded yet."))
		return
	}
	fmt.Fprintln(m.out, titleStyle.Render(fmt.Sprintf("Purchase report (%d transactions)", len(report.Entries))))
	fmt.Fprintln(m.out, renderPurchaseReport(report))
}

func (m *Menu) sweep() {
	report, err := m.svc.SweepExpired(m.policy)
	if err != nil {
		fmt.Fprintln(m.out, errStyle.Render(err.Error()))
		return
	}
	fmt.Fprintln(m.out, renderSweepReport(report))
}

func (m *Menu) dumpMetrics() {
	if m.monitor == nil {
		fmt.Fprintln(m.out, warnStyle.Render("Metrics are disabled."))
		return
	}
	families, err := m.monitor.Gather()
	if err != nil {
		fmt.Fprintln(m.out, errStyle.Render(err.Error()))
		return
	}
	fmt.Fprint(m.out, renderMetrics(families))
}
