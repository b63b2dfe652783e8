package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	dto "github.com/prometheus/client_model/go"

	"ticket-inventory/models"
	"ticket-inventory/services"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

func formatTime(unix int64) string {
	return time.Unix(unix, 0).Format("2006-01-02 15:04:05")
}

// renderTicketDetail renders one ticket as a bordered block.
func renderTicketDetail(t models.Ticket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("ID:"), t.ID)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Name:"), t.Name)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Category:"), t.Category)
	fmt.Fprintf(&b, "%s Rp%.2f\n", labelStyle.Render("Price:"), t.Price)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Stock:"), t.Stock)
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("Created:"), formatTime(t.CreatedAt))
	return detailStyle.Render(b.String())
}

// renderTicketTable renders all tickets as an aligned table.
func renderTicketTable(tickets []models.Ticket) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-30s %-12s %14s %7s  %s",
		"ID", "NAME", "CATEGORY", "PRICE", "STOCK", "CREATED")))
	b.WriteString("\n")
	for _, t := range tickets {
		name := t.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		category := t.Category
		if len(category) > 12 {
			category = category[:12]
		}
		fmt.Fprintf(&b, "%-5d %-30s %-12s %14.2f %7d  %s\n",
			t.ID, name, category, t.Price, t.Stock, formatTime(t.CreatedAt))
	}
	return b.String()
}

// renderReceipt renders a successful purchase.
func renderReceipt(r models.Receipt) string {
	var b strings.Builder
	b.WriteString(okStyle.Render("Transaction complete"))
	b.WriteString("\n")
	if r.PurchaseID != 0 {
		fmt.Fprintf(&b, "%s #%d", labelStyle.Render("Purchase:"), r.PurchaseID)
		if r.Reference != "" {
			fmt.Fprintf(&b, " (ref %s)", r.Reference)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%s %s (%s)\n", labelStyle.Render("Ticket:"), r.TicketName, r.TicketCategory)
	fmt.Fprintf(&b, "%s %d x Rp%.2f\n", labelStyle.Render("Quantity:"), r.Quantity, r.UnitPrice)
	fmt.Fprintf(&b, "%s Rp%.2f\n", labelStyle.Render("Total:"), r.TotalPrice)
	fmt.Fprintf(&b, "%s %d", labelStyle.Render("Stock left:"), r.RemainingStock)
	return detailStyle.Render(b.String())
}

// renderPurchaseReport renders the transaction log with its grand total.
func renderPurchaseReport(report services.PurchaseReport) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-8s %-30s %5s %14s  %s",
		"ID", "TICKET", "NAME", "QTY", "TOTAL", "TIME")))
	b.WriteString("\n")
	for _, e := range report.Entries {
		name := e.TicketName
		if !e.TicketKnown {
			name = "(ticket no longer in inventory)"
		}
		fmt.Fprintf(&b, "%-5d %-8d %-30s %5d %14.2f  %s\n",
			e.Purchase.ID, e.Purchase.TicketID, name,
			e.Purchase.Quantity, e.Purchase.TotalPrice,
			formatTime(e.Purchase.PurchasedAt))
	}
	b.WriteString("\n")
	b.WriteString(okStyle.Render(fmt.Sprintf("Grand total: Rp%s", report.GrandTotal.StringFixed(2))))
	return b.String()
}

// renderSweepReport renders what an expiry sweep changed.
func renderSweepReport(r models.SweepReport) string {
	switch {
	case len(r.Removed) > 0:
		return warnStyle.Render(fmt.Sprintf("%d expired ticket(s) removed: %v", len(r.Removed), r.Removed))
	case len(r.Zeroed) > 0:
		return warnStyle.Render(fmt.Sprintf("%d expired ticket(s) zero-stocked: %v", len(r.Zeroed), r.Zeroed))
	default:
		return okStyle.Render("No expired tickets.")
	}
}

// renderMetrics renders the gathered metric families as plain lines.
func renderMetrics(families []*dto.MetricFamily) string {
	var b strings.Builder
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%s", lp.GetName(), lp.GetValue()))
			}
			value := 0.0
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			}
			if len(labels) > 0 {
				fmt.Fprintf(&b, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), value)
			} else {
				fmt.Fprintf(&b, "%s %g\n", mf.GetName(), value)
			}
		}
	}
	return b.String()
}
