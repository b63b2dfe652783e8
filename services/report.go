package services

import (
	"github.com/shopspring/decimal"

	"ticket-inventory/models"
)

// PurchaseReportEntry is one transaction with its ticket name resolved.
// Purchases outlive their tickets, so the name may be missing.
type PurchaseReportEntry struct {
	Purchase    models.Purchase
	TicketName  string
	TicketKnown bool
}

// PurchaseReport is the full transaction log with a grand total.
type PurchaseReport struct {
	Entries    []PurchaseReportEntry
	GrandTotal decimal.Decimal
}

// PurchaseReport builds the report over every recorded transaction,
// resolving ticket names against the current inventory and summing totals
// with decimal arithmetic.
func (s *InventoryService) PurchaseReport() PurchaseReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := PurchaseReport{GrandTotal: decimal.Zero}
	if s.purchases == nil {
		return report
	}

	for _, p := range s.purchases.All() {
		entry := PurchaseReportEntry{Purchase: p}
		if i := s.tickets.IndexByID(p.TicketID); i >= 0 {
			entry.TicketName = s.tickets.Get(i).Name
			entry.TicketKnown = true
		}
		report.Entries = append(report.Entries, entry)
		report.GrandTotal = report.GrandTotal.Add(decimal.NewFromFloat(p.TotalPrice))
	}
	return report
}
