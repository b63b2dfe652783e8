// Package services implements the inventory business logic: CRUD,
// purchases, search, sorting and the expiry sweep, all over the record
// stores. It is the only layer the CLI talks to.
package services

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"ticket-inventory/models"
	"ticket-inventory/monitoring"
	"ticket-inventory/store"
	"ticket-inventory/utils"
)

// InventoryService serializes every operation with a single mutex; the
// historical system was single-threaded and the invariants assume no two
// mutations interleave.
type InventoryService struct {
	mu        sync.Mutex
	tickets   *store.TicketStore
	purchases *store.PurchaseStore
	monitor   *monitoring.Monitor
	logger    *slog.Logger
	ttl       time.Duration

	// now is swappable in tests.
	now func() time.Time
}

// NewInventoryService wires the service to its stores. monitor may be nil.
func NewInventoryService(tickets *store.TicketStore, purchases *store.PurchaseStore, monitor *monitoring.Monitor, ttl time.Duration, logger *slog.Logger) *InventoryService {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = models.DefaultTTL
	}
	return &InventoryService{
		tickets:   tickets,
		purchases: purchases,
		monitor:   monitor,
		logger:    logger,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Load pulls both stores from disk. Missing files are not errors.
func (s *InventoryService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tickets.Load(); err != nil {
		return err
	}
	if s.purchases != nil {
		if err := s.purchases.Load(); err != nil {
			return err
		}
	}
	s.syncGauges()
	return nil
}

// Save writes both stores to disk.
func (s *InventoryService) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *InventoryService) saveLocked() error {
	if err := s.tickets.Save(); err != nil {
		return err
	}
	if s.purchases != nil {
		if err := s.purchases.Save(); err != nil {
			return err
		}
	}
	return nil
}

// Create validates the request, assigns the next ID and appends the new
// ticket. Name and category are truncated to their storage limits.
func (s *InventoryService) Create(req models.CreateRequest) (models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := req.Validate(); err != nil {
		s.track("create", "rejected")
		return models.Ticket{}, err
	}

	t := models.Ticket{
		ID:        s.tickets.NextID(),
		Name:      truncate(req.Name, models.MaxNameLen),
		Category:  truncate(req.Category, models.MaxCategoryLen),
		Price:     req.Price,
		Stock:     req.Stock,
		CreatedAt: s.now().Unix(),
	}
	s.tickets.Insert(t)
	s.syncGauges()
	s.track("create", "ok")
	s.logger.Info("ticket created", "id", t.ID, "name", t.Name, "category", t.Category)
	return t, nil
}

// FindByID returns the unique ticket with the given ID.
func (s *InventoryService) FindByID(id int) (models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.tickets.IndexByID(id)
	if i < 0 {
		return models.Ticket{}, models.ErrNotFound
	}
	return *s.tickets.Get(i), nil
}

// ListAll returns every ticket in store order.
func (s *InventoryService) ListAll() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickets.All()
}

// Search matches tickets against one field. Name and category match by
// case-insensitive substring; id matches by exact numeric equality.
func (s *InventoryService) Search(term string, field models.SearchField) []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Ticket
	lower := strings.ToLower(term)
	for _, t := range s.tickets.All() {
		switch field {
		case models.FieldID:
			if id, err := strconv.Atoi(term); err == nil && t.ID == id {
				out = append(out, t)
			}
		case models.FieldName:
			if strings.Contains(strings.ToLower(t.Name), lower) {
				out = append(out, t)
			}
		case models.FieldCategory:
			if strings.Contains(strings.ToLower(t.Category), lower) {
				out = append(out, t)
			}
		}
	}
	return out
}

// SearchCategoryExact matches the category by case-insensitive equality
// rather than containment.
func (s *InventoryService) SearchCategoryExact(term string) []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Ticket
	for _, t := range s.tickets.All() {
		if strings.EqualFold(t.Category, term) {
			out = append(out, t)
		}
	}
	return out
}

// SearchAny matches a single keyword against ID, name and category at
// once, as the one-prompt search menu did.
func (s *InventoryService) SearchAny(term string) []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Ticket
	lower := strings.ToLower(term)
	id, idErr := strconv.Atoi(term)
	for _, t := range s.tickets.All() {
		if (idErr == nil && t.ID == id) ||
			strings.Contains(strings.ToLower(t.Name), lower) ||
			strings.Contains(strings.ToLower(t.Category), lower) {
			out = append(out, t)
		}
	}
	return out
}

// Update applies the non-nil fields of req to the ticket with the given
// ID. RefreshCreatedAt restarts the expiry clock.
func (s *InventoryService) Update(id int, req models.UpdateRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := req.Validate(); err != nil {
		s.track("update", "rejected")
		return err
	}

	i := s.tickets.IndexByID(id)
	if i < 0 {
		s.track("update", "not_found")
		return models.ErrNotFound
	}

	t := s.tickets.Get(i)
	if req.Name != nil {
		t.Name = truncate(*req.Name, models.MaxNameLen)
	}
	if req.Category != nil {
		t.Category = truncate(*req.Category, models.MaxCategoryLen)
	}
	if req.Price != nil {
		t.Price = *req.Price
	}
	if req.Stock != nil {
		t.Stock = *req.Stock
	}
	if req.RefreshCreatedAt {
		t.CreatedAt = s.now().Unix()
	}
	s.syncGauges()
	s.track("update", "ok")
	s.logger.Info("ticket updated", "id", id)
	return nil
}

// Delete removes the ticket with the given ID. The caller must pass an
// explicit confirmation; survivors keep their relative order.
func (s *InventoryService) Delete(id int, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !confirmed {
		s.track("delete", "not_confirmed")
		return models.ErrNotConfirmed
	}
	i := s.tickets.IndexByID(id)
	if i < 0 {
		s.track("delete", "not_found")
		return models.ErrNotFound
	}
	s.tickets.RemoveAt(i)
	s.syncGauges()
	s.track("delete", "ok")
	s.logger.Info("ticket deleted", "id", id)
	return nil
}

// Purchase decrements stock and records the transaction. The order is
// all-or-nothing: insufficient stock leaves everything unchanged. Both
// stores are saved after a successful purchase; a failed save is logged
// but does not roll back the mutation.
func (s *InventoryService) Purchase(id, quantity int) (models.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.tickets.IndexByID(id)
	if i < 0 {
		s.track("purchase", "not_found")
		return models.Receipt{}, models.ErrNotFound
	}
	if quantity <= 0 {
		s.track("purchase", "rejected")
		return models.Receipt{}, models.ErrInvalidQuantity
	}

	t := s.tickets.Get(i)
	if quantity > t.Stock {
		s.track("purchase", "insufficient_stock")
		return models.Receipt{}, &models.InsufficientStockError{
			TicketID:  id,
			Requested: quantity,
			Available: t.Stock,
		}
	}

	total := decimal.NewFromFloat(t.Price).Mul(decimal.NewFromInt(int64(quantity)))
	totalPrice, _ := total.Float64()

	t.Stock -= quantity

	receipt := models.Receipt{
		TicketID:       id,
		TicketName:     t.Name,
		TicketCategory: t.Category,
		Quantity:       quantity,
		UnitPrice:      t.Price,
		TotalPrice:     totalPrice,
		RemainingStock: t.Stock,
	}

	if s.purchases != nil {
		p := models.Purchase{
			ID:          s.purchases.NextID(),
			TicketID:    id,
			Quantity:    quantity,
			TotalPrice:  totalPrice,
			PurchasedAt: s.now().Unix(),
		}
		s.purchases.Append(p)
		receipt.PurchaseID = p.ID
	}

	if ref, err := utils.GenerateCode(4); err == nil {
		receipt.Reference = ref
	}

	if err := s.saveLocked(); err != nil {
		s.logger.Warn("save after purchase failed", "error", err)
	}

	s.syncGauges()
	s.track("purchase", "ok")
	s.logger.Info("purchase completed",
		"purchase_id", receipt.PurchaseID,
		"ticket_id", id,
		"quantity", quantity,
		"total", totalPrice,
	)
	return receipt, nil
}

// SortBy reorders the store in place. Ties do not keep their prior
// relative order; stability is not part of the contract.
func (s *InventoryService) SortBy(key models.SortKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := s.tickets.All()
	switch key {
	case models.SortPriceAsc:
		sort.Slice(tickets, func(i, j int) bool { return tickets[i].Price < tickets[j].Price })
	case models.SortPriceDesc:
		sort.Slice(tickets, func(i, j int) bool { return tickets[i].Price > tickets[j].Price })
	case models.SortNameAsc:
		sort.Slice(tickets, func(i, j int) bool { return tickets[i].Name < tickets[j].Name })
	default:
		return &models.ValidationError{Field: "sort_key", Reason: "unknown key"}
	}
	s.tickets.Replace(tickets)
	s.track("sort", "ok")
	return nil
}

func (s *InventoryService) track(operation, status string) {
	if s.monitor != nil {
		s.monitor.TrackOperation(operation, status)
	}
}

func (s *InventoryService) syncGauges() {
	if s.monitor == nil {
		return
	}
	stock := 0
	for _, t := range s.tickets.All() {
		stock += t.Stock
	}
	s.monitor.SetInventorySize(s.tickets.Len(), stock)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
