package services

import (
	"ticket-inventory/models"
)

// SweepExpired scans every ticket against the TTL and applies the chosen
// policy. It runs once at startup right after Load and can be re-invoked
// from the menu.
//
// Under ExpiryDelete, expired tickets are removed with stable compaction
// and the store is saved if anything was removed. Under ExpiryZeroStock,
// expired tickets stay in the store but their stock is forced to zero;
// tickets already at zero are left untouched and not re-reported, and no
// save is triggered.
func (s *InventoryService) SweepExpired(policy models.ExpiryPolicy) (models.SweepReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := models.SweepReport{
		Policy:  policy,
		Scanned: s.tickets.Len(),
	}
	now := s.now()

	switch policy {
	case models.ExpiryDelete:
		i := 0
		for i < s.tickets.Len() {
			t := s.tickets.Get(i)
			if t.Expired(now, s.ttl) {
				report.Removed = append(report.Removed, t.ID)
				s.logger.Info("expired ticket removed", "id", t.ID, "name", t.Name)
				s.tickets.RemoveAt(i)
				continue
			}
			i++
		}
		if len(report.Removed) > 0 {
			if err := s.tickets.Save(); err != nil {
				s.logger.Warn("save after expiry sweep failed", "error", err)
			}
		}

	case models.ExpiryZeroStock:
		for i := 0; i < s.tickets.Len(); i++ {
			t := s.tickets.Get(i)
			if t.Expired(now, s.ttl) && t.Stock > 0 {
				t.Stock = 0
				report.Zeroed = append(report.Zeroed, t.ID)
				s.logger.Info("expired ticket zero-stocked", "id", t.ID, "name", t.Name)
			}
		}

	default:
		return report, &models.ValidationError{Field: "expiry_policy", Reason: "unknown policy"}
	}

	if s.monitor != nil {
		s.monitor.TrackSweep(len(report.Removed), len(report.Zeroed))
	}
	s.syncGauges()
	return report, nil
}
