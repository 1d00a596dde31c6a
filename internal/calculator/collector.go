package calculator

import (
	"errors"
	"fmt"

	"github.com/united77/cricfees/internal/models"
)

var (
	// ErrInvalidCollector indicates the chosen collector is not eligible:
	// not a core member, not selected for the match, or unknown entirely.
	ErrInvalidCollector = errors.New("invalid collector")
)

// CollectorReturn computes the refund owed to the player collecting all
// payments for a match: the total fee minus the collector's own share.
//
// This is a read-time projection. Choosing a collector never changes the
// ledger amounts, only the "pay to" labels rendered around them, and only
// one collector can be active at a time (the caller holds a nullable ID and
// replaces it wholesale).
func CollectorReturn(m *models.Match, collectorID string, roster []models.Player) (float64, error) {
	payment := m.Payment(collectorID)
	if payment == nil {
		return 0, fmt.Errorf("%w: %q is not part of this match", ErrInvalidCollector, collectorID)
	}
	for _, p := range roster {
		if p.ID != collectorID {
			continue
		}
		if p.Category != models.CategoryCore {
			return 0, fmt.Errorf("%w: %q must be a core member", ErrInvalidCollector, p.Name)
		}
		return m.TotalFees - payment.Amount, nil
	}
	return 0, fmt.Errorf("%w: unknown player id %q", ErrInvalidCollector, collectorID)
}
