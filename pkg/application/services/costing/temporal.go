package costing

import (
	"time"

	"github.com/makerops/costing/pkg/domain/entities"
)

// FindEffectiveCost resolves the cost record effective at target: the
// qualifying record with the greatest EffectiveDate, where a record
// qualifies when its date is not after target. For dates past the last
// known record this holds the last value. Returns nil when nothing
// qualifies; the caller falls back to the catalog price.
//
// Records with a zero EffectiveDate never qualify and are silently skipped.
// When two qualifying records share an effective date, the one appearing
// later in history wins.
func FindEffectiveCost(history []entities.CostRecord, target time.Time) *entities.CostRecord {
	var best *entities.CostRecord

	for i := range history {
		rec := &history[i]
		if rec.EffectiveDate.IsZero() || rec.EffectiveDate.After(target) {
			continue
		}
		if best == nil || !rec.EffectiveDate.Before(best.EffectiveDate) {
			best = rec
		}
	}

	return best
}
