package entities

import "time"

// CostRecord is a single effective-dated cost observation for a catalog
// item. Records are immutable once created. An item's history is sparse and
// unordered, and may contain several records sharing one effective date.
type CostRecord struct {
	ItemID        ItemID
	EffectiveDate time.Time
	CostPrice     Cents
}
