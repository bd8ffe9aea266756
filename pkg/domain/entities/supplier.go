package entities

import "time"

// SupplierQuote is a dated price offered by a named supplier for an item
type SupplierQuote struct {
	ItemID        ItemID
	Supplier      string
	CostPrice     Cents
	EffectiveDate time.Time
}

// SupplierPrice is the result of a lowest-price lookup: the winning supplier
// and its price.
type SupplierPrice struct {
	Supplier  string
	CostPrice Cents
}
