package entities

import "github.com/shopspring/decimal"

// LineKind represents the type of a cost breakdown line
type LineKind int

const (
	LinePart LineKind = iota
	LineFastener
	LineLabour
)

// String method for LineKind enum
func (k LineKind) String() string {
	switch k {
	case LinePart:
		return "Part"
	case LineFastener:
		return "Fastener"
	case LineLabour:
		return "Labour"
	default:
		return "Unknown"
	}
}

// CostBreakdownLine is one line of a product cost roll-up. For labour lines
// UnitCost is the hourly rate and Quantity the hours charged.
type CostBreakdownLine struct {
	ComponentID ItemID
	Kind        LineKind
	UnitCost    Cents
	Quantity    decimal.Decimal
	Subtotal    Cents
}
