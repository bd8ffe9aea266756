package dto

import (
	"time"

	"github.com/makerops/costing/pkg/domain/entities"
)

// ProductCost contains the complete output of a product cost roll-up
type ProductCost struct {
	ProductID entities.ItemID
	AsOf      time.Time
	TotalCost entities.Cents
	Breakdown []entities.CostBreakdownLine
}

// Append adds a breakdown line, keeping TotalCost equal to the sum of all
// line subtotals.
func (p *ProductCost) Append(line entities.CostBreakdownLine) {
	p.Breakdown = append(p.Breakdown, line)
	p.TotalCost += line.Subtotal
}
