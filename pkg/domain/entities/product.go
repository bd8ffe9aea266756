package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents a sellable assembly: a BOM owner plus the labour time
// required to build one unit.
type Product struct {
	ID            ItemID
	Description   string
	LabourHours   int
	LabourMinutes int
}

// NewProduct creates a validated Product
func NewProduct(id ItemID, description string, labourHours, labourMinutes int) (*Product, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("product id cannot be empty")
	}
	if labourHours < 0 {
		return nil, fmt.Errorf("labour hours cannot be negative, got %d", labourHours)
	}
	if labourMinutes < 0 || labourMinutes > 59 {
		return nil, fmt.Errorf("labour minutes must be between 0 and 59, got %d", labourMinutes)
	}

	return &Product{
		ID:            id,
		Description:   description,
		LabourHours:   labourHours,
		LabourMinutes: labourMinutes,
	}, nil
}

// TotalLabourMinutes returns the build time for one unit in minutes
func (p *Product) TotalLabourMinutes() int {
	return p.LabourHours*60 + p.LabourMinutes
}

// HasLabour reports whether any labour time is recorded for the product
func (p *Product) HasLabour() bool {
	return p.LabourHours > 0 || p.LabourMinutes > 0
}

// LabourCost computes the labour charge for one unit at the given hourly
// rate: round((minutes/60) * rate), half away from zero.
func (p *Product) LabourCost(ratePerHour Cents) Cents {
	minutes := decimal.NewFromInt(int64(p.TotalLabourMinutes()))
	rate := decimal.NewFromInt(int64(ratePerHour))
	cost := minutes.Mul(rate).Div(decimal.NewFromInt(60))
	return Cents(cost.Round(0).IntPart())
}
