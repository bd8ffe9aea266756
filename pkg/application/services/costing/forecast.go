package costing

import (
	"math"
	"time"

	"github.com/makerops/costing/pkg/domain/entities"
)

// ForecastCostAtDate fits a linear trend to an item's cost history and
// evaluates the fitted line at target. Needs at least two records, else nil
// (a normal outcome for thin histories, not an error). The forecasted cost
// is rounded to whole cents and floored at zero; confidence is the R² of
// the fit, with no additional damping.
func ForecastCostAtDate(history []entities.CostRecord, target time.Time) *entities.ForecastResult {
	// Zero-dated records carry no usable x-coordinate; skip them the same
	// way effective-date resolution does
	points := make([]RegressionPoint, 0, len(history))
	for _, rec := range history {
		if rec.EffectiveDate.IsZero() {
			continue
		}
		points = append(points, TimePoint(rec.EffectiveDate, float64(rec.CostPrice)))
	}
	if len(points) < 2 {
		return nil
	}

	trend := CalculateLinearTrend(points)
	if trend == nil {
		return nil
	}

	raw := trend.Slope*float64(target.UnixMilli()) + trend.Intercept
	cost := entities.Cents(math.Round(raw))
	if cost < 0 {
		cost = 0
	}

	return &entities.ForecastResult{ForecastedCost: cost, Confidence: trend.R2}
}
