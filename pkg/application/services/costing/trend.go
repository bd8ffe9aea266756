package costing

import (
	"time"

	"github.com/makerops/costing/pkg/domain/entities"
)

// RegressionPoint is one (x, y) observation for trend fitting. X must be on
// a linear numeric scale; cost observations use Unix millisecond timestamps,
// which puts the fitted slope in cents per millisecond.
type RegressionPoint struct {
	X float64
	Y float64
}

// TimePoint builds a regression point from an instant and a value
func TimePoint(t time.Time, y float64) RegressionPoint {
	return RegressionPoint{X: float64(t.UnixMilli()), Y: y}
}

// CalculateLinearTrend fits an ordinary least-squares line to the points.
// Returns nil for fewer than two points. When all x-values coincide the
// slope is zero; when all y-values coincide the fit is perfect (R² = 1 by
// convention rather than 0/0). R² is clamped into [0, 1].
func CalculateLinearTrend(points []RegressionPoint) *entities.TrendModel {
	if len(points) < 2 {
		return nil
	}

	n := float64(len(points))
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	meanX := sumX / n
	meanY := sumY / n

	var sxx, sxy, syy float64
	for _, p := range points {
		dx := p.X - meanX
		dy := p.Y - meanY
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}

	slope := 0.0
	if sxx != 0 {
		slope = sxy / sxx
	}
	intercept := meanY - slope*meanX

	r2 := 1.0
	if syy != 0 {
		var ssResidual float64
		for _, p := range points {
			residual := p.Y - (slope*p.X + intercept)
			ssResidual += residual * residual
		}
		r2 = 1 - ssResidual/syy
	}
	if r2 < 0 {
		r2 = 0
	} else if r2 > 1 {
		r2 = 1
	}

	return &entities.TrendModel{Slope: slope, Intercept: intercept, R2: r2}
}
