package entities

// TrendModel is a fitted linear cost trend. It is derived, never persisted.
// Slope is in cents per millisecond because regression x-values are Unix
// millisecond timestamps; the same scale must be used when evaluating the
// fitted line.
type TrendModel struct {
	Slope     float64
	Intercept float64
	R2        float64 // clamped to [0, 1]
}

// ForecastResult is a predicted future cost with the goodness-of-fit of the
// underlying trend as its confidence.
type ForecastResult struct {
	ForecastedCost Cents   // never negative
	Confidence     float64 // clamped to [0, 1]
}
