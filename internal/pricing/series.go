// Package pricing generates deterministic synthetic price history. Each
// symbol seeds a pseudo-random walk from a string hash, so the same symbol
// and parameters always produce the same series without any stored data.
package pricing

import (
	"math"
	"time"

	"github.com/ternarybob/dailydeck/internal/common"
	"github.com/ternarybob/dailydeck/internal/models"
	"github.com/ternarybob/dailydeck/internal/selection"
)

// Timeframe suffix lengths in trading days
const (
	pointsPerWeek  = 5
	pointsPerMonth = 22
)

// MinRenderablePoints is the smallest series a chart consumer can draw.
// Shorter series are "not renderable", not an error.
const MinRenderablePoints = 2

// Params are the walk parameters for one symbol
type Params struct {
	StartPrice float64 // price at the start of the window, > 0
	Days       int     // calendar days in the window, weekends excluded from output
	Volatility float64 // per-day volatility applied to the normal deviate
	Drift      float64 // per-day deterministic return component
}

// Generate produces the price series for symbol, walking backwards Days
// calendar days from the anchor end date and skipping Saturdays and Sundays.
// For each trading day two uniform draws are converted to an approximately
// normal deviate via the Box-Muller transform, the price is updated by
// (1 + drift + volatility*normal) and rounded to 2 decimal places. Output is
// chronological and deterministic for fixed inputs; its length is the count
// of non-weekend days in the window, not Days itself.
func Generate(symbol string, anchor time.Time, p Params) []models.PricePoint {
	rng := newMulberry32(uint32(selection.HashString(symbol)))

	start := anchor.AddDate(0, 0, -(p.Days - 1))
	price := p.StartPrice
	points := make([]models.PricePoint, 0, p.Days)

	for i := 0; i < p.Days; i++ {
		day := start.AddDate(0, 0, i)
		if common.IsWeekend(day) {
			continue
		}

		u1 := rng.Float64()
		u2 := rng.Float64()
		normal := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

		dailyReturn := p.Drift + p.Volatility*normal
		price = price * (1 + dailyReturn)

		points = append(points, models.PricePoint{
			Date:  common.FormatISODate(day),
			Price: math.Round(price*100) / 100,
		})
	}

	return points
}

// Slice returns the suffix of series for the requested timeframe: the last 5
// points for 1W, the last 22 for 1M, the entire series for 3M. This is a
// suffix slice, not a date-range filter, and tolerates series shorter than
// the requested window by returning what is available.
func Slice(series []models.PricePoint, tf models.Timeframe) []models.PricePoint {
	switch tf {
	case models.Timeframe1W:
		return suffix(series, pointsPerWeek)
	case models.Timeframe1M:
		return suffix(series, pointsPerMonth)
	default:
		return series
	}
}

func suffix(series []models.PricePoint, n int) []models.PricePoint {
	if len(series) <= n {
		return series
	}
	return series[len(series)-n:]
}

// Renderable reports whether a chart consumer can draw the series
func Renderable(series []models.PricePoint) bool {
	return len(series) >= MinRenderablePoints
}

// Summarize derives display figures from the tail of a series: last price
// plus absolute 1-day change and percentage changes over the standard
// timeframes. Returns a zero Quote for series too short to compare.
func Summarize(series []models.PricePoint) models.Quote {
	n := len(series)
	if n < MinRenderablePoints {
		return models.Quote{}
	}

	last := series[n-1].Price
	prev := series[n-2].Price

	q := models.Quote{
		Last:            last,
		Change1D:        round2(last - prev),
		Change1DPercent: pctChange(prev, last),
	}
	q.Change1WPercent = pctChange(firstOfSuffix(series, pointsPerWeek), last)
	q.Change1MPercent = pctChange(firstOfSuffix(series, pointsPerMonth), last)
	q.Change3MPercent = pctChange(series[0].Price, last)
	return q
}

func firstOfSuffix(series []models.PricePoint, n int) float64 {
	s := suffix(series, n)
	return s[0].Price
}

func pctChange(from, to float64) float64 {
	if from == 0 {
		return 0
	}
	return round2((to - from) / from * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
