package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/dailydeck/internal/models"
)

var testAnchor = time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)

func generate90(symbol string, start, vol, drift float64) []models.PricePoint {
	return Generate(symbol, testAnchor, Params{
		StartPrice: start,
		Days:       90,
		Volatility: vol,
		Drift:      drift,
	})
}

func TestMulberry32_ReferenceSequence(t *testing.T) {
	// Pinned against the documented 32-bit mix; the division by 2^32 is
	// exact in float64, so these comparisons can be exact too.
	rng := newMulberry32(1)
	expected := []float64{
		0.6270739405881613,
		0.002735721180215478,
		0.5274470399599522,
		0.9810509674716741,
		0.9683778982143849,
	}
	for i, want := range expected {
		assert.Equal(t, want, rng.Float64(), "draw %d", i)
	}
}

func TestMulberry32_SymbolSeed(t *testing.T) {
	// Seed derived from the rolling hash of the symbol, no salt
	rng := newMulberry32(2408517) // HashString("NVDA")
	assert.InDelta(t, 0.945072531234473, rng.Float64(), 1e-15)
	assert.InDelta(t, 0.27704900060780346, rng.Float64(), 1e-15)
}

func TestGenerate_WellFormed(t *testing.T) {
	for _, symbol := range []string{"NVDA", "MSFT", "TSLA", "COIN", "BRK.B"} {
		series := generate90(symbol, 100, 0.02, 0.001)

		require.NotEmpty(t, series)
		for i, pt := range series {
			day, err := time.Parse("2006-01-02", pt.Date)
			require.NoError(t, err, "%s point %d", symbol, i)

			wd := day.Weekday()
			assert.NotEqual(t, time.Saturday, wd, "%s contains a Saturday", symbol)
			assert.NotEqual(t, time.Sunday, wd, "%s contains a Sunday", symbol)
			assert.Greater(t, pt.Price, 0.0, "%s price %d not positive", symbol, i)

			if i > 0 {
				assert.True(t, pt.Date > series[i-1].Date,
					"%s dates not strictly increasing at %d", symbol, i)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate90("NVDA", 580, 0.028, 0.0018)
	b := generate90("NVDA", 580, 0.028, 0.0018)
	assert.Equal(t, a, b)
}

func TestGenerate_WindowShape(t *testing.T) {
	// 90 calendar days ending Friday 2026-02-27 span exactly 65 trading days
	series := generate90("NVDA", 580, 0.028, 0.0018)
	assert.Len(t, series, 65)
	assert.Equal(t, "2025-12-01", series[0].Date)
	assert.Equal(t, "2026-02-27", series[len(series)-1].Date)
}

func TestGenerate_ReferenceWalk(t *testing.T) {
	// First step for NVDA: seed 2408517, u1=0.945072..., u2=0.277049...,
	// normal = sqrt(-2 ln u1) cos(2 pi u2), price = 580 * (1 + 0.0018 + 0.028*normal)
	series := generate90("NVDA", 580, 0.028, 0.0018)
	assert.InDelta(t, 580.12, series[0].Price, 0.01)

	msft := generate90("MSFT", 368, 0.014, 0.0006)
	assert.InDelta(t, 372.08, msft[0].Price, 0.01)
}

func TestGenerate_TwoDecimalPlaces(t *testing.T) {
	series := generate90("TSLA", 252, 0.038, 0.0015)
	for _, pt := range series {
		cents := pt.Price * 100
		assert.InDelta(t, cents, float64(int64(cents+0.5)), 1e-6,
			"price %v not rounded to 2dp", pt.Price)
	}
}

func TestSlice(t *testing.T) {
	series := generate90("NVDA", 580, 0.028, 0.0018)

	week := Slice(series, models.Timeframe1W)
	month := Slice(series, models.Timeframe1M)
	quarter := Slice(series, models.Timeframe3M)

	assert.Len(t, week, 5)
	assert.Len(t, month, 22)
	assert.Len(t, quarter, len(series))

	// All slices are suffixes of the full series
	assert.Equal(t, series[len(series)-5:], week)
	assert.Equal(t, series[len(series)-22:], month)
	assert.Equal(t, series, quarter)
}

func TestSlice_ShortSeries(t *testing.T) {
	short := []models.PricePoint{
		{Date: "2026-02-26", Price: 10},
		{Date: "2026-02-27", Price: 11},
	}
	assert.Equal(t, short, Slice(short, models.Timeframe1W))
	assert.Equal(t, short, Slice(short, models.Timeframe1M))
	assert.Equal(t, short, Slice(short, models.Timeframe3M))

	var empty []models.PricePoint
	assert.Empty(t, Slice(empty, models.Timeframe1W))
}

func TestRenderable(t *testing.T) {
	assert.False(t, Renderable(nil))
	assert.False(t, Renderable([]models.PricePoint{{Date: "2026-02-27", Price: 10}}))
	assert.True(t, Renderable([]models.PricePoint{
		{Date: "2026-02-26", Price: 10},
		{Date: "2026-02-27", Price: 11},
	}))
}

func TestSummarize(t *testing.T) {
	series := []models.PricePoint{
		{Date: "2026-02-23", Price: 100},
		{Date: "2026-02-24", Price: 102},
		{Date: "2026-02-25", Price: 101},
		{Date: "2026-02-26", Price: 105},
		{Date: "2026-02-27", Price: 110},
	}

	q := Summarize(series)
	assert.Equal(t, 110.0, q.Last)
	assert.Equal(t, 5.0, q.Change1D)
	assert.InDelta(t, 4.76, q.Change1DPercent, 0.001)
	// Series shorter than a week: the 1W window is the whole series
	assert.InDelta(t, 10.0, q.Change1WPercent, 0.001)
	assert.InDelta(t, 10.0, q.Change3MPercent, 0.001)
}

func TestSummarize_TooShort(t *testing.T) {
	assert.Equal(t, models.Quote{}, Summarize(nil))
	assert.Equal(t, models.Quote{}, Summarize([]models.PricePoint{{Date: "2026-02-27", Price: 10}}))
}
