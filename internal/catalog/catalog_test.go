package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/dailydeck/internal/models"
)

func TestLoadCards(t *testing.T) {
	cards, err := LoadCards()
	require.NoError(t, err)
	require.NotZero(t, cards.Size())

	seen := map[string]bool{}
	for i := 0; i < cards.Size(); i++ {
		card := cards.At(i)
		assert.NotEmpty(t, card.ID)
		assert.NotEmpty(t, card.Title)
		assert.NotEmpty(t, card.Teaser)
		assert.NotEmpty(t, card.Explanation)
		assert.Contains(t, []models.Difficulty{
			models.DifficultyBeginner,
			models.DifficultyIntermediate,
			models.DifficultyAdvanced,
		}, card.Difficulty)
		assert.False(t, seen[card.ID], "duplicate id %s", card.ID)
		seen[card.ID] = true
		assert.Equal(t, card.ID, cards.IDAt(i))
	}
}

func TestCards_ByID(t *testing.T) {
	cards, err := LoadCards()
	require.NoError(t, err)

	first := cards.At(0)
	got, ok := cards.ByID(first.ID)
	require.True(t, ok)
	assert.Equal(t, first, got)

	_, ok = cards.ByID("no-such-card")
	assert.False(t, ok)
}

func TestLoadStocks(t *testing.T) {
	stocks, err := LoadStocks()
	require.NoError(t, err)
	require.GreaterOrEqual(t, stocks.Size(), 2,
		"dual-channel selection needs at least two stocks")

	for i := 0; i < stocks.Size(); i++ {
		stock := stocks.At(i)
		assert.NotEmpty(t, stock.Ticker)
		assert.NotEmpty(t, stock.CompanyName)
		assert.Greater(t, stock.StartPrice, 0.0)
		assert.Greater(t, stock.Volatility, 0.0)
		assert.Equal(t, stock.Ticker, stocks.IDAt(i))
	}
}

func TestStocks_ByTicker(t *testing.T) {
	stocks, err := LoadStocks()
	require.NoError(t, err)

	nvda, ok := stocks.ByTicker("NVDA")
	require.True(t, ok)
	assert.Equal(t, "NVIDIA Corporation", nvda.CompanyName)

	_, ok = stocks.ByTicker("ZZZZ")
	assert.False(t, ok)
}
