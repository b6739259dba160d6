// Package catalog loads the static content catalogs. Content is authored as
// YAML, embedded in the binary, validated on load and immutable afterwards.
// A non-empty catalog is a hard precondition for daily selection, so loading
// fails rather than returning an empty catalog.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ternarybob/dailydeck/internal/models"
)

//go:embed data/cards.yaml
var cardsYAML []byte

//go:embed data/stocks.yaml
var stocksYAML []byte

// Cards is the immutable knowledge-card catalog
type Cards struct {
	items []models.KnowledgeCard
	byID  map[string]int
}

// LoadCards parses and validates the embedded knowledge catalog
func LoadCards() (*Cards, error) {
	var doc struct {
		Cards []models.KnowledgeCard `yaml:"cards"`
	}
	if err := yaml.Unmarshal(cardsYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse card catalog: %w", err)
	}
	if len(doc.Cards) == 0 {
		return nil, fmt.Errorf("card catalog is empty")
	}

	validate := validator.New()
	byID := make(map[string]int, len(doc.Cards))
	for i, card := range doc.Cards {
		if err := validate.Struct(card); err != nil {
			return nil, fmt.Errorf("invalid card %q: %w", card.ID, err)
		}
		if _, exists := byID[card.ID]; exists {
			return nil, fmt.Errorf("duplicate card id %q", card.ID)
		}
		byID[card.ID] = i
	}

	return &Cards{items: doc.Cards, byID: byID}, nil
}

// Size returns the number of cards
func (c *Cards) Size() int { return len(c.items) }

// At returns the card at index i
func (c *Cards) At(i int) models.KnowledgeCard { return c.items[i] }

// IDAt returns the id of the card at index i
func (c *Cards) IDAt(i int) string { return c.items[i].ID }

// ByID looks a card up by id
func (c *Cards) ByID(id string) (models.KnowledgeCard, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.KnowledgeCard{}, false
	}
	return c.items[i], true
}

// Stocks is the immutable stock catalog
type Stocks struct {
	items    []models.Stock
	byTicker map[string]int
}

// LoadStocks parses and validates the embedded stock catalog
func LoadStocks() (*Stocks, error) {
	var doc struct {
		Stocks []models.Stock `yaml:"stocks"`
	}
	if err := yaml.Unmarshal(stocksYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse stock catalog: %w", err)
	}
	if len(doc.Stocks) == 0 {
		return nil, fmt.Errorf("stock catalog is empty")
	}

	validate := validator.New()
	byTicker := make(map[string]int, len(doc.Stocks))
	for i, stock := range doc.Stocks {
		if err := validate.Struct(stock); err != nil {
			return nil, fmt.Errorf("invalid stock %q: %w", stock.Ticker, err)
		}
		if _, exists := byTicker[stock.Ticker]; exists {
			return nil, fmt.Errorf("duplicate ticker %q", stock.Ticker)
		}
		byTicker[stock.Ticker] = i
	}

	return &Stocks{items: doc.Stocks, byTicker: byTicker}, nil
}

// Size returns the number of stocks
func (s *Stocks) Size() int { return len(s.items) }

// At returns the stock at index i
func (s *Stocks) At(i int) models.Stock { return s.items[i] }

// IDAt returns the ticker of the stock at index i
func (s *Stocks) IDAt(i int) string { return s.items[i].Ticker }

// ByTicker looks a stock up by ticker
func (s *Stocks) ByTicker(ticker string) (models.Stock, bool) {
	i, ok := s.byTicker[ticker]
	if !ok {
		return models.Stock{}, false
	}
	return s.items[i], true
}
