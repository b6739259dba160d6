package models

// RiskLevel classifies a stock pick for onboarding-level filtering
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Timeframe selects a suffix slice of a price series for charting
type Timeframe string

const (
	Timeframe1W Timeframe = "1W"
	Timeframe1M Timeframe = "1M"
	Timeframe3M Timeframe = "3M"
)

// Timeframes enumerates the selectable chart timeframes in display order
var Timeframes = []Timeframe{Timeframe1W, Timeframe1M, Timeframe3M}

// PricePoint is a single trading-day closing price. Series are ordered by
// date ascending with weekends excluded and no duplicates.
type PricePoint struct {
	Date  string  `json:"date"` // ISO date YYYY-MM-DD
	Price float64 `json:"price"`
}

// Quote summarizes the tail of a price series for display: last price plus
// absolute and percentage changes over the standard timeframes.
type Quote struct {
	Last            float64 `json:"last"`
	Change1D        float64 `json:"change1D"`
	Change1DPercent float64 `json:"change1DPercent"`
	Change1WPercent float64 `json:"change1WPercent"`
	Change1MPercent float64 `json:"change1MPercent"`
	Change3MPercent float64 `json:"change3MPercent"`
}

// InstitutionalHolder is a single line of a stock's institutional ownership
type InstitutionalHolder struct {
	Name           string  `yaml:"name" json:"name"`
	HoldingPercent float64 `yaml:"holding_percent" json:"holdingPercent"`
	SharesHeld     int64   `yaml:"shares_held" json:"sharesHeld"`
}

// ProprietaryScore is the 0-100 composite score shown on the proprietary card
type ProprietaryScore struct {
	Total        int `yaml:"total" json:"total" validate:"min=0,max=100"`
	Momentum     int `yaml:"momentum" json:"momentum"`
	Volatility   int `yaml:"volatility" json:"volatility"`
	Fundamentals int `yaml:"fundamentals" json:"fundamentals"`
	Trend        int `yaml:"trend" json:"trend"`
	Sentiment    int `yaml:"sentiment" json:"sentiment"`
}

// Stock is an immutable content unit in the stock catalog. Price history is
// not stored here; it is generated deterministically from Ticker plus the
// walk parameters below.
type Stock struct {
	Ticker      string    `yaml:"ticker" json:"ticker" validate:"required"`
	CompanyName string    `yaml:"company_name" json:"companyName" validate:"required"`
	Sector      string    `yaml:"sector" json:"sector" validate:"required"`
	Industry    string    `yaml:"industry" json:"industry"`
	Description string    `yaml:"description" json:"description"`
	RiskLevel   RiskLevel `yaml:"risk_level" json:"riskLevel" validate:"oneof=low medium high"`

	// Seeded random-walk parameters for the synthetic price series
	StartPrice float64 `yaml:"start_price" json:"startPrice" validate:"gt=0"`
	Volatility float64 `yaml:"volatility" json:"volatility" validate:"gt=0"`
	Drift      float64 `yaml:"drift" json:"drift"`

	MarketCap float64 `yaml:"market_cap" json:"marketCap"` // billions
	PERatio   float64 `yaml:"pe_ratio" json:"peRatio"`

	ProprietaryScore     ProprietaryScore      `yaml:"proprietary_score" json:"proprietaryScore"`
	InstitutionalHolders []InstitutionalHolder `yaml:"institutional_holders" json:"institutionalHolders"`

	WhyProprietary   string   `yaml:"why_proprietary" json:"whyRecommendedProprietary"`
	WhyInstitutional string   `yaml:"why_institutional" json:"whyRecommendedInstitutional"`
	Tags             []string `yaml:"tags" json:"tags"`
	LogoInitials     string   `yaml:"logo_initials" json:"logoInitials"`
	AccentColor      string   `yaml:"accent_color" json:"accentColor" validate:"omitempty,hexcolor"`
}
