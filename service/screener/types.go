package screener

import "time"

// CoinRow is one merged row of the report. JSON tags match the field names
// used by the dashboard page and the embeddable script fragment.
type CoinRow struct {
	Symbol     string   `json:"symbol"`
	Price      float64  `json:"price"`
	MarketCapM float64  `json:"mcap"`   // millions USD, 0 when unknown
	FDVM       float64  `json:"fdv"`    // millions USD
	VolumeM    float64  `json:"volume"` // 24h quote volume, millions USD
	Change24h  float64  `json:"d1"`
	Change30d  float64  `json:"d30"`
	QuarterLow *float64 `json:"q4Low"`
	LowDate    *string  `json:"lowDate"`
	BouncePct  *float64 `json:"bounce"`
	IsNew      bool     `json:"isNew"`
}

// Report is the outcome of one screener run.
type Report struct {
	GeneratedAt time.Time `json:"generatedAt"`
	NewCoins    []string  `json:"newCoins"`
	Rows        []CoinRow `json:"rows"`
}
