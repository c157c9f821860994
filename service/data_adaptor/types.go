package data_adaptor

// Source tags for MarketInfo.
const (
	SourceCoinGecko     = "coingecko"
	SourceCoinMarketCap = "coinmarketcap"
)

// Ticker is one Binance USDT-M perpetual, symbol normalized to its base coin.
type Ticker struct {
	Symbol       string // base, USDT suffix trimmed (e.g. "1000PEPE")
	LookupSymbol string // base with a leading 1000 multiplier trimmed (e.g. "PEPE")
	LastPrice    float64
	Change24h    float64 // Binance 24h percent change
	QuoteVolume  float64 // 24h quote volume, USD
}

// MarketInfo is the per-symbol profile shape shared by CoinGecko and
// CoinMarketCap. Nil fields mean the source did not report the value.
type MarketInfo struct {
	Name      string
	FDV       *float64
	MarketCap *float64
	Change24h *float64
	Change30d *float64
	Source    string
}

// WindowLow is the minimum daily low inside the configured window.
type WindowLow struct {
	Price float64
	Date  string // YYYY-MM-DD, UTC open date of the lowest candle
}

// AccountBalance is one non-zero futures wallet balance.
type AccountBalance struct {
	Asset            string  `json:"asset"`
	Balance          float64 `json:"balance"`
	AvailableBalance float64 `json:"availableBalance"`
	UnrealizedProfit float64 `json:"unrealizedProfit"`
}

// Position is one open futures position. Amount is signed, positive long.
type Position struct {
	Symbol           string  `json:"symbol"`
	Amount           float64 `json:"positionAmt"`
	EntryPrice       float64 `json:"entryPrice"`
	MarkPrice        float64 `json:"markPrice"`
	UnrealizedProfit float64 `json:"unrealizedProfit"`
	LiquidationPrice float64 `json:"liquidationPrice"`
	Leverage         int     `json:"leverage"`
	MarginType       string  `json:"marginType"`
	IsolatedMargin   float64 `json:"isolatedMargin"`
	Notional         float64 `json:"notional"` // absolute value
	UpdateTime       int64   `json:"updateTime"`
}

// AccountTrade is one fill from the user trade history.
type AccountTrade struct {
	Symbol      string  `json:"symbol"`
	Side        string  `json:"side"` // BUY or SELL
	Price       float64 `json:"price"`
	Qty         float64 `json:"qty"`
	QuoteQty    float64 `json:"quoteQty"`
	RealizedPnl float64 `json:"realizedPnl"`
	Commission  float64 `json:"commission"`
	Time        int64   `json:"time"` // Unix ms
}

// Income is one account income record (funding fee, realized PnL, commission).
type Income struct {
	Symbol     string  `json:"symbol"`
	IncomeType string  `json:"incomeType"`
	Income     float64 `json:"income"`
	Asset      string  `json:"asset"`
	Time       int64   `json:"time"`
}

// CoinGecko /coins/markets response (partial)
type cgMarket struct {
	ID        string   `json:"id"`
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	MarketCap *float64 `json:"market_cap"`
	FDV       *float64 `json:"fully_diluted_valuation"`
	Change24h *float64 `json:"price_change_percentage_24h"`
	Change30d *float64 `json:"price_change_percentage_30d_in_currency"`
}

// CoinMarketCap /v1/cryptocurrency/listings/latest response (partial)
type cmcListings struct {
	Status cmcStatus `json:"status"`
	Data   []cmcCoin `json:"data"`
}

type cmcStatus struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

type cmcCoin struct {
	Symbol string              `json:"symbol"`
	Name   string              `json:"name"`
	Quote  map[string]cmcQuote `json:"quote"`
}

type cmcQuote struct {
	MarketCap *float64 `json:"market_cap"`
	FDV       *float64 `json:"fully_diluted_market_cap"`
	Change24h *float64 `json:"percent_change_24h"`
	Change30d *float64 `json:"percent_change_30d"`
}
