package positions

import (
	"time"

	"github.com/leongcheekhan100/hk-screener/service/data_adaptor"
)

// TrackedPosition is an open position enriched with its derived lifecycle
// metrics. JSON tags match the dashboard page's field names.
type TrackedPosition struct {
	data_adaptor.Position
	Side         string  `json:"side"` // LONG or SHORT
	OpenTime     int64   `json:"openTime"`     // Unix ms, 0 when undeterminable
	TotalFunding float64 `json:"totalFunding"` // funding fees since OpenTime, signed
	FundingCount int     `json:"fundingCount"`
	TotalPnl     float64 `json:"totalPnl"` // unrealized + funding
}

// AccountSummary is the USDT wallet view of the account.
type AccountSummary struct {
	Balance          float64 `json:"balance"`
	AvailableBalance float64 `json:"availableBalance"`
	UnrealizedProfit float64 `json:"unrealizedProfit"`
}

// ExposureSummary aggregates notional sizing across all open positions.
type ExposureSummary struct {
	TotalLongNotional  float64 `json:"totalLongNotional"`
	TotalShortNotional float64 `json:"totalShortNotional"`
	NetNotional        float64 `json:"netNotional"`
	TotalUnrealizedPnl float64 `json:"totalUnrealizedPnl"`
	TotalFunding       float64 `json:"totalFunding"`
	TotalPnl           float64 `json:"totalPnl"`
	PositionCount      int     `json:"positionCount"`
}

// PositionReport is the outcome of one tracker run; it is also the dashboard
// JSON document.
type PositionReport struct {
	GeneratedAt   time.Time                   `json:"reportTime"`
	Account       AccountSummary              `json:"account"`
	Summary       ExposureSummary             `json:"summary"`
	Positions     []TrackedPosition           `json:"positions"`
	RecentTrades  []data_adaptor.AccountTrade `json:"recentTrades"`
	IncomeHistory []data_adaptor.Income       `json:"incomeHistory"`
}
