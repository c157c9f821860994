package positions

import (
	"math"
	"sort"

	"github.com/leongcheekhan100/hk-screener/service/data_adaptor"
)

// PositionSide labels a signed position amount.
func PositionSide(amount float64) string {
	if amount > 0 {
		return "LONG"
	}
	return "SHORT"
}

// NetSide labels a net notional exposure.
func NetSide(net float64) string {
	switch {
	case net > 0:
		return "LONG"
	case net < 0:
		return "SHORT"
	default:
		return "NEUTRAL"
	}
}

// OpenTime estimates when the current position was opened by walking the
// trade history newest-first and accumulating same-direction quantity until
// it covers the position size (with a 1% tolerance for fee rounding). Falls
// back to the oldest known trade; returns 0 with no trades at all.
func OpenTime(trades []data_adaptor.AccountTrade, positionAmt float64) int64 {
	if len(trades) == 0 {
		return 0
	}

	sorted := make([]data_adaptor.AccountTrade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time > sorted[j].Time
	})

	side := "BUY"
	if positionAmt < 0 {
		side = "SELL"
	}
	target := math.Abs(positionAmt)

	cumulative := 0.0
	for _, trade := range sorted {
		if trade.Side != side {
			continue
		}
		cumulative += trade.Qty
		if cumulative >= target*0.99 {
			return trade.Time
		}
	}

	return sorted[len(sorted)-1].Time
}

// SumFunding totals a funding-fee income series.
func SumFunding(fees []data_adaptor.Income) (total float64, count int) {
	for _, f := range fees {
		total += f.Income
		count++
	}
	return total, count
}

// Summarize aggregates the tracked positions into the exposure summary.
func Summarize(tracked []TrackedPosition) ExposureSummary {
	var sum ExposureSummary
	sum.PositionCount = len(tracked)
	for _, p := range tracked {
		if p.Side == "LONG" {
			sum.TotalLongNotional += p.Notional
		} else {
			sum.TotalShortNotional += p.Notional
		}
		sum.TotalUnrealizedPnl += p.UnrealizedProfit
		sum.TotalFunding += p.TotalFunding
		sum.TotalPnl += p.TotalPnl
	}
	sum.NetNotional = sum.TotalLongNotional - sum.TotalShortNotional
	return sum
}
