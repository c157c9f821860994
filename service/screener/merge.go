package screener

import (
	"sort"

	"github.com/leongcheekhan100/hk-screener/service/data_adaptor"
)

// FirstNonNil returns a when it is set, otherwise b. It is the whole of the
// cross-source precedence rule: the primary source wins, the secondary fills.
func FirstNonNil(a, b *float64) *float64 {
	if a != nil {
		return a
	}
	return b
}

// MergeMarketData combines the CoinGecko and CoinMarketCap profiles per
// symbol. CoinGecko takes precedence field by field; symbols only known to
// CoinMarketCap are carried over whole. Symbols missing from both simply stay
// absent, which the FDV filter later treats as below threshold.
func MergeMarketData(cg, cmc map[string]data_adaptor.MarketInfo) map[string]data_adaptor.MarketInfo {
	merged := make(map[string]data_adaptor.MarketInfo, len(cg)+len(cmc))

	for symbol, info := range cg {
		merged[symbol] = info
	}

	for symbol, cmcInfo := range cmc {
		existing, ok := merged[symbol]
		if !ok {
			merged[symbol] = cmcInfo
			continue
		}
		existing.FDV = FirstNonNil(existing.FDV, cmcInfo.FDV)
		existing.MarketCap = FirstNonNil(existing.MarketCap, cmcInfo.MarketCap)
		existing.Change24h = FirstNonNil(existing.Change24h, cmcInfo.Change24h)
		existing.Change30d = FirstNonNil(existing.Change30d, cmcInfo.Change30d)
		merged[symbol] = existing
	}

	return merged
}

// BuildRows joins the Binance ticker universe against the merged market
// profiles and applies the FDV filter (strictly greater than threshold, nil
// counts as below). Ticker order is preserved so later stable sorting keeps
// fetch order on ties.
func BuildRows(tickers []data_adaptor.Ticker, market map[string]data_adaptor.MarketInfo, fdvThreshold float64) []CoinRow {
	rows := make([]CoinRow, 0, len(tickers))

	for _, t := range tickers {
		info, ok := market[t.LookupSymbol]
		if !ok || info.FDV == nil || *info.FDV <= fdvThreshold {
			continue
		}

		marketCap := 0.0
		if info.MarketCap != nil {
			marketCap = *info.MarketCap
		}

		// Binance 24h change is primary; a flat zero falls back to the
		// aggregator value, which covers freshly listed pairs.
		change24h := t.Change24h
		if change24h == 0 && info.Change24h != nil {
			change24h = *info.Change24h
		}

		change30d := 0.0
		if info.Change30d != nil {
			change30d = *info.Change30d
		}

		rows = append(rows, CoinRow{
			Symbol:     t.Symbol,
			Price:      t.LastPrice,
			MarketCapM: marketCap / 1e6,
			FDVM:       *info.FDV / 1e6,
			VolumeM:    t.QuoteVolume / 1e6,
			Change24h:  change24h,
			Change30d:  change30d,
		})
	}

	return rows
}

// SortByChange30d orders rows by 30-day change descending, keeping fetch
// order on ties.
func SortByChange30d(rows []CoinRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Change30d > rows[j].Change30d
	})
}
