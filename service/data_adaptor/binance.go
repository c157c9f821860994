package data_adaptor

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2/futures"

	"github.com/leongcheekhan100/hk-screener/config"
)

// BinanceClient wraps the go-binance futures client for the two public
// endpoints the screener needs: the 24hr ticker and daily klines.
type BinanceClient struct {
	c *futures.Client
}

func NewBinanceClient(cfg config.BinanceConfig) *BinanceClient {
	c := futures.NewClient("", "")
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	c.UserAgent = userAgent
	c.HTTPClient = NewHTTPClient(cfg.Timeout)
	return &BinanceClient{c: c}
}

// PerpTickers returns the USDT-M perpetual universe. Quarterly contracts and
// other underscore-suffixed variants are excluded; the USDT suffix is trimmed
// off the returned symbol and a leading "1000" multiplier is additionally
// trimmed off the lookup symbol so it matches CoinGecko/CoinMarketCap naming.
func (b *BinanceClient) PerpTickers(ctx context.Context) ([]Ticker, error) {
	stats, err := b.c.NewListPriceChangeStatsService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance 24hr ticker: %w", err)
	}

	tickers := make([]Ticker, 0, len(stats))
	for _, s := range stats {
		if !strings.HasSuffix(s.Symbol, "USDT") || strings.Contains(s.Symbol, "_") {
			continue
		}
		base := strings.TrimSuffix(s.Symbol, "USDT")

		lookup := base
		if strings.HasPrefix(base, "1000") {
			lookup = base[4:]
		}

		price, err := strconv.ParseFloat(s.LastPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s lastPrice %q: %w", s.Symbol, s.LastPrice, err)
		}
		change, err := strconv.ParseFloat(s.PriceChangePercent, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s priceChangePercent %q: %w", s.Symbol, s.PriceChangePercent, err)
		}
		volume, err := strconv.ParseFloat(s.QuoteVolume, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s quoteVolume %q: %w", s.Symbol, s.QuoteVolume, err)
		}

		tickers = append(tickers, Ticker{
			Symbol:       base,
			LookupSymbol: lookup,
			LastPrice:    price,
			Change24h:    change,
			QuoteVolume:  volume,
		})
	}
	return tickers, nil
}

// QuarterLow fetches the daily candles for base+"USDT" inside [start, end] and
// returns the minimum low with its date. A symbol with no candles in the
// window (listed later, delisted) yields (nil, nil).
func (b *BinanceClient) QuarterLow(ctx context.Context, base string, start, end time.Time) (*WindowLow, error) {
	klines, err := b.c.NewKlinesService().
		Symbol(base + "USDT").
		Interval("1d").
		StartTime(start.UTC().UnixMilli()).
		EndTime(end.UTC().UnixMilli()).
		Limit(62).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance klines %s: %w", base, err)
	}
	if len(klines) == 0 {
		return nil, nil
	}

	low := 0.0
	lowOpen := int64(0)
	for _, k := range klines {
		v, err := strconv.ParseFloat(k.Low, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s kline low %q: %w", base, k.Low, err)
		}
		if lowOpen == 0 || v < low {
			low = v
			lowOpen = k.OpenTime
		}
	}

	return &WindowLow{
		Price: low,
		Date:  time.UnixMilli(lowOpen).UTC().Format("2006-01-02"),
	}, nil
}
