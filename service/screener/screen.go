package screener

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/leongcheekhan100/hk-screener/config"
	"github.com/leongcheekhan100/hk-screener/service/data_adaptor"
)

type tickerSource interface {
	PerpTickers(ctx context.Context) ([]data_adaptor.Ticker, error)
}

type marketSource interface {
	Markets(ctx context.Context) (map[string]data_adaptor.MarketInfo, error)
}

type klineSource interface {
	QuarterLow(ctx context.Context, base string, start, end time.Time) (*data_adaptor.WindowLow, error)
}

// Screener runs the whole pipeline: history, three fetches, merge, filter,
// per-symbol lows, new-coin diff, sort. Strictly sequential; the per-symbol
// kline fetches are the slow part and run one at a time.
type Screener struct {
	cfg     *config.Config
	log     *zap.Logger
	binance tickerSource
	klines  klineSource
	gecko   marketSource
	cmc     marketSource
	now     func() time.Time
}

func New(cfg *config.Config, log *zap.Logger) *Screener {
	binance := data_adaptor.NewBinanceClient(cfg.Binance)
	return &Screener{
		cfg:     cfg,
		log:     log,
		binance: binance,
		klines:  binance,
		gecko:   data_adaptor.NewCoinGeckoClient(cfg.CoinGecko),
		cmc:     data_adaptor.NewCoinMarketCapClient(cfg.CoinMarketCap),
		now:     time.Now,
	}
}

func (s *Screener) Run(ctx context.Context) (*Report, error) {
	windowStart, windowEnd, err := s.cfg.Screener.LowWindow.Bounds()
	if err != nil {
		return nil, err
	}

	previous, err := LoadHistory(s.cfg.Screener.HistoryFile)
	if err != nil {
		s.log.Warn("could not load coin history", zap.Error(err))
	}
	s.log.Info("loaded coin history", zap.Int("coins", len(previous)))

	tickers, err := s.binance.PerpTickers(ctx)
	if err != nil {
		return nil, err
	}
	s.log.Info("fetched binance perpetuals", zap.Int("pairs", len(tickers)))

	cg, err := s.gecko.Markets(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch coingecko markets: %w", err)
	}
	s.log.Info("fetched coingecko markets", zap.Int("coins", len(cg)))

	cmc, err := s.cmc.Markets(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch coinmarketcap listings: %w", err)
	}
	s.log.Info("fetched coinmarketcap listings", zap.Int("coins", len(cmc)))

	merged := MergeMarketData(cg, cmc)
	s.log.Info("merged market data", zap.Int("coins", len(merged)))

	rows := BuildRows(tickers, merged, s.cfg.Screener.FDVThreshold)
	s.log.Info("applied FDV filter",
		zap.Float64("threshold", s.cfg.Screener.FDVThreshold),
		zap.Int("coins", len(rows)))

	for i := range rows {
		if (i+1)%20 == 0 || i == 0 {
			s.log.Info("fetching window lows", zap.Int("done", i+1), zap.Int("total", len(rows)))
		}
		low, err := s.klines.QuarterLow(ctx, rows[i].Symbol, windowStart, windowEnd)
		if err != nil {
			// Per-symbol kline failures leave the row without a bounce
			// instead of failing the run.
			s.log.Warn("no window low", zap.String("symbol", rows[i].Symbol), zap.Error(err))
			continue
		}
		if low != nil {
			rows[i].SetLow(low.Price, low.Date)
		}
	}

	current := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		current[r.Symbol] = struct{}{}
	}
	newCoins := NewSymbols(current, previous)
	for i := range rows {
		rows[i].IsNew = contains(newCoins, rows[i].Symbol)
	}

	generatedAt := s.now().UTC()
	if err := SaveHistory(s.cfg.Screener.HistoryFile, current, generatedAt); err != nil {
		s.log.Warn("could not save coin history", zap.Error(err))
	}

	SortByChange30d(rows)
	s.log.Info("screen complete", zap.Int("coins", len(rows)), zap.Int("new", len(newCoins)))

	return &Report{
		GeneratedAt: generatedAt,
		NewCoins:    newCoins,
		Rows:        rows,
	}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
