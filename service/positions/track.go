package positions

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/leongcheekhan100/hk-screener/config"
	"github.com/leongcheekhan100/hk-screener/service/data_adaptor"
)

type accountSource interface {
	Balances(ctx context.Context) ([]data_adaptor.AccountBalance, error)
	OpenPositions(ctx context.Context) ([]data_adaptor.Position, error)
	Trades(ctx context.Context, symbol string, limit int) ([]data_adaptor.AccountTrade, error)
	FundingFees(ctx context.Context, symbol string, since int64) ([]data_adaptor.Income, error)
	IncomeHistory(ctx context.Context, limit int) ([]data_adaptor.Income, error)
}

// Tracker builds the position report: balances, open positions with funding
// since open, recent trades and income history. Like the screener it runs
// strictly sequentially.
type Tracker struct {
	cfg     *config.Config
	log     *zap.Logger
	account accountSource
	now     func() time.Time
}

func New(cfg *config.Config, log *zap.Logger) *Tracker {
	return &Tracker{
		cfg:     cfg,
		log:     log,
		account: data_adaptor.NewBinanceAccountClient(cfg.Binance),
		now:     time.Now,
	}
}

func (t *Tracker) Run(ctx context.Context) (*PositionReport, error) {
	balances, err := t.account.Balances(ctx)
	if err != nil {
		return nil, err
	}

	var account AccountSummary
	for _, b := range balances {
		if b.Asset != "USDT" {
			continue
		}
		account.Balance += b.Balance
		account.AvailableBalance += b.AvailableBalance
		account.UnrealizedProfit += b.UnrealizedProfit
	}
	t.log.Info("fetched account balance",
		zap.Int("assets", len(balances)),
		zap.Float64("usdt", account.Balance))

	open, err := t.account.OpenPositions(ctx)
	if err != nil {
		return nil, err
	}
	t.log.Info("fetched open positions", zap.Int("positions", len(open)))

	tracked := make([]TrackedPosition, 0, len(open))
	for _, p := range open {
		tp := TrackedPosition{
			Position: p,
			Side:     PositionSide(p.Amount),
			TotalPnl: p.UnrealizedProfit,
		}

		// Funding attribution is best effort: a failed lookup leaves the
		// position at unrealized-only PnL instead of failing the run.
		trades, err := t.account.Trades(ctx, p.Symbol, t.cfg.Positions.TradeLookup)
		if err != nil {
			t.log.Warn("no trade history", zap.String("symbol", p.Symbol), zap.Error(err))
			tracked = append(tracked, tp)
			continue
		}
		tp.OpenTime = OpenTime(trades, p.Amount)

		fees, err := t.account.FundingFees(ctx, p.Symbol, tp.OpenTime)
		if err != nil {
			t.log.Warn("no funding history", zap.String("symbol", p.Symbol), zap.Error(err))
			tracked = append(tracked, tp)
			continue
		}
		tp.TotalFunding, tp.FundingCount = SumFunding(fees)
		tp.TotalPnl = p.UnrealizedProfit + tp.TotalFunding
		tracked = append(tracked, tp)
	}

	recent := t.recentTrades(ctx, tracked)

	income, err := t.account.IncomeHistory(ctx, t.cfg.Positions.IncomeLimit)
	if err != nil {
		t.log.Warn("no income history", zap.Error(err))
		income = []data_adaptor.Income{}
	}
	sort.SliceStable(income, func(i, j int) bool { return income[i].Time > income[j].Time })

	summary := Summarize(tracked)
	t.log.Info("track complete",
		zap.Int("positions", summary.PositionCount),
		zap.Float64("netNotional", summary.NetNotional))

	return &PositionReport{
		GeneratedAt:   t.now().UTC(),
		Account:       account,
		Summary:       summary,
		Positions:     tracked,
		RecentTrades:  recent,
		IncomeHistory: income,
	}, nil
}

// recentTrades collects the latest fills across the first few positions,
// newest first, capped at the configured count.
func (t *Tracker) recentTrades(ctx context.Context, tracked []TrackedPosition) []data_adaptor.AccountTrade {
	trades := []data_adaptor.AccountTrade{}
	for i, p := range tracked {
		if i >= 5 {
			break
		}
		recent, err := t.account.Trades(ctx, p.Symbol, 10)
		if err != nil {
			t.log.Warn("no recent trades", zap.String("symbol", p.Symbol), zap.Error(err))
			continue
		}
		sort.SliceStable(recent, func(i, j int) bool { return recent[i].Time > recent[j].Time })
		if len(recent) > 5 {
			recent = recent[:5]
		}
		trades = append(trades, recent...)
	}

	sort.SliceStable(trades, func(i, j int) bool { return trades[i].Time > trades[j].Time })
	if max := t.cfg.Positions.RecentTrades; len(trades) > max {
		trades = trades[:max]
	}
	return trades
}
