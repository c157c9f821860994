package data_adaptor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adshao/go-binance/v2/futures"

	"github.com/leongcheekhan100/hk-screener/config"
)

// BinanceAccountClient wraps the signed futures account endpoints the
// position tracker needs: balances, open positions, user trades and income.
// The library handles request timestamps and HMAC signing.
type BinanceAccountClient struct {
	c *futures.Client
}

func NewBinanceAccountClient(cfg config.BinanceConfig) *BinanceAccountClient {
	c := futures.NewClient(cfg.APIKey, cfg.SecretKey)
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	c.UserAgent = userAgent
	c.HTTPClient = NewHTTPClient(cfg.Timeout)
	return &BinanceAccountClient{c: c}
}

// Balances returns the non-zero futures wallet balances.
func (b *BinanceAccountClient) Balances(ctx context.Context) ([]AccountBalance, error) {
	raw, err := b.c.NewGetBalanceService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance balance: %w", err)
	}

	balances := make([]AccountBalance, 0, len(raw))
	for _, r := range raw {
		balance, err := strconv.ParseFloat(r.Balance, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s balance %q: %w", r.Asset, r.Balance, err)
		}
		if balance == 0 {
			continue
		}
		available, err := strconv.ParseFloat(r.AvailableBalance, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s availableBalance %q: %w", r.Asset, r.AvailableBalance, err)
		}
		unPnl, err := strconv.ParseFloat(r.CrossUnPnl, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s crossUnPnl %q: %w", r.Asset, r.CrossUnPnl, err)
		}
		balances = append(balances, AccountBalance{
			Asset:            r.Asset,
			Balance:          balance,
			AvailableBalance: available,
			UnrealizedProfit: unPnl,
		})
	}
	return balances, nil
}

// OpenPositions returns every position with a non-zero size.
func (b *BinanceAccountClient) OpenPositions(ctx context.Context) ([]Position, error) {
	raw, err := b.c.NewGetPositionRiskService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance positionRisk: %w", err)
	}

	positions := make([]Position, 0, len(raw))
	for _, r := range raw {
		amount, err := strconv.ParseFloat(r.PositionAmt, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s positionAmt %q: %w", r.Symbol, r.PositionAmt, err)
		}
		if amount == 0 {
			continue
		}

		entry := parseFloatDefault(r.EntryPrice)
		mark := parseFloatDefault(r.MarkPrice)
		unPnl := parseFloatDefault(r.UnRealizedProfit)
		liq := parseFloatDefault(r.LiquidationPrice)
		isolated := parseFloatDefault(r.IsolatedMargin)
		notional := parseFloatDefault(r.Notional)
		if notional < 0 {
			notional = -notional
		}
		leverage, err := strconv.Atoi(r.Leverage)
		if err != nil {
			leverage = 1
		}

		positions = append(positions, Position{
			Symbol:           r.Symbol,
			Amount:           amount,
			EntryPrice:       entry,
			MarkPrice:        mark,
			UnrealizedProfit: unPnl,
			LiquidationPrice: liq,
			Leverage:         leverage,
			MarginType:       r.MarginType,
			IsolatedMargin:   isolated,
			Notional:         notional,
			UpdateTime:       r.UpdateTime,
		})
	}
	return positions, nil
}

// Trades returns the most recent user trades for one symbol.
func (b *BinanceAccountClient) Trades(ctx context.Context, symbol string, limit int) ([]AccountTrade, error) {
	raw, err := b.c.NewListAccountTradeService().Symbol(symbol).Limit(limit).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance userTrades %s: %w", symbol, err)
	}

	trades := make([]AccountTrade, 0, len(raw))
	for _, r := range raw {
		trades = append(trades, AccountTrade{
			Symbol:      r.Symbol,
			Side:        string(r.Side),
			Price:       parseFloatDefault(r.Price),
			Qty:         parseFloatDefault(r.Quantity),
			QuoteQty:    parseFloatDefault(r.QuoteQuantity),
			RealizedPnl: parseFloatDefault(r.RealizedPnl),
			Commission:  parseFloatDefault(r.Commission),
			Time:        r.Time,
		})
	}
	return trades, nil
}

// FundingFees returns the funding-fee income for one symbol since the given
// time (Unix ms). A zero since fetches the default window.
func (b *BinanceAccountClient) FundingFees(ctx context.Context, symbol string, since int64) ([]Income, error) {
	svc := b.c.NewGetIncomeHistoryService().IncomeType("FUNDING_FEE").Symbol(symbol).Limit(1000)
	if since > 0 {
		svc = svc.StartTime(since)
	}
	raw, err := svc.Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance funding income %s: %w", symbol, err)
	}
	return convertIncome(raw), nil
}

// IncomeHistory returns recent income records of every type (realized PnL,
// funding, commission).
func (b *BinanceAccountClient) IncomeHistory(ctx context.Context, limit int) ([]Income, error) {
	raw, err := b.c.NewGetIncomeHistoryService().Limit(int64(limit)).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance income: %w", err)
	}
	return convertIncome(raw), nil
}

func convertIncome(raw []*futures.IncomeHistory) []Income {
	income := make([]Income, 0, len(raw))
	for _, r := range raw {
		income = append(income, Income{
			Symbol:     r.Symbol,
			IncomeType: string(r.IncomeType),
			Income:     parseFloatDefault(r.Income),
			Asset:      r.Asset,
			Time:       r.Time,
		})
	}
	return income
}

// parseFloatDefault treats unparseable account fields as zero, matching how
// the exchange reports empty strings for optional values.
func parseFloatDefault(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
