package positions

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leongcheekhan100/hk-screener/common"
)

// PrintReport writes the console account summary and position table.
func PrintReport(w io.Writer, rep *PositionReport) {
	line := strings.Repeat("=", 120)
	thin := strings.Repeat("-", 120)

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "POSITIONS: Binance Futures USDT-M Account")
	fmt.Fprintf(w, "Generated: %s\n", rep.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintln(w, line)

	fmt.Fprintf(w, "Balance: $%s | Available: $%s | Unrealized PnL: %+.2f\n",
		common.FormatFloatWithComma(rep.Account.Balance, 2),
		common.FormatFloatWithComma(rep.Account.AvailableBalance, 2),
		rep.Account.UnrealizedProfit)
	fmt.Fprintf(w, "Long: $%s | Short: $%s | Net: %s $%s\n",
		common.FormatIntWithComma(int64(rep.Summary.TotalLongNotional)),
		common.FormatIntWithComma(int64(rep.Summary.TotalShortNotional)),
		NetSide(rep.Summary.NetNotional),
		common.FormatIntWithComma(int64(abs(rep.Summary.NetNotional))))
	fmt.Fprintf(w, "Funding since open: %+.2f | Total PnL (unrealized+funding): %+.2f\n",
		rep.Summary.TotalFunding,
		rep.Summary.TotalPnl)
	fmt.Fprintln(w, thin)

	fmt.Fprintf(w, "%-14s %-6s %14s %12s %12s %12s %5s %10s %10s\n",
		"Symbol", "Side", "Size", "Entry", "Mark", "Notional", "Lev", "uPnL", "Funding")
	fmt.Fprintln(w, thin)

	for _, p := range rep.Positions {
		fmt.Fprintf(w, "%-14s %-6s %14.4f %12s %12s %12s %4dx %+10.2f %+10.2f\n",
			p.Symbol,
			p.Side,
			p.Amount,
			common.FormatPrice(p.EntryPrice),
			common.FormatPrice(p.MarkPrice),
			common.FormatIntWithComma(int64(p.Notional)),
			p.Leverage,
			p.UnrealizedProfit,
			p.TotalFunding)
	}

	fmt.Fprintln(w, thin)
	fmt.Fprintf(w, "Total: %d positions | Recent trades: %d | Income records: %d\n",
		rep.Summary.PositionCount, len(rep.RecentTrades), len(rep.IncomeHistory))
	fmt.Fprintln(w, line)

	if len(rep.RecentTrades) > 0 {
		fmt.Fprintln(w, "Recent trades:")
		for _, tr := range rep.RecentTrades {
			fmt.Fprintf(w, "  %s %-14s %-5s %12s x %.4f  pnl %+8.4f\n",
				time.UnixMilli(tr.Time).UTC().Format("01-02 15:04"),
				tr.Symbol,
				tr.Side,
				common.FormatPrice(tr.Price),
				tr.Qty,
				tr.RealizedPnl)
		}
	}
}

// SaveDashboard persists the full report as JSON for the HTML dashboard,
// written atomically the same way the screener history is.
func SaveDashboard(path string, rep *PositionReport) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal position report: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create dashboard temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write dashboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close dashboard temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace dashboard: %w", err)
	}
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
