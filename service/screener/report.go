package screener

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leongcheekhan100/hk-screener/common"
)

// PrintReport writes the console table.
func PrintReport(w io.Writer, rep *Report) {
	line := strings.Repeat("=", 130)
	thin := strings.Repeat("-", 130)

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "RESULTS: Binance Futures USDT-M | FDV >$100M")
	fmt.Fprintln(w, "Sorted by 30-Day Change % (Descending)")
	fmt.Fprintf(w, "Generated: %s\n", rep.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintln(w, line)

	fmt.Fprintf(w, "%-12s %12s %10s %10s %10s %8s %8s %12s %8s %5s\n",
		"Symbol", "Price", "MCap", "FDV", "24h Vol", "D1%", "30D%", "Q4 Low", "Bounce", "New")
	fmt.Fprintf(w, "%-12s %12s %10s %10s %10s %8s %8s %12s %8s %5s\n",
		"", "(USD)", "(M)", "(M)", "(M)", "", "", "(USD)", "(%)", "")
	fmt.Fprintln(w, thin)

	for _, row := range rep.Rows {
		mcap := "N/A"
		if row.MarketCapM > 0 {
			mcap = common.FormatMillions(row.MarketCapM)
		}

		low, bounce := "N/A", "N/A"
		if row.QuarterLow != nil {
			low = common.FormatPrice(*row.QuarterLow)
			bounce = fmt.Sprintf("+%.0f%%", *row.BouncePct)
		}

		newMark := ""
		if row.IsNew {
			newMark = "NEW"
		}

		fmt.Fprintf(w, "%-12s %12s %10s %10s %10s %+7.1f%% %+7.1f%% %12s %8s %5s\n",
			row.Symbol,
			common.FormatPrice(row.Price),
			mcap,
			common.FormatMillions(row.FDVM),
			common.FormatMillions(row.VolumeM),
			row.Change24h,
			row.Change30d,
			low,
			bounce,
			newMark)
	}

	fmt.Fprintln(w, thin)
	fmt.Fprintf(w, "Total: %d coins | New coins this run: %d\n", len(rep.Rows), len(rep.NewCoins))
	fmt.Fprintln(w, line)
}

// PrintScriptFragment writes the three named values the static HTML report
// embeds: generation timestamp, new-coin set and the full row array.
func PrintScriptFragment(w io.Writer, rep *Report) {
	fmt.Fprintln(w, "\n// JavaScript data for HTML (copy this):")
	fmt.Fprintf(w, "const reportGeneratedAt = %q;\n", rep.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))

	newCoins, _ := json.Marshal(rep.NewCoins)
	fmt.Fprintf(w, "const newCoins = new Set(%s);\n", newCoins)

	fmt.Fprintln(w, "const cryptoData = [")
	for _, row := range rep.Rows {
		fmt.Fprintf(w, "    { symbol: %q, price: %s, mcap: %.0f, fdv: %.0f, volume: %.1f, d1: %.2f, d30: %.2f, q4Low: %s, lowDate: %s, bounce: %s, isNew: %t },\n",
			row.Symbol,
			jsNumber(row.Price),
			row.MarketCapM,
			row.FDVM,
			row.VolumeM,
			row.Change24h,
			row.Change30d,
			jsOptNumber(row.QuarterLow, -1),
			jsOptString(row.LowDate),
			jsOptNumber(row.BouncePct, 2),
			row.IsNew)
	}
	fmt.Fprintln(w, "];")
}

func jsNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func jsOptNumber(v *float64, decimals int) string {
	if v == nil {
		return "null"
	}
	if decimals < 0 {
		return jsNumber(*v)
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

func jsOptString(s *string) string {
	if s == nil {
		return "null"
	}
	return strconv.Quote(*s)
}
