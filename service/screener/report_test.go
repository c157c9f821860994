package screener

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleReport() *Report {
	low := 1.00
	date := "2025-11-21"
	bounce := 25.0
	return &Report{
		GeneratedAt: time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
		NewCoins:    []string{"SOL"},
		Rows: []CoinRow{
			{
				Symbol: "SOL", Price: 1.25, MarketCapM: 60000, FDVM: 70000,
				VolumeM: 500, Change24h: 2.0, Change30d: 30.0,
				QuarterLow: &low, LowDate: &date, BouncePct: &bounce, IsNew: true,
			},
			{
				Symbol: "GHOST", Price: 0.5, MarketCapM: 0, FDVM: 200,
				VolumeM: 20, Change24h: 0.5, Change30d: -4.0,
			},
		},
	}
}

func TestPrintReport(t *testing.T) {
	var buf strings.Builder
	PrintReport(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, "Generated: 2026-01-05 12:00:00 UTC")
	assert.Contains(t, out, "SOL")
	assert.Contains(t, out, "$1.25")   // dollar-plus price, two decimals
	assert.Contains(t, out, "$0.5000") // sub-dollar price, four decimals
	assert.Contains(t, out, "$70,000M")
	assert.Contains(t, out, "+25%")
	assert.Contains(t, out, "NEW")
	assert.Contains(t, out, "N/A") // GHOST's missing mcap/low/bounce
	assert.Contains(t, out, "Total: 2 coins | New coins this run: 1")
}

func TestPrintScriptFragment(t *testing.T) {
	var buf strings.Builder
	PrintScriptFragment(&buf, sampleReport())
	out := buf.String()

	assert.Contains(t, out, `const reportGeneratedAt = "2026-01-05 12:00:00 UTC";`)
	assert.Contains(t, out, `const newCoins = new Set(["SOL"]);`)
	assert.Contains(t, out, "const cryptoData = [")
	assert.Contains(t, out, `{ symbol: "SOL", price: 1.25, mcap: 60000, fdv: 70000, volume: 500.0, d1: 2.00, d30: 30.00, q4Low: 1, lowDate: "2025-11-21", bounce: 25.00, isNew: true },`)
	assert.Contains(t, out, `q4Low: null, lowDate: null, bounce: null, isNew: false },`)
}

func TestPrintScriptFragmentEmptyNewCoins(t *testing.T) {
	rep := sampleReport()
	rep.NewCoins = []string{}

	var buf strings.Builder
	PrintScriptFragment(&buf, rep)

	// An empty set must render as [] and never as null.
	assert.Contains(t, buf.String(), "const newCoins = new Set([]);")
}
