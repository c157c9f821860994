package data_adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leongcheekhan100/hk-screener/config"
)

func binanceTestClient(baseURL string) *BinanceClient {
	return NewBinanceClient(config.BinanceConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
	})
}

func TestPerpTickers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fapi/v1/ticker/24hr" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, `[
			{"symbol":"BTCUSDT","lastPrice":"95000.50","priceChangePercent":"2.5","quoteVolume":"1500000000"},
			{"symbol":"1000PEPEUSDT","lastPrice":"0.0123","priceChangePercent":"-3.1","quoteVolume":"250000000"},
			{"symbol":"ETHBTC","lastPrice":"0.05","priceChangePercent":"0.1","quoteVolume":"1000"},
			{"symbol":"BTCUSDT_250926","lastPrice":"96000","priceChangePercent":"2.4","quoteVolume":"50000"}
		]`)
	}))
	defer srv.Close()

	tickers, err := binanceTestClient(srv.URL).PerpTickers(context.Background())
	if err != nil {
		t.Fatalf("PerpTickers returned error: %v", err)
	}

	// ETHBTC (not USDT-quoted) and the dated quarterly must be gone.
	if len(tickers) != 2 {
		t.Fatalf("got %d tickers, want 2", len(tickers))
	}

	btc := tickers[0]
	if btc.Symbol != "BTC" || btc.LookupSymbol != "BTC" {
		t.Errorf("BTC normalization: symbol=%q lookup=%q", btc.Symbol, btc.LookupSymbol)
	}
	if btc.LastPrice != 95000.50 || btc.Change24h != 2.5 {
		t.Errorf("BTC parsed fields: price=%v change=%v", btc.LastPrice, btc.Change24h)
	}

	pepe := tickers[1]
	if pepe.Symbol != "1000PEPE" {
		t.Errorf("multiplier symbol must keep its prefix, got %q", pepe.Symbol)
	}
	if pepe.LookupSymbol != "PEPE" {
		t.Errorf("lookup symbol must drop the multiplier prefix, got %q", pepe.LookupSymbol)
	}
}

func TestQuarterLow(t *testing.T) {
	nov1 := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	nov2 := nov1.Add(24 * time.Hour)
	nov3 := nov2.Add(24 * time.Hour)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fapi/v1/klines" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("interval"); got != "1d" {
			t.Errorf("unexpected interval: %q", got)
		}
		if got := r.URL.Query().Get("symbol"); got != "SOLUSDT" {
			t.Errorf("unexpected symbol: %q", got)
		}
		fmt.Fprintf(w, `[
			[%d,"140.0","150.0","138.5","145.0","1000",%d,"140000",5000,"500","70000","0"],
			[%d,"145.0","146.0","120.25","125.0","2000",%d,"250000",8000,"900","110000","0"],
			[%d,"125.0","160.0","124.0","158.0","1500",%d,"220000",7000,"800","105000","0"]
		]`,
			nov1.UnixMilli(), nov2.UnixMilli()-1,
			nov2.UnixMilli(), nov3.UnixMilli()-1,
			nov3.UnixMilli(), nov3.Add(24*time.Hour).UnixMilli()-1)
	}))
	defer srv.Close()

	end := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	low, err := binanceTestClient(srv.URL).QuarterLow(context.Background(), "SOL", nov1, end)
	if err != nil {
		t.Fatalf("QuarterLow returned error: %v", err)
	}
	if low == nil {
		t.Fatal("expected a window low")
	}
	if low.Price != 120.25 {
		t.Errorf("low price = %v, want 120.25", low.Price)
	}
	if low.Date != "2025-11-02" {
		t.Errorf("low date = %q, want 2025-11-02", low.Date)
	}
}

func TestQuarterLowNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	start := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	low, err := binanceTestClient(srv.URL).QuarterLow(context.Background(), "NEWCOIN", start, end)
	if err != nil {
		t.Fatalf("QuarterLow returned error: %v", err)
	}
	if low != nil {
		t.Errorf("expected nil low for an empty series, got %+v", low)
	}
}
