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

func geckoTestConfig(baseURL string) config.CoinGeckoConfig {
	return config.CoinGeckoConfig{
		BaseURL: baseURL,
		APIKey:  "demo-key",
		Pages:   5,
		PerPage: 100,
		Timeout: 5 * time.Second,
	}
}

func TestCoinGeckoMarkets(t *testing.T) {
	var pagesServed int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/coins/markets" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("x-cg-demo-api-key"); got != "demo-key" {
			t.Errorf("unexpected api key header: %q", got)
		}
		if got := r.URL.Query().Get("price_change_percentage"); got != "24h,30d" {
			t.Errorf("unexpected price_change_percentage: %q", got)
		}

		pagesServed++
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, `[
				{"id":"bitcoin","symbol":"btc","name":"Bitcoin","market_cap":1200000000000,"fully_diluted_valuation":1300000000000,"price_change_percentage_24h":1.5,"price_change_percentage_30d_in_currency":10.2},
				{"id":"mystery","symbol":"myst","name":"Mystery","market_cap":null,"fully_diluted_valuation":null,"price_change_percentage_24h":null,"price_change_percentage_30d_in_currency":null}
			]`)
		default:
			fmt.Fprint(w, `[]`)
		}
	}))
	defer srv.Close()

	client := NewCoinGeckoClient(geckoTestConfig(srv.URL))
	got, err := client.Markets(context.Background())
	if err != nil {
		t.Fatalf("Markets returned error: %v", err)
	}

	// Page 2 came back empty, pagination must stop there.
	if pagesServed != 2 {
		t.Errorf("served %d pages, want 2", pagesServed)
	}
	if len(got) != 2 {
		t.Fatalf("got %d coins, want 2", len(got))
	}

	btc, ok := got["BTC"]
	if !ok {
		t.Fatal("expected BTC keyed by upper-cased symbol")
	}
	if btc.FDV == nil || *btc.FDV != 1.3e12 {
		t.Errorf("BTC FDV = %v, want 1.3e12", btc.FDV)
	}
	if btc.Source != SourceCoinGecko {
		t.Errorf("BTC source = %q", btc.Source)
	}

	myst := got["MYST"]
	if myst.FDV != nil || myst.MarketCap != nil {
		t.Errorf("null upstream fields must stay nil, got FDV=%v mcap=%v", myst.FDV, myst.MarketCap)
	}
}

func TestCoinGeckoMarketsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewCoinGeckoClient(geckoTestConfig(srv.URL))
	if _, err := client.Markets(context.Background()); err == nil {
		t.Fatal("expected error on 429 response")
	}
}
