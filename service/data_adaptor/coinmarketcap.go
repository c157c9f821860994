package data_adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/leongcheekhan100/hk-screener/config"
)

type CoinMarketCapClient struct {
	baseURL    string
	apiKey     string
	limit      int
	httpClient *http.Client
}

func NewCoinMarketCapClient(cfg config.CoinMarketCapConfig) *CoinMarketCapClient {
	return &CoinMarketCapClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		limit:      cfg.Limit,
		httpClient: NewHTTPClient(cfg.Timeout),
	}
}

// Markets fetches the latest listings sorted by market cap, keyed by symbol.
// CoinMarketCap reports errors both with HTTP status and a body-level
// status.error_code; both abort.
func (c *CoinMarketCapClient) Markets(ctx context.Context) (map[string]MarketInfo, error) {
	q := url.Values{}
	q.Set("start", "1")
	q.Set("limit", strconv.Itoa(c.limit))
	q.Set("convert", "USD")
	q.Set("sort", "market_cap")
	q.Set("sort_dir", "desc")

	endpoint := c.baseURL + "/v1/cryptocurrency/listings/latest?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-CMC_PRO_API_KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coinmarketcap listings: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		return nil, fmt.Errorf("coinmarketcap status %d: %s", resp.StatusCode, string(body))
	}

	var listings cmcListings
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("decode coinmarketcap listings: %w", err)
	}
	if listings.Status.ErrorCode != 0 {
		return nil, fmt.Errorf("coinmarketcap error %d: %s", listings.Status.ErrorCode, listings.Status.ErrorMessage)
	}

	bySymbol := make(map[string]MarketInfo, len(listings.Data))
	for _, coin := range listings.Data {
		symbol := strings.ToUpper(coin.Symbol)
		if symbol == "" {
			continue
		}
		quote := coin.Quote["USD"]
		bySymbol[symbol] = MarketInfo{
			Name:      coin.Name,
			FDV:       quote.FDV,
			MarketCap: quote.MarketCap,
			Change24h: quote.Change24h,
			Change30d: quote.Change30d,
			Source:    SourceCoinMarketCap,
		}
	}
	return bySymbol, nil
}
