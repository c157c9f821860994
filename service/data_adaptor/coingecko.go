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

type CoinGeckoClient struct {
	baseURL    string
	apiKey     string
	pages      int
	perPage    int
	httpClient *http.Client
}

func NewCoinGeckoClient(cfg config.CoinGeckoConfig) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		pages:      cfg.Pages,
		perPage:    cfg.PerPage,
		httpClient: NewHTTPClient(cfg.Timeout),
	}
}

// Markets fetches the top coins by market cap, page by page, and keys them by
// upper-cased symbol. An empty page ends the pagination early.
func (c *CoinGeckoClient) Markets(ctx context.Context) (map[string]MarketInfo, error) {
	bySymbol := make(map[string]MarketInfo)

	for page := 1; page <= c.pages; page++ {
		coins, err := c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(coins) == 0 {
			break
		}
		for _, coin := range coins {
			symbol := strings.ToUpper(coin.Symbol)
			if symbol == "" {
				continue
			}
			bySymbol[symbol] = MarketInfo{
				Name:      coin.Name,
				FDV:       coin.FDV,
				MarketCap: coin.MarketCap,
				Change24h: coin.Change24h,
				Change30d: coin.Change30d,
				Source:    SourceCoinGecko,
			}
		}
	}

	return bySymbol, nil
}

func (c *CoinGeckoClient) fetchPage(ctx context.Context, page int) ([]cgMarket, error) {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(c.perPage))
	q.Set("page", strconv.Itoa(page))
	q.Set("sparkline", "false")
	q.Set("price_change_percentage", "24h,30d")

	endpoint := c.baseURL + "/api/v3/coins/markets?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko page %d: %w", page, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		return nil, fmt.Errorf("coingecko page %d status %d: %s", page, resp.StatusCode, string(body))
	}

	var coins []cgMarket
	if err := json.NewDecoder(resp.Body).Decode(&coins); err != nil {
		return nil, fmt.Errorf("decode coingecko page %d: %w", page, err)
	}
	return coins, nil
}
