package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// defaultCMCAPIKey is the shared fallback key used when CMC_API_KEY is not
// set. It is a free-tier key with a small daily quota; set your own key for
// anything beyond occasional runs.
const defaultCMCAPIKey = "68c6b851ef0348bca072f6dff1f89c4d"

type Config struct {
	Binance       BinanceConfig       `mapstructure:"binance"`
	CoinGecko     CoinGeckoConfig     `mapstructure:"coingecko"`
	CoinMarketCap CoinMarketCapConfig `mapstructure:"coinmarketcap"`
	Screener      ScreenerConfig      `mapstructure:"screener"`
	Positions     PositionsConfig     `mapstructure:"positions"`
	Log           LogConfig           `mapstructure:"log"`
}

type BinanceConfig struct {
	BaseURL string        `mapstructure:"base_url"` // empty keeps the client default (fapi.binance.com)
	Timeout time.Duration `mapstructure:"timeout"`

	// Account credentials, only needed by the positions command. The
	// screener itself touches public endpoints only.
	APIKey    string `mapstructure:"api_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type CoinGeckoConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"` // optional demo key
	Pages   int           `mapstructure:"pages"`
	PerPage int           `mapstructure:"per_page"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CoinMarketCapConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Limit   int           `mapstructure:"limit"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PositionsConfig struct {
	DataFile     string `mapstructure:"data_file"`     // dashboard JSON output
	TradeLookup  int    `mapstructure:"trade_lookup"`  // trades scanned to find a position's open time
	RecentTrades int    `mapstructure:"recent_trades"` // recent trades kept in the report
	IncomeLimit  int    `mapstructure:"income_limit"`  // income records in the report
}

type ScreenerConfig struct {
	HistoryFile  string  `mapstructure:"history_file"`
	FDVThreshold float64 `mapstructure:"fdv_threshold"` // USD, strictly-greater filter
	LowWindow    Window  `mapstructure:"low_window"`
}

// Window is an inclusive UTC date range for the historical low lookup.
type Window struct {
	Start string `mapstructure:"start"` // YYYY-MM-DD
	End   string `mapstructure:"end"`   // YYYY-MM-DD
}

// Bounds resolves the window to [start 00:00:00, end 23:59:59] UTC.
func (w Window) Bounds() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", w.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse window start: %w", err)
	}
	end, err := time.Parse("2006-01-02", w.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse window end: %w", err)
	}
	end = end.Add(24*time.Hour - time.Second)
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("window end %s before start %s", w.End, w.Start)
	}
	return start, end, nil
}

type LogConfig struct {
	Level       string `mapstructure:"level"`       // "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // optional rotated log file
	Environment string `mapstructure:"environment"` // "dev" or "prod"
}

// Load reads configuration from an optional config.yaml in the working
// directory, with environment variables overriding file values and built-in
// defaults filling the rest.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("binance.base_url", "")
	v.SetDefault("binance.timeout", 15*time.Second)

	v.SetDefault("coingecko.base_url", "https://api.coingecko.com")
	v.SetDefault("coingecko.pages", 5)
	v.SetDefault("coingecko.per_page", 100)
	v.SetDefault("coingecko.timeout", 30*time.Second)

	v.SetDefault("coinmarketcap.base_url", "https://pro-api.coinmarketcap.com")
	v.SetDefault("coinmarketcap.api_key", defaultCMCAPIKey)
	v.SetDefault("coinmarketcap.limit", 500)
	v.SetDefault("coinmarketcap.timeout", 30*time.Second)

	v.SetDefault("positions.data_file", "position_data.json")
	v.SetDefault("positions.trade_lookup", 500)
	v.SetDefault("positions.recent_trades", 20)
	v.SetDefault("positions.income_limit", 50)

	v.SetDefault("screener.history_file", "coins_history.json")
	v.SetDefault("screener.fdv_threshold", 100_000_000.0)
	v.SetDefault("screener.low_window.start", "2025-11-01")
	v.SetDefault("screener.low_window.end", "2025-12-31")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.environment", "dev")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Historical names kept for compatibility with the shell environment the
	// tool is usually run from.
	_ = v.BindEnv("coinmarketcap.api_key", "CMC_API_KEY")
	_ = v.BindEnv("coingecko.api_key", "COINGECKO_API_KEY")
	_ = v.BindEnv("binance.api_key", "BINANCE_API_KEY")
	_ = v.BindEnv("binance.secret_key", "BINANCE_API_SECRET")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
