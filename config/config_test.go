package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // no config.yaml present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.coingecko.com", cfg.CoinGecko.BaseURL)
	assert.Equal(t, 5, cfg.CoinGecko.Pages)
	assert.Equal(t, 100, cfg.CoinGecko.PerPage)
	assert.Equal(t, 500, cfg.CoinMarketCap.Limit)
	assert.Equal(t, defaultCMCAPIKey, cfg.CoinMarketCap.APIKey)
	assert.Equal(t, "coins_history.json", cfg.Screener.HistoryFile)
	assert.Equal(t, 1e8, cfg.Screener.FDVThreshold)
	assert.Equal(t, "2025-11-01", cfg.Screener.LowWindow.Start)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Equal(t, "position_data.json", cfg.Positions.DataFile)
	assert.Equal(t, 500, cfg.Positions.TradeLookup)
	assert.Equal(t, 20, cfg.Positions.RecentTrades)
	assert.Equal(t, 50, cfg.Positions.IncomeLimit)

	// Credentials have no defaults; the positions command checks for them.
	assert.Empty(t, cfg.Binance.APIKey)
	assert.Empty(t, cfg.Binance.SecretKey)
}

func TestLoadBinanceCredentialsFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BINANCE_API_KEY", "key-from-env")
	t.Setenv("BINANCE_API_SECRET", "secret-from-env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "key-from-env", cfg.Binance.APIKey)
	assert.Equal(t, "secret-from-env", cfg.Binance.SecretKey)
}

func TestLoadCMCKeyFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CMC_API_KEY", "my-own-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "my-own-key", cfg.CoinMarketCap.APIKey)
}

func TestWindowBounds(t *testing.T) {
	w := Window{Start: "2025-11-01", End: "2025-12-31"}

	start, end, err := w.Bounds()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), end)
}

func TestWindowBoundsInvalid(t *testing.T) {
	_, _, err := Window{Start: "not-a-date", End: "2025-12-31"}.Bounds()
	assert.Error(t, err)

	_, _, err = Window{Start: "2025-12-31", End: "2025-11-01"}.Bounds()
	assert.Error(t, err)
}
