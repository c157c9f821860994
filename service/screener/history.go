package screener

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// History is the one durable artifact between runs: the symbol set of the
// previous successful run, used only to flag newly listed coins.
type History struct {
	LastUpdated string   `json:"last_updated"`
	Coins       []string `json:"coins"`
}

// LoadHistory reads the previous symbol set. A missing or unreadable file is
// not an error, the run proceeds with an empty set and every coin counts as
// already known.
func LoadHistory(path string) (map[string]struct{}, error) {
	coins := make(map[string]struct{})

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return coins, nil
		}
		return coins, fmt.Errorf("read history: %w", err)
	}

	var hist History
	if err := json.Unmarshal(data, &hist); err != nil {
		return coins, fmt.Errorf("unmarshal history: %w", err)
	}

	for _, c := range hist.Coins {
		coins[c] = struct{}{}
	}
	return coins, nil
}

// SaveHistory persists the current symbol set, sorted, via a uniquely named
// temp file in the same directory and a rename, so a crash mid-write leaves
// the previous history intact and concurrent saves (the serve command can run
// the pipeline per request) never interleave on a shared temp path.
func SaveHistory(path string, coins map[string]struct{}, now time.Time) error {
	hist := History{
		LastUpdated: now.UTC().Format("2006-01-02 15:04:05 UTC"),
		Coins:       sortedSymbols(coins),
	}

	data, err := json.MarshalIndent(hist, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create history temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close history temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}

// NewSymbols returns current − previous, sorted. A first run (empty previous
// set) reports no new coins: everything would be "new" and the marker would
// be noise.
func NewSymbols(current, previous map[string]struct{}) []string {
	if len(previous) == 0 {
		return []string{}
	}
	fresh := []string{}
	for symbol := range current {
		if _, ok := previous[symbol]; !ok {
			fresh = append(fresh, symbol)
		}
	}
	sort.Strings(fresh)
	return fresh
}

func sortedSymbols(coins map[string]struct{}) []string {
	out := make([]string, 0, len(coins))
	for c := range coins {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
