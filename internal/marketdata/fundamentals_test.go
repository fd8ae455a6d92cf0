package marketdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFundamentals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fundamentals.json")
	content := `[
		{"symbol": "HDFCBANK.NS", "name": "BSE:HDFCBANK", "pe": 16.2, "growth": 19.3, "dividend": 2.7},
		{"symbol": "INFY.NS", "name": "BSE:INFY", "pe": 22.1, "growth": 13.5, "dividend": 1.8}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	fundamentals, err := LoadFundamentals(path)
	require.NoError(t, err, "Should load the file")
	require.Len(t, fundamentals, 2, "Should load both entries")

	assert.Equal(t, "HDFCBANK.NS", fundamentals[0].Symbol, "Should keep the ticker")
	assert.Equal(t, "BSE:HDFCBANK", fundamentals[0].Name, "Should keep the display name")
	assert.Equal(t, "16.2", fundamentals[0].PE.String(), "Should keep the P/E")
	assert.Equal(t, "19.3", fundamentals[0].Growth.String(), "Should keep the growth")
	assert.Equal(t, "2.7", fundamentals[0].Dividend.String(), "Should keep the dividend yield")
}

func TestLoadFundamentals_MissingFile(t *testing.T) {
	_, err := LoadFundamentals(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err, "Should fail on a missing file")
	assert.Contains(t, err.Error(), "failed to read fundamentals file", "Should name the failure")
}

func TestLoadFundamentals_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("[{"), 0644))

	_, err := LoadFundamentals(path)
	require.Error(t, err, "Should fail on broken JSON")
	assert.Contains(t, err.Error(), "failed to parse fundamentals file", "Should name the failure")
}

func TestDefaultFundamentals(t *testing.T) {
	require.Len(t, DefaultFundamentals, 30, "Should list the full index")

	for _, f := range DefaultFundamentals {
		assert.True(t, strings.HasSuffix(f.Symbol, ".NS"), "Should use NSE tickers: %s", f.Symbol)
		assert.True(t, strings.HasPrefix(f.Name, "BSE:"), "Should use exchange display names: %s", f.Name)
		assert.True(t, f.PE.IsPositive(), "Should carry a positive P/E: %s", f.Name)
	}

	first := DefaultFundamentals[0]
	assert.Equal(t, "ADANIENT.NS", first.Symbol, "Should keep the index order")
	assert.Equal(t, "18.5", first.PE.String(), "Should keep the P/E value")
}
