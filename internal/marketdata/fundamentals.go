package marketdata

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Fundamental holds the static valuation inputs for one listed company.
// Growth and Dividend are percentage points, so 15.2 means 15.2%.
type Fundamental struct {
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	PE       decimal.Decimal `json:"pe"`
	Growth   decimal.Decimal `json:"growth"`
	Dividend decimal.Decimal `json:"dividend"`
}

// LoadFundamentals reads a fundamentals table from a JSON file.
func LoadFundamentals(path string) ([]Fundamental, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fundamentals file %s: %w", path, err)
	}

	var fundamentals []Fundamental
	if err := json.Unmarshal(data, &fundamentals); err != nil {
		return nil, fmt.Errorf("failed to parse fundamentals file %s: %w", path, err)
	}
	return fundamentals, nil
}

func fund(symbol, name string, pe, growth, dividend float64) Fundamental {
	return Fundamental{
		Symbol:   symbol,
		Name:     name,
		PE:       decimal.NewFromFloat(pe),
		Growth:   decimal.NewFromFloat(growth),
		Dividend: decimal.NewFromFloat(dividend),
	}
}

// DefaultFundamentals lists the BSE Sensex 30 constituents with their
// P/E, profit growth and dividend yield.
var DefaultFundamentals = []Fundamental{
	fund("ADANIENT.NS", "BSE:ADANIENT", 18.5, 25.3, 1.2),
	fund("ADANIPORTS.NS", "BSE:ADANIPORTS", 12.4, 15.2, 2.8),
	fund("APOLLOHOSP.NS", "BSE:APOLLOHOSP", 28.6, 18.5, 0.5),
	fund("ASIANPAINT.NS", "BSE:ASIANPAINT", 38.2, 12.3, 0.8),
	fund("AXISBANK.NS", "BSE:AXISBANK", 14.1, 20.5, 2.5),
	fund("BAJAJ-AUTO.NS", "BSE:BAJAJ-AUTO", 15.3, 10.2, 1.8),
	fund("BAJFINANCE.NS", "BSE:BAJFINANCE", 16.8, 22.1, 1.5),
	fund("BAJAJFINSV.NS", "BSE:BAJAJFINSV", 19.2, 18.3, 2.2),
	fund("BHARTIARTL.NS", "BSE:BHARTIARTL", 24.3, 16.8, 1.5),
	fund("BPCL.NS", "BSE:BPCL", 8.9, 12.5, 4.2),
	fund("BRITANNIA.NS", "BSE:BRITANNIA", 35.7, 8.2, 1.2),
	fund("CIPLA.NS", "BSE:CIPLA", 20.4, 11.3, 2.1),
	fund("COALINDIA.NS", "BSE:COALINDIA", 10.2, 8.5, 3.8),
	fund("DIVISLAB.NS", "BSE:DIVISLAB", 36.5, 22.1, 0.3),
	fund("DRREDDY.NS", "BSE:DRREDDY", 42.3, 14.2, 0.8),
	fund("GRASIM.NS", "BSE:GRASIM", 20.5, 13.2, 2.5),
	fund("HDFCBANK.NS", "BSE:HDFCBANK", 16.2, 19.3, 2.7),
	fund("HEROMOTOCO.NS", "BSE:HEROMOTOCO", 21.5, 13.1, 1.9),
	fund("HINDALCO.NS", "BSE:HINDALCO", 12.8, 16.5, 2.4),
	fund("HINDUNILVR.NS", "BSE:HINDUNILVR", 44.2, 9.8, 1.3),
	fund("ICICIBANK.NS", "BSE:ICICIBANK", 15.9, 21.2, 2.6),
	fund("INDUSINDBK.NS", "BSE:INDUSINDBK", 13.4, 18.7, 2.8),
	fund("INFY.NS", "BSE:INFY", 22.1, 13.5, 1.8),
	fund("ITC.NS", "BSE:ITC", 22.5, 10.2, 3.1),
	fund("JSWSTEEL.NS", "BSE:JSWSTEEL", 11.3, 14.8, 2.2),
	fund("KOTAKBANK.NS", "BSE:KOTAKBANK", 18.7, 20.1, 2.4),
	fund("LT.NS", "BSE:LT", 26.4, 12.3, 1.6),
	fund("M&M.NS", "BSE:M&M", 14.2, 17.5, 2.1),
	fund("MARUTI.NS", "BSE:MARUTI", 16.8, 15.2, 2.3),
	fund("NESTLEIND.NS", "BSE:NESTLEIND", 48.5, 7.2, 0.9),
}
