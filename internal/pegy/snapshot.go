package pegy

import (
	"fmt"
	"os"
	"regexp"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Snapshot is one stock's valuation record as stored in dated output files.
// CurrentPrice and PEGY are pointers because a failed price fetch and an
// undefined ratio are both recorded as null.
type Snapshot struct {
	Symbol             string           `json:"symbol"`
	Date               string           `json:"date"`
	CurrentPrice       *decimal.Decimal `json:"current_price"`
	PERatio            decimal.Decimal  `json:"pe_ratio"`
	NetProfitGrowthYoY decimal.Decimal  `json:"net_profit_growth_yoy"`
	DividendYield      decimal.Decimal  `json:"dividend_yield"`
	PEGY               *decimal.Decimal `json:"pegy"`
}

// ComputePEGY fills in the PEGY field from the snapshot's own fundamentals,
// leaving it nil when the ratio is undefined.
func (s *Snapshot) ComputePEGY() {
	ratio, ok := Ratio(s.PERatio, s.NetProfitGrowthYoY, s.DividendYield, DefaultBuffer)
	if !ok {
		s.PEGY = nil
		return
	}
	s.PEGY = &ratio
}

// LoadSnapshots reads a snapshot file written by SaveSnapshots or the
// fetch tooling.
func LoadSnapshots(path string) ([]Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", path, err)
	}

	var snapshots []Snapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", path, err)
	}

	return snapshots, nil
}

// SaveSnapshots writes the snapshots as an indented JSON array
func SaveSnapshots(snapshots []Snapshot, path string) error {
	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SnapshotFilename builds the dated output name, pegy_output_<label>_<day>.json
func SnapshotFilename(label string, day time.Time) string {
	return fmt.Sprintf("pegy_output_%s_%s.json", label, day.Format("2006-01-02"))
}

var snapshotNamePattern = regexp.MustCompile(`^pegy_output.*_(\d{4}-\d{2}-\d{2})\.json$`)

// LatestSnapshotFile finds the most recently dated snapshot file in dir.
// Dates sort lexicographically in this naming scheme, so no parsing is
// needed; name order breaks ties between files sharing a date.
func LatestSnapshotFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read snapshot directory %s: %w", dir, err)
	}

	var latestName, latestDate string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		match := snapshotNamePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}

		date := match[1]
		if date > latestDate || (date == latestDate && entry.Name() > latestName) {
			latestDate = date
			latestName = entry.Name()
		}
	}

	if latestName == "" {
		return "", fmt.Errorf("no snapshot files found in %s", dir)
	}

	return latestName, nil
}
