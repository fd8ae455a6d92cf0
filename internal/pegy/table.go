package pegy

import (
	"fmt"
	"strings"
)

// FormatTable renders snapshots as the fixed-width valuation table
func FormatTable(snapshots []Snapshot) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-25s %8s %10s %8s %10s\n", "Company", "P/E", "Growth%", "Div%", "PEGY"))
	sb.WriteString(strings.Repeat("-", 65) + "\n")

	for _, s := range snapshots {
		pegyDisplay := "N/A"
		if s.PEGY != nil {
			pegyDisplay = s.PEGY.StringFixed(4)
		}

		sb.WriteString(fmt.Sprintf("%-25s %8s %10s %8s %10s\n",
			s.Symbol,
			s.PERatio.StringFixed(2),
			s.NetProfitGrowthYoY.StringFixed(2),
			s.DividendYield.StringFixed(2),
			pegyDisplay))
	}

	return sb.String()
}
