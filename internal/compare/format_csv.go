package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	// Write header
	header := []string{
		"Scenario",
		"Type",
		"Target Number",
		"Projected Value",
		"Surplus Or Shortfall",
		"Coast Age",
		"Target Reached",
		"Required Monthly",
		"Target Diff from Base",
		"Target % Change",
		"Coast Age Diff",
		"Deposit Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	// Write base scenario
	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	// Write alternative scenarios
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.TargetNumber.StringFixed(2),
		result.ProjectedValue.StringFixed(2),
		result.SurplusOrShortfall.StringFixed(2),
		formatInt(result.CoastAge),
		fmt.Sprintf("%t", result.TargetReached),
		result.RequiredMonthly.StringFixed(2),
		result.TargetDiffFromBase.StringFixed(2),
		result.TargetPctFromBase.StringFixed(2),
		formatInt(result.CoastAgeDiff),
		result.RequiredMonthlyDiff.StringFixed(2),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
