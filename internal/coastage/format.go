package coastage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted table for a solve result
func (tf *TableFormatter) Format(result *SolveResult) string {
	var sb strings.Builder

	sb.WriteString("COAST AGE SEARCH RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Search metadata
	sb.WriteString(fmt.Sprintf("Current Age:         %d\n", result.Request.Input.CurrentAge))
	sb.WriteString(fmt.Sprintf("Retirement Age:      %d\n", result.Request.Input.RetirementAge))
	sb.WriteString(fmt.Sprintf("Monthly Deposit:     %s\n", tf.formatCurrency(result.Request.MonthlyContribution)))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Candidates Tried:    %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Outcome:             %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	// Coast point found
	sb.WriteString("COAST POINT\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Coast Age:               %d\n", result.Result.CoastAge))
	sb.WriteString(fmt.Sprintf("Accumulated by Then:     %s\n", tf.formatCurrency(result.Result.AccumulatedAtCoastAge)))
	sb.WriteString(fmt.Sprintf("Projected at Retirement: %s\n", tf.formatCurrency(result.Result.ProjectedAtRetirement)))
	sb.WriteString(fmt.Sprintf("Target Number:           %s\n", tf.formatCurrency(result.Result.TargetNumber)))
	sb.WriteString("\n")

	return sb.String()
}

// FormatTrace renders every candidate age the scan considered
func (tf *TableFormatter) FormatTrace(result *SolveResult) string {
	if len(result.Trace) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("CANDIDATE AGES\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%-5s %8s %9s %15s %9s %15s %8s\n",
		"Age", "Years", "Rate", "Accumulated", "Coast", "Projected", "Reached"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, row := range result.Trace {
		sb.WriteString(fmt.Sprintf("%-5d %8d %8s%% %15s %8s%% %15s %8s\n",
			row.Age,
			row.YearsContributing,
			tf.formatPercent(row.ContributionRate),
			tf.formatShort(row.Accumulated),
			tf.formatPercent(row.CoastRate),
			tf.formatShort(row.Projected),
			tf.formatReached(row.Reached)))
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatMulti renders a deposit level comparison
func (tf *TableFormatter) FormatMulti(result *MultiContributionResult) string {
	var sb strings.Builder

	sb.WriteString("CONTRIBUTION SWEEP RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	sb.WriteString(fmt.Sprintf("%-15s %10s %15s %15s %10s\n",
		"Monthly", "Coast Age", "Accumulated", "Projected", "Reached"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, res := range result.Results {
		sb.WriteString(fmt.Sprintf("%-15s %10d %15s %15s %10s\n",
			tf.formatShort(res.Request.MonthlyContribution),
			res.Result.CoastAge,
			tf.formatShort(res.Result.AccumulatedAtCoastAge),
			tf.formatShort(res.Result.ProjectedAtRetirement),
			tf.formatReached(res.Success)))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats solver results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *SolveResult) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// FormatMulti formats a deposit level comparison as JSON
func (jf *JSONFormatter) FormatMulti(result *MultiContributionResult) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Helper methods

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Coast point found"
	}
	return "⚠ Target not reached before retirement"
}

func (tf *TableFormatter) formatCurrency(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (tf *TableFormatter) formatPercent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2)
}

func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

func (tf *TableFormatter) formatReached(reached bool) string {
	if reached {
		return "yes"
	}
	return "no"
}
