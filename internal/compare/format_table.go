package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("COAST FIRE SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.SourcePath != "" {
		sb.WriteString(fmt.Sprintf("Source: %s\n", compSet.SourcePath))
	}
	sb.WriteString("\n")

	// Column widths
	nameWidth := 25
	numWidth := 13

	// Table header
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Target",
		numWidth, "Projected",
		numWidth, "Coast Age",
		numWidth, "Deposit/Mo"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	// Base scenario row
	base := compSet.BaseResult
	sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))

	// Alternative scenarios
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Comparison details (deltas from base)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))

			// Target difference
			targetSymbol := tf.deltaSymbol(alt.TargetDiffFromBase)
			sb.WriteString(fmt.Sprintf("  Target Number:    %s%s (%s%%)\n",
				targetSymbol,
				tf.formatDecimal(alt.TargetDiffFromBase.Abs()),
				alt.TargetPctFromBase.StringFixed(1)))

			// Coast age difference
			if alt.CoastAgeDiff != 0 {
				coastSymbol := "+"
				if alt.CoastAgeDiff < 0 {
					coastSymbol = ""
				}
				sb.WriteString(fmt.Sprintf("  Coast Age:        %s%d years\n",
					coastSymbol, alt.CoastAgeDiff))
			}

			// Deposit difference
			if !alt.RequiredMonthlyDiff.IsZero() {
				depositSymbol := tf.deltaSymbol(alt.RequiredMonthlyDiff)
				sb.WriteString(fmt.Sprintf("  Deposit Needed:   %s%s/month\n",
					depositSymbol,
					tf.formatDecimal(alt.RequiredMonthlyDiff.Abs())))
			}
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	coastStr := fmt.Sprintf("age %d", result.CoastAge)
	if !result.TargetReached {
		coastStr = "not reached"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatDecimal(result.TargetNumber),
		numWidth, tf.formatDecimal(result.ProjectedValue),
		numWidth, coastStr,
		numWidth, tf.formatDecimal(result.RequiredMonthly))
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		// Format in millions
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		// Format in thousands
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		targetChange := "="
		if alt.TargetDiffFromBase.IsPositive() {
			targetChange = fmt.Sprintf("+%s", tf.formatDecimal(alt.TargetDiffFromBase))
		} else if alt.TargetDiffFromBase.IsNegative() {
			targetChange = fmt.Sprintf("-%s", tf.formatDecimal(alt.TargetDiffFromBase.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, targetChange))
	}

	return sb.String()
}
