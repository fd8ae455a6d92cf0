package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kmenon/coastfire/internal/calculation"
	"github.com/kmenon/coastfire/internal/coastage"
	"github.com/kmenon/coastfire/internal/domain"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                  `json:"scenario_name"`
	Result       domain.ProjectionResult `json:"result"`

	// Key metrics
	TargetNumber       decimal.Decimal `json:"target_number"`
	ProjectedValue     decimal.Decimal `json:"projected_value"`
	SurplusOrShortfall decimal.Decimal `json:"surplus_or_shortfall"`
	CoastAge           int             `json:"coast_age"`
	TargetReached      bool            `json:"target_reached"`
	RequiredMonthly    decimal.Decimal `json:"required_monthly"`

	// Comparison to base
	TargetDiffFromBase    decimal.Decimal `json:"target_diff_from_base"`
	TargetPctFromBase     decimal.Decimal `json:"target_pct_from_base"`
	CoastAgeDiff          int             `json:"coast_age_diff"`
	RequiredMonthlyDiff   decimal.Decimal `json:"required_monthly_diff"`
	ProjectedDiffFromBase decimal.Decimal `json:"projected_diff_from_base"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"base_scenario_name"`
	BaseResult         *ComparisonResult  `json:"base_result"`
	AlternativeResults []ComparisonResult `json:"alternative_results"`
	Recommendations    []string           `json:"recommendations"`
	SourcePath         string             `json:"source_path"`
}

// MetricsCalculator extracts key metrics from scenario evaluations
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics flattens one scenario's evaluation into comparison metrics
func (mc *MetricsCalculator) CalculateMetrics(name string, result domain.ProjectionResult, solve *coastage.SolveResult, plan *calculation.ContributionPlan) ComparisonResult {
	comparison := ComparisonResult{
		ScenarioName:       name,
		Result:             result,
		TargetNumber:       result.TargetNumber,
		ProjectedValue:     result.ProjectedValue,
		SurplusOrShortfall: result.SurplusOrShortfall,
	}

	if solve != nil {
		comparison.CoastAge = solve.Result.CoastAge
		comparison.TargetReached = solve.Result.TargetReached()
	}
	if plan != nil {
		comparison.RequiredMonthly = plan.RequiredMonthly
	}

	return comparison
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.TargetDiffFromBase = scenario.TargetNumber.Sub(base.TargetNumber)

	if !base.TargetNumber.IsZero() {
		scenario.TargetPctFromBase = scenario.TargetDiffFromBase.
			Div(base.TargetNumber).
			Mul(decimal.NewFromInt(100))
	}

	scenario.CoastAgeDiff = scenario.CoastAge - base.CoastAge
	scenario.RequiredMonthlyDiff = scenario.RequiredMonthly.Sub(base.RequiredMonthly)
	scenario.ProjectedDiffFromBase = scenario.ProjectedValue.Sub(base.ProjectedValue)

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Find the smallest target number
	lowestTarget := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TargetNumber.LessThan(lowestTarget.TargetNumber) {
			lowestTarget = alt
		}
	}

	if lowestTarget != compSet.BaseResult {
		targetDiff := compSet.BaseResult.TargetNumber.Sub(lowestTarget.TargetNumber)
		recommendations = append(recommendations,
			"Lowest Target: "+lowestTarget.ScenarioName+" needs "+targetDiff.StringFixed(0)+
				" less than the base scenario")
	}

	// Find the earliest coast age among scenarios that actually reach the target
	earliestCoast := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TargetReached && (!earliestCoast.TargetReached || alt.CoastAge < earliestCoast.CoastAge) {
			earliestCoast = alt
		}
	}

	if earliestCoast != compSet.BaseResult && earliestCoast.TargetReached {
		if compSet.BaseResult.TargetReached {
			yearsDiff := compSet.BaseResult.CoastAge - earliestCoast.CoastAge
			recommendations = append(recommendations,
				"Earliest Coast: "+earliestCoast.ScenarioName+" lets deposits stop "+
					fmt.Sprintf("%d years sooner", yearsDiff))
		} else {
			recommendations = append(recommendations,
				"Earliest Coast: "+earliestCoast.ScenarioName+" reaches the target by age "+
					fmt.Sprintf("%d", earliestCoast.CoastAge)+" while the base scenario never does")
		}
	}

	// Find the smallest required deposit
	smallestDeposit := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.RequiredMonthly.LessThan(smallestDeposit.RequiredMonthly) {
			smallestDeposit = alt
		}
	}

	if smallestDeposit != compSet.BaseResult {
		depositSavings := compSet.BaseResult.RequiredMonthly.Sub(smallestDeposit.RequiredMonthly)
		recommendations = append(recommendations,
			"Smallest Deposit: "+smallestDeposit.ScenarioName+" needs "+depositSavings.StringFixed(0)+
				" less per month than the base scenario")
	}

	return recommendations
}
