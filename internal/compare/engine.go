package compare

import (
	"context"
	"fmt"

	"github.com/kmenon/coastfire/internal/calculation"
	"github.com/kmenon/coastfire/internal/coastage"
	"github.com/kmenon/coastfire/internal/config"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	Solver            *coastage.Solver
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		Solver:            coastage.NewDefaultSolver(calcEngine),
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Name of the base scenario to compare against
	ScenarioNames    []string // Alternatives to include, every other scenario when empty
	SourcePath       string   // Where the scenarios were loaded from, for display
}

// Compare evaluates the base scenario and each alternative against it
func (ce *CompareEngine) Compare(
	ctx context.Context,
	file *config.ScenarioFile,
	options CompareOptions,
) (*ComparisonSet, error) {

	baseScenario, err := file.ScenarioByName(options.BaseScenarioName)
	if err != nil {
		return nil, fmt.Errorf("base scenario %s not found in configuration", options.BaseScenarioName)
	}

	baseResult, err := ce.evaluateScenario(ctx, baseScenario)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate base scenario: %w", err)
	}

	names := options.ScenarioNames
	if len(names) == 0 {
		for _, scenario := range file.Scenarios {
			if scenario.Name != options.BaseScenarioName {
				names = append(names, scenario.Name)
			}
		}
	}

	alternatives := []ComparisonResult{}

	for _, name := range names {
		scenario, err := file.ScenarioByName(name)
		if err != nil {
			return nil, fmt.Errorf("alternative scenario %s not found", name)
		}

		altResult, err := ce.evaluateScenario(ctx, scenario)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate scenario %s: %w", name, err)
		}

		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   options.BaseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
		SourcePath:         options.SourcePath,
	}

	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// evaluateScenario runs the sufficiency projection, the coast age search and
// the contribution sizing for one scenario and flattens them into metrics.
func (ce *CompareEngine) evaluateScenario(ctx context.Context, scenario *config.Scenario) (ComparisonResult, error) {
	input := scenario.ResolvedInput()

	result, err := ce.CalcEngine.Evaluate(input)
	if err != nil {
		return ComparisonResult{}, err
	}

	solve, err := ce.Solver.Solve(ctx, coastage.SolveRequest{
		Input:               input,
		MonthlyContribution: scenario.Contribution(),
		Schedule:            scenario.Schedule(),
	})
	if err != nil {
		return ComparisonResult{}, err
	}

	plan, err := ce.CalcEngine.CalculateContributionPlan(input)
	if err != nil {
		return ComparisonResult{}, err
	}

	return ce.MetricsCalculator.CalculateMetrics(scenario.Name, result, solve, plan), nil
}
