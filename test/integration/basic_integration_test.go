package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmenon/coastfire/internal/calculation"
	"github.com/kmenon/coastfire/internal/coastage"
	"github.com/kmenon/coastfire/internal/config"
	"github.com/kmenon/coastfire/internal/output"
)

// TestBasicIntegration tests basic end-to-end functionality
func TestBasicIntegration(t *testing.T) {
	t.Run("scenario_loading", func(t *testing.T) {
		parser := config.NewInputParser()
		file, err := parser.LoadFromFile("../testdata/example_scenarios.yaml")
		require.NoError(t, err, "Should load scenario file successfully")
		require.NotNil(t, file, "Scenario file should not be nil")

		assert.NotEmpty(t, file.Scenarios, "Should have scenarios")
		for _, scenario := range file.Scenarios {
			assert.NotEmpty(t, scenario.Name, "Scenario should have a name")
			assert.Greater(t, scenario.RetirementAge, scenario.CurrentAge, "Retirement must come after today")
		}
	})

	t.Run("projection_engine", func(t *testing.T) {
		parser := config.NewInputParser()
		file, err := parser.LoadFromFile("../testdata/example_scenarios.yaml")
		require.NoError(t, err)

		engine := calculation.NewEngine()
		require.NotNil(t, engine, "Calculation engine should not be nil")

		for _, scenario := range file.Scenarios {
			input := scenario.ResolvedInput()

			result, err := engine.Evaluate(input)
			require.NoError(t, err, "Should evaluate scenario %s", scenario.Name)
			assert.True(t, result.TargetNumber.IsPositive(), "Target should be positive")
			assert.True(t, result.AnnualExpenseAtRetirement.IsPositive(), "Inflated expense should be positive")

			plan, err := engine.CalculateContributionPlan(input)
			require.NoError(t, err, "Should size a contribution for scenario %s", scenario.Name)
			assert.Equal(t, result.TargetNumber, plan.TargetNumber, "Plan and projection must share the target")
			assert.False(t, plan.RequiredMonthly.IsNegative(), "Required deposit cannot be negative")

			if scenario.CoastAge != 0 {
				coastPlan, err := engine.CalculateCoastPlan(input, scenario.CoastAge)
				require.NoError(t, err, "Should plan for coast age in scenario %s", scenario.Name)
				assert.Equal(t, scenario.CoastAge, coastPlan.CoastAge)
				assert.True(t, coastPlan.AmountAtCoastAge.IsPositive(), "Coast amount should be positive")
				assert.True(t, coastPlan.AmountAtCoastAge.LessThan(coastPlan.TargetNumber),
					"The amount needed at the coast age must be below the final target")
			}
		}
	})

	t.Run("coast_age_solver", func(t *testing.T) {
		parser := config.NewInputParser()
		file, err := parser.LoadFromFile("../testdata/example_scenarios.yaml")
		require.NoError(t, err)

		engine := calculation.NewEngine()
		solver := coastage.NewDefaultSolver(engine)

		for _, scenario := range file.Scenarios {
			solve, err := solver.Solve(context.Background(), coastage.SolveRequest{
				Input:               scenario.ResolvedInput(),
				MonthlyContribution: scenario.Contribution(),
				Schedule:            scenario.Schedule(),
			})
			require.NoError(t, err, "Should solve scenario %s", scenario.Name)

			assert.Greater(t, solve.Iterations, 0, "Solver should evaluate at least one age")
			assert.GreaterOrEqual(t, solve.Result.CoastAge, scenario.CurrentAge)
			assert.LessOrEqual(t, solve.Result.CoastAge, scenario.RetirementAge)
			assert.NotEmpty(t, solve.ConvergenceInfo, "Solver should explain its outcome")
		}
	})

	t.Run("output_generation", func(t *testing.T) {
		parser := config.NewInputParser()
		file, err := parser.LoadFromFile("../testdata/example_scenarios.yaml")
		require.NoError(t, err)

		engine := calculation.NewEngine()
		scenario := file.Scenarios[0]
		input := scenario.ResolvedInput()

		result, err := engine.Evaluate(input)
		require.NoError(t, err)

		report := output.NewReport(scenario.Name, "INR", input, result)
		report.Schedule = scenario.Schedule()

		for _, name := range output.AvailableFormatterNames() {
			formatter := output.GetFormatterByName(name)
			require.NotNil(t, formatter, "Formatter %s should be registered", name)

			data, err := formatter.Format(report)
			assert.NoError(t, err, "Should generate %s output", name)
			assert.NotEmpty(t, data, "%s output should not be empty", name)
		}
	})

	t.Run("scenario_validation", func(t *testing.T) {
		parser := config.NewInputParser()
		file, err := parser.LoadFromFile("../testdata/example_scenarios.yaml")
		require.NoError(t, err)

		err = parser.ValidateScenarioFile(file)
		assert.NoError(t, err, "Valid scenario file should pass validation")
	})
}

// TestErrorHandling tests error conditions
func TestErrorHandling(t *testing.T) {
	t.Run("missing_scenario_file", func(t *testing.T) {
		parser := config.NewInputParser()
		_, err := parser.LoadFromFile("nonexistent.yaml")
		assert.Error(t, err, "Should fail for a missing scenario file")
	})

	t.Run("empty_scenario_file", func(t *testing.T) {
		parser := config.NewInputParser()
		err := parser.ValidateScenarioFile(&config.ScenarioFile{})
		assert.Error(t, err, "Should fail validation without scenarios")
	})

	t.Run("invalid_scenario_input", func(t *testing.T) {
		scenario := config.DefaultScenario()
		scenario.RetirementAge = scenario.CurrentAge

		engine := calculation.NewEngine()
		_, err := engine.Evaluate(scenario.ResolvedInput())
		assert.Error(t, err, "Should reject retirement at the current age")
	})
}

// TestPerformance tests basic performance requirements
func TestPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping performance tests in short mode")
	}

	t.Run("solver_performance", func(t *testing.T) {
		parser := config.NewInputParser()
		file, err := parser.LoadFromFile("../testdata/example_scenarios.yaml")
		require.NoError(t, err)

		engine := calculation.NewEngine()
		solver := coastage.NewSolver(engine, coastage.SolverOptions{CollectTrace: true})
		scenario := file.Scenarios[0]

		start := time.Now()
		solve, err := solver.Solve(context.Background(), coastage.SolveRequest{
			Input:               scenario.ResolvedInput(),
			MonthlyContribution: scenario.Contribution(),
			Schedule:            scenario.Schedule(),
		})
		duration := time.Since(start)

		require.NoError(t, err, "Should complete the solve")
		assert.Less(t, duration, 5*time.Second, "Solving one scenario should be fast")

		t.Logf("Solve completed in %v over %d candidate ages", duration, solve.Iterations)
	})
}

// TestDataConsistency tests data consistency across operations
func TestDataConsistency(t *testing.T) {
	t.Run("calculation_consistency", func(t *testing.T) {
		parser := config.NewInputParser()
		file, err := parser.LoadFromFile("../testdata/example_scenarios.yaml")
		require.NoError(t, err)

		engine := calculation.NewEngine()

		// The engine is pure decimal arithmetic, so repeated runs must
		// agree exactly
		for _, scenario := range file.Scenarios {
			input := scenario.ResolvedInput()

			first, err := engine.Evaluate(input)
			require.NoError(t, err)

			second, err := engine.Evaluate(input)
			require.NoError(t, err)

			assert.True(t, first.ProjectedValue.Equal(second.ProjectedValue),
				"Projected value should match: %s vs %s",
				first.ProjectedValue.StringFixed(2), second.ProjectedValue.StringFixed(2))
			assert.True(t, first.TargetNumber.Equal(second.TargetNumber),
				"Target should match: %s vs %s",
				first.TargetNumber.StringFixed(2), second.TargetNumber.StringFixed(2))
			assert.Equal(t, first.IsSufficient, second.IsSufficient, "Verdict should match")
		}
	})

	t.Run("solver_matches_engine_target", func(t *testing.T) {
		parser := config.NewInputParser()
		file, err := parser.LoadFromFile("../testdata/example_scenarios.yaml")
		require.NoError(t, err)

		engine := calculation.NewEngine()
		solver := coastage.NewDefaultSolver(engine)
		scenario := file.Scenarios[0]
		input := scenario.ResolvedInput()

		result, err := engine.Evaluate(input)
		require.NoError(t, err)

		solve, err := solver.Solve(context.Background(), coastage.SolveRequest{
			Input:               input,
			MonthlyContribution: scenario.Contribution(),
			Schedule:            scenario.Schedule(),
		})
		require.NoError(t, err)

		assert.True(t, result.TargetNumber.Equal(solve.Result.TargetNumber),
			"The solver and the projection must chase the same target")
	})
}
