package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kmenon/coastfire/internal/domain"
)

// SensitivityAnalyzer sweeps one projection input across a value grid and
// re-evaluates sufficiency at every point.
type SensitivityAnalyzer struct {
	engine *Engine
}

// NewSensitivityAnalyzer creates an analyzer backed by the given engine.
func NewSensitivityAnalyzer(engine *Engine) *SensitivityAnalyzer {
	return &SensitivityAnalyzer{engine: engine}
}

// SweepParameter describes a swept input parameter.
type SweepParameter struct {
	Name      string          `json:"name"`
	BaseValue decimal.Decimal `json:"base_value"`
	MinValue  decimal.Decimal `json:"min_value"`
	MaxValue  decimal.Decimal `json:"max_value"`
	Steps     int             `json:"steps"`
}

// SweepableParameters lists the input fields AnalyzeParameter understands.
var SweepableParameters = []string{"annual_return", "inflation_rate", "monthly_expense", "current_investment"}

// SensitivityPoint is one evaluated grid point.
type SensitivityPoint struct {
	Value  decimal.Decimal         `json:"value"`
	Result domain.ProjectionResult `json:"result"`
}

// SensitivityAnalysis is the outcome of a single-parameter sweep.
type SensitivityAnalysis struct {
	Parameter SweepParameter         `json:"parameter"`
	BaseInput domain.ProjectionInput `json:"base_input"`
	Points    []SensitivityPoint     `json:"points"`

	// FlipValue is the first grid value at which sufficiency differs from
	// the lowest grid point, nil when the verdict never changes across the
	// sweep.
	FlipValue *decimal.Decimal `json:"flip_value,omitempty"`
}

// SufficientCount reports how many grid points met the target.
func (a *SensitivityAnalysis) SufficientCount() int {
	n := 0
	for _, p := range a.Points {
		if p.Result.IsSufficient {
			n++
		}
	}
	return n
}

// AnalyzeParameter evaluates the base input at every grid value of the swept
// parameter. The base input itself is never mutated.
func (sa *SensitivityAnalyzer) AnalyzeParameter(input domain.ProjectionInput, param SweepParameter) (*SensitivityAnalysis, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	values := sa.generateParameterValues(param)
	points := make([]SensitivityPoint, 0, len(values))

	for _, value := range values {
		modified, err := sa.applyParameter(input, param.Name, value)
		if err != nil {
			return nil, err
		}
		result, err := sa.engine.Evaluate(modified)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s=%s: %w", param.Name, value, err)
		}
		points = append(points, SensitivityPoint{Value: value, Result: result})
	}

	analysis := &SensitivityAnalysis{
		Parameter: param,
		BaseInput: input,
		Points:    points,
	}

	for _, p := range points[1:] {
		if p.Result.IsSufficient != points[0].Result.IsSufficient {
			v := p.Value
			analysis.FlipValue = &v
			break
		}
	}

	return analysis, nil
}

// SweepAround builds a symmetric sweep of the named parameter centered on
// its current value in the input, spread wide on each side, with the given
// number of steps.
func (sa *SensitivityAnalyzer) SweepAround(input domain.ProjectionInput, name string, spread decimal.Decimal, steps int) (*SensitivityAnalysis, error) {
	base, err := parameterValue(input, name)
	if err != nil {
		return nil, err
	}
	param := SweepParameter{
		Name:      name,
		BaseValue: base,
		MinValue:  base.Sub(spread),
		MaxValue:  base.Add(spread),
		Steps:     steps,
	}
	// Everything except the return rate must stay non-negative to remain a
	// valid input, so the grid is clipped rather than failing mid-sweep.
	if name != "annual_return" && param.MinValue.IsNegative() {
		param.MinValue = decimal.Zero
	}
	return sa.AnalyzeParameter(input, param)
}

// generateParameterValues expands a sweep definition into its grid values.
func (sa *SensitivityAnalyzer) generateParameterValues(param SweepParameter) []decimal.Decimal {
	if param.Steps <= 1 {
		return []decimal.Decimal{param.BaseValue}
	}

	stepSize := param.MaxValue.Sub(param.MinValue).Div(decimal.NewFromInt(int64(param.Steps - 1)))
	values := make([]decimal.Decimal, 0, param.Steps)
	for i := 0; i < param.Steps; i++ {
		values = append(values, param.MinValue.Add(stepSize.Mul(decimal.NewFromInt(int64(i)))))
	}
	return values
}

// applyParameter returns a copy of the input with one field replaced.
func (sa *SensitivityAnalyzer) applyParameter(input domain.ProjectionInput, name string, value decimal.Decimal) (domain.ProjectionInput, error) {
	switch name {
	case "annual_return":
		input.AnnualReturn = value
	case "inflation_rate":
		input.InflationRate = value
	case "monthly_expense":
		input.MonthlyExpense = value
	case "current_investment":
		input.CurrentInvestment = value
	default:
		return input, fmt.Errorf("unknown sweep parameter %q", name)
	}
	return input, nil
}

func parameterValue(input domain.ProjectionInput, name string) (decimal.Decimal, error) {
	switch name {
	case "annual_return":
		return input.AnnualReturn, nil
	case "inflation_rate":
		return input.InflationRate, nil
	case "monthly_expense":
		return input.MonthlyExpense, nil
	case "current_investment":
		return input.CurrentInvestment, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unknown sweep parameter %q", name)
	}
}
