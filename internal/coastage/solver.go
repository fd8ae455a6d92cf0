package coastage

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kmenon/coastfire/internal/calculation"
	"github.com/kmenon/coastfire/internal/domain"
)

// Solver finds the earliest age at which contributions can stop
type Solver struct {
	CalcEngine *calculation.Engine
	Options    SolverOptions
}

// NewSolver creates a new coast age solver
func NewSolver(calcEngine *calculation.Engine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.Engine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve scans candidate ages from the current age up to the retirement age
// and returns the first at which the accumulated deposits, left to compound
// untouched, still reach the target at retirement. Only the deposits are
// sized here; the portfolio already held is evaluated separately.
//
// When no candidate clears the target, the result falls back to the
// retirement age itself with Success false.
func (s *Solver) Solve(ctx context.Context, req SolveRequest) (*SolveResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	engine := s.engine()
	target := engine.TargetNumber(req.Input.MonthlyExpense, req.Input.InflationRate, req.Input.YearsToGrow())

	result := &SolveResult{Request: req}
	var last CandidateEvaluation

	for age := req.Input.CurrentAge; age <= req.Input.RetirementAge; age++ {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result.Iterations++

		candidate := evaluateCandidate(req, age, target)
		last = candidate
		if s.Options.CollectTrace {
			result.Trace = append(result.Trace, candidate)
		}

		if candidate.Reached {
			result.Success = true
			result.ConvergenceInfo = fmt.Sprintf("Coast point found after %d candidate ages", result.Iterations)
			result.Result = coastAgeResult(candidate, target)
			return result, nil
		}
	}

	result.ConvergenceInfo = fmt.Sprintf("No coast point before retirement; deposits must continue to age %d", req.Input.RetirementAge)
	result.Result = coastAgeResult(last, target)
	return result, nil
}

// evaluateCandidate projects a single stop-contributing age: deposits earn
// the schedule's effective rate until the age, then the balance coasts at
// the advanced schedule's effective rate over the remaining years.
func evaluateCandidate(req SolveRequest, age int, target decimal.Decimal) CandidateEvaluation {
	yearsContributing := age - req.Input.CurrentAge
	yearsCoasting := req.Input.RetirementAge - age

	contributionRate := req.Schedule.EffectiveRate(yearsContributing)
	accumulated := calculation.FutureValueOfContributions(req.MonthlyContribution, contributionRate, yearsContributing)

	coastRate := req.Schedule.Advance(yearsContributing).EffectiveRate(yearsCoasting)
	projected := calculation.FutureValue(accumulated, coastRate, yearsCoasting)

	return CandidateEvaluation{
		Age:               age,
		YearsContributing: yearsContributing,
		ContributionRate:  contributionRate,
		Accumulated:       accumulated,
		CoastRate:         coastRate,
		Projected:         projected,
		Reached:           projected.GreaterThanOrEqual(target),
	}
}

func coastAgeResult(candidate CandidateEvaluation, target decimal.Decimal) domain.CoastAgeResult {
	return domain.CoastAgeResult{
		CoastAge:              candidate.Age,
		AccumulatedAtCoastAge: candidate.Accumulated,
		ProjectedAtRetirement: candidate.Projected,
		TargetNumber:          target,
	}
}

func (s *Solver) engine() *calculation.Engine {
	if s.CalcEngine != nil {
		return s.CalcEngine
	}
	return calculation.NewEngine()
}
