package coastage

import (
	"github.com/shopspring/decimal"

	"github.com/kmenon/coastfire/internal/domain"
)

// SolveRequest defines the parameters for a coast age search
type SolveRequest struct {
	Input               domain.ProjectionInput `json:"input"`
	MonthlyContribution decimal.Decimal        `json:"monthly_contribution"`
	Schedule            domain.ReturnSchedule  `json:"schedule"`
}

// NewSolveRequest builds a request that deposits at the input's flat annual return
func NewSolveRequest(input domain.ProjectionInput, monthlyContribution decimal.Decimal) SolveRequest {
	return SolveRequest{
		Input:               input,
		MonthlyContribution: monthlyContribution,
		Schedule:            domain.FlatSchedule(input.AnnualReturn),
	}
}

// Validate checks if the request is internally consistent
func (r *SolveRequest) Validate() error {
	if err := r.Input.Validate(); err != nil {
		return err
	}

	if r.MonthlyContribution.IsNegative() {
		return &CoastAgeError{
			Operation: "validate_request",
			Message:   "monthly_contribution must be non-negative",
		}
	}

	if r.Schedule.InitialRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return &CoastAgeError{
			Operation: "validate_request",
			Message:   "schedule initial rate must be greater than -100%",
		}
	}
	if r.Schedule.AnnualDecrease.IsNegative() {
		return &CoastAgeError{
			Operation: "validate_request",
			Message:   "schedule annual decrease must be non-negative",
		}
	}

	return nil
}

// SolveResult contains the outcome of a coast age search
type SolveResult struct {
	// Search metadata
	Request         SolveRequest `json:"request"`
	Success         bool         `json:"success"`
	Iterations      int          `json:"iterations"`
	ConvergenceInfo string       `json:"convergence_info,omitempty"`

	// Coast point found (the retirement age itself when Success is false)
	Result domain.CoastAgeResult `json:"result"`

	// Every candidate age considered, oldest first (only when requested)
	Trace []CandidateEvaluation `json:"trace,omitempty"`
}

// CandidateEvaluation records one stop-contributing age considered by the scan
type CandidateEvaluation struct {
	Age               int             `json:"age"`
	YearsContributing int             `json:"years_contributing"`
	ContributionRate  decimal.Decimal `json:"contribution_rate"`
	Accumulated       decimal.Decimal `json:"accumulated"`
	CoastRate         decimal.Decimal `json:"coast_rate"`
	Projected         decimal.Decimal `json:"projected"`
	Reached           bool            `json:"reached"`
}

// MultiContributionResult contains results across several deposit levels
type MultiContributionResult struct {
	Results              []SolveResult
	EarliestCoast        *SolveResult
	SmallestContribution *SolveResult
	Recommendations      []string
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	CollectTrace bool // Record every candidate age considered
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		CollectTrace: false,
	}
}

// CoastAgeError represents errors from the coast age solver
type CoastAgeError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *CoastAgeError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *CoastAgeError) Unwrap() error {
	return e.Cause
}
