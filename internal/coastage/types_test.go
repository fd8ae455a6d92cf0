package coastage

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kmenon/coastfire/internal/domain"
)

func TestDefaultSolverOptions(t *testing.T) {
	options := DefaultSolverOptions()

	if options.CollectTrace {
		t.Error("Expected trace collection to be off by default")
	}
}

func TestNewSolveRequest(t *testing.T) {
	input := solveInput()
	req := NewSolveRequest(input, decimal.NewFromInt(25000))

	if !req.MonthlyContribution.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("Expected contribution 25000, got %s", req.MonthlyContribution)
	}

	if !req.Schedule.InitialRate.Equal(input.AnnualReturn) {
		t.Errorf("Expected the schedule to start at the input's return rate, got %s",
			req.Schedule.InitialRate)
	}

	if !req.Schedule.AnnualDecrease.IsZero() {
		t.Errorf("Expected a flat schedule, got decrease %s", req.Schedule.AnnualDecrease)
	}
}

func TestSolveRequest_Validate_NegativeContribution(t *testing.T) {
	req := NewSolveRequest(solveInput(), decimal.NewFromInt(-500))

	err := req.Validate()
	if err == nil {
		t.Fatal("Expected error for negative contribution")
	}

	if _, ok := err.(*CoastAgeError); !ok {
		t.Errorf("Expected CoastAgeError, got %T", err)
	}
}

func TestSolveRequest_Validate_InvalidInput(t *testing.T) {
	input := solveInput()
	input.CurrentAge = -3
	req := NewSolveRequest(input, decimal.NewFromInt(25000))

	err := req.Validate()
	if err == nil {
		t.Fatal("Expected error for invalid input")
	}

	if !domain.IsValidationError(err) {
		t.Errorf("Expected a validation error, got %T", err)
	}
}

func TestSolveRequest_Validate_Schedule(t *testing.T) {
	tests := []struct {
		name     string
		schedule domain.ReturnSchedule
		wantErr  bool
	}{
		{
			name: "valid glide",
			schedule: domain.ReturnSchedule{
				InitialRate:    decimal.NewFromFloat(0.07),
				AnnualDecrease: decimal.NewFromFloat(0.001),
			},
			wantErr: false,
		},
		{
			name: "total loss rate",
			schedule: domain.ReturnSchedule{
				InitialRate: decimal.NewFromInt(-1),
			},
			wantErr: true,
		},
		{
			name: "negative decrease",
			schedule: domain.ReturnSchedule{
				InitialRate:    decimal.NewFromFloat(0.07),
				AnnualDecrease: decimal.NewFromFloat(-0.001),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewSolveRequest(solveInput(), decimal.NewFromInt(25000))
			req.Schedule = tt.schedule

			err := req.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestCoastAgeError_Error(t *testing.T) {
	err := &CoastAgeError{
		Operation: "solve",
		Message:   "something went wrong",
	}

	expected := "solve: something went wrong"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestCoastAgeError_ErrorWithCause(t *testing.T) {
	cause := errors.New("root cause")
	err := &CoastAgeError{
		Operation: "solve",
		Message:   "something went wrong",
		Cause:     cause,
	}

	expected := "solve: something went wrong: root cause"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("Expected the cause to be unwrappable")
	}
}
