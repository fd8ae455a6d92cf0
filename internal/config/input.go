package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/kmenon/coastfire/internal/domain"
)

// Scenario is one named set of projection inputs as written in YAML.
// Numbers stay in plain float64/int form here and are converted to
// decimals at the domain boundary.
type Scenario struct {
	Name                string  `yaml:"name" json:"name"`
	CurrentAge          int     `yaml:"current_age" json:"current_age"`
	RetirementAge       int     `yaml:"retirement_age" json:"retirement_age"`
	CurrentInvestment   float64 `yaml:"current_investment" json:"current_investment"`
	AnnualReturn        float64 `yaml:"annual_return" json:"annual_return"`
	ReturnDecrease      float64 `yaml:"return_decrease,omitempty" json:"return_decrease,omitempty"`
	MonthlyExpense      float64 `yaml:"monthly_expense" json:"monthly_expense"`
	InflationRate       float64 `yaml:"inflation_rate" json:"inflation_rate"`
	MonthlyContribution float64 `yaml:"monthly_contribution,omitempty" json:"monthly_contribution,omitempty"`
	CoastAge            int     `yaml:"coast_age,omitempty" json:"coast_age,omitempty"`
	WithdrawalRate      float64 `yaml:"withdrawal_rate,omitempty" json:"withdrawal_rate,omitempty"`
}

// ScenarioFile is the top-level scenario document
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Input converts the scenario's YAML fields into a domain input
func (s *Scenario) Input() domain.ProjectionInput {
	return domain.ProjectionInput{
		CurrentAge:        s.CurrentAge,
		RetirementAge:     s.RetirementAge,
		CurrentInvestment: decimal.NewFromFloat(s.CurrentInvestment),
		AnnualReturn:      decimal.NewFromFloat(s.AnnualReturn),
		MonthlyExpense:    decimal.NewFromFloat(s.MonthlyExpense),
		InflationRate:     decimal.NewFromFloat(s.InflationRate),
	}
}

// Schedule returns the scenario's declining return schedule
func (s *Scenario) Schedule() domain.ReturnSchedule {
	return domain.ReturnSchedule{
		InitialRate:    decimal.NewFromFloat(s.AnnualReturn),
		AnnualDecrease: decimal.NewFromFloat(s.ReturnDecrease),
	}
}

// ResolvedInput converts the scenario and collapses its return schedule into
// the single rate the projection engine expects. With no return decrease the
// rate passes through unchanged.
func (s *Scenario) ResolvedInput() domain.ProjectionInput {
	input := s.Input()
	input.AnnualReturn = s.Schedule().EffectiveRate(input.YearsToGrow())
	return input
}

// Contribution returns the scenario's monthly deposit
func (s *Scenario) Contribution() decimal.Decimal {
	return decimal.NewFromFloat(s.MonthlyContribution)
}

// ScenarioByName finds a scenario in the file
func (f *ScenarioFile) ScenarioByName(name string) (*Scenario, error) {
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == name {
			return &f.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found", name)
}

// DefaultScenario mirrors the interactive tool's pre-filled answers
func DefaultScenario() Scenario {
	return Scenario{
		Name:                "base",
		CurrentAge:          35,
		RetirementAge:       60,
		CurrentInvestment:   250000,
		AnnualReturn:        0.07,
		ReturnDecrease:      0.001,
		MonthlyExpense:      4000,
		InflationRate:       0.03,
		MonthlyContribution: 25000,
		CoastAge:            40,
	}
}

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenarios from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	file, err := ip.LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filename, err)
	}

	return file, nil
}

// LoadFromBytes parses and validates scenario YAML
func (ip *InputParser) LoadFromBytes(data []byte) (*ScenarioFile, error) {
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenarioFile(&file); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &file, nil
}

// ValidateScenarioFile validates every scenario in the file
func (ip *InputParser) ValidateScenarioFile(file *ScenarioFile) error {
	if len(file.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool)
	for i := range file.Scenarios {
		scenario := &file.Scenarios[i]

		if err := ip.validateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}

		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name: %s", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	input := scenario.Input()
	if err := input.Validate(); err != nil {
		return err
	}

	if scenario.MonthlyContribution < 0 {
		return fmt.Errorf("monthly_contribution must be non-negative")
	}
	if scenario.ReturnDecrease < 0 {
		return fmt.Errorf("return_decrease must be non-negative")
	}
	if scenario.WithdrawalRate < 0 {
		return fmt.Errorf("withdrawal_rate must be non-negative")
	}

	// A zero coast age means the scenario does not pin one
	if scenario.CoastAge != 0 {
		if scenario.CoastAge <= scenario.CurrentAge {
			return fmt.Errorf("coast_age must be greater than current_age")
		}
		if scenario.CoastAge > scenario.RetirementAge {
			return fmt.Errorf("coast_age must not be greater than retirement_age")
		}
	}

	return nil
}
