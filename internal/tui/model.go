package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmenon/coastfire/internal/calculation"
	"github.com/kmenon/coastfire/internal/coastage"
	"github.com/kmenon/coastfire/internal/config"
	"github.com/kmenon/coastfire/internal/output"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Prefill source
	scenarioPath string
	defaults     config.Scenario

	// Engines
	calcEngine *calculation.Engine
	solver     *coastage.Solver

	// Menu and form state
	menuIndex int
	mode      Mode
	form      FormModel

	// Last calculation
	report *output.Report

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model. The scenario path is optional;
// when set, its first scenario prefills the form defaults.
func NewModel(scenarioPath string) Model {
	engine := calculation.NewEngine()

	return Model{
		currentScene: SceneMenu,
		scenarioPath: scenarioPath,
		defaults:     config.DefaultScenario(),
		calcEngine:   engine,
		solver:       coastage.NewDefaultSolver(engine),
		width:        80,
		height:       24,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.scenarioPath == "" {
		return nil
	}
	return loadScenarioCmd(m.scenarioPath)
}

// loadScenarioCmd returns a command that loads the scenario file
func loadScenarioCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		file, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		return ScenarioLoadedMsg{Scenario: file.Scenarios[0]}
	}
}

// calculateCmd returns a command that runs the selected calculation
func (m Model) calculateCmd(values formValues) tea.Cmd {
	engine := m.calcEngine
	solver := m.solver
	mode := m.mode
	name := m.defaults.Name

	return func() tea.Msg {
		report, err := runCalculation(engine, solver, mode, name, values)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ResultMsg{Report: report}
	}
}

// runCalculation evaluates the base projection and attaches the extra
// figures the mode asks for
func runCalculation(engine *calculation.Engine, solver *coastage.Solver, mode Mode, name string, values formValues) (*output.Report, error) {
	// The engine takes one scalar rate, so the glide path collapses here
	input := values.input
	input.AnnualReturn = values.schedule.EffectiveRate(input.YearsToGrow())

	result, err := engine.Evaluate(input)
	if err != nil {
		return nil, err
	}

	report := output.NewReport(name, "", input, result)
	report.Schedule = values.schedule

	switch mode {
	case ModeContribution:
		plan, err := engine.CalculateContributionPlan(input)
		if err != nil {
			return nil, err
		}
		report.ContributionPlan = plan

	case ModePlan:
		plan, err := engine.CalculateCoastPlan(input, values.coastAge)
		if err != nil {
			return nil, err
		}
		report.CoastPlan = plan

	case ModeCoastAge:
		solve, err := solver.Solve(context.Background(), coastage.SolveRequest{
			Input:               input,
			MonthlyContribution: values.deposit,
			Schedule:            values.schedule,
		})
		if err != nil {
			return nil, err
		}
		report.CoastAge = solve
	}

	return report, nil
}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "Menu"
	case SceneForm:
		return "Calculator"
	case SceneResult:
		return "Results"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
