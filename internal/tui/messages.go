package tui

import (
	"github.com/kmenon/coastfire/internal/config"
	"github.com/kmenon/coastfire/internal/output"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneMenu Scene = iota
	SceneForm
	SceneResult
	SceneHelp
)

// Mode is the calculation a form feeds
type Mode int

const (
	ModeStatus Mode = iota
	ModeContribution
	ModePlan
	ModeCoastAge
)

// String returns a human-readable name for a mode
func (m Mode) String() string {
	switch m {
	case ModeStatus:
		return "Coast Status"
	case ModeContribution:
		return "Required Contribution"
	case ModePlan:
		return "Plan For Coast Age"
	case ModeCoastAge:
		return "Find Coast Age"
	default:
		return "Unknown"
	}
}

// Description returns the one-line menu blurb for a mode
func (m Mode) Description() string {
	switch m {
	case ModeStatus:
		return "Check whether the current portfolio coasts to the target"
	case ModeContribution:
		return "Size the monthly deposit that builds the target by retirement"
	case ModePlan:
		return "Size the deposit needed until a chosen stop age"
	case ModeCoastAge:
		return "Find the earliest age deposits can stop"
	default:
		return ""
	}
}

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ScenarioLoadedMsg signals a scenario file has been loaded and carries the
// scenario used to prefill form defaults
type ScenarioLoadedMsg struct {
	Scenario config.Scenario
}

// FormSubmittedMsg carries parsed form values ready to calculate
type FormSubmittedMsg struct {
	Values formValues
}

// ResultMsg signals a calculation has finished
type ResultMsg struct {
	Report *output.Report
}
