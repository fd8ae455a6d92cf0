package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmenon/coastfire/internal/tui"
)

func main() {
	// An optional scenario file pre-fills the calculator forms
	scenarioPath := ""
	if len(os.Args) > 1 {
		scenarioPath = os.Args[1]
	}

	if scenarioPath != "" {
		if _, err := os.Stat(scenarioPath); os.IsNotExist(err) {
			fmt.Printf("Error: Scenario file not found: %s\n", scenarioPath)
			os.Exit(1)
		}
	}

	// Create the application model
	model := tui.NewModel(scenarioPath)

	// Create the Bubble Tea program
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	// Run the program
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
