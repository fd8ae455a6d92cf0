package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/kmenon/coastfire/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneMenu:
		content = m.renderMenu()
	case SceneForm:
		content = m.renderForm()
	case SceneResult:
		content = m.renderResult()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 4 // Title (2) + status (1) + padding (1)

	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Coast FIRE Planner")

	breadcrumb := m.currentScene.String()
	if m.currentScene == SceneForm || m.currentScene == SceneResult {
		breadcrumb = fmt.Sprintf("%s / %s", m.currentScene.String(), m.mode.String())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		SubtitleStyle.Render(breadcrumb),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("enter", "select"),
		formatShortcut("esc", "back"),
		formatShortcut("m", "menu"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderLoading renders a loading message
func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}

	content := BorderStyle.Render(fmt.Sprintf("⠋ %s", message))

	return m.renderApp(content)
}

// renderError renders an error message
func (m Model) renderError() string {
	errorMsg := "An error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", errorMsg),
	)

	return m.renderApp(content)
}

// renderMenu renders the mode selection menu
func (m Model) renderMenu() string {
	var b strings.Builder

	b.WriteString(SectionStyle.Render("What do you want to work out?"))
	b.WriteString("\n\n")

	for i, mode := range menuModes {
		cursor := "  "
		style := UnselectedItemStyle
		if i == m.menuIndex {
			cursor = "▸ "
			style = SelectedItemStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d. %s", cursor, i+1, mode.String())))
		b.WriteString("\n")
		b.WriteString(HintStyle.Render("     " + mode.Description()))
		b.WriteString("\n\n")
	}

	b.WriteString(HintStyle.Render(fmt.Sprintf("Forms prefill from scenario %q", m.defaults.Name)))

	return BorderStyle.Render(b.String())
}

// renderForm renders the active input form
func (m Model) renderForm() string {
	header := SectionStyle.Render(m.mode.String())

	return BorderStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		m.form.View(),
	))
}

// renderResult renders the last calculation
func (m Model) renderResult() string {
	if m.report == nil {
		return BorderStyle.Render("No results yet. Pick a calculation from the menu.")
	}

	r := m.report
	currency := r.Currency
	if currency == "" {
		currency = output.DefaultCurrency
	}

	var b strings.Builder

	b.WriteString(SectionStyle.Render("Projection"))
	b.WriteString("\n")
	b.WriteString(metricRow("Years to grow", strconv.Itoa(r.Result.YearsToGrow)))
	b.WriteString(metricRow("Annual expense then", output.FormatCurrency(r.Result.AnnualExpenseAtRetirement, currency)))
	b.WriteString(metricRow("Target number", output.FormatCurrency(r.Result.TargetNumber, currency)))
	b.WriteString(metricRow("Projected value", output.FormatCurrency(r.Result.ProjectedValue, currency)))
	b.WriteString(signedMetricRow("Surplus / shortfall", r.Result.SurplusOrShortfall, currency))

	if plan := r.ContributionPlan; plan != nil {
		b.WriteString("\n")
		b.WriteString(SectionStyle.Render("Contribution plan"))
		b.WriteString("\n")
		if plan.IsSufficient {
			b.WriteString(HintStyle.Render("No deposit needed, the lump sum already coasts to the target"))
			b.WriteString("\n")
		} else {
			b.WriteString(metricRow("Required monthly", output.FormatCurrency(plan.RequiredMonthly, currency)))
		}
		b.WriteString(metricRow("Lump sum grows to", output.FormatCurrency(plan.LumpSumFutureValue, currency)))
	}

	if plan := r.CoastPlan; plan != nil {
		b.WriteString("\n")
		b.WriteString(SectionStyle.Render("Coast plan"))
		b.WriteString("\n")
		b.WriteString(metricRow("Stop deposits at age", strconv.Itoa(plan.CoastAge)))
		b.WriteString(metricRow("Amount needed by then", output.FormatCurrency(plan.AmountAtCoastAge, currency)))
		b.WriteString(metricRow("Required monthly", output.FormatCurrency(plan.RequiredMonthly, currency)))
		b.WriteString(metricRow("Retirement withdrawal", output.FormatCurrency(plan.MonthlyWithdrawal, currency)+" per month"))
	}

	if solve := r.CoastAge; solve != nil {
		b.WriteString("\n")
		b.WriteString(SectionStyle.Render("Coast age search"))
		b.WriteString("\n")
		b.WriteString(metricRow("Monthly deposit", output.FormatCurrency(solve.Request.MonthlyContribution, currency)))
		b.WriteString(metricRow("Coast age", strconv.Itoa(solve.Result.CoastAge)))
		b.WriteString(metricRow("Accumulated by then", output.FormatCurrency(solve.Result.AccumulatedAtCoastAge, currency)))
		b.WriteString(metricRow("Projected at retirement", output.FormatCurrency(solve.Result.ProjectedAtRetirement, currency)))
		if !solve.Success {
			b.WriteString(HintStyle.Render(solve.ConvergenceInfo))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n\n")
	b.WriteString(HintStyle.Render("enter edit inputs • esc back to menu"))

	return BorderStyle.Render(b.String())
}

// renderStatusLine renders the one-line verdict for the projection
func (m Model) renderStatusLine() string {
	r := m.report

	if r.Result.IsSufficient {
		return MetricPositiveStyle.Render("ACHIEVED, the current portfolio can coast to the target")
	}
	if r.CoastAge != nil && r.CoastAge.Success {
		return MetricPositiveStyle.Render(
			fmt.Sprintf("REACHABLE, contributions can stop at age %d", r.CoastAge.Result.CoastAge))
	}
	return MetricNegativeStyle.Render("NOT YET, the projection falls short of the target")
}

func metricRow(label, value string) string {
	return MetricLabelStyle.Render(label) + MetricValueStyle.Render(value) + "\n"
}

func signedMetricRow(label string, amount decimal.Decimal, currency string) string {
	style := MetricPositiveStyle
	if amount.IsNegative() {
		style = MetricNegativeStyle
	}
	return MetricLabelStyle.Render(label) + style.Render(output.FormatCurrencySigned(amount, currency)) + "\n"
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `Coast FIRE Planner

KEYBOARD SHORTCUTS:
  1-4      Open a calculation directly
  ↑/↓      Move through menus and form fields
  Enter    Select / next field / submit on the last field
  e        Edit inputs again from a result
  m        Back to the menu
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

FORMS:
  Fields prefill from the loaded scenario.
  Percent fields take whole percents, so 7 means 7% a year.
  The return decrease is the yearly drop applied to the
  annual return as the portfolio ages.

MODES:
  Coast Status           is the lump sum already enough?
  Required Contribution  monthly deposit to build the target
  Plan For Coast Age     deposit needed until a chosen stop age
  Find Coast Age         earliest age deposits can stop`

	return BorderStyle.Render(helpText)
}
