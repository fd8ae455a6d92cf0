package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/kmenon/coastfire/internal/config"
	"github.com/kmenon/coastfire/internal/domain"
)

var decimalHundred = decimal.NewFromInt(100)

// Field order inside the form. The extra slot holds the coast age or the
// monthly deposit depending on the mode.
const (
	fieldCurrentAge = iota
	fieldRetirementAge
	fieldCurrentInvestment
	fieldMonthlyExpense
	fieldAnnualReturn
	fieldReturnDecrease
	fieldInflation
	fieldExtra
)

// formValues are the parsed, domain-ready contents of a submitted form.
// Percent fields arrive as whole percents and leave as fractions.
type formValues struct {
	input    domain.ProjectionInput
	schedule domain.ReturnSchedule
	coastAge int
	deposit  decimal.Decimal
}

// FormModel is the input form for one calculation mode
type FormModel struct {
	mode   Mode
	labels []string
	inputs []textinput.Model
	focus  int
}

// newFormModel builds a form prefilled from the given scenario
func newFormModel(mode Mode, defaults config.Scenario) FormModel {
	type field struct {
		label       string
		value       string
		placeholder string
	}

	num := func(v float64) string { return decimal.NewFromFloat(v).String() }
	pct := func(v float64) string { return decimal.NewFromFloat(v).Mul(decimalHundred).String() }

	fields := []field{
		{"Current age", strconv.Itoa(defaults.CurrentAge), "35"},
		{"Retirement age", strconv.Itoa(defaults.RetirementAge), "60"},
		{"Current investment", num(defaults.CurrentInvestment), "250000"},
		{"Monthly expense", num(defaults.MonthlyExpense), "4000"},
		{"Annual return %", pct(defaults.AnnualReturn), "7"},
		{"Return decrease %/yr", pct(defaults.ReturnDecrease), "0.1"},
		{"Inflation %", pct(defaults.InflationRate), "3"},
	}

	switch mode {
	case ModePlan:
		value := ""
		if defaults.CoastAge > 0 {
			value = strconv.Itoa(defaults.CoastAge)
		}
		fields = append(fields, field{"Stop deposits at age", value, "40"})
	case ModeCoastAge:
		value := ""
		if defaults.MonthlyContribution > 0 {
			value = num(defaults.MonthlyContribution)
		}
		fields = append(fields, field{"Monthly deposit", value, "25000"})
	}

	form := FormModel{mode: mode}
	for i, fd := range fields {
		ti := textinput.New()
		ti.Placeholder = fd.placeholder
		ti.CharLimit = 12
		ti.Width = 16
		ti.SetValue(fd.value)
		if i == 0 {
			ti.Focus()
		}
		form.labels = append(form.labels, fd.label)
		form.inputs = append(form.inputs, ti)
	}
	return form
}

// Update handles keyboard input while the form is active
func (f FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "up", "shift+tab":
			f.focusPrev()
			return f, textinput.Blink

		case "down", "tab":
			f.focusNext()
			return f, textinput.Blink

		case "enter":
			if f.focus == len(f.inputs)-1 {
				return f, f.submit()
			}
			f.focusNext()
			return f, textinput.Blink
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *FormModel) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *FormModel) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus--
	if f.focus < 0 {
		f.focus = len(f.inputs) - 1
	}
	f.inputs[f.focus].Focus()
}

// submit parses the form and either reports the values or the first
// parse/validation error
func (f FormModel) submit() tea.Cmd {
	values, err := f.parse()
	if err != nil {
		return func() tea.Msg { return ErrorMsg{Err: err} }
	}
	return func() tea.Msg { return FormSubmittedMsg{Values: values} }
}

// parse converts the raw field strings into domain values
func (f FormModel) parse() (formValues, error) {
	currentAge, err := f.intField(fieldCurrentAge)
	if err != nil {
		return formValues{}, err
	}
	retirementAge, err := f.intField(fieldRetirementAge)
	if err != nil {
		return formValues{}, err
	}
	investment, err := f.decimalField(fieldCurrentInvestment)
	if err != nil {
		return formValues{}, err
	}
	expense, err := f.decimalField(fieldMonthlyExpense)
	if err != nil {
		return formValues{}, err
	}
	annualReturn, err := f.percentField(fieldAnnualReturn)
	if err != nil {
		return formValues{}, err
	}
	decrease, err := f.percentField(fieldReturnDecrease)
	if err != nil {
		return formValues{}, err
	}
	inflation, err := f.percentField(fieldInflation)
	if err != nil {
		return formValues{}, err
	}

	values := formValues{
		input: domain.ProjectionInput{
			CurrentAge:        currentAge,
			RetirementAge:     retirementAge,
			CurrentInvestment: investment,
			AnnualReturn:      annualReturn,
			MonthlyExpense:    expense,
			InflationRate:     inflation,
		},
		schedule: domain.ReturnSchedule{
			InitialRate:    annualReturn,
			AnnualDecrease: decrease,
		},
	}

	switch f.mode {
	case ModePlan:
		coastAge, err := f.intField(fieldExtra)
		if err != nil {
			return formValues{}, err
		}
		values.coastAge = coastAge
	case ModeCoastAge:
		deposit, err := f.decimalField(fieldExtra)
		if err != nil {
			return formValues{}, err
		}
		values.deposit = deposit
	}

	if err := values.input.Validate(); err != nil {
		return formValues{}, err
	}
	return values, nil
}

func (f FormModel) intField(i int) (int, error) {
	raw := strings.TrimSpace(f.inputs[i].Value())
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", strings.ToLower(f.labels[i]))
	}
	return v, nil
}

func (f FormModel) decimalField(i int) (decimal.Decimal, error) {
	raw := strings.TrimSpace(f.inputs[i].Value())
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s must be a number", strings.ToLower(f.labels[i]))
	}
	return v, nil
}

func (f FormModel) percentField(i int) (decimal.Decimal, error) {
	v, err := f.decimalField(i)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return v.Div(decimalHundred), nil
}

// View renders the form fields with the focused one highlighted
func (f FormModel) View() string {
	var b strings.Builder
	for i, input := range f.inputs {
		if i == f.focus {
			b.WriteString(SelectedItemStyle.Render("▸ " + f.labels[i]))
		} else {
			b.WriteString(UnselectedItemStyle.Render("  " + f.labels[i]))
		}
		b.WriteString("\n  ")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(HintStyle.Render("Percent fields take whole percents, 7 means 7% a year"))
	return b.String()
}
