package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kmenon/coastfire/internal/calculation"
	"github.com/kmenon/coastfire/internal/coastage"
	"github.com/kmenon/coastfire/internal/config"
	"github.com/kmenon/coastfire/internal/domain"
)

// Report bundles everything one scenario evaluation produced
type Report struct {
	Name        string    `json:"name"`
	GeneratedAt time.Time `json:"generated_at"`
	Currency    string    `json:"currency"`

	Input    domain.ProjectionInput  `json:"input"`
	Schedule domain.ReturnSchedule   `json:"schedule"`
	Result   domain.ProjectionResult `json:"result"`

	ContributionPlan *calculation.ContributionPlan `json:"contribution_plan,omitempty"`
	CoastPlan        *calculation.CoastPlan        `json:"coast_plan,omitempty"`
	CoastAge         *coastage.SolveResult         `json:"coast_age,omitempty"`
}

// NewReport stamps a report payload for one evaluated scenario
func NewReport(name, currency string, input domain.ProjectionInput, result domain.ProjectionResult) *Report {
	return &Report{
		Name:        name,
		GeneratedAt: time.Now(),
		Currency:    currency,
		Input:       input,
		Schedule:    domain.FlatSchedule(input.AnnualReturn),
		Result:      result,
	}
}

// ReportGenerator handles report generation in various formats
type ReportGenerator struct {
	Writer   io.Writer // console destination, stdout when nil
	Currency string    // ISO 4217 display currency
}

// NewReportGenerator creates a generator that prints to stdout
func NewReportGenerator(currency string) *ReportGenerator {
	return &ReportGenerator{Writer: os.Stdout, Currency: currency}
}

// GenerateReport renders the report in the given format. Console output
// goes to the generator's writer; other formats write timestamped files.
func (rg *ReportGenerator) GenerateReport(report *Report, format string) error {
	switch format {
	case "console":
		return rg.GenerateConsoleReport(report)
	case "json":
		return rg.writeFile(JSONFormatter{Pretty: true}, report, "json")
	case "csv":
		return rg.writeFile(CSVFormatter{}, report, "csv")
	case "html":
		return rg.writeFile(HTMLFormatter{Currency: rg.Currency}, report, "html")
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport renders the report to the generator's writer
func (rg *ReportGenerator) GenerateConsoleReport(report *Report) error {
	data, err := ConsoleFormatter{Currency: rg.Currency}.Format(report)
	if err != nil {
		return err
	}

	_, err = rg.writer().Write(data)
	return err
}

func (rg *ReportGenerator) writeFile(formatter Formatter, report *Report, ext string) error {
	filename, err := WriteFormatted(formatter, report, ext)
	if err != nil {
		return err
	}

	fmt.Fprintf(rg.writer(), "Report written to %s\n", filename)
	return nil
}

func (rg *ReportGenerator) writer() io.Writer {
	if rg.Writer != nil {
		return rg.Writer
	}
	return os.Stdout
}

// ConsoleFormatter renders the report as sectioned plain text
type ConsoleFormatter struct {
	Currency string
}

// Name returns the formatter's identifier
func (cf ConsoleFormatter) Name() string { return "console" }

// Format renders the full sectioned report
func (cf ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	currency := cf.currency(report)

	banner := strings.Repeat("=", 70)
	rule := strings.Repeat("-", 40)

	fmt.Fprintln(&buf, banner)
	fmt.Fprintln(&buf, "COAST FIRE PROJECTION")
	if report.Name != "" {
		fmt.Fprintf(&buf, "Scenario: %s\n", report.Name)
	}
	fmt.Fprintln(&buf, banner)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INPUT PARAMETERS")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "Current Age:              %d\n", report.Input.CurrentAge)
	fmt.Fprintf(&buf, "Retirement Age:           %d\n", report.Input.RetirementAge)
	fmt.Fprintf(&buf, "Current Investment:       %s\n", FormatCurrency(report.Input.CurrentInvestment, currency))
	fmt.Fprintf(&buf, "Annual Return:            %s\n", FormatPercentage(report.Input.AnnualReturn))
	if !report.Schedule.AnnualDecrease.IsZero() {
		fmt.Fprintf(&buf, "Return Decrease:          %s per year\n", FormatPercentage(report.Schedule.AnnualDecrease))
		fmt.Fprintf(&buf, "Effective Return:         %s\n", FormatPercentage(report.Schedule.EffectiveRate(report.Input.YearsToGrow())))
	}
	fmt.Fprintf(&buf, "Monthly Expense:          %s\n", FormatCurrency(report.Input.MonthlyExpense, currency))
	fmt.Fprintf(&buf, "Inflation Rate:           %s\n", FormatPercentage(report.Input.InflationRate))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "CALCULATED VALUES")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "Years To Grow:            %d\n", report.Result.YearsToGrow)
	fmt.Fprintf(&buf, "Annual Expense Then:      %s\n", FormatCurrency(report.Result.AnnualExpenseAtRetirement, currency))
	fmt.Fprintf(&buf, "Target Number:            %s\n", FormatCurrency(report.Result.TargetNumber, currency))
	fmt.Fprintf(&buf, "Projected Value:          %s\n", FormatCurrency(report.Result.ProjectedValue, currency))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RESULT")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "Surplus/Shortfall:        %s\n", FormatCurrencySigned(report.Result.SurplusOrShortfall, currency))
	fmt.Fprintln(&buf)

	if report.ContributionPlan != nil {
		cf.writeContributionPlan(&buf, report.ContributionPlan, currency, rule)
	}
	if report.CoastPlan != nil {
		cf.writeCoastPlan(&buf, report.CoastPlan, currency, rule)
	}
	if report.CoastAge != nil {
		cf.writeCoastAge(&buf, report.CoastAge, currency, rule)
	}

	fmt.Fprintf(&buf, "COAST FIRE STATUS: %s\n", cf.status(report))

	return buf.Bytes(), nil
}

func (cf ConsoleFormatter) writeContributionPlan(buf *bytes.Buffer, plan *calculation.ContributionPlan, currency, rule string) {
	fmt.Fprintln(buf, "CONTRIBUTION PLAN")
	fmt.Fprintln(buf, rule)
	fmt.Fprintf(buf, "Lump Sum Grows To:        %s\n", FormatCurrency(plan.LumpSumFutureValue, currency))
	fmt.Fprintf(buf, "Shortfall vs Target:      %s\n", FormatCurrency(plan.Shortfall, currency))
	if plan.IsSufficient {
		fmt.Fprintln(buf, "Required Monthly:         none, the lump sum already coasts to the target")
	} else {
		fmt.Fprintf(buf, "Required Monthly:         %s\n", FormatCurrency(plan.RequiredMonthly, currency))
	}
	fmt.Fprintln(buf)
}

func (cf ConsoleFormatter) writeCoastPlan(buf *bytes.Buffer, plan *calculation.CoastPlan, currency, rule string) {
	fmt.Fprintf(buf, "COAST PLAN (stop at age %d)\n", plan.CoastAge)
	fmt.Fprintln(buf, rule)
	fmt.Fprintf(buf, "Years Of Deposits:        %d\n", plan.YearsToInvest)
	fmt.Fprintf(buf, "Years Of Coasting:        %d\n", plan.YearsToGrowAfter)
	fmt.Fprintf(buf, "Amount Needed By Then:    %s\n", FormatCurrency(plan.AmountAtCoastAge, currency))
	fmt.Fprintf(buf, "Required Monthly:         %s\n", FormatCurrency(plan.RequiredMonthly, currency))
	fmt.Fprintf(buf, "Retirement Withdrawal:    %s per month\n", FormatCurrency(plan.MonthlyWithdrawal, currency))
	fmt.Fprintln(buf)
}

func (cf ConsoleFormatter) writeCoastAge(buf *bytes.Buffer, solve *coastage.SolveResult, currency, rule string) {
	fmt.Fprintln(buf, "COAST AGE SEARCH")
	fmt.Fprintln(buf, rule)
	fmt.Fprintf(buf, "Monthly Deposit:          %s\n", FormatCurrency(solve.Request.MonthlyContribution, currency))
	fmt.Fprintf(buf, "Coast Age:                %d\n", solve.Result.CoastAge)
	fmt.Fprintf(buf, "Accumulated By Then:      %s\n", FormatCurrency(solve.Result.AccumulatedAtCoastAge, currency))
	fmt.Fprintf(buf, "Projected At Retirement:  %s\n", FormatCurrency(solve.Result.ProjectedAtRetirement, currency))
	if !solve.Success {
		fmt.Fprintf(buf, "Note:                     %s\n", solve.ConvergenceInfo)
	}
	fmt.Fprintln(buf)
}

func (cf ConsoleFormatter) status(report *Report) string {
	if report.Result.IsSufficient {
		return "ACHIEVED, the current portfolio can coast to the target"
	}
	if report.CoastAge != nil && report.CoastAge.Success {
		return fmt.Sprintf("REACHABLE, contributions can stop at age %d", report.CoastAge.Result.CoastAge)
	}
	return "NOT YET, the projection falls short of the target"
}

func (cf ConsoleFormatter) currency(report *Report) string {
	if cf.Currency != "" {
		return cf.Currency
	}
	if report.Currency != "" {
		return report.Currency
	}
	return DefaultCurrency
}

// JSONFormatter renders the report as JSON
type JSONFormatter struct {
	Pretty bool
}

// Name returns the formatter's identifier
func (jf JSONFormatter) Name() string { return "json" }

// Format renders the report
func (jf JSONFormatter) Format(report *Report) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// CSVFormatter renders the core metrics as a header row plus one data row
type CSVFormatter struct{}

// Name returns the formatter's identifier
func (cf CSVFormatter) Name() string { return "csv" }

// Format renders the report
func (cf CSVFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"Scenario", "Current Age", "Retirement Age", "Years To Grow",
		"Annual Expense At Retirement", "Target Number", "Projected Value",
		"Surplus Or Shortfall", "Is Sufficient", "Required Monthly", "Coast Age",
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	requiredMonthly := ""
	if report.ContributionPlan != nil {
		requiredMonthly = report.ContributionPlan.RequiredMonthly.StringFixed(2)
	} else if report.CoastPlan != nil {
		requiredMonthly = report.CoastPlan.RequiredMonthly.StringFixed(2)
	}

	coastAge := ""
	if report.CoastAge != nil {
		coastAge = strconv.Itoa(report.CoastAge.Result.CoastAge)
	} else if report.CoastPlan != nil {
		coastAge = strconv.Itoa(report.CoastPlan.CoastAge)
	}

	row := []string{
		report.Name,
		strconv.Itoa(report.Input.CurrentAge),
		strconv.Itoa(report.Input.RetirementAge),
		strconv.Itoa(report.Result.YearsToGrow),
		report.Result.AnnualExpenseAtRetirement.StringFixed(2),
		report.Result.TargetNumber.StringFixed(2),
		report.Result.ProjectedValue.StringFixed(2),
		report.Result.SurplusOrShortfall.StringFixed(2),
		strconv.FormatBool(report.Result.IsSufficient),
		requiredMonthly,
		coastAge,
	}
	if err := writer.Write(row); err != nil {
		return nil, err
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

// SaveScenarioFile writes scenarios back to disk as YAML
func SaveScenarioFile(file *config.ScenarioFile, filename string) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}
