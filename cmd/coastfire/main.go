package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kmenon/coastfire/internal/calculation"
	"github.com/kmenon/coastfire/internal/coastage"
	"github.com/kmenon/coastfire/internal/compare"
	"github.com/kmenon/coastfire/internal/config"
	"github.com/kmenon/coastfire/internal/marketdata"
	"github.com/kmenon/coastfire/internal/output"
	"github.com/kmenon/coastfire/internal/pegy"
)

// Build metadata, set by the release linker
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// engineLogger adapts logrus to the calculation engine's logger interface
type engineLogger struct {
	log *logrus.Logger
}

func (l engineLogger) Debugf(format string, args ...interface{}) { l.log.Debugf(format, args...) }
func (l engineLogger) Infof(format string, args ...interface{})  { l.log.Infof(format, args...) }
func (l engineLogger) Warnf(format string, args ...interface{})  { l.log.Warnf(format, args...) }
func (l engineLogger) Errorf(format string, args ...interface{}) { l.log.Errorf(format, args...) }

var rootCmd = &cobra.Command{
	Use:   "coastfire",
	Short: "Coast FIRE retirement projections",
	Long: `coastfire projects whether a portfolio, left to compound untouched,
reaches a retirement target sized by the 4% rule. It can size the monthly
deposit a shortfall needs, find the earliest age at which deposits can stop,
and compare scenarios side by side.

Inputs come from flags, from a scenario YAML file, or both, with flags
taking precedence over the file.`,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether the current corpus coasts to the retirement target",
	Long: `Status projects the current investment to retirement age and compares it
with the target number implied by today's monthly expense, inflation and the
withdrawal rate.

Examples:
  coastfire status --current-age 35 --retirement-age 60 --investment 250000 --expense 4000 --return 0.07 --inflation 0.03
  coastfire status --config scenarios.yaml --scenario frugal
  coastfire status --config scenarios.yaml --return-decrease 0.001 --format json`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadAppConfig(cmd)

		scenario, err := resolveScenario(cmd)
		if err != nil {
			log.Fatalf("Error loading scenario: %v", err)
		}

		engine := newEngine(cmd, cfg, scenario)

		input := scenario.ResolvedInput()
		result, err := engine.Evaluate(input)
		if err != nil {
			log.Fatalf("Error evaluating projection: %v", err)
		}

		report := output.NewReport(scenario.Name, displayCurrency(cmd, cfg), input, result)
		report.Schedule = scenario.Schedule()

		renderReport(cmd, report)
	},
}

var contributionCmd = &cobra.Command{
	Use:   "contribution",
	Short: "Size the monthly deposit needed to reach the target",
	Long: `Contribution sizes the monthly deposit that closes the gap between the
projected corpus and the target. A portfolio that already coasts needs no
deposit and the plan says so.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadAppConfig(cmd)

		scenario, err := resolveScenario(cmd)
		if err != nil {
			log.Fatalf("Error loading scenario: %v", err)
		}

		engine := newEngine(cmd, cfg, scenario)

		input := scenario.ResolvedInput()
		result, err := engine.Evaluate(input)
		if err != nil {
			log.Fatalf("Error evaluating projection: %v", err)
		}

		plan, err := engine.CalculateContributionPlan(input)
		if err != nil {
			log.Fatalf("Error sizing the contribution: %v", err)
		}

		report := output.NewReport(scenario.Name, displayCurrency(cmd, cfg), input, result)
		report.Schedule = scenario.Schedule()
		report.ContributionPlan = plan

		renderReport(cmd, report)
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan deposits so contributions can stop at a chosen age",
	Long: `Plan works backwards from a chosen coast age: it reports the corpus that
must be in place by that age and the monthly deposit that builds it from
today. The age comes from --coast-age or the scenario's coast_age field.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadAppConfig(cmd)

		scenario, err := resolveScenario(cmd)
		if err != nil {
			log.Fatalf("Error loading scenario: %v", err)
		}

		coastAge := scenario.CoastAge
		if cmd.Flags().Changed("coast-age") {
			coastAge, _ = cmd.Flags().GetInt("coast-age")
		}
		if coastAge == 0 {
			log.Fatal("A coast age is required, set --coast-age or the scenario's coast_age field")
		}

		engine := newEngine(cmd, cfg, scenario)

		input := scenario.ResolvedInput()
		result, err := engine.Evaluate(input)
		if err != nil {
			log.Fatalf("Error evaluating projection: %v", err)
		}

		plan, err := engine.CalculateCoastPlan(input, coastAge)
		if err != nil {
			log.Fatalf("Error planning for coast age %d: %v", coastAge, err)
		}

		report := output.NewReport(scenario.Name, displayCurrency(cmd, cfg), input, result)
		report.Schedule = scenario.Schedule()
		report.CoastPlan = plan

		renderReport(cmd, report)
	},
}

var coastAgeCmd = &cobra.Command{
	Use:   "coast-age",
	Short: "Find the earliest age at which monthly deposits can stop",
	Long: `Coast-age scans candidate ages from today to retirement and reports the
first at which the deposits made so far, left to compound, still reach the
target. --sweep runs the search at several deposit levels and compares them.

Examples:
  coastfire coast-age --config scenarios.yaml --deposit 25000
  coastfire coast-age --deposit 25000 --trace
  coastfire coast-age --sweep 15000,25000,40000`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadAppConfig(cmd)

		scenario, err := resolveScenario(cmd)
		if err != nil {
			log.Fatalf("Error loading scenario: %v", err)
		}

		if cmd.Flags().Changed("deposit") {
			scenario.MonthlyContribution, _ = cmd.Flags().GetFloat64("deposit")
		}

		engine := newEngine(cmd, cfg, scenario)

		collectTrace, _ := cmd.Flags().GetBool("trace")
		solver := coastage.NewSolver(engine, coastage.SolverOptions{CollectTrace: collectTrace})

		input := scenario.ResolvedInput()
		request := coastage.SolveRequest{
			Input:               input,
			MonthlyContribution: scenario.Contribution(),
			Schedule:            scenario.Schedule(),
		}

		ctx := context.Background()

		if sweepRaw, _ := cmd.Flags().GetString("sweep"); sweepRaw != "" {
			levels, err := parseSweepLevels(sweepRaw)
			if err != nil {
				log.Fatalf("Error parsing sweep levels: %v", err)
			}

			multi, err := solver.SolveAcrossContributions(ctx, request, levels)
			if err != nil {
				log.Fatalf("Error sweeping deposit levels: %v", err)
			}

			formatter := &coastage.TableFormatter{}
			fmt.Print(formatter.FormatMulti(multi))
			return
		}

		result, err := engine.Evaluate(input)
		if err != nil {
			log.Fatalf("Error evaluating projection: %v", err)
		}

		solve, err := solver.Solve(ctx, request)
		if err != nil {
			log.Fatalf("Error solving for the coast age: %v", err)
		}

		report := output.NewReport(scenario.Name, displayCurrency(cmd, cfg), input, result)
		report.Schedule = scenario.Schedule()
		report.CoastAge = solve

		renderReport(cmd, report)

		if collectTrace {
			formatter := &coastage.TableFormatter{}
			fmt.Print(formatter.FormatTrace(solve))
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [config file]",
	Short: "Compare scenarios from a configuration file",
	Long: `Compare evaluates every scenario against a base scenario and shows the
differences in coast age, required contribution and projected corpus.

Example:
  coastfire compare scenarios.yaml --base current --with frugal,aggressive`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		baseScenario, _ := cmd.Flags().GetString("base")
		withScenarios, _ := cmd.Flags().GetStringSlice("with")
		outputFormat, _ := cmd.Flags().GetString("format")

		if baseScenario == "" {
			log.Fatal("--base scenario name is required")
		}

		cfg := loadAppConfig(cmd)

		file, err := config.NewInputParser().LoadFromFile(inputFile)
		if err != nil {
			log.Fatalf("Error loading configuration: %v", err)
		}

		engine := calculation.NewEngine()
		engine.WithdrawalRate = decimal.NewFromFloat(cfg.WithdrawalRate)
		if debugEnabled(cmd) {
			engine.Debug = true
			engine.Logger = engineLogger{log: newLogger(cfg, true)}
		}

		compareEngine := compare.NewCompareEngine(engine)

		ctx := context.Background()
		comparisonSet, err := compareEngine.Compare(ctx, file, compare.CompareOptions{
			BaseScenarioName: baseScenario,
			ScenarioNames:    withScenarios,
			SourcePath:       inputFile,
		})
		if err != nil {
			log.Fatalf("Error running comparison: %v", err)
		}

		switch strings.ToLower(outputFormat) {
		case "csv":
			formatter := &compare.CSVFormatter{}
			out, err := formatter.Format(comparisonSet)
			if err != nil {
				log.Fatalf("Error formatting CSV output: %v", err)
			}
			fmt.Print(out)
		case "json":
			formatter := &compare.JSONFormatter{Pretty: true}
			out, err := formatter.Format(comparisonSet)
			if err != nil {
				log.Fatalf("Error formatting JSON output: %v", err)
			}
			fmt.Println(out)
		case "table", "console", "":
			formatter := &compare.TableFormatter{}
			fmt.Print(formatter.Format(comparisonSet))
		default:
			log.Fatalf("Unknown output format: %s (valid: table, csv, json)", outputFormat)
		}
	},
}

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Sweep one input and report where the verdict flips",
	Long: `Sensitivity re-evaluates the projection across a grid of values for one
input parameter and reports how many grid points still reach the target and
the value at which the verdict changes.

Example:
  coastfire sensitivity --config scenarios.yaml --parameter annual_return --spread 0.02`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadAppConfig(cmd)

		scenario, err := resolveScenario(cmd)
		if err != nil {
			log.Fatalf("Error loading scenario: %v", err)
		}

		parameter, _ := cmd.Flags().GetString("parameter")
		if parameter == "" {
			log.Fatalf("--parameter is required (valid: %s)", strings.Join(calculation.SweepableParameters, ", "))
		}

		spread, _ := cmd.Flags().GetFloat64("spread")
		if spread <= 0 {
			log.Fatal("--spread must be positive, the sweep runs from base-spread to base+spread")
		}

		steps, _ := cmd.Flags().GetInt("steps")

		engine := newEngine(cmd, cfg, scenario)
		analyzer := calculation.NewSensitivityAnalyzer(engine)

		analysis, err := analyzer.SweepAround(scenario.ResolvedInput(), parameter, decimal.NewFromFloat(spread), steps)
		if err != nil {
			log.Fatalf("Error running sensitivity sweep: %v", err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "json":
			data, err := json.MarshalIndent(analysis, "", "  ")
			if err != nil {
				log.Fatalf("Error formatting JSON output: %v", err)
			}
			fmt.Println(string(data))
		case "table", "console", "":
			printSensitivity(analysis, displayCurrency(cmd, cfg))
		default:
			log.Fatalf("Unknown output format: %s (valid: table, json)", format)
		}
	},
}

var pegyCmd = &cobra.Command{
	Use:   "pegy [snapshot file]",
	Short: "Print the PEGY table for a market snapshot",
	Long: `Pegy prints the price/earnings to growth and yield table from a snapshot
file written by fetch-snapshot. Without an argument it picks the most
recently dated snapshot in the snapshot directory.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadAppConfig(cmd)

		path := ""
		if len(args) == 1 {
			path = args[0]
		} else {
			dir := snapshotDir(cmd, cfg)
			name, err := pegy.LatestSnapshotFile(dir)
			if err != nil {
				log.Fatalf("Error finding a snapshot: %v", err)
			}
			path = filepath.Join(dir, name)
		}

		snapshots, err := pegy.LoadSnapshots(path)
		if err != nil {
			log.Fatalf("Error loading snapshot: %v", err)
		}

		fmt.Printf("PEGY ratios from %s\n\n", path)
		fmt.Print(pegy.FormatTable(snapshots))
	},
}

var fetchSnapshotCmd = &cobra.Command{
	Use:   "fetch-snapshot",
	Short: "Fetch today's quotes and write a dated snapshot file",
	Long: `Fetch-snapshot pulls the day's quote for every company in the
fundamentals list, combines it with the static fundamentals, and writes a
dated JSON snapshot next to a printed PEGY table. Quotes are cached on disk
for the rest of the day, so re-runs do not refetch.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadAppConfig(cmd)
		logger := newLogger(cfg, debugEnabled(cmd))

		fundamentals := marketdata.DefaultFundamentals
		if path, _ := cmd.Flags().GetString("fundamentals"); path != "" {
			loaded, err := marketdata.LoadFundamentals(path)
			if err != nil {
				log.Fatalf("Error loading fundamentals: %v", err)
			}
			fundamentals = loaded
		}

		builder := marketdata.NewSnapshotBuilder(marketdata.NewQuoteClient(logger), logger)

		snapshots, err := builder.Build(context.Background(), fundamentals)
		if err != nil {
			log.Fatalf("Error building snapshot: %v", err)
		}

		label, _ := cmd.Flags().GetString("label")
		path := filepath.Join(snapshotDir(cmd, cfg), pegy.SnapshotFilename(label, time.Now()))

		if err := pegy.SaveSnapshots(snapshots, path); err != nil {
			log.Fatalf("Error writing snapshot: %v", err)
		}

		fmt.Printf("Snapshot of %d companies written to %s\n\n", len(snapshots), path)
		fmt.Print(pegy.FormatTable(snapshots))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [config file]",
	Short: "Validate a scenario configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		if !fileExists(inputFile) {
			log.Fatalf("Configuration file %s does not exist", inputFile)
		}

		file, err := config.NewInputParser().LoadFromFile(inputFile)
		if err != nil {
			log.Fatalf("Configuration validation failed: %v", err)
		}

		fmt.Printf("Configuration file %s is valid\n", inputFile)
		fmt.Printf("Found %d scenario(s):\n", len(file.Scenarios))
		for _, scenario := range file.Scenarios {
			fmt.Printf("  - %s\n", scenario.Name)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("coastfire %s\n", buildVersion())
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
		},
	}
}

// buildVersion prefers the linker-set version and falls back to module
// build info for go-install builds
func buildVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

// addInputFlags registers the projection inputs shared by the calculation
// commands. Rates are fractions, so 0.07 means 7% a year.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Scenario YAML file")
	cmd.Flags().String("scenario", "", "Scenario name inside the config file, first when omitted")
	cmd.Flags().Int("current-age", 0, "Current age in years")
	cmd.Flags().Int("retirement-age", 0, "Planned retirement age in years")
	cmd.Flags().Float64("investment", 0, "Investment corpus held today")
	cmd.Flags().Float64("expense", 0, "Monthly living expense in today's money")
	cmd.Flags().Float64("return", 0, "Expected annual return as a fraction")
	cmd.Flags().Float64("return-decrease", 0, "Annual decline of the return rate as a fraction")
	cmd.Flags().Float64("inflation", 0, "Expected annual inflation as a fraction")
	cmd.Flags().Float64("withdrawal-rate", 0, "Retirement withdrawal rate as a fraction")
}

// addReportFlags registers the output controls of report-producing commands
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv, html)")
	cmd.Flags().String("currency", "", "ISO 4217 display currency")
}

// resolveScenario builds the scenario the flags describe. Without a config
// file the built-in defaults apply, and any input flag set explicitly
// overrides the loaded value.
func resolveScenario(cmd *cobra.Command) (config.Scenario, error) {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config")
	scenarioName, _ := flags.GetString("scenario")

	scenario := config.DefaultScenario()

	if configFile != "" {
		file, err := config.NewInputParser().LoadFromFile(configFile)
		if err != nil {
			return scenario, err
		}

		if scenarioName != "" {
			found, err := file.ScenarioByName(scenarioName)
			if err != nil {
				return scenario, err
			}
			scenario = *found
		} else {
			scenario = file.Scenarios[0]
		}
	} else if scenarioName != "" {
		return scenario, fmt.Errorf("--scenario names a scenario inside a file, set --config too")
	}

	if flags.Changed("current-age") {
		scenario.CurrentAge, _ = flags.GetInt("current-age")
	}
	if flags.Changed("retirement-age") {
		scenario.RetirementAge, _ = flags.GetInt("retirement-age")
	}
	if flags.Changed("investment") {
		scenario.CurrentInvestment, _ = flags.GetFloat64("investment")
	}
	if flags.Changed("expense") {
		scenario.MonthlyExpense, _ = flags.GetFloat64("expense")
	}
	if flags.Changed("return") {
		scenario.AnnualReturn, _ = flags.GetFloat64("return")
	}
	if flags.Changed("return-decrease") {
		scenario.ReturnDecrease, _ = flags.GetFloat64("return-decrease")
	}
	if flags.Changed("inflation") {
		scenario.InflationRate, _ = flags.GetFloat64("inflation")
	}
	if flags.Changed("withdrawal-rate") {
		scenario.WithdrawalRate, _ = flags.GetFloat64("withdrawal-rate")
	}

	return scenario, nil
}

// newEngine builds the calculation engine for one command invocation. The
// scenario's withdrawal rate wins over the process-level setting.
func newEngine(cmd *cobra.Command, cfg config.AppConfig, scenario config.Scenario) *calculation.Engine {
	engine := calculation.NewEngine()

	rate := scenario.WithdrawalRate
	if rate == 0 {
		rate = cfg.WithdrawalRate
	}
	engine.WithdrawalRate = decimal.NewFromFloat(rate)

	if debugEnabled(cmd) {
		engine.Debug = true
		engine.Logger = engineLogger{log: newLogger(cfg, true)}
	}

	return engine
}

func newLogger(cfg config.AppConfig, debugLevel bool) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if debugLevel {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	if cfg.LogJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

func loadAppConfig(cmd *cobra.Command) config.AppConfig {
	path, _ := cmd.Flags().GetString("app-config")
	cfg, err := config.LoadAppConfig(path)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}
	return cfg
}

func renderReport(cmd *cobra.Command, report *output.Report) {
	format, _ := cmd.Flags().GetString("format")

	generator := output.NewReportGenerator(report.Currency)
	if err := generator.GenerateReport(report, format); err != nil {
		log.Fatalf("Error generating report: %v", err)
	}
}

func displayCurrency(cmd *cobra.Command, cfg config.AppConfig) string {
	if currency, _ := cmd.Flags().GetString("currency"); currency != "" {
		return currency
	}
	return cfg.Currency
}

func snapshotDir(cmd *cobra.Command, cfg config.AppConfig) string {
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		return dir
	}
	return cfg.SnapshotDir
}

func debugEnabled(cmd *cobra.Command) bool {
	enabled, _ := cmd.Flags().GetBool("debug")
	return enabled
}

func parseSweepLevels(raw string) ([]decimal.Decimal, error) {
	var levels []decimal.Decimal
	for _, part := range strings.Split(raw, ",") {
		level, err := decimal.NewFromString(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid deposit level %q", part)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

func printSensitivity(analysis *calculation.SensitivityAnalysis, currency string) {
	fmt.Printf("Sensitivity of the verdict to %s\n", analysis.Parameter.Name)
	fmt.Println(strings.Repeat("-", 78))
	fmt.Printf("%-14s %-24s %-24s %s\n", "Value", "Projected", "Target", "Sufficient")

	for _, point := range analysis.Points {
		fmt.Printf("%-14s %-24s %-24s %v\n",
			point.Value.StringFixed(4),
			output.FormatCurrency(point.Result.ProjectedValue, currency),
			output.FormatCurrency(point.Result.TargetNumber, currency),
			point.Result.IsSufficient)
	}

	fmt.Println(strings.Repeat("-", 78))
	fmt.Printf("%d of %d grid points reach the target\n", analysis.SufficientCount(), len(analysis.Points))
	if analysis.FlipValue != nil {
		fmt.Printf("The verdict flips near %s = %s\n", analysis.Parameter.Name, analysis.FlipValue.StringFixed(4))
	}
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

func init() {
	rootCmd.PersistentFlags().String("app-config", "", "Process settings YAML, COASTFIRE_* env vars override it")
	rootCmd.PersistentFlags().Bool("debug", false, "Log the intermediate values of every calculation")

	addInputFlags(statusCmd)
	addInputFlags(contributionCmd)
	addInputFlags(planCmd)
	addInputFlags(coastAgeCmd)
	addInputFlags(sensitivityCmd)

	addReportFlags(statusCmd)
	addReportFlags(contributionCmd)
	addReportFlags(planCmd)
	addReportFlags(coastAgeCmd)

	planCmd.Flags().Int("coast-age", 0, "Age at which deposits stop")

	coastAgeCmd.Flags().Float64("deposit", 0, "Monthly deposit while contributing")
	coastAgeCmd.Flags().String("sweep", "", "Comma-separated deposit levels to compare")
	coastAgeCmd.Flags().Bool("trace", false, "Print every candidate age the solver evaluated")

	sensitivityCmd.Flags().String("parameter", "", "Input to sweep (annual_return, inflation_rate, monthly_expense, current_investment)")
	sensitivityCmd.Flags().Float64("spread", 0, "Sweep distance on each side of the base value")
	sensitivityCmd.Flags().Int("steps", 9, "Number of grid points")
	sensitivityCmd.Flags().String("format", "table", "Output format (table, json)")
	sensitivityCmd.Flags().String("currency", "", "ISO 4217 display currency")

	compareCmd.Flags().String("base", "", "Base scenario name (required)")
	compareCmd.Flags().StringSlice("with", nil, "Alternative scenario names, all others when omitted")
	compareCmd.Flags().String("format", "table", "Output format (table, csv, json)")

	pegyCmd.Flags().String("dir", "", "Directory searched for the latest snapshot")

	fetchSnapshotCmd.Flags().String("fundamentals", "", "JSON file of symbols and fundamentals, BSE Sensex 30 when omitted")
	fetchSnapshotCmd.Flags().String("label", "sensex", "Label inside the snapshot filename")
	fetchSnapshotCmd.Flags().String("dir", "", "Directory the snapshot is written to")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(contributionCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(coastAgeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(sensitivityCmd)
	rootCmd.AddCommand(pegyCmd)
	rootCmd.AddCommand(fetchSnapshotCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
