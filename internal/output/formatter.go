package output

import (
	"fmt"
	"os"
	"sort"
	"time"
)

// Formatter renders a report into bytes for one output format
type Formatter interface {
	Format(report *Report) ([]byte, error)
	Name() string
}

// FormatterFunc adapts a plain function into a Formatter
type FormatterFunc struct {
	ID string
	F  func(report *Report) ([]byte, error)
}

// Format calls the wrapped function
func (ff FormatterFunc) Format(report *Report) ([]byte, error) {
	return ff.F(report)
}

// Name returns the formatter's identifier
func (ff FormatterFunc) Name() string {
	return ff.ID
}

// WriteFormatted renders the report and writes it to a timestamped file in
// the working directory, returning the filename
func WriteFormatted(formatter Formatter, report *Report, ext string) (string, error) {
	data, err := formatter.Format(report)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("coastfire_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}

	return filename, nil
}

// formatters maps CLI format names to their implementations. Currency is
// left empty so each formatter falls back to the report's own currency.
var formatters = map[string]Formatter{
	"console": ConsoleFormatter{},
	"json":    JSONFormatter{Pretty: true},
	"csv":     CSVFormatter{},
	"html":    HTMLFormatter{},
}

// AvailableFormatterNames lists the registered format names
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetFormatterByName returns the named formatter, nil when unknown
func GetFormatterByName(name string) Formatter {
	formatter, ok := formatters[name]
	if !ok {
		return nil
	}
	return formatter
}
