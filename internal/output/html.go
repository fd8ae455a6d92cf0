package output

import (
	"bytes"
	_ "embed"
	"html/template"
)

// HTMLFormatter produces a standalone HTML report
type HTMLFormatter struct {
	Currency string
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":       FormatCurrency,
	"currSigned": FormatCurrencySigned,
	"pct":        FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	currency := h.Currency
	if currency == "" {
		currency = report.Currency
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	var buf bytes.Buffer
	data := struct {
		*Report
		DisplayCurrency string
		Status          string
	}{report, currency, ConsoleFormatter{Currency: currency}.status(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
