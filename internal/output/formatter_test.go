package output

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatterFunc_Format(t *testing.T) {
	called := false
	var received *Report

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(report *Report) ([]byte, error) {
			called = true
			received = report
			return []byte("test output"), nil
		},
	}

	report := buildTestReport()
	output, err := formatter.Format(report)

	assert.NoError(t, err, "Should not error")
	assert.True(t, called, "Should call the function")
	assert.Equal(t, report, received, "Should pass the report")
	assert.Equal(t, []byte("test output"), output, "Should return the function output")
}

func TestFormatterFunc_Name(t *testing.T) {
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(report *Report) ([]byte, error) {
			return []byte("test"), nil
		},
	}

	assert.Equal(t, "test-formatter", formatter.Name(), "Should return the ID")
}

func TestWriteFormatted(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(originalDir)

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(report *Report) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")

	assert.NoError(t, err, "Should not error")
	assert.Contains(t, filename, "coastfire_report_", "Should have the report prefix")
	assert.Contains(t, filename, ".txt", "Should have the extension")

	content, err := os.ReadFile(filename)
	assert.NoError(t, err, "Should be able to read the file")
	assert.Equal(t, "test output content", string(content), "Should have the formatted content")
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(report *Report) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}

	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")

	assert.Error(t, err, "Should error when the formatter fails")
	assert.Empty(t, filename, "Should return an empty filename on error")
	assert.Contains(t, err.Error(), "formatter error", "Should propagate the formatter error")
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()

	assert.Equal(t, []string{"console", "csv", "html", "json"}, names, "Should list the formats sorted")
}

func TestGetFormatterByName(t *testing.T) {
	formatter := GetFormatterByName("json")

	assert.NotNil(t, formatter, "Should return the formatter")
	assert.Equal(t, "json", formatter.Name(), "Should return the matching formatter")
}

func TestGetFormatterByName_Unknown(t *testing.T) {
	assert.Nil(t, GetFormatterByName("non-existent"), "Should return nil for unknown names")
}
