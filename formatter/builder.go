package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	tt "github.com/gnoswap-labs/tour/internal/types"
)

const gutterWidth = 2

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	okStyle      = color.New(color.FgGreen, color.Bold)
	moduleStyle  = color.New(color.FgCyan, color.Bold)
	demoStyle    = color.New(color.FgYellow, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	noStyle      = color.New(color.FgWhite)
)

// resultFormatter is the interface that wraps the ResultTemplate method.
type resultFormatter interface {
	ResultTemplate() string
}

// getResultFormatter returns the formatter for a result: failed results
// print their error, all others print their record.
func getResultFormatter(result tt.Result) resultFormatter {
	if result.Failed() {
		return &FailedResultFormatter{}
	}
	return &GeneralResultFormatter{}
}

// GenerateFormattedResult formats results into a human-readable string.
func GenerateFormattedResult(results []tt.Result) string {
	var builder strings.Builder
	for _, result := range results {
		formatter := getResultFormatter(result)
		builder.WriteString(buildResult(result, formatter))
	}
	return builder.String()
}

/***** Result Formatter Builder *****/

type ResultData struct {
	Module  string
	Demo    string
	Elapsed string
	Padding string
	Lines   []string
	Message string
}

func buildResult(result tt.Result, formatter resultFormatter) string {
	data := ResultData{
		Module:  result.Module,
		Demo:    result.Demo,
		Elapsed: result.Elapsed.Round(time.Microsecond).String(),
		Padding: strings.Repeat(" ", gutterWidth),
		Lines:   valueLines(result.Value),
		Message: result.Err,
	}

	funcMap := template.FuncMap{
		"header":  header,
		"body":    body,
		"failure": failure,
	}

	tmpl := template.Must(template.New("result").Funcs(funcMap).Parse(formatter.ResultTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting result: %v", err)
	}
	return buf.String()
}

// valueLines renders a record as YAML, one line per entry. Values YAML
// cannot represent fall back to Go syntax.
func valueLines(value any) (lines []string) {
	if value == nil {
		return nil
	}
	fallback := []string{fmt.Sprintf("%+v", value)}

	// yaml.Marshal panics on kinds it has no mapping for (chan, func, complex)
	defer func() {
		if r := recover(); r != nil {
			lines = fallback
		}
	}()
	out, err := yaml.Marshal(value)
	if err != nil {
		return fallback
	}
	return strings.Split(strings.TrimRight(string(out), "\n"), "\n")
}

// utils functions used in the text templates

func header(status string, module string, demo string, elapsed string) string {
	var endString string
	switch status {
	case "error":
		endString = errorStyle.Sprint("error: ")
	default:
		endString = okStyle.Sprint("ok: ")
	}
	endString += moduleStyle.Sprint(module) + noStyle.Sprint("/") + demoStyle.Sprint(demo)
	endString += noStyle.Sprintf(" (%s)", elapsed)
	return endString
}

func body(lines []string, padding string) string {
	if len(lines) == 0 {
		return ""
	}

	var endString string
	endString = lineStyle.Sprintf("%s|\n", padding)
	for _, line := range lines {
		if line == "" {
			endString += lineStyle.Sprintf("%s|\n", padding)
			continue
		}
		endString += lineStyle.Sprintf("%s| ", padding) + line + "\n"
	}
	endString += lineStyle.Sprintf("%s|\n", padding)
	return endString
}

func failure(message string, padding string) string {
	return lineStyle.Sprintf("%s= ", padding) + messageStyle.Sprintf("%s\n", message)
}
