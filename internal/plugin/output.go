// Package plugin renders run results in the monitoring-plugin output format:
//
//	LABEL STATUS - text | perfdata
//
// where perfdata is a space-separated list of 'label'=value;warn;crit.
package plugin

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/sznuper/dircount/internal/runner"
	"github.com/sznuper/dircount/internal/status"
)

const DefaultLabel = "DIRCOUNT"

// Formatter turns a runner.Result into the plugin output line.
type Formatter struct {
	Label    string
	Template *template.Template // nil selects the default "LABEL STATUS - summary"
}

func (f Formatter) label() string {
	if f.Label == "" {
		return DefaultLabel
	}
	return f.Label
}

// Write prints the plugin line for res and returns the status the process
// should exit with. A failed run prints UNKNOWN with its error and no perf
// data.
func (f Formatter) Write(w io.Writer, res runner.Result) (status.Status, error) {
	if res.Err != nil {
		return status.Unknown, f.WriteError(w, res.Err)
	}

	text, err := f.text(res)
	if err != nil {
		return status.Unknown, f.WriteError(w, err)
	}

	line := text
	if perf := FormatPerfdata(res.Perfdata()); perf != "" {
		line += " | " + perf
	}
	_, err = fmt.Fprintln(w, line)
	return res.Status, err
}

// WriteError prints an UNKNOWN line for a fatal error.
func (f Formatter) WriteError(w io.Writer, err error) error {
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	_, werr := fmt.Fprintf(w, "%s %s - %s\n", f.label(), status.Unknown, msg)
	return werr
}

func (f Formatter) text(res runner.Result) (string, error) {
	if f.Template == nil {
		return fmt.Sprintf("%s %s - %s", f.label(), res.Status, res.Summary()), nil
	}
	out, err := Execute(f.Template, NewTemplateData(f.label(), res))
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(out, "\n", " "), nil
}

// FormatPerfdata renders perf records as 'label'=value;warn;crit.
func FormatPerfdata(perf []runner.Perf) string {
	parts := make([]string, 0, len(perf))
	for _, p := range perf {
		var b strings.Builder
		b.WriteString(quoteLabel(p.Label))
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(p.Value))
		if p.Threshold != nil {
			b.WriteByte(';')
			b.WriteString(p.Threshold.Warning().String())
			b.WriteByte(';')
			b.WriteString(p.Threshold.Critical().String())
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}

func quoteLabel(label string) string {
	if !strings.ContainsAny(label, " \t='") {
		return label
	}
	return "'" + strings.ReplaceAll(label, "'", "''") + "'"
}
