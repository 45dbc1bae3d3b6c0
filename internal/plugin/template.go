package plugin

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/sznuper/dircount/internal/runner"
)

// TemplateData holds everything available to an output template.
type TemplateData struct {
	Label        string
	Status       string
	Summary      string
	Measurements []runner.Measurement
}

// NewTemplateData builds template data from a successful run.
func NewTemplateData(label string, res runner.Result) TemplateData {
	return TemplateData{
		Label:        label,
		Status:       res.Status.String(),
		Summary:      res.Summary(),
		Measurements: res.Measurements,
	}
}

// ParseTemplate compiles an output template with the Sprig function set.
func ParseTemplate(tmplStr string) (*template.Template, error) {
	t, err := template.New("output").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return t, nil
}

// Execute renders t with data.
func Execute(t *template.Template, data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}
