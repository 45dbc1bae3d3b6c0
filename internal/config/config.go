package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/a8m/envsubst"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/sznuper/dircount/internal/threshold"
)

// Config holds every input of a check run. Each field is also exposed as a
// command-line flag named after its yaml tag; see cmd/dircount/flags.go.
type Config struct {
	Dirs         []string `yaml:"dirs" short:"d" usage:"directory to check (repeatable)" validate:"required,min=1,dive,required"`
	Warning      string   `yaml:"warning" short:"w" usage:"warning range for the entry count" validate:"required"`
	Critical     string   `yaml:"critical" short:"c" usage:"critical range for the entry count" validate:"required"`
	Recursive    bool     `yaml:"recursive" short:"r" usage:"also check every subdirectory"`
	Parallel     bool     `yaml:"parallel" usage:"scan top-level directories concurrently"`
	DetectCycles bool     `yaml:"detect_cycles" usage:"skip directories already visited through symlinks"`
	Label        string   `yaml:"label" usage:"plugin label printed before the status"`
	Template     string   `yaml:"template" usage:"text/template for the output text"`
	Verbose      bool     `yaml:"verbose" short:"v" usage:"print a per-directory breakdown to stderr"`
	LogLevel     string   `yaml:"log_level" usage:"debug, info, warn or error" validate:"omitempty,oneof=debug info warn error"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	data, err = envsubst.Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("expanding env vars: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that all required inputs are present and well formed.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := yamlName(fe.StructField())
	switch fe.Tag() {
	case "required":
		if strings.Contains(fe.Namespace(), "[") {
			return name + ": empty directory path"
		}
		return name + " is required"
	case "min":
		return name + " needs at least one entry"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", name, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q", name, fe.Tag())
	}
}

func yamlName(field string) string {
	switch field {
	case "Dirs":
		return "dirs"
	case "LogLevel":
		return "log_level"
	default:
		return strings.ToLower(field)
	}
}

// Threshold parses the warning and critical ranges. Each range is checked
// against its own parse result.
func (c *Config) Threshold() (*threshold.Threshold, error) {
	warning := threshold.Parse(c.Warning)
	if !warning.IsSet() {
		return nil, fmt.Errorf("invalid warning range %q", c.Warning)
	}
	critical := threshold.Parse(c.Critical)
	if !critical.IsSet() {
		return nil, fmt.Errorf("invalid critical range %q", c.Critical)
	}
	return threshold.New(warning, critical), nil
}
