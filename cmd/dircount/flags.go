package main

import (
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sznuper/dircount/internal/config"
)

func flagName(f reflect.StructField) string {
	return strings.ReplaceAll(f.Tag.Get("yaml"), "_", "-")
}

// registerOptionFlags adds a persistent --flag for every field in config.Config,
// deriving the flag name from the yaml struct tag (snake_case → kebab-case)
// and the shorthand from the short tag.
func registerOptionFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	t := reflect.TypeOf(config.Config{})
	for i := range t.NumField() {
		f := t.Field(i)
		name, short, usage := flagName(f), f.Tag.Get("short"), f.Tag.Get("usage")
		switch f.Type.Kind() {
		case reflect.Bool:
			flags.BoolP(name, short, false, usage)
		case reflect.Slice:
			flags.StringArrayP(name, short, nil, usage)
		default:
			flags.StringP(name, short, "", usage)
		}
	}
}

// applyOptionFlags overlays CLI flag values onto the config. Only flags
// explicitly set by the user are applied.
func applyOptionFlags(cmd *cobra.Command, cfg *config.Config) {
	t := reflect.TypeOf(*cfg)
	v := reflect.ValueOf(cfg).Elem()
	for i := range t.NumField() {
		name := flagName(t.Field(i))
		if !cmd.Flags().Changed(name) {
			continue
		}
		switch t.Field(i).Type.Kind() {
		case reflect.Bool:
			val, _ := cmd.Flags().GetBool(name)
			v.Field(i).SetBool(val)
		case reflect.Slice:
			val, _ := cmd.Flags().GetStringArray(name)
			v.Field(i).Set(reflect.ValueOf(val))
		default:
			val, _ := cmd.Flags().GetString(name)
			v.Field(i).SetString(val)
		}
	}
}
