package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/sznuper/dircount/internal/config"
	"github.com/sznuper/dircount/internal/plugin"
	"github.com/sznuper/dircount/internal/runner"
	"github.com/sznuper/dircount/internal/status"
	"github.com/sznuper/dircount/internal/threshold"
)

// cli carries state between cobra callbacks and execute.
type cli struct {
	cfgFile string
	label   string
	status  status.Status
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dircount [dir...]",
		Short: "Check directory entry counts against thresholds",
		Long: `dircount counts the immediate entries of each directory and compares the
count against warning and critical ranges. It prints one monitoring-plugin
line with performance data and exits 0 (OK), 1 (WARNING), 2 (CRITICAL)
or 3 (UNKNOWN).

Directories come from --dirs, positional arguments and the config file.
Ranges use the usual plugin syntax: 10, 10:, ~:10, 10:20, @10:20.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, args)
		},
	}

	cmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file path")
	registerOptionFlags(cmd)
	cmd.AddCommand(newValidateCmd(c))
	return cmd
}

// setup is everything a run needs once configuration has been accepted.
type setup struct {
	cfg       *config.Config
	threshold *threshold.Threshold
	formatter plugin.Formatter
}

// loadSetup resolves the config file, overlays flags and positional
// directories, and validates the result. Any failure is a configuration
// error: nothing has been scanned yet.
func (c *cli) loadSetup(cmd *cobra.Command, args []string) (*setup, error) {
	cfg, err := config.Resolve(c.cfgFile)
	if err != nil {
		return nil, err
	}
	applyOptionFlags(cmd, cfg)
	cfg.Dirs = append(cfg.Dirs, args...)
	c.label = cfg.Label

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	th, err := cfg.Threshold()
	if err != nil {
		return nil, err
	}

	s := &setup{cfg: cfg, threshold: th, formatter: plugin.Formatter{Label: cfg.Label}}
	if cfg.Template != "" {
		tmpl, err := plugin.ParseTemplate(cfg.Template)
		if err != nil {
			return nil, err
		}
		s.formatter.Template = tmpl
	}
	return s, nil
}

func (c *cli) runCheck(cmd *cobra.Command, args []string) error {
	s, err := c.loadSetup(cmd, args)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd.ErrOrStderr(), s.cfg.LogLevel)
	logger.Debug("configuration loaded", "dirs", s.cfg.Dirs, "warning", s.threshold.Warning(), "critical", s.threshold.Critical(), "recursive", s.cfg.Recursive)

	r := runner.New(s.cfg, s.threshold, logger)
	res := r.Run(cmd.Context())

	st, err := s.formatter.Write(cmd.OutOrStdout(), res)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	c.status = st

	if s.cfg.Verbose {
		stderr := cmd.ErrOrStderr()
		if err := plugin.WriteBreakdown(stderr, res, isTerminal(stderr)); err != nil {
			logger.Warn("writing breakdown failed", "error", err)
		}
	}
	return nil
}

func setupLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	if level != "" {
		_ = lvl.UnmarshalText([]byte(level))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
