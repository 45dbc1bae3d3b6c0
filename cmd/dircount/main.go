package main

import (
	"context"
	"io"
	"os"

	"github.com/sznuper/dircount/internal/plugin"
	"github.com/sznuper/dircount/internal/status"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the exit code. Anything that goes
// wrong before a result is produced, including bad flags, is reported as
// UNKNOWN in plugin format.
func execute(args []string, stdout, stderr io.Writer) int {
	c := &cli{status: status.Unknown}
	cmd := newRootCmd(c)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		_ = plugin.Formatter{Label: c.label}.WriteError(stdout, err)
		return status.Unknown.ExitCode()
	}
	return c.status.ExitCode()
}
