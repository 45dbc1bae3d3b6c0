package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sznuper/dircount/internal/status"
)

func newValidateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [dir...]",
		Short: "Validate the configuration without scanning",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSetup(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config ok: warning=%s critical=%s dirs=%d\n",
				s.threshold.Warning(), s.threshold.Critical(), len(s.cfg.Dirs))
			c.status = status.OK
			return nil
		},
	}
}
