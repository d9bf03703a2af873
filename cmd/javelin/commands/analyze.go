package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Rebuild the class dependency graph and refresh the snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Analyze(cmd.Context())
		},
	}
}
