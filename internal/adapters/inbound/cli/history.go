package cli

import (
	"fmt"

	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/history"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the QC run log",
		Long:  "List past structure and report QC runs recorded in the current directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := history.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading run history: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
