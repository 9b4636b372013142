package cli

import (
	"fmt"

	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/tui"
	"github.com/ScottGunn22/dirchecker/internal/domain"
	"github.com/spf13/cobra"
)

func newExpectedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expected [test-type]",
		Short: "Show the expected deliverable structure for a test type",
		Long:  "Print the directory tree and file set an engagement directory must contain. Defaults to test type SB.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			testType := domain.TestTypeSB
			if len(args) == 1 {
				testType = domain.ParseTestType(args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderExpectedStructure(testType))
			return nil
		},
	}
}
