package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// errQCFailed drives the non-zero exit code after a QC report has
// already been rendered. The root command silences cobra's own error
// printing, so nothing is written twice.
var errQCFailed = errors.New("QC failed")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dirchecker",
		Short:         "QC checks for penetration-testing engagement deliverables",
		Long:          "Dirchecker verifies that an engagement's deliverable folder structure is complete and that report PDFs carry the required header fields.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStructureCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newExpectedCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
