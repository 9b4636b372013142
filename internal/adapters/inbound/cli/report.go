package cli

import (
	"fmt"

	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/config"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/gitinfo"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/history"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/pdfreader"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/tui"
	"github.com/ScottGunn22/dirchecker/internal/application"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "report <pdf-file>",
		Short: "Validate the header fields on a report PDF's first page",
		Long:  "Extract the required header fields (dates, report status, VA manager, IP addresses) from the first page of a report PDF and validate each one.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "usage: dirchecker report <pdf-file>")
				fmt.Fprintln(out, "example: dirchecker report ./REPORTS/ABC123-Preliminary.pdf")
				return fmt.Errorf("expected 1 argument, got %d", len(args))
			}

			svc := application.NewReportService(
				pdfreader.New(),
				config.New(),
				history.New(),
				gitinfo.New(),
			)

			rep, err := svc.ValidateReport(args[0])
			if err != nil {
				return fmt.Errorf("report validation failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, rep); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidationReport(rep))
			}

			if !rep.Passed {
				return errQCFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
