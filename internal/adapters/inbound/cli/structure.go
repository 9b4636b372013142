package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/config"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/gitinfo"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/history"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/scanner"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/tui"
	"github.com/ScottGunn22/dirchecker/internal/application"
	"github.com/ScottGunn22/dirchecker/internal/domain"
	"github.com/spf13/cobra"
)

func newStructureCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "structure <base-directory> [test-type]",
		Short: "Check an engagement directory against the required deliverable tree",
		Long:  "Verify that the engagement base directory contains all required subdirectories and files. Test type SB additionally requires scan artifacts under NVA; any other test type, or none, checks the common set only.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "usage: dirchecker structure <base-directory> [test-type]")
				fmt.Fprintln(out, "example: dirchecker structure ./ABC123-20240115 SB")
				fmt.Fprint(out, tui.RenderExpectedStructure(domain.TestTypeSB))
				return fmt.Errorf("expected 1 or 2 arguments, got %d", len(args))
			}

			basePath := args[0]
			testType := domain.TestTypeOther
			if len(args) == 2 {
				testType = domain.ParseTestType(args[1])
			}

			svc := application.NewStructureService(
				scanner.New(),
				config.New(),
				history.New(),
				gitinfo.New(),
			)

			report, err := svc.CheckStructure(basePath, testType)
			if err != nil {
				return fmt.Errorf("structure check failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderStructureReport(report))
			}

			if !report.Passed() {
				return errQCFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func renderJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
