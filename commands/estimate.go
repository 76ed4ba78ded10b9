// Package commands holds CLI commands registered on the application's root command.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"choicedge/services"
)

// NewEstimateCommand returns the "estimate" command, which prices a saved
// wizard payload and writes the detailed estimate as PDF or XLSX.
func NewEstimateCommand(est *services.Estimator) *cobra.Command {
	var (
		input  string
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Compute a detailed estimate from a wizard payload file",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			state, err := services.ParseWizardState(raw)
			if err != nil {
				return fmt.Errorf("parse %s: %w", input, err)
			}

			doc := est.Estimate(state.ProjectInput())
			body, defaultName, err := renderEstimate(services.BuildExportData(doc), format)
			if err != nil {
				return err
			}

			if out == "" {
				out = defaultName
			}
			if err := os.WriteFile(out, body, 0644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Estimate for %d rooms written to %s (grand total %s)\n",
				len(doc.Rooms), out, services.FormatINR(doc.GrandTotal))
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "path to the wizard payload JSON")
	cmd.Flags().StringVar(&out, "out", "", "output file (default choicedge-detailed-estimate.<format>)")
	cmd.Flags().StringVar(&format, "format", "pdf", "output format: pdf or xlsx")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func renderEstimate(data services.ExportData, format string) ([]byte, string, error) {
	switch format {
	case "pdf":
		body, err := services.GeneratePDF(data)
		if err != nil {
			return nil, "", fmt.Errorf("generate PDF: %w", err)
		}
		return body, services.EstimatePDFFilename, nil
	case "xlsx":
		body, err := services.GenerateExcel(data)
		if err != nil {
			return nil, "", fmt.Errorf("generate Excel: %w", err)
		}
		return body, services.EstimateExcelFilename, nil
	default:
		return nil, "", fmt.Errorf("unsupported format %q: must be pdf or xlsx", format)
	}
}
