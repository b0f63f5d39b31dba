package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/shelf/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of the catalog in another format",
		Long: `Write a snapshot of the catalog to a file.

The format follows the file extension: .yaml, .yml, .json, .csv or .parquet.`,
		Example: `  # Snapshot to parquet for analysis
  shelf export --output catalog.parquet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.open()
			if err := export.WriteFile(output, c.Records); err != nil {
				return err
			}
			slog.Info("Catalog exported", "output", output, "records", c.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", c.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Export file path (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
