package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/shelf/internal/catalog"
	"github.com/lehigh-university-libraries/shelf/internal/export"
	"github.com/lehigh-university-libraries/shelf/internal/models"
	"github.com/spf13/cobra"
)

var formatUsage = "Output format (" + strings.Join(export.Formats, ", ") + ")"

func newListCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show every record in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return export.Write(cmd.OutOrStdout(), opts.open().Records, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "text", formatUsage)
	return cmd
}

func newSearchCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "search TITLE",
		Short: "Find a record by exact title (case-insensitive)",
		Example: `  shelf search "the left hand of darkness"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			rec, found := opts.open().Find(title)
			if !found {
				return fmt.Errorf("%w: %s", catalog.ErrNotFound, title)
			}
			return export.Write(cmd.OutOrStdout(), []models.Record{rec}, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "text", formatUsage)
	return cmd
}

func newSectionCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "section ID",
		Short: "List the records of a section ordered by publication year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("section must be a number: %q", args[0])
			}
			return export.Write(cmd.OutOrStdout(), opts.open().Section(section), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "text", formatUsage)
	return cmd
}
