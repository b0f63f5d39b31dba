package cmd

import (
	"fmt"

	"github.com/lehigh-university-libraries/shelf/internal/models"
	"github.com/spf13/cobra"
)

func newAddCmd(opts *options) *cobra.Command {
	var rec models.Record

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a new record to the catalog file",
		Long: `Append a new record to the catalog file.

The record is rejected when a book with the same title (ignoring case) is already
in the catalog. The file is created if it does not exist yet.`,
		Example: `  shelf add --title Dune --author "Frank Herbert" --year 1965 --pages 412 --section 3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.open().Add(rec); err != nil {
				return fmt.Errorf("could not add %q: %w", rec.Title, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", rec)
			return nil
		},
	}

	cmd.Flags().StringVar(&rec.Title, "title", "", "Book title (required)")
	cmd.Flags().StringVar(&rec.Author, "author", "", "Book author (required)")
	cmd.Flags().IntVar(&rec.PublicationYear, "year", 0, "Publication year (required)")
	cmd.Flags().IntVar(&rec.PageCount, "pages", 0, "Number of pages (required)")
	cmd.Flags().IntVar(&rec.Section, "section", 0, "Section id (required)")

	for _, name := range []string{"title", "author", "year", "pages", "section"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
