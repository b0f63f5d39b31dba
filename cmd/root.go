package cmd

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/shelf/internal/catalog"
	"github.com/lehigh-university-libraries/shelf/internal/config"
	"github.com/lehigh-university-libraries/shelf/internal/shell"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand
type options struct {
	catalogPath string
	verbose     bool
	syncOnAdd   bool

	cfg config.Config
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "shelf",
		Short: "Personal library catalog manager",
		Long: `Shelf manages a personal book catalog kept in a plain comma-delimited file.

Each line of the catalog holds one book: Title,Author,PublicationYear,PageCount,Section.
Run without a subcommand to open the interactive menu.`,
		Example: `  # Open the interactive menu on ./catalog.csv
  shelf

  # List section 3 ordered by publication year
  shelf section 3 --file books.csv`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			opts.configure(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.catalogPath, "file", "f", "", "Catalog file (defaults to $SHELF_CATALOG or catalog.csv)")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Verbose logging")
	cmd.PersistentFlags().BoolVar(&opts.syncOnAdd, "sync-on-add", false, "Also add new records to the in-memory catalog")

	// Add subcommands
	cmd.AddCommand(newShellCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newSectionCmd(opts))
	cmd.AddCommand(newAddCmd(opts))
	cmd.AddCommand(newExportCmd(opts))

	return cmd
}

// configure resolves env configuration, applies flag overrides and sets up logging
func (o *options) configure(cmd *cobra.Command) {
	o.cfg = config.FromEnv()

	flags := cmd.Flags()
	if flags.Changed("file") {
		o.cfg.CatalogPath = o.catalogPath
	}
	if flags.Changed("sync-on-add") {
		o.cfg.SyncOnAdd = o.syncOnAdd
	}
	if o.verbose {
		o.cfg.LogLevel = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: o.cfg.LogLevel})))
}

// open loads the configured catalog
func (o *options) open() *catalog.Catalog {
	c, _ := catalog.Open(o.cfg.CatalogPath, slog.Default())
	c.SyncOnAdd = o.cfg.SyncOnAdd
	return c
}

func newShellCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive catalog menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
}

func runShell(cmd *cobra.Command, opts *options) error {
	return shell.New(opts.open(), cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
}
