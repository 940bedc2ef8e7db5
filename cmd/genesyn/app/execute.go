package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/genekit/genesyn"
	"github.com/genekit/genesyn/internal/cmd/output"
	"github.com/genekit/genesyn/pkg/constants"
	"github.com/genekit/genesyn/pkg/errors"
)

// Execute runs the genesyn CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
// The root command itself performs the comparison, so the canonical
// invocation is:
//
//	genesyn --file_a a.txt --file_b b.txt --output out.csv --gene_info gene_info.tsv
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "genesyn",
		Short:   "Compare gene lists with synonym expansion",
		Version: a.version,
		Long: `Genesyn reconciles two gene-name lists against an NCBI-style gene_info
synonym dictionary. For every gene in file B it resolves the full synonym
group, determines whether the gene (under any of its names) appears in
file A, and writes a three-column report: Gene, Synonyms, Present_in_A.

Gene names are case-insensitive; matching is symmetric, so a gene in B
matches even when file A lists it under a different alias of the same
synonym group.

The gene_info dictionary can be downloaded from:
https://ftp.ncbi.nih.gov/gene/DATA/`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE:              a.runCompare,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.genesyn.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Format, "format", "o", "", "output format: csv, tsv, json, yaml, table")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// Comparison flags; the underscore spellings match the original tool
	rootCmd.Flags().StringVar(&a.config.FileA, "file_a", a.config.FileA, "path to file A with gene names, one per line")
	rootCmd.Flags().StringVar(&a.config.FileB, "file_b", a.config.FileB, "path to file B with gene names to compare against file A")
	rootCmd.Flags().StringVar(&a.config.Output, "output", a.config.Output, "path to the output report file")
	rootCmd.Flags().StringVar(&a.config.GeneInfo, "gene_info", a.config.GeneInfo, "path to the NCBI gene_info file (tab-delimited)")
	markRequired(rootCmd, "file_a", "file_b", "output", "gene_info")

	rootCmd.SetVersionTemplate("genesyn {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// Update config from parsed flags. These flags are defined as
	// persistent flags above, so errors indicate programming errors.
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// runCompare executes the comparison pipeline: load the dictionary and both
// lists, build the report, write it to the output path.
func (a *App) runCompare(cmd *cobra.Command, _ []string) error {
	format, err := output.ParseFormat(a.config.Format)
	if err != nil {
		return errors.WrapValidation("format", err)
	}

	comparer, err := genesyn.New(
		genesyn.WithGeneInfoFile(a.config.GeneInfo),
		genesyn.WithFileA(a.config.FileA),
		genesyn.WithFileB(a.config.FileB),
		genesyn.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}

	rows := comparer.Compare()

	f, err := os.OpenFile(a.config.Output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", a.config.Output, err)
	}
	formatter := output.NewFormatter(format)
	if err := formatter.Format(f, output.ReportData(rows)); err != nil {
		f.Close()
		return errors.WrapIO("write", a.config.Output, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", a.config.Output, err)
	}

	a.logger.Info().
		Str("path", a.config.Output).
		Int("rows", len(rows)).
		Msg("Report written")
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.NewVersionCommand())
	rootCmd.AddCommand(a.NewInspectCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// markRequired marks root command flags as required or panics; the flags
// are defined in this package, so failure is a programming error.
func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic("programming error: failed to mark flag " + name + " required: " + err.Error())
		}
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't
// exist. This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't
// exist. This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
