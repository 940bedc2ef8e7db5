package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/genekit/genesyn/internal/cmd/output"
	"github.com/genekit/genesyn/pkg/errors"
	"github.com/genekit/genesyn/pkg/geneinfo"
	"github.com/genekit/genesyn/pkg/genes"
)

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("genesyn version %s\n", a.version)
			fmt.Printf("commit: %s\n", a.commit)
			fmt.Printf("built: %s\n", a.date)
			fmt.Printf("built by: %s\n", a.builtBy)
			fmt.Printf("go version: %s\n", runtime.Version())
			fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// NewInspectCommand creates the inspect command, which looks up a single
// gene's synonym group in the reference dictionary and prints it.
func (a *App) NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect GENE",
		Short: "Look up a gene's synonym group in the reference dictionary",
		Long: `Inspect resolves a single gene name against the reference dictionary
and prints its synonym group. Output defaults to a table on terminals
and CSV when piped; use --format to choose explicitly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geneInfo := mustGetString(cmd, "gene_info")
			index, err := geneinfo.Load(geneInfo)
			if err != nil {
				return err
			}

			gene := genes.Normalize(args[0])
			if _, ok := index.Lookup(gene); !ok {
				return errors.NewNotFoundError("gene", gene.String())
			}

			format := output.DetectFormat(a.config.Format)
			formatter := output.NewFormatter(format)
			return formatter.Format(os.Stdout, output.GroupData(gene, index.Synonyms(gene)))
		},
	}

	cmd.Flags().String("gene_info", "", "path to the NCBI gene_info file (tab-delimited)")
	markRequired(cmd, "gene_info")

	return cmd
}
