package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/pipeline"
)

// citeCmd represents the cite command
var citeCmd = &cobra.Command{
	Use:   "cite <document>",
	Short: "Insert numbered citations into a document",
	Long: `Cite extracts citable claims from a document, matches each against a
research bundle, inserts numbered citation markers after supported
claims, and appends a formatted References section.

Example:
  contentpipe cite article.md --research research.json
  contentpipe cite article.md -r research.json --style mla --md cited.md
  contentpipe cite article.html -r research.yaml --json result.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDocument(args[0], pipeline.ModeCite)
	},
}

func init() {
	rootCmd.AddCommand(citeCmd)

	citeCmd.Flags().StringVarP(&researchPath, "research", "r", "", "research bundle file (JSON or YAML)")
	citeCmd.Flags().StringVar(&style, "style", "apa", "citation style (apa, mla, chicago)")
	citeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	citeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path for the cited document (optional)")
	citeCmd.Flags().DurationVar(&procTimeout, "timeout", 2*time.Minute, "processing timeout")
	citeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
	citeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown output")
	citeCmd.Flags().BoolVar(&archiveRuns, "archive", false, "record this run in the local archive database")
	_ = citeCmd.MarkFlagRequired("research")
}
