package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/pipeline"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <document>",
	Short: "Fact-check a document, then insert citations",
	Long: `Check runs the full pipeline: fact verification followed by citation
rendering. The result combines the verification report and the cited
document in one output.

Example:
  contentpipe check article.md --research research.json --md final.md
  contentpipe check article.md -r research.json --style chicago --json result.json --archive`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDocument(args[0], pipeline.ModeCheck)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&researchPath, "research", "r", "", "research bundle file (JSON or YAML)")
	checkCmd.Flags().StringVar(&style, "style", "apa", "citation style (apa, mla, chicago)")
	checkCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	checkCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	checkCmd.Flags().DurationVar(&procTimeout, "timeout", 2*time.Minute, "processing timeout")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
	checkCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown output")
	checkCmd.Flags().BoolVar(&archiveRuns, "archive", false, "record this run in the local archive database")
	_ = checkCmd.MarkFlagRequired("research")
}
