package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/pipeline"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <document>",
	Short: "Fact-check a document against research data",
	Long: `Verify extracts factual claims from a document, matches each against a
research bundle, and reports a verdict per claim (verified, needs
review, or unsupported) along with an overall accuracy score and
remediation recommendations.

Example:
  contentpipe verify article.md --research research.json
  contentpipe verify article.md -r research.yaml --json report.json --md report.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDocument(args[0], pipeline.ModeVerify)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&researchPath, "research", "r", "", "research bundle file (JSON or YAML)")
	verifyCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	verifyCmd.Flags().StringVar(&outMD, "md", "", "output Markdown report path (optional)")
	verifyCmd.Flags().DurationVar(&procTimeout, "timeout", 2*time.Minute, "processing timeout")
	verifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
	verifyCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown output")
	verifyCmd.Flags().BoolVar(&archiveRuns, "archive", false, "record this run in the local archive database")
	_ = verifyCmd.MarkFlagRequired("research")
}
