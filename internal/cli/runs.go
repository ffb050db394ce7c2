package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/store"
)

var runsLimit int

// runsCmd represents the runs command
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List archived pipeline runs",
	Long: `List recent runs recorded in the local archive database. Runs are
archived when processing commands are invoked with --archive, or when
the archive is enabled in the configuration.

Example:
  contentpipe runs
  contentpipe runs --limit 50`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()

		archive, err := store.NewStore(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("open run archive: %w", err)
		}
		defer func() { _ = archive.Close() }()

		runs, err := archive.ListRuns(context.Background(), runsLimit)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No archived runs.")
			return nil
		}

		for _, run := range runs {
			fmt.Printf("%s  %-8s  %-30s  accuracy=%.3f  citations=%d  %s\n",
				run.CreatedAt.Format("2006-01-02 15:04"), run.Mode,
				run.Document, run.Accuracy, run.Citations, run.ID)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum number of runs to list")
}
