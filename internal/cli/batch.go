package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/logging"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/pipeline"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Process multiple documents from a manifest in parallel",
	Long: `Batch processes a YAML manifest of documents concurrently:
- Each manifest item names a document, a research bundle, and a mode
- Items run in parallel with a configurable worker count
- Individual JSON and Markdown reports are written per document

Example manifest:

  defaults:
    mode: check
    style: apa
    research: research.json
  items:
    - document: articles/q3-report.md
    - document: articles/launch.md
      mode: verify

Example:
  contentpipe batch manifest.yaml
  contentpipe batch manifest.yaml --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./contentpipe-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().BoolVar(&archiveRuns, "archive", false, "record runs in the local archive database")
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := buildConfig()
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}

	log, err := logging.New(verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Sync()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	fmt.Fprintf(os.Stderr, "Processing manifest %s with %d workers\n", manifestPath, cfg.Concurrency.Workers)

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers)
	results, err := processor.ProcessManifest(ctx, manifestPath)
	if err != nil {
		return fmt.Errorf("process manifest: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)

	successCount := 0
	failureCount := 0
	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Document, result.Error)
			continue
		}

		successCount++

		slug := sanitizeFilename(result.Result.Document)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")

		if err := renderer.RenderJSON(result.Result, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: write JSON: %v\n", result.Document, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Result, mdPath); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: write Markdown: %v\n", result.Document, err)
			continue
		}

		switch {
		case result.Result.Verification != nil:
			fmt.Fprintf(os.Stderr, "OK   %s (accuracy %.3f)\n", result.Result.Document, result.Result.Verification.AccuracyScore)
		case result.Result.Citation != nil:
			fmt.Fprintf(os.Stderr, "OK   %s (%d citations)\n", result.Result.Document, result.Result.Citation.CitationCount)
		default:
			fmt.Fprintf(os.Stderr, "OK   %s\n", result.Result.Document)
		}
	}

	fmt.Fprintf(os.Stderr, "\nBatch complete: %d total, %d succeeded, %d failed, output in %s\n",
		len(results), successCount, failureCount, outputDir)

	return nil
}

// sanitizeFilename sanitizes a document name for use as a report filename
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}

	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	name = replacer.Replace(name)

	if len(name) > 100 {
		name = name[:100]
	}
	if name == "" {
		name = "report"
	}

	return name
}
