package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/logging"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/model"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/pipeline"
)

// Flags shared by the cite, verify, and check commands.
var (
	researchPath string
	style        string
	outJSON      string
	outMD        string
	procTimeout  time.Duration
	noCache      bool
	noFooter     bool
	archiveRuns  bool
)

// buildConfig merges defaults, the config file, and command flags
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid configuration, using defaults: %v\n", err)
		cfg = model.DefaultConfig()
	}

	if noCache {
		cfg.Cache.Enabled = false
	}
	if archiveRuns {
		cfg.Store.Enabled = true
	}
	cfg.Output.Verbose = verbose
	if noFooter {
		cfg.Output.IncludeFooter = false
	}

	return cfg
}

// runDocument processes a single document in the given mode and renders
// the requested outputs.
func runDocument(docPath, mode string) error {
	ctx, cancel := context.WithTimeout(context.Background(), procTimeout)
	defer cancel()

	cfg := buildConfig()

	log, err := logging.New(verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Sync()

	doc, err := pipeline.LoadDocument(docPath)
	if err != nil {
		return err
	}

	data, raw, err := pipeline.LoadResearch(researchPath)
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	result, err := p.Process(ctx, doc, data, raw, mode, style)
	if err != nil {
		return fmt.Errorf("process %s: %w", doc.Name, err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(result, outMD); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(result)
	return nil
}
