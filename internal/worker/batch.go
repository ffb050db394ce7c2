package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/pipeline"
)

// Manifest describes a batch of documents to process.
type Manifest struct {
	Defaults ManifestDefaults `yaml:"defaults"`
	Items    []ManifestItem   `yaml:"items"`
}

// ManifestDefaults apply to items that leave the field unset.
type ManifestDefaults struct {
	Mode     string `yaml:"mode"`
	Style    string `yaml:"style"`
	Research string `yaml:"research"`
}

// ManifestItem is one document entry in a batch manifest.
type ManifestItem struct {
	Document string `yaml:"document"`
	Research string `yaml:"research"`
	Mode     string `yaml:"mode"`
	Style    string `yaml:"style"`
}

// LoadManifest reads a batch manifest from a YAML file. Relative paths
// inside the manifest resolve against the manifest's directory, and
// item fields fall back to the manifest defaults.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Items) == 0 {
		return nil, fmt.Errorf("manifest %s lists no items", path)
	}

	base := filepath.Dir(path)
	for i := range m.Items {
		item := &m.Items[i]
		if item.Document == "" {
			return nil, fmt.Errorf("manifest item %d has no document", i+1)
		}
		if item.Research == "" {
			item.Research = m.Defaults.Research
		}
		if item.Research == "" {
			return nil, fmt.Errorf("manifest item %d has no research bundle", i+1)
		}
		if item.Mode == "" {
			item.Mode = m.Defaults.Mode
		}
		if item.Mode == "" {
			item.Mode = pipeline.ModeCheck
		}
		if item.Style == "" {
			item.Style = m.Defaults.Style
		}

		item.Document = resolve(base, item.Document)
		item.Research = resolve(base, item.Research)
	}

	return &m, nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// BatchJob processes one manifest item through the pipeline
type BatchJob struct {
	Item     ManifestItem
	Pipeline *pipeline.Pipeline
}

// Execute loads the item's inputs and runs the pipeline over them
func (j *BatchJob) Execute(ctx context.Context) Result {
	doc, err := pipeline.LoadDocument(j.Item.Document)
	if err != nil {
		return &BatchResult{Document: j.Item.Document, Error: err}
	}

	data, raw, err := pipeline.LoadResearch(j.Item.Research)
	if err != nil {
		return &BatchResult{Document: j.Item.Document, Error: err}
	}

	result, err := j.Pipeline.Process(ctx, doc, data, raw, j.Item.Mode, j.Item.Style)
	return &BatchResult{Document: j.Item.Document, Result: result, Error: err}
}

// BatchResult represents the outcome of one manifest item
type BatchResult struct {
	Document string
	Result   *pipeline.Result
	Error    error
}

// GetError returns the error from the batch result
func (r *BatchResult) GetError() error {
	return r.Error
}

// BatchProcessor fans manifest items out over a worker pool
type BatchProcessor struct {
	pipeline    *pipeline.Pipeline
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(p *pipeline.Pipeline, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		pipeline:    p,
		concurrency: concurrency,
	}
}

// ProcessManifest processes every item in a manifest file concurrently.
// Results come back sorted by document path so output order is stable.
func (b *BatchProcessor) ProcessManifest(ctx context.Context, path string) ([]*BatchResult, error) {
	manifest, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}
	return b.ProcessItems(ctx, manifest.Items), nil
}

// ProcessItems processes manifest items concurrently
func (b *BatchProcessor) ProcessItems(ctx context.Context, items []ManifestItem) []*BatchResult {
	if len(items) == 0 {
		return []*BatchResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, item := range items {
		pool.Submit(&BatchJob{Item: item, Pipeline: b.pipeline})
	}

	results := pool.Wait()

	batchResults := make([]*BatchResult, len(results))
	for i, result := range results {
		batchResults[i] = result.(*BatchResult)
	}

	sort.Slice(batchResults, func(i, j int) bool {
		return batchResults[i].Document < batchResults[j].Document
	})

	return batchResults
}
