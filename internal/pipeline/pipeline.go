// Package pipeline orchestrates document loading, citation rendering,
// fact verification, result caching, and run archival.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/cache"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/cite"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/logging"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/model"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/store"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/verify"
)

// Processing modes.
const (
	ModeCite   = "cite"   // citation rendering only
	ModeVerify = "verify" // fact verification only
	ModeCheck  = "check"  // verification followed by citation
)

// Result is the combined output of one pipeline run.
type Result struct {
	RunID        string                    `json:"run_id"`
	Document     string                    `json:"document"`
	Mode         string                    `json:"mode"`
	Style        string                    `json:"style,omitempty"`
	Citation     *model.CitationResult     `json:"citation,omitempty"`
	Verification *model.VerificationReport `json:"verification,omitempty"`
	Cached       bool                      `json:"cached,omitempty"`
	GeneratedAt  time.Time                 `json:"generated_at"`
}

// Pipeline wires the engine stages together.
type Pipeline struct {
	renderer *cite.Renderer
	reporter *verify.Reporter
	cache    cache.Cache
	archive  *store.Store
	config   *model.Config
	log      *logging.Logger
}

// NewPipeline creates a pipeline with the given configuration. The run
// archive is opened lazily only when enabled.
func NewPipeline(cfg *model.Config, log *logging.Logger) (*Pipeline, error) {
	p := &Pipeline{
		renderer: cite.NewRenderer(cfg, log),
		reporter: verify.NewReporter(cfg, log),
		config:   cfg,
		log:      log,
	}

	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			p.cache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval, cfg.Cache.Dir, cfg.Cache.TTL)
		} else {
			p.cache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
		}
	}

	if cfg.Store.Enabled {
		archive, err := store.NewStore(cfg.Store.Path)
		if err != nil {
			return nil, fmt.Errorf("open run archive: %w", err)
		}
		p.archive = archive
	}

	return p, nil
}

// Close releases pipeline resources.
func (p *Pipeline) Close() error {
	if p.archive != nil {
		return p.archive.Close()
	}
	return nil
}

// Process runs the requested mode over a document and research bundle.
// researchRaw is the bundle's raw bytes, used only for cache keying.
func (p *Pipeline) Process(ctx context.Context, doc Document, data *model.ResearchData, researchRaw []byte, mode, style string) (*Result, error) {
	switch mode {
	case ModeCite, ModeVerify, ModeCheck:
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	style = cite.NormalizeStyle(style, p.config.Citation.Style)

	key := cache.ResultKey(doc.Content, cache.Digest(researchRaw), mode, style)
	if p.cache != nil {
		if blob, found := p.cache.Get(key); found {
			var cached Result
			if err := json.Unmarshal(blob, &cached); err == nil {
				cached.Cached = true
				p.log.Debug("cache hit", "document", doc.Name, "mode", mode)
				return &cached, nil
			}
			// Unreadable entry, recompute.
			_ = p.cache.Delete(key)
		}
	}

	result := &Result{
		RunID:       uuid.NewString(),
		Document:    doc.Name,
		Mode:        mode,
		GeneratedAt: time.Now().UTC(),
	}

	if mode == ModeVerify || mode == ModeCheck {
		result.Verification = p.reporter.VerifyFacts(doc.Content, data)
	}
	if mode == ModeCite || mode == ModeCheck {
		result.Style = style
		result.Citation = p.renderer.AddCitations(doc.Content, data, style)
	}

	if p.cache != nil {
		if blob, err := json.Marshal(result); err == nil {
			if err := p.cache.Set(key, blob, p.config.Cache.TTL); err != nil {
				p.log.Warn("cache write failed", "error", err)
			}
		}
	}

	if p.archive != nil {
		if err := p.archiveRun(ctx, result); err != nil {
			// Archival is best-effort; the run result is still valid.
			p.log.Warn("run archival failed", "error", err)
		}
	}

	return result, nil
}

func (p *Pipeline) archiveRun(ctx context.Context, result *Result) error {
	blob, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	run := store.Run{
		ID:         result.RunID,
		Document:   result.Document,
		Mode:       result.Mode,
		Style:      result.Style,
		CreatedAt:  result.GeneratedAt,
		ResultJSON: string(blob),
	}
	if result.Verification != nil {
		run.Accuracy = result.Verification.AccuracyScore
		run.Claims = result.Verification.Statistics.TotalClaims
	}
	if result.Citation != nil {
		run.Citations = result.Citation.CitationCount
	}

	return p.archive.SaveRun(ctx, run)
}

// ListRuns returns recent archived runs, newest first.
func (p *Pipeline) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if p.archive == nil {
		return nil, fmt.Errorf("run archive is disabled")
	}
	return p.archive.ListRuns(ctx, limit)
}
