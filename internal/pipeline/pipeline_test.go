package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/logging"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/model"
)

const testContent = "Cloud spending grew by 25% in 2023. Enterprise adoption reached 60% in 2023."

func testResearch() *model.ResearchData {
	return &model.ResearchData{
		Statistics: []string{"Cloud spending grew 25% in 2023", "Enterprise adoption hit 60% in 2023"},
		Sources:    []string{"https://example.com/cloud-report"},
	}
}

func newTestPipeline(t *testing.T, cfg *model.Config) *Pipeline {
	t.Helper()
	p, err := NewPipeline(cfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestPipeline_Process_Check(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p := newTestPipeline(t, cfg)

	doc := Document{Name: "article.md", Content: testContent}
	result, err := p.Process(context.Background(), doc, testResearch(), []byte("bundle"), ModeCheck, "apa")
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, ModeCheck, result.Mode)
	assert.Equal(t, "apa", result.Style)
	require.NotNil(t, result.Citation)
	require.NotNil(t, result.Verification)
	assert.Equal(t, 1, result.Citation.CitationCount)
	assert.Equal(t, 2, result.Verification.Statistics.TotalClaims)
}

func TestPipeline_Process_ModeSelectsStages(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p := newTestPipeline(t, cfg)

	doc := Document{Name: "article.md", Content: testContent}

	citeResult, err := p.Process(context.Background(), doc, testResearch(), []byte("bundle"), ModeCite, "apa")
	require.NoError(t, err)
	assert.NotNil(t, citeResult.Citation)
	assert.Nil(t, citeResult.Verification)

	verifyResult, err := p.Process(context.Background(), doc, testResearch(), []byte("bundle"), ModeVerify, "")
	require.NoError(t, err)
	assert.Nil(t, verifyResult.Citation)
	assert.NotNil(t, verifyResult.Verification)
}

func TestPipeline_Process_UnknownMode(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p := newTestPipeline(t, cfg)

	doc := Document{Name: "article.md", Content: testContent}
	_, err := p.Process(context.Background(), doc, testResearch(), nil, "summarize", "apa")
	assert.Error(t, err)
}

func TestPipeline_Process_CacheHit(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = true
	p := newTestPipeline(t, cfg)

	doc := Document{Name: "article.md", Content: testContent}

	first, err := p.Process(context.Background(), doc, testResearch(), []byte("bundle"), ModeCheck, "apa")
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := p.Process(context.Background(), doc, testResearch(), []byte("bundle"), ModeCheck, "apa")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.RunID, second.RunID)
	assert.Equal(t, first.Citation.CitedContent, second.Citation.CitedContent)

	// A different style is a different cache entry.
	third, err := p.Process(context.Background(), doc, testResearch(), []byte("bundle"), ModeCheck, "mla")
	require.NoError(t, err)
	assert.False(t, third.Cached)
}

func TestPipeline_Process_Archive(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Store.Enabled = true
	cfg.Store.Path = filepath.Join(t.TempDir(), "runs.db")
	p := newTestPipeline(t, cfg)

	doc := Document{Name: "article.md", Content: testContent}
	result, err := p.Process(context.Background(), doc, testResearch(), []byte("bundle"), ModeCheck, "apa")
	require.NoError(t, err)

	runs, err := p.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, result.RunID, runs[0].ID)
	assert.Equal(t, "article.md", runs[0].Document)
	assert.Equal(t, ModeCheck, runs[0].Mode)
	assert.Equal(t, result.Verification.AccuracyScore, runs[0].Accuracy)
	assert.Equal(t, 1, runs[0].Citations)
}
