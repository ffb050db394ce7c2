package cite

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/logging"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/model"
)

func testRenderer() *Renderer {
	r := NewRenderer(model.DefaultConfig(), logging.Nop())
	r.now = func() time.Time {
		return time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	}
	return r
}

func TestRenderer_AddCitations_SharedSource(t *testing.T) {
	r := testRenderer()

	content := "Cloud spending grew by 25% in 2023. Enterprise adoption reached 60% in 2023."
	data := &model.ResearchData{
		Statistics: []string{
			"Cloud spending grew 25% in 2023",
			"Enterprise adoption hit 60% in 2023",
		},
		Sources: []string{"https://example.com/cloud-report"},
	}

	result := r.AddCitations(content, data, StyleAPA)
	require.NotNil(t, result)
	require.Empty(t, result.Metadata.Error)

	// Two claims backed by the same source share one bibliography entry.
	assert.Equal(t, 1, result.CitationCount)
	require.Len(t, result.Bibliography, 1)
	assert.Equal(t, "https://example.com/cloud-report", result.Bibliography[0].URL)

	assert.Equal(t, 2, strings.Count(result.CitedContent, " [1]"))
	assert.Contains(t, result.CitedContent, "in 2023 [1]. Enterprise")
	assert.Contains(t, result.CitedContent, "## References")
	assert.Contains(t, result.CitedContent, "1. Example.Com. Retrieved March 15, 2026, from https://example.com/cloud-report")

	assert.Equal(t, 2, result.Metadata.TotalClaimsIdentified)
	assert.Equal(t, 2, result.Metadata.ClaimsWithSources)
	assert.Equal(t, 1.0, result.Metadata.SuccessRate)
}

func TestRenderer_AddCitations_PreservesContent(t *testing.T) {
	r := testRenderer()

	content := "Cloud spending grew by 25% in 2023. Enterprise adoption reached 60% in 2023."
	data := &model.ResearchData{
		Statistics: []string{"Cloud spending grew 25% in 2023", "Enterprise adoption hit 60% in 2023"},
		Sources:    []string{"https://example.com/cloud-report"},
	}

	result := r.AddCitations(content, data, StyleAPA)
	require.NotNil(t, result)

	// Stripping markers and the references section restores the input.
	stripped := result.CitedContent
	if idx := strings.Index(stripped, "\n\n## References"); idx >= 0 {
		stripped = stripped[:idx]
	}
	stripped = strings.ReplaceAll(stripped, " [1]", "")
	assert.Equal(t, content, stripped)
}

func TestRenderer_AddCitations_NoResearchData(t *testing.T) {
	r := testRenderer()

	content := "Cloud spending grew by 25% in 2023."
	result := r.AddCitations(content, &model.ResearchData{}, StyleAPA)

	require.NotNil(t, result)
	assert.Equal(t, content, result.CitedContent)
	assert.Empty(t, result.Bibliography)
	assert.Equal(t, "no research data available", result.Metadata.Error)
}

func TestRenderer_AddCitations_LowConfidenceUncited(t *testing.T) {
	r := testRenderer()

	content := "Enterprise adoption reached 60% in 2023 across regions."
	data := &model.ResearchData{
		Statistics: []string{"Unrelated staffing numbers held flat"},
		Sources:    []string{"https://example.com/staffing"},
	}

	result := r.AddCitations(content, data, StyleAPA)
	require.NotNil(t, result)

	assert.Equal(t, 0, result.CitationCount)
	assert.Equal(t, content, result.CitedContent)
	require.Len(t, result.UncitedClaims, 1)
	assert.Equal(t, reasonLowConfidence, result.UncitedClaims[0].Reason)
	assert.Equal(t, 0.0, result.Metadata.SuccessRate)
}

func TestRenderer_AddCitations_Deterministic(t *testing.T) {
	r := testRenderer()

	content := "Cloud spending grew by 25% in 2023. Enterprise adoption reached 60% in 2023."
	data := &model.ResearchData{
		Statistics: []string{"Cloud spending grew 25% in 2023", "Enterprise adoption hit 60% in 2023"},
		Sources:    []string{"https://example.com/cloud-report"},
	}

	first := r.AddCitations(content, data, StyleAPA)
	for i := 0; i < 5; i++ {
		again := r.AddCitations(content, data, StyleAPA)
		assert.Equal(t, first.CitedContent, again.CitedContent)
		assert.Equal(t, first.Bibliography, again.Bibliography)
	}
}
