package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDocument_Markdown(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "article.md", "# Title\n\nSales grew by 25% in 2023.\n")

	doc, err := LoadDocument(path)
	require.NoError(t, err)

	assert.Equal(t, "article.md", doc.Name)
	assert.Contains(t, doc.Content, "Sales grew by 25% in 2023.")
}

func TestLoadDocument_HTML(t *testing.T) {
	dir := t.TempDir()
	src := `<html><head><style>p { color: red; }</style>
<script>var tracking = 1;</script></head>
<body><p>Sales grew by 25% in 2023.</p><noscript>enable js</noscript></body></html>`
	path := writeFile(t, dir, "article.html", src)

	doc, err := LoadDocument(path)
	require.NoError(t, err)

	assert.Contains(t, doc.Content, "Sales grew by 25% in 2023.")
	assert.NotContains(t, doc.Content, "tracking")
	assert.NotContains(t, doc.Content, "color: red")
	assert.NotContains(t, doc.Content, "enable js")
}

func TestLoadDocument_Missing(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "absent.md"))
	assert.Error(t, err)
}

func TestLoadResearch_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "research.json", `{
		"statistics": ["Sales increased 25% in 2023"],
		"expert_quotes": ["Analysts expect growth to continue"],
		"sources": ["https://example.com/report"]
	}`)

	data, raw, err := LoadResearch(path)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	assert.False(t, data.IsEmpty())
	assert.Equal(t, []string{"Sales increased 25% in 2023"}, data.Statistics)
	assert.Equal(t, []string{"https://example.com/report"}, data.Sources)
}

func TestLoadResearch_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "research.yaml", `
statistics:
  - Sales increased 25% in 2023
results:
  - query: sales outlook
    answer: Growth should continue through 2026
    sources:
      - https://example.com/outlook
`)

	data, _, err := LoadResearch(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Sales increased 25% in 2023"}, data.Statistics)
	require.Len(t, data.Results, 1)
	assert.Equal(t, "sales outlook", data.Results[0].Query)
}

func TestLoadResearch_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.json", `{not json`)

	_, _, err := LoadResearch(path)
	assert.Error(t, err)
}
