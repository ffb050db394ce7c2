package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/model"
)

// Document is an article loaded from disk.
type Document struct {
	Name    string
	Path    string
	Content string
}

// LoadDocument reads an article from path. Markdown and plain text are
// read as-is; .html files are reduced to their visible text first.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}

	content := string(data)
	if strings.EqualFold(filepath.Ext(path), ".html") {
		content, err = visibleText(content)
		if err != nil {
			return Document{}, fmt.Errorf("parse HTML document: %w", err)
		}
	}

	return Document{
		Name:    filepath.Base(path),
		Path:    path,
		Content: content,
	}, nil
}

// LoadResearch reads a research bundle from a JSON or YAML file. The raw
// bytes are returned alongside so callers can fingerprint the bundle.
func LoadResearch(path string) (*model.ResearchData, []byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read research bundle: %w", err)
	}

	var data model.ResearchData
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, nil, fmt.Errorf("parse research bundle: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, nil, fmt.Errorf("parse research bundle: %w", err)
		}
	}

	return &data, raw, nil
}

// visibleText parses an HTML fragment and returns its rendered text,
// skipping non-content elements.
func visibleText(src string) (string, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String()), nil
}
