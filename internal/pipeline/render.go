package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Renderer writes pipeline results to files and the terminal.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a result renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full result as indented JSON
func (r *Renderer) RenderJSON(result *Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report. In citation modes this
// is the cited article itself; verification results are appended as a
// report section.
func (r *Renderer) RenderMarkdown(result *Result, path string) error {
	var buf strings.Builder

	if result.Citation != nil {
		buf.WriteString(result.Citation.CitedContent)
		buf.WriteString("\n")
	}

	if result.Verification != nil {
		if buf.Len() > 0 {
			buf.WriteString("\n---\n\n")
		}
		r.writeVerification(&buf, result)
	}

	if r.includeFooter {
		fmt.Fprintf(&buf, "\n---\n\nGenerated by contentpipe (run %s)\n", result.RunID)
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func (r *Renderer) writeVerification(buf *strings.Builder, result *Result) {
	v := result.Verification
	buf.WriteString("## Fact-Check Report\n\n")
	fmt.Fprintf(buf, "**Accuracy score:** %.3f\n\n", v.AccuracyScore)
	fmt.Fprintf(buf, "| Total | Verified | Needs review | Unsupported |\n")
	fmt.Fprintf(buf, "|---|---|---|---|\n")
	fmt.Fprintf(buf, "| %d | %d | %d | %d |\n\n",
		v.Statistics.TotalClaims, v.Statistics.Verified,
		v.Statistics.NeedsReview, v.Statistics.Unsupported)

	if len(v.VerifiedClaims) > 0 {
		buf.WriteString("### Claims\n\n")
		for _, c := range v.VerifiedClaims {
			fmt.Fprintf(buf, "- [%s] (%.3f) %s\n", c.Status, c.Confidence, c.Text)
			if c.SupportingSource != "" {
				fmt.Fprintf(buf, "  - source: %s\n", c.SupportingSource)
			}
		}
		buf.WriteString("\n")
	}

	buf.WriteString("### Recommendations\n\n")
	for _, rec := range v.Recommendations {
		fmt.Fprintf(buf, "- %s\n", rec)
	}
}

// RenderSummary prints a one-screen summary to stdout
func (r *Renderer) RenderSummary(result *Result) {
	fmt.Printf("\nDocument: %s (mode: %s)\n", result.Document, result.Mode)

	if result.Citation != nil {
		m := result.Citation.Metadata
		fmt.Printf("Citations: %d added, %d claims identified, success rate %.0f%%\n",
			result.Citation.CitationCount, m.TotalClaimsIdentified, m.SuccessRate*100)
		if len(result.Citation.UncitedClaims) > 0 {
			fmt.Printf("Uncited claims: %d\n", len(result.Citation.UncitedClaims))
		}
		if m.Error != "" {
			fmt.Printf("Warning: %s\n", m.Error)
		}
	}

	if result.Verification != nil {
		v := result.Verification
		fmt.Printf("Accuracy: %.3f (%d verified / %d review / %d unsupported of %d claims)\n",
			v.AccuracyScore, v.Statistics.Verified, v.Statistics.NeedsReview,
			v.Statistics.Unsupported, v.Statistics.TotalClaims)
		for _, rec := range v.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
		if v.Metadata.Error != "" {
			fmt.Printf("Warning: %s\n", v.Metadata.Error)
		}
	}

	if result.Cached {
		fmt.Println("(served from cache)")
	}
}
