package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/model"
)

// ClaimExtractor scans article text with the pattern library and produces
// deduplicated, validated claims.
type ClaimExtractor struct {
	bounds      model.Bounds
	dedupWindow int
	maxKeywords int
}

// NewClaimExtractor creates an extractor accepting claims within the given
// length bounds. Citation mode and fact-check mode differ only in bounds.
func NewClaimExtractor(bounds model.Bounds, dedupWindow, maxKeywords int) *ClaimExtractor {
	if dedupWindow <= 0 {
		dedupWindow = 10
	}
	if maxKeywords <= 0 {
		maxKeywords = 10
	}
	return &ClaimExtractor{
		bounds:      bounds,
		dedupWindow: dedupWindow,
		maxKeywords: maxKeywords,
	}
}

// Extract returns the claims found in content, ordered by position.
// An empty document yields an empty list.
func (e *ClaimExtractor) Extract(content string) []model.Claim {
	var claims []model.Claim
	var accepted []int

	for _, rule := range Rules() {
		for _, loc := range rule.Pattern.FindAllStringIndex(content, -1) {
			start, end := loc[0], loc[1]
			if e.nearAccepted(accepted, start) {
				continue
			}

			text := strings.TrimSpace(content[start:end])
			if !e.validClaim(text) {
				continue
			}

			claims = append(claims, model.Claim{
				Text:     text,
				Type:     rule.Type,
				Pattern:  rule.Name,
				Priority: rule.Priority,
				StartPos: start,
				EndPos:   end,
				Location: sectionAt(content, start),
				Numbers:  extractNumbers(text),
				Dates:    extractDates(text),
				Keywords: extractKeywords(text, e.maxKeywords),
			})
			accepted = append(accepted, start)
		}
	}

	sort.SliceStable(claims, func(i, j int) bool {
		if claims[i].StartPos != claims[j].StartPos {
			return claims[i].StartPos < claims[j].StartPos
		}
		return claims[i].Priority < claims[j].Priority
	})

	for i := range claims {
		claims[i].ID = i + 1
	}

	return claims
}

// nearAccepted reports whether start falls within the dedup window of an
// already-accepted claim. First rule to claim a position wins.
func (e *ClaimExtractor) nearAccepted(accepted []int, start int) bool {
	for _, pos := range accepted {
		diff := start - pos
		if diff < 0 {
			diff = -diff
		}
		if diff < e.dedupWindow {
			return true
		}
	}
	return false
}

// Fragments that are only list markers or bracketed text are never claims.
var invalidShapes = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\d+\.\s*$`),
	regexp.MustCompile(`^\s*[•\-\*]\s*$`),
	regexp.MustCompile(`^\s*\([^)]*\)\s*$`),
	regexp.MustCompile(`^\s*\[[^\]]*\]\s*$`),
}

var evidentiaryWords = []string{"study", "research", "report", "analysis", "found", "shows", "indicates"}

var digitPattern = regexp.MustCompile(`\d`)

// validClaim applies the shared validity rules: length bounds, at least
// three words, not a bare list/bracket fragment, and either a digit or an
// evidentiary keyword.
func (e *ClaimExtractor) validClaim(text string) bool {
	if len(text) < e.bounds.MinLength || len(text) > e.bounds.MaxLength {
		return false
	}

	for _, shape := range invalidShapes {
		if shape.MatchString(text) {
			return false
		}
	}

	if len(strings.Fields(text)) < 3 {
		return false
	}

	if digitPattern.MatchString(text) {
		return true
	}
	lower := strings.ToLower(text)
	for _, w := range evidentiaryWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// sectionAt returns the lowercased text of the nearest markdown heading
// preceding pos, or "introduction" when none exists.
func sectionAt(content string, pos int) string {
	section := "introduction"
	offset := 0

	for _, line := range strings.SplitAfter(content, "\n") {
		if offset > pos {
			break
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			heading := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			if heading != "" {
				section = strings.ToLower(heading)
			}
		}
		offset += len(line)
	}

	return section
}
