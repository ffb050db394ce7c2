package extract

import (
	"regexp"
	"strings"
)

// Token derivation shared by claims and evidence items, so matching works
// over one vocabulary.

var numberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(?:\.\d+)?%`),
	regexp.MustCompile(`(?i)\$\d+(?:[\d,]*)?(?:\.\d+)?(?:\s*(?:billion|million|thousand|k))?`),
	regexp.MustCompile(`(?i)\d+(?:[\d,]*)?(?:\.\d+)?(?:\s*(?:billion|million|thousand|k))?`),
	regexp.MustCompile(`(?i)\d+(?:\.\d+)?x`),
	regexp.MustCompile(`\b20\d{2}\b`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b20\d{2}\b`),
	regexp.MustCompile(`(?i)(?:in|during|by)\s+20\d{2}`),
	regexp.MustCompile(`(?i)(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+20\d{2}`),
}

var wordPattern = regexp.MustCompile(`\b[a-z]{3,}\b`)

var stopWords = map[string]bool{
	"the": true, "and": true, "but": true, "for": true,
	"with": true, "from": true, "about": true, "into": true,
	"through": true, "during": true, "was": true, "were": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"are": true, "this": true, "that": true, "these": true, "those": true,
	"there": true, "their": true, "they": true, "them": true,
	"will": true, "would": true, "could": true, "should": true,
}

// extractNumbers pulls normalized numeric strings (percentages, currency
// amounts with scale suffixes, multipliers, years) in first-seen order.
func extractNumbers(text string) []string {
	var numbers []string
	seen := make(map[string]bool)

	for _, p := range numberPatterns {
		for _, m := range p.FindAllString(text, -1) {
			if !seen[m] {
				seen[m] = true
				numbers = append(numbers, m)
			}
		}
	}

	return numbers
}

// extractDates pulls years and temporal phrases in first-seen order.
func extractDates(text string) []string {
	var dates []string
	seen := make(map[string]bool)

	for _, p := range datePatterns {
		for _, m := range p.FindAllString(text, -1) {
			if !seen[m] {
				seen[m] = true
				dates = append(dates, m)
			}
		}
	}

	return dates
}

// extractKeywords pulls lowercase tokens of three or more letters,
// stopword-filtered and capped at max, in first-seen order.
func extractKeywords(text string, max int) []string {
	var keywords []string
	seen := make(map[string]bool)

	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if stopWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		keywords = append(keywords, w)
		if max > 0 && len(keywords) >= max {
			break
		}
	}

	return keywords
}
