package cite

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/model"
)

// Supported citation styles. They differ only in punctuation and the
// ordering of source label, access phrase, and date.
const (
	StyleAPA     = "apa"
	StyleMLA     = "mla"
	StyleChicago = "chicago"
)

// NormalizeStyle lowercases style and falls back when it is not a
// supported value.
func NormalizeStyle(style, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case StyleAPA:
		return StyleAPA
	case StyleMLA:
		return StyleMLA
	case StyleChicago:
		return StyleChicago
	}
	if fallback != "" && fallback != style {
		return NormalizeStyle(fallback, StyleAPA)
	}
	return StyleAPA
}

// FormatCitation renders one bibliography entry for a source key in the
// given style. URL sources cite the domain and access date; opaque labels
// cite the label as research data.
func FormatCitation(style, source string, id int, accessed time.Time) model.Citation {
	c := model.Citation{
		ID:       id,
		Source:   source,
		Accessed: accessed.Format("2006-01-02"),
		Style:    style,
	}

	if strings.HasPrefix(source, "http") {
		c.URL = source
		domain := sourceDomain(source)
		switch style {
		case StyleMLA:
			c.Formatted = fmt.Sprintf("%q Web. %s.", domain+".", accessed.Format("2 Jan 2006"))
		case StyleChicago:
			c.Formatted = fmt.Sprintf("%s, accessed %s, %s.", domain, accessed.Format("January 2, 2006"), source)
		default:
			c.Formatted = fmt.Sprintf("%s. Retrieved %s, from %s", domain, accessed.Format("January 2, 2006"), source)
		}
		return c
	}

	switch style {
	case StyleMLA:
		c.Formatted = fmt.Sprintf("%q Research Data, %d.", source+".", accessed.Year())
	case StyleChicago:
		c.Formatted = fmt.Sprintf("%s, Research Data (%d).", source, accessed.Year())
	default:
		c.Formatted = fmt.Sprintf("%s. (%d). Research data.", source, accessed.Year())
	}
	return c
}

// sourceDomain extracts a display name from a URL: host without the www
// prefix, title-cased per dot-separated part.
func sourceDomain(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return raw
	}
	domain := strings.TrimPrefix(parsed.Host, "www.")
	return titleCase(domain)
}

// titleCase uppercases the first letter of every letter run.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
