package cite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var accessed = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestNormalizeStyle(t *testing.T) {
	assert.Equal(t, StyleAPA, NormalizeStyle("APA", "apa"))
	assert.Equal(t, StyleMLA, NormalizeStyle(" mla ", "apa"))
	assert.Equal(t, StyleChicago, NormalizeStyle("chicago", "apa"))
	assert.Equal(t, StyleAPA, NormalizeStyle("harvard", "apa"))
	assert.Equal(t, StyleMLA, NormalizeStyle("harvard", "mla"))
	assert.Equal(t, StyleAPA, NormalizeStyle("", ""))
}

func TestFormatCitation_URLSource(t *testing.T) {
	c := FormatCitation(StyleAPA, "https://www.example.com/report", 1, accessed)

	assert.Equal(t, 1, c.ID)
	assert.Equal(t, "https://www.example.com/report", c.URL)
	assert.Equal(t, "2026-03-15", c.Accessed)
	assert.Equal(t, "Example.Com. Retrieved March 15, 2026, from https://www.example.com/report", c.Formatted)
}

func TestFormatCitation_URLSource_Styles(t *testing.T) {
	mla := FormatCitation(StyleMLA, "https://example.com/report", 2, accessed)
	assert.Equal(t, `"Example.Com." Web. 15 Mar 2026.`, mla.Formatted)

	chicago := FormatCitation(StyleChicago, "https://example.com/report", 3, accessed)
	assert.Equal(t, "Example.Com, accessed March 15, 2026, https://example.com/report.", chicago.Formatted)
}

func TestFormatCitation_TextSource(t *testing.T) {
	apa := FormatCitation(StyleAPA, "Research Data", 1, accessed)
	assert.Equal(t, "Research Data. (2026). Research data.", apa.Formatted)
	assert.Empty(t, apa.URL)

	mla := FormatCitation(StyleMLA, "Research Data", 1, accessed)
	assert.Equal(t, `"Research Data." Research Data, 2026.`, mla.Formatted)

	chicago := FormatCitation(StyleChicago, "Research Data", 1, accessed)
	assert.Equal(t, "Research Data, Research Data (2026).", chicago.Formatted)
}
