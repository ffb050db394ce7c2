package extract

import (
	"regexp"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/model"
)

// Rule describes one syntactic shape of a verifiable statement. The
// library is a closed ordered list; registration order matters because
// positional dedup lets the earliest-registered rule claim a position.
type Rule struct {
	Name     string
	Pattern  *regexp.Regexp
	Type     model.ClaimType
	Priority int
}

// Rules returns the pattern library in registration order.
func Rules() []Rule {
	return library
}

// Each pattern anchors on a sentence fragment: the leading [^.]*? pulls
// in context from the preceding period up to the matched token.
var library = []Rule{
	{
		Name:     "percentage_statistics",
		Pattern:  regexp.MustCompile(`(?i)[^.]*?\b\d+(?:\.\d+)?%`),
		Type:     model.ClaimTypeStatistic,
		Priority: 1,
	},
	{
		Name:     "financial_figures",
		Pattern:  regexp.MustCompile(`(?i)[^.]*?\$\d+(?:[\d,]*)?(?:\.\d+)?(?:\s*(?:billion|million|thousand|k))?`),
		Type:     model.ClaimTypeFinancial,
		Priority: 1,
	},
	{
		Name:     "growth_metrics",
		Pattern:  regexp.MustCompile(`(?i)[^.]*?(?:grew|increased|decreased|rose|fell|improved|declined)\s+(?:by\s+)?\d+(?:\.\d+)?%`),
		Type:     model.ClaimTypeGrowth,
		Priority: 1,
	},
	{
		Name:     "market_data",
		Pattern:  regexp.MustCompile(`(?i)[^.]*?(?:market|industry|sector)\s+(?:size|value|worth)[^.]*?\$?\d+`),
		Type:     model.ClaimTypeMarket,
		Priority: 2,
	},
	{
		Name:     "temporal_claims",
		Pattern:  regexp.MustCompile(`(?i)[^.]*?(?:in|during|by)\s+20\d{2}`),
		Type:     model.ClaimTypeTemporal,
		Priority: 2,
	},
	{
		Name:     "research_findings",
		Pattern:  regexp.MustCompile(`(?i)[^.]*?(?:study|research|survey|report|analysis)\s+(?:shows|found|indicates|reveals|suggests)`),
		Type:     model.ClaimTypeResearch,
		Priority: 2,
	},
	{
		Name:     "quantitative_claims",
		Pattern:  regexp.MustCompile(`(?i)[^.]*?\b\d+(?:[\d,]*)?(?:\.\d+)?\s*(?:users|customers|companies|businesses|people|organizations)`),
		Type:     model.ClaimTypeQuantitative,
		Priority: 3,
	},
	{
		Name:     "comparative_claims",
		Pattern:  regexp.MustCompile(`(?i)[^.]*?(?:\d+(?:\.\d+)?x|times)\s+(?:more|less|faster|slower|better|worse)`),
		Type:     model.ClaimTypeComparative,
		Priority: 3,
	},
	{
		// Attribution needs the attributed statement itself, so this one
		// rule keeps a greedy tail to the end of the sentence.
		Name:     "expert_attributions",
		Pattern:  regexp.MustCompile(`(?i)[^.]*?(?:according to|experts|analysts|researchers)\s+[^.]*`),
		Type:     model.ClaimTypeAttribution,
		Priority: 3,
	},
}
