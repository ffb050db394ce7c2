package extract

import (
	"strings"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/model"
)

// EvidenceIndexer normalizes the heterogeneous research bundle into a
// uniform evidence pool sharing the claim token vocabulary.
type EvidenceIndexer struct {
	maxKeywords int
}

// NewEvidenceIndexer creates a new evidence indexer.
func NewEvidenceIndexer(maxKeywords int) *EvidenceIndexer {
	if maxKeywords <= 0 {
		maxKeywords = 10
	}
	return &EvidenceIndexer{maxKeywords: maxKeywords}
}

// Index builds one evidence item per statistic, expert quote, and
// answered query record. No deduplication happens here; the matcher
// resolves redundancy by picking a single best item per claim.
func (ix *EvidenceIndexer) Index(data *model.ResearchData) []model.EvidenceItem {
	if data == nil {
		return nil
	}

	var items []model.EvidenceItem

	for _, stat := range data.Statistics {
		if strings.TrimSpace(stat) == "" {
			continue
		}
		items = append(items, ix.item(stat, model.EvidenceTypeStatistic, "research_statistics", data.Sources))
	}

	for _, quote := range data.ExpertQuotes {
		if strings.TrimSpace(quote) == "" {
			continue
		}
		items = append(items, ix.item(quote, model.EvidenceTypeExpertOpinion, "expert_quotes", data.Sources))
	}

	for _, result := range data.Results {
		if strings.TrimSpace(result.Answer) == "" {
			continue
		}
		source := result.Query
		if source == "" {
			source = "research_query"
		}
		urls := result.Sources
		if len(urls) == 0 {
			urls = data.Sources
		}
		items = append(items, ix.item(result.Answer, model.EvidenceTypeResearchFinding, source, urls))
	}

	return items
}

func (ix *EvidenceIndexer) item(text string, typ model.EvidenceType, source string, urls []string) model.EvidenceItem {
	return model.EvidenceItem{
		Text:       text,
		Type:       typ,
		Source:     source,
		SourceURLs: urls,
		Numbers:    extractNumbers(text),
		Keywords:   extractKeywords(text, ix.maxKeywords),
	}
}
