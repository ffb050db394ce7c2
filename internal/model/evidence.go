package model

// EvidenceType classifies where a unit of research data came from
type EvidenceType string

const (
	EvidenceTypeStatistic       EvidenceType = "statistic"        // Freestanding statistic string
	EvidenceTypeExpertOpinion   EvidenceType = "expert_opinion"   // Quoted expert opinion
	EvidenceTypeResearchFinding EvidenceType = "research_finding" // Query/answer record
)

// FallbackSourceLabel is used when no URL is known for a piece of evidence.
const FallbackSourceLabel = "Research Data"

// EvidenceItem is a normalized unit of research data claims are matched
// against. Numbers and keywords are derived with the same tokenizer as
// claims so both sides share one vocabulary.
type EvidenceItem struct {
	Text       string       `json:"text"`
	Type       EvidenceType `json:"type"`
	Source     string       `json:"source"`                // Originating query or bundle field label
	SourceURLs []string     `json:"source_urls,omitempty"` // Candidate citation URLs, best first
	Numbers    []string     `json:"numbers,omitempty"`
	Keywords   []string     `json:"keywords,omitempty"`
}

// SourceKey returns the identifier used to deduplicate bibliography
// entries: the first known URL, or a generic label.
func (e EvidenceItem) SourceKey() string {
	if len(e.SourceURLs) > 0 {
		return e.SourceURLs[0]
	}
	return FallbackSourceLabel
}

// MatchResult holds the scored pairing of one claim with its best
// evidence item. Transient; lives only for the duration of one invocation.
type MatchResult struct {
	ClaimID    int          `json:"claim_id"`
	Evidence   EvidenceItem `json:"evidence"`
	Confidence float64      `json:"confidence"`

	TextSimilarity float64 `json:"text_similarity"`
	NumberOverlap  float64 `json:"number_overlap"`
	KeywordOverlap float64 `json:"keyword_overlap"`
	TypeMatch      bool    `json:"type_match"`

	MatchingNumbers  []string `json:"matching_numbers,omitempty"`
	MatchingKeywords []string `json:"matching_keywords,omitempty"`
}
