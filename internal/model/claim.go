package model

// ClaimType categorizes the syntactic shape of a verifiable statement
type ClaimType string

const (
	ClaimTypeStatistic    ClaimType = "statistic"    // Percentage-based statistics
	ClaimTypeFinancial    ClaimType = "financial"    // Currency figures and amounts
	ClaimTypeGrowth       ClaimType = "growth"       // Growth and change metrics
	ClaimTypeMarket       ClaimType = "market"       // Market size and industry data
	ClaimTypeTemporal     ClaimType = "temporal"     // Time-specific claims
	ClaimTypeResearch     ClaimType = "research"     // Research and study findings
	ClaimTypeQuantitative ClaimType = "quantitative" // Quantitative business claims
	ClaimTypeComparative  ClaimType = "comparative"  // Comparative performance claims
	ClaimTypeAttribution  ClaimType = "attribution"  // Expert opinion attributions
)

// ClaimStatus is the fact-check verdict derived from confidence bands
type ClaimStatus string

const (
	StatusVerified    ClaimStatus = "verified"     // Confidence at or above the verified threshold
	StatusNeedsReview ClaimStatus = "needs_review" // Confidence inside the review band
	StatusUnsupported ClaimStatus = "unsupported"  // Confidence below the review band
)

// Claim represents a span of article text asserting a verifiable fact.
// The extractor fills everything through Keywords; the matcher fills the rest.
type Claim struct {
	ID       int       `json:"id"`
	Text     string    `json:"text"`
	Type     ClaimType `json:"type"`
	Pattern  string    `json:"pattern,omitempty"` // Which pattern rule matched
	Priority int       `json:"priority"`          // 1 = highest
	StartPos int       `json:"start_pos"`         // Character offset in the source text
	EndPos   int       `json:"end_pos"`
	Location string    `json:"location,omitempty"` // Nearest preceding markdown heading

	Numbers  []string `json:"numbers,omitempty"`
	Dates    []string `json:"dates,omitempty"`
	Keywords []string `json:"keywords,omitempty"`

	Status           ClaimStatus `json:"status,omitempty"`
	Confidence       float64     `json:"confidence"`
	SupportingSource string      `json:"supporting_source,omitempty"`
	SupportingText   string      `json:"supporting_text,omitempty"`
}
