package model

// Citation is one bibliography entry. IDs are dense and start at 1; there
// is exactly one entry per distinct source key cited.
type Citation struct {
	ID        int    `json:"id"`
	Source    string `json:"source"`
	Formatted string `json:"formatted"`
	URL       string `json:"url,omitempty"`
	Accessed  string `json:"accessed"` // YYYY-MM-DD
	Style     string `json:"style"`
}

// UncitedClaim records a claim the citation renderer could not back with
// a qualifying source, with the reason.
type UncitedClaim struct {
	Text   string    `json:"text"`
	Type   ClaimType `json:"type"`
	Reason string    `json:"reason"`
}

// CitationMetadata describes one citation rendering invocation.
type CitationMetadata struct {
	ProcessingSeconds     float64 `json:"processing_time_seconds"`
	TotalClaimsIdentified int     `json:"total_claims_identified"`
	ClaimsWithSources     int     `json:"claims_with_sources"`
	CitationStyle         string  `json:"citation_style,omitempty"`
	SuccessRate           float64 `json:"success_rate"`
	Error                 string  `json:"error,omitempty"`
}

// CitationResult is the complete output of the citation renderer.
type CitationResult struct {
	CitedContent  string           `json:"cited_content"`
	Bibliography  []Citation       `json:"bibliography"`
	CitationCount int              `json:"citation_count"`
	UncitedClaims []UncitedClaim   `json:"uncited_claims"`
	Metadata      CitationMetadata `json:"metadata"`
}

// VerificationStats aggregates claim counts by verdict.
type VerificationStats struct {
	TotalClaims int `json:"total_claims"`
	Verified    int `json:"verified"`
	Unsupported int `json:"unsupported"`
	NeedsReview int `json:"needs_review"`
}

// VerificationMetadata describes one fact-check invocation.
type VerificationMetadata struct {
	ProcessingSeconds   float64 `json:"processing_time_seconds"`
	ClaimsExtracted     int     `json:"claims_extracted"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	Error               string  `json:"error,omitempty"`
}

// VerificationReport is the complete output of the fact-check reporter.
type VerificationReport struct {
	VerifiedClaims  []Claim              `json:"verified_claims"`
	Statistics      VerificationStats    `json:"statistics"`
	Recommendations []string             `json:"recommendations"`
	AccuracyScore   float64              `json:"accuracy_score"`
	Metadata        VerificationMetadata `json:"metadata"`
}
