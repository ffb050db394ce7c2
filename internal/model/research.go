package model

// QueryResult is one structured query/answer record from the research step.
type QueryResult struct {
	Query   string   `json:"query" yaml:"query"`
	Answer  string   `json:"answer" yaml:"answer"`
	Sources []string `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// ResearchData is the loosely structured evidence bundle produced by the
// upstream research step. Absent or empty fields are valid input.
type ResearchData struct {
	Statistics   []string      `json:"statistics,omitempty" yaml:"statistics,omitempty"`
	ExpertQuotes []string      `json:"expert_quotes,omitempty" yaml:"expert_quotes,omitempty"`
	Results      []QueryResult `json:"results,omitempty" yaml:"results,omitempty"`
	Sources      []string      `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// IsEmpty reports whether the bundle carries no usable evidence at all.
// The top-level source list alone is not evidence, only attribution.
func (r *ResearchData) IsEmpty() bool {
	if r == nil {
		return true
	}
	return len(r.Statistics) == 0 && len(r.ExpertQuotes) == 0 && len(r.Results) == 0
}
