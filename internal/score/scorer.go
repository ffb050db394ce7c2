package score

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/model"
)

// Scorer rates how well evidence items support claims. It is pure: all
// weighting constants come from the injected config, nothing is mutated.
type Scorer struct {
	cfg model.ScoringConfig
}

// NewScorer creates a scorer with the given weighting policy.
func NewScorer(cfg model.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score rates a single claim/evidence pair. The confidence is the
// weighted sum of text similarity, number overlap, keyword overlap, and
// the type bonus, capped at 1.0.
func (s *Scorer) Score(claim model.Claim, ev model.EvidenceItem) model.MatchResult {
	result := model.MatchResult{
		ClaimID:  claim.ID,
		Evidence: ev,
	}

	result.TextSimilarity = lcsRatio(strings.ToLower(claim.Text), strings.ToLower(ev.Text))

	result.NumberOverlap, result.MatchingNumbers = numberScore(claim.Numbers, ev.Numbers)
	result.KeywordOverlap, result.MatchingKeywords = keywordScore(claim.Keywords, ev.Keywords)
	result.TypeMatch = typeAgrees(claim.Type, ev.Type)

	confidence := result.TextSimilarity*s.cfg.TextWeight +
		result.NumberOverlap*s.cfg.NumberWeight +
		result.KeywordOverlap*s.cfg.KeywordWeight
	if result.TypeMatch {
		confidence += s.cfg.TypeBonus
	}
	result.Confidence = math.Min(confidence, 1.0)

	return result
}

// BestMatch evaluates every evidence item and returns the single
// highest-scoring one. Ties break toward insertion order. The second
// return value is false when nothing scored above zero.
func (s *Scorer) BestMatch(claim model.Claim, pool []model.EvidenceItem) (model.MatchResult, bool) {
	var best model.MatchResult
	found := false

	for _, ev := range pool {
		r := s.Score(claim, ev)
		if r.Confidence > best.Confidence {
			best = r
			found = true
		}
	}

	return best, found
}

// Classify maps a confidence value onto a fact-check verdict.
func (s *Scorer) Classify(confidence float64) model.ClaimStatus {
	switch {
	case confidence >= s.cfg.VerifiedThreshold:
		return model.StatusVerified
	case confidence >= s.cfg.ReviewThreshold:
		return model.StatusNeedsReview
	default:
		return model.StatusUnsupported
	}
}

// AccuracyScore computes the priority-weighted mean over classified
// claims: priority 1 weighs 3, priority 3 weighs 1. Verified claims
// contribute full confidence, needs-review claims 0.6 of it, unsupported
// claims nothing.
func (s *Scorer) AccuracyScore(claims []model.Claim) float64 {
	totalWeight := 0.0
	weightedScore := 0.0

	for _, c := range claims {
		weight := float64(4 - c.Priority)

		var score float64
		switch c.Status {
		case model.StatusVerified:
			score = c.Confidence
		case model.StatusNeedsReview:
			score = c.Confidence * 0.6
		default:
			score = 0
		}

		weightedScore += score * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 0
	}
	return Round3(weightedScore / totalWeight)
}

// Round3 rounds to three decimals for reporting.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// lcsRatio is a normalized similarity ratio based on the longest common
// subsequence: 2*LCS / (len(a)+len(b)).
func lcsRatio(a, b string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ar := []rune(a)
	br := []rune(b)

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)

	for i := 1; i <= len(ar); i++ {
		for j := 1; j <= len(br); j++ {
			if ar[i-1] == br[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(br)]
	return 2 * float64(lcs) / float64(len(ar)+len(br))
}

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// numberScore averages per-claim-number match scores: 1.0 for an exact
// match after stripping separators and symbols, 0.7 for a close one.
// Zero when either side has no numbers.
func numberScore(claimNums, evNums []string) (float64, []string) {
	if len(claimNums) == 0 || len(evNums) == 0 {
		return 0, nil
	}

	total := 0.0
	var matching []string

	for _, cn := range claimNums {
		clean := nonNumeric.ReplaceAllString(cn, "")
		for _, en := range evNums {
			other := nonNumeric.ReplaceAllString(en, "")
			if clean == other {
				total += 1.0
				matching = append(matching, cn)
				break
			}
			if closeMatch(clean, other) {
				total += 0.7
				matching = append(matching, cn)
				break
			}
		}
	}

	return total / float64(len(claimNums)), matching
}

// closeMatch allows an absolute difference of 1 for values up to 10 and a
// relative difference of 10% above that.
func closeMatch(a, b string) bool {
	v1, err1 := strconv.ParseFloat(a, 64)
	v2, err2 := strconv.ParseFloat(b, 64)
	if err1 != nil || err2 != nil {
		return false
	}

	larger := math.Max(v1, v2)
	if larger <= 10 {
		return math.Abs(v1-v2) <= 1
	}
	return math.Abs(v1-v2)/larger <= 0.1
}

// keywordScore is the intersection size divided by the claim keyword
// count, asymmetric toward the claim. Zero when either side is empty.
func keywordScore(claimWords, evWords []string) (float64, []string) {
	if len(claimWords) == 0 || len(evWords) == 0 {
		return 0, nil
	}

	evSet := make(map[string]bool, len(evWords))
	for _, w := range evWords {
		evSet[w] = true
	}

	var matching []string
	for _, w := range claimWords {
		if evSet[w] {
			matching = append(matching, w)
		}
	}

	return float64(len(matching)) / float64(len(claimWords)), matching
}

// typeAgrees reports type agreement across the two enums; naming differs
// between claim types and evidence types for the attribution and research
// cases.
func typeAgrees(ct model.ClaimType, et model.EvidenceType) bool {
	switch ct {
	case model.ClaimTypeStatistic:
		return et == model.EvidenceTypeStatistic
	case model.ClaimTypeAttribution:
		return et == model.EvidenceTypeExpertOpinion
	case model.ClaimTypeResearch:
		return et == model.EvidenceTypeResearchFinding
	default:
		return string(ct) == string(et)
	}
}
