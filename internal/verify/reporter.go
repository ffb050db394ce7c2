// Package verify classifies claims against research evidence and builds
// factual-accuracy reports.
package verify

import (
	"fmt"
	"time"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/extract"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/logging"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/model"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/score"
)

const supportingTextLimit = 200

// Reporter verifies article claims against an evidence pool and produces
// a verdict report with an accuracy score and remediation advice.
type Reporter struct {
	extractor *extract.ClaimExtractor
	indexer   *extract.EvidenceIndexer
	scorer    *score.Scorer
	cfg       *model.Config
	log       *logging.Logger
}

// NewReporter creates a fact-check reporter using fact-check extraction
// bounds.
func NewReporter(cfg *model.Config, log *logging.Logger) *Reporter {
	return &Reporter{
		extractor: extract.NewClaimExtractor(cfg.Extraction.FactCheck, cfg.Extraction.DedupWindow, cfg.Extraction.MaxKeywords),
		indexer:   extract.NewEvidenceIndexer(cfg.Extraction.MaxKeywords),
		scorer:    score.NewScorer(cfg.Scoring),
		cfg:       cfg,
		log:       log,
	}
}

// VerifyFacts extracts claims from content, matches each against the
// research bundle, and aggregates verdicts. Like the citation renderer it
// never fails past its boundary.
func (r *Reporter) VerifyFacts(content string, data *model.ResearchData) (report *model.VerificationReport) {
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("fact-checking failed", "panic", rec)
			report = r.emptyReport(start, 0.0,
				fmt.Sprintf("fact-checking failed: %v", rec),
				fmt.Sprintf("%v", rec))
		}
	}()

	if data.IsEmpty() {
		r.log.Warn("no research data available for fact-checking")
		return r.emptyReport(start, 0.0,
			"No research data available for fact verification",
			"no research data available")
	}

	claims := r.extractor.Extract(content)
	if len(claims) == 0 {
		// Nothing to verify means nothing can be wrong.
		return r.emptyReport(start, 1.0,
			"No factual claims detected for verification", "")
	}

	evidence := r.indexer.Index(data)
	r.log.Info("extracted claims for verification", "claims", len(claims), "evidence_items", len(evidence))

	stats := model.VerificationStats{TotalClaims: len(claims)}
	for i := range claims {
		best, ok := r.scorer.BestMatch(claims[i], evidence)
		if ok {
			claims[i].Confidence = score.Round3(best.Confidence)
			claims[i].SupportingSource = best.Evidence.Source
			claims[i].SupportingText = truncate(best.Evidence.Text, supportingTextLimit)
		}
		claims[i].Status = r.scorer.Classify(claims[i].Confidence)

		switch claims[i].Status {
		case model.StatusVerified:
			stats.Verified++
		case model.StatusNeedsReview:
			stats.NeedsReview++
		default:
			stats.Unsupported++
		}
	}

	accuracy := r.scorer.AccuracyScore(claims)
	r.log.Info("fact-checking complete",
		"verified", stats.Verified, "total", stats.TotalClaims, "accuracy", accuracy)

	return &model.VerificationReport{
		VerifiedClaims:  claims,
		Statistics:      stats,
		Recommendations: recommendations(claims),
		AccuracyScore:   accuracy,
		Metadata: model.VerificationMetadata{
			ProcessingSeconds:   time.Since(start).Seconds(),
			ClaimsExtracted:     len(claims),
			ConfidenceThreshold: r.cfg.Scoring.VerifiedThreshold,
		},
	}
}

// recommendations produces one remediation line per class of problem
// found, in a fixed order so identical inputs yield identical reports.
func recommendations(claims []model.Claim) []string {
	var recs []string

	var unsupported, needsReview []model.Claim
	for _, c := range claims {
		switch c.Status {
		case model.StatusUnsupported:
			unsupported = append(unsupported, c)
		case model.StatusNeedsReview:
			needsReview = append(needsReview, c)
		}
	}

	if len(unsupported) > 0 {
		recs = append(recs, fmt.Sprintf("Remove or find sources for %d unsupported claims", len(unsupported)))

		highPriority := 0
		for _, c := range unsupported {
			if c.Priority <= 2 {
				highPriority++
			}
		}
		if highPriority > 0 {
			recs = append(recs, fmt.Sprintf("Priority: Verify %d high-priority statistical claims", highPriority))
		}
	}

	if len(needsReview) > 0 {
		recs = append(recs, fmt.Sprintf("Review and strengthen sources for %d partially supported claims", len(needsReview)))
	}

	// Per-type callouts in first-seen order.
	counts := make(map[model.ClaimType]int)
	var order []model.ClaimType
	for _, c := range unsupported {
		if counts[c.Type] == 0 {
			order = append(order, c.Type)
		}
		counts[c.Type]++
	}
	for _, t := range order {
		if counts[t] >= 2 {
			recs = append(recs, fmt.Sprintf("Focus on verifying %s claims - %d found unsupported", t, counts[t]))
		}
	}

	if len(recs) == 0 {
		recs = append(recs, "All claims are well-supported by research data")
	}

	return recs
}

func (r *Reporter) emptyReport(start time.Time, accuracy float64, recommendation, errMsg string) *model.VerificationReport {
	return &model.VerificationReport{
		VerifiedClaims:  []model.Claim{},
		Statistics:      model.VerificationStats{},
		Recommendations: []string{recommendation},
		AccuracyScore:   accuracy,
		Metadata: model.VerificationMetadata{
			ProcessingSeconds:   time.Since(start).Seconds(),
			ConfidenceThreshold: r.cfg.Scoring.VerifiedThreshold,
			Error:               errMsg,
		},
	}
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
