// Package cite inserts inline citations and builds bibliographies from
// scored claim/evidence matches.
package cite

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/extract"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/logging"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/model"
	"github.com/joelhinton-mktg-dev/agent-content-pipeline/internal/score"
)

const (
	reasonNoSource      = "no matching source found"
	reasonLowConfidence = "low-confidence match"
)

// Renderer adds inline citation markers and a formatted bibliography to
// article text, backed by the shared extraction and scoring machinery.
type Renderer struct {
	extractor *extract.ClaimExtractor
	indexer   *extract.EvidenceIndexer
	scorer    *score.Scorer
	cfg       *model.Config
	log       *logging.Logger
	now       func() time.Time
}

// NewRenderer creates a citation renderer using citation-mode extraction
// bounds.
func NewRenderer(cfg *model.Config, log *logging.Logger) *Renderer {
	return &Renderer{
		extractor: extract.NewClaimExtractor(cfg.Extraction.Citation, cfg.Extraction.DedupWindow, cfg.Extraction.MaxKeywords),
		indexer:   extract.NewEvidenceIndexer(cfg.Extraction.MaxKeywords),
		scorer:    score.NewScorer(cfg.Scoring),
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

type markedClaim struct {
	claim  model.Claim
	number int
}

// AddCitations inserts [n] markers into content and appends a formatted
// references section. It never fails past its boundary: degenerate input
// and internal panics both yield the original content with an explanatory
// metadata field.
func (r *Renderer) AddCitations(content string, data *model.ResearchData, style string) (result *model.CitationResult) {
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("citation rendering failed", "panic", rec)
			result = &model.CitationResult{
				CitedContent:  content,
				Bibliography:  []model.Citation{},
				UncitedClaims: []model.UncitedClaim{},
				Metadata: model.CitationMetadata{
					ProcessingSeconds: time.Since(start).Seconds(),
					Error:             fmt.Sprintf("%v", rec),
				},
			}
		}
	}()

	style = NormalizeStyle(style, r.cfg.Citation.Style)

	if data.IsEmpty() {
		r.log.Warn("no research data available for citations")
		return &model.CitationResult{
			CitedContent:  content,
			Bibliography:  []model.Citation{},
			UncitedClaims: []model.UncitedClaim{},
			Metadata: model.CitationMetadata{
				ProcessingSeconds: time.Since(start).Seconds(),
				CitationStyle:     style,
				Error:             "no research data available",
			},
		}
	}

	claims := r.extractor.Extract(content)
	evidence := r.indexer.Index(data)
	r.log.Info("identified claims for citation", "claims", len(claims), "evidence_items", len(evidence))

	accessed := r.now()
	numberByKey := make(map[string]int)
	bibliography := []model.Citation{}
	uncited := []model.UncitedClaim{}
	var marked []markedClaim

	for _, claim := range claims {
		best, ok := r.scorer.BestMatch(claim, evidence)
		if !ok {
			uncited = append(uncited, model.UncitedClaim{Text: claim.Text, Type: claim.Type, Reason: reasonNoSource})
			continue
		}
		if best.Confidence <= r.cfg.Scoring.CitationFloor {
			uncited = append(uncited, model.UncitedClaim{Text: claim.Text, Type: claim.Type, Reason: reasonLowConfidence})
			continue
		}

		key := best.Evidence.SourceKey()
		number, seen := numberByKey[key]
		if !seen {
			number = len(bibliography) + 1
			numberByKey[key] = number
			bibliography = append(bibliography, FormatCitation(style, key, number, accessed))
		}
		marked = append(marked, markedClaim{claim: claim, number: number})
	}

	citedContent := insertMarkers(content, marked)
	if len(bibliography) > 0 {
		citedContent += bibliographySection(bibliography)
	}

	successRate := 0.0
	if len(claims) > 0 {
		successRate = float64(len(marked)) / float64(len(claims))
	}

	r.log.Info("citation rendering complete",
		"citations", len(bibliography), "cited_claims", len(marked), "uncited_claims", len(uncited))

	return &model.CitationResult{
		CitedContent:  citedContent,
		Bibliography:  bibliography,
		CitationCount: len(bibliography),
		UncitedClaims: uncited,
		Metadata: model.CitationMetadata{
			ProcessingSeconds:     time.Since(start).Seconds(),
			TotalClaimsIdentified: len(claims),
			ClaimsWithSources:     len(marked),
			CitationStyle:         style,
			SuccessRate:           successRate,
		},
	}
}

// insertMarkers places a " [n]" marker before the sentence-terminating
// period following each cited claim, or at the claim end when no period
// follows. Positions come from the original text and insertions run
// right to left, so earlier offsets stay valid as the string grows.
func insertMarkers(content string, marked []markedClaim) string {
	type insertion struct {
		pos    int
		number int
		seq    int
	}

	inserts := make([]insertion, 0, len(marked))
	for i, m := range marked {
		pos := m.claim.EndPos
		if idx := strings.Index(content[m.claim.EndPos:], "."); idx >= 0 {
			pos = m.claim.EndPos + idx
		}
		inserts = append(inserts, insertion{pos: pos, number: m.number, seq: i})
	}

	// Right to left; claims sharing a period keep their reading order.
	sort.SliceStable(inserts, func(i, j int) bool {
		if inserts[i].pos != inserts[j].pos {
			return inserts[i].pos > inserts[j].pos
		}
		return inserts[i].seq > inserts[j].seq
	})

	for _, ins := range inserts {
		content = content[:ins.pos] + fmt.Sprintf(" [%d]", ins.number) + content[ins.pos:]
	}

	return content
}

// bibliographySection renders the references block appended after the
// cited content, one numbered line per entry.
func bibliographySection(bibliography []model.Citation) string {
	var b strings.Builder
	b.WriteString("\n\n## References\n\n")
	for _, entry := range bibliography {
		fmt.Fprintf(&b, "%d. %s\n", entry.ID, entry.Formatted)
	}
	return b.String()
}
