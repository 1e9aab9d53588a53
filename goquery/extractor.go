package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lucidread/lucid"
)

// Ensure Extractor implements lucid.Extractor at compile time.
var _ lucid.Extractor = (*Extractor)(nil)

// Extractor locates the main article in a page by scoring candidate
// containers and returning a sanitized, cleaned copy of the winner.
// It never mutates the input document: all cleanup happens on a deep
// clone of the winning subtree. An Extractor holds no per-call state,
// so one instance can serve concurrent extractions.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an Extractor with DefaultConfig.
func NewExtractor() *Extractor {
	return NewExtractorWithConfig(DefaultConfig())
}

// NewExtractorWithConfig creates an Extractor with a custom configuration.
func NewExtractorWithConfig(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// candidate pairs a container with its score breakdown.
type candidate struct {
	sel   *goquery.Selection
	score ScoreComponents
}

// Extract parses raw HTML and runs the extraction pipeline.
func (e *Extractor) Extract(rawHTML string, opts lucid.Options) (*lucid.Result, error) {
	if rawHTML == "" {
		return nil, lucid.Errorf(lucid.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, lucid.Errorf(lucid.EINVALID, "failed to parse HTML: %v", err)
	}

	return e.ExtractFromDocument(doc, opts), nil
}

// ExtractFromDocument runs the extraction pipeline over a parsed
// document: collect candidate containers, drop invisible and
// undersized ones, pick the highest-scoring survivor, gate on
// confidence, then sanitize and clean a clone of the winner. An
// unusable page comes back as a Result whose Reason explains why.
func (e *Extractor) ExtractFromDocument(doc *goquery.Document, opts lucid.Options) *lucid.Result {
	var candidates []candidate
	doc.Find(e.cfg.CandidateSelector).Each(func(_ int, sel *goquery.Selection) {
		if !isVisible(sel) {
			return
		}
		score := e.Score(sel)
		// Undersized on both axes: too little text and too few
		// paragraphs. Either one alone keeps the candidate.
		if score.TextLength < e.cfg.MinTextLength && score.ParagraphCount < e.cfg.MinParagraphs {
			return
		}
		candidates = append(candidates, candidate{sel: sel, score: score})
	})

	if len(candidates) == 0 {
		return &lucid.Result{Reason: lucid.ReasonNoCandidates}
	}

	// Stable sort: equally scored candidates keep document order, so
	// the first-discovered container wins ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score.Total > candidates[j].score.Total
	})

	winner := candidates[0]
	confidence := lucid.Confidence(winner.score.Total)
	if confidence < opts.EffectiveThreshold() {
		return &lucid.Result{
			Reason:     lucid.ReasonLowConfidence,
			Confidence: lucid.RoundConfidence(confidence),
		}
	}

	clone := e.Sanitize(winner.sel, opts.BaseURL)
	e.Cleanup(clone)

	cleanedHTML, err := goquery.OuterHtml(clone)
	if err != nil {
		cleanedHTML = ""
	}
	text := normalizeSpace(clone.Text())

	if cleanedHTML == "" || len(text) < e.cfg.MinTextLength {
		return &lucid.Result{
			Reason:     lucid.ReasonTooSmall,
			Confidence: lucid.RoundConfidence(confidence),
		}
	}

	return &lucid.Result{
		Title:      extractTitle(doc, clone),
		HTML:       cleanedHTML,
		Text:       text,
		Confidence: lucid.RoundConfidence(confidence),
		Reason:     lucid.ReasonOK,
	}
}

// extractTitle prefers the document title, falling back to the first
// heading of the extracted content.
func extractTitle(doc *goquery.Document, clone *goquery.Selection) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(clone.Find("h1").First().Text())
}

// normalizeSpace collapses whitespace runs to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
