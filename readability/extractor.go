package readability

import (
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/lucidread/lucid"
)

// Ensure Extractor implements lucid.Extractor at compile time.
var _ lucid.Extractor = (*Extractor)(nil)

// minTextLength is the floor for usable article text, matching the
// scoring engine's minimum.
const minTextLength = 150

// Extractor wraps go-readability as an alternative extraction engine.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main article content.
// Pages go-readability cannot reduce to an article are reported as
// unusable results rather than errors.
func (e *Extractor) Extract(rawHTML string, opts lucid.Options) (*lucid.Result, error) {
	if rawHTML == "" {
		return nil, lucid.Errorf(lucid.EINVALID, "empty HTML input")
	}

	var pageURL *url.URL
	if opts.BaseURL != "" {
		if u, err := url.Parse(opts.BaseURL); err == nil {
			pageURL = u
		}
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, err
	}

	text := normalizeSpace(article.TextContent)
	if article.Content == "" || text == "" {
		return &lucid.Result{Reason: lucid.ReasonNoCandidates}, nil
	}

	confidence := lucid.EstimateConfidence(len(text), countParagraphs(article.Content))
	if confidence < opts.EffectiveThreshold() {
		return &lucid.Result{
			Confidence: lucid.RoundConfidence(confidence),
			Reason:     lucid.ReasonLowConfidence,
		}, nil
	}
	if len(text) < minTextLength {
		return &lucid.Result{
			Confidence: lucid.RoundConfidence(confidence),
			Reason:     lucid.ReasonTooSmall,
		}, nil
	}

	return &lucid.Result{
		Title:      article.Title,
		HTML:       article.Content,
		Text:       text,
		Confidence: lucid.RoundConfidence(confidence),
		Reason:     lucid.ReasonOK,
	}, nil
}

func countParagraphs(content string) int {
	return strings.Count(content, "<p>") + strings.Count(content, "<p ")
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
