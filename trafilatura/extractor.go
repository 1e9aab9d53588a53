package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/lucidread/lucid"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements lucid.Extractor at compile time.
var _ lucid.Extractor = (*Extractor)(nil)

// minTextLength is the floor for usable article text, matching the
// scoring engine's minimum.
const minTextLength = 150

// Extractor wraps go-trafilatura as an alternative extraction engine.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main article content.
// Pages go-trafilatura cannot reduce to an article are reported as
// unusable results rather than errors.
func (e *Extractor) Extract(rawHTML string, opts lucid.Options) (*lucid.Result, error) {
	if rawHTML == "" {
		return nil, lucid.Errorf(lucid.EINVALID, "empty HTML input")
	}

	tOpts := trafilatura.Options{
		EnableFallback: true,
	}
	if opts.BaseURL != "" {
		if u, err := url.Parse(opts.BaseURL); err == nil {
			tOpts.OriginalURL = u
		}
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), tOpts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	text := normalizeSpace(result.ContentText)
	if contentHTML == "" || text == "" {
		return &lucid.Result{Reason: lucid.ReasonNoCandidates}, nil
	}

	confidence := lucid.EstimateConfidence(len(text), countParagraphs(contentHTML))
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
		Title:      result.Metadata.Title,
		HTML:       contentHTML,
		Text:       text,
		Confidence: lucid.RoundConfidence(confidence),
		Reason:     lucid.ReasonOK,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func countParagraphs(content string) int {
	return strings.Count(content, "<p>") + strings.Count(content, "<p ")
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
