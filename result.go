package lucid

import "math"

// Reason codes reported in Result.Reason. These strings are stable:
// callers match on them to decide how to present a failed extraction.
const (
	// ReasonOK marks a successful extraction.
	ReasonOK = "ok"

	// ReasonNoCandidates means no element passed the visibility and
	// minimum-size gates.
	ReasonNoCandidates = "No viable candidates found"

	// ReasonLowConfidence means the best candidate's normalized score
	// missed the caller's threshold.
	ReasonLowConfidence = "Confidence below threshold"

	// ReasonTooSmall means cleanup collapsed the winning candidate
	// below the minimum content size.
	ReasonTooSmall = "Extracted content too small"
)

// DefaultThreshold is the confidence gate applied when Options.Threshold
// is unset.
const DefaultThreshold = 0.35

// Result holds the outcome of one extraction attempt. A successful
// extraction has Reason == ReasonOK and carries the cleaned article
// markup and text; a failed one carries the reason it was rejected and,
// where one was computed, the confidence that led to the rejection.
type Result struct {
	// Title is the best-effort article title. May be empty.
	Title string `json:"title,omitempty"`

	// HTML is the sanitized, cleaned article markup. Empty unless
	// Reason == ReasonOK.
	HTML string `json:"html,omitempty"`

	// Text is the whitespace-normalized plain text of HTML. Empty
	// unless Reason == ReasonOK.
	Text string `json:"text,omitempty"`

	// Confidence is the normalized acceptance score, rounded to three
	// decimals. Zero when no candidate was scored.
	Confidence float64 `json:"confidence"`

	// Reason is one of the Reason constants.
	Reason string `json:"reason"`
}

// OK reports whether the extraction produced usable content.
func (r *Result) OK() bool {
	return r.Reason == ReasonOK
}

// Options control a single extraction call. The zero value is usable.
type Options struct {
	// Threshold is the minimum confidence an extraction must reach.
	// Zero means DefaultThreshold.
	Threshold float64

	// BaseURL resolves relative src/href/poster values in the extracted
	// markup to absolute URLs. Empty leaves relative URLs untouched.
	BaseURL string
}

// EffectiveThreshold returns the threshold to gate on, substituting
// DefaultThreshold for the zero value.
func (o Options) EffectiveThreshold() float64 {
	if o.Threshold == 0 {
		return DefaultThreshold
	}
	return o.Threshold
}

// Confidence squashes a raw candidate score into (-1, 1) with a
// saturating tanh curve. Scores around 80 land near 0.76; the curve is
// monotonic, so a higher raw score never yields lower confidence.
func Confidence(raw float64) float64 {
	return math.Tanh(raw / 80)
}

// RoundConfidence rounds a confidence value to three decimals for
// reporting. Gate comparisons use the unrounded value.
func RoundConfidence(c float64) float64 {
	return math.Round(c*1000) / 1000
}

// EstimateConfidence approximates the scoring engine's confidence for
// content produced by extractors that do not expose score components,
// from the text length and paragraph count of their output. It uses
// the engine's default weights.
func EstimateConfidence(textLength, paragraphCount int) float64 {
	raw := float64(textLength)/120 + float64(paragraphCount)*3
	if paragraphCount >= 5 {
		raw += 10
	} else {
		raw += float64(paragraphCount) * 1.5
	}
	return Confidence(raw)
}
