package goquery

// Config holds the scoring weights and acceptance gates for the
// extraction pipeline. Weights live here rather than inline in the
// scoring code so they can be tuned and tested without touching the
// algorithm. Config values are copied on construction; an Extractor
// never observes later changes.
type Config struct {
	// CandidateSelector matches the containers considered as possible
	// article roots.
	CandidateSelector string

	// MinTextLength and MinParagraphs form the minimum-size gate: a
	// candidate needs either enough text or enough paragraphs to stay
	// in the running, and the cleaned output must reach MinTextLength
	// on its own.
	MinTextLength int
	MinParagraphs int

	// TextScoreDivisor converts text length into the base score.
	TextScoreDivisor float64

	// ParagraphWeight is the per-paragraph score contribution.
	ParagraphWeight float64

	// DensityThreshold, DensityBonusCap and DensityMultiplier shape the
	// paragraph-density bonus: DensityBonusCap once the paragraph count
	// reaches DensityThreshold, count times DensityMultiplier below it.
	DensityThreshold  int
	DensityBonusCap   float64
	DensityMultiplier float64

	// HeadingBonus rewards candidates containing an h1 or h2.
	HeadingBonus float64

	// SemanticBonus rewards article and main containers.
	SemanticBonus float64

	// NavPenalty punishes candidates whose class or id reads as
	// navigation chrome.
	NavPenalty float64

	// LinkPenaltyWeight scales the link-text ratio into a penalty.
	LinkPenaltyWeight float64
}

// DefaultConfig returns the standard extraction configuration.
func DefaultConfig() Config {
	return Config{
		CandidateSelector: "article, main, section, div",
		MinTextLength:     150,
		MinParagraphs:     2,
		TextScoreDivisor:  120,
		ParagraphWeight:   3,
		DensityThreshold:  5,
		DensityBonusCap:   10,
		DensityMultiplier: 1.5,
		HeadingBonus:      10,
		SemanticBonus:     15,
		NavPenalty:        20,
		LinkPenaltyWeight: 40,
	}
}
