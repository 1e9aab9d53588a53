package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ScoreComponents breaks down a candidate's score. One value is
// computed per candidate per extraction; components are kept alongside
// the total so callers can inspect why a container won or lost.
type ScoreComponents struct {
	TextLength     int
	ParagraphCount int
	LinkTextLength int
	LinkRatio      float64
	TextScore      float64
	DensityBonus   float64
	HeadingBonus   float64
	SemanticBonus  float64
	LinkPenalty    float64
	NavPenalty     float64
	Total          float64
}

// navPattern flags class/id values that read as site chrome. The
// word-ish boundaries keep substrings like "gradient" from matching
// "ad". Compiled once; read-only afterwards.
var navPattern = regexp.MustCompile(`(?i)(?:^|[\s_-])(?:nav|navigation|navbar|menu|sidebar|footer|comments?|ads?|advert(?:isement)?|sponsor|promo|banner)(?:$|[\s_-])`)

// Score computes the score breakdown for one candidate container.
// Deterministic over the subtree contents; never mutates it.
func (e *Extractor) Score(sel *goquery.Selection) ScoreComponents {
	cfg := e.cfg

	text := strings.TrimSpace(sel.Text())
	sc := ScoreComponents{
		TextLength:     len(text),
		ParagraphCount: sel.Find("p").Length(),
	}

	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		sc.LinkTextLength += len(strings.TrimSpace(a.Text()))
	})
	if sc.TextLength > 0 {
		sc.LinkRatio = float64(sc.LinkTextLength) / float64(sc.TextLength)
	}

	sc.TextScore = float64(sc.TextLength) / cfg.TextScoreDivisor
	if sc.ParagraphCount >= cfg.DensityThreshold {
		sc.DensityBonus = cfg.DensityBonusCap
	} else {
		sc.DensityBonus = float64(sc.ParagraphCount) * cfg.DensityMultiplier
	}
	if sel.Find("h1, h2").Length() > 0 {
		sc.HeadingBonus = cfg.HeadingBonus
	}
	if tag := goquery.NodeName(sel); tag == "article" || tag == "main" {
		sc.SemanticBonus = cfg.SemanticBonus
	}
	if navPattern.MatchString(classAndID(sel)) {
		sc.NavPenalty = cfg.NavPenalty
	}
	sc.LinkPenalty = sc.LinkRatio * cfg.LinkPenaltyWeight

	sc.Total = sc.TextScore +
		float64(sc.ParagraphCount)*cfg.ParagraphWeight +
		sc.DensityBonus +
		sc.HeadingBonus +
		sc.SemanticBonus -
		sc.LinkPenalty -
		sc.NavPenalty

	return sc
}
