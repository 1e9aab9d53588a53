package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// srOnlyTitleClass marks the screen-reader-only title duplicate many
// sites prepend to their articles.
const srOnlyTitleClass = "sr-only-title"

// cleanupRule pairs a chrome category with its predicate. The rule set
// is data, not code: a new category is appended here without touching
// the removal pass.
type cleanupRule struct {
	name  string
	match func(*goquery.Selection) bool
}

// cleanupRules are the chrome categories stripped from extracted
// content. Categories are independent and order-insensitive; an
// element matching several is removed once.
var cleanupRules = []cleanupRule{
	{name: "navigation", match: isNavigation},
	{name: "footer", match: isFooter},
	{name: "related-content", match: isRelatedContent},
	{name: "video-chrome", match: isVideoChrome},
	{name: "ad-container", match: isAdContainer},
	{name: "article-meta", match: isArticleMeta},
	{name: "author-card", match: isAuthorCard},
	{name: "sr-only-title", match: isSrOnlyTitle},
}

// CleanupRuleNames returns the chrome categories in evaluation order.
func CleanupRuleNames() []string {
	names := make([]string, 0, len(cleanupRules))
	for _, rule := range cleanupRules {
		names = append(names, rule.name)
	}
	return names
}

// Cleanup removes site chrome from a sanitized clone in place. Matches
// are collected during one pass over the descendants (the clone root is
// never evaluated) and removed afterwards in reverse discovery order.
// Deferring mutation until the walk completes is what keeps parent
// references valid while matching; it is a correctness requirement,
// not an optimization.
func (e *Extractor) Cleanup(sel *goquery.Selection) {
	var marked []*html.Node
	seen := make(map[*html.Node]bool)
	mark := func(n *html.Node) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		marked = append(marked, n)
	}

	// The title duplicate goes by direct lookup as well as by rule
	// matching, so it is still caught when one path misses it.
	sel.Find("."+srOnlyTitleClass).Each(func(_ int, s *goquery.Selection) {
		mark(s.Nodes[0])
	})

	sel.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, rule := range cleanupRules {
			if rule.match(s) {
				mark(s.Nodes[0])
				break
			}
		}
	})

	for i := len(marked) - 1; i >= 0; i-- {
		if n := marked[i]; n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}

var navigationMarkers = []string{"site-header", "global-nav", "main-nav", "nav-bar", "menu-bar"}

func isNavigation(sel *goquery.Selection) bool {
	if tag := goquery.NodeName(sel); tag == "header" || tag == "nav" {
		if id := attrValue(sel, "id"); id == "header" || id == "site-header" {
			return true
		}
		if attrValue(sel, "data-section") == "header" {
			return true
		}
		if strings.Contains(strings.ToLower(attrValue(sel, "aria-label")), "navigation") {
			return true
		}
	}
	return containsAny(classAndID(sel), navigationMarkers)
}

var footerMarkers = []string{"footer", "colophon"}

func isFooter(sel *goquery.Selection) bool {
	if goquery.NodeName(sel) == "footer" {
		return true
	}
	if attrValue(sel, "data-location") == "FOOTER" {
		return true
	}
	return containsAny(classAndID(sel), footerMarkers)
}

var relatedClassMarkers = []string{"related-links", "related-content", "link-block", "more-stories"}

// relatedHeadingPattern matches the lead-in text of link farms
// ("Related articles", "Recommended for you", ...).
var relatedHeadingPattern = regexp.MustCompile(`(?i)^(related|more (from|on|in)|guides?|recommended|read more|similar|you might also|popular)`)

func isRelatedContent(sel *goquery.Selection) bool {
	if containsAny(classAndID(sel), relatedClassMarkers) {
		return true
	}

	lead := leadingText(sel, 80)
	if lead == "" || !relatedHeadingPattern.MatchString(lead) {
		return false
	}

	linkCount := sel.Find("a").Length()
	paragraphCount := sel.Find("p").Length()

	// The count guard keeps paragraph-heavy prose that merely opens
	// with "Related" out of the match: a genuine link farm is mostly
	// links.
	return linkCount > 5 && paragraphCount < linkCount && linkCount > 2*paragraphCount
}

var (
	videoLocationMarkers = []string{"VIDEO_MODAL", "VIDEO_OVERLAY"}

	// The outer "video-container" class is deliberately absent from
	// these markers: the player element itself survives, only its
	// chrome goes.
	stickyVideoMarker = "sticky-video"
	playerSkinMarkers = []string{"vjs-control", "player-controls", "video-controls", "jw-controls"}
)

func isVideoChrome(sel *goquery.Selection) bool {
	if loc := attrValue(sel, "data-location"); loc != "" {
		for _, marker := range videoLocationMarkers {
			if loc == marker {
				return true
			}
		}
	}
	if goquery.NodeName(sel) == "video-player" {
		return true
	}
	combined := classAndID(sel)
	if strings.Contains(combined, stickyVideoMarker) {
		return true
	}
	return containsAny(combined, playerSkinMarkers)
}

var adClassMarkers = []string{"ad-container", "ad-wrapper", "ad-slot", "adsbygoogle", "advertisement", "sponsored"}

func isAdContainer(sel *goquery.Selection) bool {
	if len(sel.Nodes) > 0 {
		for _, attr := range sel.Nodes[0].Attr {
			if attr.Key == "data-ad" || strings.HasPrefix(attr.Key, "data-ad-") {
				return true
			}
		}
	}
	return containsAny(classAndID(sel), adClassMarkers)
}

var articleMetaMarkers = []string{"breadcrumb", "article-meta", "meta-container"}

func isArticleMeta(sel *goquery.Selection) bool {
	return containsAny(classAndID(sel), articleMetaMarkers)
}

var authorCardMarkers = []string{"author-card", "author-image", "author-bio"}

func isAuthorCard(sel *goquery.Selection) bool {
	if attrValue(sel, "data-section") == "author" {
		return true
	}
	return containsAny(classAndID(sel), authorCardMarkers)
}

func isSrOnlyTitle(sel *goquery.Selection) bool {
	class, _ := sel.Attr("class")
	return strings.Contains(class, srOnlyTitleClass)
}

// classAndID returns the element's class and id attributes joined and
// lowercased for substring matching.
func classAndID(sel *goquery.Selection) string {
	class, _ := sel.Attr("class")
	id, _ := sel.Attr("id")
	return strings.ToLower(class + " " + id)
}

func attrValue(sel *goquery.Selection, name string) string {
	v, _ := sel.Attr(name)
	return v
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// leadingText returns up to max bytes of the element's normalized text.
func leadingText(sel *goquery.Selection, max int) string {
	text := normalizeSpace(sel.Text())
	if len(text) > max {
		text = text[:max]
	}
	return text
}
