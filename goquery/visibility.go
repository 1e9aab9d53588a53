package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// isVisible reports whether an element is eligible for scoring.
// Empty elements and elements hidden with inline styles or the hidden
// attribute never become candidates.
func isVisible(sel *goquery.Selection) bool {
	if strings.TrimSpace(sel.Text()) == "" {
		return false
	}
	if _, hidden := sel.Attr("hidden"); hidden {
		return false
	}
	style, _ := sel.Attr("style")
	style = strings.ReplaceAll(strings.ToLower(style), " ", "")
	if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
		return false
	}
	return true
}
