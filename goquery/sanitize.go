package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// unsafeTags are removed along with their subtrees during sanitization.
var unsafeTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"form":     true,
	"input":    true,
	"button":   true,
	"select":   true,
	"option":   true,
	"textarea": true,
	"svg":      true,
	"canvas":   true,
}

// urlAttrs are the attributes resolved against the base URL.
var urlAttrs = map[string]bool{
	"src":    true,
	"href":   true,
	"poster": true,
}

// Sanitize deep-clones the selection and returns a detached, cleaned
// copy: unsafe subtrees removed, event-handler and inline-style
// attributes stripped, and src/href/poster values resolved against
// baseURL. The original selection is never touched. Sanitizing an
// already-sanitized clone with the same base URL is a no-op.
func (e *Extractor) Sanitize(sel *goquery.Selection, baseURL string) *goquery.Selection {
	clone := sel.Clone()

	var base *url.URL
	if baseURL != "" {
		if u, err := url.Parse(baseURL); err == nil {
			base = u
		}
	}

	var marked []*html.Node
	for _, root := range clone.Nodes {
		stack := []*html.Node{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if n.Type == html.ElementNode {
				if unsafeTags[strings.ToLower(n.Data)] {
					marked = append(marked, n)
					continue
				}
				sanitizeAttrs(n, base)
			}

			for c := n.LastChild; c != nil; c = c.PrevSibling {
				stack = append(stack, c)
			}
		}
	}

	// Removal is deferred until the walk completes so the traversal
	// never sees a tree it is mutating.
	for i := len(marked) - 1; i >= 0; i-- {
		if n := marked[i]; n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}

	return clone
}

// sanitizeAttrs strips event handlers and inline styles from a node and
// resolves its URL-bearing attributes.
func sanitizeAttrs(n *html.Node, base *url.URL) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		name := strings.ToLower(a.Key)
		if strings.HasPrefix(name, "on") || name == "style" {
			continue
		}
		if base != nil && urlAttrs[name] && a.Val != "" {
			a.Val = resolveURL(base, a.Val)
		}
		attrs = append(attrs, a)
	}
	n.Attr = attrs
}

// resolveURL resolves val against base. Malformed values are returned
// unchanged: a broken URL in an attribute is content, not an error.
func resolveURL(base *url.URL, val string) string {
	ref, err := url.Parse(val)
	if err != nil {
		return val
	}
	return base.ResolveReference(ref).String()
}
