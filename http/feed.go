package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/beevik/etree"
	"github.com/lucidread/lucid"
)

// Ensure FeedService implements lucid.FeedService.
var _ lucid.FeedService = (*FeedService)(nil)

// feedMIMETypes are the alternate link types recognized during feed
// autodiscovery.
var feedMIMETypes = map[string]bool{
	"application/rss+xml":  true,
	"application/atom+xml": true,
}

// FeedService discovers article URLs from RSS and Atom feeds via HTTP.
type FeedService struct {
	client *http.Client
}

// NewFeedService creates a new FeedService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewFeedService(client *http.Client) *FeedService {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedService{client: client}
}

// DiscoverArticles finds article URLs from the feed at target.
// When target serves an HTML page instead of a feed, the page's
// alternate links are followed to locate the feed. Returns an empty
// slice (not nil) when the feed has no entries. Order follows the
// feed, with duplicates removed.
func (s *FeedService) DiscoverArticles(ctx context.Context, target string, filter *lucid.URLFilter) ([]string, error) {
	// Check for context cancellation early
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	targetURL, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid feed URL: %w", err)
	}

	body, err := s.fetchBody(ctx, target)
	if err != nil {
		return nil, err
	}

	urls, isFeed := parseFeed(body, targetURL)
	if !isFeed {
		// Not a feed, so treat the body as an HTML page and look for
		// an advertised feed.
		feedURL, err := discoverFeedURL(body, targetURL)
		if err != nil {
			return nil, err
		}
		if feedURL == "" {
			return nil, lucid.Errorf(lucid.ENOTFOUND, "no feed found at %q", target)
		}

		parsedFeedURL, err := url.Parse(feedURL)
		if err != nil {
			return nil, fmt.Errorf("invalid discovered feed URL: %w", err)
		}
		feedBody, err := s.fetchBody(ctx, feedURL)
		if err != nil {
			return nil, err
		}
		urls, isFeed = parseFeed(feedBody, parsedFeedURL)
		if !isFeed {
			return nil, fmt.Errorf("discovered feed at %s is not RSS or Atom", feedURL)
		}
	}

	// Deduplicate while preserving feed order, then apply the
	// user-provided filter.
	seen := make(map[string]bool)
	result := []string{}
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		if filter != nil && !filter.Match(u) {
			continue
		}
		result = append(result, u)
	}

	return result, nil
}

// parseFeed parses body as an RSS 2.0 or Atom feed. The second return
// value reports whether body was a recognized feed at all.
func parseFeed(body []byte, base *url.URL) ([]string, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, false
	}
	root := doc.Root()
	if root == nil {
		return nil, false
	}

	switch root.Tag {
	case "rss":
		return parseRSS(root, base), true
	case "feed":
		return parseAtom(root, base), true
	default:
		return nil, false
	}
}

// parseRSS extracts item links from an <rss> document. Items without a
// <link> fall back to a permalink <guid>.
func parseRSS(root *etree.Element, base *url.URL) []string {
	channel := root.SelectElement("channel")
	if channel == nil {
		return nil
	}

	var urls []string
	for _, item := range channel.SelectElements("item") {
		u := ""
		if link := item.SelectElement("link"); link != nil {
			u = strings.TrimSpace(link.Text())
		}
		if u == "" {
			if guid := item.SelectElement("guid"); guid != nil && guid.SelectAttrValue("isPermaLink", "true") != "false" {
				u = strings.TrimSpace(guid.Text())
			}
		}
		if u != "" {
			urls = append(urls, resolveRef(base, u))
		}
	}
	return urls
}

// parseAtom extracts entry links from a <feed> document.
func parseAtom(root *etree.Element, base *url.URL) []string {
	var urls []string
	for _, entry := range root.SelectElements("entry") {
		if href := entryLink(entry); href != "" {
			urls = append(urls, resolveRef(base, href))
		}
	}
	return urls
}

// entryLink picks the alternate link of an Atom entry. Links without a
// rel attribute default to alternate.
func entryLink(entry *etree.Element) string {
	var fallback string
	for _, link := range entry.SelectElements("link") {
		href := strings.TrimSpace(link.SelectAttrValue("href", ""))
		if href == "" {
			continue
		}
		rel := link.SelectAttrValue("rel", "")
		if rel == "" || rel == "alternate" {
			return href
		}
		if fallback == "" {
			fallback = href
		}
	}
	return fallback
}

// discoverFeedURL looks for an RSS or Atom alternate link in an HTML
// page. Returns an empty string when the page advertises no feed.
func discoverFeedURL(body []byte, base *url.URL) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parsing page for feed discovery: %w", err)
	}

	var found string
	doc.Find(`link[rel="alternate"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		typ, _ := sel.Attr("type")
		if !feedMIMETypes[strings.ToLower(strings.TrimSpace(typ))] {
			return true
		}
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return true
		}
		found = resolveRef(base, href)
		return false
	})

	return found, nil
}

// resolveRef resolves ref against base when ref is relative.
func resolveRef(base *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if parsed.IsAbs() {
		return ref
	}
	return base.ResolveReference(parsed).String()
}

// fetchBody fetches a URL and returns the response body.
func (s *FeedService) fetchBody(ctx context.Context, targetURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return io.ReadAll(resp.Body)
}
