package ingest

import (
	"context"

	"github.com/lucidread/lucid"
	"github.com/lucidread/lucid/bloom"
)

// Dedupe filter sizing.
const (
	// dedupeExpectedURLs is the expected archive size for Bloom filter sizing.
	dedupeExpectedURLs = 10000
	// dedupeFalsePositiveRate is the acceptable false positive rate for deduplication.
	dedupeFalsePositiveRate = 0.01
)

// Deduper tracks which source URLs are already archived. The Bloom
// filter answers negatives without touching storage; positives are
// confirmed against the archive to rule out false positives. URLs
// marked during the current refresh are tracked exactly, since they
// are not in the archive yet.
type Deduper struct {
	seen     *bloom.Filter
	pending  map[string]struct{}
	articles lucid.ArticleService
}

// NewDeduper creates a Deduper seeded with the source URLs already in
// the archive.
func NewDeduper(ctx context.Context, articles lucid.ArticleService) (*Deduper, error) {
	d := &Deduper{
		seen:     bloom.NewFilter(dedupeExpectedURLs, dedupeFalsePositiveRate),
		pending:  make(map[string]struct{}),
		articles: articles,
	}

	existing, err := articles.FindArticles(ctx, lucid.ArticleFilter{})
	if err != nil {
		return nil, err
	}
	for _, article := range existing {
		d.seen.Add(article.SourceURL)
	}

	return d, nil
}

// IsNew reports whether the URL is absent from both the archive and
// the current refresh.
func (d *Deduper) IsNew(ctx context.Context, url string) (bool, error) {
	if _, ok := d.pending[url]; ok {
		return false, nil
	}
	if !d.seen.Test(url) {
		return true, nil
	}

	// A positive may be a false positive, confirm against the archive.
	matches, err := d.articles.FindArticles(ctx, lucid.ArticleFilter{SourceURL: &url, Limit: 1})
	if err != nil {
		return false, err
	}
	return len(matches) == 0, nil
}

// MarkSeen records the URL so later checks within the same refresh
// treat it as a duplicate.
func (d *Deduper) MarkSeen(url string) {
	d.pending[url] = struct{}{}
	d.seen.Add(url)
}
