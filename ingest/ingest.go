// Package ingest refreshes subscriptions by fetching, extracting and
// archiving newly published articles. It coordinates feed discovery,
// deduplication against the archive, rate-limited fetching, extraction
// and storage.
package ingest

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/lucidread/lucid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel fetches during a refresh.
const DefaultConcurrency = 4

// Ingestor orchestrates subscription refreshes.
type Ingestor struct {
	Feeds       lucid.FeedService
	Fetcher     lucid.Fetcher
	Extractor   lucid.Extractor
	Articles    lucid.ArticleService
	RateLimiter lucid.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration

	// Threshold overrides the extraction confidence gate.
	// Zero means lucid.DefaultThreshold.
	Threshold float64
}

// Result holds the outcome of a refresh operation.
type Result struct {
	Saved      int
	Duplicates int
	Rejected   int
	Failed     int
	Bytes      int

	// Reasons counts rejected pages by their extraction reason.
	Reasons map[string]int
}

// ProgressEvent reports progress during a refresh operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Reason    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting refresh progress.
type ProgressFunc func(event ProgressEvent)

// ingestResult holds the outcome of processing a single URL.
type ingestResult struct {
	position   int
	url        string
	title      string
	html       string
	text       string
	confidence float64
	reason     string
	err        error
}

// RefreshSubscription fetches a subscription's feed and archives every
// entry not already in the archive. The progress callback, if provided,
// receives events as the refresh proceeds.
func (i *Ingestor) RefreshSubscription(ctx context.Context, sub *lucid.Subscription, progress ProgressFunc) (*Result, error) {
	urlFilter, err := sub.URLFilter()
	if err != nil {
		return nil, err
	}

	// Discover entry URLs from the feed
	urls, err := i.Feeds.DiscoverArticles(ctx, sub.FeedURL, urlFilter)
	if err != nil {
		return nil, fmt.Errorf("feed discovery: %w", err)
	}

	deduper, err := NewDeduper(ctx, i.Articles)
	if err != nil {
		return nil, fmt.Errorf("seeding dedupe filter: %w", err)
	}

	result := &Result{Reasons: make(map[string]int)}
	total := len(urls)

	// Progress tracking
	var completed atomic.Int64

	// Notify start
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	// Drop URLs that are already archived
	var pending []string
	for _, u := range urls {
		isNew, err := deduper.IsNew(ctx, u)
		if err != nil {
			return nil, fmt.Errorf("dedupe check: %w", err)
		}
		if !isNew {
			result.Duplicates++
			completed.Add(1)
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       u,
					Reason:    "already archived",
				})
			}
			continue
		}
		deduper.MarkSeen(u)
		pending = append(pending, u)
	}

	// Set up concurrency
	concurrency := i.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	// Channel for collecting results
	resultCh := make(chan ingestResult, len(pending))

	// Start workers
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for pos, u := range pending {
			pos, u := pos, u
			g.Go(func() error {
				resultCh <- i.processURL(gctx, pos, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	results := make([]ingestResult, len(pending))
	for res := range resultCh {
		completed.Add(1)
		results[res.position] = res

		switch {
		case res.err != nil:
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       res.url,
					Error:     res.err,
				})
			}
		case res.reason != lucid.ReasonOK:
			result.Rejected++
			result.Reasons[res.reason]++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       res.url,
					Reason:    res.reason,
				})
			}
		default:
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       res.url,
				})
			}
		}
	}

	// Archive extracted articles in feed order
	for _, res := range results {
		if res.err != nil || res.reason != lucid.ReasonOK {
			continue
		}

		article := &lucid.Article{
			SubscriptionID: sub.ID,
			SourceURL:      res.url,
			Title:          res.title,
			HTML:           res.html,
			Text:           res.text,
			Confidence:     res.confidence,
		}

		if err := i.Articles.CreateArticle(ctx, article); err != nil {
			result.Failed++
			continue
		}

		result.Saved++
		result.Bytes += len(res.html)
	}

	// Notify finished
	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return result, nil
}

// processURL fetches and extracts a single URL.
func (i *Ingestor) processURL(ctx context.Context, position int, rawURL string) ingestResult {
	result := ingestResult{
		position: position,
		url:      rawURL,
	}

	// Rate limit per host
	if i.RateLimiter != nil {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			result.err = err
			return result
		}
		if err := i.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			result.err = err
			return result
		}
	}

	// Fetch with retry
	delays := i.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, i.Fetcher.Fetch, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	// Extract article content
	res, err := i.Extractor.Extract(html, lucid.Options{
		Threshold: i.Threshold,
		BaseURL:   rawURL,
	})
	if err != nil {
		result.err = err
		return result
	}

	result.title = res.Title
	result.html = res.HTML
	result.text = res.Text
	result.confidence = res.Confidence
	result.reason = res.Reason

	return result
}
