package ingest_test

import (
	"context"
	"testing"
	"time"

	"github.com/lucidread/lucid"
	"github.com/lucidread/lucid/ingest"
	"github.com/lucidread/lucid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestor_RefreshSubscription(t *testing.T) {
	t.Parallel()

	t.Run("returns zero result when feed has no entries", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{
			Feeds: &mock.FeedService{
				DiscoverArticlesFn: func(_ context.Context, _ string, _ *lucid.URLFilter) ([]string, error) {
					return []string{}, nil
				},
			},
			Fetcher:   &mock.Fetcher{},
			Extractor: &mock.Extractor{},
			Articles: &mock.ArticleService{
				FindArticlesFn: func(_ context.Context, _ lucid.ArticleFilter) ([]*lucid.Article, error) {
					return []*lucid.Article{}, nil
				},
			},
			Concurrency: 10,
			RetryDelays: []time.Duration{0}, // no delay for tests
		}

		sub := &lucid.Subscription{
			ID:      "sub-1",
			Name:    "test",
			FeedURL: "https://example.com/feed.xml",
		}

		result, err := ing.RefreshSubscription(context.Background(), sub, nil)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 0, result.Saved)
		assert.Equal(t, 0, result.Duplicates)
		assert.Equal(t, 0, result.Rejected)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, 0, result.Bytes)
	})

	t.Run("archives an extracted article", func(t *testing.T) {
		t.Parallel()

		var savedArticle *lucid.Article
		ing := &ingest.Ingestor{
			Feeds: &mock.FeedService{
				DiscoverArticlesFn: func(_ context.Context, _ string, _ *lucid.URLFilter) ([]string, error) {
					return []string{"https://example.com/posts/one"}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html><body><p>Test content</p></body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ string, _ lucid.Options) (*lucid.Result, error) {
					return &lucid.Result{
						Title:      "Test Post",
						HTML:       "<p>Test content</p>",
						Text:       "Test content",
						Confidence: 0.91,
						Reason:     lucid.ReasonOK,
					}, nil
				},
			},
			Articles: &mock.ArticleService{
				FindArticlesFn: func(_ context.Context, _ lucid.ArticleFilter) ([]*lucid.Article, error) {
					return []*lucid.Article{}, nil
				},
				CreateArticleFn: func(_ context.Context, article *lucid.Article) error {
					savedArticle = article
					return nil
				},
			},
			Concurrency: 1,
			RetryDelays: []time.Duration{0},
		}

		sub := &lucid.Subscription{
			ID:      "sub-123",
			Name:    "test",
			FeedURL: "https://example.com/feed.xml",
		}

		result, err := ing.RefreshSubscription(context.Background(), sub, nil)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, len("<p>Test content</p>"), result.Bytes)

		// Verify saved article
		require.NotNil(t, savedArticle)
		assert.Equal(t, "sub-123", savedArticle.SubscriptionID)
		assert.Equal(t, "https://example.com/posts/one", savedArticle.SourceURL)
		assert.Equal(t, "Test Post", savedArticle.Title)
		assert.Equal(t, "<p>Test content</p>", savedArticle.HTML)
		assert.Equal(t, "Test content", savedArticle.Text)
		assert.InDelta(t, 0.91, savedArticle.Confidence, 0.0001)
	})

	t.Run("skips entries already in the archive", func(t *testing.T) {
		t.Parallel()

		existing := &lucid.Article{
			ID:        "art-1",
			SourceURL: "https://example.com/posts/old",
		}

		var savedArticle *lucid.Article
		ing := &ingest.Ingestor{
			Feeds: &mock.FeedService{
				DiscoverArticlesFn: func(_ context.Context, _ string, _ *lucid.URLFilter) ([]string, error) {
					return []string{"https://example.com/posts/old", "https://example.com/posts/new"}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html><body><p>New post</p></body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ string, _ lucid.Options) (*lucid.Result, error) {
					return &lucid.Result{
						Title:      "New Post",
						HTML:       "<p>New post</p>",
						Text:       "New post",
						Confidence: 0.9,
						Reason:     lucid.ReasonOK,
					}, nil
				},
			},
			Articles: &mock.ArticleService{
				FindArticlesFn: func(_ context.Context, filter lucid.ArticleFilter) ([]*lucid.Article, error) {
					if filter.SourceURL != nil {
						if *filter.SourceURL == existing.SourceURL {
							return []*lucid.Article{existing}, nil
						}
						return []*lucid.Article{}, nil
					}
					return []*lucid.Article{existing}, nil
				},
				CreateArticleFn: func(_ context.Context, article *lucid.Article) error {
					savedArticle = article
					return nil
				},
			},
			Concurrency: 1,
			RetryDelays: []time.Duration{0},
		}

		sub := &lucid.Subscription{
			ID:      "sub-123",
			Name:    "test",
			FeedURL: "https://example.com/feed.xml",
		}

		result, err := ing.RefreshSubscription(context.Background(), sub, nil)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Duplicates)

		require.NotNil(t, savedArticle)
		assert.Equal(t, "https://example.com/posts/new", savedArticle.SourceURL)
	})

	t.Run("does not archive the same URL twice within one feed", func(t *testing.T) {
		t.Parallel()

		var created int
		ing := &ingest.Ingestor{
			Feeds: &mock.FeedService{
				DiscoverArticlesFn: func(_ context.Context, _ string, _ *lucid.URLFilter) ([]string, error) {
					return []string{"https://example.com/posts/one", "https://example.com/posts/one"}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html><body><p>Post</p></body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ string, _ lucid.Options) (*lucid.Result, error) {
					return &lucid.Result{
						Title:      "Post",
						HTML:       "<p>Post</p>",
						Text:       "Post",
						Confidence: 0.9,
						Reason:     lucid.ReasonOK,
					}, nil
				},
			},
			Articles: &mock.ArticleService{
				FindArticlesFn: func(_ context.Context, _ lucid.ArticleFilter) ([]*lucid.Article, error) {
					return []*lucid.Article{}, nil
				},
				CreateArticleFn: func(_ context.Context, _ *lucid.Article) error {
					created++
					return nil
				},
			},
			Concurrency: 1,
			RetryDelays: []time.Duration{0},
		}

		sub := &lucid.Subscription{
			ID:      "sub-123",
			Name:    "test",
			FeedURL: "https://example.com/feed.xml",
		}

		result, err := ing.RefreshSubscription(context.Background(), sub, nil)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Duplicates)
		assert.Equal(t, 1, created)
	})

	t.Run("counts rejected pages by reason without archiving them", func(t *testing.T) {
		t.Parallel()

		var created int
		ing := &ingest.Ingestor{
			Feeds: &mock.FeedService{
				DiscoverArticlesFn: func(_ context.Context, _ string, _ *lucid.URLFilter) ([]string, error) {
					return []string{"https://example.com/posts/thin", "https://example.com/posts/full"}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html><body>page</body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ string, opts lucid.Options) (*lucid.Result, error) {
					if opts.BaseURL == "https://example.com/posts/thin" {
						return &lucid.Result{
							Confidence: 0.12,
							Reason:     lucid.ReasonLowConfidence,
						}, nil
					}
					return &lucid.Result{
						Title:      "Full Post",
						HTML:       "<p>Full post</p>",
						Text:       "Full post",
						Confidence: 0.9,
						Reason:     lucid.ReasonOK,
					}, nil
				},
			},
			Articles: &mock.ArticleService{
				FindArticlesFn: func(_ context.Context, _ lucid.ArticleFilter) ([]*lucid.Article, error) {
					return []*lucid.Article{}, nil
				},
				CreateArticleFn: func(_ context.Context, _ *lucid.Article) error {
					created++
					return nil
				},
			},
			Concurrency: 1,
			RetryDelays: []time.Duration{0},
		}

		sub := &lucid.Subscription{
			ID:      "sub-123",
			Name:    "test",
			FeedURL: "https://example.com/feed.xml",
		}

		result, err := ing.RefreshSubscription(context.Background(), sub, nil)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Rejected)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, 1, result.Reasons[lucid.ReasonLowConfidence])
		assert.Equal(t, 1, created)
	})

	t.Run("counts failed URLs when fetch fails", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{
			Feeds: &mock.FeedService{
				DiscoverArticlesFn: func(_ context.Context, _ string, _ *lucid.URLFilter) ([]string, error) {
					return []string{"https://example.com/posts/one", "https://example.com/posts/two"}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					if url == "https://example.com/posts/one" {
						return "", lucid.Errorf(lucid.EINTERNAL, "fetch failed")
					}
					return "<html><body><p>Page 2</p></body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ string, _ lucid.Options) (*lucid.Result, error) {
					return &lucid.Result{
						Title:      "Page 2",
						HTML:       "<p>Page 2</p>",
						Text:       "Page 2",
						Confidence: 0.9,
						Reason:     lucid.ReasonOK,
					}, nil
				},
			},
			Articles: &mock.ArticleService{
				FindArticlesFn: func(_ context.Context, _ lucid.ArticleFilter) ([]*lucid.Article, error) {
					return []*lucid.Article{}, nil
				},
				CreateArticleFn: func(_ context.Context, _ *lucid.Article) error {
					return nil
				},
			},
			Concurrency: 1,
			RetryDelays: []time.Duration{0}, // no retry delay for tests
		}

		sub := &lucid.Subscription{
			ID:      "sub-123",
			Name:    "test",
			FeedURL: "https://example.com/feed.xml",
		}

		result, err := ing.RefreshSubscription(context.Background(), sub, nil)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("archives articles in feed order", func(t *testing.T) {
		t.Parallel()

		var savedURLs []string
		ing := &ingest.Ingestor{
			Feeds: &mock.FeedService{
				DiscoverArticlesFn: func(_ context.Context, _ string, _ *lucid.URLFilter) ([]string, error) {
					return []string{
						"https://example.com/posts/one",
						"https://example.com/posts/two",
						"https://example.com/posts/three",
					}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					// Make earlier entries finish last
					switch url {
					case "https://example.com/posts/one":
						time.Sleep(30 * time.Millisecond)
					case "https://example.com/posts/two":
						time.Sleep(15 * time.Millisecond)
					}
					return "<html><body><p>Post</p></body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ string, _ lucid.Options) (*lucid.Result, error) {
					return &lucid.Result{
						Title:      "Post",
						HTML:       "<p>Post</p>",
						Text:       "Post",
						Confidence: 0.9,
						Reason:     lucid.ReasonOK,
					}, nil
				},
			},
			Articles: &mock.ArticleService{
				FindArticlesFn: func(_ context.Context, _ lucid.ArticleFilter) ([]*lucid.Article, error) {
					return []*lucid.Article{}, nil
				},
				CreateArticleFn: func(_ context.Context, article *lucid.Article) error {
					savedURLs = append(savedURLs, article.SourceURL)
					return nil
				},
			},
			Concurrency: 3,
			RetryDelays: []time.Duration{0},
		}

		sub := &lucid.Subscription{
			ID:      "sub-123",
			Name:    "test",
			FeedURL: "https://example.com/feed.xml",
		}

		result, err := ing.RefreshSubscription(context.Background(), sub, nil)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 3, result.Saved)
		assert.Equal(t, []string{
			"https://example.com/posts/one",
			"https://example.com/posts/two",
			"https://example.com/posts/three",
		}, savedURLs)
	})

	t.Run("passes the compiled URL filter to feed discovery", func(t *testing.T) {
		t.Parallel()

		var gotFilter *lucid.URLFilter
		ing := &ingest.Ingestor{
			Feeds: &mock.FeedService{
				DiscoverArticlesFn: func(_ context.Context, _ string, filter *lucid.URLFilter) ([]string, error) {
					gotFilter = filter
					return []string{}, nil
				},
			},
			Fetcher:   &mock.Fetcher{},
			Extractor: &mock.Extractor{},
			Articles: &mock.ArticleService{
				FindArticlesFn: func(_ context.Context, _ lucid.ArticleFilter) ([]*lucid.Article, error) {
					return []*lucid.Article{}, nil
				},
			},
			Concurrency: 1,
			RetryDelays: []time.Duration{0},
		}

		sub := &lucid.Subscription{
			ID:             "sub-123",
			Name:           "test",
			FeedURL:        "https://example.com/feed.xml",
			IncludePattern: `/posts/`,
			ExcludePattern: `/drafts/`,
		}

		_, err := ing.RefreshSubscription(context.Background(), sub, nil)

		require.NoError(t, err)
		require.NotNil(t, gotFilter)
		assert.Len(t, gotFilter.Include, 1)
		assert.Len(t, gotFilter.Exclude, 1)
	})

	t.Run("returns invalid error for a bad subscription pattern", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{
			Feeds:       &mock.FeedService{},
			Fetcher:     &mock.Fetcher{},
			Extractor:   &mock.Extractor{},
			Articles:    &mock.ArticleService{},
			Concurrency: 1,
			RetryDelays: []time.Duration{0},
		}

		sub := &lucid.Subscription{
			ID:             "sub-123",
			Name:           "test",
			FeedURL:        "https://example.com/feed.xml",
			IncludePattern: `[unclosed`,
		}

		_, err := ing.RefreshSubscription(context.Background(), sub, nil)

		require.Error(t, err)
		assert.Equal(t, lucid.EINVALID, lucid.ErrorCode(err))
	})

	t.Run("propagates feed discovery errors", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{
			Feeds: &mock.FeedService{
				DiscoverArticlesFn: func(_ context.Context, _ string, _ *lucid.URLFilter) ([]string, error) {
					return nil, lucid.Errorf(lucid.EINTERNAL, "feed unreachable")
				},
			},
			Fetcher:     &mock.Fetcher{},
			Extractor:   &mock.Extractor{},
			Articles:    &mock.ArticleService{},
			Concurrency: 1,
			RetryDelays: []time.Duration{0},
		}

		sub := &lucid.Subscription{
			ID:      "sub-123",
			Name:    "test",
			FeedURL: "https://example.com/feed.xml",
		}

		_, err := ing.RefreshSubscription(context.Background(), sub, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "feed discovery")
	})

	t.Run("passes threshold and page URL to the extractor", func(t *testing.T) {
		t.Parallel()

		var gotOpts lucid.Options
		ing := &ingest.Ingestor{
			Feeds: &mock.FeedService{
				DiscoverArticlesFn: func(_ context.Context, _ string, _ *lucid.URLFilter) ([]string, error) {
					return []string{"https://example.com/posts/one"}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html><body><p>Post</p></body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ string, opts lucid.Options) (*lucid.Result, error) {
					gotOpts = opts
					return &lucid.Result{
						Title:      "Post",
						HTML:       "<p>Post</p>",
						Text:       "Post",
						Confidence: 0.9,
						Reason:     lucid.ReasonOK,
					}, nil
				},
			},
			Articles: &mock.ArticleService{
				FindArticlesFn: func(_ context.Context, _ lucid.ArticleFilter) ([]*lucid.Article, error) {
					return []*lucid.Article{}, nil
				},
				CreateArticleFn: func(_ context.Context, _ *lucid.Article) error {
					return nil
				},
			},
			Concurrency: 1,
			RetryDelays: []time.Duration{0},
			Threshold:   0.5,
		}

		sub := &lucid.Subscription{
			ID:      "sub-123",
			Name:    "test",
			FeedURL: "https://example.com/feed.xml",
		}

		_, err := ing.RefreshSubscription(context.Background(), sub, nil)

		require.NoError(t, err)
		assert.InDelta(t, 0.5, gotOpts.Threshold, 0.0001)
		assert.Equal(t, "https://example.com/posts/one", gotOpts.BaseURL)
	})

	t.Run("calls progress callback with events", func(t *testing.T) {
		t.Parallel()

		ing := &ingest.Ingestor{
			Feeds: &mock.FeedService{
				DiscoverArticlesFn: func(_ context.Context, _ string, _ *lucid.URLFilter) ([]string, error) {
					return []string{"https://example.com/posts/one"}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html><body><p>Post</p></body></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(_ string, _ lucid.Options) (*lucid.Result, error) {
					return &lucid.Result{
						Title:      "Post",
						HTML:       "<p>Post</p>",
						Text:       "Post",
						Confidence: 0.9,
						Reason:     lucid.ReasonOK,
					}, nil
				},
			},
			Articles: &mock.ArticleService{
				FindArticlesFn: func(_ context.Context, _ lucid.ArticleFilter) ([]*lucid.Article, error) {
					return []*lucid.Article{}, nil
				},
				CreateArticleFn: func(_ context.Context, _ *lucid.Article) error {
					return nil
				},
			},
			Concurrency: 1,
			RetryDelays: []time.Duration{0},
		}

		sub := &lucid.Subscription{
			ID:      "sub-123",
			Name:    "test",
			FeedURL: "https://example.com/feed.xml",
		}

		var events []ingest.ProgressEvent
		progress := func(e ingest.ProgressEvent) {
			events = append(events, e)
		}

		_, err := ing.RefreshSubscription(context.Background(), sub, progress)

		require.NoError(t, err)
		require.Len(t, events, 3) // Started, Completed, Finished

		// First event: Started
		assert.Equal(t, ingest.ProgressStarted, events[0].Type)
		assert.Equal(t, 1, events[0].Total)

		// Second event: Completed for the URL
		assert.Equal(t, ingest.ProgressCompleted, events[1].Type)
		assert.Equal(t, 1, events[1].Completed)
		assert.Equal(t, 1, events[1].Total)
		assert.Equal(t, "https://example.com/posts/one", events[1].URL)

		// Third event: Finished
		assert.Equal(t, ingest.ProgressFinished, events[2].Type)
		assert.Equal(t, 1, events[2].Total)
	})

	t.Run("reports skipped entries in progress events", func(t *testing.T) {
		t.Parallel()

		existing := &lucid.Article{
			ID:        "art-1",
			SourceURL: "https://example.com/posts/old",
		}

		ing := &ingest.Ingestor{
			Feeds: &mock.FeedService{
				DiscoverArticlesFn: func(_ context.Context, _ string, _ *lucid.URLFilter) ([]string, error) {
					return []string{"https://example.com/posts/old"}, nil
				},
			},
			Fetcher:   &mock.Fetcher{},
			Extractor: &mock.Extractor{},
			Articles: &mock.ArticleService{
				FindArticlesFn: func(_ context.Context, filter lucid.ArticleFilter) ([]*lucid.Article, error) {
					if filter.SourceURL != nil && *filter.SourceURL != existing.SourceURL {
						return []*lucid.Article{}, nil
					}
					return []*lucid.Article{existing}, nil
				},
			},
			Concurrency: 1,
			RetryDelays: []time.Duration{0},
		}

		sub := &lucid.Subscription{
			ID:      "sub-123",
			Name:    "test",
			FeedURL: "https://example.com/feed.xml",
		}

		var events []ingest.ProgressEvent
		progress := func(e ingest.ProgressEvent) {
			events = append(events, e)
		}

		result, err := ing.RefreshSubscription(context.Background(), sub, progress)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Duplicates)
		require.Len(t, events, 3) // Started, Skipped, Finished

		assert.Equal(t, ingest.ProgressSkipped, events[1].Type)
		assert.Equal(t, "https://example.com/posts/old", events[1].URL)
		assert.Equal(t, "already archived", events[1].Reason)
	})
}

func TestProgressType_Constants(t *testing.T) {
	t.Parallel()

	// Verify constants are defined and have expected order
	assert.Equal(t, ingest.ProgressStarted, ingest.ProgressType(0))
	assert.Equal(t, ingest.ProgressCompleted, ingest.ProgressType(1))
	assert.Equal(t, ingest.ProgressSkipped, ingest.ProgressType(2))
	assert.Equal(t, ingest.ProgressFailed, ingest.ProgressType(3))
	assert.Equal(t, ingest.ProgressFinished, ingest.ProgressType(4))
}

func TestResult_Fields(t *testing.T) {
	t.Parallel()

	// Verify Result struct has expected fields
	r := ingest.Result{
		Saved:      10,
		Duplicates: 3,
		Rejected:   2,
		Failed:     1,
		Bytes:      1024,
		Reasons:    map[string]int{lucid.ReasonLowConfidence: 2},
	}

	assert.Equal(t, 10, r.Saved)
	assert.Equal(t, 3, r.Duplicates)
	assert.Equal(t, 2, r.Rejected)
	assert.Equal(t, 1, r.Failed)
	assert.Equal(t, 1024, r.Bytes)
	assert.Equal(t, 2, r.Reasons[lucid.ReasonLowConfidence])
}

func TestProgressEvent_Fields(t *testing.T) {
	t.Parallel()

	// Verify ProgressEvent struct has expected fields
	testErr := lucid.Errorf(lucid.EINTERNAL, "test error")
	e := ingest.ProgressEvent{
		Type:      ingest.ProgressFailed,
		Completed: 5,
		Total:     10,
		URL:       "https://example.com/posts/one",
		Reason:    lucid.ReasonTooSmall,
		Error:     testErr,
	}

	assert.Equal(t, ingest.ProgressFailed, e.Type)
	assert.Equal(t, 5, e.Completed)
	assert.Equal(t, 10, e.Total)
	assert.Equal(t, "https://example.com/posts/one", e.URL)
	assert.Equal(t, lucid.ReasonTooSmall, e.Reason)
	assert.Equal(t, testErr, e.Error)
}

func TestProgressFunc_Type(t *testing.T) {
	t.Parallel()

	// Verify ProgressFunc is callable
	var called bool
	var fn ingest.ProgressFunc = func(event ingest.ProgressEvent) {
		called = true
	}

	fn(ingest.ProgressEvent{Type: ingest.ProgressStarted})
	assert.True(t, called)
}
