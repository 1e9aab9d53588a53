package mock

import (
	"context"

	"github.com/lucidread/lucid"
)

var _ lucid.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of lucid.FeedService.
type FeedService struct {
	DiscoverArticlesFn func(ctx context.Context, target string, filter *lucid.URLFilter) ([]string, error)
}

func (s *FeedService) DiscoverArticles(ctx context.Context, target string, filter *lucid.URLFilter) ([]string, error) {
	return s.DiscoverArticlesFn(ctx, target, filter)
}
