package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/lucidread/lucid"
)

// Ensure LoggingFeedService implements lucid.FeedService.
var _ lucid.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with debug logging.
type LoggingFeedService struct {
	next   lucid.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next lucid.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// DiscoverArticles delegates to the wrapped service and logs the operation.
func (s *LoggingFeedService) DiscoverArticles(ctx context.Context, target string, filter *lucid.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed discovery",
			"url", target,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverArticles(ctx, target, filter)
}
