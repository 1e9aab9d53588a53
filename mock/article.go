package mock

import (
	"context"

	"github.com/lucidread/lucid"
)

var _ lucid.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of lucid.ArticleService.
type ArticleService struct {
	CreateArticleFn                func(ctx context.Context, article *lucid.Article) error
	FindArticleByIDFn              func(ctx context.Context, id string) (*lucid.Article, error)
	FindArticlesFn                 func(ctx context.Context, filter lucid.ArticleFilter) ([]*lucid.Article, error)
	DeleteArticleFn                func(ctx context.Context, id string) error
	DeleteArticlesBySubscriptionFn func(ctx context.Context, subscriptionID string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *lucid.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*lucid.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter lucid.ArticleFilter) ([]*lucid.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}

func (s *ArticleService) DeleteArticlesBySubscription(ctx context.Context, subscriptionID string) error {
	return s.DeleteArticlesBySubscriptionFn(ctx, subscriptionID)
}
