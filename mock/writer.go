package mock

import (
	"context"

	"github.com/lucidread/lucid"
)

var _ lucid.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of lucid.ArticleWriter.
type ArticleWriter struct {
	CreateArticleFn func(ctx context.Context, article *lucid.Article) error
}

func (w *ArticleWriter) CreateArticle(ctx context.Context, article *lucid.Article) error {
	return w.CreateArticleFn(ctx, article)
}
