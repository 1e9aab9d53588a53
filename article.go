package lucid

import (
	"context"
	"time"
)

// Article represents an extracted page archived for offline reading.
type Article struct {
	ID             string    `json:"id"`
	SubscriptionID string    `json:"subscriptionId,omitempty"`
	SourceURL      string    `json:"sourceUrl"`
	Title          string    `json:"title"`
	HTML           string    `json:"html"`
	Text           string    `json:"text"`
	Confidence     float64   `json:"confidence"`
	ContentHash    string    `json:"contentHash"`
	SavedAt        time.Time `json:"savedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.HTML == "" && a.Text == "" {
		return Errorf(EINVALID, "article content required")
	}
	return nil
}

// ArticleWriter writes articles to storage.
type ArticleWriter interface {
	CreateArticle(ctx context.Context, article *Article) error
}

// ExportStore writes articles to an export target with all-or-nothing
// semantics. Saved articles become visible only after Commit; Abort
// discards everything saved so far.
type ExportStore interface {
	Save(ctx context.Context, article *Article) error
	Commit() error
	Abort() error
}

// ArticleService represents a service for managing archived articles.
type ArticleService interface {
	// CreateArticle archives a new article.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error

	// DeleteArticlesBySubscription removes all articles saved from a subscription.
	DeleteArticlesBySubscription(ctx context.Context, subscriptionID string) error
}

// SortOrder represents the sort order for article queries.
type SortOrder string

// SortOrder constants for ArticleFilter.
const (
	SortBySavedAt    SortOrder = "saved_at"
	SortByConfidence SortOrder = "confidence"
)

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID             *string `json:"id"`
	SubscriptionID *string `json:"subscriptionId"`
	SourceURL      *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
