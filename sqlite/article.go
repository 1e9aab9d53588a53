package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/lucidread/lucid"
)

// Compile-time interface verification.
var _ lucid.ArticleService = (*ArticleService)(nil)

// ArticleService implements lucid.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateArticle archives a new article.
func (s *ArticleService) CreateArticle(ctx context.Context, article *lucid.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.SavedAt = time.Now().UTC()
	if article.HTML != "" {
		article.ContentHash = hashContent(article.HTML)
	} else {
		article.ContentHash = hashContent(article.Text)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, subscription_id, source_url, title, html, text, confidence, content_hash, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, nullString(article.SubscriptionID), article.SourceURL, article.Title,
		article.HTML, article.Text, article.Confidence, article.ContentHash,
		article.SavedAt.Format(time.RFC3339))

	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*lucid.Article, error) {
	var article lucid.Article
	var subscriptionID sql.NullString
	var savedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, subscription_id, source_url, title, html, text, confidence, content_hash, saved_at
		FROM articles
		WHERE id = ?
	`, id).Scan(&article.ID, &subscriptionID, &article.SourceURL, &article.Title,
		&article.HTML, &article.Text, &article.Confidence, &article.ContentHash, &savedAt)

	if err == sql.ErrNoRows {
		return nil, lucid.Errorf(lucid.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	article.SubscriptionID = subscriptionID.String
	if article.SavedAt, err = parseRFC3339(savedAt, "saved_at"); err != nil {
		return nil, err
	}

	return &article, nil
}

// FindArticles retrieves articles matching the filter.
func (s *ArticleService) FindArticles(ctx context.Context, filter lucid.ArticleFilter) ([]*lucid.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, subscription_id, source_url, title, html, text, confidence, content_hash, saved_at FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SubscriptionID != nil {
		query.WriteString(" AND subscription_id = ?")
		args = append(args, *filter.SubscriptionID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	switch filter.SortBy {
	case lucid.SortByConfidence:
		query.WriteString(" ORDER BY confidence DESC")
	default:
		query.WriteString(" ORDER BY saved_at DESC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*lucid.Article
	for rows.Next() {
		var article lucid.Article
		var subscriptionID sql.NullString
		var savedAt string

		if err := rows.Scan(&article.ID, &subscriptionID, &article.SourceURL, &article.Title,
			&article.HTML, &article.Text, &article.Confidence, &article.ContentHash, &savedAt); err != nil {
			return nil, err
		}

		article.SubscriptionID = subscriptionID.String
		if article.SavedAt, err = parseRFC3339(savedAt, "saved_at"); err != nil {
			return nil, err
		}

		articles = append(articles, &article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return lucid.Errorf(lucid.ENOTFOUND, "article not found")
	}

	return nil
}

// DeleteArticlesBySubscription removes all articles saved from a subscription.
func (s *ArticleService) DeleteArticlesBySubscription(ctx context.Context, subscriptionID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE subscription_id = ?", subscriptionID)
	return err
}
