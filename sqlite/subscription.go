package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lucidread/lucid"
)

// Compile-time interface verification.
var _ lucid.SubscriptionService = (*SubscriptionService)(nil)

// SubscriptionService implements lucid.SubscriptionService using SQLite.
type SubscriptionService struct {
	db *DB
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(db *DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

// CreateSubscription creates a new subscription.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, sub *lucid.Subscription) error {
	if err := sub.Validate(); err != nil {
		return err
	}

	sub.ID = uuid.New().String()
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, name, feed_url, include_pattern, exclude_pattern, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sub.ID, sub.Name, sub.FeedURL, sub.IncludePattern, sub.ExcludePattern,
		sub.CreatedAt.Format(time.RFC3339), sub.UpdatedAt.Format(time.RFC3339))

	if isUniqueViolation(err) {
		return lucid.Errorf(lucid.ECONFLICT, "subscription for feed %q already exists", sub.FeedURL)
	}
	return err
}

// FindSubscriptionByID retrieves a subscription by ID.
func (s *SubscriptionService) FindSubscriptionByID(ctx context.Context, id string) (*lucid.Subscription, error) {
	var sub lucid.Subscription
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, feed_url, include_pattern, exclude_pattern, created_at, updated_at
		FROM subscriptions
		WHERE id = ?
	`, id).Scan(&sub.ID, &sub.Name, &sub.FeedURL, &sub.IncludePattern, &sub.ExcludePattern,
		&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, lucid.Errorf(lucid.ENOTFOUND, "subscription not found")
	}
	if err != nil {
		return nil, err
	}

	if sub.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if sub.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &sub, nil
}

// FindSubscriptions retrieves subscriptions matching the filter.
func (s *SubscriptionService) FindSubscriptions(ctx context.Context, filter lucid.SubscriptionFilter) ([]*lucid.Subscription, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, feed_url, include_pattern, exclude_pattern, created_at, updated_at FROM subscriptions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.FeedURL != nil {
		query.WriteString(" AND feed_url = ?")
		args = append(args, *filter.FeedURL)
	}

	query.WriteString(" ORDER BY created_at DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*lucid.Subscription
	for rows.Next() {
		var sub lucid.Subscription
		var createdAt, updatedAt string

		if err := rows.Scan(&sub.ID, &sub.Name, &sub.FeedURL, &sub.IncludePattern, &sub.ExcludePattern,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if sub.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if sub.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		subs = append(subs, &sub)
	}

	return subs, rows.Err()
}

// UpdateSubscription updates an existing subscription.
func (s *SubscriptionService) UpdateSubscription(ctx context.Context, id string, upd lucid.SubscriptionUpdate) (*lucid.Subscription, error) {
	// First check if subscription exists
	sub, err := s.FindSubscriptionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if upd.Name != nil {
		sub.Name = *upd.Name
	}
	if upd.FeedURL != nil {
		sub.FeedURL = *upd.FeedURL
	}
	if upd.IncludePattern != nil {
		sub.IncludePattern = *upd.IncludePattern
	}
	if upd.ExcludePattern != nil {
		sub.ExcludePattern = *upd.ExcludePattern
	}

	// Validate before persisting
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	sub.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET name = ?, feed_url = ?, include_pattern = ?, exclude_pattern = ?, updated_at = ?
		WHERE id = ?
	`, sub.Name, sub.FeedURL, sub.IncludePattern, sub.ExcludePattern,
		sub.UpdatedAt.Format(time.RFC3339), id)

	if isUniqueViolation(err) {
		return nil, lucid.Errorf(lucid.ECONFLICT, "subscription for feed %q already exists", sub.FeedURL)
	}
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// DeleteSubscription permanently removes a subscription.
// Articles saved from the subscription are removed by the schema's
// ON DELETE CASCADE constraint.
func (s *SubscriptionService) DeleteSubscription(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM subscriptions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return lucid.Errorf(lucid.ENOTFOUND, "subscription not found")
	}

	return nil
}
