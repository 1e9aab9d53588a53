package lucid

import (
	"context"
	"regexp"
	"time"
)

// Subscription represents a feed whose articles are fetched and archived.
type Subscription struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	FeedURL string `json:"feedUrl"`

	// IncludePattern and ExcludePattern are optional regular expressions
	// applied to discovered entry URLs. See URLFilter.
	IncludePattern string `json:"includePattern,omitempty"`
	ExcludePattern string `json:"excludePattern,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the subscription contains invalid fields.
func (s *Subscription) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "subscription name required")
	}
	if s.FeedURL == "" {
		return Errorf(EINVALID, "subscription feed URL required")
	}
	if _, err := s.URLFilter(); err != nil {
		return err
	}
	return nil
}

// URLFilter compiles the subscription's include/exclude patterns.
// Returns nil if neither pattern is set.
func (s *Subscription) URLFilter() (*URLFilter, error) {
	if s.IncludePattern == "" && s.ExcludePattern == "" {
		return nil, nil
	}

	var filter URLFilter
	if s.IncludePattern != "" {
		re, err := regexp.Compile(s.IncludePattern)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid include pattern: %s", err)
		}
		filter.Include = append(filter.Include, re)
	}
	if s.ExcludePattern != "" {
		re, err := regexp.Compile(s.ExcludePattern)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid exclude pattern: %s", err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return &filter, nil
}

// SubscriptionService represents a service for managing subscriptions.
type SubscriptionService interface {
	// CreateSubscription creates a new subscription.
	// Returns ECONFLICT if a subscription with the same feed URL exists.
	CreateSubscription(ctx context.Context, sub *Subscription) error

	// FindSubscriptionByID retrieves a subscription by ID.
	// Returns ENOTFOUND if the subscription does not exist.
	FindSubscriptionByID(ctx context.Context, id string) (*Subscription, error)

	// FindSubscriptions retrieves subscriptions matching the filter.
	FindSubscriptions(ctx context.Context, filter SubscriptionFilter) ([]*Subscription, error)

	// UpdateSubscription updates an existing subscription.
	// Returns ENOTFOUND if the subscription does not exist.
	UpdateSubscription(ctx context.Context, id string, upd SubscriptionUpdate) (*Subscription, error)

	// DeleteSubscription permanently removes a subscription and all
	// articles saved from it.
	// Returns ENOTFOUND if the subscription does not exist.
	DeleteSubscription(ctx context.Context, id string) error
}

// SubscriptionFilter represents a filter for FindSubscriptions.
type SubscriptionFilter struct {
	ID      *string `json:"id"`
	Name    *string `json:"name"`
	FeedURL *string `json:"feedUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SubscriptionUpdate represents fields that can be updated on a subscription.
type SubscriptionUpdate struct {
	Name           *string `json:"name"`
	FeedURL        *string `json:"feedUrl"`
	IncludePattern *string `json:"includePattern"`
	ExcludePattern *string `json:"excludePattern"`
}
