package mock

import (
	"context"

	"github.com/lucidread/lucid"
)

var _ lucid.SubscriptionService = (*SubscriptionService)(nil)

// SubscriptionService is a mock implementation of lucid.SubscriptionService.
type SubscriptionService struct {
	CreateSubscriptionFn   func(ctx context.Context, sub *lucid.Subscription) error
	FindSubscriptionByIDFn func(ctx context.Context, id string) (*lucid.Subscription, error)
	FindSubscriptionsFn    func(ctx context.Context, filter lucid.SubscriptionFilter) ([]*lucid.Subscription, error)
	UpdateSubscriptionFn   func(ctx context.Context, id string, upd lucid.SubscriptionUpdate) (*lucid.Subscription, error)
	DeleteSubscriptionFn   func(ctx context.Context, id string) error
}

func (s *SubscriptionService) CreateSubscription(ctx context.Context, sub *lucid.Subscription) error {
	return s.CreateSubscriptionFn(ctx, sub)
}

func (s *SubscriptionService) FindSubscriptionByID(ctx context.Context, id string) (*lucid.Subscription, error) {
	return s.FindSubscriptionByIDFn(ctx, id)
}

func (s *SubscriptionService) FindSubscriptions(ctx context.Context, filter lucid.SubscriptionFilter) ([]*lucid.Subscription, error) {
	return s.FindSubscriptionsFn(ctx, filter)
}

func (s *SubscriptionService) UpdateSubscription(ctx context.Context, id string, upd lucid.SubscriptionUpdate) (*lucid.Subscription, error) {
	return s.UpdateSubscriptionFn(ctx, id, upd)
}

func (s *SubscriptionService) DeleteSubscription(ctx context.Context, id string) error {
	return s.DeleteSubscriptionFn(ctx, id)
}
