package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/lucidread/lucid"
	main "github.com/lucidread/lucid/cmd/lucid"
	"github.com/lucidread/lucid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates a subscription", func(t *testing.T) {
		t.Parallel()

		var created *lucid.Subscription
		subs := &mock.SubscriptionService{
			CreateSubscriptionFn: func(_ context.Context, sub *lucid.Subscription) error {
				sub.ID = "sub-123"
				created = sub
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:           context.Background(),
			Stdout:        stdout,
			Stderr:        &bytes.Buffer{},
			Subscriptions: subs,
		}

		cmd := &main.SubscribeCmd{
			Name:    "baking-blog",
			FeedURL: "https://bread.example.com/feed.xml",
			Include: `/posts/`,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "baking-blog", created.Name)
		assert.Equal(t, "https://bread.example.com/feed.xml", created.FeedURL)
		assert.Equal(t, `/posts/`, created.IncludePattern)
		assert.Contains(t, stdout.String(), "Subscribed")
		assert.Contains(t, stdout.String(), "sub-123")
	})

	t.Run("returns error when creation fails", func(t *testing.T) {
		t.Parallel()

		subs := &mock.SubscriptionService{
			CreateSubscriptionFn: func(_ context.Context, _ *lucid.Subscription) error {
				return lucid.Errorf(lucid.ECONFLICT, "subscription for this feed already exists")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:           context.Background(),
			Stdout:        &bytes.Buffer{},
			Stderr:        stderr,
			Subscriptions: subs,
		}

		cmd := &main.SubscribeCmd{Name: "baking-blog", FeedURL: "https://bread.example.com/feed.xml"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, lucid.ECONFLICT, lucid.ErrorCode(err))
		assert.Contains(t, stderr.String(), "already exists")
	})
}
