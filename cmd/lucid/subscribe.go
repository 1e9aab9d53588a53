package main

import (
	"fmt"

	"github.com/lucidread/lucid"
)

// Run executes the subscribe command.
func (c *SubscribeCmd) Run(deps *Dependencies) error {
	sub := &lucid.Subscription{
		Name:           c.Name,
		FeedURL:        c.FeedURL,
		IncludePattern: c.Include,
		ExcludePattern: c.Exclude,
	}

	if err := deps.Subscriptions.CreateSubscription(deps.Ctx, sub); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Subscribed %q (%s)\n", c.Name, sub.ID)
	return nil
}
