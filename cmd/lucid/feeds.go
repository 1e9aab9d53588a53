package main

import (
	"fmt"

	"github.com/lucidread/lucid"
)

// Run executes the feeds command.
func (c *FeedsCmd) Run(deps *Dependencies) error {
	subs, err := deps.Subscriptions.FindSubscriptions(deps.Ctx, lucid.SubscriptionFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		return err
	}

	if len(subs) == 0 {
		fmt.Fprintln(deps.Stdout, "No subscriptions found. Use 'lucid subscribe' to create one.")
		return nil
	}

	for _, s := range subs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", s.ID, s.Name, s.FeedURL)
	}

	return nil
}
