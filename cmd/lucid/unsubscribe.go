package main

import (
	"fmt"

	"github.com/lucidread/lucid"
)

// Run executes the unsubscribe command.
func (c *UnsubscribeCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm removal\n")
		return lucid.Errorf(lucid.EINVALID, "use --force to confirm removal")
	}

	subs, err := deps.Subscriptions.FindSubscriptions(deps.Ctx, lucid.SubscriptionFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		return err
	}

	if len(subs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: subscription %q not found. Use 'lucid feeds' to see subscriptions.\n", c.Name)
		return lucid.Errorf(lucid.ENOTFOUND, "subscription %q not found", c.Name)
	}

	sub := subs[0]
	if err := deps.Subscriptions.DeleteSubscription(deps.Ctx, sub.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Unsubscribed from %q\n", sub.Name)
	return nil
}
