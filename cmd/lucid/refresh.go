package main

import (
	"fmt"

	"github.com/lucidread/lucid"
	"github.com/lucidread/lucid/ingest"
)

// Run executes the refresh command.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	subs, err := c.resolveSubscriptions(deps)
	if err != nil {
		return err
	}

	if len(subs) == 0 {
		fmt.Fprintln(deps.Stdout, "No subscriptions found. Use 'lucid subscribe' to create one.")
		return nil
	}

	var failed int
	for _, sub := range subs {
		fmt.Fprintf(deps.Stdout, "Refreshing %q (%s)\n", sub.Name, sub.FeedURL)

		progress := func(event ingest.ProgressEvent) {
			switch event.Type {
			case ingest.ProgressStarted:
				fmt.Fprintf(deps.Stdout, "  Found %d entries\n", event.Total)
			case ingest.ProgressCompleted, ingest.ProgressSkipped:
				fmt.Fprintf(deps.Stdout, "\r  [%d/%d] %s", event.Completed, event.Total, ingest.TruncateURL(event.URL, 60))
			case ingest.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
			case ingest.ProgressFinished:
				if event.Total > 0 {
					fmt.Fprintln(deps.Stdout)
				}
			}
		}

		result, err := deps.Ingestor.RefreshSubscription(deps.Ctx, sub, progress)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error refreshing %q: %v\n", sub.Name, err)
			failed++
			continue
		}

		printRefreshSummary(deps, result)
	}

	if failed > 0 {
		return lucid.Errorf(lucid.EINTERNAL, "failed to refresh %d of %d subscriptions", failed, len(subs))
	}
	return nil
}

// resolveSubscriptions returns the named subscription, or every
// subscription when no name was given.
func (c *RefreshCmd) resolveSubscriptions(deps *Dependencies) ([]*lucid.Subscription, error) {
	filter := lucid.SubscriptionFilter{}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	subs, err := deps.Subscriptions.FindSubscriptions(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		return nil, err
	}

	if c.Name != "" && len(subs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: subscription %q not found. Use 'lucid feeds' to see subscriptions.\n", c.Name)
		return nil, lucid.Errorf(lucid.ENOTFOUND, "subscription %q not found", c.Name)
	}

	return subs, nil
}

func printRefreshSummary(deps *Dependencies, result *ingest.Result) {
	fmt.Fprintf(deps.Stdout, "  Saved %d articles (%s)\n", result.Saved, ingest.FormatBytes(result.Bytes))

	if result.Duplicates > 0 {
		fmt.Fprintf(deps.Stdout, "  Skipped %d already archived\n", result.Duplicates)
	}
	for reason, count := range result.Reasons {
		fmt.Fprintf(deps.Stdout, "  Rejected %d: %s\n", count, reason)
	}
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  Failed %d\n", result.Failed)
	}
}
