package main

import (
	"fmt"

	"github.com/lucidread/lucid"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := lucid.ArticleFilter{
		Limit:  c.Limit,
		SortBy: lucid.SortBySavedAt,
	}
	if c.Sort == "confidence" {
		filter.SortBy = lucid.SortByConfidence
	}

	if c.Feed != "" {
		subs, err := deps.Subscriptions.FindSubscriptions(deps.Ctx, lucid.SubscriptionFilter{Name: &c.Feed})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
			return err
		}
		if len(subs) == 0 {
			fmt.Fprintf(deps.Stderr, "error: subscription %q not found. Use 'lucid feeds' to see subscriptions.\n", c.Feed)
			return lucid.Errorf(lucid.ENOTFOUND, "subscription %q not found", c.Feed)
		}
		filter.SubscriptionID = &subs[0].ID
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'lucid read --save' or 'lucid refresh' to archive some.")
		return nil
	}

	for _, a := range articles {
		title := a.Title
		if title == "" {
			title = a.SourceURL
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %.3f  %s\n", a.ID, a.SavedAt.Format("2006-01-02"), a.Confidence, title)
	}

	return nil
}
