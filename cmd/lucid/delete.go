package main

import (
	"fmt"

	"github.com/lucidread/lucid"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return lucid.Errorf(lucid.EINVALID, "use --force to confirm deletion")
	}

	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if lucid.ErrorCode(err) == lucid.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'lucid list' to see archived articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Articles.DeleteArticle(deps.Ctx, article.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		return err
	}

	title := article.Title
	if title == "" {
		title = article.SourceURL
	}
	fmt.Fprintf(deps.Stdout, "Deleted %q\n", title)
	return nil
}
