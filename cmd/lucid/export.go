package main

import (
	"fmt"
	"path/filepath"

	"github.com/lucidread/lucid"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	articles, err := deps.Articles.FindArticles(deps.Ctx, lucid.ArticleFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles to export.")
		return nil
	}

	store := deps.NewExportStore(c.Dir, c.Name)
	for _, article := range articles {
		if err := store.Save(deps.Ctx, article); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error exporting %s: %v\n", article.SourceURL, err)
			return err
		}
	}

	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d articles to %s\n", len(articles), filepath.Join(c.Dir, c.Name))
	return nil
}
