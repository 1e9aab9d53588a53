package main

import (
	"fmt"
	"strings"

	"github.com/lucidread/lucid"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if lucid.ErrorCode(err) == lucid.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'lucid list' to see archived articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		}
		return err
	}

	if c.Outline {
		return c.printOutline(deps, article)
	}

	switch c.Format {
	case "markdown":
		md, err := articleMarkdown(deps, article)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
	case "html":
		fmt.Fprintln(deps.Stdout, article.HTML)
	default:
		if article.Title != "" {
			fmt.Fprintf(deps.Stdout, "%s\n\n", article.Title)
		}
		fmt.Fprintln(deps.Stdout, article.Text)
	}

	return nil
}

// printOutline prints the article's heading outline, indented by level.
func (c *ShowCmd) printOutline(deps *Dependencies, article *lucid.Article) error {
	md, err := articleMarkdown(deps, article)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		return err
	}

	sections := lucid.ExtractSections(md)
	if len(sections) == 0 {
		fmt.Fprintln(deps.Stdout, "No headings found.")
		return nil
	}

	for _, s := range sections {
		indent := strings.Repeat("  ", s.Level-1)
		fmt.Fprintf(deps.Stdout, "%s%s\n", indent, s.Title)
	}

	return nil
}

// articleMarkdown converts the archived HTML to markdown, falling back
// to the plain text when no HTML was archived.
func articleMarkdown(deps *Dependencies, article *lucid.Article) (string, error) {
	if article.HTML == "" {
		return article.Text, nil
	}
	return deps.Converter.Convert(article.HTML)
}
