package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lucidread/lucid"
	"github.com/lucidread/lucid/fs"
)

// isURL reports whether target should be fetched over the network
// rather than read from disk.
func isURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// Run executes the read command.
func (c *ReadCmd) Run(deps *Dependencies) error {
	html, err := c.loadHTML(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		return err
	}

	opts := lucid.Options{Threshold: c.Threshold}
	if isURL(c.Target) {
		opts.BaseURL = c.Target
	}

	res, err := deps.Extractor.Extract(html, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
		return err
	}

	// JSON output reports rejections in-band instead of failing
	if c.Format == "json" {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if !res.OK() {
		fmt.Fprintf(deps.Stderr, "error: %s (confidence %.3f)\n", res.Reason, res.Confidence)
		return lucid.Errorf(lucid.ENOTFOUND, "no article content in %s", c.Target)
	}

	switch c.Format {
	case "markdown":
		md, err := deps.Converter.Convert(res.HTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
	case "html":
		fmt.Fprintln(deps.Stdout, res.HTML)
	default:
		if res.Title != "" {
			fmt.Fprintf(deps.Stdout, "%s\n\n", res.Title)
		}
		fmt.Fprintln(deps.Stdout, res.Text)
	}

	article := &lucid.Article{
		SourceURL:  c.Target,
		Title:      res.Title,
		HTML:       res.HTML,
		Text:       res.Text,
		Confidence: res.Confidence,
	}

	// Archive and file writes confirm on stderr so stdout stays pipeable
	if c.Save {
		if err := deps.Articles.CreateArticle(deps.Ctx, article); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Archived %q (%s)\n", article.Title, article.ID)
	}

	if c.Out != "" {
		writer := deps.NewWriter(c.Out)
		if err := writer.CreateArticle(deps.Ctx, article); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", lucid.ErrorMessage(err))
			return err
		}
		relPath, err := fs.URLToPath(article.SourceURL)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", relPath)
	}

	return nil
}

// loadHTML fetches the target URL or reads the target file.
func (c *ReadCmd) loadHTML(deps *Dependencies) (string, error) {
	if isURL(c.Target) {
		return deps.Fetcher.Fetch(deps.Ctx, c.Target)
	}

	data, err := os.ReadFile(c.Target)
	if err != nil {
		if os.IsNotExist(err) {
			return "", lucid.Errorf(lucid.ENOTFOUND, "file %q not found", c.Target)
		}
		return "", err
	}
	return string(data), nil
}
