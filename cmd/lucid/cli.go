package main

import (
	"context"
	"io"

	"github.com/lucidread/lucid"
	"github.com/lucidread/lucid/ingest"
	"github.com/lucidread/lucid/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx           context.Context
	Stdout        io.Writer
	Stderr        io.Writer
	DB            *sqlite.DB
	Subscriptions lucid.SubscriptionService
	Articles      lucid.ArticleService
	Feeds         lucid.FeedService
	Fetcher       lucid.Fetcher
	Extractor     lucid.Extractor
	Converter     lucid.Converter
	Ingestor      *ingest.Ingestor

	// NewWriter and NewExportStore create markdown writers rooted at a
	// directory.
	NewWriter      func(dir string) lucid.ArticleWriter
	NewExportStore func(dir, name string) lucid.ExportStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Log service activity to stderr"`

	Read        ReadCmd        `cmd:"" help:"Extract readable content from a URL or local HTML file"`
	Subscribe   SubscribeCmd   `cmd:"" help:"Subscribe to a feed"`
	Feeds       FeedsCmd       `cmd:"" help:"List subscriptions"`
	Unsubscribe UnsubscribeCmd `cmd:"" help:"Remove a subscription and its archived articles"`
	Refresh     RefreshCmd     `cmd:"" help:"Fetch and archive new articles from subscriptions"`
	List        ListCmd        `cmd:"" help:"List archived articles"`
	Show        ShowCmd        `cmd:"" help:"Show an archived article"`
	Delete      DeleteCmd      `cmd:"" help:"Delete an archived article"`
	Export      ExportCmd      `cmd:"" help:"Export the archive to a directory of markdown files"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	Target    string  `arg:"" help:"URL or local HTML file"`
	Format    string  `short:"f" default:"text" enum:"text,markdown,html,json" help:"Output format"`
	Threshold float64 `short:"t" help:"Minimum extraction confidence (0 to 1)"`
	Render    bool    `short:"r" help:"Render the page in a headless browser before extracting"`
	Save      bool    `short:"s" help:"Archive the extracted article"`
	Out       string  `short:"o" help:"Write the article into this directory as markdown"`
}

// SubscribeCmd is the "subscribe" subcommand.
type SubscribeCmd struct {
	Name    string `arg:"" help:"Subscription name"`
	FeedURL string `arg:"" name:"url" help:"Feed URL, or a page URL with feed autodiscovery"`
	Include string `help:"Only archive entry URLs matching this regex"`
	Exclude string `help:"Skip entry URLs matching this regex"`
}

// FeedsCmd is the "feeds" subcommand.
type FeedsCmd struct{}

// UnsubscribeCmd is the "unsubscribe" subcommand.
type UnsubscribeCmd struct {
	Name  string `arg:"" help:"Subscription name"`
	Force bool   `help:"Confirm removal"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct {
	Name        string `arg:"" optional:"" help:"Subscription name (all subscriptions when omitted)"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Feed  string `help:"Only articles from this subscription"`
	Sort  string `default:"saved" enum:"saved,confidence" help:"Sort order"`
	Limit int    `help:"Maximum number of articles (0 for all)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID      string `arg:"" help:"Article ID"`
	Format  string `short:"f" default:"text" enum:"text,markdown,html" help:"Output format"`
	Outline bool   `help:"Show the section outline instead of the content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Article ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir  string `arg:"" help:"Destination directory"`
	Name string `default:"archive" help:"Name of the export subdirectory"`
}
