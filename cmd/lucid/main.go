package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lucidread/lucid"
	"github.com/lucidread/lucid/fs"
	"github.com/lucidread/lucid/goquery"
	"github.com/lucidread/lucid/htmltomarkdown"
	lucidhttp "github.com/lucidread/lucid/http"
	"github.com/lucidread/lucid/ingest"
	"github.com/lucidread/lucid/readability"
	"github.com/lucidread/lucid/rod"
	lucidslog "github.com/lucidread/lucid/slog"
	"github.com/lucidread/lucid/sqlite"
	"github.com/lucidread/lucid/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SubscriptionService lucid.SubscriptionService
	ArticleService      lucid.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lucid"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lucid --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LUCID_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire core services into dependencies
	m.SubscriptionService = sqlite.NewSubscriptionService(m.DB)
	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.DB = m.DB
	deps.Subscriptions = m.SubscriptionService
	deps.Articles = m.ArticleService
	deps.Feeds = lucidhttp.NewFeedService(nil)
	deps.Extractor = newExtractor()
	deps.Converter = htmltomarkdown.NewConverter()
	deps.NewWriter = func(dir string) lucid.ArticleWriter {
		return fs.NewWriter(dir, deps.Converter)
	}
	deps.NewExportStore = func(dir, name string) lucid.ExportStore {
		return fs.NewExportStore(dir, name, deps.Converter)
	}
	if logger != nil {
		deps.Feeds = lucidslog.NewLoggingFeedService(deps.Feeds, logger)
		deps.Extractor = lucidslog.NewLoggingExtractor(deps.Extractor, logger)
	}

	// Wire command-specific dependencies based on command
	if cmd == "read" && isURL(cli.Read.Target) {
		fetcher, err := newFetcher(cli.Read.Render)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer fetcher.Close()

		if logger != nil {
			fetcher = lucidslog.NewLoggingFetcher(fetcher, logger)
		}
		deps.Fetcher = fetcher
	}

	if cmd == "refresh" {
		var fetcher lucid.Fetcher = lucidhttp.NewFetcher()
		defer fetcher.Close()

		if logger != nil {
			fetcher = lucidslog.NewLoggingFetcher(fetcher, logger)
		}
		deps.Fetcher = fetcher

		// Rate limit refreshes to 1 request per second per domain
		deps.Ingestor = &ingest.Ingestor{
			Feeds:       deps.Feeds,
			Fetcher:     fetcher,
			Extractor:   deps.Extractor,
			Articles:    m.ArticleService,
			RateLimiter: ingest.NewDomainLimiter(1.0),
			Concurrency: cli.Refresh.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// renderDelay gives client-side rendering a chance to settle before the
// rendered HTML is captured.
const renderDelay = 500 * time.Millisecond

// newExtractor builds the extraction chain: the scoring engine first,
// then the wrapper libraries for pages it rejects.
func newExtractor() lucid.Extractor {
	return lucid.NewFallbackExtractor(
		goquery.NewExtractor(),
		readability.NewExtractor(),
		trafilatura.NewExtractor(),
	)
}

// newFetcher returns a browser-backed fetcher when render is set and a
// plain HTTP fetcher otherwise.
func newFetcher(render bool) (lucid.Fetcher, error) {
	if render {
		return rod.NewFetcher(rod.WithRenderDelay(renderDelay))
	}
	return lucidhttp.NewFetcher(), nil
}

func defaultDBPath() string {
	if path := os.Getenv("LUCID_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "lucid.db"
	}
	dir := filepath.Join(home, ".lucid")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "lucid.db")
}
