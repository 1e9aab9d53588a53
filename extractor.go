package lucid

// Extractor identifies and extracts the main article content from an
// HTML page, removing boilerplate (navigation, footers, sidebars, ads).
type Extractor interface {
	// Extract processes raw HTML and returns the extraction outcome.
	// An unusable page is not an error: it is reported as a Result
	// whose Reason explains the rejection. Errors are reserved for
	// input that cannot be parsed at all.
	Extract(html string, opts Options) (*Result, error)
}
