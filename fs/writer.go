// Package fs provides file-based export of archived articles.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucidread/lucid"
)

// URLToPath converts an article URL to a relative file path.
// Example: https://example.com/posts/slow-proofing → posts/slow-proofing.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	// Remove leading slash
	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		path += "index.md"
	} else {
		path += ".md"
	}

	// Reject URLs whose dot segments would escape the output directory.
	if !filepath.IsLocal(path) {
		return "", lucid.Errorf(lucid.EINVALID, "path traversal in URL %q", rawURL)
	}

	return path, nil
}

// FormatArticle formats an article with YAML frontmatter followed by the
// given markdown body.
func FormatArticle(article *lucid.Article, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(article.SourceURL)
	b.WriteString("\ntitle: ")
	b.WriteString(article.Title)
	b.WriteString("\nsaved: ")
	b.WriteString(article.SavedAt.Format("2006-01-02"))
	b.WriteString("\nconfidence: ")
	b.WriteString(strconv.FormatFloat(article.Confidence, 'f', -1, 64))
	b.WriteString("\n---\n\n")
	b.WriteString(body)
	return b.String()
}

// Ensure Writer implements lucid.ArticleWriter at compile time.
var _ lucid.ArticleWriter = (*Writer)(nil)

// Writer writes articles as markdown files to a directory.
type Writer struct {
	baseDir   string
	converter lucid.Converter
}

// NewWriter creates a new Writer that writes to the given base directory.
// The converter turns archived article HTML into markdown bodies.
func NewWriter(baseDir string, converter lucid.Converter) *Writer {
	return &Writer{baseDir: baseDir, converter: converter}
}

// CreateArticle writes an article to disk as a markdown file.
func (w *Writer) CreateArticle(ctx context.Context, article *lucid.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(article.SourceURL)
	if err != nil {
		return err
	}

	body, err := articleBody(article, w.converter)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := FormatArticle(article, body)
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// articleBody converts the article's HTML to markdown, falling back to
// the plain text when no HTML was archived.
func articleBody(article *lucid.Article, converter lucid.Converter) (string, error) {
	if article.HTML == "" {
		return article.Text, nil
	}
	return converter.Convert(article.HTML)
}
