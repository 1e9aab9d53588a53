package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/lucidread/lucid"
)

// Ensure ExportStore implements lucid.ExportStore at compile time.
var _ lucid.ExportStore = (*ExportStore)(nil)

// ExportStore implements lucid.ExportStore with atomic update semantics.
// Articles are saved to a temporary directory, then moved atomically on Commit.
type ExportStore struct {
	baseDir   string
	name      string
	converter lucid.Converter
}

// NewExportStore creates a new ExportStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExportStore(baseDir, name string, converter lucid.Converter) *ExportStore {
	return &ExportStore{
		baseDir:   baseDir,
		name:      name,
		converter: converter,
	}
}

func (s *ExportStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ExportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *ExportStore) Save(ctx context.Context, article *lucid.Article) error {
	relPath, err := URLToPath(article.SourceURL)
	if err != nil {
		return err
	}

	body, err := articleBody(article, s.converter)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := FormatArticle(article, body)
	return os.WriteFile(fullPath, []byte(content), 0644)
}

func (s *ExportStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *ExportStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
