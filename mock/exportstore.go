package mock

import (
	"context"

	"github.com/lucidread/lucid"
)

var _ lucid.ExportStore = (*ExportStore)(nil)

// ExportStore is a mock implementation of lucid.ExportStore.
type ExportStore struct {
	SaveFn   func(ctx context.Context, article *lucid.Article) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ExportStore) Save(ctx context.Context, article *lucid.Article) error {
	return s.SaveFn(ctx, article)
}

func (s *ExportStore) Commit() error {
	return s.CommitFn()
}

func (s *ExportStore) Abort() error {
	return s.AbortFn()
}
