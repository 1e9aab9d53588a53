package mock

import "github.com/lucidread/lucid"

var _ lucid.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of lucid.Extractor.
type Extractor struct {
	ExtractFn func(html string, opts lucid.Options) (*lucid.Result, error)
}

func (e *Extractor) Extract(html string, opts lucid.Options) (*lucid.Result, error) {
	return e.ExtractFn(html, opts)
}
