package lucid

// Ensure FallbackExtractor implements Extractor at compile time.
var _ Extractor = (*FallbackExtractor)(nil)

// FallbackExtractor tries a chain of extractors in order and returns the
// first usable result. An extractor that errors or reports an unusable
// page passes the input to the next one in the chain.
type FallbackExtractor struct {
	extractors []Extractor
}

// NewFallbackExtractor creates a FallbackExtractor that consults the
// given extractors in order.
func NewFallbackExtractor(extractors ...Extractor) *FallbackExtractor {
	return &FallbackExtractor{extractors: extractors}
}

// Extract runs the chain. If no extractor produces a usable result, the
// last unusable Result is returned so the caller sees the final reason;
// an error is returned only when every extractor failed with one.
func (f *FallbackExtractor) Extract(html string, opts Options) (*Result, error) {
	if len(f.extractors) == 0 {
		return nil, Errorf(EINVALID, "no extractors configured")
	}

	var lastResult *Result
	var lastErr error

	for _, e := range f.extractors {
		result, err := e.Extract(html, opts)
		if err != nil {
			lastErr = err
			continue
		}
		if result.OK() {
			return result, nil
		}
		lastResult = result
	}

	if lastResult != nil {
		return lastResult, nil
	}
	return nil, lastErr
}
