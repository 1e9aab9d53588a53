package lucid_test

import (
	"errors"
	"testing"

	"github.com/lucidread/lucid"
	"github.com/lucidread/lucid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackExtractor(t *testing.T) {
	t.Parallel()

	t.Run("returns first usable result", func(t *testing.T) {
		t.Parallel()

		first := &mock.Extractor{
			ExtractFn: func(html string, opts lucid.Options) (*lucid.Result, error) {
				return &lucid.Result{Reason: lucid.ReasonOK, HTML: "<p>first</p>"}, nil
			},
		}
		second := &mock.Extractor{
			ExtractFn: func(html string, opts lucid.Options) (*lucid.Result, error) {
				t.Fatal("second extractor should not be called")
				return nil, nil
			},
		}

		chain := lucid.NewFallbackExtractor(first, second)

		result, err := chain.Extract("<html></html>", lucid.Options{})
		require.NoError(t, err)
		assert.True(t, result.OK())
		assert.Equal(t, "<p>first</p>", result.HTML)
	})

	t.Run("falls through unusable results", func(t *testing.T) {
		t.Parallel()

		first := &mock.Extractor{
			ExtractFn: func(html string, opts lucid.Options) (*lucid.Result, error) {
				return &lucid.Result{Reason: lucid.ReasonNoCandidates}, nil
			},
		}
		second := &mock.Extractor{
			ExtractFn: func(html string, opts lucid.Options) (*lucid.Result, error) {
				return &lucid.Result{Reason: lucid.ReasonOK, HTML: "<p>second</p>"}, nil
			},
		}

		chain := lucid.NewFallbackExtractor(first, second)

		result, err := chain.Extract("<html></html>", lucid.Options{})
		require.NoError(t, err)
		assert.Equal(t, "<p>second</p>", result.HTML)
	})

	t.Run("falls through errors", func(t *testing.T) {
		t.Parallel()

		first := &mock.Extractor{
			ExtractFn: func(html string, opts lucid.Options) (*lucid.Result, error) {
				return nil, errors.New("parse failed")
			},
		}
		second := &mock.Extractor{
			ExtractFn: func(html string, opts lucid.Options) (*lucid.Result, error) {
				return &lucid.Result{Reason: lucid.ReasonOK, HTML: "<p>second</p>"}, nil
			},
		}

		chain := lucid.NewFallbackExtractor(first, second)

		result, err := chain.Extract("<html></html>", lucid.Options{})
		require.NoError(t, err)
		assert.Equal(t, "<p>second</p>", result.HTML)
	})

	t.Run("returns last unusable result when nothing succeeds", func(t *testing.T) {
		t.Parallel()

		first := &mock.Extractor{
			ExtractFn: func(html string, opts lucid.Options) (*lucid.Result, error) {
				return &lucid.Result{Reason: lucid.ReasonNoCandidates}, nil
			},
		}
		second := &mock.Extractor{
			ExtractFn: func(html string, opts lucid.Options) (*lucid.Result, error) {
				return &lucid.Result{Reason: lucid.ReasonTooSmall, Confidence: 0.41}, nil
			},
		}

		chain := lucid.NewFallbackExtractor(first, second)

		result, err := chain.Extract("<html></html>", lucid.Options{})
		require.NoError(t, err)
		assert.False(t, result.OK())
		assert.Equal(t, lucid.ReasonTooSmall, result.Reason)
	})

	t.Run("returns error when every extractor fails", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Extractor{
			ExtractFn: func(html string, opts lucid.Options) (*lucid.Result, error) {
				return nil, errors.New("parse failed")
			},
		}

		chain := lucid.NewFallbackExtractor(failing)

		_, err := chain.Extract("<html></html>", lucid.Options{})
		assert.Error(t, err)
	})

	t.Run("rejects empty chain", func(t *testing.T) {
		t.Parallel()

		chain := lucid.NewFallbackExtractor()

		_, err := chain.Extract("<html></html>", lucid.Options{})
		assert.Equal(t, lucid.EINVALID, lucid.ErrorCode(err))
	})
}
