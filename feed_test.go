package lucid_test

import (
	"regexp"
	"testing"

	"github.com/lucidread/lucid"
	"github.com/stretchr/testify/assert"
)

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter passes everything", func(t *testing.T) {
		t.Parallel()

		var f *lucid.URLFilter
		assert.True(t, f.Match("https://example.com/post/1"))
	})

	t.Run("include patterns restrict matches", func(t *testing.T) {
		t.Parallel()

		f := &lucid.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/post/`)},
		}

		assert.True(t, f.Match("https://example.com/post/1"))
		assert.False(t, f.Match("https://example.com/about"))
	})

	t.Run("exclude patterns reject matches", func(t *testing.T) {
		t.Parallel()

		f := &lucid.URLFilter{
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/sponsored/`)},
		}

		assert.True(t, f.Match("https://example.com/post/1"))
		assert.False(t, f.Match("https://example.com/sponsored/deal"))
	})

	t.Run("exclude applies after include", func(t *testing.T) {
		t.Parallel()

		f := &lucid.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/post/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`draft`)},
		}

		assert.True(t, f.Match("https://example.com/post/1"))
		assert.False(t, f.Match("https://example.com/post/draft-2"))
	})
}
