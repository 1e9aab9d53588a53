package mock

import "github.com/lucidread/lucid"

var _ lucid.Converter = (*Converter)(nil)

// Converter is a mock implementation of lucid.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
