// Package slog provides logging decorators for lucid services.
package slog

import (
	"log/slog"
	"time"

	"github.com/lucidread/lucid"
)

// Ensure LoggingExtractor implements lucid.Extractor.
var _ lucid.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of the outcome.
type LoggingExtractor struct {
	next   lucid.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next lucid.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string, opts lucid.Options) (res *lucid.Result, err error) {
	defer func(begin time.Time) {
		var reason string
		var confidence float64
		if res != nil {
			reason = res.Reason
			confidence = res.Confidence
		}
		e.logger.Info("extract",
			"bytes", len(html),
			"reason", reason,
			"confidence", confidence,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, opts)
}
