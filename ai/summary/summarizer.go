// Package summary generates the natural-language daily summary from the
// condensed AI input document.
package summary

import (
	"context"
	"time"

	"github.com/hrygo/restly/analyzer"
)

// Summarizer turns one day's AI input document into free-form text.
type Summarizer interface {
	Summarize(ctx context.Context, input analyzer.AIInput) (*Response, error)
}

// Response is a generated summary with its provenance.
type Response struct {
	Summary string
	Source  string // "llm" | "fallback_template"
	Latency time.Duration
}
