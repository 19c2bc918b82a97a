package core

import "context"

// Summarizer is any service that can turn a report prompt into a short
// natural-language summary. Implementations are best-effort collaborators:
// callers must treat every error as non-fatal.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}
