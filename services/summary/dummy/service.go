package dummysummary

import (
	"context"

	"github.com/jaykayhn/jindo/core"
)

// Service is a canned summarizer for tests: it records the last prompt and
// returns whatever it was told to.
type Service struct {
	Summary    string
	Err        error
	LastPrompt string
}

var _ core.Summarizer = (*Service)(nil)

func NewService() *Service {
	return &Service{Summary: "Keep up the good work!"}
}

func (svc *Service) Summarize(ctx context.Context, prompt string) (string, error) {
	svc.LastPrompt = prompt
	if svc.Err != nil {
		return "", svc.Err
	}
	return svc.Summary, nil
}
