package openaisummary

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/jaykayhn/jindo/core"
)

type service struct {
	client *openai.Client
	model  string
}

var _ core.Summarizer = (*service)(nil)

func NewService(conf *core.Config) core.Summarizer {
	return &service{
		client: openai.NewClient(conf.OpenAI.APIKey),
		model:  conf.OpenAI.Model,
	}
}

// Summarize sends the report prompt as a single chat turn. One attempt only;
// the caller owns the fallback.
func (svc *service) Summarize(ctx context.Context, prompt string) (string, error) {
	resp, err := svc.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: svc.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", errors.Wrap(err, "requesting chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
