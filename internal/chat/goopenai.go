package chat

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient talks to the endpoint through sashabaranov/go-openai.
type OpenAIClient struct {
	cfg    Config
	client *openai.Client
}

func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	config := openai.DefaultConfig(cfg.APIKey)
	config.BaseURL = cfg.BaseURL
	return &OpenAIClient{cfg: cfg, client: openai.NewClientWithConfig(config)}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.model(req),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
