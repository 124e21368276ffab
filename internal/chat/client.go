// Package chat sends single-turn chat completion requests to
// OpenAI-compatible endpoints.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	KindLangChain = "langchaingo"
	KindGoOpenAI  = "go-openai"
)

// ErrEmptyResponse is returned when the service answers without any choice.
var ErrEmptyResponse = errors.New("no completion choices returned")

// Config holds what is needed to reach the endpoint.
type Config struct {
	// BaseURL is the API root, e.g. "http://127.0.0.1:8045/v1".
	BaseURL string
	APIKey  string
	// Model is used when a Request leaves its Model empty.
	Model string
}

type Request struct {
	Model  string
	Prompt string
}

// Client completes a single user message and returns the first choice.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// New builds the Client implementation named by kind.
func New(kind string, cfg Config) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindLangChain:
		return NewLangChainClient(cfg)
	case KindGoOpenAI:
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unknown chat client %q", kind)
	}
}

func (c Config) model(req Request) string {
	if req.Model != "" {
		return req.Model
	}
	return c.Model
}
