// Package localai forwards prompts to the configured OpenAI-compatible server.
package localai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roivaz/local-ai-mcp/internal/chat"
	"github.com/roivaz/local-ai-mcp/internal/logging"
)

// ClientFactory builds a chat client for one call.
type ClientFactory func(kind string, cfg chat.Config) (chat.Client, error)

// Service answers ask_local_ai calls. It holds no per-call state; settings
// and the chat client are rebuilt on every Ask.
type Service struct {
	settings  SettingsFunc
	newClient ClientFactory
	log       logging.Logger
}

type Option func(*Service)

// WithSettings replaces the viper-backed settings resolver.
func WithSettings(fn SettingsFunc) Option {
	return func(s *Service) { s.settings = fn }
}

// WithClientFactory replaces chat.New.
func WithClientFactory(fn ClientFactory) Option {
	return func(s *Service) { s.newClient = fn }
}

// New constructs a Service.
func New(log logging.Logger, opts ...Option) *Service {
	s := &Service{
		settings:  LoadSettings,
		newClient: chat.New,
		log:       log.WithName("localai"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask sends prompt as a single user message and returns the first choice.
// An empty model selects the configured default. Every failure is returned
// as *DownstreamCallFailed.
func (s *Service) Ask(ctx context.Context, prompt, model string) (string, error) {
	settings, err := s.settings()
	if err != nil {
		return "", downstreamFailure(err)
	}
	if model == "" {
		model = settings.Chat.Model
	}

	client, err := s.newClient(settings.ClientKind, settings.Chat)
	if err != nil {
		return "", downstreamFailure(err)
	}

	log := s.log.WithValues("model", model, "baseURL", settings.Chat.BaseURL, "client", settings.ClientKind)
	if log.DebugEnabled() {
		log.Debug("sending chat completion", "promptTokens", countPromptTokens(prompt))
	}

	ctx, cancel := withTimeout(ctx, settings.Timeout)
	defer cancel()
	start := time.Now()

	reply, err := client.Complete(ctx, chat.Request{Model: model, Prompt: prompt})
	if err != nil {
		err = annotateError(err, settings.Timeout)
		log.Error(err, "chat completion failed", "duration", time.Since(start))
		return "", downstreamFailure(err)
	}

	log.Debug("chat completion finished", "duration", time.Since(start), "replyChars", len(reply))
	return reply, nil
}

func withTimeout(ctx context.Context, to time.Duration) (context.Context, context.CancelFunc) {
	if to <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, to)
}

func annotateError(err error, to time.Duration) error {
	if to > 0 && errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("chat completion timed out after %s: %w", to, err)
	}
	return err
}
