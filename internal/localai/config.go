package localai

import (
	"fmt"
	"strings"
	"time"

	"github.com/roivaz/local-ai-mcp/internal/chat"
	"github.com/roivaz/local-ai-mcp/internal/config"
)

// Settings is the configuration resolved for one call.
type Settings struct {
	Chat       chat.Config
	ClientKind string
	Timeout    time.Duration
}

// SettingsFunc resolves Settings. The service calls it on every request.
type SettingsFunc func() (Settings, error)

// LoadSettings reads the current viper/environment values.
func LoadSettings() (Settings, error) {
	timeout, err := parseDuration(config.AskTimeout(), 0)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid ask_timeout: %w", err)
	}
	return Settings{
		Chat: chat.Config{
			BaseURL: config.OpenAIBaseURL(),
			APIKey:  config.OpenAIAPIKey(),
			Model:   config.OpenAIModel(),
		},
		ClientKind: config.ChatClient(),
		Timeout:    timeout,
	}, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	return d, nil
}
