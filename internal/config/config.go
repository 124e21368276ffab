package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultOpenAIBaseURL = "http://127.0.0.1:8045/v1"
	DefaultOpenAIModel   = "claude-sonnet-4-5"

	// PlaceholderAPIKey is sent when OPENAI_API_KEY is unset. Local
	// OpenAI-compatible servers usually ignore the key; anything else needs
	// a real one.
	PlaceholderAPIKey = "not-configured"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyOpenAIBaseURL, DefaultOpenAIBaseURL)
	viper.SetDefault(KeyOpenAIAPIKey, PlaceholderAPIKey)
	viper.SetDefault(KeyOpenAIModel, DefaultOpenAIModel)
	viper.SetDefault(KeyChatClient, "langchaingo")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, "stdio")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyEndpointPath, "/mcp")
}

func OpenAIBaseURL() string { return viper.GetString(KeyOpenAIBaseURL) }
func OpenAIAPIKey() string  { return viper.GetString(KeyOpenAIAPIKey) }
func OpenAIModel() string   { return viper.GetString(KeyOpenAIModel) }
func ChatClient() string    { return viper.GetString(KeyChatClient) }
func AskTimeout() string    { return viper.GetString(KeyAskTimeout) }
func LogLevel() string      { return viper.GetString(KeyLogLevel) }
func Transport() string     { return viper.GetString(KeyTransport) }
func Host() string          { return viper.GetString(KeyHost) }
func Port() int             { return viper.GetInt(KeyPort) }
func EndpointPath() string  { return viper.GetString(KeyEndpointPath) }

// UsingPlaceholderAPIKey reports whether no API key was configured.
func UsingPlaceholderAPIKey() bool {
	return OpenAIAPIKey() == PlaceholderAPIKey
}
