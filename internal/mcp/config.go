package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/local-ai-mcp/internal/config"
	"github.com/roivaz/local-ai-mcp/internal/localai"
	"github.com/roivaz/local-ai-mcp/internal/logging"
	"github.com/roivaz/local-ai-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig(log logging.Logger) Config {
	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"ask_local_ai": &tools.AskLocalAIHandler{Service: localai.New(log)},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(config.EndpointPath()),
			server.WithStateLess(true),
		},
	}
}
