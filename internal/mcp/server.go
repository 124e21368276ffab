package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName    = "local-ai-mcp"
	ServerVersion = "1.0.0"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	toolDefinitions := map[string]mcp.Tool{
		"ask_local_ai": mcp.NewTool("ask_local_ai",
			mcp.WithDescription("Ask a question to the local OpenAI-compatible AI server. Returns the assistant's reply as text, or a message starting with 'Error connecting to local AI server:' when the call fails."),
			mcp.WithString("prompt",
				mcp.Required(),
				mcp.Description("The question or instruction for the AI."),
			),
			mcp.WithString("model",
				mcp.Description("Optional model name to use. Defaults to the server's configured model."),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			continue
		}
		mcpServer.AddTool(tool, adapter.ToolAdapter)
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio runs the server on stdin/stdout until the input closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
