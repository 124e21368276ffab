package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type LocalAIService interface {
	Ask(ctx context.Context, prompt, model string) (string, error)
}

type AskLocalAIHandler struct{ Service LocalAIService }

// ToolAdapter returns the reply, or the failure text, as ordinary text
// content. Callers tell the two apart by the error prefix only. A missing or
// non-string prompt is rejected before any downstream call; an empty string
// is forwarded as-is.
func (h *AskLocalAIHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	model := req.GetString("model", "")

	reply, err := h.Service.Ask(ctx, prompt, model)
	if err != nil {
		return mcp.NewToolResultText(err.Error()), nil
	}
	return mcp.NewToolResultText(reply), nil
}
