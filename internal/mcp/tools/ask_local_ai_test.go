package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

type fakeService struct {
	called        bool
	prompt, model string
	reply         string
	err           error
}

func (f *fakeService) Ask(_ context.Context, prompt, model string) (string, error) {
	f.called = true
	f.prompt, f.model = prompt, model
	return f.reply, f.err
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = "ask_local_ai"
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %+v", res)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestAskLocalAIHandlerSuccess(t *testing.T) {
	svc := &fakeService{reply: "4"}
	h := &AskLocalAIHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"prompt": "2+2?"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resultText(t, res); got != "4" {
		t.Fatalf("expected 4, got %q", got)
	}
	if res.IsError {
		t.Fatalf("success must not be flagged as error")
	}
	if svc.prompt != "2+2?" || svc.model != "" {
		t.Fatalf("unexpected arguments forwarded: prompt=%q model=%q", svc.prompt, svc.model)
	}
}

func TestAskLocalAIHandlerForwardsModel(t *testing.T) {
	svc := &fakeService{reply: "ok"}
	h := &AskLocalAIHandler{Service: svc}

	if _, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"prompt": "hi", "model": "gpt-x"})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.model != "gpt-x" {
		t.Fatalf("expected model gpt-x, got %q", svc.model)
	}
}

func TestAskLocalAIHandlerFailureIsPlainText(t *testing.T) {
	svc := &fakeService{err: errors.New("Error connecting to local AI server: connection refused")}
	h := &AskLocalAIHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"prompt": "hello"}))
	if err != nil {
		t.Fatalf("failure must not escape as an error: %v", err)
	}
	if got := resultText(t, res); got != "Error connecting to local AI server: connection refused" {
		t.Fatalf("unexpected text %q", got)
	}
	if res.IsError {
		t.Fatalf("failure text shares the success channel")
	}
}

func TestAskLocalAIHandlerRejectsMissingOrNonStringPrompt(t *testing.T) {
	cases := map[string]map[string]any{
		"missing":    {},
		"non-string": {"prompt": 42},
		"null":       {"prompt": nil},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			svc := &fakeService{reply: "downstream was called"}
			h := &AskLocalAIHandler{Service: svc}

			res, err := h.ToolAdapter(context.Background(), callRequest(args))
			if err != nil {
				t.Fatalf("validation failure must not escape as an error: %v", err)
			}
			if !res.IsError {
				t.Fatalf("expected tool error result, got %+v", res)
			}
			if got := resultText(t, res); got == "downstream was called" {
				t.Fatalf("service must not be called for invalid prompt")
			}
			if svc.called {
				t.Fatalf("service was called with prompt %q", svc.prompt)
			}
		})
	}
}

func TestAskLocalAIHandlerForwardsExplicitEmptyPrompt(t *testing.T) {
	svc := &fakeService{reply: "ok"}
	h := &AskLocalAIHandler{Service: svc}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"prompt": ""}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError || !svc.called || svc.prompt != "" {
		t.Fatalf("expected empty prompt forwarded, called=%v isError=%v", svc.called, res.IsError)
	}
}

func TestAskLocalAIHandlerIgnoresNonStringModel(t *testing.T) {
	svc := &fakeService{reply: "ok"}
	h := &AskLocalAIHandler{Service: svc}

	if _, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"prompt": "hi", "model": 7})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.model != "" {
		t.Fatalf("expected default model for non-string model, got %q", svc.model)
	}
}
