// Package chattest provides a fake OpenAI-compatible chat completion endpoint
// for tests.
package chattest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/tidwall/gjson"
)

// Captured is one request received by the fake server.
type Captured struct {
	Path          string
	Authorization string
	Body          gjson.Result
}

// Model returns the requested model.
func (c Captured) Model() string { return c.Body.Get("model").String() }

// ReplyFunc decides the assistant content for a request. Returning ok=false
// produces a response with an empty choices array.
type ReplyFunc func(req Captured) (content string, ok bool)

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Captured
}

// NewServer starts a fake endpoint answering POST .../chat/completions. It is
// closed automatically when the test finishes.
func NewServer(t testing.TB, reply ReplyFunc) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		captured := Captured{
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Body:          gjson.ParseBytes(raw),
		}
		s.mu.Lock()
		s.requests = append(s.requests, captured)
		s.mu.Unlock()

		content, ok := reply(captured)
		choices := []map[string]any{}
		if ok {
			choices = append(choices, map[string]any{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   captured.Model(),
			"choices": choices,
			"usage": map[string]any{
				"prompt_tokens":     1,
				"completion_tokens": 1,
				"total_tokens":      2,
			},
		})
	}))
	t.Cleanup(s.Close)
	return s
}

// Static always answers with content.
func Static(content string) ReplyFunc {
	return func(Captured) (string, bool) { return content, true }
}

// Empty answers without choices.
func Empty() ReplyFunc {
	return func(Captured) (string, bool) { return "", false }
}

// BaseURL mirrors the "/v1" root real servers expose.
func (s *Server) BaseURL() string { return s.URL + "/v1" }

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Captured {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Captured, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent request. It fails the test when none arrived.
func (s *Server) Last(t testing.TB) Captured {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatalf("fake chat server received no requests")
	}
	return reqs[len(reqs)-1]
}
