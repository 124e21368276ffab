package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/local-ai-mcp/internal/config"
	"github.com/roivaz/local-ai-mcp/internal/logging"
	"github.com/roivaz/local-ai-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "mcp-server",
		Short:        "MCP server forwarding prompts to a local OpenAI-compatible AI server",
		SilenceUsage: true,
		RunE:         run,
	}

	root.PersistentFlags().String("openai-base-url", "", "OpenAI-compatible API base URL (env OPENAI_BASE_URL)")
	root.PersistentFlags().String("openai-model", "", "Default model for ask_local_ai (env OPENAI_MODEL)")
	root.PersistentFlags().String("chat-client", "", "Chat client implementation: langchaingo or go-openai")
	root.PersistentFlags().String("ask-timeout", "", "Timeout for each chat completion, e.g. 90s (default none)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info or error")
	root.PersistentFlags().String("mcp-transport", "", "MCP transport: stdio or http")
	root.PersistentFlags().String("mcp-host", "", "HTTP host (http transport)")
	root.PersistentFlags().Int("mcp-port", 8000, "HTTP port (http transport)")
	root.PersistentFlags().String("mcp-endpoint-path", "", "HTTP endpoint path (http transport)")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	base, err := logging.NewLogger(config.LogLevel())
	if err != nil {
		return err
	}
	return start(logging.New(base).WithName("mcp-server"))
}

// start builds the MCP server from the current configuration and serves it on
// the configured transport until it stops.
func start(logger logging.Logger) error {
	if config.UsingPlaceholderAPIKey() {
		logger.Info("OPENAI_API_KEY is not set; sending placeholder key", "baseURL", config.OpenAIBaseURL())
	}

	srv := mcp.New(mcp.DefaultConfig(logger))

	switch transport := config.Transport(); transport {
	case "stdio":
		logger.Info("MCP server serving on stdio", "model", config.OpenAIModel())
		return srv.ServeStdio()
	case "http":
		return serveHTTP(srv, logger)
	default:
		return fmt.Errorf("unknown transport %q", transport)
	}
}

func serveHTTP(srv *mcp.Server, logger logging.Logger) error {
	addr := config.Host() + ":" + strconv.Itoa(config.Port())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP server listening", "addr", addr, "path", config.EndpointPath())
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
