// Package mcpserver exposes the tool catalog over the Model Context
// Protocol using mark3labs/mcp-go, on both stdio and streamable HTTP
// transports.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	mcpGoServer "github.com/mark3labs/mcp-go/server"

	"github.com/tcehjaava/tmdb-mcp-server/internal/usecase"
)

// Name and Version identify the server to MCP clients during the
// initialize handshake and on the health endpoint.
const (
	Name    = "tmdb-mcp-server"
	Version = "0.1.0"
)

const endpointPath = "/mcp"

const instructions = "Query The Movie Database (TMDB): search and discover movies, " +
	"TV shows and people, and fetch details, credits, recommendations, trending " +
	"titles and genre lists. Results are compact JSON documents with absolute " +
	"image URLs."

// Server adapts the registered tools onto an mcp-go server instance.
type Server struct {
	mcp    *mcpGoServer.MCPServer
	logger *slog.Logger
}

// New builds the MCP server and registers every tool the registry exposes.
// The tool list is fixed for the lifetime of the process, so the server
// advertises no listChanged capability.
func New(
	listUC *usecase.ListToolsUseCase,
	dispatchUC *usecase.DispatchToolUseCase,
	logger *slog.Logger,
) (*Server, error) {
	s := mcpGoServer.NewMCPServer(
		Name,
		Version,
		mcpGoServer.WithToolCapabilities(false),
		mcpGoServer.WithRecovery(),
		mcpGoServer.WithInstructions(instructions),
	)

	descriptors := listUC.Execute()
	for _, desc := range descriptors {
		rawSchema, err := json.Marshal(desc.InputSchema)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal input schema for tool %q: %w", desc.Name, err)
		}
		s.AddTool(mcp.Tool{
			Name:           desc.Name,
			Description:    desc.Description,
			RawInputSchema: rawSchema,
		}, callHandler(dispatchUC, desc.Name))
	}

	srvLogger := logger.With("component", "mcp_server")
	srvLogger.Info("MCP server initialized", slog.Int("tools", len(descriptors)))

	return &Server{mcp: s, logger: srvLogger}, nil
}

// callHandler bridges one tool to the dispatcher. The dispatcher reports
// every failure through the result payload, so the handler never returns a
// Go error; returning one would surface as a protocol-level fault instead
// of a tool result the client can show.
func callHandler(dispatchUC *usecase.DispatchToolUseCase, toolName string) mcpGoServer.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := dispatchUC.Execute(ctx, toolName, req.GetArguments())
		if result.IsError {
			return mcp.NewToolResultError(result.Content), nil
		}
		return mcp.NewToolResultText(result.Content), nil
	}
}

// ServeStdio speaks MCP over the given reader/writer pair until the context
// is cancelled or the reader closes. Nothing but protocol frames may be
// written to out, so callers must point logging elsewhere first.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("MCP stdio transport listening")
	return mcpGoServer.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

// Handler returns the HTTP handler for the streamable HTTP transport. The
// MCP endpoint is stateless, so each request carries its own transport
// session and no session state survives between calls.
func (s *Server) Handler() http.Handler {
	streamable := mcpGoServer.NewStreamableHTTPServer(
		s.mcp,
		mcpGoServer.WithEndpointPath(endpointPath),
		mcpGoServer.WithStateLess(true),
	)

	mux := http.NewServeMux()
	mux.Handle(endpointPath, streamable)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

type healthResponse struct {
	Status    string `json:"status"`
	Server    string `json:"server"`
	Version   string `json:"version"`
	Transport string `json:"transport"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := healthResponse{Status: "ok", Server: Name, Version: Version, Transport: "http"}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn("Failed to write health response", slog.Any("error", err))
	}
}
