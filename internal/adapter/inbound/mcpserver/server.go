// Package mcpserver bridges the tool registry and dispatcher onto a
// mark3labs/mcp-go server, which carries the actual MCP transport
// (stdio or SSE).
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpGoServer "github.com/mark3labs/mcp-go/server"

	"github.com/remuzel/polarsteps-mcp/internal/domain"
	"github.com/remuzel/polarsteps-mcp/internal/usecase"
)

const (
	helpResourceURI   = "polarsteps://help"
	configResourceURI = "polarsteps://config"
)

const helpText = `Polarsteps MCP server.

Tools: get_user, get_user_social_status, get_travel_stats, get_trips,
search_trips, get_trip, get_trip_log.

Identifier lookups (username, trip_id) are exact; search_trips accepts a
fuzzy query against trip names and summaries.

Setup: set the POLARSTEPS_REMEMBER_TOKEN environment variable to the
remember_token cookie of a logged-in polarsteps.com session.`

// ConfigInfo is the non-secret configuration echoed through the
// polarsteps://config resource.
type ConfigInfo struct {
	BaseURL         string
	TokenConfigured bool
	LogLevel        string
}

// Server registers tools and resources on an MCP server instance.
type Server struct {
	dispatcher *usecase.Dispatcher
	registry   *usecase.Registry
	info       ConfigInfo
	logger     *slog.Logger
}

// New creates the bridge.
func New(dispatcher *usecase.Dispatcher, registry *usecase.Registry, info ConfigInfo, logger *slog.Logger) *Server {
	return &Server{
		dispatcher: dispatcher,
		registry:   registry,
		info:       info,
		logger:     logger.With("component", "mcpserver"),
	}
}

// Register attaches every registry tool plus the help and config resources to
// the given MCP server.
func (s *Server) Register(srv *mcpGoServer.MCPServer) {
	for _, tool := range s.registry.List() {
		srv.AddTool(mcp.Tool{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: toInputSchema(tool.InputSchema),
		}, s.toolHandler(tool.Name))
	}
	s.logger.Info("Tools registered", slog.Int("count", len(s.registry.List())))

	srv.AddResource(mcp.NewResource(helpResourceURI, "Polarsteps Help",
		mcp.WithResourceDescription("Usage documentation for the Polarsteps MCP server"),
		mcp.WithMIMEType("text/plain"),
	), s.staticResource(helpText))

	srv.AddResource(mcp.NewResource(configResourceURI, "Polarsteps Configuration",
		mcp.WithResourceDescription("Current server configuration, credentials redacted"),
		mcp.WithMIMEType("text/plain"),
	), s.staticResource(s.configText()))
}

// toolHandler adapts the dispatcher's ToolResult envelope to mcp-go's
// CallToolResult. The dispatcher never fails, so neither does the handler.
func (s *Server) toolHandler(name string) mcpGoServer.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := s.dispatcher.Dispatch(ctx, name, request.GetArguments())
		content := make([]mcp.Content, 0, len(result.Segments))
		for _, segment := range result.Segments {
			content = append(content, mcp.TextContent{Type: "text", Text: segment.Body})
		}
		return &mcp.CallToolResult{Content: content, IsError: result.IsError}, nil
	}
}

func (s *Server) staticResource(text string) mcpGoServer.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     text,
			},
		}, nil
	}
}

func (s *Server) configText() string {
	token := "not configured"
	if s.info.TokenConfigured {
		token = "configured (redacted)"
	}
	return fmt.Sprintf("base_url: %s\nremember_token: %s\nlog_level: %s", s.info.BaseURL, token, s.info.LogLevel)
}

// toInputSchema converts the domain schema descriptor to the generic property
// map mcp-go advertises through tools/list.
func toInputSchema(schema domain.JSONSchemaProps) mcp.ToolInputSchema {
	properties := make(map[string]any, len(schema.Properties))
	for name, prop := range schema.Properties {
		p := map[string]any{"type": prop.Type}
		if prop.Description != "" {
			p["description"] = prop.Description
		}
		if prop.Minimum != nil {
			p["minimum"] = *prop.Minimum
		}
		if prop.Default != nil {
			p["default"] = prop.Default
		}
		properties[name] = p
	}
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: properties,
		Required:   schema.Required,
	}
}
