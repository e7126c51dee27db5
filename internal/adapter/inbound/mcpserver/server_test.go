package mcpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remuzel/polarsteps-mcp/internal/domain"
	"github.com/remuzel/polarsteps-mcp/internal/usecase"
)

// stubClient returns canned lookups so the bridge can be exercised without a
// network dependency.
type stubClient struct {
	user *domain.User
	trip *domain.Trip
}

func (s *stubClient) GetUserByUsername(ctx context.Context, username string) (usecase.UserResponse, error) {
	if s.user == nil {
		return usecase.UserResponse{IsError: true}, errors.New("status 404")
	}
	return usecase.UserResponse{User: s.user}, nil
}

func (s *stubClient) GetTripByID(ctx context.Context, tripID string) (usecase.TripResponse, error) {
	if s.trip == nil {
		return usecase.TripResponse{IsError: true}, errors.New("status 404")
	}
	return usecase.TripResponse{Trip: s.trip}, nil
}

func newTestServer(client usecase.TravelClient) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := usecase.NewRegistry()
	dispatcher := usecase.NewDispatcher(registry, client, logger)
	info := ConfigInfo{BaseURL: "https://api.example.com", TokenConfigured: true, LogLevel: "info"}
	return New(dispatcher, registry, info, logger)
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestToolHandlerWrapsSegments(t *testing.T) {
	user := &domain.User{
		ID:       12345,
		UUID:     "550e8400-e29b-41d4-a716-446655440000",
		Username: "testuser",
	}
	server := newTestServer(&stubClient{user: user})

	result, err := server.toolHandler("get_user")(context.Background(), callRequest(map[string]any{"username": "testuser"}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "text", text.Type)
	assert.Contains(t, text.Text, `"username":"testuser"`)
}

func TestToolHandlerDomainMiss(t *testing.T) {
	server := newTestServer(&stubClient{})

	result, err := server.toolHandler("get_trip")(context.Background(), callRequest(map[string]any{"trip_id": 1000000}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)
	text := result.Content[0].(mcp.TextContent)
	assert.Equal(t, "Could not find trip with ID: 1000000", text.Text)
}

func TestToolHandlerValidationFailure(t *testing.T) {
	server := newTestServer(&stubClient{})

	result, err := server.toolHandler("get_user")(context.Background(), callRequest(map[string]any{}))

	require.NoError(t, err)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text := result.Content[0].(mcp.TextContent)
	assert.Contains(t, text.Text, "username")
}

func TestToInputSchema(t *testing.T) {
	schema := toInputSchema(domain.JSONSchemaProps{
		Type: "object",
		Properties: map[string]domain.JSONSchemaProps{
			"trip_id": {Type: "integer", Description: "Numeric trip identifier", Minimum: domain.Min(1_000_000)},
			"n_steps": {Type: "integer", Default: 5, Minimum: domain.Min(0)},
			"query":   {Type: "string"},
		},
		Required: []string{"trip_id"},
	})

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"trip_id"}, schema.Required)

	tripID, ok := schema.Properties["trip_id"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "integer", tripID["type"])
	assert.Equal(t, "Numeric trip identifier", tripID["description"])
	assert.Equal(t, float64(1_000_000), tripID["minimum"])
	assert.NotContains(t, tripID, "default")

	nSteps := schema.Properties["n_steps"].(map[string]any)
	assert.Equal(t, 5, nSteps["default"])
	assert.Equal(t, float64(0), nSteps["minimum"])

	query := schema.Properties["query"].(map[string]any)
	assert.Equal(t, "string", query["type"])
	assert.NotContains(t, query, "description")
	assert.NotContains(t, query, "minimum")
}

func TestStaticResourceEchoesURI(t *testing.T) {
	server := newTestServer(&stubClient{})

	req := mcp.ReadResourceRequest{}
	req.Params.URI = helpResourceURI

	contents, err := server.staticResource(helpText)(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, helpResourceURI, text.URI)
	assert.Equal(t, "text/plain", text.MIMEType)
	assert.Contains(t, text.Text, "search_trips")
}

func TestConfigTextRedactsToken(t *testing.T) {
	server := newTestServer(&stubClient{})

	text := server.configText()
	assert.Contains(t, text, "base_url: https://api.example.com")
	assert.Contains(t, text, "remember_token: configured (redacted)")
	assert.False(t, strings.Contains(text, "secret"))

	server.info.TokenConfigured = false
	assert.Contains(t, server.configText(), "remember_token: not configured")
}
