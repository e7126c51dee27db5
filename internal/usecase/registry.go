package usecase

import (
	"context"

	"github.com/remuzel/polarsteps-mcp/internal/domain"
)

// Handler executes one tool against arguments already validated by the tool's
// input schema.
type Handler func(ctx context.Context, client TravelClient, args map[string]any) ([]domain.TextSegment, error)

// RegisteredTool binds a tool's advertised metadata to its handler.
type RegisteredTool struct {
	domain.Tool
	Handler Handler
}

// Registry is the fixed table of tools this server exposes. Registration
// order is preserved for capability listings.
type Registry struct {
	order []string
	tools map[string]RegisteredTool
}

const (
	usernameDescription = "The user's username in Polarsteps"
	tripIDDescription   = "The unique identifier of a trip in Polarsteps"
)

// minTripID is the smallest identifier the Polarsteps API issues for trips;
// anything below it is rejected before a remote call is made.
const minTripID = 1_000_000

// NewRegistry builds the registry with every tool the server supports.
func NewRegistry() *Registry {
	r := &Registry{tools: make(map[string]RegisteredTool)}

	r.Register(domain.Tool{
		Name:        "get_user",
		Description: "Shows the user's Polarsteps profile",
		InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
			"username": {Type: "string", Description: usernameDescription},
		}, "username"),
	}, GetUser)

	r.Register(domain.Tool{
		Name:        "get_user_social_status",
		Description: "Summarizes the user's followers, followees and pending follow requests",
		InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
			"username": {Type: "string", Description: usernameDescription},
		}, "username"),
	}, GetUserSocialStatus)

	r.Register(domain.Tool{
		Name:        "get_travel_stats",
		Description: "Shows the user's travel statistics",
		InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
			"username": {Type: "string", Description: usernameDescription},
		}, "username"),
	}, GetTravelStats)

	r.Register(domain.Tool{
		Name:        "get_trips",
		Description: "Shows a highlight of the user's latest N trips",
		InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
			"username": {Type: "string", Description: usernameDescription},
			"n_trips":  {Type: "integer", Description: "The maximum number of trips to return", Minimum: domain.Min(1), Default: 5},
		}, "username"),
	}, GetTrips)

	r.Register(domain.Tool{
		Name:        "search_trips",
		Description: "Searches the user's trips by name and summary",
		InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
			"username": {Type: "string", Description: usernameDescription},
			"query":    {Type: "string", Description: "Search query to match against trip names and summaries"},
		}, "username", "query"),
	}, SearchTrips)

	r.Register(domain.Tool{
		Name:        "get_trip",
		Description: "Shows a specific trip with up to N of its steps",
		InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
			"trip_id": {Type: "integer", Description: tripIDDescription, Minimum: domain.Min(minTripID)},
			"n_steps": {Type: "integer", Description: "The maximum number of steps to include", Minimum: domain.Min(0), Default: 5},
		}, "trip_id"),
	}, GetTrip)

	r.Register(domain.Tool{
		Name:        "get_trip_log",
		Description: "Shows the travel log of a trip's named steps",
		InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
			"trip_id": {Type: "integer", Description: tripIDDescription, Minimum: domain.Min(minTripID)},
		}, "trip_id"),
	}, GetTripLog)

	return r
}

// Register adds or replaces a tool binding. The default set is installed by
// NewRegistry; tests may add extra bindings.
func (r *Registry) Register(tool domain.Tool, handler Handler) {
	if _, exists := r.tools[tool.Name]; !exists {
		r.order = append(r.order, tool.Name)
	}
	r.tools[tool.Name] = RegisteredTool{Tool: tool, Handler: handler}
}

// List returns every registered tool in registration order.
func (r *Registry) List() []RegisteredTool {
	list := make([]RegisteredTool, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.tools[name])
	}
	return list
}

// Find returns the tool registered under name.
func (r *Registry) Find(name string) (RegisteredTool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

func objectSchema(props map[string]domain.JSONSchemaProps, required ...string) domain.JSONSchemaProps {
	return domain.JSONSchemaProps{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}
