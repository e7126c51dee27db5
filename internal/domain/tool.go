package domain

// Tool describes a callable operation exposed through the Model Context
// Protocol (MCP): a unique name, a natural-language description for the LLM,
// and a JSON-Schema-shaped declaration of its input.
type Tool struct {
	// Name MUST be unique within the MCP server (e.g. "get_trip").
	Name string `json:"name"`

	// Description explains what the tool does so the LLM knows when to call it.
	Description string `json:"description"`

	// InputSchema declares the arguments the tool accepts.
	InputSchema JSONSchemaProps `json:"input_schema"`
}

// JSONSchemaProps is the subset of JSON Schema this server needs to advertise
// and validate tool inputs. Top-level schemas are objects whose Properties are
// scalar fields ("string" or "integer").
type JSONSchemaProps struct {
	Type        string                     `json:"type"`
	Description string                     `json:"description,omitempty"`
	Properties  map[string]JSONSchemaProps `json:"properties,omitempty"`
	Required    []string                   `json:"required,omitempty"`
	Minimum     *float64                   `json:"minimum,omitempty"`
	Default     any                        `json:"default,omitempty"`
}

// Min is a convenience for populating JSONSchemaProps.Minimum inline.
func Min(v float64) *float64 {
	return &v
}

// TextSegment is one unit of text produced by a tool handler. Handlers may
// return zero, one, or many segments per call.
type TextSegment struct {
	Kind string `json:"kind"`
	Body string `json:"body"`
}

// Text builds a TextSegment of kind "text".
func Text(body string) TextSegment {
	return TextSegment{Kind: "text", Body: body}
}
