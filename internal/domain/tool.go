package domain

// ToolDescriptor declares a callable tool as advertised to MCP clients,
// compliant with the Model Context Protocol (MCP).
// Based on MCP Spec 2025-03-26: https://modelcontextprotocol.io/specification/2025-03-26
type ToolDescriptor struct {
	// Name uniquely identifies the tool within the MCP server.
	Name string `json:"name"`

	// Description provides a natural language explanation of what the tool does.
	// This is crucial for the LLM to understand when to use the tool.
	Description string `json:"description"`

	// InputSchema defines the structure of the arguments the tool expects.
	// Uses JSON Schema format. Every tool declares an "object" at the top level.
	InputSchema JSONSchemaProps `json:"inputSchema"`
}

// JSONSchemaProps represents the properties of a JSON schema,
// used for the input definitions of MCP tools.
// This is a deliberately small subset: only the keywords the tool
// catalog declares are supported, and the validator enforces exactly
// these keywords and no others.
type JSONSchemaProps struct {
	Type        string                     `json:"type"`                  // "object", "string", "number", "integer", "boolean"
	Description string                     `json:"description,omitempty"` // Shown to the LLM next to the field
	Properties  map[string]JSONSchemaProps `json:"properties,omitempty"`  // For type "object"
	Required    []string                   `json:"required,omitempty"`    // For type "object"
	Enum        []string                   `json:"enum,omitempty"`        // Exact allowed values, case-sensitive
	Minimum     *float64                   `json:"minimum,omitempty"`     // Inclusive lower bound for numeric types
	Maximum     *float64                   `json:"maximum,omitempty"`     // Inclusive upper bound for numeric types
	Default     any                        `json:"default,omitempty"`     // Applied when the caller omits the field
}
