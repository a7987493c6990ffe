package tools

import (
	"context"
)

// Deps bundles the collaborators the standard tools are built from.
type Deps struct {
	Generator  Generator
	Wikipedia  Searcher
	DuckDuckGo Searcher
	Fetcher    Fetcher
	Table      TableSink
	Model      string // model used by tools that call the LLM; empty for default
}

// Manager owns the tool registry and the standard tool set.
type Manager struct {
	registry *Registry
	logger   Logger
}

// NewManager creates a tool manager with the four standard tools registered.
func NewManager(deps Deps) *Manager {
	m := &Manager{
		registry: NewRegistry(),
		logger:   NewDefaultLogger(false), // Default to non-verbose logging
	}
	m.registry.SetLogger(m.logger)

	m.registry.Register(NewWebSearchTool(deps.Wikipedia, deps.DuckDuckGo))
	m.registry.Register(NewProcessWebpageTool(deps.Fetcher, deps.Generator, deps.Model))
	m.registry.Register(NewResearchNotesTool(deps.Generator, deps.Model))
	m.registry.Register(NewKnowledgeGraphTool(deps.Generator, deps.Model, deps.Table))

	return m
}

// SetLogger sets the logger for the manager and its registry
func (m *Manager) SetLogger(logger Logger) {
	m.logger = logger
	m.registry.SetLogger(logger)
}

// EnableVerboseLogging enables verbose logging to stdout
func (m *Manager) EnableVerboseLogging() {
	m.SetLogger(NewDefaultLogger(true))
}

// EnableFileLogging enables logging to a file
func (m *Manager) EnableFileLogging(filename string, verbose bool) error {
	logger, err := NewFileLogger(filename, verbose)
	if err != nil {
		return err
	}
	m.SetLogger(logger)
	return nil
}

// Execute runs a tool by name with the given arguments
func (m *Manager) Execute(ctx context.Context, toolName string, args map[string]any) (ToolResult, error) {
	return m.registry.Execute(ctx, toolName, args)
}

// GetAllTools returns all registered tools
func (m *Manager) GetAllTools() []Tool {
	return m.registry.List()
}

// GetToolHelp returns help text for a specific tool
func (m *Manager) GetToolHelp(toolName string) (string, error) {
	return m.registry.GetToolHelp(toolName)
}

// GetAllHelp returns formatted help text for all tools
func (m *Manager) GetAllHelp() string {
	return m.registry.GetAllHelp()
}

// Schema describes a tool for LLM function calling.
type Schema struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Schemas returns JSON schemas for all tools (for LLM function calling)
func (m *Manager) Schemas() []Schema {
	tools := m.registry.List()
	schemas := make([]Schema, 0, len(tools))

	for _, tool := range tools {
		schemas = append(schemas, toolToSchema(tool))
	}

	return schemas
}

// toolToSchema converts a tool to a JSON schema for LLM function calling
func toolToSchema(tool Tool) Schema {
	properties := make(map[string]any)
	required := []string{}

	for _, param := range tool.Parameters() {
		paramSchema := map[string]any{
			"type":        convertTypeToJSONSchema(param.Type),
			"description": param.Description,
		}

		if param.Default != nil {
			paramSchema["default"] = param.Default
		}

		properties[param.Name] = paramSchema

		if param.Required {
			required = append(required, param.Name)
		}
	}

	return Schema{
		Name:        tool.Name(),
		Description: tool.Description(),
		Parameters: map[string]any{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}

// convertTypeToJSONSchema converts Go types to JSON schema types
func convertTypeToJSONSchema(goType string) string {
	switch goType {
	case "string":
		return "string"
	case "int", "int32", "int64":
		return "integer"
	case "float32", "float64":
		return "number"
	case "bool":
		return "boolean"
	case "[]string":
		return "array"
	case "map":
		return "object"
	default:
		return "string" // Default to string for unknown types
	}
}
