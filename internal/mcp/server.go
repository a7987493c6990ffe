// Package mcp exposes the research tools over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"
	"log"
	"os"

	mcp "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"

	"ariadne/internal/llm"
	"ariadne/internal/search"
	"ariadne/internal/tools"
	"ariadne/internal/web"
)

// RunServer runs the MCP server over stdio.
func RunServer(toolModel string) error {
	// Log to stderr so it doesn't interfere with the stdio protocol
	log.SetOutput(os.Stderr)
	log.SetPrefix("[ARIADNE-MCP] ")
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return fmt.Errorf("MCP server mode requires stdin/stdout to be connected (not a terminal)")
	}

	openrouterKey := os.Getenv("OPENROUTER_API_KEY")
	if openrouterKey == "" {
		return fmt.Errorf("OPENROUTER_API_KEY is required for MCP server mode")
	}

	log.Println("Starting ariadne MCP server...")

	manager := tools.NewManager(tools.Deps{
		Generator:  llm.NewClient(openrouterKey),
		Wikipedia:  search.NewWikipedia(),
		DuckDuckGo: search.NewDuckDuckGo(),
		Fetcher:    web.NewFetcher(),
		Model:      toolModel,
	})
	manager.SetLogger(&tools.NullLogger{})

	server := mcp.NewServer(stdio.NewStdioServerTransport())

	if err := registerResearchTools(server, manager); err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}

	log.Println("MCP server ready, serving requests...")
	if err := server.Serve(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	// Block forever - the server runs in background goroutines
	select {}
}

// registerResearchTools exposes the standard tool set over MCP.
func registerResearchTools(server *mcp.Server, manager *tools.Manager) error {
	err := server.RegisterTool(
		"web_search",
		"Search Wikipedia and DuckDuckGo and return combined results",
		func(args struct {
			Query string `json:"query" jsonschema:"required,description=Search query"`
		}) (*mcp.ToolResponse, error) {
			return execute(manager, "web_search", map[string]any{"query": args.Query})
		},
	)
	if err != nil {
		return err
	}

	err = server.RegisterTool(
		"process_webpage",
		"Fetch a webpage and return a summary of its content",
		func(args struct {
			URL string `json:"url" jsonschema:"required,description=URL of the webpage to summarize"`
		}) (*mcp.ToolResponse, error) {
			return execute(manager, "process_webpage", map[string]any{"url": args.URL})
		},
	)
	if err != nil {
		return err
	}

	err = server.RegisterTool(
		"generate_research_notes",
		"Generate structured research notes on a topic",
		func(args struct {
			Topic string `json:"topic" jsonschema:"required,description=Topic to write research notes about"`
		}) (*mcp.ToolResponse, error) {
			return execute(manager, "generate_research_notes", map[string]any{"topic": args.Topic})
		},
	)
	if err != nil {
		return err
	}

	err = server.RegisterTool(
		"generate_knowledge_graph",
		"Build a mermaid knowledge graph about a topic",
		func(args struct {
			Topic string `json:"topic" jsonschema:"required,description=Topic to build a knowledge graph for"`
		}) (*mcp.ToolResponse, error) {
			return execute(manager, "generate_knowledge_graph", map[string]any{"topic": args.Topic})
		},
	)
	if err != nil {
		return err
	}

	return nil
}

func execute(manager *tools.Manager, name string, args map[string]any) (*mcp.ToolResponse, error) {
	result, err := manager.Execute(context.Background(), name, args)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResponse(mcp.NewTextContent(result.Text())), nil
}
