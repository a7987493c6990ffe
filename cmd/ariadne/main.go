package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"ariadne/internal/agent"
	"ariadne/internal/cli"
	"ariadne/internal/llm"
	"ariadne/internal/mcp"
	"ariadne/internal/search"
	"ariadne/internal/tools"
	"ariadne/internal/web"
)

func main() {
	var (
		help          bool
		openrouterKey string
		chatModel     string
		toolModel     string
		verbose       bool
		logFile       string
		mcpMode       bool
	)

	flag.BoolVar(&help, "help", false, "Show help message")
	flag.BoolVar(&help, "h", false, "Show help message (shorthand)")
	flag.StringVar(&openrouterKey, "openrouter-key", os.Getenv("OPENROUTER_API_KEY"), "OpenRouter API key (can also use OPENROUTER_API_KEY env var)")
	flag.StringVar(&chatModel, "chat-model", "openai/gpt-4", "Model used for the chat conversation")
	flag.StringVar(&toolModel, "tool-model", "", "Model used inside tools (summaries, notes, graphs); defaults to the provider default")
	flag.BoolVar(&verbose, "verbose", false, "Log full tool inputs and outputs")
	flag.StringVar(&logFile, "log-file", "", "Write tool logs to a file instead of stdout")
	flag.BoolVar(&mcpMode, "mcp", false, "Run as MCP server for AI assistants (requires stdio connection)")
	flag.Parse()

	if help {
		fmt.Println("ariadne - Research Assistant")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Printf("  %s [flags]\n", os.Args[0])
		fmt.Println()
		fmt.Println("Flags:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Environment Variables:")
		fmt.Println("  OPENROUTER_API_KEY   OpenRouter API key")
		fmt.Println()
		fmt.Println("MCP Server Mode:")
		fmt.Println("  Run with -mcp flag to start as an MCP server for AI assistants.")
		fmt.Println("  This mode requires stdin/stdout to be connected (not a terminal).")
		fmt.Println("  Example: ariadne -mcp < /dev/null")
		os.Exit(0)
	}

	if mcpMode {
		if err := mcp.RunServer(toolModel); err != nil {
			log.Fatalf("MCP server error: %v", err)
		}
		return
	}

	if openrouterKey == "" {
		log.Fatal("Error: OPENROUTER_API_KEY environment variable is required")
	}
	llmClient := llm.NewClient(openrouterKey)

	manager := tools.NewManager(tools.Deps{
		Generator:  llmClient,
		Wikipedia:  search.NewWikipedia(),
		DuckDuckGo: search.NewDuckDuckGo(),
		Fetcher:    web.NewFetcher(),
		Table:      cli.NewTripleTable(),
		Model:      toolModel,
	})

	if logFile != "" {
		if err := manager.EnableFileLogging(logFile, verbose); err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
	} else if verbose {
		manager.EnableVerboseLogging()
	}

	chatAgent := agent.New(llmClient, manager, chatModel)

	ctx := context.Background()
	if err := cli.NewCLI(chatAgent, llmClient, manager).Run(ctx); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}
