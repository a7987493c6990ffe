// Package cli provides the interactive chat interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/chzyer/readline"

	"ariadne/internal/agent"
	"ariadne/internal/llm"
	"ariadne/internal/tools"
)

const welcomeMessage = `# ariadne

A research assistant with web search, webpage summaries, research notes,
and knowledge graphs.

Try asking things like:

- *Search the web for recent fusion energy breakthroughs*
- *Summarize https://en.wikipedia.org/wiki/Knowledge_graph*
- *Generate research notes on the history of cryptography*
- *Build a knowledge graph about Marie Curie*

Type ` + "`/help`" + ` for commands, or just chat naturally.`

const helpText = `Commands:
  /help         Show this help
  /tools        List the available tools
  /model        Pick the chat model interactively
  /model NAME   Switch the chat model directly
  /clear        Clear the conversation history
  /exit         Leave (also /quit, /q, exit, quit, bye)

Anything else is sent to the assistant.`

// CLI provides the interactive command-line interface
type CLI struct {
	agent    *agent.Agent
	llm      *llm.Client
	manager  *tools.Manager
	readline *readline.Instance
	renderer *glamour.TermRenderer
}

// NewCLI creates a new CLI instance
func NewCLI(chatAgent *agent.Agent, llmClient *llm.Client, manager *tools.Manager) *CLI {
	return &CLI{
		agent:   chatAgent,
		llm:     llmClient,
		manager: manager,
	}
}

// Run starts the interactive chat session
func (c *CLI) Run(ctx context.Context) error {
	config := &readline.Config{
		Prompt:            "> ",
		HistoryFile:       filepath.Join(os.TempDir(), ".ariadne_history"),
		AutoComplete:      buildAutoCompleter(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	c.readline = rl
	defer rl.Close()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize markdown renderer: %w", err)
	}
	c.renderer = renderer

	c.printMarkdown(welcomeMessage)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isExitCommand(line) {
			fmt.Println("Goodbye!")
			return nil
		}

		if err := c.processInput(ctx, line); err != nil {
			fmt.Println(FormatError(err.Error()))
		}
	}

	return nil
}

func buildAutoCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("/help"),
		readline.PcItem("/tools"),
		readline.PcItem("/model"),
		readline.PcItem("/clear"),
		readline.PcItem("/exit"),
		readline.PcItem("/quit"),
		readline.PcItem("/q"),
	)
}

func isExitCommand(line string) bool {
	switch strings.ToLower(line) {
	case "/exit", "/quit", "/q", "exit", "quit", "bye":
		return true
	}
	return false
}

// processInput handles a line of user input
func (c *CLI) processInput(ctx context.Context, input string) error {
	if strings.HasPrefix(input, "/") {
		return c.processCommand(ctx, input)
	}

	switch strings.ToLower(input) {
	case "help", "?":
		fmt.Println(helpText)
		return nil
	}

	return c.chat(ctx, input)
}

func (c *CLI) processCommand(ctx context.Context, input string) error {
	parts := strings.Fields(input)
	command := parts[0]
	args := parts[1:]

	switch command {
	case "/help":
		fmt.Println(helpText)
		return nil

	case "/tools":
		fmt.Println(c.manager.GetAllHelp())
		return nil

	case "/model":
		return c.switchModel(ctx, args)

	case "/clear":
		c.agent.ClearHistory()
		fmt.Println(FormatInfo("Conversation history cleared."))
		return nil

	default:
		return fmt.Errorf("unknown command %s (try /help)", command)
	}
}

// switchModel changes the chat model, interactively when no name is given.
func (c *CLI) switchModel(ctx context.Context, args []string) error {
	if len(args) > 0 {
		c.agent.SetModel(args[0])
		fmt.Println(FormatSuccess("Switched to " + args[0]))
		return nil
	}

	fmt.Println(FormatInfo("Fetching available models..."))
	models, err := c.llm.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	choice, err := PickModel(models, c.agent.Model())
	if err != nil {
		return err
	}
	if choice == "" {
		fmt.Println(FormatInfo("Model unchanged."))
		return nil
	}

	c.agent.SetModel(choice)
	fmt.Println(FormatSuccess("Switched to " + choice))
	return nil
}

func (c *CLI) chat(ctx context.Context, input string) error {
	fmt.Println(DimStyle.Render("Thinking..."))

	answer, err := c.agent.Chat(ctx, input)
	if err != nil {
		return err
	}

	c.printMarkdown(answer)
	return nil
}

// printMarkdown renders markdown to the terminal, falling back to plain text
// when rendering fails.
func (c *CLI) printMarkdown(markdown string) {
	out, err := c.renderer.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
