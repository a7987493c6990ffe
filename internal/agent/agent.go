// Package agent runs the chat loop between the user, the LLM, and the tools.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ariadne/internal/llm"
	"ariadne/internal/tools"
)

const systemPrompt = `You are a helpful research assistant. You can search the web,
summarize webpages, generate research notes, and build knowledge graphs.

Use the available tools when the user asks for information you do not already have.
When a tool returns markdown, include it in your answer unchanged so diagrams and
headings survive. Answer directly when no tool is needed.`

// maxToolRounds bounds how many consecutive rounds of tool calls a single user
// message may trigger before the conversation is forced to a text answer.
const maxToolRounds = 5

// maxHistoryTurns is the number of user/assistant exchanges retained across
// messages.
const maxHistoryTurns = 10

// Completer is the LLM surface the agent needs.
type Completer interface {
	CompleteWithFunctions(ctx context.Context, request llm.FunctionCallRequest) (*llm.FunctionCallResponse, error)
}

// Agent holds conversation state and dispatches tool calls requested by the
// model.
type Agent struct {
	completer Completer
	manager   *tools.Manager
	model     string
	history   []llm.Message
}

// New creates an agent speaking to the given model.
func New(completer Completer, manager *tools.Manager, model string) *Agent {
	return &Agent{
		completer: completer,
		manager:   manager,
		model:     model,
	}
}

// SetModel switches the chat model for subsequent messages.
func (a *Agent) SetModel(model string) {
	a.model = model
}

// Model returns the current chat model.
func (a *Agent) Model() string {
	return a.model
}

// ClearHistory drops the conversation history.
func (a *Agent) ClearHistory() {
	a.history = nil
}

// Chat sends a user message through the function-calling loop and returns the
// assistant's final text answer.
func (a *Agent) Chat(ctx context.Context, input string) (string, error) {
	messages := make([]llm.Message, 0, len(a.history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: systemPrompt})
	messages = append(messages, a.history...)
	messages = append(messages, llm.Message{Role: "user", Content: input})

	llmTools := a.toolDefinitions()

	var response *llm.FunctionCallResponse
	for round := 0; round < maxToolRounds; round++ {
		var err error
		response, err = a.completer.CompleteWithFunctions(ctx, llm.FunctionCallRequest{
			Model:      a.model,
			Messages:   messages,
			Tools:      llmTools,
			ToolChoice: "auto",
		})
		if err != nil {
			return "", fmt.Errorf("chat completion failed: %w", err)
		}

		if len(response.ToolCalls) == 0 {
			break
		}

		messages = append(messages, llm.Message{
			Role:      "assistant",
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})

		for _, call := range response.ToolCalls {
			messages = append(messages, llm.Message{
				Role:       "tool",
				Content:    a.runTool(ctx, call),
				ToolCallID: call.ID,
			})
		}
	}

	answer := response.Content
	if answer == "" && len(response.ToolCalls) > 0 {
		// The round budget ran out mid-tool-call. Surface the last tool
		// outputs rather than an empty answer.
		answer = lastToolOutputs(messages)
	}

	a.remember(input, answer)
	return answer, nil
}

// runTool executes one tool call. Failures come back as text so the model can
// see what went wrong and recover.
func (a *Agent) runTool(ctx context.Context, call llm.ToolCall) string {
	args := map[string]any{}
	if call.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return fmt.Sprintf("Error: invalid arguments for %s: %v", call.Function.Name, err)
		}
	}

	result, err := a.manager.Execute(ctx, call.Function.Name, args)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	if !result.Success {
		return fmt.Sprintf("Error: %s", result.Error)
	}
	return result.Text()
}

func (a *Agent) toolDefinitions() []llm.Tool {
	schemas := a.manager.Schemas()
	defs := make([]llm.Tool, len(schemas))
	for i, schema := range schemas {
		defs[i] = llm.Tool{
			Type: "function",
			Function: llm.Function{
				Name:        schema.Name,
				Description: schema.Description,
				Parameters:  schema.Parameters,
			},
		}
	}
	return defs
}

// remember appends the exchange and trims old turns.
func (a *Agent) remember(input, answer string) {
	a.history = append(a.history,
		llm.Message{Role: "user", Content: input},
		llm.Message{Role: "assistant", Content: answer},
	)
	if excess := len(a.history) - maxHistoryTurns*2; excess > 0 {
		a.history = a.history[excess:]
	}
}

// lastToolOutputs collects the tool results from the final round so the user
// still sees something useful.
func lastToolOutputs(messages []llm.Message) string {
	var outputs []string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role != "tool" {
			break
		}
		outputs = append([]string{messages[i].Content}, outputs...)
	}
	return strings.Join(outputs, "\n\n")
}
