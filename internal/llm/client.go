// Package llm wraps the OpenRouter chat-completion API.
package llm

import (
	"context"
	"fmt"

	"github.com/revrost/go-openrouter"
)

const defaultModel = "openai/gpt-3.5-turbo"

type Client struct {
	openRouterClient *openrouter.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		openRouterClient: openrouter.NewClient(apiKey),
	}
}

// Complete sends a single user prompt and returns the model's text response.
func (c *Client) Complete(ctx context.Context, prompt string, model string) (string, error) {
	if model == "" {
		model = defaultModel
	}

	request := openrouter.ChatCompletionRequest{
		Model: model,
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role:    openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{Text: prompt},
			},
		},
	}

	response, err := c.openRouterClient.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return response.Choices[0].Message.Content.Text, nil
}

// ListModels returns the model identifiers available through OpenRouter.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	models, err := c.openRouterClient.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var modelNames []string
	for _, model := range models {
		modelNames = append(modelNames, model.ID)
	}

	return modelNames, nil
}

// FunctionCallRequest represents a request with function calling capabilities
type FunctionCallRequest struct {
	Model      string
	Messages   []Message
	Tools      []Tool
	ToolChoice string // "auto", "none", or specific tool name
}

// Message represents a chat message
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// Tool represents a function that can be called
type Tool struct {
	Type     string   `json:"type"` // Always "function" for now
	Function Function `json:"function"`
}

// Function represents the function definition
type Function struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  interface{} `json:"parameters"` // JSON Schema
}

// ToolCall represents a function call request from the model
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall contains the function name and arguments
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON string
}

// FunctionCallResponse represents the response from a function calling request
type FunctionCallResponse struct {
	Content   string
	ToolCalls []ToolCall
}

// CompleteWithFunctions performs a completion with function calling capabilities
func (c *Client) CompleteWithFunctions(ctx context.Context, request FunctionCallRequest) (*FunctionCallResponse, error) {
	if request.Model == "" {
		request.Model = defaultModel
	}

	orMessages := make([]openrouter.ChatCompletionMessage, len(request.Messages))
	for i, msg := range request.Messages {
		orMsg := openrouter.ChatCompletionMessage{
			Role:       msg.Role,
			Content:    openrouter.Content{Text: msg.Content},
			ToolCallID: msg.ToolCallID,
		}

		if len(msg.ToolCalls) > 0 {
			orMsg.ToolCalls = make([]openrouter.ToolCall, len(msg.ToolCalls))
			for j, tc := range msg.ToolCalls {
				orMsg.ToolCalls[j] = openrouter.ToolCall{
					ID:   tc.ID,
					Type: openrouter.ToolType(tc.Type),
					Function: openrouter.FunctionCall{
						Name:      tc.Function.Name,
						Arguments: tc.Function.Arguments,
					},
				}
			}
		}
		orMessages[i] = orMsg
	}

	orTools := make([]openrouter.Tool, len(request.Tools))
	for i, tool := range request.Tools {
		orTools[i] = openrouter.Tool{
			Type: openrouter.ToolTypeFunction,
			Function: &openrouter.FunctionDefinition{
				Name:        tool.Function.Name,
				Description: tool.Function.Description,
				Parameters:  tool.Function.Parameters,
			},
		}
	}

	orRequest := openrouter.ChatCompletionRequest{
		Model:      request.Model,
		Messages:   orMessages,
		Tools:      orTools,
		ToolChoice: request.ToolChoice,
	}

	response, err := c.openRouterClient.CreateChatCompletion(ctx, orRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion with functions: %w", err)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	choice := response.Choices[0]

	result := &FunctionCallResponse{
		Content: choice.Message.Content.Text,
	}

	if len(choice.Message.ToolCalls) > 0 {
		result.ToolCalls = make([]ToolCall, len(choice.Message.ToolCalls))
		for i, tc := range choice.Message.ToolCalls {
			result.ToolCalls[i] = ToolCall{
				ID:   tc.ID,
				Type: string(tc.Type),
				Function: FunctionCall{
					Name:      tc.Function.Name,
					Arguments: tc.Function.Arguments,
				},
			}
		}
	}

	return result, nil
}
