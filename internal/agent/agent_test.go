package agent

import (
	"context"
	"strings"
	"testing"

	"ariadne/internal/kg"
	"ariadne/internal/llm"
	"ariadne/internal/search"
	"ariadne/internal/tools"
	"ariadne/internal/web"
)

// scriptedCompleter replays a fixed sequence of LLM responses and records the
// requests it saw.
type scriptedCompleter struct {
	responses []*llm.FunctionCallResponse
	requests  []llm.FunctionCallRequest
}

func (s *scriptedCompleter) CompleteWithFunctions(_ context.Context, req llm.FunctionCallRequest) (*llm.FunctionCallResponse, error) {
	s.requests = append(s.requests, req)
	if len(s.requests) > len(s.responses) {
		return &llm.FunctionCallResponse{Content: "out of script"}, nil
	}
	return s.responses[len(s.requests)-1], nil
}

type stubGenerator struct{ response string }

func (g stubGenerator) Complete(context.Context, string, string) (string, error) {
	return g.response, nil
}

type stubSearcher struct{ results []search.Result }

func (s stubSearcher) Search(context.Context, string) ([]search.Result, error) {
	return s.results, nil
}

type stubFetcher struct{}

func (stubFetcher) Fetch(_ context.Context, url string) (*web.Page, error) {
	return &web.Page{URL: url, Content: "content"}, nil
}

type nullSink struct{}

func (nullSink) RenderTriples(string, []kg.Triple) {}

func newTestManager() *tools.Manager {
	m := tools.NewManager(tools.Deps{
		Generator:  stubGenerator{response: "Alice | knows | Bob"},
		Wikipedia:  stubSearcher{results: []search.Result{{Title: "Go", Snippet: "A language."}}},
		DuckDuckGo: stubSearcher{},
		Fetcher:    stubFetcher{},
		Table:      nullSink{},
	})
	m.SetLogger(&tools.NullLogger{})
	return m
}

func TestChatDirectAnswer(t *testing.T) {
	completer := &scriptedCompleter{responses: []*llm.FunctionCallResponse{
		{Content: "Hello there."},
	}}
	a := New(completer, newTestManager(), "test-model")

	answer, err := a.Chat(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Hello there." {
		t.Fatalf("unexpected answer: %q", answer)
	}

	req := completer.requests[0]
	if req.Model != "test-model" {
		t.Errorf("unexpected model: %s", req.Model)
	}
	if len(req.Tools) != 4 {
		t.Errorf("expected 4 tool definitions, got %d", len(req.Tools))
	}
	if req.Messages[0].Role != "system" {
		t.Errorf("first message should be the system prompt, got %s", req.Messages[0].Role)
	}
}

func TestChatSingleToolCall(t *testing.T) {
	completer := &scriptedCompleter{responses: []*llm.FunctionCallResponse{
		{ToolCalls: []llm.ToolCall{{
			ID:   "call_1",
			Type: "function",
			Function: llm.FunctionCall{
				Name:      "generate_knowledge_graph",
				Arguments: `{"topic": "graphs"}`,
			},
		}}},
		{Content: "Here is your graph."},
	}}
	a := New(completer, newTestManager(), "test-model")

	answer, err := a.Chat(context.Background(), "make a knowledge graph about graphs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Here is your graph." {
		t.Fatalf("unexpected answer: %q", answer)
	}

	if len(completer.requests) != 2 {
		t.Fatalf("expected 2 LLM rounds, got %d", len(completer.requests))
	}

	second := completer.requests[1].Messages
	last := second[len(second)-1]
	if last.Role != "tool" || last.ToolCallID != "call_1" {
		t.Fatalf("tool result message malformed: %+v", last)
	}
	if !strings.Contains(last.Content, "### Knowledge Graph: graphs") {
		t.Errorf("tool output not forwarded to the model: %q", last.Content)
	}
	assistant := second[len(second)-2]
	if assistant.Role != "assistant" || len(assistant.ToolCalls) != 1 {
		t.Errorf("assistant tool-call message malformed: %+v", assistant)
	}
}

func TestChatBadToolArguments(t *testing.T) {
	completer := &scriptedCompleter{responses: []*llm.FunctionCallResponse{
		{ToolCalls: []llm.ToolCall{{
			ID:       "call_1",
			Type:     "function",
			Function: llm.FunctionCall{Name: "web_search", Arguments: `{not json`},
		}}},
		{Content: "Sorry, I could not search."},
	}}
	a := New(completer, newTestManager(), "")

	answer, err := a.Chat(context.Background(), "search something")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Sorry, I could not search." {
		t.Fatalf("unexpected answer: %q", answer)
	}

	second := completer.requests[1].Messages
	last := second[len(second)-1]
	if !strings.Contains(last.Content, "invalid arguments for web_search") {
		t.Errorf("malformed arguments should be reported to the model, got %q", last.Content)
	}
}

func TestChatHistoryCarriesAndTrims(t *testing.T) {
	responses := make([]*llm.FunctionCallResponse, 0, maxHistoryTurns+3)
	for i := 0; i < maxHistoryTurns+3; i++ {
		responses = append(responses, &llm.FunctionCallResponse{Content: "ok"})
	}
	completer := &scriptedCompleter{responses: responses}
	a := New(completer, newTestManager(), "")

	for i := 0; i < maxHistoryTurns+3; i++ {
		if _, err := a.Chat(context.Background(), "msg"); err != nil {
			t.Fatalf("chat %d: %v", i, err)
		}
	}

	if len(a.history) != maxHistoryTurns*2 {
		t.Fatalf("history not trimmed: %d messages", len(a.history))
	}

	last := completer.requests[len(completer.requests)-1]
	// system + retained history + new user message
	want := 1 + maxHistoryTurns*2 + 1
	if len(last.Messages) != want {
		t.Errorf("expected %d messages in final request, got %d", want, len(last.Messages))
	}

	a.ClearHistory()
	if len(a.history) != 0 {
		t.Error("ClearHistory left messages behind")
	}
}

func TestChatToolRoundBudget(t *testing.T) {
	call := llm.ToolCall{
		ID:       "loop",
		Type:     "function",
		Function: llm.FunctionCall{Name: "generate_research_notes", Arguments: `{"topic": "t"}`},
	}
	responses := make([]*llm.FunctionCallResponse, maxToolRounds)
	for i := range responses {
		responses[i] = &llm.FunctionCallResponse{ToolCalls: []llm.ToolCall{call}}
	}
	completer := &scriptedCompleter{responses: responses}
	a := New(completer, newTestManager(), "")

	answer, err := a.Chat(context.Background(), "loop forever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(completer.requests) != maxToolRounds {
		t.Fatalf("expected %d rounds, got %d", maxToolRounds, len(completer.requests))
	}
	if !strings.Contains(answer, "### Research Notes: t") {
		t.Errorf("exhausted budget should fall back to tool output, got %q", answer)
	}
}
