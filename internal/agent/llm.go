package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// ToolCall is a single structured decision the LLM returned, matching one
// of the two tool schemas the agent loop exposes.
type ToolCall struct {
	Tool         string `json:"tool"` // "update_focus" or "take_action"
	Focus        string `json:"focus,omitempty"`
	Strategy     string `json:"strategy,omitempty"`
	TargetZone   string `json:"targetZone,omitempty"`
	Action       string `json:"action,omitempty"`
	ProfessionID string `json:"professionId,omitempty"`
	Reply        string `json:"reply,omitempty"` // chat-only: the assistant's visible message
}

// LLMClient consults an external model for the next high-level decision.
// Implementations must be safe for concurrent use across runners.
type LLMClient interface {
	Decide(ctx context.Context, prompt string, tools []ToolSchema) (ToolCall, error)
}

// ToolSchema names one callable tool and the arguments it accepts, passed
// to the LLM endpoint so it can emit structured tool calls rather than free
// text.
type ToolSchema struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Parameters  []string `json:"parameters"`
}

var decisionTools = []ToolSchema{
	{
		Name:        "update_focus",
		Description: "Change the agent's current focus and strategy.",
		Parameters:  []string{"focus", "strategy", "targetZone"},
	},
	{
		Name:        "take_action",
		Description: "Issue one concrete action this tick.",
		Parameters:  []string{"action", "professionId"},
	},
}

// httpLLMClient posts the prompt and tool schema to an external HTTP LLM
// endpoint and expects back a single JSON-encoded ToolCall. No ready-made
// SDK fits this shape, so this talks stdlib net/http directly.
type httpLLMClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPLLMClient builds an LLMClient that calls an external chat-completion
// style endpoint, sending apiKey as a bearer token when it is non-empty.
func NewHTTPLLMClient(endpoint, apiKey string) LLMClient {
	return &httpLLMClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

type llmRequest struct {
	Prompt string       `json:"prompt"`
	Tools  []ToolSchema `json:"tools"`
}

func (c *httpLLMClient) Decide(ctx context.Context, prompt string, tools []ToolSchema) (ToolCall, error) {
	body, err := json.Marshal(llmRequest{Prompt: prompt, Tools: tools})
	if err != nil {
		return ToolCall{}, rpgerr.Newf(rpgerr.CodeInternal, "encode llm request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return ToolCall{}, rpgerr.Newf(rpgerr.CodeInternal, "build llm request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return ToolCall{}, rpgerr.Newf(rpgerr.CodeInternal, "llm request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ToolCall{}, rpgerr.Newf(rpgerr.CodeInternal, "llm endpoint returned status %d", resp.StatusCode)
	}

	var call ToolCall
	if err := json.NewDecoder(resp.Body).Decode(&call); err != nil {
		return ToolCall{}, rpgerr.Newf(rpgerr.CodeInternal, "decode llm response: %v", err)
	}
	return call, nil
}

// heuristicLLMClient is the zero-config fallback: it never calls out, and
// always asks the loop to just take_action on whatever focus is already
// set. Used when no LLM_API_KEY is configured, and in tests.
type heuristicLLMClient struct{}

// NewHeuristicLLMClient returns an LLMClient that makes no network calls.
func NewHeuristicLLMClient() LLMClient { return heuristicLLMClient{} }

func (heuristicLLMClient) Decide(ctx context.Context, prompt string, tools []ToolSchema) (ToolCall, error) {
	return ToolCall{Tool: "take_action", Action: "continue"}, nil
}
