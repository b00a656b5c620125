package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/store"
)

func chatTurn(role, content string, at int64) store.AgentChatTurn {
	return store.AgentChatTurn{Role: role, Content: content, At: at}
}

// ChatResult is the outcome of a chat turn: the assistant's reply and
// whether a tool call was applied synchronously.
type ChatResult struct {
	Reply       string
	ToolApplied bool
}

// Chat implements the agent chat endpoint: a user message goes
// to the LLM with current game context; any tool call it emits is applied
// synchronously; the transcript is appended to the bounded per-wallet
// history.
func (m *Manager) Chat(ctx context.Context, ownerWallet, message string) (*ChatResult, error) {
	m.mu.Lock()
	r, ok := m.runners[ownerWallet]
	m.mu.Unlock()
	if !ok {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "no agent deployed for wallet %q", ownerWallet)
	}

	r.mu.Lock()
	cfg := r.cfg
	r.mu.Unlock()

	prompt := fmt.Sprintf("wallet=%s focus=%s strategy=%s\nuser: %s", r.wallet, cfg.Focus, cfg.Strategy, message)
	call, err := r.llm.Decide(ctx, prompt, decisionTools)
	if err != nil {
		return nil, err
	}

	applied := false
	if call.Tool == "update_focus" {
		r.applyFocusUpdate(call)
		applied = true
	}

	now := time.Now().Unix()
	r.mu.Lock()
	r.cfg.ChatHistory = append(r.cfg.ChatHistory, chatTurn("user", message, now), chatTurn("assistant", call.Reply, now))
	if over := len(r.cfg.ChatHistory) - maxChatHistory; over > 0 {
		r.cfg.ChatHistory = r.cfg.ChatHistory[over:]
	}
	cp := r.cfg
	r.mu.Unlock()
	r.store.SaveAgentConfig(ownerWallet, cp)

	return &ChatResult{Reply: call.Reply, ToolApplied: applied}, nil
}
