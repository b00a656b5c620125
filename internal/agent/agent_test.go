package agent

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/store"
)

type stubLLM struct {
	call ToolCall
}

func (s *stubLLM) Decide(ctx context.Context, prompt string, tools []ToolSchema) (ToolCall, error) {
	return s.call, nil
}

func newTestRunner(t *testing.T, llm LLMClient) *Runner {
	t.Helper()
	st := store.New(nil, zerolog.Nop())
	return &Runner{
		wallet: "0xagent",
		store:  st,
		llm:    llm,
		log:    zerolog.Nop(),
		state:  StateStopped,
		cfg: store.AgentConfig{
			Focus:    "idle",
			Strategy: "balanced",
		},
	}
}

func TestRunnerStartConfirmsFirstTick(t *testing.T) {
	r := newTestRunner(t, &stubLLM{call: ToolCall{Tool: "take_action", Action: "continue"}})
	// With no entityRef, tick() returns an error every time (invalid state),
	// but start() only waits for the first tick to *happen*, not to succeed.
	err := r.start(context.Background())
	require.NoError(t, err)
	require.Equal(t, StateRunning, r.currentState())
	r.stop()
	require.Equal(t, StateStopped, r.currentState())
}

func TestRunnerStopIsIdempotent(t *testing.T) {
	r := newTestRunner(t, &stubLLM{})
	require.NoError(t, r.start(context.Background()))
	r.stop()
	r.stop() // must not block or panic
	require.Equal(t, StateStopped, r.currentState())
}

func TestApplyFocusUpdatePersists(t *testing.T) {
	r := newTestRunner(t, &stubLLM{})
	r.applyFocusUpdate(ToolCall{Tool: "update_focus", Focus: "combat", Strategy: "aggressive"})
	require.Equal(t, "combat", r.cfg.Focus)
	require.Equal(t, "aggressive", r.cfg.Strategy)
}

func TestNextIntervalBacksOffOnFailures(t *testing.T) {
	r := newTestRunner(t, &stubLLM{})
	r.failures = 0
	base := r.nextInterval()
	r.failures = 5
	backedOff := r.nextInterval()
	require.GreaterOrEqual(t, backedOff, base)
}

func TestManagerStatusDefaultsToStopped(t *testing.T) {
	m := NewManager(ManagerConfig{Store: store.New(nil, zerolog.Nop()), Log: zerolog.Nop()})
	require.Equal(t, StateStopped, m.Status("0xnobody"))
}

func TestManagerStopUnknownWalletFails(t *testing.T) {
	m := NewManager(ManagerConfig{Store: store.New(nil, zerolog.Nop()), Log: zerolog.Nop()})
	err := m.Stop("0xnobody")
	require.Error(t, err)
}

func TestHeuristicLLMClientAlwaysContinues(t *testing.T) {
	client := NewHeuristicLLMClient()
	call, err := client.Decide(context.Background(), "anything", decisionTools)
	require.NoError(t, err)
	require.Equal(t, "take_action", call.Tool)
}

func TestJitterStaysWithinBound(t *testing.T) {
	base := 8 * time.Second
	for i := 0; i < 20; i++ {
		j := jitter(base)
		require.GreaterOrEqual(t, j, time.Duration(0))
		require.Less(t, j, base/4+1)
	}
}
