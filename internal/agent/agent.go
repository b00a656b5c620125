// Package agent drives autonomous wallets through the same authenticated
// action pipeline human clients use. Each wallet gets one long-lived Runner
// cycling stopped -> starting -> running -> stopping, consulting an LLM tool
// schema for high-level focus/strategy decisions and a local heuristic for
// the concrete action to take each tick.
package agent

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/action"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/onchain"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/store"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// State is a Runner's lifecycle state.
type State string

const (
	StateStopped  State = "stopped"
	StateStarting State = "starting"
	StateRunning  State = "running"
	StateStopping State = "stopping"
)

const (
	baseTickInterval = 4 * time.Second
	maxBackoff       = 2 * time.Minute
	maxChatHistory   = 40
)

// Runner is the per-wallet autonomous driver.
type Runner struct {
	wallet     string
	dispatcher *action.Dispatcher
	runtime    *zone.Runtime
	store      *store.Store
	llm        LLMClient
	log        zerolog.Logger

	mu       sync.Mutex
	state    State
	cfg      store.AgentConfig
	stopCh   chan struct{}
	doneCh   chan struct{}
	failures int
}

// Manager owns every active Runner, keyed by owner wallet.
type Manager struct {
	dispatcher *action.Dispatcher
	runtime    *zone.Runtime
	store      *store.Store
	chain      onchain.Driver
	llm        LLMClient
	log        zerolog.Logger
	encKey     []byte

	mu      sync.Mutex
	runners map[string]*Runner
}

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	Dispatcher *action.Dispatcher
	Runtime    *zone.Runtime
	Store      *store.Store
	Chain      onchain.Driver
	LLM        LLMClient
	Log        zerolog.Logger
	// EncryptionKey seals custodial private keys at rest; must be 16, 24,
	// or 32 bytes (AES-128/192/256).
	EncryptionKey []byte
}

// NewManager creates a Manager with no runners started yet.
func NewManager(cfg ManagerConfig) *Manager {
	llm := cfg.LLM
	if llm == nil {
		llm = NewHeuristicLLMClient()
	}
	return &Manager{
		dispatcher: cfg.Dispatcher,
		runtime:    cfg.Runtime,
		store:      cfg.Store,
		chain:      cfg.Chain,
		llm:        llm,
		log:        cfg.Log,
		encKey:     cfg.EncryptionKey,
		runners:    make(map[string]*Runner),
	}
}

// Status reports a wallet's current runner state, "stopped" if none exists.
func (m *Manager) Status(wallet string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.runners[wallet]
	if !ok {
		return StateStopped
	}
	return r.currentState()
}

// Stop signals a running wallet's runner to stop and waits for it to exit.
func (m *Manager) Stop(wallet string) error {
	m.mu.Lock()
	r, ok := m.runners[wallet]
	m.mu.Unlock()
	if !ok {
		return rpgerr.Newf(rpgerr.CodeNotFound, "no running agent for wallet %q", wallet)
	}
	r.stop()
	return nil
}

func (r *Runner) currentState() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

// start transitions stopped -> starting -> running and launches the
// decision loop goroutine. Blocks until the first tick confirms the loop is
// alive, per the deploy flow's "wait for first tick confirmation" step.
func (r *Runner) start(ctx context.Context) error {
	r.setState(StateStarting)
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})

	confirmed := make(chan struct{}, 1)
	go r.run(ctx, confirmed)

	select {
	case <-confirmed:
		r.setState(StateRunning)
		return nil
	case <-time.After(10 * time.Second):
		r.stop()
		return rpgerr.Newf(rpgerr.CodeInternal, "agent %q did not confirm first tick", r.wallet)
	}
}

// stop transitions running -> stopping -> stopped, blocking until the loop
// goroutine has actually exited.
func (r *Runner) stop() {
	r.mu.Lock()
	if r.state == StateStopped || r.state == StateStopping {
		r.mu.Unlock()
		return
	}
	r.state = StateStopping
	stopCh := r.stopCh
	doneCh := r.doneCh
	r.mu.Unlock()

	close(stopCh)
	<-doneCh
	r.setState(StateStopped)
}

// run is the decision loop: perceive, consult focus/strategy (and
// optionally the LLM), act, sleep -- with backoff on repeated failures and
// jitter to avoid every agent waking in lockstep.
func (r *Runner) run(ctx context.Context, confirmed chan<- struct{}) {
	defer close(r.doneCh)

	first := true
	for {
		select {
		case <-r.stopCh:
			return
		default:
		}

		if err := r.tick(ctx); err != nil {
			r.log.Warn().Err(err).Str("wallet", r.wallet).Msg("agent tick failed")
			r.mu.Lock()
			r.failures++
			r.mu.Unlock()
		} else {
			r.mu.Lock()
			r.failures = 0
			r.mu.Unlock()
		}

		if first {
			first = false
			select {
			case confirmed <- struct{}{}:
			default:
			}
		}

		wait := r.nextInterval()
		select {
		case <-r.stopCh:
			return
		case <-time.After(wait):
		}
	}
}

func (r *Runner) nextInterval() time.Duration {
	r.mu.Lock()
	failures := r.failures
	r.mu.Unlock()

	backoff := baseTickInterval
	for i := 0; i < failures && backoff < maxBackoff; i++ {
		backoff *= 2
	}
	if backoff > maxBackoff {
		backoff = maxBackoff
	}
	return backoff + jitter(backoff)
}

