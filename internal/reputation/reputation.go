// Package reputation tracks each wallet's standing, initialized at spawn
// and adjusted by quest/faction actions elsewhere in the pipeline. Final
// settlement against the on-chain reputation contract (spec's
// REPUTATION_CONTRACT_ADDRESS) is out of scope here; this is the
// in-memory projection actions read and write during a session.
package reputation

import "sync"

const startingScore = 0

// Manager is a mutex-guarded wallet -> score table, mirroring
// goldledger.Ledger's shape for the same reason: a small, synchronous,
// per-wallet in-memory ledger with no chain round-trip on the hot path.
type Manager struct {
	mu     sync.Mutex
	scores map[string]int
}

func NewManager() *Manager {
	return &Manager{scores: map[string]int{}}
}

// Initialize sets wallet's reputation to its starting score if it doesn't
// already have one. Safe to call on every spawn, including a restore.
func (m *Manager) Initialize(wallet string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.scores[wallet]; !ok {
		m.scores[wallet] = startingScore
	}
}

// Adjust changes wallet's reputation by delta (positive or negative).
func (m *Manager) Adjust(wallet string, delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[wallet] += delta
}

func (m *Manager) Score(wallet string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scores[wallet]
}
