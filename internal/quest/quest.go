// Package quest tracks per-wallet progress against catalog-authored quest
// objectives (kill/gather/craft counts) and answers whether a quest is
// ready to turn in. Definitions live in internal/catalog; this package
// only holds the mutable progress counters, the same split catalog uses
// everywhere else (immutable data vs. runtime state).
package quest

import (
	"sync"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// Progress is one wallet's counters for one accepted quest's objectives,
// indexed the same order as the quest definition's Objectives slice.
type Progress struct {
	QuestID string
	Counts  []int
	Done    bool
}

// Manager is a mutex-guarded table of wallet -> questID -> Progress.
// Entirely in-memory: quest progress is re-derivable from catalog
// replaying action-pipeline events, so losing it on restart is a
// tolerated degradation rather than data loss, matching party's stance on
// non-persisted group membership.
type Manager struct {
	mu       sync.Mutex
	progress map[string]map[string]*Progress
}

func NewManager() *Manager {
	return &Manager{progress: make(map[string]map[string]*Progress)}
}

// Accept registers questID as in-progress for wallet, failing if it is
// already accepted or already completed.
func (m *Manager) Accept(wallet string, q catalog.Quest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	wp := m.walletProgress(wallet)
	if _, ok := wp[q.ID]; ok {
		return rpgerr.Newf(rpgerr.CodeInvalidState, "quest %q already accepted", q.ID)
	}
	wp[q.ID] = &Progress{QuestID: q.ID, Counts: make([]int, len(q.Objectives))}
	return nil
}

func (m *Manager) walletProgress(wallet string) map[string]*Progress {
	wp, ok := m.progress[wallet]
	if !ok {
		wp = make(map[string]*Progress)
		m.progress[wallet] = wp
	}
	return wp
}

// Record increments every accepted-but-incomplete quest's matching
// objective (kind, target) for wallet. Called from the action pipeline's
// combat, gather, and craft handlers.
func (m *Manager) Record(wallet, kind, target string, defs map[string]catalog.Quest) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for questID, prog := range m.walletProgress(wallet) {
		if prog.Done {
			continue
		}
		def, ok := defs[questID]
		if !ok {
			continue
		}
		for i, obj := range def.Objectives {
			if obj.Kind == kind && obj.Target == target && prog.Counts[i] < obj.Count {
				prog.Counts[i]++
			}
		}
	}
}

// Get reports a wallet's current counters for questID, or false if
// not accepted.
func (m *Manager) Get(wallet, questID string) (Progress, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.walletProgress(wallet)[questID]
	if !ok {
		return Progress{}, false
	}
	return *p, true
}

// CanTurnIn reports whether every objective's count has been met.
func (m *Manager) CanTurnIn(wallet string, q catalog.Quest) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	prog, ok := m.walletProgress(wallet)[q.ID]
	if !ok || prog.Done {
		return false
	}
	for i, obj := range q.Objectives {
		if prog.Counts[i] < obj.Count {
			return false
		}
	}
	return true
}

// Complete marks questID done for wallet so it can no longer be turned in
// twice or re-tracked.
func (m *Manager) Complete(wallet, questID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.walletProgress(wallet)[questID]; ok {
		p.Done = true
	}
}
