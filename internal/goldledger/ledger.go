// Package goldledger tracks copper reserved against a wallet's on-chain
// gold balance between the moment a spend is committed in gameplay and the
// moment the corresponding on-chain write lands (or fails). It exists
// because on-chain writes have latency and can fail: gameplay must see a
// spend as committed instantly to prevent double-spend within a session,
// but must not diverge permanently from the chain.
package goldledger

import (
	"sync"

	"github.com/rs/zerolog"
)

// Ledger maintains reserved[wallet] → copper. It never touches the chain
// itself; callers read on-chain gold from internal/onchain and pass it in.
type Ledger struct {
	mu       sync.Mutex
	reserved map[string]int64
	log      zerolog.Logger
}

// New returns an empty ledger.
func New(log zerolog.Logger) *Ledger {
	return &Ledger{
		reserved: map[string]int64{},
		log:      log,
	}
}

// AvailableGold returns max(0, onChainGold - reserved[wallet]).
func (l *Ledger) AvailableGold(wallet string, onChainGold int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	avail := onChainGold - l.reserved[wallet]
	if avail < 0 {
		return 0
	}
	return avail
}

// RecordSpend increases reserved[wallet] by copper. Copper must be
// non-negative; callers validate sufficient AvailableGold before calling.
func (l *Ledger) RecordSpend(wallet string, copper int64) {
	if copper <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reserved[wallet] += copper
}

// RecordRefund decreases reserved[wallet] by copper, floored at 0 — used
// when a reserved spend's on-chain write fails and the spend is undone.
func (l *Ledger) RecordRefund(wallet string, copper int64) {
	if copper <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reserved[wallet] -= copper
	if l.reserved[wallet] < 0 {
		l.reserved[wallet] = 0
	}
}

// Reserved returns the current reserved amount for wallet, for diagnostics
// and tests.
func (l *Ledger) Reserved(wallet string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reserved[wallet]
}

// Reconcile resets reserved[wallet] to 0 if it exceeds onChainGold — a state
// that should only arise from a missed refund or an external credit the
// ledger never saw — and logs the drift for operator attention. It never
// raises reserved to catch up with a larger on-chain balance; reserved only
// ever reflects spends this process believes are still in flight.
func (l *Ledger) Reconcile(wallet string, onChainGold int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.reserved[wallet]
	if cur > onChainGold {
		l.log.Warn().
			Str("wallet", wallet).
			Int64("reserved", cur).
			Int64("onChainGold", onChainGold).
			Msg("goldledger: reserved exceeded on-chain balance, resetting")
		l.reserved[wallet] = 0
	}
}
