// Package action implements the authenticated action pipeline: one handler
// per player-facing command (spawn, move, attack, use_technique, gather,
// craft, equip/unequip/repair, buy/sell), each validating ownership before
// mutating zone state. Handlers are plain methods on Dispatcher returning
// (result, error) rather than a generic composed-stage chain, so that
// rpgerr's typed failures (validation vs authorization vs rule-violation)
// surface to callers untouched instead of collapsing into one failure shape.
package action

import (
	"github.com/rs/zerolog"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/combat"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/dice"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/goldledger"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/merchant"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/onchain"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/quest"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/reputation"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/store"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// Dispatcher holds every dependency an action handler needs. It is built
// once at the composition root and shared by every request.
type Dispatcher struct {
	runtime  *zone.Runtime
	catalog  *catalog.Store
	combat   *combat.Resolver
	store    *store.Store
	chain    onchain.Driver
	ledger   *goldledger.Ledger
	merchant   *merchant.Manager
	reputation *reputation.Manager
	quest      *quest.Manager
	roller     dice.Roller
	log        zerolog.Logger
}

type Config struct {
	Runtime    *zone.Runtime
	Catalog    *catalog.Store
	Combat     *combat.Resolver
	Store      *store.Store
	Chain      onchain.Driver
	Ledger     *goldledger.Ledger
	Merchant   *merchant.Manager
	Reputation *reputation.Manager
	Quest      *quest.Manager
	Roller     dice.Roller
	Log        zerolog.Logger
}

func NewDispatcher(cfg Config) *Dispatcher {
	roller := cfg.Roller
	if roller == nil {
		roller = &dice.CryptoRoller{}
	}
	return &Dispatcher{
		runtime:    cfg.Runtime,
		catalog:    cfg.Catalog,
		combat:     cfg.Combat,
		store:      cfg.Store,
		chain:      cfg.Chain,
		ledger:     cfg.Ledger,
		merchant:   cfg.Merchant,
		reputation: cfg.Reputation,
		quest:      cfg.Quest,
		roller:     roller,
		log:        cfg.Log,
	}
}

// questDefs snapshots the catalog's quest table as a map, for quest.Manager
// calls that need to look up a tracked quest's objective definitions.
func (d *Dispatcher) questDefs() map[string]catalog.Quest {
	all := d.catalog.AllQuests()
	defs := make(map[string]catalog.Quest, len(all))
	for _, q := range all {
		defs[q.ID] = q
	}
	return defs
}
