package combat

import (
	"context"
	"time"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/selectables"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// LootMinter mints a mob's loot drop to the killer's wallet. Combat only
// decides what drops; the chain-facing mint call is injected so this
// package never needs to know about onchain.Driver or goldledger directly.
type LootMinter interface {
	MintItem(ctx context.Context, wallet string, tokenID, quantity int) error
	MintGold(ctx context.Context, wallet string, copper int64) error
}

// WithMinter attaches a LootMinter to an existing Resolver and returns it,
// for call sites that build a Resolver once at startup and wire the onchain
// adapter in afterward.
func (r *Resolver) WithMinter(m LootMinter) *Resolver {
	r.minter = m
	return r
}

// HandleDeath implements zone.DeathHandler. It is invoked by the zone
// runtime's tick loop for every entity whose hp reached zero that tick,
// regardless of whether the killing blow was a weapon attack, a technique,
// or a dot -- the runtime detects the death, combat decides what happens
// to the body.
func (r *Resolver) HandleDeath(z *zone.Zone, e *zone.Entity, tick uint64) {
	switch e.Kind {
	case zone.EntityKindMob:
		r.handleMobDeath(z, e, tick)
	case zone.EntityKindPlayer:
		r.handlePlayerDeath(z, e, tick)
	}
}

func (r *Resolver) handleMobDeath(z *zone.Zone, e *zone.Entity, tick uint64) {
	killerID := e.LastAttackerID
	xpAwarded := map[string]int{}

	if killerID != "" {
		members := r.party.PartyMembers(killerID)
		split := xpSplit(members, e.XPReward)
		for id, amount := range split {
			if member, ok := z.Get(id); ok {
				r.AddXP(z, member, amount, nil)
				xpAwarded[id] = amount
			}
		}
	}

	goldDrop, corpseID := r.dropLoot(z, e, killerID, tick)

	_ = z.Remove(e.ID)

	if r.mobKilled != nil {
		_ = r.mobKilled.Publish(context.Background(), MobKilledEvent{
			ZoneID: z.ID(), MobID: e.ID, KillerID: killerID, XPAwarded: xpAwarded,
			GoldDrop: goldDrop, CorpseID: corpseID, Tick: tick, At: time.Now(),
		})
	}
}

// dropLoot rolls the mob's catalog loot table (weighted by LootEntry.Weight)
// for one entry, mints it to the killer if a LootMinter is wired, and -- if
// the mob's template marks it skinnable -- places a corpse entity in its
// place. Returns the gold minted and the corpse id (empty if none was made).
func (r *Resolver) dropLoot(z *zone.Zone, mob *zone.Entity, killerID string, tick uint64) (goldDrop int, corpseID string) {
	if r.catalog == nil {
		return 0, ""
	}

	table, err := r.catalog.LootTable(mob.MobName)
	if err == nil && len(table.Entries) > 0 {
		sel := selectables.NewBasicTable[int](selectables.BasicTableConfig{ID: "loot:" + mob.ID})
		for i, entry := range table.Entries {
			sel.Add(i, entry.Weight)
		}
		if idx, err := sel.Select(r.lootRoller); err == nil {
			entry := table.Entries[idx]
			if entry.GoldMax > 0 {
				goldDrop = entry.GoldMin
				if entry.GoldMax > entry.GoldMin {
					span, rollErr := r.roller.Roll(context.Background(), entry.GoldMax-entry.GoldMin+1)
					if rollErr == nil {
						goldDrop = entry.GoldMin + span - 1
					}
				}
			}
			if killerID != "" && r.minter != nil {
				if entry.TokenID != 0 && entry.Quantity > 0 {
					_ = r.minter.MintItem(context.Background(), killerID, entry.TokenID, entry.Quantity)
				}
				if goldDrop > 0 {
					_ = r.minter.MintGold(context.Background(), killerID, int64(goldDrop))
				}
			}
		}
	}

	tmpl, err := r.catalog.MobTemplate(mob.MobName)
	if err != nil || !tmpl.Skinnable {
		return goldDrop, ""
	}

	decayTicks := uint64(tmpl.DecayTicks)
	if decayTicks == 0 {
		decayTicks = 600 // ~10 minutes of zone ticks if the template left it unset
	}

	corpse := &zone.Entity{
		ID:             newCorpseID(),
		Kind:           zone.EntityKindCorpse,
		MobName:        mob.MobName,
		X:              mob.X,
		Y:              mob.Y,
		SkinnableUntil: tick + decayTicks,
		DecayAtTick:    tick + decayTicks,
	}
	if err := z.Place(corpse, mob.X, mob.Y); err == nil {
		corpseID = corpse.ID
	}
	return goldDrop, corpseID
}

func (r *Resolver) handlePlayerDeath(z *zone.Zone, e *zone.Entity, tick uint64) {
	debt := applyXPDebt(e)

	if r.catalog != nil {
		if layout, err := r.catalog.ZoneLayout(z.ID()); err == nil {
			e.X, e.Y = layout.Graveyard.X, layout.Graveyard.Y
		}
	}

	e.HP = e.MaxHP
	e.Essence = e.MaxEssence
	e.LastAttackerID = ""

	if r.playerRespawn != nil {
		_ = r.playerRespawn.Publish(context.Background(), PlayerRespawnEvent{
			ZoneID: z.ID(), EntityID: e.ID, XPDebt: debt, Tick: tick, At: time.Now(),
		})
	}
}
