// Package combat resolves attacks and technique use against live zone
// entities, and owns what happens when hp reaches zero: XP distribution,
// loot drops, corpse creation, and player respawn. It is the one package
// allowed to depend on both zone (for live entity state) and catalog (for
// technique/loot/mob data); zone itself never imports combat, so death
// detection in the tick loop is wired back in through zone.DeathHandler.
package combat

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/dice"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/events"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/goldledger"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/selectables"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// attackRangeUnits is the max distance between attacker and target for a
// weapon attack to land, in the same world units as zone.Entity.X/Y.
const attackRangeUnits = 4.0

// baseCritChance and baseDodgeChance are the flat roll thresholds before
// gear/effect modifiers; rolled on a d100 via the injected dice.Roller.
const (
	baseCritChance  = 10 // percent
	baseDodgeChance = 5  // percent
	critMultiplier  = 1.5
)

// TechniqueSource resolves a technique id to its effect definition. catalog.Store
// satisfies this directly for pre-authored techniques; a procedurally
// generated technique's source (internal/technique) satisfies it for
// signature/ultimate techniques, which never land in the catalog.
type TechniqueSource interface {
	TechniqueByID(id string) (catalog.Technique, error)
}

// Resolver implements all combat operations: attacks, technique use, and
// the zone.DeathHandler death-consequence pipeline.
type Resolver struct {
	catalog    *catalog.Store
	generated  TechniqueSource // may be nil until internal/technique is wired
	roller     dice.Roller
	party      PartyProvider
	ledger     *goldledger.Ledger
	minter     LootMinter
	lootRoller selectables.SelectionContext
	bus        events.EventBus
	log        zerolog.Logger

	damageDealt   events.TypedTopic[DamageDealtEvent]
	techniqueUsed events.TypedTopic[TechniqueUsedEvent]
	entityLeveled events.TypedTopic[EntityLeveledEvent]
	mobKilled     events.TypedTopic[MobKilledEvent]
	playerRespawn events.TypedTopic[PlayerRespawnEvent]
}

// Config configures a Resolver.
type Config struct {
	Catalog           *catalog.Store
	GeneratedTechniques TechniqueSource
	Roller            dice.Roller
	Party             PartyProvider
	Ledger            *goldledger.Ledger
	EventBus          events.EventBus
	Log               zerolog.Logger
}

// NewResolver builds a Resolver. Roller defaults to a CryptoRoller and Party
// to SoloPartyProvider when left nil, so a Resolver is usable in tests with
// a minimal Config.
func NewResolver(cfg Config) *Resolver {
	roller := cfg.Roller
	if roller == nil {
		roller = &dice.CryptoRoller{}
	}
	party := cfg.Party
	if party == nil {
		party = SoloPartyProvider{}
	}

	r := &Resolver{
		catalog:    cfg.Catalog,
		generated:  cfg.GeneratedTechniques,
		roller:     roller,
		party:      party,
		ledger:     cfg.Ledger,
		lootRoller: selectables.NewSelectionContextWithRoller(roller),
		bus:        cfg.EventBus,
		log:        cfg.Log,
	}
	if cfg.EventBus != nil {
		r.damageDealt = DamageDealtTopic.On(cfg.EventBus)
		r.techniqueUsed = TechniqueUsedTopic.On(cfg.EventBus)
		r.entityLeveled = EntityLeveledTopic.On(cfg.EventBus)
		r.mobKilled = MobKilledTopic.On(cfg.EventBus)
		r.playerRespawn = PlayerRespawnTopic.On(cfg.EventBus)
	}
	return r
}

// lookupTechnique checks the catalog first, then the procedurally
// generated source, so a signature/ultimate technique resolves the same
// way a hand-authored one does.
func (r *Resolver) lookupTechnique(id string) (catalog.Technique, error) {
	if r.catalog != nil {
		if tech, err := r.catalog.TechniqueByID(id); err == nil {
			return tech, nil
		}
	}
	if r.generated != nil {
		if tech, err := r.generated.TechniqueByID(id); err == nil {
			return tech, nil
		}
	}
	return catalog.Technique{}, rpgerr.Newf(rpgerr.CodeNotFound, "technique %q not found", id)
}

// primaryStatForClass maps a class id to the stat key used in the damage
// formula's "primary_stat" term. Unknown/custom classes fall back to
// strength.
func primaryStatForClass(classID string) string {
	switch classID {
	case "mage", "warlock", "necromancer":
		return "intellect"
	case "cleric", "druid", "paladin":
		return "faith"
	case "rogue", "ranger", "monk":
		return "agility"
	default:
		return "strength"
	}
}

// techniqueBaseDamage computes floor(5 + primary_stat * 0.5) for the
// caster's primary stat, per the technique damage formula.
func techniqueBaseDamage(caster *zone.Entity) int {
	stat := caster.EffectiveStats[primaryStatForClass(caster.ClassID)]
	return int(5 + float64(stat)*0.5)
}

func newCorpseID() string {
	return "corpse-" + uuid.New().String()
}
