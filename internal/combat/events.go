package combat

import (
	"time"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/events"
)

// Typed topic definitions for combat events, following the same
// compile-time topic + .On(bus) pattern used throughout the event system.
var (
	DamageDealtTopic   = events.DefineTypedTopic[DamageDealtEvent]("combat.damage.dealt")
	TechniqueUsedTopic = events.DefineTypedTopic[TechniqueUsedEvent]("combat.technique.used")
	EntityLeveledTopic = events.DefineTypedTopic[EntityLeveledEvent]("combat.entity.leveled")
	MobKilledTopic     = events.DefineTypedTopic[MobKilledEvent]("combat.mob.killed")
	PlayerRespawnTopic = events.DefineTypedTopic[PlayerRespawnEvent]("combat.player.respawned")
)

// DamageDealtEvent is published for every point of damage (or heal, as a
// negative amount) resolved by an attack or technique effect.
type DamageDealtEvent struct {
	ZoneID     string    `json:"zone_id"`
	SourceID   string    `json:"source_id"`
	TargetID   string    `json:"target_id"`
	Amount     int       `json:"amount"`
	Crit       bool      `json:"crit"`
	Dodged     bool      `json:"dodged"`
	ShieldAbsorbed int   `json:"shield_absorbed"`
	Tick       uint64    `json:"tick"`
	At         time.Time `json:"at"`
}

// TechniqueUsedEvent is published each time an entity successfully uses a technique.
type TechniqueUsedEvent struct {
	ZoneID      string    `json:"zone_id"`
	CasterID    string    `json:"caster_id"`
	TechniqueID string    `json:"technique_id"`
	TargetIDs   []string  `json:"target_ids"`
	Tick        uint64    `json:"tick"`
	At          time.Time `json:"at"`
}

// EntityLeveledEvent is published when an entity crosses a level threshold.
type EntityLeveledEvent struct {
	ZoneID   string    `json:"zone_id"`
	EntityID string    `json:"entity_id"`
	OldLevel int       `json:"old_level"`
	NewLevel int       `json:"new_level"`
	At       time.Time `json:"at"`
}

// MobKilledEvent is published once a mob's death consequences (XP split,
// loot, corpse) have been applied.
type MobKilledEvent struct {
	ZoneID    string    `json:"zone_id"`
	MobID     string    `json:"mob_id"`
	KillerID  string    `json:"killer_id"`
	XPAwarded map[string]int `json:"xp_awarded"`
	GoldDrop  int       `json:"gold_drop"`
	CorpseID  string    `json:"corpse_id,omitempty"`
	Tick      uint64    `json:"tick"`
	At        time.Time `json:"at"`
}

// PlayerRespawnEvent is published when a dead player is respawned at their
// zone's graveyard.
type PlayerRespawnEvent struct {
	ZoneID   string    `json:"zone_id"`
	EntityID string    `json:"entity_id"`
	XPDebt   int       `json:"xp_debt"`
	Tick     uint64    `json:"tick"`
	At       time.Time `json:"at"`
}
