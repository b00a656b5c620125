package zone

import (
	"time"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/events"
)

// Typed topic definitions for zone-runtime events, following the same
// compile-time topic + .On(bus) pattern used throughout the event system.
var (
	EntityDiedTopic      = events.DefineTypedTopic[EntityDiedEvent]("zone.entity.died")
	CooldownExpiredTopic = events.DefineTypedTopic[CooldownExpiredEvent]("zone.cooldown.expired")
	EffectExpiredTopic   = events.DefineTypedTopic[EffectExpiredEvent]("zone.effect.expired")
	NodeRespawnedTopic   = events.DefineTypedTopic[NodeRespawnedEvent]("zone.node.respawned")
	CorpseDecayedTopic   = events.DefineTypedTopic[CorpseDecayedEvent]("zone.corpse.decayed")
)

// Event type strings: the names of the topics above. Bus.SubscribeFunc
// routes a plain name like these under a "legacy" ref, while the typed
// topics publish under a "topic" ref, so a SubscribeFunc handler does not
// receive these events.
const (
	EventEntityDied      = "zone.entity.died"
	EventCooldownExpired = "zone.cooldown.expired"
	EventEffectExpired   = "zone.effect.expired"
	EventNodeRespawned   = "zone.node.respawned"
	EventCorpseDecayed   = "zone.corpse.decayed"
)

// EntityDiedEvent is published when an entity's hp reaches zero during a tick.
// Combat (the killer's identity and any loot/XP distribution) lives outside
// this package; the runtime only reports the death and lets a DeathHandler
// decide what happens to the body.
type EntityDiedEvent struct {
	ZoneID   string    `json:"zone_id"`
	EntityID string    `json:"entity_id"`
	Kind     string    `json:"kind"`
	KillerID string    `json:"killer_id,omitempty"`
	Tick     uint64    `json:"tick"`
	DiedAt   time.Time `json:"died_at"`
}

// CooldownExpiredEvent is published when a technique's cooldown reaches
// the current tick and is cleared from an entity's cooldown map.
type CooldownExpiredEvent struct {
	ZoneID      string    `json:"zone_id"`
	EntityID    string    `json:"entity_id"`
	TechniqueID string    `json:"technique_id"`
	Tick        uint64    `json:"tick"`
	ExpiredAt   time.Time `json:"expired_at"`
}

// EffectExpiredEvent is published when an ActiveEffect's remainingTicks
// reaches zero and it is removed from an entity.
type EffectExpiredEvent struct {
	ZoneID    string    `json:"zone_id"`
	EntityID  string    `json:"entity_id"`
	EffectID  string    `json:"effect_id"`
	Tick      uint64    `json:"tick"`
	ExpiredAt time.Time `json:"expired_at"`
}

// NodeRespawnedEvent is published when a depleted resource node regenerates
// to full charges.
type NodeRespawnedEvent struct {
	ZoneID      string    `json:"zone_id"`
	EntityID    string    `json:"entity_id"`
	MaxCharges  int       `json:"max_charges"`
	Tick        uint64    `json:"tick"`
	RespawnedAt time.Time `json:"respawned_at"`
}

// CorpseDecayedEvent is published when a corpse's decay deadline passes and
// it is removed from the zone.
type CorpseDecayedEvent struct {
	ZoneID    string    `json:"zone_id"`
	EntityID  string    `json:"entity_id"`
	Tick      uint64    `json:"tick"`
	DecayedAt time.Time `json:"decayed_at"`
}
