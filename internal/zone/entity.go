// Package zone owns the per-zone live simulation: entity maps, tick
// processing, spatial queries, and effect/cooldown bookkeeping. Zone state
// is the authoritative projection of what's happening in the world right
// now; the persistence store and chain driver are eventual-consistency
// views over it.
package zone

import (
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
)

// EntityKind distinguishes the lifecycle and tick behavior of a live entity.
type EntityKind string

const (
	EntityKindPlayer       EntityKind = "player"
	EntityKindMob          EntityKind = "mob"
	EntityKindResourceNode EntityKind = "resource_node"
	EntityKindCorpse       EntityKind = "corpse"
	EntityKindPortal       EntityKind = "portal"
)

// EquipmentSlot is one piece of worn equipment and its current condition.
type EquipmentSlot struct {
	TokenID       int
	Durability    int
	MaxDurability int
	Broken        bool
	Quality       string
	RolledStats   map[string]float64
	BonusAffix    string
}

// ActiveEffect is a buff/debuff/hot/dot/shield currently applied to an
// entity, expressed in ticks rather than wall-clock time.
type ActiveEffect struct {
	ID              string
	TechniqueID     string
	Name            string
	Type            ActiveEffectType
	CasterID        string
	AppliedAtTick   uint64
	DurationTicks   int
	RemainingTicks  int
	StatModifiers   map[string]float64
	HotHealPerTick  int
	DotDamagePerTick int
	ShieldHP        int
	ShieldMaxHP     int
}

// ActiveEffectType is the effect shape used to pick its per-tick behavior.
type ActiveEffectType string

const (
	ActiveEffectBuff  ActiveEffectType = "buff"
	ActiveEffectDebuff ActiveEffectType = "debuff"
	ActiveEffectHoT   ActiveEffectType = "hot"
	ActiveEffectDoT   ActiveEffectType = "dot"
	ActiveEffectShield ActiveEffectType = "shield"
)

// expired reports whether this effect should be dropped on the next tick
// boundary, per the "remainingTicks == 0" invariant.
func (e *ActiveEffect) expired() bool {
	return e.RemainingTicks <= 0
}

// Entity is the live, mutable simulation object placed in exactly one Zone.
// It satisfies core.Entity via GetID/GetType so it can be placed in a
// spatial.Room.
type Entity struct {
	ID   string
	Kind EntityKind

	Name string
	X, Y float64

	HP, MaxHP           int
	Essence, MaxEssence int

	WalletAddress     string
	CharacterTokenID  int
	Level             int
	XP                int
	XPReward          int
	RaceID            string
	ClassID           string
	Gender            string
	Kills             int

	Stats          map[string]int
	EffectiveStats map[string]int
	Equipment      map[string]EquipmentSlot // slot name -> item

	LearnedTechniques []string
	ActiveEffects     []*ActiveEffect
	Cooldowns         map[string]uint64 // techniqueID -> tick when ready
	CompletedQuests   []string
	Professions       []string

	// Resource-node-specific.
	Charges        int
	MaxCharges     int
	DepletedAtTick uint64
	RespawnTicks   uint64
	OreOrFlower    string
	NodeType       string // ore-node, flower-node
	Tier           int    // minimum tool tier required to gather

	// Corpse-specific.
	Skinned        bool
	SkinnableUntil uint64
	MobName        string
	DecayAtTick    uint64

	// LastAttackerID records who last dealt damage to this entity, so
	// HandleDeath can attribute a kill without the zone package needing to
	// know anything about combat or parties.
	LastAttackerID string
}

// GetID implements core.Entity.
func (e *Entity) GetID() string { return e.ID }

// GetType implements core.Entity.
func (e *Entity) GetType() string { return string(e.Kind) }

// IsDead reports the death invariant: hp has reached zero.
func (e *Entity) IsDead() bool { return e.HP <= 0 }

// NewPlayerFromTemplate builds a freshly spawned player entity with stats
// recomputed from scratch; used by spawn when no save exists for (wallet, name).
func NewPlayerFromTemplate(id, name, raceID, classID, gender string, level int, baseStats map[string]int) *Entity {
	stats := make(map[string]int, len(baseStats))
	for k, v := range baseStats {
		stats[k] = v
	}
	return &Entity{
		ID:                id,
		Kind:              EntityKindPlayer,
		Name:              name,
		RaceID:            raceID,
		ClassID:           classID,
		Gender:            gender,
		Level:             level,
		Stats:             stats,
		EffectiveStats:    map[string]int{},
		Equipment:         map[string]EquipmentSlot{},
		LearnedTechniques: []string{},
		ActiveEffects:     []*ActiveEffect{},
		Cooldowns:         map[string]uint64{},
		CompletedQuests:   []string{},
		Professions:       []string{},
	}
}

// NewMobFromTemplate builds a mob entity from a catalog mob template.
func NewMobFromTemplate(id string, tmpl catalog.MobTemplate, x, y float64) *Entity {
	stats := make(map[string]int, len(tmpl.Stats))
	for k, v := range tmpl.Stats {
		stats[k] = v
	}
	return &Entity{
		ID:             id,
		Kind:           EntityKindMob,
		Name:           tmpl.Name,
		MobName:        tmpl.Name,
		X:              x,
		Y:              y,
		Level:          tmpl.Level,
		HP:             tmpl.MaxHP,
		MaxHP:          tmpl.MaxHP,
		XPReward:       tmpl.XPReward,
		Stats:          stats,
		EffectiveStats: map[string]int{},
		Cooldowns:      map[string]uint64{},
	}
}

// NewResourceNode builds a resource node entity from a catalog node spawn.
func NewResourceNode(id string, spawn catalog.NodeSpawn) *Entity {
	return &Entity{
		ID:           id,
		Kind:         EntityKindResourceNode,
		X:            spawn.X,
		Y:            spawn.Y,
		Charges:      spawn.MaxCharges,
		MaxCharges:   spawn.MaxCharges,
		OreOrFlower:  spawn.OreOrFlower,
		NodeType:     spawn.Type,
		Tier:         spawn.Tier,
		RespawnTicks: uint64(spawn.RespawnTicks),
	}
}
