package zone

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/events"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// defaultBounds is used when a zone has no catalog layout (e.g. a test
// fixture or a zone created ahead of its layout file landing).
var defaultBounds = Bounds{Width: 1000, Height: 1000}

// DeathHandler is invoked once per entity death discovered during a tick.
// The zone runtime only detects hp <= 0 and fires EntityDiedTopic; what
// happens next (loot, XP split, corpse creation) is combat's job, injected
// here to avoid an import cycle between zone and combat.
type DeathHandler interface {
	HandleDeath(z *Zone, e *Entity, tick uint64)
}

// Runtime owns every live zone and drives the tick loop.
type Runtime struct {
	catalog *catalog.Store
	bus     events.EventBus
	log     zerolog.Logger

	regenFraction float64 // fraction of max hp/essence restored per tick

	entityDied      events.TypedTopic[EntityDiedEvent]
	cooldownExpired events.TypedTopic[CooldownExpiredEvent]
	effectExpired   events.TypedTopic[EffectExpiredEvent]
	nodeRespawned   events.TypedTopic[NodeRespawnedEvent]
	corpseDecayed   events.TypedTopic[CorpseDecayedEvent]

	mu           sync.RWMutex
	zones        map[string]*Zone
	deathHandler DeathHandler
}

// RuntimeConfig configures a Runtime.
type RuntimeConfig struct {
	Catalog       *catalog.Store
	EventBus      events.EventBus
	Log           zerolog.Logger
	RegenFraction float64 // default 0.01 (1% of max per tick) if zero
}

// NewRuntime creates a Runtime with no zones yet loaded.
func NewRuntime(cfg RuntimeConfig) *Runtime {
	regen := cfg.RegenFraction
	if regen <= 0 {
		regen = 0.01
	}
	r := &Runtime{
		catalog:       cfg.Catalog,
		bus:           cfg.EventBus,
		log:           cfg.Log,
		regenFraction: regen,
		zones:         make(map[string]*Zone),
	}
	if cfg.EventBus != nil {
		r.entityDied = EntityDiedTopic.On(cfg.EventBus)
		r.cooldownExpired = CooldownExpiredTopic.On(cfg.EventBus)
		r.effectExpired = EffectExpiredTopic.On(cfg.EventBus)
		r.nodeRespawned = NodeRespawnedTopic.On(cfg.EventBus)
		r.corpseDecayed = CorpseDecayedTopic.On(cfg.EventBus)
	}
	return r
}

// SetDeathHandler installs the combat-layer death handler. Combat wires
// itself in at startup; until then, deaths are only logged.
func (r *Runtime) SetDeathHandler(h DeathHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deathHandler = h
}

// GetOrCreateZone returns the zone for id, creating it from the catalog
// layout (or defaultBounds if no layout is registered) on first access.
func (r *Runtime) GetOrCreateZone(id string) *Zone {
	r.mu.Lock()
	defer r.mu.Unlock()

	if z, ok := r.zones[id]; ok {
		return z
	}

	bounds := defaultBounds
	if r.catalog != nil {
		if layout, err := r.catalog.ZoneLayout(id); err == nil {
			bounds = Bounds{Width: layout.Width, Height: layout.Height}
		}
	}

	z := NewZone(Config{ID: id, Bounds: bounds, EventBus: r.bus})
	r.zones[id] = z
	return z
}

// Transfer moves entityID from fromZoneID to toZoneID, placing it at
// (destX, destY) in the destination zone. Used by portal interaction and
// /transition/auto.
func (r *Runtime) Transfer(entityID, fromZoneID, toZoneID string, destX, destY float64) (*Entity, error) {
	from := r.GetOrCreateZone(fromZoneID)
	e, ok := from.Get(entityID)
	if !ok {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "entity %q not found in zone %q", entityID, fromZoneID)
	}
	origX, origY := e.X, e.Y
	if err := from.Remove(entityID); err != nil {
		return nil, err
	}

	to := r.GetOrCreateZone(toZoneID)
	if err := to.Place(e, destX, destY); err != nil {
		// best-effort: put the entity back where it was rather than lose it
		_ = from.Place(e, origX, origY)
		return nil, rpgerr.Newf(rpgerr.CodeInvalidState, "transfer placement failed: %v", err)
	}
	return e, nil
}

// Zones returns every zone currently loaded, for admin/debug surfaces.
func (r *Runtime) Zones() []*Zone {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Zone, 0, len(r.zones))
	for _, z := range r.zones {
		out = append(out, z)
	}
	return out
}

// Tick advances every loaded zone by one tick period. Per zone, processing
// runs in a fixed order: effect ticks, cooldown expiry, regen, vitals
// recompute and death check, resource node respawn, corpse decay. The tick
// runs no mob AI behaviors.
func (r *Runtime) Tick() {
	r.mu.RLock()
	zones := make([]*Zone, 0, len(r.zones))
	for _, z := range r.zones {
		zones = append(zones, z)
	}
	handler := r.deathHandler
	r.mu.RUnlock()

	for _, z := range zones {
		r.tickZone(z, handler)
	}
}

func (r *Runtime) tickZone(z *Zone, handler DeathHandler) {
	z.mu.Lock()
	z.tick++
	tick := z.tick
	z.mu.Unlock()

	now := time.Now()

	for _, e := range z.All() {
		switch e.Kind {
		case EntityKindPlayer, EntityKindMob:
			r.tickEffects(z, e, tick, now)
			r.tickCooldowns(z, e, tick, now)
			r.tickRegen(e)
			r.RecalculateEntityVitals(e)
			if e.IsDead() {
				r.handleDeath(z, e, tick, now, handler)
			}
		case EntityKindResourceNode:
			r.tickResourceNode(z, e, tick, now)
		case EntityKindCorpse:
			r.tickCorpse(z, e, tick, now)
		}
	}
}

// tickEffects applies HoT heals and DoT damage, decrements remaining
// durations, and drops expired effects.
func (r *Runtime) tickEffects(z *Zone, e *Entity, tick uint64, now time.Time) {
	kept := e.ActiveEffects[:0]
	for _, eff := range e.ActiveEffects {
		switch eff.Type {
		case ActiveEffectHoT:
			e.HP += eff.HotHealPerTick
		case ActiveEffectDoT:
			e.HP -= eff.DotDamagePerTick
		}
		if e.HP > e.MaxHP {
			e.HP = e.MaxHP
		}
		if e.HP < 0 {
			e.HP = 0
		}

		eff.RemainingTicks--
		if eff.expired() {
			if r.effectExpired != nil {
				_ = r.effectExpired.Publish(context.Background(), EffectExpiredEvent{
					ZoneID: z.id, EntityID: e.ID, EffectID: eff.ID, Tick: tick, ExpiredAt: now,
				})
			}
			continue
		}
		kept = append(kept, eff)
	}
	e.ActiveEffects = kept
}

// tickCooldowns drops any technique cooldown that has reached the current tick.
func (r *Runtime) tickCooldowns(z *Zone, e *Entity, tick uint64, now time.Time) {
	for techID, readyAt := range e.Cooldowns {
		if tick >= readyAt {
			delete(e.Cooldowns, techID)
			if r.cooldownExpired != nil {
				_ = r.cooldownExpired.Publish(context.Background(), CooldownExpiredEvent{
					ZoneID: z.id, EntityID: e.ID, TechniqueID: techID, Tick: tick, ExpiredAt: now,
				})
			}
		}
	}
}

// tickRegen restores a fraction of max hp/essence per tick, clamped to max.
func (r *Runtime) tickRegen(e *Entity) {
	if e.HP > 0 && e.HP < e.MaxHP {
		gain := int(float64(e.MaxHP) * r.regenFraction)
		if gain < 1 {
			gain = 1
		}
		e.HP += gain
		if e.HP > e.MaxHP {
			e.HP = e.MaxHP
		}
	}
	if e.MaxEssence > 0 && e.Essence < e.MaxEssence {
		gain := int(float64(e.MaxEssence) * r.regenFraction)
		if gain < 1 {
			gain = 1
		}
		e.Essence += gain
		if e.Essence > e.MaxEssence {
			e.Essence = e.MaxEssence
		}
	}
}

// RecalculateEntityVitals recomputes effectiveStats as base stats plus
// equipment bonuses (broken items excluded) plus the sum of active
// buff/debuff stat modifiers, then clamps current hp/essence to the new max.
func (r *Runtime) RecalculateEntityVitals(e *Entity) {
	RecalculateVitals(e)
}

// RecalculateVitals is the standalone form of (*Runtime).RecalculateEntityVitals,
// exported so combat can recompute vitals after a level-up or gear change
// without needing a Runtime handle.
func RecalculateVitals(e *Entity) {
	eff := make(map[string]int, len(e.Stats))
	for k, v := range e.Stats {
		eff[k] = v
	}

	for _, item := range e.Equipment {
		if item.Broken {
			continue
		}
		for stat, bonus := range item.RolledStats {
			eff[stat] += int(bonus)
		}
	}

	for _, active := range e.ActiveEffects {
		for stat, mod := range active.StatModifiers {
			eff[stat] += int(mod)
		}
	}

	e.EffectiveStats = eff

	if maxHP, ok := eff["maxHp"]; ok && maxHP > 0 {
		e.MaxHP = maxHP
		if e.HP > e.MaxHP {
			e.HP = e.MaxHP
		}
	}
	if maxEssence, ok := eff["maxEssence"]; ok && maxEssence > 0 {
		e.MaxEssence = maxEssence
		if e.Essence > e.MaxEssence {
			e.Essence = e.MaxEssence
		}
	}
}

func (r *Runtime) handleDeath(z *Zone, e *Entity, tick uint64, now time.Time, handler DeathHandler) {
	if r.entityDied != nil {
		_ = r.entityDied.Publish(context.Background(), EntityDiedEvent{
			ZoneID: z.id, EntityID: e.ID, Kind: string(e.Kind), Tick: tick, DiedAt: now,
		})
	}
	if handler != nil {
		handler.HandleDeath(z, e, tick)
		return
	}
	r.log.Warn().Str("zone", z.id).Str("entity", e.ID).Msg("zone: entity died with no death handler installed")
}

// tickResourceNode regenerates a depleted node once currentTick - depletedAtTick
// reaches respawnTicks.
func (r *Runtime) tickResourceNode(z *Zone, e *Entity, tick uint64, now time.Time) {
	if e.Charges > 0 {
		return
	}
	if tick-e.DepletedAtTick < e.RespawnTicks {
		return
	}
	e.Charges = e.MaxCharges
	e.DepletedAtTick = 0
	if r.nodeRespawned != nil {
		_ = r.nodeRespawned.Publish(context.Background(), NodeRespawnedEvent{
			ZoneID: z.id, EntityID: e.ID, MaxCharges: e.MaxCharges, Tick: tick, RespawnedAt: now,
		})
	}
}

// tickCorpse removes a corpse once its decay deadline has passed.
func (r *Runtime) tickCorpse(z *Zone, e *Entity, tick uint64, now time.Time) {
	if tick < e.DecayAtTick {
		return
	}
	if err := z.Remove(e.ID); err != nil {
		return
	}
	if r.corpseDecayed != nil {
		_ = r.corpseDecayed.Publish(context.Background(), CorpseDecayedEvent{
			ZoneID: z.id, EntityID: e.ID, Tick: tick, DecayedAt: now,
		})
	}
}
