package combat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// TechniqueResult reports the outcome of a single UseTechnique call.
type TechniqueResult struct {
	TargetIDs []string
}

// UseTechnique validates and applies caster's use of techID against primary
// (nil for self/area techniques with no explicit target). Targets for an
// area technique are selected from z.EntitiesWithin(primary, areaRadius)
// up to maxTargets, always including primary itself if it is a valid target.
func (r *Resolver) UseTechnique(ctx context.Context, z *zone.Zone, caster *zone.Entity, techID string, primary *zone.Entity) (*TechniqueResult, error) {
	if caster.IsDead() {
		return nil, rpgerr.Newf(rpgerr.CodeInvalidState, "caster is dead")
	}

	learned := false
	for _, id := range caster.LearnedTechniques {
		if id == techID {
			learned = true
			break
		}
	}
	if !learned {
		return nil, rpgerr.Newf(rpgerr.CodePrerequisiteNotMet, "technique %q not learned", techID)
	}

	tech, err := r.lookupTechnique(techID)
	if err != nil {
		return nil, err
	}

	tick := z.Tick()
	if readyAt, onCooldown := caster.Cooldowns[techID]; onCooldown && tick < readyAt {
		return nil, rpgerr.NewfWithOpts(rpgerr.CodeCooldownActive, []rpgerr.Option{rpgerr.WithMeta("ready_at", readyAt)}, "technique %q still on cooldown", techID)
	}

	if caster.Essence < tech.EssenceCost {
		return nil, rpgerr.Newf(rpgerr.CodeResourceExhausted, "not enough essence for %q", techID)
	}

	targets, err := r.resolveTechniqueTargets(z, caster, tech, primary)
	if err != nil {
		return nil, err
	}

	caster.Essence -= tech.EssenceCost
	if tech.CooldownTicks > 0 {
		caster.Cooldowns[techID] = tick + uint64(tech.CooldownTicks)
	}

	for _, target := range targets {
		for _, fx := range tech.Effects {
			r.applyTechniqueEffect(z, caster, target, techID, fx, tick)
		}
	}

	if r.techniqueUsed != nil {
		ids := make([]string, 0, len(targets))
		for _, t := range targets {
			ids = append(ids, t.ID)
		}
		_ = r.techniqueUsed.Publish(context.Background(), TechniqueUsedEvent{
			ZoneID: z.ID(), CasterID: caster.ID, TechniqueID: techID, TargetIDs: ids,
			Tick: tick, At: time.Now(),
		})
	}

	out := &TechniqueResult{}
	for _, t := range targets {
		out.TargetIDs = append(out.TargetIDs, t.ID)
	}
	return out, nil
}

// resolveTechniqueTargets applies the technique's targetType to pick the
// final target set: self techniques ignore primary and target the caster;
// area techniques gather up to maxTargets within areaRadius of primary.
func (r *Resolver) resolveTechniqueTargets(z *zone.Zone, caster *zone.Entity, tech catalog.Technique, primary *zone.Entity) ([]*zone.Entity, error) {
	switch tech.TargetType {
	case "self":
		return []*zone.Entity{caster}, nil
	case "ally", "enemy":
		if primary == nil {
			return nil, rpgerr.Newf(rpgerr.CodeInvalidTarget, "technique %q requires a target", tech.ID)
		}
		return []*zone.Entity{primary}, nil
	case "area":
		if primary == nil {
			return nil, rpgerr.Newf(rpgerr.CodeInvalidTarget, "technique %q requires a target", tech.ID)
		}
		maxTargets := tech.MaxTargets
		if maxTargets <= 0 {
			maxTargets = 1
		}
		found := z.EntitiesWithin(zone.Position{X: primary.X, Y: primary.Y}, tech.AreaRadius, func(e *zone.Entity) bool {
			return (e.Kind == zone.EntityKindPlayer || e.Kind == zone.EntityKindMob) && !e.IsDead()
		})
		if len(found) > maxTargets {
			found = found[:maxTargets]
		}
		return found, nil
	default:
		return nil, rpgerr.Newf(rpgerr.CodeInvalidArgument, "unknown technique target type %q", tech.TargetType)
	}
}

// applyTechniqueEffect applies one structured technique effect to target:
// damage/heal land instantly, hot/dot/buff/debuff/shield create an
// ActiveEffect that the zone tick loop ticks down.
func (r *Resolver) applyTechniqueEffect(z *zone.Zone, caster, target *zone.Entity, techID string, fx catalog.TechniqueEffect, tick uint64) {
	switch fx.Kind {
	case "damage":
		amount := techniqueBaseDamage(caster) + int(fx.Amount)
		applied, absorbed := applyDamageWithShield(target, amount)
		target.LastAttackerID = caster.ID
		r.publishDamage(z, caster, target, applied, false, false, absorbed)
	case "heal":
		target.HP += int(fx.Amount)
		if target.HP > target.MaxHP {
			target.HP = target.MaxHP
		}
	case "hot":
		target.ActiveEffects = append(target.ActiveEffects, &zone.ActiveEffect{
			ID: uuid.New().String(), TechniqueID: techID, Name: techID, Type: zone.ActiveEffectHoT,
			CasterID: caster.ID, AppliedAtTick: tick, DurationTicks: fx.DurationTicks, RemainingTicks: fx.DurationTicks,
			HotHealPerTick: int(fx.Amount),
		})
	case "dot":
		target.ActiveEffects = append(target.ActiveEffects, &zone.ActiveEffect{
			ID: uuid.New().String(), TechniqueID: techID, Name: techID, Type: zone.ActiveEffectDoT,
			CasterID: caster.ID, AppliedAtTick: tick, DurationTicks: fx.DurationTicks, RemainingTicks: fx.DurationTicks,
			DotDamagePerTick: int(fx.Amount),
		})
	case "shield":
		target.ActiveEffects = append(target.ActiveEffects, &zone.ActiveEffect{
			ID: uuid.New().String(), TechniqueID: techID, Name: techID, Type: zone.ActiveEffectShield,
			CasterID: caster.ID, AppliedAtTick: tick, DurationTicks: fx.DurationTicks, RemainingTicks: fx.DurationTicks,
			ShieldHP: int(fx.Amount), ShieldMaxHP: int(fx.Amount),
		})
	case "buff":
		target.ActiveEffects = append(target.ActiveEffects, &zone.ActiveEffect{
			ID: uuid.New().String(), TechniqueID: techID, Name: techID, Type: zone.ActiveEffectBuff,
			CasterID: caster.ID, AppliedAtTick: tick, DurationTicks: fx.DurationTicks, RemainingTicks: fx.DurationTicks,
			StatModifiers: fx.StatModifiers,
		})
	case "debuff":
		target.ActiveEffects = append(target.ActiveEffects, &zone.ActiveEffect{
			ID: uuid.New().String(), TechniqueID: techID, Name: techID, Type: zone.ActiveEffectDebuff,
			CasterID: caster.ID, AppliedAtTick: tick, DurationTicks: fx.DurationTicks, RemainingTicks: fx.DurationTicks,
			StatModifiers: fx.StatModifiers,
		})
	}
}
