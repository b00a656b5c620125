package action

import (
	"context"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// Attack implements attack(entityId, targetId), delegating the actual
// resolution formula to combat.Resolver.
func (d *Dispatcher) Attack(ctx context.Context, auth AuthContext, zoneID, entityID, targetID string) (*AttackResponse, error) {
	z := d.runtime.GetOrCreateZone(zoneID)
	attacker, err := getOwnedEntity(auth, z, entityID)
	if err != nil {
		return nil, err
	}
	target, ok := z.Get(targetID)
	if !ok {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "target %q not found", targetID)
	}

	result, err := d.combat.ResolveAttack(ctx, z, attacker, target)
	if err != nil {
		return nil, err
	}
	if result.TargetKilled && d.quest != nil && target.Kind == zone.EntityKindMob {
		d.quest.Record(attacker.WalletAddress, "kill", target.Name, d.questDefs())
	}
	return &AttackResponse{
		Damage: result.Damage, Crit: result.Crit, Dodged: result.Dodged,
		ShieldAbsorbed: result.ShieldAbsorbed, Lifesteal: result.Lifesteal, TargetKilled: result.TargetKilled,
	}, nil
}

type AttackResponse struct {
	Damage         int
	Crit           bool
	Dodged         bool
	ShieldAbsorbed int
	Lifesteal      int
	TargetKilled   bool
}

// UseTechnique implements use_technique(entityId, techId, targetId?),
// delegating validation and effect application to combat.Resolver.
func (d *Dispatcher) UseTechnique(ctx context.Context, auth AuthContext, zoneID, entityID, techID, targetID string) (*UseTechniqueResponse, error) {
	z := d.runtime.GetOrCreateZone(zoneID)
	caster, err := getOwnedEntity(auth, z, entityID)
	if err != nil {
		return nil, err
	}

	targetEntity, err := resolveOptionalTarget(z, targetID)
	if err != nil {
		return nil, err
	}

	result, err := d.combat.UseTechnique(ctx, z, caster, techID, targetEntity)
	if err != nil {
		return nil, err
	}
	return &UseTechniqueResponse{TargetIDs: result.TargetIDs, CasterEssence: caster.Essence, CooldownExpiresAtTick: caster.Cooldowns[techID]}, nil
}

type UseTechniqueResponse struct {
	TargetIDs             []string
	CasterEssence         int
	CooldownExpiresAtTick uint64
}

// resolveOptionalTarget looks up targetID if non-empty, failing if it
// names an entity that doesn't exist.
func resolveOptionalTarget(z *zone.Zone, targetID string) (*zone.Entity, error) {
	if targetID == "" {
		return nil, nil
	}
	target, ok := z.Get(targetID)
	if !ok {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "target %q not found", targetID)
	}
	return target, nil
}
