package combat

import (
	"context"
	"math"
	"time"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// lifestealFraction is the share of dealt damage returned as healing when
// the attacker's weapon carries the "lifesteal" catalog property. The
// catalog has no numeric lifesteal field (see DESIGN.md), so the fraction
// is a fixed constant rather than per-item data.
const lifestealFraction = 0.15

// AttackResult reports the outcome of a single ResolveAttack call.
type AttackResult struct {
	Damage         int
	Crit           bool
	Dodged         bool
	ShieldAbsorbed int
	Lifesteal      int
	TargetKilled   bool
}

// ResolveAttack resolves attacker's equipped main-hand weapon attack against
// target: range check, crit/dodge rolls, shield absorption, damage
// application, and lifesteal. It does not handle death consequences -- the
// zone tick loop detects target.IsDead() and invokes HandleDeath next tick.
func (r *Resolver) ResolveAttack(ctx context.Context, z *zone.Zone, attacker, target *zone.Entity) (*AttackResult, error) {
	if attacker.IsDead() || target.IsDead() {
		return nil, rpgerr.Newf(rpgerr.CodeInvalidTarget, "attacker or target already dead")
	}

	dx := attacker.X - target.X
	dy := attacker.Y - target.Y
	if math.Hypot(dx, dy) > attackRangeUnits {
		return nil, rpgerr.Newf(rpgerr.CodeOutOfRange, "target out of attack range")
	}

	weapon, hasWeapon := attacker.Equipment["weapon"]

	dodgeRoll, err := r.roller.Roll(ctx, 100)
	if err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeInternal, "attack dodge roll failed: %v", err)
	}
	if dodgeRoll <= baseDodgeChance {
		r.publishDamage(z, attacker, target, 0, false, true, 0)
		return &AttackResult{Dodged: true}, nil
	}

	base := weaponBaseDamage(weapon, hasWeapon) + attacker.EffectiveStats["strength"]

	critRoll, err := r.roller.Roll(ctx, 100)
	if err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeInternal, "attack crit roll failed: %v", err)
	}
	crit := critRoll <= baseCritChance
	if crit {
		base = int(float64(base) * critMultiplier)
	}

	applied, absorbed := applyDamageWithShield(target, base)

	lifesteal := 0
	if hasWeapon && hasLifestealProperty(r.itemProperties(weapon.TokenID)) {
		missing := attacker.MaxHP - attacker.HP
		lifesteal = int(float64(applied) * lifestealFraction)
		if lifesteal > missing {
			lifesteal = missing
		}
		attacker.HP += lifesteal
		if attacker.HP > attacker.MaxHP {
			attacker.HP = attacker.MaxHP
		}
	}

	target.LastAttackerID = attacker.ID

	r.publishDamage(z, attacker, target, applied, crit, false, absorbed)

	return &AttackResult{
		Damage:         applied,
		Crit:           crit,
		ShieldAbsorbed: absorbed,
		Lifesteal:      lifesteal,
		TargetKilled:   target.IsDead(),
	}, nil
}

func (r *Resolver) itemProperties(tokenID int) []string {
	if r.catalog == nil {
		return nil
	}
	item, err := r.catalog.ItemByTokenID(tokenID)
	if err != nil {
		return nil
	}
	return item.Properties
}

func hasLifestealProperty(props []string) bool {
	for _, p := range props {
		if p == "lifesteal" {
			return true
		}
	}
	return false
}

// weaponBaseDamage returns the equipped weapon's flat damage contribution.
// Unarmed attacks (no weapon equipped) use a small fixed base.
func weaponBaseDamage(weapon zone.EquipmentSlot, hasWeapon bool) int {
	if !hasWeapon {
		return 2
	}
	// RolledStats carries any "damage" affix rolled onto the item at mint
	// time; absent that, every weapon uses the same flat base of 5.
	if dmg, ok := weapon.RolledStats["damage"]; ok {
		return int(dmg)
	}
	return 5
}

// applyDamageWithShield absorbs incoming damage against the target's active
// shield effects (oldest first) before subtracting the remainder from hp,
// and returns (hp damage applied, amount absorbed by shields).
func applyDamageWithShield(target *zone.Entity, amount int) (applied, absorbed int) {
	remaining := amount
	for _, eff := range target.ActiveEffects {
		if eff.Type != zone.ActiveEffectShield || eff.ShieldHP <= 0 || remaining <= 0 {
			continue
		}
		take := remaining
		if take > eff.ShieldHP {
			take = eff.ShieldHP
		}
		eff.ShieldHP -= take
		remaining -= take
		absorbed += take
	}
	target.HP -= remaining
	if target.HP < 0 {
		target.HP = 0
	}
	return remaining, absorbed
}

func (r *Resolver) publishDamage(z *zone.Zone, attacker, target *zone.Entity, amount int, crit, dodged bool, absorbed int) {
	if r.damageDealt == nil {
		return
	}
	_ = r.damageDealt.Publish(context.Background(), DamageDealtEvent{
		ZoneID: z.ID(), SourceID: attacker.ID, TargetID: target.ID,
		Amount: amount, Crit: crit, Dodged: dodged, ShieldAbsorbed: absorbed,
		Tick: z.Tick(), At: time.Now(),
	})
}
