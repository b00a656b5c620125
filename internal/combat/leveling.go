package combat

import (
	"context"
	"time"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// maxLevel bounds the XP table; level 30 grants the ultimate technique,
// and nothing is defined beyond it.
const maxLevel = 30

// xpDebtFraction is the share of the XP needed to advance from the entity's
// current level to the next that is lost on death. 10% matches the convention used
// for the mob-kill party bonus elsewhere in this package (see DESIGN.md).
const xpDebtFraction = 0.10

// xpForLevel returns the total XP required to reach level, deterministic
// and monotonic so save/restore never has to store anything beyond the
// raw xp counter.
func xpForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return 100 * level * level
}

// signatureLevel and ultimateLevel are the levels at which a procedurally
// generated technique is auto-granted.
const (
	signatureLevel = 15
	ultimateLevel  = 30
)

// SignatureGenerator produces the procedurally generated technique granted
// at the signature (15) and ultimate (30) level thresholds. Implemented by
// internal/technique; kept as an interface here so combat has no import
// dependency on it.
type SignatureGenerator interface {
	Generate(wallet, classID, tier string) (id string, err error)
}

// AddXP credits amount xp to e, applying every level-up it crosses (stat
// recompute per growth curve, and signature/ultimate auto-grant when gen is
// non-nil) in order. Every caller in the tree (death handling, quest
// turn-in) passes a nil gen, so no signature or ultimate technique is
// granted.
func (r *Resolver) AddXP(z *zone.Zone, e *zone.Entity, amount int, gen SignatureGenerator) {
	if amount <= 0 || e.Level >= maxLevel {
		return
	}
	oldLevel := e.Level
	e.XP += amount

	for e.Level < maxLevel && e.XP >= xpForLevel(e.Level+1) {
		e.Level++
		applyGrowth(e)

		if gen != nil {
			switch e.Level {
			case signatureLevel:
				if id, err := gen.Generate(e.WalletAddress, e.ClassID, "rare"); err == nil {
					e.LearnedTechniques = append(e.LearnedTechniques, id)
				}
			case ultimateLevel:
				if id, err := gen.Generate(e.WalletAddress, e.ClassID, "epic"); err == nil {
					e.LearnedTechniques = append(e.LearnedTechniques, id)
				}
			}
		}
	}

	if e.Level != oldLevel {
		r.RecalculateEntityVitals(e)
		if r.entityLeveled != nil {
			_ = r.entityLeveled.Publish(context.Background(), EntityLeveledEvent{
				ZoneID: z.ID(), EntityID: e.ID, OldLevel: oldLevel, NewLevel: e.Level, At: time.Now(),
			})
		}
	}
}

// applyGrowth adds one level's worth of stat growth. Growth is flat per
// level rather than a per-race/class curve table, since no such table is
// authored in the catalog yet (see DESIGN.md).
func applyGrowth(e *zone.Entity) {
	for stat := range e.Stats {
		e.Stats[stat] += 1
	}
}

// applyXPDebt subtracts xpDebtFraction of the XP needed to advance from the
// entity's current level to the next from its xp total, floored at the
// level's own threshold
// (debt never demotes a level, only slows progress to the next one).
func applyXPDebt(e *zone.Entity) int {
	floor := xpForLevel(e.Level)
	debt := int(float64(xpForLevel(e.Level+1)-floor) * xpDebtFraction)
	if e.XP-debt < floor {
		debt = e.XP - floor
	}
	e.XP -= debt
	return debt
}

// RecalculateEntityVitals delegates to zone.RecalculateVitals so combat and
// the tick loop never drift on how effectiveStats is computed.
func (r *Resolver) RecalculateEntityVitals(e *zone.Entity) {
	zone.RecalculateVitals(e)
}
