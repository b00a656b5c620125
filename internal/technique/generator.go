package technique

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
)

// generate deterministically builds a technique from a (wallet, classID,
// tier) triple: same inputs always produce the same technique, byte for
// byte, since every choice is drawn from a single mulberry32 stream seeded
// by seedFromInputs.
func generate(wallet, classID, tier string) catalog.Technique {
	rng := newMulberry32(seedFromInputs(wallet, classID, tier))
	budget := budgetFor(tier)

	weights := archetypeFor(classID)
	kind := effectType([]effectType{typeAttack, typeBuff, typeDebuff, typeHealing}[rng.weighted(weights[:])])

	effects := []catalog.TechniqueEffect{primaryEffect(kind, budget, rng)}

	if combo := secondaryCombos[rng.Intn(len(secondaryCombos))]; combo != "" {
		effects = append(effects, secondaryEffect(combo, budget, rng))
	}

	targetType := targetTypeFor(kind)
	maxTargets := 1
	areaRadius := 0.0
	if targetType == "enemy" && rng.Float64() < 0.25 {
		targetType = "area"
		maxTargets = 2 + rng.Intn(3)
		areaRadius = 4 + rng.Float64()*4
	}

	return catalog.Technique{
		ID:            techniqueID(wallet, classID, tier),
		Name:          generateName(classID, kind, tier, rng),
		ClassID:       classID,
		TargetType:    targetType,
		EssenceCost:   budget.EssenceCost,
		CooldownTicks: budget.CooldownTicks,
		MaxTargets:    maxTargets,
		AreaRadius:    areaRadius,
		Effects:       effects,
	}
}

func primaryEffect(kind effectType, budget tierBudget, rng *mulberry32) catalog.TechniqueEffect {
	switch kind {
	case typeAttack:
		return catalog.TechniqueEffect{Kind: "damage", Amount: roll(rng, 8, 20) * budget.DamageMultiplier}
	case typeHealing:
		return catalog.TechniqueEffect{Kind: "heal", Amount: roll(rng, 10, 25) * budget.DamageMultiplier}
	case typeDebuff:
		return catalog.TechniqueEffect{
			Kind:          "debuff",
			DurationTicks: budget.DurationTicks,
			StatModifiers: map[string]float64{"strength": -roll(rng, 2, 6)},
		}
	case typeBuff:
		fallthrough
	default:
		return catalog.TechniqueEffect{
			Kind:          "buff",
			DurationTicks: budget.DurationTicks,
			StatModifiers: map[string]float64{"strength": roll(rng, 2, 6)},
		}
	}
}

func secondaryEffect(combo string, budget tierBudget, rng *mulberry32) catalog.TechniqueEffect {
	switch combo {
	case "dot":
		return catalog.TechniqueEffect{Kind: "dot", Amount: roll(rng, 2, 6) * budget.DamageMultiplier, DurationTicks: budget.DurationTicks}
	case "shield":
		return catalog.TechniqueEffect{Kind: "shield", Amount: roll(rng, 10, 25) * budget.DamageMultiplier, DurationTicks: budget.DurationTicks}
	case "heal":
		return catalog.TechniqueEffect{Kind: "heal", Amount: roll(rng, 5, 12) * budget.DamageMultiplier}
	case "statBuff":
		return catalog.TechniqueEffect{Kind: "buff", DurationTicks: budget.DurationTicks, StatModifiers: map[string]float64{"agility": roll(rng, 2, 5)}}
	case "statDebuff":
		return catalog.TechniqueEffect{Kind: "debuff", DurationTicks: budget.DurationTicks, StatModifiers: map[string]float64{"agility": -roll(rng, 2, 5)}}
	default:
		return catalog.TechniqueEffect{}
	}
}

// roll draws a float64 in [min, max) from the stream.
func roll(rng *mulberry32, min, max int) float64 {
	return float64(min) + rng.Float64()*float64(max-min)
}

func generateName(classID string, kind effectType, tier string, rng *mulberry32) string {
	category := loreCategoryFor(classID)
	prefixes := namePrefixes[category]
	cores := nameCores[kind]
	suffixes := nameSuffixesByTier[tier]

	prefix := prefixes[rng.Intn(len(prefixes))]
	core := cores[rng.Intn(len(cores))]
	suffix := suffixes[rng.Intn(len(suffixes))]

	return prefix + " " + core + suffix
}

// techniqueID builds the generated technique's id as
// essence_{tier}_{hex8(wallet)}_{classId}, matching the convention
// on-chain token ids use elsewhere for derived, reproducible identifiers.
func techniqueID(wallet, classID, tier string) string {
	sum := sha256.Sum256([]byte(wallet))
	return fmt.Sprintf("essence_%s_%s_%s", tier, hex.EncodeToString(sum[:])[:8], classID)
}
