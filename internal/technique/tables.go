package technique

// effectType mirrors catalog.TechniqueEffect.Kind's vocabulary, restricted
// to the subset a generated technique ever produces as its primary effect.
type effectType string

const (
	typeAttack  effectType = "attack"
	typeBuff    effectType = "buff"
	typeDebuff  effectType = "debuff"
	typeHealing effectType = "healing"
)

// archetypeWeights gives each class's weighting across the four technique
// types, in typeAttack/typeBuff/typeDebuff/typeHealing order. Unlisted
// classes use a flat archetype.
var archetypeWeights = map[string][4]int{
	"warrior":     {60, 25, 10, 5},
	"rogue":       {65, 15, 15, 5},
	"ranger":      {55, 20, 15, 10},
	"monk":        {50, 20, 20, 10},
	"mage":        {45, 10, 35, 10},
	"warlock":     {35, 10, 45, 10},
	"necromancer": {30, 10, 50, 10},
	"cleric":      {10, 25, 5, 60},
	"druid":       {15, 30, 10, 45},
	"paladin":     {25, 35, 5, 35},
}

var flatArchetype = [4]int{30, 25, 20, 25}

func archetypeFor(classID string) [4]int {
	if w, ok := archetypeWeights[classID]; ok {
		return w
	}
	return flatArchetype
}

// targetTypeFor maps a generated effect type to its technique target type.
func targetTypeFor(t effectType) string {
	switch t {
	case typeAttack, typeDebuff:
		return "enemy"
	case typeBuff, typeHealing:
		return "ally"
	default:
		return "enemy"
	}
}

// tierBudget is the power budget envelope for a generation tier: damage/
// heal multiplier applied to the base formula, essence cost, and cooldown.
type tierBudget struct {
	DamageMultiplier float64
	EssenceCost      int
	CooldownTicks    int
	DurationTicks    int
}

var tierBudgets = map[string]tierBudget{
	"common":   {DamageMultiplier: 1.0, EssenceCost: 8, CooldownTicks: 4, DurationTicks: 3},
	"uncommon": {DamageMultiplier: 1.3, EssenceCost: 12, CooldownTicks: 5, DurationTicks: 4},
	"rare":     {DamageMultiplier: 1.7, EssenceCost: 18, CooldownTicks: 6, DurationTicks: 5},
	"epic":     {DamageMultiplier: 2.2, EssenceCost: 25, CooldownTicks: 8, DurationTicks: 6},
}

func budgetFor(tier string) tierBudget {
	if b, ok := tierBudgets[tier]; ok {
		return b
	}
	return tierBudgets["common"]
}

// secondaryCombos are the possible secondary effect kinds a generated
// technique may roll in addition to its primary effect.
var secondaryCombos = []string{"", "dot", "shield", "heal", "statBuff", "statDebuff"}

// loreCategory buckets a class into a naming theme.
func loreCategoryFor(classID string) string {
	switch classID {
	case "mage", "warlock", "necromancer":
		return "arcane"
	case "cleric", "druid", "paladin":
		return "divine"
	default:
		return "martial"
	}
}

var namePrefixes = map[string][]string{
	"arcane":  {"Astral", "Void", "Ember", "Runic", "Spectral"},
	"divine":  {"Sacred", "Radiant", "Hallowed", "Blessed", "Celestial"},
	"martial": {"Iron", "Storm", "Savage", "Blood", "Swift"},
}

var nameCores = map[effectType][]string{
	typeAttack:  {"Strike", "Blast", "Cleave", "Bolt", "Slash"},
	typeBuff:    {"Ward", "Resolve", "Fervor", "Aegis", "Vigor"},
	typeDebuff:  {"Blight", "Hex", "Rupture", "Curse", "Sunder"},
	typeHealing: {"Mending", "Renewal", "Grace", "Solace", "Bloom"},
}

var nameSuffixesByTier = map[string][]string{
	"common":   {"", "", ""},
	"uncommon": {" II", "+", ""},
	"rare":     {" of the Depths", " Unbound", " Ascendant"},
	"epic":     {" Eternal", " of Ages", " Undying"},
}
