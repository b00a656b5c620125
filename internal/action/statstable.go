package action

// raceBaseStats and classBaseStats are additive bonuses over a flat
// baseline, combined at spawn and on level-up growth. This table is the
// Open Question decision (see DESIGN.md) for a concrete, deterministic
// race+class growth curve.
var raceBaseStats = map[string]map[string]int{
	"human":  {"strength": 5, "agility": 5, "intellect": 5, "faith": 5},
	"orc":    {"strength": 8, "agility": 4, "intellect": 2, "faith": 3},
	"elf":    {"strength": 3, "agility": 7, "intellect": 6, "faith": 4},
	"dwarf":  {"strength": 7, "agility": 3, "intellect": 4, "faith": 5},
	"gnome":  {"strength": 2, "agility": 5, "intellect": 8, "faith": 3},
	"undead": {"strength": 4, "agility": 5, "intellect": 5, "faith": 2},
}

var classBaseStats = map[string]map[string]int{
	"warrior":     {"strength": 8, "agility": 4, "intellect": 1, "faith": 1},
	"rogue":       {"strength": 3, "agility": 8, "intellect": 2, "faith": 1},
	"ranger":      {"strength": 4, "agility": 7, "intellect": 2, "faith": 1},
	"monk":        {"strength": 5, "agility": 6, "intellect": 2, "faith": 2},
	"mage":        {"strength": 1, "agility": 2, "intellect": 9, "faith": 2},
	"warlock":     {"strength": 1, "agility": 2, "intellect": 8, "faith": 3},
	"necromancer": {"strength": 2, "agility": 2, "intellect": 8, "faith": 2},
	"cleric":      {"strength": 2, "agility": 1, "intellect": 3, "faith": 9},
	"druid":       {"strength": 2, "agility": 3, "intellect": 4, "faith": 7},
	"paladin":     {"strength": 6, "agility": 1, "intellect": 2, "faith": 6},
}

const perLevelStatGrowth = 1

var statKeys = []string{"strength", "agility", "intellect", "faith"}

// baseStatsFor computes a level-1 character's stats from race+class, then
// applies perLevelStatGrowth per stat per level above 1, plus fixed hp/
// essence growth so higher-level entities start with proportional vitals.
func baseStatsFor(raceID, classID string, level int) map[string]int {
	stats := make(map[string]int, len(statKeys)+2)
	for _, k := range statKeys {
		stats[k] = 10
	}
	for k, v := range raceBaseStats[raceID] {
		stats[k] += v
	}
	for k, v := range classBaseStats[classID] {
		stats[k] += v
	}
	if level > 1 {
		for _, k := range statKeys {
			stats[k] += perLevelStatGrowth * (level - 1)
		}
	}

	stats["maxHp"] = 50 + stats["strength"]*5 + (level-1)*10
	stats["maxEssence"] = 20 + stats["intellect"]*3 + stats["faith"]*3 + (level-1)*5
	return stats
}
