// Package catalog provides read-only lookups over the externally authored
// game data tables: items, recipes, techniques, zone layouts, and loot
// tables. The catalog never mutates at runtime; it is loaded once at
// startup from a directory of JSON files and held immutable thereafter.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// Item describes a catalog entry for a fungible or non-fungible item.
type Item struct {
	TokenID     int      `json:"tokenId"`
	Name        string   `json:"name"`
	Slot        string   `json:"slot,omitempty"` // "", weapon, head, chest, legs, feet, trinket, tool
	Tier        int      `json:"tier"`
	BaseValue   int      `json:"baseValueCopper"`
	MaxStack    int      `json:"maxStack"`
	Stackable   bool     `json:"stackable"`
	Consumable  bool     `json:"consumable"`
	HPRestore   int      `json:"hpRestore,omitempty"`
	Properties  []string `json:"properties,omitempty"`
	MaxDurability int    `json:"maxDurability,omitempty"`
}

// RecipeMaterial names a catalog item and the quantity a recipe consumes.
type RecipeMaterial struct {
	TokenID  int `json:"tokenId"`
	Quantity int `json:"quantity"`
}

// Recipe describes a craft/gather output: inputs burned, output minted.
type Recipe struct {
	ID           string           `json:"id"`
	Profession   string           `json:"profession"` // forge, brew, cook, leatherwork, jewelcraft, mine, herb, skin
	StationType  string           `json:"stationType"` // forge, alchemy-lab, campfire, "" for gather
	Materials    []RecipeMaterial `json:"materials"`
	OutputToken  int              `json:"outputTokenId"`
	OutputQty    int              `json:"outputQuantity"`
	MinToolTier  int              `json:"minToolTier"`
	QualityRoll  bool             `json:"qualityRoll"`
}

// TechniqueEffect is one structured effect a catalog-authored technique applies.
type TechniqueEffect struct {
	Kind           string  `json:"kind"` // damage, heal, hot, dot, shield, buff, debuff
	Amount         float64 `json:"amount"`
	DurationTicks  int     `json:"durationTicks,omitempty"`
	StatModifiers  map[string]float64 `json:"statModifiers,omitempty"`
}

// Technique describes a pre-authored (non-procedural) technique definition.
type Technique struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	ClassID     string            `json:"classId"`
	TargetType  string            `json:"targetType"` // self, ally, enemy, area
	EssenceCost int               `json:"essenceCost"`
	CooldownTicks int             `json:"cooldownTicks"`
	MaxTargets  int               `json:"maxTargets,omitempty"`
	AreaRadius  float64           `json:"areaRadius,omitempty"`
	LevelRequired int             `json:"levelRequired"`
	Effects     []TechniqueEffect `json:"effects"`
}

// LootEntry is one weighted drop for a mob's loot table.
type LootEntry struct {
	TokenID     int     `json:"tokenId"`
	Quantity    int     `json:"quantity"`
	Weight      int     `json:"weight"`
	GoldMin     int     `json:"goldMin,omitempty"`
	GoldMax     int     `json:"goldMax,omitempty"`
}

// LootTable is the set of possible drops for a mob template.
type LootTable struct {
	MobName string      `json:"mobName"`
	Entries []LootEntry `json:"entries"`
}

// MobTemplate describes the static stats a spawner uses to create a mob.
type MobTemplate struct {
	Name        string         `json:"name"`
	Level       int            `json:"level"`
	MaxHP       int            `json:"maxHp"`
	XPReward    int            `json:"xpReward"`
	Stats       map[string]int `json:"stats"`
	Skinnable   bool           `json:"skinnable"`
	DecayTicks  int            `json:"decayTicks,omitempty"`
	RespawnTicks int           `json:"respawnTicks,omitempty"`
}

// QuestObjective is one countable condition a quest tracks progress
// against, e.g. kill 10 "wolf" mobs or gather 5 "iron-ore" via recipe
// "gather-ore-node".
type QuestObjective struct {
	Kind   string `json:"kind"` // kill, gather, craft
	Target string `json:"target"` // mob name, recipe id
	Count  int    `json:"count"`
}

// QuestReward is what turning in a completed quest grants.
type QuestReward struct {
	XP          int              `json:"xp"`
	GoldCopper  int64            `json:"goldCopper"`
	Items       []RecipeMaterial `json:"items,omitempty"`
	Reputation  int              `json:"reputation,omitempty"`
}

// Quest describes a catalog-authored quest definition: its objectives and
// what completing them grants.
type Quest struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	RequiredLevel       int              `json:"requiredLevel"`
	PrerequisiteQuestID string           `json:"prerequisiteQuestId,omitempty"`
	Objectives          []QuestObjective `json:"objectives"`
	Reward              QuestReward      `json:"reward"`
}

// ZoneLayout describes a zone's static world data: bounds and named points
// of interest (graveyards, portals, resource node spawn points).
type ZoneLayout struct {
	ID       string        `json:"id"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Graveyard Point        `json:"graveyard"`
	Portals  []PortalPoint `json:"portals,omitempty"`
	NodeSpawns []NodeSpawn `json:"nodeSpawns,omitempty"`
	MobSpawns  []MobSpawn  `json:"mobSpawns,omitempty"`
	Stations   []StationPoint `json:"stations,omitempty"`
}

// StationPoint names a fixed crafting station's position and the recipes
// it serves, e.g. forge, alchemy-lab, campfire. Matched against
// Recipe.StationType by proximity when crafting.
type StationPoint struct {
	ID   string  `json:"id"`
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Point is a simple zone-local coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PortalPoint names a portal entity's position and its destination zone.
type PortalPoint struct {
	ID         string  `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	DestZoneID string  `json:"destZoneId"`
	DestX      float64 `json:"destX"`
	DestY      float64 `json:"destY"`
}

// NodeSpawn names a resource node spawn point and its template.
type NodeSpawn struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"` // ore-node, flower-node
	OreOrFlower  string  `json:"oreOrFlower"`
	Tier         int     `json:"tier"`
	MaxCharges   int     `json:"maxCharges"`
	RespawnTicks int     `json:"respawnTicks"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

// MobSpawn names a mob spawn point and the template it spawns.
type MobSpawn struct {
	ID       string  `json:"id"`
	MobName  string  `json:"mobName"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	MaxAlive int     `json:"maxAlive"`
}

// Store is the immutable, loaded-once catalog. All lookups are pure and
// return a typed rpgerr.CodeNotFound error rather than panicking on a miss.
type Store struct {
	items      map[int]Item
	recipes    map[string]Recipe
	techniques map[string]Technique
	loot       map[string]LootTable
	mobs       map[string]MobTemplate
	zones      map[string]ZoneLayout
	quests     map[string]Quest
}

// Load reads every catalog table from dir. Expected files: items.json,
// recipes.json, techniques.json, loot_tables.json, mob_templates.json,
// zones.json, quests.json. Missing optional files are tolerated as empty
// tables.
func Load(dir string) (*Store, error) {
	s := &Store{
		items:      map[int]Item{},
		recipes:    map[string]Recipe{},
		techniques: map[string]Technique{},
		loot:       map[string]LootTable{},
		mobs:       map[string]MobTemplate{},
		zones:      map[string]ZoneLayout{},
		quests:     map[string]Quest{},
	}

	var items []Item
	if err := loadJSON(filepath.Join(dir, "items.json"), &items); err != nil {
		return nil, err
	}
	for _, it := range items {
		s.items[it.TokenID] = it
	}

	var recipes []Recipe
	if err := loadJSON(filepath.Join(dir, "recipes.json"), &recipes); err != nil {
		return nil, err
	}
	for _, r := range recipes {
		s.recipes[r.ID] = r
	}

	var techniques []Technique
	if err := loadJSON(filepath.Join(dir, "techniques.json"), &techniques); err != nil {
		return nil, err
	}
	for _, t := range techniques {
		s.techniques[t.ID] = t
	}

	var lootTables []LootTable
	if err := loadJSON(filepath.Join(dir, "loot_tables.json"), &lootTables); err != nil {
		return nil, err
	}
	for _, lt := range lootTables {
		s.loot[lt.MobName] = lt
	}

	var mobs []MobTemplate
	if err := loadJSON(filepath.Join(dir, "mob_templates.json"), &mobs); err != nil {
		return nil, err
	}
	for _, m := range mobs {
		s.mobs[m.Name] = m
	}

	var zones []ZoneLayout
	if err := loadJSON(filepath.Join(dir, "zones.json"), &zones); err != nil {
		return nil, err
	}
	for _, z := range zones {
		s.zones[z.ID] = z
	}

	var quests []Quest
	if err := loadJSON(filepath.Join(dir, "quests.json"), &quests); err != nil {
		return nil, err
	}
	for _, q := range quests {
		s.quests[q.ID] = q
	}

	return s, nil
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("catalog: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return nil
}

// ItemByTokenID looks up an item by its on-chain token id.
func (s *Store) ItemByTokenID(tokenID int) (Item, error) {
	it, ok := s.items[tokenID]
	if !ok {
		return Item{}, rpgerr.Newf(rpgerr.CodeNotFound, "item %d not in catalog", tokenID)
	}
	return it, nil
}

// RecipeByID looks up a recipe by its catalog id.
func (s *Store) RecipeByID(id string) (Recipe, error) {
	r, ok := s.recipes[id]
	if !ok {
		return Recipe{}, rpgerr.Newf(rpgerr.CodeNotFound, "recipe %q not in catalog", id)
	}
	return r, nil
}

// TechniqueByID looks up a pre-authored technique by its catalog id. The
// procedurally generated signature/ultimate techniques are not stored here
// (see internal/technique); this serves class-baseline techniques only.
func (s *Store) TechniqueByID(id string) (Technique, error) {
	t, ok := s.techniques[id]
	if !ok {
		return Technique{}, rpgerr.Newf(rpgerr.CodeNotFound, "technique %q not in catalog", id)
	}
	return t, nil
}

// ZoneLayout looks up a zone's static layout.
func (s *Store) ZoneLayout(zoneID string) (ZoneLayout, error) {
	z, ok := s.zones[zoneID]
	if !ok {
		return ZoneLayout{}, rpgerr.Newf(rpgerr.CodeNotFound, "zone %q not in catalog", zoneID)
	}
	return z, nil
}

// LootTable looks up a mob's loot table by mob template name.
func (s *Store) LootTable(mobName string) (LootTable, error) {
	lt, ok := s.loot[mobName]
	if !ok {
		return LootTable{}, rpgerr.Newf(rpgerr.CodeNotFound, "loot table for %q not in catalog", mobName)
	}
	return lt, nil
}

// MobTemplate looks up a mob's static template by name.
func (s *Store) MobTemplate(name string) (MobTemplate, error) {
	m, ok := s.mobs[name]
	if !ok {
		return MobTemplate{}, rpgerr.Newf(rpgerr.CodeNotFound, "mob template %q not in catalog", name)
	}
	return m, nil
}

// AllItems returns every item in the catalog, for GET /items/catalog.
func (s *Store) AllItems() []Item {
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	return out
}

// AllTechniques returns every pre-authored technique in the catalog, for
// GET /techniques/catalog.
func (s *Store) AllTechniques() []Technique {
	out := make([]Technique, 0, len(s.techniques))
	for _, t := range s.techniques {
		out = append(out, t)
	}
	return out
}

// QuestByID looks up a quest definition by its catalog id.
func (s *Store) QuestByID(id string) (Quest, error) {
	q, ok := s.quests[id]
	if !ok {
		return Quest{}, rpgerr.Newf(rpgerr.CodeNotFound, "quest %q not in catalog", id)
	}
	return q, nil
}

// AllQuests returns every quest definition in the catalog.
func (s *Store) AllQuests() []Quest {
	out := make([]Quest, 0, len(s.quests))
	for _, q := range s.quests {
		out = append(out, q)
	}
	return out
}
