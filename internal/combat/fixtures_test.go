package combat_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// sequenceRoller returns a fixed sequence of Roll results, cycling once
// exhausted, so tests can pin crit/dodge/loot rolls deterministically.
type sequenceRoller struct {
	values []int
	i      int
}

func (s *sequenceRoller) Roll(_ context.Context, size int) (int, error) {
	if size <= 0 {
		return 0, errors.New("size must be positive")
	}
	if len(s.values) == 0 {
		return 1, nil
	}
	v := s.values[s.i%len(s.values)]
	s.i++
	if v > size {
		v = size
	}
	return v, nil
}

func (s *sequenceRoller) RollN(ctx context.Context, count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := s.Roll(ctx, size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func writeJSON(t *testing.T, dir, name string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

// newTestCatalog builds a *catalog.Store over a temp directory of JSON
// tables, the same way catalog's own tests do, since Store has no
// in-memory constructor.
func newTestCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	dir := t.TempDir()

	writeJSON(t, dir, "items.json", []catalog.Item{
		{TokenID: 9001, Name: "Lifesteal Dagger", Slot: "weapon", Tier: 1, BaseValue: 100, Properties: []string{"lifesteal"}},
	})
	writeJSON(t, dir, "techniques.json", []catalog.Technique{
		{
			ID: "fireball", Name: "Fireball", ClassID: "mage", TargetType: "area",
			EssenceCost: 10, CooldownTicks: 5, MaxTargets: 3, AreaRadius: 5,
			Effects: []catalog.TechniqueEffect{{Kind: "damage", Amount: 10}},
		},
		{
			ID: "mend", Name: "Mend", ClassID: "cleric", TargetType: "ally",
			EssenceCost: 5, CooldownTicks: 3,
			Effects: []catalog.TechniqueEffect{{Kind: "hot", Amount: 5, DurationTicks: 3}},
		},
	})
	writeJSON(t, dir, "loot_tables.json", []catalog.LootTable{
		{MobName: "Rat", Entries: []catalog.LootEntry{
			{TokenID: 101, Quantity: 1, Weight: 1, GoldMin: 2, GoldMax: 4},
		}},
	})
	writeJSON(t, dir, "mob_templates.json", []catalog.MobTemplate{
		{Name: "Rat", Level: 1, MaxHP: 30, XPReward: 50, Stats: map[string]int{"strength": 3}, Skinnable: true, DecayTicks: 100},
	})
	writeJSON(t, dir, "zones.json", []catalog.ZoneLayout{
		{ID: "zone-1", Width: 200, Height: 200, Graveyard: catalog.Point{X: 10, Y: 10}},
	})

	store, err := catalog.Load(dir)
	require.NoError(t, err)
	return store
}

func newTestZone() *zone.Zone {
	return zone.NewZone(zone.Config{ID: "zone-1", Bounds: zone.Bounds{Width: 200, Height: 200}})
}

func playerEntity(id string) *zone.Entity {
	e := zone.NewPlayerFromTemplate(id, "Hero", "human", "mage", "nonbinary", 1, map[string]int{"strength": 10, "intellect": 10})
	e.HP, e.MaxHP = 100, 100
	e.Essence, e.MaxEssence = 50, 50
	e.EffectiveStats = map[string]int{"strength": 10, "intellect": 10}
	return e
}
