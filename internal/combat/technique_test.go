package combat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/combat"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

func TestUseTechniqueNotLearnedFails(t *testing.T) {
	r := combat.NewResolver(combat.Config{Catalog: newTestCatalog(t)})
	z := newTestZone()
	caster := playerEntity("caster")
	target := playerEntity("target")

	_, err := r.UseTechnique(context.Background(), z, caster, "fireball", target)
	require.Error(t, err)
}

func TestUseTechniqueDeductsEssenceAndSetsCooldown(t *testing.T) {
	r := combat.NewResolver(combat.Config{Catalog: newTestCatalog(t)})
	z := newTestZone()
	caster := playerEntity("caster")
	caster.LearnedTechniques = []string{"fireball"}
	target := playerEntity("target")
	target.X, target.Y = 1, 1

	_, err := r.UseTechnique(context.Background(), z, caster, "fireball", target)
	require.NoError(t, err)

	assert.Equal(t, 40, caster.Essence) // 50 - essenceCost(10)
	assert.Equal(t, uint64(5), caster.Cooldowns["fireball"])
}

func TestUseTechniqueOnCooldownFails(t *testing.T) {
	r := combat.NewResolver(combat.Config{Catalog: newTestCatalog(t)})
	z := newTestZone()
	caster := playerEntity("caster")
	caster.LearnedTechniques = []string{"fireball"}
	caster.Cooldowns["fireball"] = 100
	target := playerEntity("target")

	_, err := r.UseTechnique(context.Background(), z, caster, "fireball", target)
	require.Error(t, err)
}

func TestUseTechniqueNotEnoughEssenceFails(t *testing.T) {
	r := combat.NewResolver(combat.Config{Catalog: newTestCatalog(t)})
	z := newTestZone()
	caster := playerEntity("caster")
	caster.LearnedTechniques = []string{"fireball"}
	caster.Essence = 1
	target := playerEntity("target")

	_, err := r.UseTechnique(context.Background(), z, caster, "fireball", target)
	require.Error(t, err)
}

func TestUseTechniqueAreaDamageHitsMultipleTargets(t *testing.T) {
	r := combat.NewResolver(combat.Config{Catalog: newTestCatalog(t)})
	z := newTestZone()
	caster := playerEntity("caster")
	caster.LearnedTechniques = []string{"fireball"}

	primary := playerEntity("primary")
	primary.X, primary.Y = 50, 50
	primary.Kind = zone.EntityKindMob
	require.NoError(t, z.Place(primary, 50, 50))

	nearby := playerEntity("nearby")
	nearby.Kind = zone.EntityKindMob
	require.NoError(t, z.Place(nearby, 51, 51))

	result, err := r.UseTechnique(context.Background(), z, caster, "fireball", primary)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"primary", "nearby"}, result.TargetIDs)

	// damage = techniqueBaseDamage(caster) + fx.Amount = floor(5+10*0.5) + 10 = 10 + 10 = 20
	assert.Equal(t, 80, primary.HP)
	assert.Equal(t, 80, nearby.HP)
	assert.Equal(t, "caster", primary.LastAttackerID)
}

func TestUseTechniqueHotCreatesActiveEffect(t *testing.T) {
	r := combat.NewResolver(combat.Config{Catalog: newTestCatalog(t)})
	z := newTestZone()
	caster := playerEntity("caster")
	caster.LearnedTechniques = []string{"mend"}
	target := playerEntity("target")
	target.HP = 50

	_, err := r.UseTechnique(context.Background(), z, caster, "mend", target)
	require.NoError(t, err)

	require.Len(t, target.ActiveEffects, 1)
	eff := target.ActiveEffects[0]
	assert.Equal(t, zone.ActiveEffectHoT, eff.Type)
	assert.Equal(t, 5, eff.HotHealPerTick)
	assert.Equal(t, 3, eff.RemainingTicks)
}
