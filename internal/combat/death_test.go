package combat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/combat"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

type recordingMinter struct {
	mintedItems map[int]int
	mintedGold  int64
}

func newRecordingMinter() *recordingMinter {
	return &recordingMinter{mintedItems: map[int]int{}}
}

func (m *recordingMinter) MintItem(_ context.Context, _ string, tokenID, quantity int) error {
	m.mintedItems[tokenID] += quantity
	return nil
}

func (m *recordingMinter) MintGold(_ context.Context, _ string, copper int64) error {
	m.mintedGold += copper
	return nil
}

func TestHandleDeathMobAwardsXPDropsLootAndCorpse(t *testing.T) {
	cat := newTestCatalog(t)
	minter := newRecordingMinter()
	r := combat.NewResolver(combat.Config{Catalog: cat, Roller: &sequenceRoller{values: []int{1}}}).WithMinter(minter)
	z := newTestZone()

	killer := playerEntity("killer")
	require.NoError(t, z.Place(killer, 5, 5))

	mob := zone.NewMobFromTemplate("rat-1", catalog.MobTemplate{Name: "Rat", Level: 1, MaxHP: 30, XPReward: 50, Stats: map[string]int{"strength": 3}, Skinnable: true, DecayTicks: 100}, 5, 5)
	mob.HP = 0
	mob.LastAttackerID = "killer"
	require.NoError(t, z.Place(mob, 5, 5))

	r.HandleDeath(z, mob, 10)

	assert.Equal(t, 50, killer.XP)
	_, stillThere := z.Get("rat-1")
	assert.False(t, stillThere)

	foundCorpse := false
	for _, e := range z.All() {
		if e.Kind == zone.EntityKindCorpse && e.MobName == "Rat" {
			foundCorpse = true
			assert.Equal(t, uint64(110), e.DecayAtTick)
		}
	}
	assert.True(t, foundCorpse)
	assert.Equal(t, 1, minter.mintedItems[101])
	assert.Greater(t, minter.mintedGold, int64(0))
}

func TestHandleDeathMobSplitsXPAcrossParty(t *testing.T) {
	cat := newTestCatalog(t)
	party := stubParty{"a": {"a", "b"}, "b": {"a", "b"}}
	r := combat.NewResolver(combat.Config{Catalog: cat, Party: party})
	z := newTestZone()

	a := playerEntity("a")
	require.NoError(t, z.Place(a, 1, 1))
	b := playerEntity("b")
	require.NoError(t, z.Place(b, 2, 2))

	mob := zone.NewMobFromTemplate("rat-2", catalog.MobTemplate{Name: "Rat", MaxHP: 10, XPReward: 100}, 1, 1)
	mob.HP = 0
	mob.LastAttackerID = "a"
	require.NoError(t, z.Place(mob, 1, 1))

	r.HandleDeath(z, mob, 1)

	// pool = 100 * (1 + 0.10*(2-1)) = 110, split across 2 members = 55 each.
	assert.Equal(t, 55, a.XP)
	assert.Equal(t, 55, b.XP)
}

type stubParty map[string][]string

func (p stubParty) PartyMembers(id string) []string {
	if members, ok := p[id]; ok {
		return members
	}
	return []string{id}
}

func TestHandleDeathPlayerRespawnsAtGraveyardWithXPDebt(t *testing.T) {
	cat := newTestCatalog(t)
	r := combat.NewResolver(combat.Config{Catalog: cat})
	z := newTestZone()

	p := playerEntity("dead-player")
	p.Level = 2
	p.XP = 500 // xpForLevel(2)=400, xpForLevel(3)=900; debt = 10% of 500 = 50
	p.HP = 0
	p.X, p.Y = 77, 77

	r.HandleDeath(z, p, 1)

	assert.Equal(t, 450, p.XP)
	assert.Equal(t, p.MaxHP, p.HP)
	assert.Equal(t, p.MaxEssence, p.Essence)
	assert.Equal(t, float64(10), p.X)
	assert.Equal(t, float64(10), p.Y)
}
