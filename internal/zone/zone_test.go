package zone_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/events"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

type ZoneTestSuite struct {
	suite.Suite
	eventBus events.EventBus
	zone     *zone.Zone
}

func (s *ZoneTestSuite) SetupTest() {
	s.eventBus = events.NewBus()
	s.zone = zone.NewZone(zone.Config{
		ID:       "zone-1",
		Bounds:   zone.Bounds{Width: 100, Height: 100},
		EventBus: s.eventBus,
	})
}

func TestZoneSuite(t *testing.T) {
	suite.Run(t, new(ZoneTestSuite))
}

func (s *ZoneTestSuite) TestPlaceClampsToBounds() {
	e := zone.NewPlayerFromTemplate("p1", "Aria", "human", "warrior", "female", 1, map[string]int{"strength": 10})

	s.Require().NoError(s.zone.Place(e, -10, 500))

	got, ok := s.zone.Get("p1")
	s.Require().True(ok)
	s.Assert().Equal(0.0, got.X)
	s.Assert().Equal(100.0, got.Y)
}

func (s *ZoneTestSuite) TestPlaceDuplicateFails() {
	e := zone.NewPlayerFromTemplate("p1", "Aria", "human", "warrior", "female", 1, nil)
	s.Require().NoError(s.zone.Place(e, 10, 10))

	err := s.zone.Place(e, 20, 20)
	s.Assert().Error(err)
}

func (s *ZoneTestSuite) TestMoveUnknownEntityFails() {
	err := s.zone.Move("ghost", 5, 5)
	s.Assert().Error(err)
}

func (s *ZoneTestSuite) TestMoveClampsAndUpdatesPosition() {
	e := zone.NewPlayerFromTemplate("p1", "Aria", "human", "warrior", "female", 1, nil)
	s.Require().NoError(s.zone.Place(e, 10, 10))

	s.Require().NoError(s.zone.Move("p1", 200, -5))

	got, _ := s.zone.Get("p1")
	s.Assert().Equal(100.0, got.X)
	s.Assert().Equal(0.0, got.Y)
}

func (s *ZoneTestSuite) TestRemove() {
	e := zone.NewPlayerFromTemplate("p1", "Aria", "human", "warrior", "female", 1, nil)
	s.Require().NoError(s.zone.Place(e, 10, 10))

	s.Require().NoError(s.zone.Remove("p1"))
	_, ok := s.zone.Get("p1")
	s.Assert().False(ok)

	s.Assert().Error(s.zone.Remove("p1"))
}

func (s *ZoneTestSuite) TestEntitiesWithinRadius() {
	near := zone.NewMobFromTemplate("mob-near", catalog.MobTemplate{Name: "Rat", MaxHP: 5}, 12, 10)
	far := zone.NewMobFromTemplate("mob-far", catalog.MobTemplate{Name: "Rat", MaxHP: 5}, 90, 90)

	s.Require().NoError(s.zone.Place(near, 12, 10))
	s.Require().NoError(s.zone.Place(far, 90, 90))

	found := s.zone.EntitiesWithin(zone.Position{X: 10, Y: 10}, 5, nil)
	ids := make([]string, 0, len(found))
	for _, e := range found {
		ids = append(ids, e.ID)
	}
	s.Assert().Contains(ids, "mob-near")
	s.Assert().NotContains(ids, "mob-far")
}

func (s *ZoneTestSuite) TestEntitiesWithinPredicate() {
	mob := zone.NewMobFromTemplate("mob-1", catalog.MobTemplate{Name: "Rat", MaxHP: 5}, 10, 10)
	corpse := &zone.Entity{ID: "corpse-1", Kind: zone.EntityKindCorpse}

	s.Require().NoError(s.zone.Place(mob, 10, 10))
	s.Require().NoError(s.zone.Place(corpse, 11, 10))

	onlyMobs := s.zone.EntitiesWithin(zone.Position{X: 10, Y: 10}, 5, func(e *zone.Entity) bool {
		return e.Kind == zone.EntityKindMob
	})
	s.Require().Len(onlyMobs, 1)
	s.Assert().Equal("mob-1", onlyMobs[0].ID)
}
