package zone

import (
	"sync"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/core"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/events"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/spatial"
)

// Zone is a bounded simulation region with its own entity map and tick
// counter. Entity membership in a Zone is the only place a live entity
// exists; there is no entity outside of some Zone's map.
//
// Spatial placement and radius queries are delegated to a spatial.BasicRoom
// over a gridless grid, since zones are theater-of-mind regions rather than
// tile maps: positions are float coordinates, not grid cells.
type Zone struct {
	id   string
	room *spatial.BasicRoom

	mu       sync.RWMutex
	tick     uint64
	entities map[string]*Entity
	bounds   Bounds
}

// Bounds is a zone's walkable rectangle, used to clamp movement.
type Bounds struct {
	Width  float64
	Height float64
}

// Config configures a new Zone.
type Config struct {
	ID       string
	Bounds   Bounds
	EventBus events.EventBus
}

// NewZone creates an empty zone with the given id and bounds.
func NewZone(cfg Config) *Zone {
	grid := spatial.NewGridlessRoom(spatial.GridlessConfig{
		Width:  cfg.Bounds.Width,
		Height: cfg.Bounds.Height,
	})
	room := spatial.NewBasicRoom(spatial.BasicRoomConfig{
		ID:   cfg.ID,
		Type: "zone",
		Grid: grid,
	})
	if cfg.EventBus != nil {
		room.ConnectToEventBus(cfg.EventBus)
	}

	return &Zone{
		id:       cfg.ID,
		room:     room,
		entities: make(map[string]*Entity),
		bounds:   cfg.Bounds,
	}
}

// ID returns the zone's identifier.
func (z *Zone) ID() string { return z.id }

// Tick returns the zone's current tick counter.
func (z *Zone) Tick() uint64 {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.tick
}

// Bounds returns the zone's walkable rectangle.
func (z *Zone) Bounds() Bounds { return z.bounds }

// Place adds an entity to the zone at the given position, clamped to
// bounds, and registers it in the spatial index for radius queries.
func (z *Zone) Place(e *Entity, x, y float64) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	x, y = z.clamp(x, y)
	e.X, e.Y = x, y

	if _, exists := z.entities[e.ID]; exists {
		return rpgerr.Newf(rpgerr.CodeAlreadyExists, "entity %q already in zone %q", e.ID, z.id)
	}

	if err := z.room.PlaceEntity(e, spatial.Position{X: x, Y: y}); err != nil {
		return rpgerr.NewfWithOpts(rpgerr.CodeInvalidArgument, nil, "zone %q: place entity %q: %v", z.id, e.ID, err)
	}
	z.entities[e.ID] = e
	return nil
}

// Move relocates an entity already in the zone, clamped to bounds.
func (z *Zone) Move(entityID string, x, y float64) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	e, ok := z.entities[entityID]
	if !ok {
		return rpgerr.Newf(rpgerr.CodeNotFound, "entity %q not in zone %q", entityID, z.id)
	}

	x, y = z.clamp(x, y)
	if err := z.room.MoveEntity(entityID, spatial.Position{X: x, Y: y}); err != nil {
		return rpgerr.NewfWithOpts(rpgerr.CodeInvalidArgument, nil, "zone %q: move entity %q: %v", z.id, entityID, err)
	}
	e.X, e.Y = x, y
	return nil
}

// Remove takes an entity out of the zone entirely. Dead mobs, decayed
// corpses, and logged-out players all exit through this path.
func (z *Zone) Remove(entityID string) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if _, ok := z.entities[entityID]; !ok {
		return rpgerr.Newf(rpgerr.CodeNotFound, "entity %q not in zone %q", entityID, z.id)
	}
	_ = z.room.RemoveEntity(entityID)
	delete(z.entities, entityID)
	return nil
}

// Get returns the live entity by id.
func (z *Zone) Get(entityID string) (*Entity, bool) {
	z.mu.RLock()
	defer z.mu.RUnlock()
	e, ok := z.entities[entityID]
	return e, ok
}

// All returns every entity currently in the zone. The returned slice is a
// snapshot; mutating the *Entity values still mutates zone state directly
// since Entity is held by pointer.
func (z *Zone) All() []*Entity {
	z.mu.RLock()
	defer z.mu.RUnlock()
	out := make([]*Entity, 0, len(z.entities))
	for _, e := range z.entities {
		out = append(out, e)
	}
	return out
}

// EntitiesWithin returns every entity within radius of origin, optionally
// filtered by predicate. Delegates to the spatial room's range query so
// membership stays in one place.
func (z *Zone) EntitiesWithin(origin Position, radius float64, predicate func(*Entity) bool) []*Entity {
	z.mu.RLock()
	defer z.mu.RUnlock()

	found := z.room.GetEntitiesInRange(spatial.Position{X: origin.X, Y: origin.Y}, radius)
	out := make([]*Entity, 0, len(found))
	for _, ce := range found {
		e, ok := ce.(*Entity)
		if !ok {
			continue
		}
		if predicate != nil && !predicate(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Position is a zone-local 2D coordinate, kept distinct from spatial.Position
// so callers outside this package don't need to import spatial directly.
type Position struct {
	X, Y float64
}

func (z *Zone) clamp(x, y float64) (float64, float64) {
	if x < 0 {
		x = 0
	}
	if x > z.bounds.Width {
		x = z.bounds.Width
	}
	if y < 0 {
		y = 0
	}
	if y > z.bounds.Height {
		y = z.bounds.Height
	}
	return x, y
}

var _ core.Entity = (*Entity)(nil)
