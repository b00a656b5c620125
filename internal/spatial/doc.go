// Package spatial provides 2D positioning and movement infrastructure for
// entity placement and radius queries without imposing game-specific rules.
//
// Purpose:
// This package handles spatial mathematics and movement validation for a
// single room without imposing any game-specific movement rules or combat
// mechanics.
//
// Scope:
//   - 2D coordinate system (Position, Dimensions)
//   - Gridless room: Euclidean placement, movement, and radius queries
//   - Entity position tracking with event-bus notification on
//     placement/movement/removal
//
// Non-Goals:
//   - Movement rules: Speed, difficult terrain are game-specific
//   - Pathfinding: AI navigation belongs to the caller
//   - Multi-room orchestration: each zone owns exactly one room
//   - Square/hex grids, line-of-sight blocking by geometry: the shard only
//     ever places entities in an open gridless room
//
// Integration:
// This package integrates with:
//   - events: Publishes entity placement/movement/removal and room-created
//     events as typed topics
//
// Example:
//
//	grid := spatial.NewGridlessRoom(spatial.GridlessConfig{Width: 200, Height: 200})
//	room := spatial.NewBasicRoom(spatial.BasicRoomConfig{ID: "zone-1", Grid: grid})
//	err := room.PlaceEntity(entity, spatial.Position{X: 10, Y: 5})
//	nearby := room.GetEntitiesInRange(spatial.Position{X: 15, Y: 15}, 10.0)
package spatial
