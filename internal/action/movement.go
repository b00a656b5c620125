package action

import (
	"context"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// Move implements move(entityId, x, y): validates ownership, then
// delegates bounds/walkability clamping to zone.Zone.Move.
func (d *Dispatcher) Move(ctx context.Context, auth AuthContext, zoneID, entityID string, x, y float64) error {
	z := d.runtime.GetOrCreateZone(zoneID)
	e, err := getOwnedEntity(auth, z, entityID)
	if err != nil {
		return err
	}
	if e.IsDead() {
		return rpgerr.Newf(rpgerr.CodeInvalidState, "entity %q is dead", entityID)
	}
	return z.Move(entityID, x, y)
}
