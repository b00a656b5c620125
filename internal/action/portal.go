package action

import (
	"context"
	"math"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/catalog"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

const portalRangeUnits = 2.0

// UsePortal validates the entity stands within range of a
// catalog-authored portal in its current zone and transfers it to the
// portal's destination.
func (d *Dispatcher) UsePortal(ctx context.Context, auth AuthContext, zoneID, entityID, portalID string) error {
	z := d.runtime.GetOrCreateZone(zoneID)
	e, err := getOwnedEntity(auth, z, entityID)
	if err != nil {
		return err
	}

	layout, err := d.catalog.ZoneLayout(zoneID)
	if err != nil {
		return rpgerr.Newf(rpgerr.CodeInvalidState, "no layout for zone %q", zoneID)
	}
	for _, p := range layout.Portals {
		if p.ID != portalID {
			continue
		}
		if math.Hypot(e.X-p.X, e.Y-p.Y) > portalRangeUnits {
			return rpgerr.Newf(rpgerr.CodeOutOfRange, "portal %q out of range", portalID)
		}
		_, err := d.runtime.Transfer(entityID, zoneID, p.DestZoneID, p.DestX, p.DestY)
		return err
	}
	return rpgerr.Newf(rpgerr.CodeNotFound, "portal %q not found in zone %q", portalID, zoneID)
}

// AutoTransition finds the nearest portal in the entity's current zone
// within range and uses
// it, failing with CodeNotFound if none qualifies -- callers (the HTTP
// surface, or an agent's questing focus) should treat that as "nothing to
// do here" rather than an error worth surfacing to a player.
func (d *Dispatcher) AutoTransition(ctx context.Context, auth AuthContext, zoneID, entityID string) error {
	z := d.runtime.GetOrCreateZone(zoneID)
	e, err := getOwnedEntity(auth, z, entityID)
	if err != nil {
		return err
	}

	layout, err := d.catalog.ZoneLayout(zoneID)
	if err != nil {
		return rpgerr.Newf(rpgerr.CodeInvalidState, "no layout for zone %q", zoneID)
	}

	var nearest *catalog.PortalPoint
	bestDist := math.Inf(1)
	for i, p := range layout.Portals {
		dist := math.Hypot(e.X-p.X, e.Y-p.Y)
		if dist <= portalRangeUnits && dist < bestDist {
			bestDist = dist
			nearest = &layout.Portals[i]
		}
	}
	if nearest == nil {
		return rpgerr.Newf(rpgerr.CodeNotFound, "no portal in range in zone %q", zoneID)
	}

	_, err = d.runtime.Transfer(entityID, zoneID, nearest.DestZoneID, nearest.DestX, nearest.DestY)
	return err
}
