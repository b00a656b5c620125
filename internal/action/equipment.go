package action

import (
	"context"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

// repairCopperPerDurabilityPerValue is the copper cost of restoring one point of
// durability, scaled by the item's base value so high-tier gear costs more
// to keep repaired. No concrete figure exists anywhere in the data model,
// so this is a documented decision, not a derived constant.
const repairCopperPerDurabilityPerValue = 0.02

type EquipRequest struct {
	ZoneID   string
	EntityID string
	Slot     string
	TokenID  int
}

// Equip implements equip: validates the wallet actually holds
// the item on-chain, swaps it into the slot, and recomputes vitals since
// equipment contributes to effective stats.
func (d *Dispatcher) Equip(ctx context.Context, auth AuthContext, req EquipRequest) error {
	z := d.runtime.GetOrCreateZone(req.ZoneID)
	e, err := getOwnedEntity(auth, z, req.EntityID)
	if err != nil {
		return err
	}

	item, err := d.catalog.ItemByTokenID(req.TokenID)
	if err != nil {
		return rpgerr.Newf(rpgerr.CodeNotFound, "item %d not found", req.TokenID)
	}
	if req.Slot == "" {
		req.Slot = item.Slot
	}
	if req.Slot == "" {
		return rpgerr.Newf(rpgerr.CodeInvalidArgument, "item %d has no equipment slot", req.TokenID)
	}

	bal, err := itemBalance(ctx, d.chain, e.WalletAddress, req.TokenID)
	if err != nil {
		return rpgerr.Newf(rpgerr.CodeInternal, "balance check failed: %v", err)
	}
	if bal < 1 {
		return rpgerr.Newf(rpgerr.CodeNotAllowed, "wallet does not hold item %d", req.TokenID)
	}

	maxDurability := item.MaxDurability
	if maxDurability <= 0 {
		maxDurability = 1
	}
	e.Equipment[req.Slot] = zone.EquipmentSlot{
		TokenID:       req.TokenID,
		Durability:    maxDurability,
		MaxDurability: maxDurability,
		Broken:        false,
	}
	zone.RecalculateVitals(e)
	return nil
}

type UnequipRequest struct {
	ZoneID   string
	EntityID string
	Slot     string
}

// Unequip implements unequip: clears the slot and recomputes
// vitals (losing any stat bonus the item contributed).
func (d *Dispatcher) Unequip(ctx context.Context, auth AuthContext, req UnequipRequest) error {
	z := d.runtime.GetOrCreateZone(req.ZoneID)
	e, err := getOwnedEntity(auth, z, req.EntityID)
	if err != nil {
		return err
	}
	if _, ok := e.Equipment[req.Slot]; !ok {
		return rpgerr.Newf(rpgerr.CodeInvalidState, "slot %q is empty", req.Slot)
	}
	delete(e.Equipment, req.Slot)
	zone.RecalculateVitals(e)
	return nil
}

type RepairRequest struct {
	ZoneID   string
	EntityID string
	Slot     string
}

type RepairResult struct {
	CopperSpent int64
}

// Repair implements repair: charges copper proportional to
// missing durability and the item's base value, via the gold ledger's
// reservation accounting, then restores the slot to full durability.
func (d *Dispatcher) Repair(ctx context.Context, auth AuthContext, req RepairRequest) (*RepairResult, error) {
	z := d.runtime.GetOrCreateZone(req.ZoneID)
	e, err := getOwnedEntity(auth, z, req.EntityID)
	if err != nil {
		return nil, err
	}

	slot, ok := e.Equipment[req.Slot]
	if !ok {
		return nil, rpgerr.Newf(rpgerr.CodeInvalidState, "slot %q is empty", req.Slot)
	}
	missing := slot.MaxDurability - slot.Durability
	if missing <= 0 {
		return &RepairResult{CopperSpent: 0}, nil
	}

	item, err := d.catalog.ItemByTokenID(slot.TokenID)
	if err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "item %d not found", slot.TokenID)
	}
	cost := int64(float64(missing) * float64(item.BaseValue) * repairCopperPerDurabilityPerValue)
	if cost < 1 {
		cost = 1
	}

	onChain, err := goldBalance(ctx, d.chain, e.WalletAddress)
	if err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeInternal, "gold balance check failed: %v", err)
	}
	if d.ledger.AvailableGold(e.WalletAddress, onChain) < cost {
		return nil, rpgerr.Newf(rpgerr.CodeResourceExhausted, "insufficient gold to repair")
	}
	d.ledger.RecordSpend(e.WalletAddress, cost)

	slot.Durability = slot.MaxDurability
	slot.Broken = false
	e.Equipment[req.Slot] = slot
	zone.RecalculateVitals(e)

	return &RepairResult{CopperSpent: cost}, nil
}
