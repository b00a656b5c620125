package action

import (
	"context"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// learnableProfessions is the fixed set of professions a trainer can
// teach. Gathering professions pair with a tool slot item, crafting
// professions with a station type; both are enforced by Gather/Craft
// themselves once learned, not here.
var learnableProfessions = map[string]bool{
	"mine": true, "herb": true, "skin": true,
	"forge": true, "brew": true, "cook": true,
}

// learnProfessionCostCopper is the flat fee a trainer charges regardless
// of profession (a constant per-action cost rather than a price table;
// repair, by contrast, scales with missing durability and item value).
const learnProfessionCostCopper = 100

// trainerStationPrefix names the catalog.StationPoint.Type a profession
// trainer is parked at: "trainer-mine", "trainer-forge", and so on.
// Reusing catalog.ZoneLayout.Stations (rather than spawning a dedicated
// live trainer entity) matches how crafting stations are already
// validated purely against static catalog data in requireNearStation.
const trainerStationPrefix = "trainer-"

type LearnProfessionRequest struct {
	ZoneID     string
	EntityID   string
	Profession string
}

// LearnProfession validates the entity stands near a trainer station
// offering the requested profession, charges the flat learning fee
// against the gold ledger (no on-chain burn: the chain driver exposes no
// fungible gold debit, only MintGold, so spends are tracked purely as a
// ledger reservation against the on-chain balance, the same pattern
// trade.go's Buy uses), and appends the profession to the entity's
// learned list (idempotent: already-known professions are a no-op, not
// an error).
func (d *Dispatcher) LearnProfession(ctx context.Context, auth AuthContext, req LearnProfessionRequest) error {
	if !learnableProfessions[req.Profession] {
		return rpgerr.Newf(rpgerr.CodeInvalidArgument, "profession %q does not exist", req.Profession)
	}

	z := d.runtime.GetOrCreateZone(req.ZoneID)
	e, err := getOwnedEntity(auth, z, req.EntityID)
	if err != nil {
		return err
	}

	if err := d.requireNearStation(req.ZoneID, trainerStationPrefix+req.Profession, e.X, e.Y); err != nil {
		return err
	}

	if hasProfession(e, req.Profession) {
		return nil
	}

	onChain, err := goldBalance(ctx, d.chain, e.WalletAddress)
	if err != nil {
		return rpgerr.Newf(rpgerr.CodeInternal, "gold balance check failed: %v", err)
	}
	if d.ledger.AvailableGold(e.WalletAddress, onChain) < learnProfessionCostCopper {
		return rpgerr.Newf(rpgerr.CodeResourceExhausted, "insufficient gold")
	}
	d.ledger.RecordSpend(e.WalletAddress, learnProfessionCostCopper)

	e.Professions = append(e.Professions, req.Profession)
	return nil
}
