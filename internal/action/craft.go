package action

import (
	"context"
	"math"
	"strconv"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/technique"
)

const stationRangeUnits = 4.0

type CraftRequest struct {
	ZoneID   string
	EntityID string
	RecipeID string
}

type CraftResult struct {
	TokenID  int
	Quantity int
	Quality  string // "" when the recipe has no quality roll
}

var qualityTiers = []string{"common", "uncommon", "rare", "epic"}
var qualityWeights = []int{60, 27, 10, 3}

// Craft implements craft (forge/brew/cook/leatherwork/jewelcraft) (spec
// §4.F): validates profession, station type and range, and preflights
// on-chain material balances, then burns materials sequentially and mints
// the output. If a burn succeeds but the mint fails, materials are already
// gone -- refund is deliberately deferred to operator reconciliation (see
// §9 open questions), so this only records a stuck event.
func (d *Dispatcher) Craft(ctx context.Context, auth AuthContext, req CraftRequest) (*CraftResult, error) {
	z := d.runtime.GetOrCreateZone(req.ZoneID)
	crafter, err := getOwnedEntity(auth, z, req.EntityID)
	if err != nil {
		return nil, err
	}

	recipe, err := d.catalog.RecipeByID(req.RecipeID)
	if err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "recipe %q not found", req.RecipeID)
	}
	if !hasProfession(crafter, recipe.Profession) {
		return nil, rpgerr.Newf(rpgerr.CodePrerequisiteNotMet, "profession %q not learned", recipe.Profession)
	}

	if recipe.StationType != "" {
		if err := d.requireNearStation(req.ZoneID, recipe.StationType, crafter.X, crafter.Y); err != nil {
			return nil, err
		}
	}

	for _, mat := range recipe.Materials {
		bal, err := itemBalance(ctx, d.chain, crafter.WalletAddress, mat.TokenID)
		if err != nil {
			return nil, rpgerr.WrapWithCode(err, rpgerr.CodeExternalOutage, "balance check failed for token "+strconv.Itoa(mat.TokenID))
		}
		if bal < int64(mat.Quantity) {
			return nil, rpgerr.Newf(rpgerr.CodeResourceExhausted, "insufficient material token %d", mat.TokenID)
		}
	}

	burned := make([]catalogMaterial, 0, len(recipe.Materials))
	for _, mat := range recipe.Materials {
		if err := burnItem(ctx, d.chain, crafter.WalletAddress, mat.TokenID, mat.Quantity); err != nil {
			d.rollbackBurns(ctx, crafter.WalletAddress, burned)
			return nil, rpgerr.Newf(rpgerr.CodeInternal, "burn failed for token %d: %v", mat.TokenID, err)
		}
		burned = append(burned, catalogMaterial{TokenID: mat.TokenID, Quantity: mat.Quantity})
	}

	if err := mintItem(ctx, d.chain, crafter.WalletAddress, recipe.OutputToken, recipe.OutputQty); err != nil {
		d.log.Error().Err(err).Str("wallet", crafter.WalletAddress).Str("recipe", recipe.ID).Msg("craft stuck: materials burned, mint failed")
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeLedgerFailure,
			"craft mint failed after burn for recipe "+recipe.ID+" -- materials are gone, needs operator reconciliation")
	}

	quality := ""
	if recipe.QualityRoll {
		quality = rollQuality(crafter.WalletAddress, recipe.ID, z.Tick())
	}

	if d.quest != nil {
		d.quest.Record(crafter.WalletAddress, "craft", recipe.ID, d.questDefs())
	}

	return &CraftResult{TokenID: recipe.OutputToken, Quantity: recipe.OutputQty, Quality: quality}, nil
}

type catalogMaterial struct {
	TokenID  int
	Quantity int
}

// rollbackBurns re-mints materials already burned in this attempt when a
// later step in the same craft fails. It does not undo a burn whose
// corresponding mint itself fails -- that case is the "stuck" path above.
func (d *Dispatcher) rollbackBurns(ctx context.Context, wallet string, burned []catalogMaterial) {
	for _, m := range burned {
		if err := mintItem(ctx, d.chain, wallet, m.TokenID, m.Quantity); err != nil {
			d.log.Error().Err(err).Str("wallet", wallet).Int("tokenId", m.TokenID).Msg("craft rollback mint failed")
		}
	}
}

func (d *Dispatcher) requireNearStation(zoneID, stationType string, x, y float64) error {
	layout, err := d.catalog.ZoneLayout(zoneID)
	if err != nil {
		return rpgerr.Newf(rpgerr.CodeInvalidState, "no station layout for zone %q", zoneID)
	}
	for _, s := range layout.Stations {
		if s.Type != stationType {
			continue
		}
		if math.Hypot(x-s.X, y-s.Y) <= stationRangeUnits {
			return nil
		}
	}
	return rpgerr.Newf(rpgerr.CodeOutOfRange, "no %q station in range", stationType)
}

// rollQuality picks a quality tier deterministically seeded by
// (wallet, recipe, timestamp-nonce) so the same craft attempt (down to the
// tick it lands on) always resolves to the same tier.
func rollQuality(wallet, recipeID string, tick uint64) string {
	roller := technique.NewDeterministicRoller(wallet, recipeID, strconv.FormatUint(tick, 10))
	idx := roller.Weighted(qualityWeights)
	return qualityTiers[idx]
}
