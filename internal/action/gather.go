package action

import (
	"context"
	"math"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

const gatherRangeUnits = 3.0

type GatherRequest struct {
	ZoneID   string
	EntityID string
	NodeID   string
	RecipeID string
}

type GatherResult struct {
	TokenID  int
	Quantity int
}

// Gather implements gather (mine/herb/skin): validates
// profession learned, correct tool equipped, tool tier >= node tier, in
// range, node not depleted; deducts one charge and one tool durability
// point (breaking the tool at 0); mints the output. A mint failure rolls
// the charge and durability back.
func (d *Dispatcher) Gather(ctx context.Context, auth AuthContext, req GatherRequest) (*GatherResult, error) {
	z := d.runtime.GetOrCreateZone(req.ZoneID)
	gatherer, err := getOwnedEntity(auth, z, req.EntityID)
	if err != nil {
		return nil, err
	}

	recipe, err := d.catalog.RecipeByID(req.RecipeID)
	if err != nil {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "recipe %q not found", req.RecipeID)
	}
	if !hasProfession(gatherer, recipe.Profession) {
		return nil, rpgerr.Newf(rpgerr.CodePrerequisiteNotMet, "profession %q not learned", recipe.Profession)
	}

	node, ok := z.Get(req.NodeID)
	if !ok || node.Kind != zone.EntityKindResourceNode {
		return nil, rpgerr.Newf(rpgerr.CodeNotFound, "resource node %q not found", req.NodeID)
	}
	if node.Charges <= 0 {
		return nil, rpgerr.Newf(rpgerr.CodeInvalidState, "node %q is depleted", req.NodeID)
	}
	if math.Hypot(gatherer.X-node.X, gatherer.Y-node.Y) > gatherRangeUnits {
		return nil, rpgerr.Newf(rpgerr.CodeOutOfRange, "node %q out of range", req.NodeID)
	}

	tool, hasTool := gatherer.Equipment["tool"]
	if !hasTool || tool.Broken {
		return nil, rpgerr.Newf(rpgerr.CodePrerequisiteNotMet, "no usable tool equipped")
	}
	toolItem, err := d.catalog.ItemByTokenID(tool.TokenID)
	if err != nil || toolItem.Tier < node.Tier {
		return nil, rpgerr.Newf(rpgerr.CodePrerequisiteNotMet, "tool tier too low for node %q", req.NodeID)
	}

	node.Charges--
	if node.Charges == 0 {
		node.DepletedAtTick = z.Tick()
	}
	tool.Durability--
	if tool.Durability <= 0 {
		tool.Broken = true
	}
	gatherer.Equipment["tool"] = tool

	if err := mintItem(ctx, d.chain, gatherer.WalletAddress, recipe.OutputToken, recipe.OutputQty); err != nil {
		node.Charges++
		if node.DepletedAtTick == z.Tick() {
			node.DepletedAtTick = 0
		}
		tool.Durability++
		tool.Broken = false
		gatherer.Equipment["tool"] = tool
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeExternalOutage, "gather mint failed")
	}

	if d.quest != nil {
		d.quest.Record(gatherer.WalletAddress, "gather", recipe.ID, d.questDefs())
	}

	return &GatherResult{TokenID: recipe.OutputToken, Quantity: recipe.OutputQty}, nil
}

func hasProfession(e *zone.Entity, profession string) bool {
	for _, p := range e.Professions {
		if p == profession {
			return true
		}
	}
	return false
}
