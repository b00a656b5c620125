package agent

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/action"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/store"
	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/zone"
)

const aggroRangeUnits = 15.0
const gatherApproachUnits = 3.0

// tick runs one iteration of the loop: fetch state, consult focus/strategy
// (and the LLM), choose and issue one concrete action.
func (r *Runner) tick(ctx context.Context) error {
	auth := action.AuthContext{Wallet: r.wallet}

	r.mu.Lock()
	cfg := r.cfg
	r.mu.Unlock()

	if cfg.EntityRef.ZoneID == "" || cfg.EntityRef.EntityID == "" {
		return rpgerr.Newf(rpgerr.CodeInvalidState, "agent %q has no entityRef", r.wallet)
	}

	z := r.runtime.GetOrCreateZone(cfg.EntityRef.ZoneID)
	self, ok := z.Get(cfg.EntityRef.EntityID)
	if !ok {
		return rpgerr.Newf(rpgerr.CodeNotFound, "agent entity %q not found in zone %q", cfg.EntityRef.EntityID, cfg.EntityRef.ZoneID)
	}
	if self.IsDead() {
		return nil // waiting on respawn; nothing to act on this tick
	}

	call, err := r.llm.Decide(ctx, r.decisionPrompt(cfg, self, z), decisionTools)
	if err != nil {
		return err
	}

	if call.Tool == "update_focus" {
		r.applyFocusUpdate(call)
		return nil
	}
	return r.actOnFocus(ctx, auth, cfg, self, z)
}

func (r *Runner) applyFocusUpdate(call ToolCall) {
	r.mu.Lock()
	if call.Focus != "" {
		r.cfg.Focus = call.Focus
	}
	if call.Strategy != "" {
		r.cfg.Strategy = call.Strategy
	}
	if call.TargetZone != "" {
		r.cfg.TargetZone = call.TargetZone
	}
	r.cfg.LastUpdated = time.Now().Unix()
	cp := r.cfg
	r.mu.Unlock()
	r.store.SaveAgentConfig(r.wallet, cp)
}

// decisionPrompt summarizes the agent's own state and nearby entities for
// the LLM, per §4.J step 1-2 ("fetch game state... consult focus/strategy").
func (r *Runner) decisionPrompt(cfg store.AgentConfig, self *zone.Entity, z *zone.Zone) string {
	nearby := z.EntitiesWithin(zone.Position{X: self.X, Y: self.Y}, aggroRangeUnits, func(e *zone.Entity) bool {
		return e.ID != self.ID
	})
	return fmt.Sprintf(
		"wallet=%s focus=%s strategy=%s hp=%d/%d essence=%d/%d level=%d nearby=%d",
		r.wallet, cfg.Focus, cfg.Strategy, self.HP, self.MaxHP, self.Essence, self.MaxEssence, self.Level, len(nearby),
	)
}

// actOnFocus chooses and issues exactly one concrete action for the
// entity's current focus. Each focus's selection logic is intentionally
// simple: the LLM owns strategy, this owns mechanics.
func (r *Runner) actOnFocus(ctx context.Context, auth action.AuthContext, cfg store.AgentConfig, self *zone.Entity, z *zone.Zone) error {
	zoneID := cfg.EntityRef.ZoneID
	switch cfg.Focus {
	case "combat":
		return r.actCombat(ctx, auth, zoneID, self, z)
	case "gathering":
		return r.actGathering(ctx, auth, zoneID, self, z)
	case "crafting":
		return r.actCrafting(ctx, auth, zoneID, self)
	default:
		return nil // questing/enchanting/alchemy/cooking/trading/idle: no mechanical move yet
	}
}

func (r *Runner) actCombat(ctx context.Context, auth action.AuthContext, zoneID string, self *zone.Entity, z *zone.Zone) error {
	hostiles := z.EntitiesWithin(zone.Position{X: self.X, Y: self.Y}, aggroRangeUnits, func(e *zone.Entity) bool {
		return e.Kind == zone.EntityKindMob && !e.IsDead()
	})
	if len(hostiles) == 0 {
		return nil
	}
	target := nearest(self, hostiles)
	_, err := r.dispatcher.Attack(ctx, auth, zoneID, self.ID, target.ID)
	return err
}

func (r *Runner) actGathering(ctx context.Context, auth action.AuthContext, zoneID string, self *zone.Entity, z *zone.Zone) error {
	nodes := z.EntitiesWithin(zone.Position{X: self.X, Y: self.Y}, aggroRangeUnits, func(e *zone.Entity) bool {
		return e.Kind == zone.EntityKindResourceNode && e.Charges > 0
	})
	if len(nodes) == 0 {
		return nil
	}
	node := nearest(self, nodes)
	if distance(self, node) > gatherApproachUnits {
		return z.Move(self.ID, node.X, node.Y)
	}
	recipeID, ok := gatherRecipeForNodeType(node.NodeType)
	if !ok {
		return nil
	}
	_, err := r.dispatcher.Gather(ctx, auth, action.GatherRequest{
		ZoneID: zoneID, EntityID: self.ID, NodeID: node.ID, RecipeID: recipeID,
	})
	return err
}

func (r *Runner) actCrafting(ctx context.Context, auth action.AuthContext, zoneID string, self *zone.Entity) error {
	for _, recipeID := range self.LearnedTechniques {
		if _, err := r.dispatcher.Craft(ctx, auth, action.CraftRequest{
			ZoneID: zoneID, EntityID: self.ID, RecipeID: recipeID,
		}); err == nil {
			return nil
		}
	}
	return nil
}

func nearest(self *zone.Entity, candidates []*zone.Entity) *zone.Entity {
	best := candidates[0]
	bestDist := distance(self, best)
	for _, c := range candidates[1:] {
		if d := distance(self, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func distance(a, b *zone.Entity) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// gatherRecipeForNodeType maps a resource node's type to a gather recipe
// id by prefixing it with "gather-" (e.g. "ore-node" -> "gather-ore-node").
// The id is not checked against the catalog; the bundled catalog's gather
// recipes use other ids (e.g. "mine-iron-ore"), so none of its node types
// maps to an existing recipe.
func gatherRecipeForNodeType(nodeType string) (string, bool) {
	if nodeType == "" {
		return "", false
	}
	return "gather-" + nodeType, true
}

// jitter returns a random duration in [0, base/4] so agent wakeups don't
// thunder in lockstep.
func jitter(base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(base)/4 + 1))
}
