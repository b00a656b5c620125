package action

import (
	"context"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/rpgerr"
)

// AcceptQuest registers questID as in-progress for the entity's wallet,
// enforcing level and prerequisite gates before tracking begins.
func (d *Dispatcher) AcceptQuest(ctx context.Context, auth AuthContext, zoneID, entityID, questID string) error {
	z := d.runtime.GetOrCreateZone(zoneID)
	e, err := getOwnedEntity(auth, z, entityID)
	if err != nil {
		return err
	}

	q, err := d.catalog.QuestByID(questID)
	if err != nil {
		return err
	}
	if e.Level < q.RequiredLevel {
		return rpgerr.Newf(rpgerr.CodePrerequisiteNotMet, "quest %q requires level %d", questID, q.RequiredLevel)
	}
	if q.PrerequisiteQuestID != "" && !hasCompletedQuest(e.CompletedQuests, q.PrerequisiteQuestID) {
		return rpgerr.Newf(rpgerr.CodePrerequisiteNotMet, "quest %q requires %q completed first", questID, q.PrerequisiteQuestID)
	}

	return d.quest.Accept(auth.Wallet, q)
}

type TurnInQuestResult struct {
	XPAwarded     int
	GoldAwarded   int64
	ItemsAwarded  []struct {
		TokenID  int
		Quantity int
	}
}

// TurnInQuest validates every objective is met, grants the reward (XP via
// combat's leveling, gold via mint, items via mint, reputation via the
// reputation facade), and records the quest as completed on both the live
// entity and persisted character.
func (d *Dispatcher) TurnInQuest(ctx context.Context, auth AuthContext, zoneID, entityID, questID string) (*TurnInQuestResult, error) {
	z := d.runtime.GetOrCreateZone(zoneID)
	e, err := getOwnedEntity(auth, z, entityID)
	if err != nil {
		return nil, err
	}

	q, err := d.catalog.QuestByID(questID)
	if err != nil {
		return nil, err
	}
	if !d.quest.CanTurnIn(auth.Wallet, q) {
		return nil, rpgerr.Newf(rpgerr.CodePrerequisiteNotMet, "quest %q objectives not complete", questID)
	}

	result := &TurnInQuestResult{}

	if q.Reward.XP > 0 {
		d.combat.AddXP(z, e, q.Reward.XP, nil)
		result.XPAwarded = q.Reward.XP
	}
	if q.Reward.GoldCopper > 0 {
		if err := mintGold(ctx, d.chain, e.WalletAddress, q.Reward.GoldCopper); err != nil {
			return nil, rpgerr.WrapWithCode(err, rpgerr.CodeExternalOutage, "quest gold reward mint failed")
		}
		result.GoldAwarded = q.Reward.GoldCopper
	}
	for _, item := range q.Reward.Items {
		if err := mintItem(ctx, d.chain, e.WalletAddress, item.TokenID, item.Quantity); err != nil {
			d.log.Error().Err(err).Str("wallet", e.WalletAddress).Str("quest", questID).Msg("quest item reward mint failed")
			continue
		}
		result.ItemsAwarded = append(result.ItemsAwarded, struct {
			TokenID  int
			Quantity int
		}{item.TokenID, item.Quantity})
	}
	if q.Reward.Reputation != 0 && d.reputation != nil {
		d.reputation.Adjust(auth.Wallet, q.Reward.Reputation)
	}

	d.quest.Complete(auth.Wallet, questID)
	e.CompletedQuests = append(e.CompletedQuests, questID)

	return result, nil
}

func hasCompletedQuest(completed []string, questID string) bool {
	for _, id := range completed {
		if id == questID {
			return true
		}
	}
	return false
}
