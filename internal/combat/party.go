package combat

// PartyProvider answers "who splits XP with this killer", without combat
// needing to know anything about how parties are formed or persisted. The
// supplemented party package implements this; tests can stub it directly.
type PartyProvider interface {
	// PartyMembers returns every entity id sharing a party with entityID,
	// including entityID itself. A solo entity returns a single-element
	// slice containing just entityID.
	PartyMembers(entityID string) []string
}

// SoloPartyProvider is the default PartyProvider: every entity is always
// solo. Used when no party system is wired in yet.
type SoloPartyProvider struct{}

// PartyMembers implements PartyProvider.
func (SoloPartyProvider) PartyMembers(entityID string) []string {
	return []string{entityID}
}

// maxPartySplitSize is the party size at which the per-additional-member
// bonus stops growing: a 5-person party's share is capped at 140% combined
// (100% base + 4 x 10%), never 10 distinct shares.
const maxPartySplitSize = 5

// xpSplit computes each party member's share of a kill's base XP award.
// A solo killer keeps 100%. Each additional member (up to the party size
// cap) adds 10% to the pool, which is then split evenly across the whole
// party -- so a full 5-person party shares 140% of the base award.
func xpSplit(members []string, baseXP int) map[string]int {
	n := len(members)
	if n <= 1 {
		return map[string]int{members[0]: baseXP}
	}
	if n > maxPartySplitSize {
		n = maxPartySplitSize
	}
	pool := float64(baseXP) * (1.0 + 0.10*float64(n-1))
	share := int(pool / float64(len(members)))

	out := make(map[string]int, len(members))
	for _, id := range members {
		out[id] = share
	}
	return out
}
