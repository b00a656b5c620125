// Package dice provides cryptographically secure random number generation
// for RPG mechanics without implementing any game-specific rules.
//
// Purpose:
// This package offers a single Roller interface plus a crypto/rand-backed
// implementation, giving every part of the shard that needs a die roll
// (combat damage, loot tables) the same source of randomness without
// duplicating a rand.Int call at each site.
//
// Scope:
//   - Roller interface: Roll(ctx, size) and RollN(ctx, count, size)
//   - CryptoRoller: cryptographically secure randomness via crypto/rand
//   - Context-aware rolling so a canceled zone tick aborts mid-RollN
//   - A mock Roller (go.uber.org/mock) for deterministic unit tests
//
// Non-Goals:
//   - Dice notation parsing ("3d6+2"): callers roll by die size directly
//   - Modifier/bonus math: addition after a roll is the caller's job
//   - Dice pools, roll descriptions, success-counting: game-specific
//   - Advantage/disadvantage, critical hits: game rules, not randomness
//
// Integration:
// This package is used by:
//   - internal/combat: crit/dodge rolls, loot-table selection
//   - internal/selectables: SelectionContext wraps a Roller for weighted picks
//
// The dice package provides the randomness foundation but makes no
// assumptions about how rolls are used or interpreted.
//
// Example:
//
//	roller := dice.NewRoller()
//	n, err := roller.Roll(ctx, 20) // 1..20
//	rolls, err := roller.RollN(ctx, 3, 6) // three d6 results
package dice
