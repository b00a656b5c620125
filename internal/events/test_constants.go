
package events

// Test constants for modifier types, sources, and targets, as untyped
// string constants.
const (
	// Test modifier sources
	TestModifierSourceRage       = "rage"
	TestModifierSourceBless      = "bless"
	TestModifierSourceShield     = "shield"
	TestModifierSourceTest       = "test"
	TestModifierSourceTestSource = "TestSource"
	TestModifierSourceTest2      = "test2"
	TestModifierSourceResistance = "resistance"
	TestModifierSourceBlessed    = "blessed"

	// Test modifier types
	TestModifierTypeAdditive       = "additive"
	TestModifierTypeMultiplicative = "multiplicative"
	TestModifierTypeDice           = "dice"
	TestModifierTypeFlag           = "flag"
	TestModifierTypeCustom         = "custom"
	TestModifierTypeType           = "type"

	// Test modifier targets
	TestModifierTargetDamage     = "damage"
	TestModifierTargetAC         = "ac"
	TestModifierTargetAttackRoll = "attack_roll"
	TestModifierTargetAdvantage  = "advantage"
	TestModifierTargetRoll       = "roll"
	TestModifierTargetTarget     = "target"
)