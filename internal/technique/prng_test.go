package technique

import "testing"

func TestDeterministicRollerIsReproducible(t *testing.T) {
	a := NewDeterministicRoller("0xABC123", "recipe-forge-sword", "12345")
	b := NewDeterministicRoller("0xABC123", "recipe-forge-sword", "12345")

	for i := 0; i < 5; i++ {
		av, bv := a.Float64(), b.Float64()
		if av != bv {
			t.Fatalf("draw %d diverged: %v vs %v", i, av, bv)
		}
	}
}

func TestDeterministicRollerDiffersBySeed(t *testing.T) {
	a := NewDeterministicRoller("0xABC123", "recipe-forge-sword", "12345")
	b := NewDeterministicRoller("0xABC123", "recipe-forge-sword", "12346")
	if a.Float64() == b.Float64() {
		t.Fatal("expected different timestamp-nonce to change the first draw")
	}
}
