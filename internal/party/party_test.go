package party

import "testing"

func TestPartyMembersSoloDefaultsToSelf(t *testing.T) {
	m := NewManager()
	members := m.PartyMembers("solo-player")
	if len(members) != 1 || members[0] != "solo-player" {
		t.Fatalf("expected solo member list, got %v", members)
	}
}

func TestFormAndPartyMembers(t *testing.T) {
	m := NewManager()
	if err := m.Form("a", "b", "c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []string{"a", "b", "c"} {
		members := m.PartyMembers(id)
		if len(members) != 3 {
			t.Fatalf("expected 3 members for %q, got %v", id, members)
		}
	}
}

func TestFormRejectsAlreadyGrouped(t *testing.T) {
	m := NewManager()
	if err := m.Form("a", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Form("a", "c"); err == nil {
		t.Fatal("expected error forming a second group with an already-grouped member")
	}
}

func TestJoinAddsMember(t *testing.T) {
	m := NewManager()
	if err := m.Form("a", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Join("a", "c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.PartyMembers("c")) != 3 {
		t.Fatalf("expected c to see all 3 members, got %v", m.PartyMembers("c"))
	}
}

func TestLeaveDisbandsDownToOne(t *testing.T) {
	m := NewManager()
	if err := m.Form("a", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Leave("b")

	if members := m.PartyMembers("a"); len(members) != 1 || members[0] != "a" {
		t.Fatalf("expected a to be solo after b leaves a 2-person party, got %v", members)
	}
	if members := m.PartyMembers("b"); len(members) != 1 || members[0] != "b" {
		t.Fatalf("expected b to be solo after leaving, got %v", members)
	}
}

func TestFormRejectsOversizeGroup(t *testing.T) {
	m := NewManager()
	if err := m.Form("a", "b", "c", "d", "e", "f"); err == nil {
		t.Fatal("expected error forming a 6-member group")
	}
}
