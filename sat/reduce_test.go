package sat

import "testing"

// TestGarbageCollect_relocatesSubsumeQueue guards against the subsumeQueue
// holding stale ClauseRefs after a Compact(): every surviving reference it
// holds must keep pointing at the same clause content, and references to
// clauses deleted before the collection must be dropped rather than
// silently resolving to whatever clause the compaction happens to place at
// that offset.
func TestGarbageCollect_relocatesSubsumeQueue(t *testing.T) {
	s := NewDefaultSolver()
	s.cfg.Out = nil
	for i := 0; i < 6; i++ {
		s.AddVariable()
	}

	must := func(err error) {
		if err != nil {
			t.Fatalf("AddClause(): %s", err)
		}
	}
	must(s.AddClause([]Literal{PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2)}))
	must(s.AddClause([]Literal{PositiveLiteral(3), PositiveLiteral(4), PositiveLiteral(5)}))
	must(s.AddClause([]Literal{NegativeLiteral(0), NegativeLiteral(2), NegativeLiteral(4)}))

	if len(s.subsumeQueue) != 3 {
		t.Fatalf("subsumeQueue has %d entries after AddClause x3, want 3", len(s.subsumeQueue))
	}
	staleRef := s.subsumeQueue[1]
	survivorA := s.subsumeQueue[0]
	survivorB := s.subsumeQueue[2]

	wantA := append([]Literal(nil), s.arena.Get(survivorA).lits...)
	wantB := append([]Literal(nil), s.arena.Get(survivorB).lits...)

	// Delete the middle clause the way a simplification pass would,
	// without touching subsumeQueue, to produce a stale entry and enough
	// wasted literals to warrant a collection.
	s.removeOcc(staleRef, s.arena.Get(staleRef).lits)
	s.removeClause(staleRef)
	s.removeFromConstraints(staleRef)

	if !s.arena.NeedsGC() {
		t.Fatalf("arena.NeedsGC() = false, want true after deleting one of three equal-sized clauses")
	}

	s.garbageCollect()

	if len(s.subsumeQueue) != 2 {
		t.Fatalf("subsumeQueue has %d entries after garbageCollect, want 2 (stale entry dropped); queue = %v", len(s.subsumeQueue), s.subsumeQueue)
	}

	gotLits := make(map[string]bool, 2)
	for _, ref := range s.subsumeQueue {
		c := s.arena.Get(ref)
		if c.isDeleted() {
			t.Errorf("subsumeQueue entry %v resolves to a deleted clause after garbageCollect", ref)
			continue
		}
		gotLits[litsKey(c.lits)] = true
	}

	for _, want := range [][]Literal{wantA, wantB} {
		if !gotLits[litsKey(want)] {
			t.Errorf("surviving clause %v not found among relocated subsumeQueue entries: %v", want, gotLits)
		}
	}
}
