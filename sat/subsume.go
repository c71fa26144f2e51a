package sat

import "log"

// subsume.go implements backward subsumption and self-subsuming
// resolution over the original clause database, the "Simplifier"
// component of the clause-database subsystem. A clause C subsumes a
// clause D when every literal of C also occurs in D, making D
// redundant. If all but one of C's literals occur in D, and that one
// literal occurs negated in D, then D can be strengthened by dropping
// its negated copy (self-subsuming resolution).
//
// Candidates are found through occurrence lists rather than an
// all-pairs scan: for a clause C we pick the literal with the smallest
// occurrence list (the pivot) and only ever compare C against clauses
// sharing that variable.

func containsLit(c *Clause, l Literal) bool {
	for _, x := range c.lits {
		if x == l {
			return true
		}
	}
	return false
}

// pivotLiteral returns the literal of c with the fewest co-occurring
// clauses, minimizing the candidate set scanned for subsumption.
func (s *Solver) pivotLiteral(c *Clause) Literal {
	best := c.lits[0]
	bestLen := len(s.occ[best])
	for _, l := range c.lits[1:] {
		if n := len(s.occ[l]); n < bestLen {
			best, bestLen = l, n
		}
	}
	return best
}

// trySubsume checks whether c subsumes or self-subsumes d, applying
// whichever holds. It returns which (if either) happened.
func (s *Solver) trySubsume(cRef, dRef ClauseRef) (removed, strengthened bool) {
	if cRef == dRef {
		return false, false
	}
	c, d := s.arena.Get(cRef), s.arena.Get(dRef)
	if c.Len() > d.Len()+1 {
		return false, false
	}
	if !c.subsumesAbstraction(d) {
		return false, false
	}

	var extra Literal = -1
	for _, l := range c.lits {
		switch {
		case containsLit(d, l):
			// l accounted for directly.
		case extra == -1 && containsLit(d, l.Opposite()):
			extra = l
		default:
			return false, false
		}
	}

	if extra == -1 {
		s.removeOcc(dRef, d.lits)
		s.proof.DeleteClause(d.lits)
		s.removeClause(dRef)
		s.removeFromConstraints(dRef)
		return true, false
	}

	s.strengthenClause(dRef, extra.Opposite())
	return false, true
}

// removeFromConstraints splices ref out of the original clause list. It
// is only ever called for a handful of clauses per inprocessing round,
// so a linear scan is acceptable.
func (s *Solver) removeFromConstraints(ref ClauseRef) {
	for i, r := range s.constraints {
		if r == ref {
			s.constraints[i] = s.constraints[len(s.constraints)-1]
			s.constraints = s.constraints[:len(s.constraints)-1]
			return
		}
	}
}

// strengthenClause replaces ref with a copy of its clause missing drop.
// The replacement goes through newOriginalClause so that a strengthened
// clause collapsing to a unit or an empty clause is handled by the same
// logic AddClause already relies on.
func (s *Solver) strengthenClause(ref ClauseRef, drop Literal) {
	c := s.arena.Get(ref)
	oldLits := append([]Literal(nil), c.lits...)
	newLits := make([]Literal, 0, len(oldLits)-1)
	for _, l := range oldLits {
		if l != drop {
			newLits = append(newLits, l)
		}
	}

	s.removeOcc(ref, oldLits)
	s.proof.AddClause(newLits)
	s.proof.DeleteClause(oldLits)
	s.removeClause(ref)
	s.removeFromConstraints(ref)

	if len(newLits) == 0 {
		s.unsat = true
		return
	}

	newRef, ok := s.newOriginalClause(newLits)
	if !ok {
		s.unsat = true
		return
	}
	if newRef != NullClauseRef {
		s.constraints = append(s.constraints, newRef)
		s.addOcc(newRef)
		s.subsumeQueue = append(s.subsumeQueue, newRef)
	}
}

// subsumeClause scans every clause sharing c's pivot variable, either
// removing subsumed clauses or strengthening self-subsumed ones.
func (s *Solver) subsumeClause(ref ClauseRef) {
	c := s.arena.Get(ref)
	if c.isDeleted() || c.Len() == 0 {
		return
	}
	pivot := s.pivotLiteral(c)

	for _, cand := range append([]ClauseRef(nil), s.occ[pivot]...) {
		if s.arena.Get(cand).isDeleted() {
			continue
		}
		s.trySubsume(ref, cand)
		if s.unsat || s.arena.Get(ref).isDeleted() {
			return
		}
	}
	for _, cand := range append([]ClauseRef(nil), s.occ[pivot.Opposite()]...) {
		if s.arena.Get(cand).isDeleted() {
			continue
		}
		s.trySubsume(ref, cand)
		if s.unsat || s.arena.Get(ref).isDeleted() {
			return
		}
	}
}

// SubsumeSimplify drains the subsumption queue, running backward
// subsumption and self-subsuming resolution over every clause enqueued
// since the last call (new or strengthened original clauses enqueue
// themselves).
func (s *Solver) SubsumeSimplify() bool {
	if lvl := s.decisionLevel(); lvl != 0 {
		log.Fatalf("sat: SubsumeSimplify called at decision level %d, must be 0", lvl)
	}
	if s.unsat {
		return false
	}
	for len(s.subsumeQueue) > 0 {
		ref := s.subsumeQueue[len(s.subsumeQueue)-1]
		s.subsumeQueue = s.subsumeQueue[:len(s.subsumeQueue)-1]
		if s.arena.Get(ref).isDeleted() {
			continue
		}
		s.subsumeClause(ref)
		if s.unsat {
			return false
		}
	}
	if s.arena.NeedsGC() {
		s.garbageCollect()
	}
	return true
}
