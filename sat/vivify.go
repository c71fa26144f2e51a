package sat

import "log"

// vivify.go implements probing-based clause strengthening: each
// original clause's literals are assumed false in turn and propagated.
// A literal that the earlier probes already made false is dropped from
// the clause. If the probes force a later literal true, or propagation
// reaches a conflict, every literal after that point is redundant and
// the clause is shortened.

// Vivify strengthens every clause in the original database via
// probing. It must only be called at decision level 0.
func (s *Solver) Vivify() bool {
	if lvl := s.decisionLevel(); lvl != 0 {
		log.Fatalf("sat: Vivify called at decision level %d, must be 0", lvl)
	}
	if s.unsat {
		return false
	}

	for _, ref := range append([]ClauseRef(nil), s.constraints...) {
		c := s.arena.Get(ref)
		if c.isDeleted() || c.Len() < 2 {
			continue
		}
		if !s.vivifyClause(ref) {
			return false
		}
	}

	if s.arena.NeedsGC() {
		s.garbageCollect()
	}
	return true
}

// vivifyClause probes ref's literals one at a time, returning false if
// the probing discovered the formula is unsat.
func (s *Solver) vivifyClause(ref ClauseRef) bool {
	lits := append([]Literal(nil), s.arena.Get(ref).lits...)

	kept := make([]Literal, 0, len(lits))
	implied := false

	for _, l := range lits {
		switch s.LitValue(l) {
		case True:
			kept = append(kept, l)
			implied = true
		case False:
			continue // redundant: already false under the probes so far
		default:
			kept = append(kept, l)
			if s.probeAssume(l.Opposite()) {
				if cf := s.Propagate(); cf.found {
					implied = true
				}
			}
		}
		if implied {
			break
		}
	}
	s.cancelUntil(0)

	if len(kept) == len(lits) {
		return true
	}
	return s.replaceClause(ref, kept)
}

// probeAssume opens a decision level for l without counting it as a
// search decision, the way a vivification probe should.
func (s *Solver) probeAssume(l Literal) bool {
	s.trailLim = append(s.trailLim, len(s.trail))
	return s.enqueue(l, noAntecedent())
}

// replaceClause swaps ref for a fresh clause holding kept, going
// through newOriginalClause so a collapse to a unit or the empty
// clause is handled the same way AddClause handles it.
func (s *Solver) replaceClause(ref ClauseRef, kept []Literal) bool {
	c := s.arena.Get(ref)
	oldLits := append([]Literal(nil), c.lits...)

	s.removeOcc(ref, oldLits)
	s.proof.AddClause(kept)
	s.proof.DeleteClause(oldLits)
	s.removeClause(ref)
	s.removeFromConstraints(ref)

	newRef, ok := s.newOriginalClause(kept)
	if !ok {
		s.unsat = true
		return false
	}
	if newRef != NullClauseRef {
		s.constraints = append(s.constraints, newRef)
		s.addOcc(newRef)
		s.subsumeQueue = append(s.subsumeQueue, newRef)
	}
	return true
}
