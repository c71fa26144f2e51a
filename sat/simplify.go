package sat

import "log"

// Simplify rewrites the clause database according to the current
// root-level (decision level 0) assignment: clauses satisfied at the
// root are removed, and root-falsified literals are dropped from the
// rest. It must only be called at decision level 0.
func (s *Solver) Simplify() bool {
	if lvl := s.decisionLevel(); lvl != 0 {
		log.Fatalf("sat: Simplify called at decision level %d, must be 0", lvl)
	}
	if s.unsat {
		return false
	}
	if cf := s.Propagate(); cf.found {
		s.unsat = true
		return false
	}

	s.simplifyList(&s.learnts)
	s.simplifyList(&s.constraints)

	if s.arena.NeedsGC() {
		s.garbageCollect()
	}
	return true
}

func (s *Solver) simplifyList(refs *[]ClauseRef) {
	list := *refs
	j := 0
	for _, ref := range list {
		c := s.arena.Get(ref)
		orig := append([]Literal(nil), c.lits...)

		if s.simplifyClause(c) {
			if c.kind != KindLearnt {
				s.removeOcc(ref, orig)
			}
			s.proof.DeleteClause(orig)
			s.removeClause(ref)
			continue
		}

		if c.kind != KindLearnt && len(c.lits) != len(orig) {
			s.removeOcc(ref, droppedLiterals(orig, c.lits))
		}

		list[j] = ref
		j++
	}
	*refs = list[:j]
}

// droppedLiterals returns the literals present in before but not in
// after.
func droppedLiterals(before, after []Literal) []Literal {
	keep := make(map[Literal]struct{}, len(after))
	for _, l := range after {
		keep[l] = struct{}{}
	}
	var dropped []Literal
	for _, l := range before {
		if _, ok := keep[l]; !ok {
			dropped = append(dropped, l)
		}
	}
	return dropped
}
