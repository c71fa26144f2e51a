package sat

import "github.com/rhartert/yagh"

// elim.go implements bounded variable elimination (BVE): a variable is
// removed by resolving every clause containing it positively against
// every clause containing it negatively and replacing the lot with the
// resolvents, provided doing so does not grow the database past the
// configured bound. Eliminated variables are restored once the rest of
// the formula has been solved; see model.go.

// elimGroup records everything needed to restore one eliminated
// variable's truth value once the remaining formula has a model: the
// variable itself and the original clauses that mentioned it, which
// were removed from the database at elimination time.
type elimGroup struct {
	v       int
	clauses [][]Literal
}

// eligibleForElim reports whether v is a candidate for elimination: not
// frozen (the caller may need its value), not already eliminated, and
// currently unassigned.
func (s *Solver) eligibleForElim(v int) bool {
	return !s.order.IsFrozen(v) && !s.order.IsEliminated(v) && s.VarValue(v) == Unknown
}

// EliminateVariables runs bounded variable elimination to a fixpoint
// over every eligible variable, cheapest (smallest pos*neg occurrence
// product) first. It must only be called at decision level 0.
func (s *Solver) EliminateVariables() bool {
	if s.unsat {
		return false
	}
	if !s.cfg.Elim {
		return true
	}

	heap := yagh.New[int](0)
	heap.GrowBy(s.NumVariables())
	for v := 0; v < s.NumVariables(); v++ {
		if s.eligibleForElim(v) {
			pos, neg := s.occCount(v)
			heap.Put(v, pos*neg)
		}
	}

	for heap.Len() > 0 {
		entry, ok := heap.Pop()
		if !ok {
			break
		}
		v := entry.Elem
		if !s.eligibleForElim(v) {
			continue
		}
		pos, neg := s.occCount(v)
		if pos+neg > s.cfg.ElimVarOcc {
			continue // too expensive for this round; leave unresolved
		}
		if !s.tryEliminate(v) {
			continue
		}
		if s.unsat {
			return false
		}
		for _, l := range s.touchedByElim {
			nv := l.VarID()
			if s.eligibleForElim(nv) {
				np, nn := s.occCount(nv)
				heap.Put(nv, np*nn)
			}
		}
		s.touchedByElim = s.touchedByElim[:0]
	}

	if s.arena.NeedsGC() {
		s.garbageCollect()
	}
	return !s.unsat
}

// tryEliminate attempts to eliminate v, returning false (and leaving the
// database untouched) if doing so would exceed the configured growth
// bound or produce a resolvent longer than the configured length bound.
func (s *Solver) tryEliminate(v int) bool {
	posRefs := append([]ClauseRef(nil), s.occ[PositiveLiteral(v)]...)
	negRefs := append([]ClauseRef(nil), s.occ[NegativeLiteral(v)]...)
	if len(posRefs) == 0 && len(negRefs) == 0 {
		s.order.Eliminate(v)
		return true
	}

	var resolvents [][]Literal
	for _, cp := range posRefs {
		cLits := s.arena.Get(cp).lits
		for _, cn := range negRefs {
			dLits := s.arena.Get(cn).lits
			res, ok := resolveOnVar(cLits, dLits, v)
			if !ok {
				continue // tautological resolvent, dropped
			}
			if len(res) > s.cfg.ElimClauseLimit {
				return false
			}
			resolvents = append(resolvents, res)
		}
	}

	before := len(posRefs) + len(negRefs)
	if len(resolvents)-before > s.cfg.ElimGrowthLimit {
		return false
	}

	group := elimGroup{v: v}
	for _, ref := range posRefs {
		group.clauses = append(group.clauses, append([]Literal(nil), s.arena.Get(ref).lits...))
	}
	for _, ref := range negRefs {
		group.clauses = append(group.clauses, append([]Literal(nil), s.arena.Get(ref).lits...))
	}
	s.elimStack = append(s.elimStack, group)

	// Emit every resolvent's add record before deleting the eliminated
	// originals, so a DRAT checker always has a clause set that implies
	// the next deletion rather than a temporarily unsatisfiable gap.
	for _, lits := range resolvents {
		s.proof.AddClause(lits)
	}

	for _, ref := range posRefs {
		s.deleteOriginalClause(ref)
	}
	for _, ref := range negRefs {
		s.deleteOriginalClause(ref)
	}

	for _, lits := range resolvents {
		ref, ok := s.newOriginalClause(lits)
		if !ok {
			s.unsat = true
			return true
		}
		if ref != NullClauseRef {
			s.constraints = append(s.constraints, ref)
			s.addOcc(ref)
			s.subsumeQueue = append(s.subsumeQueue, ref)
			s.touchedByElim = append(s.touchedByElim, s.arena.Get(ref).lits...)
		}
	}

	s.order.Eliminate(v)
	return true
}

// deleteOriginalClause removes ref from the constraint list, its
// occurrence lists, and the arena, emitting a DRAT deletion record.
func (s *Solver) deleteOriginalClause(ref ClauseRef) {
	c := s.arena.Get(ref)
	s.removeOcc(ref, c.lits)
	s.proof.DeleteClause(c.lits)
	s.removeClause(ref)
	s.removeFromConstraints(ref)
}

// resolveOnVar resolves cLits and dLits on variable v, returning the
// resolvent and true, or (nil, false) if the resolvent is a tautology
// (some other variable appears with both polarities across the two
// clauses).
func resolveOnVar(cLits, dLits []Literal, v int) ([]Literal, bool) {
	out := make([]Literal, 0, len(cLits)+len(dLits)-2)
	seen := make(map[Literal]bool, len(cLits)+len(dLits))
	for _, l := range cLits {
		if l.VarID() == v {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	for _, l := range dLits {
		if l.VarID() == v {
			continue
		}
		if seen[l.Opposite()] {
			return nil, false
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out, true
}
