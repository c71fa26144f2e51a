package sat

import "sort"

// ReduceDB prunes the learnt clause database: clauses with LBD <= 2 are
// considered permanent, as are binary clauses and clauses currently
// locked (serving as some variable's antecedent). The remainder are
// ordered by (LBD ascending, activity descending) and the worse half is
// deleted.
func (s *Solver) ReduceDB() {
	if !s.cfg.Reduce || len(s.learnts) == 0 {
		return
	}

	permanent := s.learnts[:0:0]
	var candidates []ClauseRef
	for _, ref := range s.learnts {
		c := s.arena.Get(ref)
		if c.lbd <= 2 || c.Len() <= 2 || c.isProtected() || s.locked(ref) {
			permanent = append(permanent, ref)
		} else {
			candidates = append(candidates, ref)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		ci, cj := s.arena.Get(candidates[i]), s.arena.Get(candidates[j])
		if ci.lbd != cj.lbd {
			return ci.lbd < cj.lbd
		}
		return ci.activity > cj.activity
	})

	half := len(candidates) / 2
	kept := append(permanent, candidates[:half]...)
	for _, ref := range candidates[half:] {
		s.proof.DeleteClause(s.arena.Get(ref).lits)
		s.removeClause(ref)
	}
	s.learnts = kept

	if s.arena.NeedsGC() {
		s.garbageCollect()
	}
}

// scheduleNextReduce advances the conflict-count threshold at which
// ReduceDB should next run, growing it geometrically the way the
// teacher's own Search loop grows its nLearnts/nConflicts budgets.
func (s *Solver) scheduleNextReduce() {
	s.reduceNext = s.TotalConflicts + s.reduceInc
	s.reduceInc += s.reduceInc / 20
}

// garbageCollect compacts the clause arena and relocates every reference
// this Solver holds into one.
func (s *Solver) garbageCollect() {
	relocated := make(map[ClauseRef]ClauseRef, len(s.arena.clauses))
	s.arena.Compact(func(old, new ClauseRef) {
		relocated[old] = new
	})

	relocate := func(ref ClauseRef) ClauseRef {
		if ref == NullClauseRef {
			return NullClauseRef
		}
		nr, ok := relocated[ref]
		if !ok {
			return NullClauseRef
		}
		return nr
	}

	for i, ref := range s.constraints {
		s.constraints[i] = relocate(ref)
	}
	for i, ref := range s.learnts {
		s.learnts[i] = relocate(ref)
	}
	for v := range s.reason {
		r := s.reason[v]
		if !r.binary && r.ref != NullClauseRef {
			s.reason[v] = clauseAntecedent(relocate(r.ref))
		}
	}
	for l := range s.watchers {
		ws := s.watchers[Literal(l)]
		for i := range ws {
			if !ws[i].binary {
				ws[i].ref = relocate(ws[i].ref)
			}
		}
	}
	for l := range s.occ {
		os := s.occ[Literal(l)]
		for i := range os {
			os[i] = relocate(os[i])
		}
	}

	j := 0
	for _, ref := range s.subsumeQueue {
		if nr := relocate(ref); nr != NullClauseRef {
			s.subsumeQueue[j] = nr
			j++
		}
	}
	s.subsumeQueue = s.subsumeQueue[:j]
}
