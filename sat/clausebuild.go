package sat

// newOriginalClause normalizes tmp (removing duplicate/falsified literals
// and detecting tautologies) and installs whatever remains. It returns
// (NullClauseRef, true) when the clause was tautological or collapsed to
// an already-enqueued unit, and (_, false) when the clause is empty or
// the unit it collapsed to conflicts with the current assignment — both
// of which mean the formula is UUNSAT at the root level.
func (s *Solver) newOriginalClause(tmp []Literal) (ClauseRef, bool) {
	size := len(tmp)
	seen := make(map[Literal]struct{}, size)

	for i := size - 1; i >= 0; i-- {
		if _, ok := seen[tmp[i].Opposite()]; ok {
			return NullClauseRef, true // tautology: always satisfied
		}
		if _, ok := seen[tmp[i]]; ok {
			size--
			tmp[i], tmp[size] = tmp[size], tmp[i]
			continue
		}
		seen[tmp[i]] = struct{}{}

		switch s.LitValue(tmp[i]) {
		case True:
			return NullClauseRef, true // clause already satisfied at root
		case False:
			size--
			tmp[i], tmp[size] = tmp[size], tmp[i]
		}
	}
	tmp = tmp[:size]

	return s.installClause(tmp, KindOriginal)
}

// newLearntClause installs a clause produced by conflict analysis. lits
// must already be free of duplicates and (other than lits[0], the First
// UIP's negation) falsified; installClause moves the literal at the
// highest decision level among lits[1:] to index 1 before watching it.
func (s *Solver) newLearntClause(lits []Literal, lbd int) (ClauseRef, bool) {
	ref, ok := s.installClause(lits, KindLearnt)
	if ref != NullClauseRef {
		s.arena.Get(ref).lbd = uint32(lbd)
	}
	return ref, ok
}

// installClause allocates the clause for lits (picking KindBinary
// automatically for two-literal clauses) or, for 0/1 literals, resolves
// it directly against the trail.
func (s *Solver) installClause(lits []Literal, kind ClauseKind) (ClauseRef, bool) {
	switch len(lits) {
	case 0:
		return NullClauseRef, false
	case 1:
		return NullClauseRef, s.enqueue(lits[0], noAntecedent())
	case 2:
		ref := s.arena.Alloc(lits, KindBinary)
		c := s.arena.Get(ref)
		s.watchBinary(c.lits[0].Opposite(), c.lits[1])
		s.watchBinary(c.lits[1].Opposite(), c.lits[0])
		if kind == KindLearnt {
			ok := s.enqueue(c.lits[0], binaryAntecedent(c.lits[1]))
			return ref, ok
		}
		return ref, true
	default:
		ref := s.arena.Alloc(lits, kind)
		c := s.arena.Get(ref)
		if kind == KindLearnt {
			// Watch the literal at the highest decision level as the
			// second watch so that undoing the trail to the backtrack
			// level keeps the clause unit, not merely watched.
			maxLevel, wl := -1, 1
			for i := 1; i < len(c.lits); i++ {
				if lvl := s.level[c.lits[i].VarID()]; lvl > maxLevel {
					maxLevel = lvl
					wl = i
				}
			}
			c.lits[wl], c.lits[1] = c.lits[1], c.lits[wl]
		}
		s.watch(ref, c.lits[0].Opposite(), c.lits[1])
		s.watch(ref, c.lits[1].Opposite(), c.lits[0])
		if kind == KindLearnt {
			ok := s.enqueue(c.lits[0], clauseAntecedent(ref))
			return ref, ok
		}
		return ref, true
	}
}

// locked reports whether ref is currently serving as some variable's
// antecedent on the trail, which makes it unsafe to delete.
func (s *Solver) locked(ref ClauseRef) bool {
	c := s.arena.Get(ref)
	if len(c.lits) == 0 {
		return false
	}
	v := c.lits[0].VarID()
	r := s.reason[v]
	return !r.binary && r.ref == ref
}

// removeClause unwatches and marks ref as deleted. For binary clauses
// the inline watcher entries are dropped by unwatchBinary instead
// (there is no arena-level watch to remove).
func (s *Solver) removeClause(ref ClauseRef) {
	c := s.arena.Get(ref)
	if c.kind != KindBinary {
		s.unwatch(ref, c.lits[0].Opposite())
		s.unwatch(ref, c.lits[1].Opposite())
	} else {
		s.unwatchBinary(c.lits[0].Opposite(), c.lits[1])
		s.unwatchBinary(c.lits[1].Opposite(), c.lits[0])
	}
	s.arena.Delete(ref)
}

// unwatchBinary removes the inline binary watcher for (watch, other).
func (s *Solver) unwatchBinary(watch Literal, other Literal) {
	ws := s.watchers[watch]
	j := 0
	for i := range ws {
		if !ws[i].binary || ws[i].blocker != other {
			ws[j] = ws[i]
			j++
		}
	}
	s.watchers[watch] = ws[:j]
}

// simplifyClause drops root-falsified literals from c's live literal
// slice in place, returning true if c is now satisfied at the root (and
// should be removed) per Clause.Simplify's teacher-derived contract.
func (s *Solver) simplifyClause(c *Clause) bool {
	k := 0
	for _, l := range c.lits {
		switch s.LitValue(l) {
		case True:
			return true
		case False:
			// drop
		default:
			c.lits[k] = l
			k++
		}
	}
	c.lits = c.lits[:k]
	c.computeAbstraction()
	return false
}
