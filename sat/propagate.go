package sat

// conflict identifies the clause that propagation found to be false under
// the current assignment. Binary conflicts carry their two (false)
// literals directly rather than an arena reference, mirroring how binary
// clauses are watched inline.
type conflict struct {
	found  bool
	binary bool
	ref    ClauseRef
	a, b   Literal
}

func noConflict() conflict { return conflict{} }

// Propagate closes the trail under unit propagation: it processes every
// pending literal from qhead onward until either the frontier catches up
// with the trail (success) or a clause becomes false (conflict). It never
// changes the decision level.
func (s *Solver) Propagate() conflict {
	for s.qhead < len(s.trail) {
		l := s.trail[s.qhead]
		s.qhead++

		ws := s.watchers[l]
		s.tmpWatchers = append(s.tmpWatchers[:0], ws...)
		s.watchers[l] = ws[:0]

		for i := 0; i < len(s.tmpWatchers); i++ {
			w := s.tmpWatchers[i]

			if s.LitValue(w.blocker) == True {
				s.watchers[l] = append(s.watchers[l], w)
				continue
			}

			if w.binary {
				// The blocker is false (checked above) or unknown; if
				// unknown it must be implied true by this clause.
				if s.LitValue(w.blocker) == False {
					s.watchers[l] = append(s.watchers[l], w)
					s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
					s.propClear()
					return conflict{found: true, binary: true, a: l.Opposite(), b: w.blocker}
				}
				s.watchers[l] = append(s.watchers[l], w)
				s.enqueue(w.blocker, binaryAntecedent(l.Opposite()))
				continue
			}

			c := s.arena.Get(w.ref)
			if s.propagateClause(c, w.ref, l) {
				continue
			}

			// Conflicting: restore remaining watchers and stop.
			s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
			s.propClear()
			return conflict{found: true, ref: w.ref}
		}
	}
	return noConflict()
}

// propagateClause re-establishes c's watch invariant after the literal
// watching l's negation (i.e. l) became true, and enqueues c's implied
// literal if the clause has become unit. It returns false exactly when c
// is now false under the assignment (a conflict).
func (s *Solver) propagateClause(c *Clause, ref ClauseRef, l Literal) bool {
	opp := l.Opposite()
	if c.lits[0] == opp {
		c.lits[0], c.lits[1] = c.lits[1], c.lits[0]
	}

	if s.LitValue(c.lits[0]) == True {
		s.watch(ref, l, c.lits[0])
		return true
	}

	if c.prevPos >= len(c.lits) {
		c.prevPos = 2
	}
	for i := c.prevPos; i < len(c.lits); i++ {
		if s.LitValue(c.lits[i]) != False {
			c.prevPos = i
			c.lits[1], c.lits[i] = c.lits[i], c.lits[1]
			s.watch(ref, c.lits[1].Opposite(), c.lits[0])
			return true
		}
	}
	for i := 2; i < c.prevPos; i++ {
		if s.LitValue(c.lits[i]) != False {
			c.prevPos = i
			c.lits[1], c.lits[i] = c.lits[i], c.lits[1]
			s.watch(ref, c.lits[1].Opposite(), c.lits[0])
			return true
		}
	}

	s.watch(ref, l, c.lits[0])
	return s.enqueue(c.lits[0], clauseAntecedent(ref))
}

// propClear discards every literal still pending propagation: once a
// conflict is found the search will backtrack before propagating again.
func (s *Solver) propClear() {
	s.qhead = len(s.trail)
}
