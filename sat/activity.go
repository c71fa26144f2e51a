package sat

// bumpClauseActivity increases c's activity score, rescaling every
// learnt clause's activity if it would overflow the 1e100 ceiling.
func (s *Solver) bumpClauseActivity(c *Clause) {
	c.activity += s.clauseInc
	if c.activity > 1e100 {
		s.clauseInc *= 1e-100
		for _, ref := range s.learnts {
			s.arena.Get(ref).activity *= 1e-100
		}
	}
}

// decayClauseActivity anneals the clause-activity increment.
func (s *Solver) decayClauseActivity() {
	s.clauseInc /= s.clauseDecay
}
