package sat

// Watcher is an entry in the watch list of a literal L: a clause watching
// ¬L that should be examined when L becomes newly true, together with a cached
// blocker literal of the same clause that can short-circuit the check
// when it is already true. Binary clauses never touch the arena: the
// watcher carries the clause's other literal directly as blocker and sets
// binary, so propagation and reason reconstruction both skip the arena.
type Watcher struct {
	binary  bool
	ref     ClauseRef
	blocker Literal
}

// watchersOf returns the watch list for literal l, indexed directly since
// literals are small dense non-negative integers.
func (s *Solver) watchersOf(l Literal) []Watcher {
	return s.watchers[l]
}

// watch registers a non-binary clause ref to be woken when watch becomes
// true (i.e. the clause's watched literal, watch's negation, becomes
// false), caching guard as the blocker.
func (s *Solver) watch(ref ClauseRef, watch Literal, guard Literal) {
	s.watchers[watch] = append(s.watchers[watch], Watcher{ref: ref, blocker: guard})
}

// watchBinary registers an inline binary-clause watcher.
func (s *Solver) watchBinary(watch Literal, other Literal) {
	s.watchers[watch] = append(s.watchers[watch], Watcher{binary: true, blocker: other})
}

// unwatch removes every watcher for ref from lit's watch list. Used when a
// (non-binary) clause is deleted or relocated.
func (s *Solver) unwatch(ref ClauseRef, lit Literal) {
	ws := s.watchers[lit]
	j := 0
	for i := range ws {
		if ws[i].ref != ref || ws[i].binary {
			ws[j] = ws[i]
			j++
		}
	}
	s.watchers[lit] = ws[:j]
}
