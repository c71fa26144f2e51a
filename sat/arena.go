package sat

// ClauseRef is a relocatable reference to a clause: an offset into a
// ClauseArena, never a pointer. References become invalid across a
// Compact call and must be re-resolved by the caller afterwards.
type ClauseRef uint32

// NullClauseRef is never a valid clause; index 0 of every arena is
// reserved and left empty so the zero value of ClauseRef can mean "no
// clause" (e.g. a decision has no antecedent).
const NullClauseRef ClauseRef = 0

// ClauseArena owns all clause storage for a Solver. It is the sole
// allocator for clauses; no per-clause heap allocation happens outside of
// it during search.
type ClauseArena struct {
	clauses []Clause
	wasted  int // literals belonging to deleted clauses
	size    int // literals belonging to all clauses, live or dead
}

// NewClauseArena returns an empty arena with slot 0 reserved.
func NewClauseArena() *ClauseArena {
	return &ClauseArena{clauses: make([]Clause, 1)}
}

// Alloc installs a new clause holding a private copy of lits and returns
// its reference.
func (a *ClauseArena) Alloc(lits []Literal, kind ClauseKind) ClauseRef {
	c := Clause{kind: kind, prevPos: 2}
	c.lits = append(make([]Literal, 0, len(lits)), lits...)
	c.computeAbstraction()
	a.clauses = append(a.clauses, c)
	a.size += len(lits)
	return ClauseRef(len(a.clauses) - 1)
}

// Get dereferences ref. The returned pointer is only valid until the next
// Compact call.
func (a *ClauseArena) Get(ref ClauseRef) *Clause {
	return &a.clauses[ref]
}

// Delete marks ref's clause as garbage. Its literal storage is released
// immediately; the slot itself is reclaimed on the next Compact.
func (a *ClauseArena) Delete(ref ClauseRef) {
	c := &a.clauses[ref]
	if c.isDeleted() {
		return
	}
	c.status |= statusDeleted
	a.wasted += len(c.lits)
	c.lits = nil
}

// NeedsGC reports whether the fraction of wasted literals warrants a
// compaction pass.
func (a *ClauseArena) NeedsGC() bool {
	return a.size > 0 && float64(a.wasted)/float64(a.size) > 0.2
}

// Compact copies every surviving clause into a fresh backing array,
// invoking relocate(oldRef, newRef) for each one so the caller can fix up
// every reference it holds (watch lists, trail antecedents, analyzer
// scratch) before touching the arena again.
func (a *ClauseArena) Compact(relocate func(old, new ClauseRef)) {
	fresh := make([]Clause, 1, len(a.clauses))
	newSize := 0
	for old := ClauseRef(1); int(old) < len(a.clauses); old++ {
		c := a.clauses[old]
		if c.isDeleted() {
			continue
		}
		fresh = append(fresh, c)
		newRef := ClauseRef(len(fresh) - 1)
		newSize += len(c.lits)
		relocate(old, newRef)
	}
	a.clauses = fresh
	a.wasted = 0
	a.size = newSize
}

// Len returns the number of slots in the arena, including dead ones and
// the reserved slot 0.
func (a *ClauseArena) Len() int {
	return len(a.clauses)
}
