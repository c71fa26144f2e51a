package sat

import "strings"

// ClauseKind distinguishes the small closed set of clause roles the
// solver cares about. There is no dynamic dispatch on this tag; every
// consumer switches on it explicitly.
type ClauseKind uint8

const (
	KindOriginal ClauseKind = iota
	KindLearnt
	KindBinary
)

type clauseStatus uint8

const (
	statusDeleted clauseStatus = 1 << iota
	statusProtected
	statusTouched // queued for (or already visited by) subsumption
)

// Clause is a dynamically-sized ordered sequence of literals stored in a
// ClauseArena. The first two literals are always the watched pair; their
// position is an invariant maintained by Propagate and installClause alike.
type Clause struct {
	lits []Literal

	activity    float64
	lbd         uint32
	abstraction uint64

	kind   ClauseKind
	status clauseStatus

	// prevPos caches the position at which the last watch-moving scan
	// found a replacement literal, so the next scan resumes from there
	// instead of always restarting at index 2.
	prevPos int
}

func (c *Clause) Lits() []Literal { return c.lits }
func (c *Clause) Len() int        { return len(c.lits) }
func (c *Clause) LBD() uint32     { return c.lbd }
func (c *Clause) Kind() ClauseKind { return c.kind }

func (c *Clause) isDeleted() bool   { return c.status&statusDeleted != 0 }
func (c *Clause) isProtected() bool { return c.status&statusProtected != 0 }
func (c *Clause) isTouched() bool   { return c.status&statusTouched != 0 }
func (c *Clause) isLearnt() bool    { return c.kind == KindLearnt }

func (c *Clause) setProtected()   { c.status |= statusProtected }
func (c *Clause) setUnprotected() { c.status &^= statusProtected }
func (c *Clause) setTouched()     { c.status |= statusTouched }
func (c *Clause) clearTouched()   { c.status &^= statusTouched }

// computeAbstraction recomputes the 64-bit abstraction hash (one bit per
// var mod 64) used to short-circuit subsumption tests.
func (c *Clause) computeAbstraction() {
	var h uint64
	for _, l := range c.lits {
		h |= 1 << uint(l.VarID()%64)
	}
	c.abstraction = h
}

// subsumesAbstraction reports whether c's abstraction could possibly
// subsume d's; a false result is conclusive, a true result requires the
// literal-wise check.
func (c *Clause) subsumesAbstraction(d *Clause) bool {
	return c.abstraction&^d.abstraction == 0
}

func (c *Clause) String() string {
	if len(c.lits) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.lits[0].String())
	for _, l := range c.lits[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
