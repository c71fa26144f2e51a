package sat

import (
	"log"
	"math/rand"

	"github.com/rhartert/yagh"
)

// RephaseMode selects how saved phases are overridden during a rephase
// cycle. The solver rotates among these strategies on a schedule driven
// by accumulated conflicts rather than ever mixing them within a cycle.
type RephaseMode uint8

const (
	RephaseBest RephaseMode = iota
	RephaseInverted
	RephaseRandom
)

// VarOrder maintains EVSIDS-style activity scores and the order in which
// unassigned variables should be branched on, plus the saved/best phase
// memory used to pick a polarity once a variable is selected.
type VarOrder struct {
	heap *yagh.IntMap[float64]

	activities []float64
	actInc     float64
	actDecay   float64 // current decay; anneals between decayBegin/End
	decayBegin float64
	decayEnd   float64

	// phaseSaved is the last polarity each variable was assigned.
	// phaseBest is the polarity snapshot taken the last time the trail
	// reached a new deepest point ever seen by the search.
	phaseSaved []LBool
	phaseBest  []LBool

	bestTrailLen int

	frozen     []bool
	eliminated []bool

	rng *rand.Rand
}

// NewVarOrder returns an empty VarOrder configured from cfg.
func NewVarOrder(cfg Config) *VarOrder {
	return &VarOrder{
		heap:       yagh.New[float64](0),
		actInc:     1,
		decayBegin: cfg.VarActDecayBegin,
		decayEnd:   cfg.VarActDecayEnd,
		actDecay:   cfg.VarActDecayBegin,
		rng:        rand.New(rand.NewSource(cfg.RandomSeed)),
	}
}

// AddVar registers a new decision-eligible variable with zero activity.
func (vo *VarOrder) AddVar() {
	v := len(vo.activities)
	vo.activities = append(vo.activities, 0)
	vo.phaseSaved = append(vo.phaseSaved, Unknown)
	vo.phaseBest = append(vo.phaseBest, Unknown)
	vo.frozen = append(vo.frozen, false)
	vo.eliminated = append(vo.eliminated, false)
	vo.heap.GrowBy(1)
	vo.heap.Put(v, -vo.activities[v])
}

// Freeze marks v as ineligible for elimination (it may still be branched
// on and appear in the heap).
func (vo *VarOrder) Freeze(v int) { vo.frozen[v] = true }

// IsFrozen reports whether v is frozen.
func (vo *VarOrder) IsFrozen(v int) bool { return vo.frozen[v] }

// Eliminate removes v from the pool of decision-eligible variables.
func (vo *VarOrder) Eliminate(v int) {
	vo.eliminated[v] = true
}

// IsEliminated reports whether v has been eliminated.
func (vo *VarOrder) IsEliminated(v int) bool { return vo.eliminated[v] }

// Reinsert makes v eligible for selection again (e.g. after a backtrack
// unassigns it), recording val as its saved phase when phase saving is in
// effect; val may be Unknown to leave the saved phase untouched.
func (vo *VarOrder) Reinsert(v int, val LBool) {
	if val != Unknown {
		vo.phaseSaved[v] = val
	}
	if !vo.heap.Contains(v) {
		vo.heap.Put(v, -vo.activities[v])
	}
}

// NoteTrailDepth is called whenever the trail grows; if it reaches a new
// deepest point ever observed, the current saved phases are snapshotted
// as the "best" phase for future rephasing.
func (vo *VarOrder) NoteTrailDepth(trailLen int) {
	if trailLen <= vo.bestTrailLen {
		return
	}
	vo.bestTrailLen = trailLen
	copy(vo.phaseBest, vo.phaseSaved)
}

// DecayActivity anneals the decay rate from decayBegin towards decayEnd
// and bumps the activity increment accordingly.
func (vo *VarOrder) DecayActivity() {
	if vo.actDecay < vo.decayEnd {
		vo.actDecay += (vo.decayEnd - vo.decayBegin) / 1e5
		if vo.actDecay > vo.decayEnd {
			vo.actDecay = vo.decayEnd
		}
	}
	vo.actInc /= vo.actDecay
}

// BumpActivity increases v's activity score, rescaling all scores if it
// would overflow the 1e100 ceiling.
func (vo *VarOrder) BumpActivity(v int) {
	newScore := vo.activities[v] + vo.actInc
	vo.activities[v] = newScore
	if vo.heap.Contains(v) {
		vo.heap.Put(v, -newScore)
	}
	if newScore > 1e100 {
		vo.rescale()
	}
}

func (vo *VarOrder) rescale() {
	vo.actInc *= 1e-100
	for v, a := range vo.activities {
		na := a * 1e-100
		vo.activities[v] = na
		if vo.heap.Contains(v) {
			vo.heap.Put(v, -na)
		}
	}
}

// NextDecision pops the highest-activity unassigned, non-eliminated
// variable and returns the literal corresponding to its chosen phase and
// true, or false if no such variable remains (the formula is then
// satisfied).
func (vo *VarOrder) NextDecision(s *Solver) (Literal, bool) {
	for {
		entry, ok := vo.heap.Pop()
		if !ok {
			return 0, false
		}
		v := entry.Elem
		if s.VarValue(v) != Unknown || vo.eliminated[v] {
			continue // stale entry: lazily dropped
		}
		switch vo.phaseSaved[v] {
		case False:
			return NegativeLiteral(v), true
		default:
			return PositiveLiteral(v), true
		}
	}
}

// Rephase overrides every saved phase according to mode.
func (vo *VarOrder) Rephase(mode RephaseMode) {
	switch mode {
	case RephaseBest:
		copy(vo.phaseSaved, vo.phaseBest)
	case RephaseInverted:
		for v, p := range vo.phaseSaved {
			vo.phaseSaved[v] = p.Opposite()
		}
	case RephaseRandom:
		for v := range vo.phaseSaved {
			vo.phaseSaved[v] = Lift(vo.rng.Intn(2) == 0)
		}
	default:
		log.Panicf("sat: unknown rephase mode %d", mode)
	}
}
