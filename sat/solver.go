package sat

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Solver is the single aggregate owning all CDCL search state: the clause
// database, the assignment trail, the variable order, the restart
// controller's EMAs, and the simplifier's bookkeeping. There is no
// process-wide state outside of it besides the interrupt flag an external
// caller may set.
type Solver struct {
	cfg Config

	arena       *ClauseArena
	constraints []ClauseRef
	learnts     []ClauseRef

	clauseInc   float64
	clauseDecay float64

	order *VarOrder

	// watchers[l] holds every clause that watches l's negation, i.e. the
	// clauses woken when l becomes true.
	watchers [][]Watcher

	assigns []LBool

	trail    []Literal
	trailLim []int
	qhead    int
	reason   []Antecedent
	level    []int

	// occ[l] lists every live original clause containing literal l, used
	// by the simplifier to find subsumption candidates and to partition a
	// variable's clauses during elimination. Learnt clauses are not
	// occurrence-tracked: inprocessing only ever rewrites the original
	// database.
	occ [][]ClauseRef

	unsat bool

	// Restart controller state (EMAs + scheduling); see restart.go.
	fastLBD     EMA
	slowLBD     EMA
	trailEMA    EMA
	sinceRestart int64
	stabilizing  bool
	stabilizeIdx int64
	conflictsInStage int64

	// Simplifier scheduling; see simplify.go / elim.go / subsume.go.
	reduceNext int64
	reduceInc  int64

	conflictsUntilElim int64
	subsumeQueue        []ClauseRef
	elimStack           []elimGroup
	touchedByElim       []Literal
	rephaseAt           int64
	rephaseMode         RephaseMode

	// Proof emission; see proof.go.
	proof ProofWriter

	// Cooperative cancellation.
	interrupted atomic.Bool
	deadline    time.Time
	startTime   time.Time

	// Search statistics, exported for CLI/progress reporting as the
	// teacher's own Solver fields were.
	TotalConflicts  int64
	TotalRestarts   int64
	TotalDecisions  int64
	TotalIterations int64

	Models [][]bool

	// Scratch buffers re-used across calls to avoid per-call allocation.
	seenVar     *ResetSet
	tmpLearnts  []Literal
	tmpReason   []Literal
	tmpWatchers []Watcher
}

// NewDefaultSolver returns a Solver configured with DefaultConfig.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultConfig)
}

// NewSolver returns an empty Solver configured from cfg.
func NewSolver(cfg Config) *Solver {
	s := &Solver{
		cfg:         cfg,
		arena:       NewClauseArena(),
		clauseInc:   1,
		clauseDecay: cfg.ClauseDecay,
		order:       NewVarOrder(cfg),
		seenVar:     &ResetSet{},
		proof:       NopProofWriter{},

		fastLBD:  NewEMA(DecayForWindow(int(cfg.RestartLBDLen))),
		slowLBD:  NewEMA(DecayForWindow(int(cfg.RestartLBDSlow))),
		trailEMA: NewEMA(DecayForWindow(int(cfg.RestartAsgLen))),

		conflictsUntilElim: cfg.ElimTrigger,
		rephaseAt:          10000,
		reduceNext:         2000,
		reduceInc:          300,
	}
	return s
}

// SetProofWriter installs w as the destination for DRAT records. Passing
// nil installs a no-op writer.
func (s *Solver) SetProofWriter(w ProofWriter) {
	if w == nil {
		w = NopProofWriter{}
	}
	s.proof = w
}

// Interrupt asynchronously requests that the current or next Solve call
// stop at the next cooperative safe point.
func (s *Solver) Interrupt() {
	s.interrupted.Store(true)
}

func (s *Solver) shouldAbort() (ErrorKind, bool) {
	if s.interrupted.Load() {
		return KindInterrupted, true
	}
	if s.cfg.Timeout > 0 && !s.deadline.IsZero() && time.Now().After(s.deadline) {
		return KindTimedOut, true
	}
	return KindNone, false
}

func (s *Solver) PositiveLiteral(v int) Literal { return PositiveLiteral(v) }
func (s *Solver) NegativeLiteral(v int) Literal { return NegativeLiteral(v) }

func (s *Solver) NumVariables() int    { return len(s.assigns) / 2 }
func (s *Solver) NumAssigns() int      { return len(s.trail) }
func (s *Solver) NumConstraints() int  { return len(s.constraints) }
func (s *Solver) NumLearnts() int      { return len(s.learnts) }
func (s *Solver) decisionLevel() int   { return len(s.trailLim) }

// VarValue returns the current assignment of variable v.
func (s *Solver) VarValue(v int) LBool {
	return s.assigns[PositiveLiteral(v)]
}

// LitValue returns the current assignment of literal l (i.e. whether l is
// true, false, or unknown under the current partial assignment).
func (s *Solver) LitValue(l Literal) LBool {
	return s.assigns[l]
}

// AddVariable declares a new variable and returns its 0-based ID.
func (s *Solver) AddVariable() int {
	v := s.NumVariables()

	s.watchers = append(s.watchers, nil, nil)
	s.occ = append(s.occ, nil, nil)
	s.reason = append(s.reason, noAntecedent())
	s.level = append(s.level, -1)
	s.assigns = append(s.assigns, Unknown, Unknown)
	s.seenVar.Expand()
	s.order.AddVar()

	return v
}

// Freeze prevents v from being eliminated by the simplifier. Variables
// that the caller needs to read back in the model (e.g. assumption
// variables) should always be frozen.
func (s *Solver) Freeze(v int) {
	s.order.Freeze(v)
}

// AddClause adds an original clause to the database. It may only be
// called at decision level 0. Tautological or root-satisfied clauses are
// dropped silently; discovering the formula is trivially UNSAT (a unit
// clause conflicting with an existing root assignment, or an explicit
// empty clause) sets the solver to the unsat state rather than returning
// an error, matching the "Inconsistent is a success outcome" rule.
func (s *Solver) AddClause(lits []Literal) error {
	if s.decisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, must be 0", s.decisionLevel())
	}
	for _, l := range lits {
		if l.VarID() >= s.NumVariables() {
			return newSolveError(KindInvalidInput, "literal %s references undeclared variable", l)
		}
	}
	if len(lits) == 0 {
		s.unsat = true
		return nil
	}

	ref, ok := s.newOriginalClause(lits)
	if !ok {
		s.unsat = true
		return nil
	}
	if ref != NullClauseRef {
		s.constraints = append(s.constraints, ref)
		s.addOcc(ref)
		s.subsumeQueue = append(s.subsumeQueue, ref)
	}
	return nil
}

// addOcc registers ref in the occurrence list of every literal it
// contains.
func (s *Solver) addOcc(ref ClauseRef) {
	for _, l := range s.arena.Get(ref).lits {
		s.occ[l] = append(s.occ[l], ref)
	}
}

// removeOcc drops ref from the occurrence list of every literal in lits.
// lits is passed explicitly since the caller may need to remove ref
// using its literals from before a shrink or deletion.
func (s *Solver) removeOcc(ref ClauseRef, lits []Literal) {
	for _, l := range lits {
		ws := s.occ[l]
		for i, r := range ws {
			if r == ref {
				ws[i] = ws[len(ws)-1]
				s.occ[l] = ws[:len(ws)-1]
				break
			}
		}
	}
}

// occCount returns the number of live original clauses containing v
// positively and negatively.
func (s *Solver) occCount(v int) (pos, neg int) {
	return len(s.occ[PositiveLiteral(v)]), len(s.occ[NegativeLiteral(v)])
}
