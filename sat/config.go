package sat

import (
	"io"
	"os"
	"time"
)

// Config holds every tunable recognized by the solver core. Field names
// mirror the stable option keys from the external configuration contract
// (given in parentheses in each comment) so that a CLI or config-file layer
// can map keys onto fields mechanically.
type Config struct {
	// Chronological backtracking threshold (cbt_thr). If the gap between
	// the current decision level and the derived backtrack level is at
	// least this large, the solver backtracks only one level instead of
	// jumping all the way, to retain more assignment context.
	ChronoBacktrackThreshold int

	// Maximum number of clauses the database may hold; 0 means no limit
	// (clause_limit). The solver does not read this field, so no limit is
	// enforced whatever its value.
	ClauseLimit int

	// Maximum resolvent length accepted during variable elimination
	// (elim_cls_lim).
	ElimClauseLimit int

	// Maximum growth in resolvent count accepted during variable
	// elimination, relative to |P|+|N| (elim_grw_lim).
	ElimGrowthLimit int

	// Number of conflicts between simplifier passes (elim_trigger).
	ElimTrigger int64

	// Variables with more than this many occurrences are never considered
	// for elimination (elim_var_occ).
	ElimVarOcc int

	// Window length of the assignment-trail EMA (rst_asg_len).
	RestartAsgLen int64

	// Restart blocking threshold: a restart is blocked when
	// current_trail / asg_ema exceeds this (rst_asg_thr).
	RestartAsgThreshold float64

	// Window length of the fast LBD EMA (rst_lbd_len).
	RestartLBDLen int64

	// Window length of the slow LBD EMA (rst_lbd_slw).
	RestartLBDSlow int64

	// Restart forcing threshold: a restart is forced when
	// fast_lbd / slow_lbd exceeds this (rst_lbd_thr).
	RestartLBDThreshold float64

	// Scale applied to Luby-sequence segment lengths while stabilizing
	// (rst_stb_scl).
	RestartStabilizeScale float64

	// Minimum number of conflicts between two restarts (rst_step).
	RestartStep int64

	// Wall-clock solving budget; non-positive means no timeout (timeout).
	Timeout time.Duration

	// Variable-activity decay rate at the start of search, annealing
	// towards VarActDecayEnd (vrw_dcy_beg).
	VarActDecayBegin float64

	// Variable-activity decay rate search anneals towards (vrw_dcy_end).
	VarActDecayEnd float64

	// Clause-activity decay rate; not part of the external numeric option
	// set, carried over from the teacher's own Options.ClauseDecay default.
	ClauseDecay float64

	// Boolean toggles. Adaptive is carried for the option set but is not
	// read by the solver; setting it changes nothing. Certify is read by
	// the CLI, which then installs a DRATWriter; the solver itself writes
	// proof records only to the writer installed with SetProofWriter.
	Adaptive            bool // adaptive: allow heuristic adaptation/staging
	Elim                bool // elim: run the BVE/subsumption simplifier
	Reduce              bool // reduce: periodically prune learnt clauses
	Rephase             bool // rephase: periodically override saved phases
	ReasonSideRewarding bool // rsr: bump activities of reason-side literals
	Stabilize           bool // stabilize: alternate search/stabilize modes
	Certify             bool // certify: emit a DRAT proof stream
	PhaseSaving         bool // remember each variable's last assigned phase

	// Out receives the periodic human-readable search-progress banner.
	// Defaults to os.Stdout; a nil Out discards the banner, which is how
	// the package's own tests silence it.
	Out io.Writer

	// RandomSeed seeds the PRNG used by the "randomize" rephasing
	// strategy. Solving is otherwise fully deterministic (time is
	// observational only), so this is the only source of randomness and
	// is always explicit.
	RandomSeed int64
}

// DefaultConfig mirrors the defaults given in the external configuration
// contract.
var DefaultConfig = Config{
	ChronoBacktrackThreshold: 100,
	ClauseLimit:              0,
	ElimClauseLimit:          100,
	ElimGrowthLimit:          0,
	ElimTrigger:              40000,
	ElimVarOcc:               10000,
	RestartAsgLen:            3500,
	RestartAsgThreshold:      1.40,
	RestartLBDLen:            50,
	RestartLBDSlow:           10000,
	RestartLBDThreshold:      0.70,
	RestartStabilizeScale:    2.0,
	RestartStep:              50,
	Timeout:                  5000 * time.Second,
	VarActDecayBegin:         0.75,
	VarActDecayEnd:           0.98,
	ClauseDecay:              0.999,

	Adaptive:            true,
	Elim:                true,
	Reduce:              true,
	Rephase:             true,
	ReasonSideRewarding: true,
	Stabilize:           true,
	Certify:             false,
	PhaseSaving:         true,

	Out:        os.Stdout,
	RandomSeed: 1,
}

func (c Config) out() io.Writer {
	if c.Out == nil {
		return io.Discard
	}
	return c.Out
}
