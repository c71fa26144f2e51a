package sat

import (
	"fmt"
	"time"
)

// search.go ties the propagator, analyzer, restart controller, and
// clause-database simplifier into the top-level CDCL loop.

// Solve runs the solver to completion (or until interrupted/timed out)
// and returns True, False, or Unknown. A non-nil error means the
// result is Unknown because the search was aborted rather than because
// it genuinely ran out of things to try; an empty clause discovered at
// the root, by contrast, is a definite (and error-free) False.
func (s *Solver) Solve() (LBool, error) {
	if s.unsat {
		return False, nil
	}

	s.startTime = time.Now()
	if s.cfg.Timeout > 0 {
		s.deadline = s.startTime.Add(s.cfg.Timeout)
	}

	s.printSeparator()
	s.printSearchHeader()
	s.printSeparator()

	status := s.search()

	s.printSearchStats()
	s.printSeparator()
	s.cancelUntil(0)

	if status == Unknown {
		if kind, aborted := s.shouldAbort(); aborted {
			return Unknown, newSolveError(kind, "search aborted after %d conflicts", s.TotalConflicts)
		}
	}
	return status, nil
}

// search is the core CDCL loop: propagate, analyze conflicts and learn,
// restart and reduce on their own independent schedules, and
// periodically inprocess at decision level 0.
func (s *Solver) search() LBool {
	for {
		if _, aborted := s.shouldAbort(); aborted {
			return Unknown
		}

		if s.TotalIterations%10000 == 0 {
			s.printSearchStats()
		}
		s.TotalIterations++

		if cf := s.Propagate(); cf.found {
			s.TotalConflicts++
			if s.decisionLevel() == 0 {
				s.unsat = true
				return False
			}

			learnt, backtrackLevel, lbd := s.analyze(cf)
			s.onConflict(lbd)
			s.cancelUntil(backtrackLevel)
			s.recordLearnt(learnt, lbd)
			if s.unsat {
				return False
			}

			s.decayClauseActivity()
			s.order.DecayActivity()

			if s.cfg.Rephase && s.TotalConflicts >= s.rephaseAt {
				s.rephaseNext()
			}
			if s.wantsRestart() {
				s.doRestart()
			}
			continue
		}

		if s.decisionLevel() == 0 {
			if !s.Simplify() {
				return False
			}
			if s.cfg.Elim && s.TotalConflicts >= s.conflictsUntilElim {
				if !s.SubsumeSimplify() || !s.EliminateVariables() || !s.Vivify() {
					return False
				}
				s.conflictsUntilElim = s.TotalConflicts + s.cfg.ElimTrigger
			}
		}

		if s.cfg.Reduce && s.TotalConflicts >= s.reduceNext {
			s.ReduceDB()
			s.scheduleNextReduce()
		}

		l, ok := s.order.NextDecision(s)
		if !ok {
			s.saveModel()
			s.cancelUntil(0)
			return True
		}
		s.assume(l)
	}
}

// recordLearnt installs a freshly analyzed clause into the learnt
// database and, if certification is enabled, the proof stream.
func (s *Solver) recordLearnt(learnt []Literal, lbd int) {
	ref, ok := s.newLearntClause(learnt, lbd)
	if !ok {
		s.unsat = true
		return
	}
	s.proof.AddClause(learnt)
	if ref != NullClauseRef {
		s.learnts = append(s.learnts, ref)
	}
}

// rephaseNext overrides the saved phase array according to the next
// strategy in the rotation and reschedules the next rephase.
func (s *Solver) rephaseNext() {
	s.order.Rephase(s.rephaseMode)
	s.rephaseMode = (s.rephaseMode + 1) % 3
	s.rephaseAt = s.TotalConflicts + 10000
}

func (s *Solver) printSeparator() {
	fmt.Fprintln(s.cfg.out(), "c ---------------------------------------------------------------------------")
}

func (s *Solver) printSearchHeader() {
	fmt.Fprintln(s.cfg.out(), "c            time     iterations      conflicts       restarts        learnts")
}

func (s *Solver) printSearchStats() {
	fmt.Fprintf(
		s.cfg.out(),
		"c %14.3fs %14d %14d %14d %14d\n",
		time.Since(s.startTime).Seconds(),
		s.TotalIterations,
		s.TotalConflicts,
		s.TotalRestarts,
		len(s.learnts))
}
