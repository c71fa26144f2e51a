package sat

// luby returns the x-th term (0-indexed) of the Luby sequence over base:
// base raised to the exponents 0,0,1,0,0,1,2,...; with base 2 this is
// 1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,...
func luby(base int64, x int64) int64 {
	size, seq := int64(1), int64(0)
	for size < x+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != x {
		size = (size - 1) / 2
		seq--
		x = x % size
	}
	result := int64(1)
	for i := int64(0); i < seq; i++ {
		result *= base
	}
	return result
}

// onConflict folds a new conflict's LBD and trail size into the restart
// EMAs and advances the stabilization schedule. It must be called exactly
// once per conflict, before any restart decision is made.
func (s *Solver) onConflict(lbd int) {
	s.fastLBD.Add(float64(lbd))
	s.slowLBD.Add(float64(lbd))
	s.trailEMA.Add(float64(len(s.trail)))
	s.sinceRestart++

	if !s.cfg.Stabilize {
		return
	}
	s.conflictsInStage++
	target := luby(2, s.stabilizeIdx) * int64(s.cfg.RestartStabilizeScale*float64(s.cfg.RestartStep))
	if target <= 0 {
		target = s.cfg.RestartStep
	}
	if s.conflictsInStage >= target {
		s.stabilizing = !s.stabilizing
		s.conflictsInStage = 0
		s.stabilizeIdx++
	}
}

// wantsRestart reports whether the search should force a restart to
// decision level 0 right now.
func (s *Solver) wantsRestart() bool {
	if s.stabilizing {
		return false // restarts are disabled while stabilizing
	}
	if s.sinceRestart < s.cfg.RestartStep {
		return false
	}
	if s.slowLBD.Val() == 0 {
		return false
	}
	force := s.fastLBD.Val()/s.slowLBD.Val() > s.cfg.RestartLBDThreshold
	if !force {
		return false
	}

	if s.trailEMA.WarmedUp(s.cfg.RestartAsgLen) {
		blocked := float64(len(s.trail))/s.trailEMA.Val() > s.cfg.RestartAsgThreshold
		if blocked {
			return false
		}
	}
	// Per the spec's open question: restart blocking is disabled until the
	// assignment EMA has received enough samples to be trusted.

	return true
}

// doRestart backtracks to decision level 0 and resets the inter-restart
// counter.
func (s *Solver) doRestart() {
	s.cancelUntil(0)
	s.TotalRestarts++
	s.sinceRestart = 0
}
