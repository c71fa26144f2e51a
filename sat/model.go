package sat

import "log"

// model.go builds the satisfying assignment reported to the caller. The
// search loop only ever finds values for variables that survived
// simplification and elimination; saveModel restores the eliminated
// ones by walking the elimination stack in reverse, picking whichever
// polarity satisfies every clause that mentioned the variable before it
// was removed.

// saveModel records the current total assignment as a model, extending
// it to cover every eliminated variable.
func (s *Solver) saveModel() {
	model := make([]bool, s.NumVariables())
	for v := range model {
		if s.order.IsEliminated(v) {
			continue // filled in by extendEliminated below
		}
		lb := s.VarValue(v)
		if lb == Unknown {
			log.Panicf("sat: saveModel called with variable %d unassigned", v)
		}
		model[v] = lb == True
	}
	s.extendEliminated(model)
	s.Models = append(s.Models, model)
}

// extendEliminated assigns a value to every variable BVE removed from
// the search, processing the elimination stack from the most recently
// eliminated variable to the least.
func (s *Solver) extendEliminated(model []bool) {
	for i := len(s.elimStack) - 1; i >= 0; i-- {
		g := s.elimStack[i]
		model[g.v] = true
		if !groupSatisfied(g, model) {
			model[g.v] = false
		}
	}
}

// groupSatisfied reports whether every clause recorded in g is
// satisfied under model.
func groupSatisfied(g elimGroup, model []bool) bool {
	for _, lits := range g.clauses {
		satisfied := false
		for _, l := range lits {
			if model[l.VarID()] == l.IsPositive() {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
