package sat

// Antecedent records why a literal was assigned: a decision (no reason),
// a clause stored in the arena, or an inline binary clause reconstructed
// on demand from the literal that triggered it plus the one other literal
// it carries — binary reasons need no arena storage at all.
type Antecedent struct {
	binary bool
	ref    ClauseRef // valid when !binary; NullClauseRef means "decision"
	other  Literal   // valid when binary: the binary clause's other literal
}

// noAntecedent returns the antecedent of a decision literal.
func noAntecedent() Antecedent {
	return Antecedent{ref: NullClauseRef}
}

// clauseAntecedent returns the antecedent for a literal propagated by an
// arena clause.
func clauseAntecedent(ref ClauseRef) Antecedent {
	return Antecedent{ref: ref}
}

// binaryAntecedent returns the antecedent for a literal propagated by an
// inline binary clause whose other literal is other.
func binaryAntecedent(other Literal) Antecedent {
	return Antecedent{binary: true, other: other}
}

// IsDecision reports whether the literal carrying this antecedent was a
// decision (i.e. has no reason clause).
func (a Antecedent) IsDecision() bool {
	return !a.binary && a.ref == NullClauseRef
}

// IsBinary reports whether the antecedent is an inline binary clause.
func (a Antecedent) IsBinary() bool {
	return a.binary
}
