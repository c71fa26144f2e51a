// Package dimacs reads the DIMACS CNF input and model formats into a
// solver, delegating the actual line grammar to github.com/rhartert/dimacs
// and translating its callback-style Builder into sat.Literal clauses.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/rhartert/crux/sat"
)

// Writer receives the variables and clauses parsed from a DIMACS file.
// *sat.Solver satisfies it directly.
type Writer interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// Load parses filename (optionally gzip-compressed) as DIMACS CNF,
// declaring every variable and clause onto w. A literal referencing a
// variable beyond the header's declared count is rejected.
func Load(filename string, gzipped bool, w Writer) error {
	r, err := reader(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{w: w}
	return extdimacs.ReadBuilder(r, b)
}

// builder adapts a Writer to extdimacs.Builder.
type builder struct {
	w      Writer
	nVars  int
	loaded bool
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("problem type %q is not supported", problem)
	}
	b.nVars = nVars
	for i := 0; i < nVars; i++ {
		b.w.AddVariable()
	}
	b.loaded = true
	return nil
}

func (b *builder) Clause(tmp []int) error {
	if !b.loaded {
		return fmt.Errorf("clause encountered before a problem line")
	}
	clause := make([]sat.Literal, len(tmp))
	for i, l := range tmp {
		v := l
		if v < 0 {
			v = -v
		}
		if v-1 >= b.nVars {
			return fmt.Errorf("literal %d references undeclared variable (only %d declared)", l, b.nVars)
		}
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	return b.w.AddClause(clause)
}

func (b *builder) Comment(_ string) error {
	return nil
}
