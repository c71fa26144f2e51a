package sat

import (
	"bytes"
	"testing"
)

func TestDRATWriter_addAndDelete(t *testing.T) {
	var buf bytes.Buffer
	w := NewDRATWriter(&buf)

	w.AddClause([]Literal{PositiveLiteral(0), NegativeLiteral(1)})
	w.DeleteClause([]Literal{NegativeLiteral(0)})

	if err := w.Close(); err != nil {
		t.Fatalf("Close(): %s", err)
	}

	want := "1 -2 0\nd -1 0\n"
	if got := buf.String(); got != want {
		t.Errorf("DRAT output = %q, want %q", got, want)
	}
}

func TestDRATWriter_emptyClauseIsUnsatCertificate(t *testing.T) {
	var buf bytes.Buffer
	w := NewDRATWriter(&buf)

	w.AddClause(nil)
	if err := w.Close(); err != nil {
		t.Fatalf("Close(): %s", err)
	}

	if got, want := buf.String(), "0\n"; got != want {
		t.Errorf("DRAT output = %q, want %q", got, want)
	}
}
