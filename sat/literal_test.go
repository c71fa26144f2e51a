package sat

import "testing"

func TestLiteral_polarity(t *testing.T) {
	p := PositiveLiteral(5)
	n := NegativeLiteral(5)

	if !p.IsPositive() {
		t.Errorf("PositiveLiteral(5).IsPositive() = false, want true")
	}
	if n.IsPositive() {
		t.Errorf("NegativeLiteral(5).IsPositive() = true, want false")
	}
	if p.VarID() != 5 || n.VarID() != 5 {
		t.Errorf("VarID() = %d, %d, want 5, 5", p.VarID(), n.VarID())
	}
	if p.Opposite() != n || n.Opposite() != p {
		t.Errorf("Opposite() did not round-trip between polarities")
	}
}

func TestLiteral_string(t *testing.T) {
	if got, want := PositiveLiteral(3).String(), "3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := NegativeLiteral(3).String(), "!3"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
