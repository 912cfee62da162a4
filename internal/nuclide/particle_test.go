package nuclide

import "testing"

func TestNewDefaults(t *testing.T) {
	p := New("n", 1, 0)

	if p.Label != "n" {
		t.Errorf("label = %q, want n", p.Label)
	}
	if p.A != 1 || p.Z != 0 {
		t.Errorf("A, Z = %d, %d, want 1, 0", p.A, p.Z)
	}
	if p.Sn != 0 {
		t.Errorf("Sn defaults to 0, got %g", p.Sn)
	}
}

func TestNewIsotope(t *testing.T) {
	p := NewIsotope("182Ta", 182, 73, 6.6e6)

	if p.Sn != 6.6e6 {
		t.Errorf("Sn = %g, want 6.6e6", p.Sn)
	}
	if p.String() != "182Ta" {
		t.Errorf("String() = %q, want 182Ta", p.String())
	}
}
