package channel

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/resonance/internal/nuclide"
)

func neutron() *nuclide.Particle { return nuclide.New("n", 1, 1) }
func photon() *nuclide.Particle  { return nuclide.New("g", 0, 0) }
func ta181() *nuclide.Particle   { return nuclide.New("181Ta", 181, 73) }
func ta182() *nuclide.Particle   { return nuclide.NewIsotope("182Ta", 182, 73, 6.8e6) }

func TestElasticPenetrability(t *testing.T) {
	ch, err := NewElastic(neutron(), ta181(), 1, 1, 0, 0.2, Widths{
		Amplitudes: []float64{106.78913185, 108.99600881},
	})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	got := ch.Penetrability([]float64{1e-5})[0]
	want := 1.38191188e-06
	if math.Abs(got-want) > 1e-6*want {
		t.Errorf("penetrability at 1e-5 eV: got %g, want %g", got, want)
	}
}

func TestElasticPenetrabilityEqualsRho(t *testing.T) {
	ch, err := NewElastic(neutron(), ta181(), 1, 1, 0, 0.2, Widths{
		Amplitudes: []float64{106.78913185, 108.99600881},
	})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	energies := []float64{1e-5, 1.0, 1e3, 1e6}
	rho := ch.Rho(energies)
	pen := ch.Penetrability(energies)
	for i := range energies {
		if pen[i] != rho[i] {
			t.Errorf("s-wave penetrability != rho at %g eV: %g vs %g", energies[i], pen[i], rho[i])
		}
	}
}

func TestElasticOrbitalMomentum(t *testing.T) {
	_, err := NewElastic(neutron(), ta181(), 1, 1, 1, 0.2, Widths{
		Amplitudes: []float64{1.0},
	})
	if !errors.Is(err, ErrOrbitalMomentum) {
		t.Errorf("expected ErrOrbitalMomentum for ell=1, got %v", err)
	}
}

func TestCaptureWaveNumber(t *testing.T) {
	ch, err := NewCapture(photon(), ta182(), 3, 1, 0, 0.2, 0, Widths{
		Amplitudes: []float64{2.51487027e-06, 2.49890268e-06},
	})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	got := ch.WaveNumber([]float64{1e-5})[0]
	want := 3.44606245e11
	if math.Abs(got-want) > 1e-6*want {
		t.Errorf("photon wave number at 1e-5 eV: got %g, want %g", got, want)
	}
}

func TestCaptureSubThreshold(t *testing.T) {
	// excitation above Sn + E: the photon channel is below threshold and
	// its wave number must go negative, not clamp.
	ch, err := NewCapture(photon(), ta182(), 3, 1, 0, 0.2, 7.0e6, Widths{
		Amplitudes: []float64{1e-6, 1e-6},
	})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	k := ch.WaveNumber([]float64{1e5})[0]
	if k >= 0 {
		t.Errorf("expected negative wave number below threshold, got %g", k)
	}
}

func TestCapturePenetrabilityPowerLaw(t *testing.T) {
	ch, err := NewCapture(photon(), ta182(), 3, 1, 1, 0.2, 0, Widths{
		Amplitudes: []float64{1e-6, 1e-6},
	})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	energies := []float64{1e5}
	rho := ch.Rho(energies)[0]
	got := ch.Penetrability(energies)[0]
	want := rho * rho * rho // ell=1: rho^3
	if math.Abs(got-want) > 1e-12*math.Abs(want) {
		t.Errorf("ell=1 penetrability: got %g, want rho^3 = %g", got, want)
	}
}

func TestWidthSourceValidation(t *testing.T) {
	tests := []struct {
		name string
		w    Widths
		want error
	}{
		{"no source", Widths{}, ErrNoWidths},
		{"widths without energies", Widths{PartialWidths: []float64{1.0}}, ErrNoWidths},
		{"energies without widths", Widths{ResonanceEnergies: []float64{1e6}}, ErrNoWidths},
		{"mismatched lengths", Widths{
			PartialWidths:     []float64{1.0, 2.0},
			ResonanceEnergies: []float64{1e6},
		}, ErrWidthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewElastic(neutron(), ta181(), 1, 1, 0, 0.2, tt.w)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDerivedAmplitudesRoundTrip(t *testing.T) {
	resEnergies := []float64{1e6, 1.1e6}
	widths := []float64{1e4, 1.1e4}

	ch, err := NewElastic(neutron(), nuclide.NewIsotope("20Ne", 20, 10, 6.6e6), 0.5, 1, 0, 0.532, Widths{
		PartialWidths:     widths,
		ResonanceEnergies: resEnergies,
	})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	if !ch.Derived() {
		t.Error("expected Derived() after amplitude derivation")
	}

	// recompute 2 * gamma^2 * P(E_res); magnitudes must round-trip
	pen := ch.Penetrability(resEnergies)
	for i, g := range ch.Amplitudes() {
		back := 2 * g * g * pen[i]
		if math.Abs(back-widths[i]) > 1e-9*widths[i] {
			t.Errorf("resonance %d: width round trip got %g, want %g", i, back, widths[i])
		}
		if g < 0 {
			t.Errorf("resonance %d: derived amplitude must be positive, got %g", i, g)
		}
	}
}

func TestExplicitAmplitudesNotDerived(t *testing.T) {
	ch, err := NewElastic(neutron(), ta181(), 1, 1, 0, 0.2, Widths{
		Amplitudes: []float64{106.78913185, 108.99600881},
	})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if ch.Derived() {
		t.Error("explicit amplitudes must not be marked derived")
	}
}

func TestSetAmplitudesCopies(t *testing.T) {
	ch, err := NewElastic(neutron(), ta181(), 1, 1, 0, 0.2, Widths{
		Amplitudes: []float64{1.0, 2.0},
	})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}

	fresh := []float64{3.0, 4.0}
	ch.SetAmplitudes(fresh)
	fresh[0] = 99
	if ch.Amplitudes()[0] == 99 {
		t.Error("SetAmplitudes must copy, not alias")
	}
}

func TestReduceRealIntegrityCheck(t *testing.T) {
	if _, err := reduceReal([]complex128{complex(1.0, 1e-5)}); !errors.Is(err, ErrImaginaryResidual) {
		t.Errorf("expected ErrImaginaryResidual for large imaginary part, got %v", err)
	}

	got, err := reduceReal([]complex128{complex(2.5, 1e-12)})
	if err != nil {
		t.Fatalf("small imaginary part must be discarded: %v", err)
	}
	if got[0] != 2.5 {
		t.Errorf("got %g, want 2.5", got[0])
	}
}

func TestChannelLabel(t *testing.T) {
	ch, err := NewCapture(photon(), ta182(), 3, 1, 1, 0.2, 5e5, Widths{
		Amplitudes: []float64{1e-6, 1e-6},
	})
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	want := "g + 182Ta (0.50 MeV)"
	if ch.Label() != want {
		t.Errorf("Label() = %q, want %q", ch.Label(), want)
	}
}
