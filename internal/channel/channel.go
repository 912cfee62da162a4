// Package channel models single reaction channels: the energy-dependent
// kinematic quantities (wave number, dimensionless radius, penetrability)
// each channel type contributes to a spin group, and the cross section it
// extracts from the group's scattering matrix.
//
// Two variants exist:
//
//   - [Elastic]: neutron scattering off a target, s-wave only
//   - [Capture]: radiative capture emitting a photon
package channel

import (
	"fmt"
	"math"

	"github.com/san-kum/resonance/internal/cmat"
	"github.com/san-kum/resonance/internal/nuclide"
)

// barnsPerSquareCm converts a cross section from cm^2 to barns.
const barnsPerSquareCm = 1e24

// imagTol bounds the imaginary remainder, relative to the real part, that
// may be discarded when a cross section is reduced to a real number.
const imagTol = 1e-10

// Channel is one reaction pathway of a spin group. Energies are incident
// neutron energies in eV; wave numbers are in 1/cm.
type Channel interface {
	// WaveNumber returns k at each energy. Elastic channels are undefined
	// for negative energies; capture channels go negative below threshold.
	WaveNumber(energies []float64) []float64

	// Rho returns the dimensionless radius k(E) * ac.
	Rho(energies []float64) []float64

	// Penetrability returns the penetration factor at each energy.
	Penetrability(energies []float64) []float64

	// CrossSection computes this channel's cross section in barns from the
	// scattering matrix stack, the incident-channel k^2 values, and the
	// incident/outgoing channel indices.
	CrossSection(u *cmat.Stack, kSq []float64, inc, out int) ([]float64, error)

	// Amplitudes returns the reduced width amplitudes, one per resonance.
	Amplitudes() []float64

	// SetAmplitudes replaces the amplitude vector. The owning spin group
	// copies amplitudes into its gamma matrix, so a group built before this
	// call must be re-evaluated explicitly.
	SetAmplitudes(gamma []float64)

	// Derived reports whether the amplitudes were derived from partial
	// widths, in which case their signs were fixed positive.
	Derived() bool

	// Label names the channel by its products, e.g. "n + 181Ta (0.00 MeV)".
	Label() string
}

// Widths selects the amplitude source for a channel: explicit reduced width
// amplitudes, or partial widths paired with the resonance energies the
// penetrabilities are evaluated at. Exactly one form must be supplied.
type Widths struct {
	Amplitudes        []float64
	PartialWidths     []float64
	ResonanceEnergies []float64
}

// base carries the fields and behavior shared by both channel variants.
type base struct {
	light, heavy *nuclide.Particle
	a            int     // compound nucleus mass number
	j            float64 // total spin
	parity       int     // +1 or -1
	ell          int     // orbital angular momentum
	radius       float64 // channel radius in 1e-12 cm
	excitation   float64 // heavy-product excitation energy in eV

	gamma   []float64
	derived bool
}

// resolve fills the amplitude vector from w, deriving amplitudes from
// partial widths when necessary: gamma_i = sqrt(G_i / (2 P(E_i))) with the
// penetrability evaluated at the resonance's own energy. Derivation cannot
// recover amplitude signs; all derived amplitudes are positive and the
// channel is marked accordingly.
func (b *base) resolve(w Widths, pen func([]float64) []float64) error {
	switch {
	case w.Amplitudes != nil:
		b.gamma = append([]float64(nil), w.Amplitudes...)
	case w.PartialWidths != nil && w.ResonanceEnergies != nil:
		if len(w.PartialWidths) != len(w.ResonanceEnergies) {
			return fmt.Errorf("%w: %d widths, %d energies",
				ErrWidthMismatch, len(w.PartialWidths), len(w.ResonanceEnergies))
		}
		p := pen(w.ResonanceEnergies)
		b.gamma = make([]float64, len(w.PartialWidths))
		for i, pw := range w.PartialWidths {
			b.gamma[i] = math.Sqrt(pw / (2 * p[i]))
		}
		b.derived = true
	default:
		return ErrNoWidths
	}
	return nil
}

func (b *base) Amplitudes() []float64 { return b.gamma }

func (b *base) SetAmplitudes(gamma []float64) {
	b.gamma = append([]float64(nil), gamma...)
}

func (b *base) Derived() bool { return b.derived }

func (b *base) Label() string {
	return fmt.Sprintf("%s + %s (%.2f MeV)", b.light, b.heavy, b.excitation/1e6)
}

// rhoFrom converts wave numbers to the dimensionless radius, with the
// channel radius given in units of 1e-12 cm.
func rhoFrom(k []float64, radius float64) []float64 {
	acCm := radius * 1e-12
	rho := make([]float64, len(k))
	for i, v := range k {
		rho[i] = v * acCm
	}
	return rho
}

// reduceReal discards the imaginary remainder of a per-energy cross section
// after asserting it is negligible relative to the real part.
func reduceReal(xs []complex128) ([]float64, error) {
	out := make([]float64, len(xs))
	for e, v := range xs {
		if math.Abs(imag(v)) >= imagTol*math.Abs(real(v)) && imag(v) != 0 {
			return nil, fmt.Errorf("%w: Im=%g vs Re=%g at grid point %d",
				ErrImaginaryResidual, imag(v), real(v), e)
		}
		out[e] = real(v)
	}
	return out, nil
}
