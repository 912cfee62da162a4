package channel

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/resonance/internal/cmat"
	"github.com/san-kum/resonance/internal/nuclide"
)

// Photon kinematics constants.
const (
	hbar   = 6.582119e-16 // eV s
	cLight = 2.99792e10   // cm/s
)

// Capture is a radiative capture channel: the light product is the emitted
// photon, the heavy product the compound nucleus left at some excitation.
type Capture struct {
	base
}

func NewCapture(photon, product *nuclide.Particle, j float64, parity, ell int, radius, excitation float64, w Widths) (*Capture, error) {
	c := &Capture{base: base{
		light:      photon,
		heavy:      product,
		a:          photon.A + product.A,
		j:          j,
		parity:     parity,
		ell:        ell,
		radius:     radius,
		excitation: excitation,
	}}
	if err := c.resolve(w, c.Penetrability); err != nil {
		return nil, err
	}
	return c, nil
}

// WaveNumber returns the photon wave number k = (Sn + E - excitation)/(hbar c).
// Below the channel threshold the result is negative; that is physically
// meaningful for a sub-threshold gamma channel and is not clamped.
func (c *Capture) WaveNumber(energies []float64) []float64 {
	k := make([]float64, len(energies))
	for i, e := range energies {
		k[i] = (c.heavy.Sn + e - c.excitation) / (hbar * cLight)
	}
	return k
}

func (c *Capture) Rho(energies []float64) []float64 {
	return rhoFrom(c.WaveNumber(energies), c.radius)
}

// Penetrability follows the photon power law rho^(2*ell+1).
func (c *Capture) Penetrability(energies []float64) []float64 {
	p := c.Rho(energies)
	for i, rho := range p {
		p[i] = math.Pow(rho, float64(2*c.ell+1))
	}
	return p
}

// CrossSection evaluates the reaction formula
// sigma = 1e24 * pi/k^2 * |U|^2 in barns.
func (c *Capture) CrossSection(u *cmat.Stack, kSq []float64, inc, out int) ([]float64, error) {
	xs := make([]complex128, u.Len())
	for e := range xs {
		uv := u.At(e, inc, out)
		xs[e] = complex(barnsPerSquareCm*math.Pi/kSq[e], 0) * cmplx.Conj(uv) * uv
	}
	return reduceReal(xs)
}
