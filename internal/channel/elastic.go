package channel

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/resonance/internal/cmat"
	"github.com/san-kum/resonance/internal/nuclide"
)

// kElastic converts sqrt(eV) to a neutron wave number in 1/cm.
const kElastic = 0.002197e12

// Elastic is a neutron elastic scattering channel. The current formulation
// covers s-waves only; construction fails for ell != 0.
type Elastic struct {
	base
}

func NewElastic(neutron, target *nuclide.Particle, j float64, parity, ell int, radius float64, w Widths) (*Elastic, error) {
	if ell != 0 {
		return nil, ErrOrbitalMomentum
	}
	c := &Elastic{base: base{
		light:  neutron,
		heavy:  target,
		a:      neutron.A + target.A,
		j:      j,
		parity: parity,
		ell:    ell,
		radius: radius,
	}}
	if err := c.resolve(w, c.Penetrability); err != nil {
		return nil, err
	}
	return c, nil
}

// WaveNumber returns the center-of-mass neutron wave number, scaled by the
// compound-nucleus mass number. Callers must not pass negative energies.
func (c *Elastic) WaveNumber(energies []float64) []float64 {
	a := float64(c.a)
	k := make([]float64, len(energies))
	for i, e := range energies {
		k[i] = kElastic * a / (a + 1) * math.Sqrt(e)
	}
	return k
}

func (c *Elastic) Rho(energies []float64) []float64 {
	return rhoFrom(c.WaveNumber(energies), c.radius)
}

// Penetrability for an s-wave neutron is rho itself.
func (c *Elastic) Penetrability(energies []float64) []float64 {
	return c.Rho(energies)
}

// CrossSection evaluates the elastic formula
// sigma = 1e24 * pi/k^2 * (1 - 2 Re U + |U|^2) in barns.
func (c *Elastic) CrossSection(u *cmat.Stack, kSq []float64, inc, out int) ([]float64, error) {
	xs := make([]complex128, u.Len())
	for e := range xs {
		uv := u.At(e, inc, out)
		s := 1 - 2*complex(real(uv), 0) + cmplx.Conj(uv)*uv
		xs[e] = complex(barnsPerSquareCm*math.Pi/kSq[e], 0) * s
	}
	return reduceReal(xs)
}
