// Package spingroup combines a resonance ladder with reaction channels and
// evaluates the R-matrix cross sections of the group on an energy grid.
//
// The evaluation follows the standard pipeline: gamma matrix from the
// channel amplitudes, diagonal penetrability and phase matrices from the
// channel kinematics, A = (E - Gamma L Gamma^T)^-1 per grid point,
// W = I + 2i P^1/2 Gamma^T A Gamma P^1/2, U = Omega W Omega, and the
// channel cross sections from U.
package spingroup

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/san-kum/resonance/internal/channel"
	"github.com/san-kum/resonance/internal/cmat"
)

// barnsPerSquareCm converts a cross section from cm^2 to barns.
const barnsPerSquareCm = 1e24

// pipeline holds the matrix machinery shared by Group and Incremental.
// gamma is Nl x Nc; pen, sqrtPen and phase hold the diagonals of the P,
// P^1/2 and Omega matrices as one grid-aligned row per channel.
type pipeline struct {
	resEnergies []float64
	grid        []float64
	channels    []channel.Channel // index 0 is the incident channel

	gamma   [][]float64
	pen     [][]float64
	sqrtPen [][]float64
	phase   [][]complex128

	a *cmat.Stack
	u *cmat.Stack

	kSq   []float64
	total []float64
	xs    [][]float64
}

func (p *pipeline) dims() (nl, nc, ne int) {
	return len(p.resEnergies), len(p.channels), len(p.grid)
}

// addDiagonals appends the P, P^1/2 and Omega diagonal rows for one channel.
// The penetrability and phase paddings are structurally parallel but kept
// separate: each row must carry the channel's own quantity.
func (p *pipeline) addDiagonals(ch channel.Channel) {
	pen := ch.Penetrability(p.grid)
	sqrtPen := make([]float64, len(pen))
	for e, v := range pen {
		sqrtPen[e] = math.Sqrt(v)
	}
	p.pen = append(p.pen, pen)
	p.sqrtPen = append(p.sqrtPen, sqrtPen)

	rho := ch.Rho(p.grid)
	phase := make([]complex128, len(rho))
	for e, r := range rho {
		phase[e] = cmplx.Exp(complex(0, -r))
	}
	p.phase = append(p.phase, phase)
}

// run executes the energy-dependent steps: A, U, and the cross sections.
// It must be re-run after any change to the gamma matrix.
func (p *pipeline) run() error {
	if err := p.buildA(); err != nil {
		return err
	}
	p.buildU()
	return p.crossSections()
}

// buildA assembles A^-1 = E - Gamma L Gamma^T per grid point, where E is
// the diagonal of resonance energies minus the grid energy and L = iP, and
// inverts the stack.
func (p *pipeline) buildA() error {
	nl, nc, ne := p.dims()

	ainv := cmat.NewStack(ne, nl)
	for e := 0; e < ne; e++ {
		m := ainv.Mat(e)
		for l := 0; l < nl; l++ {
			for r := 0; r < nl; r++ {
				var gpg float64
				for c := 0; c < nc; c++ {
					gpg += p.gamma[l][c] * p.pen[c][e] * p.gamma[r][c]
				}
				re := 0.0
				if l == r {
					re = p.resEnergies[l] - p.grid[e]
				}
				m.Set(l, r, complex(re, -gpg))
			}
		}
	}

	a, err := ainv.InvertAll()
	if err != nil {
		return fmt.Errorf("spingroup: A matrix inversion: %w", err)
	}
	p.a = a
	return nil
}

// buildU assembles W = I + 2i P^1/2 Gamma^T A Gamma P^1/2 and wraps it in
// the hard-sphere phases: U = Omega W Omega. With diagonal P^1/2 and Omega
// this reduces to per-entry scaling of Gamma^T A Gamma.
func (p *pipeline) buildU() {
	nl, nc, ne := p.dims()

	p.u = cmat.NewStack(ne, nc)
	for e := 0; e < ne; e++ {
		am := p.a.Mat(e)
		um := p.u.Mat(e)
		for i := 0; i < nc; i++ {
			for j := 0; j < nc; j++ {
				var gag complex128
				for l := 0; l < nl; l++ {
					var row complex128
					for r := 0; r < nl; r++ {
						row += am.At(l, r) * complex(p.gamma[r][j], 0)
					}
					gag += complex(p.gamma[l][i], 0) * row
				}
				w := complex(0, 2*p.sqrtPen[i][e]*p.sqrtPen[j][e]) * gag
				if i == j {
					w += 1
				}
				um.Set(i, j, p.phase[i][e]*w*p.phase[j][e])
			}
		}
	}
}

// crossSections evaluates the total cross section from U[0,0] and delegates
// each channel's own cross section to the channel.
func (p *pipeline) crossSections() error {
	_, nc, ne := p.dims()

	k := p.channels[0].WaveNumber(p.grid)
	p.kSq = make([]float64, ne)
	p.total = make([]float64, ne)
	for e := 0; e < ne; e++ {
		p.kSq[e] = k[e] * k[e]
		p.total[e] = barnsPerSquareCm * 2 * math.Pi / p.kSq[e] * (1 - real(p.u.At(e, 0, 0)))
	}

	p.xs = make([][]float64, nc)
	for i, ch := range p.channels {
		xs, err := ch.CrossSection(p.u, p.kSq, 0, i)
		if err != nil {
			return fmt.Errorf("spingroup: channel %d (%s): %w", i, ch.Label(), err)
		}
		p.xs[i] = xs
	}
	return nil
}

// Grid returns the incident energy grid.
func (p *pipeline) Grid() []float64 { return p.grid }

// Channels returns the channel list, incident channel first.
func (p *pipeline) Channels() []channel.Channel { return p.channels }

// ResonanceEnergies returns the group's resonance ladder.
func (p *pipeline) ResonanceEnergies() []float64 { return p.resEnergies }

// TotalCrossSection returns the group total in barns, grid-aligned.
func (p *pipeline) TotalCrossSection() []float64 { return p.total }

// CrossSection returns channel i's cross section in barns, grid-aligned.
func (p *pipeline) CrossSection(i int) []float64 { return p.xs[i] }

// A returns the A-matrix stack.
func (p *pipeline) A() *cmat.Stack { return p.a }

// U returns the scattering matrix stack.
func (p *pipeline) U() *cmat.Stack { return p.u }

// Gamma returns a copy of the gamma matrix (Nl x Nc).
func (p *pipeline) Gamma() [][]float64 {
	out := make([][]float64, len(p.gamma))
	for l, row := range p.gamma {
		out[l] = append([]float64(nil), row...)
	}
	return out
}

// validateChannel checks a channel carries one amplitude per resonance.
func (p *pipeline) validateChannel(i int, ch channel.Channel) error {
	if n := len(ch.Amplitudes()); n != len(p.resEnergies) {
		return fmt.Errorf("spingroup: channel %d (%s) has %d amplitudes, want one per resonance (%d)",
			i, ch.Label(), n, len(p.resEnergies))
	}
	return nil
}
