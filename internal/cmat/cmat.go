// Package cmat provides the small dense complex matrices and the
// energy-indexed matrix stacks used by the R-matrix pipeline.
package cmat

import (
	"errors"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
)

// ErrSingular is returned when a matrix has no inverse.
var ErrSingular = errors.New("cmat: singular matrix")

// Dense is a square complex matrix stored flat in row-major order.
type Dense struct {
	n    int
	data []complex128
}

func NewDense(n int) *Dense {
	return &Dense{n: n, data: make([]complex128, n*n)}
}

func Identity(n int) *Dense {
	m := NewDense(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

func (m *Dense) Order() int { return m.n }

func (m *Dense) At(i, j int) complex128 { return m.data[i*m.n+j] }

func (m *Dense) Set(i, j int, v complex128) { m.data[i*m.n+j] = v }

// Row returns row i backed by the matrix storage.
func (m *Dense) Row(i int) []complex128 {
	return m.data[i*m.n : (i+1)*m.n]
}

func (m *Dense) Clone() *Dense {
	c := NewDense(m.n)
	copy(c.data, m.data)
	return c
}

// Mul returns the product a*b. Both matrices must have the same order.
func Mul(a, b *Dense) *Dense {
	n := a.n
	out := NewDense(n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			v := a.data[i*n+k]
			if v == 0 {
				continue
			}
			cmplxs.AddScaled(out.Row(i), v, b.Row(k))
		}
	}
	return out
}

// Inverse returns m^-1, computed by Gauss-Jordan elimination with partial
// pivoting. A vanishing pivot yields ErrSingular.
func (m *Dense) Inverse() (*Dense, error) {
	n := m.n
	a := m.Clone()
	inv := Identity(n)

	for col := 0; col < n; col++ {
		pivot := col
		max := cmplx.Abs(a.At(col, col))
		for r := col + 1; r < n; r++ {
			if v := cmplx.Abs(a.At(r, col)); v > max {
				pivot, max = r, v
			}
		}
		if max == 0 {
			return nil, ErrSingular
		}
		if pivot != col {
			swapRows(a, col, pivot)
			swapRows(inv, col, pivot)
		}

		d := 1 / a.At(col, col)
		cmplxs.Scale(d, a.Row(col))
		cmplxs.Scale(d, inv.Row(col))

		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			f := a.At(r, col)
			if f == 0 {
				continue
			}
			cmplxs.AddScaled(a.Row(r), -f, a.Row(col))
			cmplxs.AddScaled(inv.Row(r), -f, inv.Row(col))
		}
	}
	return inv, nil
}

func swapRows(m *Dense, i, j int) {
	ri, rj := m.Row(i), m.Row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
