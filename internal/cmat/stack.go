package cmat

import (
	"fmt"
	"runtime"
	"sync"
)

// Stack is a stack of equal-order square complex matrices, one per energy
// grid point.
type Stack struct {
	n    int
	mats []*Dense
}

func NewStack(ne, n int) *Stack {
	s := &Stack{n: n, mats: make([]*Dense, ne)}
	for e := range s.mats {
		s.mats[e] = NewDense(n)
	}
	return s
}

// Len returns the number of grid points in the stack.
func (s *Stack) Len() int { return len(s.mats) }

func (s *Stack) Order() int { return s.n }

// Mat returns the matrix at grid point e, backed by the stack.
func (s *Stack) Mat(e int) *Dense { return s.mats[e] }

func (s *Stack) At(e, i, j int) complex128 { return s.mats[e].At(i, j) }

// Entry copies the (i,j) entry of every matrix into a grid-aligned slice.
func (s *Stack) Entry(i, j int) []complex128 {
	out := make([]complex128, len(s.mats))
	for e, m := range s.mats {
		out[e] = m.At(i, j)
	}
	return out
}

// InvertAll inverts every matrix in the stack. Grid points are independent,
// so the stack is chunked over a CPU-sized worker pool; each slice is still
// inverted serially and the result matches the sequential path exactly.
func (s *Stack) InvertAll() (*Stack, error) {
	ne := len(s.mats)
	out := &Stack{n: s.n, mats: make([]*Dense, ne)}

	workers := runtime.NumCPU()
	if ne < workers*4 {
		workers = 1
	}
	chunk := (ne + workers - 1) / workers
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > ne {
			hi = ne
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for e := lo; e < hi; e++ {
				inv, err := s.mats[e].Inverse()
				if err != nil {
					errs[w] = fmt.Errorf("grid point %d: %w", e, err)
					return
				}
				out.mats[e] = inv
			}
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
