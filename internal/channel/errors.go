package channel

import "errors"

// Domain errors for channel construction and evaluation.
var (
	// ErrNoWidths indicates a channel was given neither reduced width
	// amplitudes nor a (partial widths, resonance energies) pair.
	ErrNoWidths = errors.New("channel: need reduced width amplitudes, or partial widths with resonance energies")

	// ErrWidthMismatch indicates partial widths and resonance energies of
	// different lengths.
	ErrWidthMismatch = errors.New("channel: partial widths and resonance energies differ in length")

	// ErrOrbitalMomentum indicates an orbital angular momentum the elastic
	// formulation does not support.
	ErrOrbitalMomentum = errors.New("channel: elastic channels support ell = 0 only")

	// ErrImaginaryResidual indicates a cross section whose imaginary part is
	// too large to discard, pointing at an upstream numerical or modeling bug.
	ErrImaginaryResidual = errors.New("channel: cross section has a non-vanishing imaginary part")
)
