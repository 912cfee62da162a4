package spingroup

import (
	"errors"
	"fmt"

	"github.com/san-kum/resonance/internal/channel"
)

// Validation errors for group construction.
var (
	ErrNoResonances = errors.New("spingroup: need at least one resonance energy")
	ErrEmptyGrid    = errors.New("spingroup: energy grid is empty")
	ErrNoIncident   = errors.New("spingroup: incident channel is required")
)

// Group is a fully evaluated spin group: a resonance ladder shared by an
// incident channel and zero or more outgoing channels on a common energy
// grid. All matrices and cross sections are computed eagerly at
// construction; the group owns its matrices and copies channel amplitudes
// into the gamma matrix, so later channel mutations require UpdateGamma or
// a fresh Group.
type Group struct {
	pipeline
}

func New(resEnergies []float64, incident channel.Channel, outgoing []channel.Channel, grid []float64) (*Group, error) {
	g := &Group{pipeline: pipeline{
		resEnergies: append([]float64(nil), resEnergies...),
		grid:        append([]float64(nil), grid...),
	}}

	if len(g.resEnergies) == 0 {
		return nil, ErrNoResonances
	}
	if len(g.grid) == 0 {
		return nil, ErrEmptyGrid
	}
	if incident == nil {
		return nil, ErrNoIncident
	}

	g.channels = append([]channel.Channel{incident}, outgoing...)
	for i, ch := range g.channels {
		if err := g.validateChannel(i, ch); err != nil {
			return nil, err
		}
	}

	g.buildGamma()
	for _, ch := range g.channels {
		g.addDiagonals(ch)
	}
	if err := g.run(); err != nil {
		return nil, err
	}
	return g, nil
}

// buildGamma copies each channel's amplitude vector into its gamma column,
// incident channel first.
func (g *Group) buildGamma() {
	nl, nc, _ := g.dims()
	g.gamma = make([][]float64, nl)
	for l := 0; l < nl; l++ {
		g.gamma[l] = make([]float64, nc)
	}
	for c, ch := range g.channels {
		for l, v := range ch.Amplitudes() {
			g.gamma[l][c] = v
		}
	}
}

// UpdateGamma replaces the gamma matrix and re-derives A, U and all cross
// sections. The penetrability and phase matrices depend only on the channel
// kinematics and are kept.
func (g *Group) UpdateGamma(gamma [][]float64) error {
	nl, nc, _ := g.dims()
	if len(gamma) != nl {
		return fmt.Errorf("spingroup: gamma has %d rows, want one per resonance (%d)", len(gamma), nl)
	}
	fresh := make([][]float64, nl)
	for l, row := range gamma {
		if len(row) != nc {
			return fmt.Errorf("spingroup: gamma row %d has %d columns, want one per channel (%d)", l, len(row), nc)
		}
		fresh[l] = append([]float64(nil), row...)
	}
	g.gamma = fresh
	return g.run()
}
