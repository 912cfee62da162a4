package spingroup

import (
	"github.com/san-kum/resonance/internal/channel"
)

// Incremental is a spin group whose outgoing channels are discovered after
// construction. Each AddChannel call appends a gamma column and pads the
// diagonal penetrability and phase data with the new channel's own block;
// Compute then runs the same pipeline as Group over the final channel set.
type Incremental struct {
	pipeline
}

func NewIncremental(resEnergies []float64, incident channel.Channel, grid []float64) (*Incremental, error) {
	s := &Incremental{pipeline: pipeline{
		resEnergies: append([]float64(nil), resEnergies...),
		grid:        append([]float64(nil), grid...),
	}}

	if len(s.resEnergies) == 0 {
		return nil, ErrNoResonances
	}
	if len(s.grid) == 0 {
		return nil, ErrEmptyGrid
	}
	if incident == nil {
		return nil, ErrNoIncident
	}
	if err := s.validateChannel(0, incident); err != nil {
		return nil, err
	}

	s.gamma = make([][]float64, len(s.resEnergies))
	for l := range s.gamma {
		s.gamma[l] = make([]float64, 0, 4)
	}
	s.appendChannel(incident)
	return s, nil
}

// AddChannel appends an outgoing channel to the group. The channel must
// carry one amplitude per resonance. Cross sections are not recomputed;
// call Compute once all channels are added.
func (s *Incremental) AddChannel(ch channel.Channel) error {
	if err := s.validateChannel(len(s.channels), ch); err != nil {
		return err
	}
	s.appendChannel(ch)
	return nil
}

func (s *Incremental) appendChannel(ch channel.Channel) {
	s.channels = append(s.channels, ch)
	for l, v := range ch.Amplitudes() {
		s.gamma[l] = append(s.gamma[l], v)
	}
	s.addDiagonals(ch)
}

// Compute evaluates A, U and the cross sections over the channels added so
// far.
func (s *Incremental) Compute() error {
	return s.run()
}
