package config

// Presets are ready-made spin groups with reference-validated parameters.
var Presets = map[string]*Config{
	// Two s-wave resonances of n + 181Ta with capture to the ground and
	// first excited states of 182Ta.
	"ta181": {
		Name:       "ta181",
		Grid:       GridConfig{Start: 0.9e6, Stop: 1.2e6, Points: 1001},
		Resonances: []float64{1e6, 1.1e6},
		Particles: map[string]ParticleConfig{
			"n":     {A: 1, Z: 1},
			"g":     {A: 0, Z: 0},
			"181Ta": {A: 181, Z: 73},
			"182Ta": {A: 182, Z: 73, Sn: 6.8e6},
		},
		Incident: ChannelConfig{
			Type: "elastic", Light: "n", Heavy: "181Ta",
			J: 3, Parity: 1, Ell: 0, Radius: 0.2,
			Amplitudes: []float64{106.78913185, 108.99600881},
		},
		Outgoing: []ChannelConfig{
			{
				Type: "capture", Light: "g", Heavy: "182Ta",
				J: 3, Parity: 1, Ell: 1, Radius: 0.2, Excitation: 0,
				Amplitudes: []float64{2.51487027e-06, 2.49890268e-06},
			},
			{
				Type: "capture", Light: "g", Heavy: "182Ta",
				J: 3, Parity: 1, Ell: 1, Radius: 0.2, Excitation: 5e5,
				Amplitudes: []float64{2.011896216e-06, 1.999122144e-06},
			},
		},
	},

	// Two-resonance n + 20Ne ladder with widths taken from a SAMMY run;
	// amplitudes are derived from the partial widths at build time.
	"ne20": {
		Name:       "ne20",
		Grid:       GridConfig{Start: 0.9e6, Stop: 1.2e6, Points: 501},
		Resonances: []float64{1e6, 1.1e6},
		Particles: map[string]ParticleConfig{
			"n":    {A: 1, Z: 1},
			"g":    {A: 0, Z: 0},
			"20Ne": {A: 20, Z: 10, Sn: 6.6e6},
		},
		Incident: ChannelConfig{
			Type: "elastic", Light: "n", Heavy: "20Ne",
			J: 0.5, Parity: 1, Ell: 0, Radius: 0.532,
			PartialWidths: []float64{1e4, 1.1e4},
		},
		Outgoing: []ChannelConfig{
			{
				Type: "capture", Light: "g", Heavy: "20Ne",
				J: 0.5, Parity: 1, Ell: 0, Radius: 0.532, Excitation: 0,
				PartialWidths: []float64{1.0, 1.1},
			},
		},
	},
}
