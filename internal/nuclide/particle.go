package nuclide

// Particle identifies a particle or isotope taking part in a reaction
// channel. It is a plain value record: construct it once, read it after.
type Particle struct {
	Label string
	A     int     // mass number
	Z     int     // charge number
	Sn    float64 // neutron separation energy in eV, 0 if not applicable
}

func New(label string, a, z int) *Particle {
	return &Particle{Label: label, A: a, Z: z}
}

// NewIsotope builds a particle with a known neutron separation energy,
// as needed for the heavy product of a capture channel.
func NewIsotope(label string, a, z int, sn float64) *Particle {
	return &Particle{Label: label, A: a, Z: z, Sn: sn}
}

func (p *Particle) String() string { return p.Label }
