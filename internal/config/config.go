// Package config describes spin-group inputs in YAML: particles, channels,
// the resonance ladder and the energy grid, plus presets for known
// scenarios.
package config

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/resonance/internal/channel"
	"github.com/san-kum/resonance/internal/nuclide"
	"github.com/san-kum/resonance/internal/spingroup"
)

type Config struct {
	Name       string                    `yaml:"name"`
	Grid       GridConfig                `yaml:"grid"`
	Resonances []float64                 `yaml:"resonances"`
	Particles  map[string]ParticleConfig `yaml:"particles"`
	Incident   ChannelConfig             `yaml:"incident"`
	Outgoing   []ChannelConfig           `yaml:"outgoing"`
}

// GridConfig expands to a uniform energy grid of Points values from Start
// to Stop, in eV.
type GridConfig struct {
	Start  float64 `yaml:"start"`
	Stop   float64 `yaml:"stop"`
	Points int     `yaml:"points"`
}

type ParticleConfig struct {
	A  int     `yaml:"a"`
	Z  int     `yaml:"z"`
	Sn float64 `yaml:"sn"`
}

// ChannelConfig names the channel type and its quantum numbers. Light and
// Heavy reference keys of the particles map. Amplitudes and PartialWidths
// are mutually exclusive; partial widths pair with the group's resonance
// ladder.
type ChannelConfig struct {
	Type          string    `yaml:"type"` // "elastic" or "capture"
	Light         string    `yaml:"light"`
	Heavy         string    `yaml:"heavy"`
	J             float64   `yaml:"j"`
	Parity        int       `yaml:"parity"`
	Ell           int       `yaml:"ell"`
	Radius        float64   `yaml:"radius"` // 1e-12 cm
	Excitation    float64   `yaml:"excitation"`
	Amplitudes    []float64 `yaml:"amplitudes"`
	PartialWidths []float64 `yaml:"partial_widths"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ExpandGrid returns the uniform energy grid described by the config.
func (c *Config) ExpandGrid() ([]float64, error) {
	if c.Grid.Points < 2 {
		return nil, fmt.Errorf("config: grid needs at least 2 points, got %d", c.Grid.Points)
	}
	if c.Grid.Stop <= c.Grid.Start {
		return nil, fmt.Errorf("config: grid stop %g must exceed start %g", c.Grid.Stop, c.Grid.Start)
	}
	return floats.Span(make([]float64, c.Grid.Points), c.Grid.Start, c.Grid.Stop), nil
}

// Build assembles the particles and channels and evaluates the spin group.
func (c *Config) Build() (*spingroup.Group, error) {
	grid, err := c.ExpandGrid()
	if err != nil {
		return nil, err
	}

	particles := make(map[string]*nuclide.Particle, len(c.Particles))
	for label, p := range c.Particles {
		particles[label] = nuclide.NewIsotope(label, p.A, p.Z, p.Sn)
	}

	incident, err := c.buildChannel(c.Incident, particles)
	if err != nil {
		return nil, fmt.Errorf("config: incident channel: %w", err)
	}

	outgoing := make([]channel.Channel, 0, len(c.Outgoing))
	for i, cc := range c.Outgoing {
		ch, err := c.buildChannel(cc, particles)
		if err != nil {
			return nil, fmt.Errorf("config: outgoing channel %d: %w", i, err)
		}
		outgoing = append(outgoing, ch)
	}

	return spingroup.New(c.Resonances, incident, outgoing, grid)
}

func (c *Config) buildChannel(cc ChannelConfig, particles map[string]*nuclide.Particle) (channel.Channel, error) {
	light, ok := particles[cc.Light]
	if !ok {
		return nil, fmt.Errorf("unknown particle %q", cc.Light)
	}
	heavy, ok := particles[cc.Heavy]
	if !ok {
		return nil, fmt.Errorf("unknown particle %q", cc.Heavy)
	}

	w := channel.Widths{Amplitudes: cc.Amplitudes}
	if cc.Amplitudes == nil && cc.PartialWidths != nil {
		w = channel.Widths{
			PartialWidths:     cc.PartialWidths,
			ResonanceEnergies: c.Resonances,
		}
	}

	switch cc.Type {
	case "elastic":
		return channel.NewElastic(light, heavy, cc.J, cc.Parity, cc.Ell, cc.Radius, w)
	case "capture":
		return channel.NewCapture(light, heavy, cc.J, cc.Parity, cc.Ell, cc.Radius, cc.Excitation, w)
	default:
		return nil, fmt.Errorf("unknown channel type %q", cc.Type)
	}
}
