// Package viz renders cross sections and group summaries for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/resonance/internal/spingroup"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// Plot renders a grid-aligned cross section as an ASCII line graph,
// downsampled to the requested width.
func Plot(title string, energies, xs []float64, width, height int) string {
	series := downsample(xs, width)
	caption := fmt.Sprintf("%s  [%.3g - %.3g eV]", title, energies[0], energies[len(energies)-1])
	graph := asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
	return graphStyle.Render(graph)
}

// Summary renders a short table describing a computed spin group.
func Summary(g *spingroup.Group) string {
	grid := g.Grid()
	total := g.TotalCrossSection()
	peak := floats.MaxIdx(total)

	var b strings.Builder
	b.WriteString(headerStyle.Render("spin group") + "\n")
	row(&b, "resonances", fmt.Sprintf("%v eV", g.ResonanceEnergies()))
	row(&b, "grid", fmt.Sprintf("%.4g - %.4g eV (%d points)", grid[0], grid[len(grid)-1], len(grid)))
	row(&b, "peak total", fmt.Sprintf("%.6g b at %.6g eV", total[peak], grid[peak]))
	for i, ch := range g.Channels() {
		kind := "outgoing"
		if i == 0 {
			kind = "incident"
		}
		xs := g.CrossSection(i)
		row(&b, fmt.Sprintf("channel %d", i),
			fmt.Sprintf("%s (%s), max %.6g b", ch.Label(), kind, floats.Max(xs)))
	}
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
}

// downsample keeps at most width points, picking evenly spaced samples.
func downsample(xs []float64, width int) []float64 {
	if len(xs) <= width || width < 2 {
		return xs
	}
	out := make([]float64, width)
	step := float64(len(xs)-1) / float64(width-1)
	for i := range out {
		out[i] = xs[int(float64(i)*step)]
	}
	return out
}
