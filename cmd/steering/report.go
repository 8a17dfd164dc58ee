package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lao-tseu-is-alive/go-boid-steering/pkg/simulation"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// renderReport prints the last summary and plots of the whole run.
func renderReport(title string, summaries []simulation.Summary) string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(title)) + "\n")

	if len(summaries) == 0 {
		s.WriteString(dimStyle.Render("no snapshot received") + "\n")
		return s.String()
	}

	last := summaries[len(summaries)-1]
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Snapshots", fmt.Sprintf("%d", len(summaries)))
	row("Last tick", fmt.Sprintf("%d", last.Tick))
	row("Boids", fmt.Sprintf("%d", last.Boids))
	row("Mean speed", fmt.Sprintf("%.3f", last.MeanSpeed))
	row("Max speed", fmt.Sprintf("%.3f", last.MaxSpeed))
	row("Centroid", last.Centroid.String())
	row("Target distance", fmt.Sprintf("%.1f", last.MeanTargetDistance))

	// asciigraph needs at least two points to draw a line
	if len(summaries) < 2 {
		return s.String()
	}
	speed := make([]float64, len(summaries))
	distance := make([]float64, len(summaries))
	for i, sum := range summaries {
		speed[i] = float64(sum.MeanSpeed)
		distance[i] = float64(sum.MeanTargetDistance)
	}
	s.WriteString(graphStyle.Render(asciigraph.Plot(speed,
		asciigraph.Height(8),
		asciigraph.Width(72),
		asciigraph.Caption("mean speed per snapshot"),
	)) + "\n")
	s.WriteString(graphStyle.Render(asciigraph.Plot(distance,
		asciigraph.Height(8),
		asciigraph.Width(72),
		asciigraph.Caption("mean distance to target"),
	)) + "\n")
	return s.String()
}
