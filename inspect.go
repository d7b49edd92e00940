package main

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"io"
	"strings"
)

// PhaseChange marks the frame at which the World entered a phase.
type PhaseChange struct {
	Frame int64
	NowMs int64
	Phase Phase
}

// PlaythroughSummary is what a replay of a whole playthrough reveals.
type PlaythroughSummary struct {
	Frames       int64
	DurationMs   int64
	Clicks       int64
	Cycles       int64
	PhaseChanges []PhaseChange
	RegressionId string
}

// InspectPlaythrough replays p from the start and records every phase the
// World goes through.
func InspectPlaythrough(p *Playthrough) (s PlaythroughSummary) {
	w := NewWorldFromPlaythrough(*p)
	s.PhaseChanges = append(s.PhaseChanges, PhaseChange{0, 0, w.Phase})
	for i, input := range p.History {
		w.Step(input)
		if input.JustPressed {
			s.Clicks++
		}
		if w.Phase != s.PhaseChanges[len(s.PhaseChanges)-1].Phase {
			s.PhaseChanges = append(s.PhaseChanges,
				PhaseChange{int64(i), input.NowMs, w.Phase})
		}
	}
	s.Frames = int64(len(p.History))
	if s.Frames > 0 {
		s.DurationMs = p.History[s.Frames-1].NowMs
	}
	s.Cycles = w.Cycles
	s.RegressionId = RegressionId(p)
	return
}

var (
	reportTitle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#ffd27f")).
			MarginBottom(1)
	reportLabel  = lipgloss.NewStyle().Width(20).Foreground(lipgloss.Color("#8a8a8a"))
	reportValue  = lipgloss.NewStyle().Bold(true)
	reportHeader = lipgloss.NewStyle().Bold(true).Underline(true)
	reportBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3c3c64")).
			Padding(0, 1)
)

func reportRow(label string, value any) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		reportLabel.Render(label),
		reportValue.Render(fmt.Sprint(value)))
}

func reportColumns(widths []int, cells ...string) string {
	rendered := make([]string, len(cells))
	for i := range cells {
		rendered[i] = lipgloss.NewStyle().Width(widths[i]).Render(cells[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// PrintInspectReport writes a human readable description of p to w.
func PrintInspectReport(w io.Writer, p *Playthrough) {
	s := InspectPlaythrough(p)

	info := lipgloss.JoinVertical(lipgloss.Left,
		reportRow("id", p.Id),
		reportRow("release version", p.ReleaseVersion),
		reportRow("simulation version", p.SimulationVersion),
		reportRow("input version", p.InputVersion),
		reportRow("seed", p.Seed),
		reportRow("viewport", fmt.Sprintf("%dx%d", p.ViewportSize.X, p.ViewportSize.Y)),
		reportRow("frames", s.Frames),
		reportRow("duration", fmt.Sprintf("%.1fs", float64(s.DurationMs)/1000)),
		reportRow("clicks", s.Clicks),
		reportRow("celebrations", s.Cycles),
		reportRow("regression id", s.RegressionId),
	)

	widths := []int{10, 12, 12}
	rows := []string{reportHeader.Render(reportColumns(widths, "frame", "time (ms)", "phase"))}
	for _, c := range s.PhaseChanges {
		rows = append(rows, reportColumns(widths,
			fmt.Sprint(c.Frame), fmt.Sprint(c.NowMs), c.Phase.String()))
	}
	phases := lipgloss.JoinVertical(lipgloss.Left, rows...)

	out := lipgloss.JoinVertical(lipgloss.Left,
		reportTitle.Render("Happy New Year playthrough"),
		reportBox.Render(info),
		"",
		reportBox.Render(phases))
	_, err := io.WriteString(w, strings.TrimRight(out, " \n")+"\n")
	Check(err)
}
