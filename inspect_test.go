package main

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestInspectPlaythrough(t *testing.T) {
	p := celebrationPlaythrough(5)
	// A click that misses, before the real one.
	p.History = append([]PlayerInput{{Pos: offFour, JustPressed: true}}, p.History...)

	s := InspectPlaythrough(&p)
	assert.Equal(t, int64(len(p.History)), s.Frames)
	assert.Equal(t, int64(2), s.Clicks)
	assert.Equal(t, int64(1), s.Cycles)
	assert.Equal(t, p.History[len(p.History)-1].NowMs, s.DurationMs)
	assert.Equal(t, RegressionId(&p), s.RegressionId)

	var phases []Phase
	for _, c := range s.PhaseChanges {
		phases = append(phases, c.Phase)
	}
	assert.Equal(t, []Phase{Idle, CountUp, Flip, FadeOut, Crumble, Pause,
		Reposition, Idle}, phases)
	assert.Equal(t, PhaseChange{Frame: 1, NowMs: 0, Phase: CountUp}, s.PhaseChanges[1])
}

func TestPrintInspectReport(t *testing.T) {
	p := celebrationPlaythrough(5)
	var buf bytes.Buffer
	PrintInspectReport(&buf, &p)
	out := buf.String()
	assert.Contains(t, out, "Happy New Year playthrough")
	assert.Contains(t, out, p.Id.String())
	assert.Contains(t, out, "crumble")
	assert.Contains(t, out, "reposition")
	assert.Contains(t, out, RegressionId(&p))
}
