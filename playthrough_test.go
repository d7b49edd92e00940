package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// celebrationPlaythrough is a session in which the "4" is clicked once and
// the celebration runs to the end, at 60 frames per second.
func celebrationPlaythrough(seed int64) Playthrough {
	p := NewPlaythrough(seed, testViewport)
	p.History = append(p.History, click(onFour, 0))
	for now := int64(16); now <= CycleDuration+500; now += 16 {
		p.History = append(p.History, wait(now))
	}
	return p
}

func TestPlaythrough_SerializeDeserialize(t *testing.T) {
	p := celebrationPlaythrough(123)
	data := p.Serialize()
	p2 := DeserializePlaythrough(data)
	assert.Equal(t, p, p2)
}

func TestPlaythrough_WrongInputVersion(t *testing.T) {
	p := celebrationPlaythrough(123)
	p.InputVersion = InputVersion + 1
	data := p.Serialize()
	assert.Panics(t, func() { DeserializePlaythrough(data) })
}

func TestPlaythrough_Clone(t *testing.T) {
	p := celebrationPlaythrough(123)
	c := p.Clone()
	assert.Equal(t, p, *c)
	c.History[0].NowMs = 99
	assert.Equal(t, int64(0), p.History[0].NowMs)
}

func TestPlaythrough_Replay(t *testing.T) {
	p := celebrationPlaythrough(5)
	w := p.Replay(int64(len(p.History)))
	assert.Equal(t, int64(1), w.Cycles)
	assert.Equal(t, Idle, w.Phase)

	// Replaying part of the playthrough gives the World at that frame.
	w = p.Replay(2)
	assert.Equal(t, CountUp, w.Phase)
	assert.Equal(t, int64(16), w.Now)

	// Asking for more frames than exist stops at the end.
	w = p.Replay(int64(len(p.History)) + 100)
	assert.Equal(t, int64(1), w.Cycles)
}

func TestRegressionId(t *testing.T) {
	p := celebrationPlaythrough(5)
	id := RegressionId(&p)
	assert.Len(t, id, 64)

	// Same input, same World.
	p2 := DeserializePlaythrough(p.Serialize())
	assert.Equal(t, id, RegressionId(&p2))

	// A different seed changes where the confetti and fragments end up.
	p3 := celebrationPlaythrough(6)
	assert.NotEqual(t, id, RegressionId(&p3))

	// Nobody clicked: nothing happens.
	idle := celebrationPlaythrough(5)
	idle.History[0].JustPressed = false
	w := idle.Replay(int64(len(idle.History)))
	require.Equal(t, int64(0), w.Cycles)
	assert.NotEqual(t, id, RegressionId(&idle))
}

func TestZipUnzip(t *testing.T) {
	data := []byte("2024 2024 2024 2024 2024 2024 2024 2024")
	zipped := Zip(data)
	assert.Less(t, len(zipped), len(data))
	assert.Equal(t, data, Unzip(zipped))
}

// BenchmarkCelebrationPlaythrough replays a full celebration, which is what
// seeking backwards during playback costs.
func BenchmarkCelebrationPlaythrough(b *testing.B) {
	p := celebrationPlaythrough(5)
	for b.Loop() {
		p.Replay(int64(len(p.History)))
	}
}
