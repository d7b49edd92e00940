package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes
// they are considered "the same", even though they may be implemented
// differently.
//
// What counts as "the same":
// - the same phase and sequencer state, with the same timestamps
// - every object in the same place, with the same rotation, scale, opacity
// and visibility
//
// Names, colors, sizes and texts are left out. They never change after the
// scene is built, so any difference there would show up in a test of
// NewScene, not in a replay.
//
// WARNING: a regression test built on this is only as good as the
// playthrough it replays. A playthrough in which nobody clicks the "4" only
// checks that the confetti stays hidden.
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, w.Anim.IsAnimating)
	Serialize(buf, w.Anim.CurrentStep)
	Serialize(buf, w.Anim.StartTime)
	Serialize(buf, w.Phase)
	Serialize(buf, w.PhaseStart)
	Serialize(buf, w.Cycles)
	Serialize(buf, w.RotX)
	Serialize(buf, int64(len(w.Objects)))
	for i := range w.Objects {
		o := &w.Objects[i]
		Serialize(buf, o.Pos)
		Serialize(buf, o.RotX)
		Serialize(buf, o.RotZ)
		Serialize(buf, o.Scale)
		Serialize(buf, o.Opacity)
		Serialize(buf, o.Visible)
	}
	return buf.Bytes()
}

// RegressionId replays the whole playthrough and returns a hash of the final
// state of the World.
func RegressionId(p *Playthrough) string {
	w := p.Replay(int64(len(p.History)))
	hash := sha256.Sum256(w.StateBytes())
	return hex.EncodeToString(hash[:])
}
