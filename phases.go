package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"math"
)

// The "5" starts this high above its final place.
const FiveDropHeight = 5.0

// The ring spins by this much every Step while the "5" comes in.
const RingSpinPerStep = 0.02

// AnimateCountUp brings the "5" down into place and grows it, while the "4"
// slides down and out. The ring flares up and fades back down around them.
func (w *World) AnimateCountUp(progress float64) {
	five := w.Obj(IdxFive)
	four := w.Obj(IdxFour)
	ring := w.Obj(IdxRing)

	five.Pos[1] = FiveDropHeight * (1 - progress)
	five.Scale = 1 + 3*progress
	four.Pos[1] = -progress

	ring.Visible = true
	ring.Scale = 1 + progress*0.5
	ring.Opacity = RingOpacity(progress)
	ring.RotZ += RingSpinPerStep

	if progress == 1 {
		four.Visible = false
		ring.Opacity = 0
	}
}

// RingOpacity peaks at 0.5 halfway through the count-up and is 0 at both
// ends.
func RingOpacity(progress float64) float64 {
	return math.Sin(progress*math.Pi) * 0.5
}

// AnimateFlip turns the whole scene half a turn around the horizontal axis.
// The digits are on the face that goes away, so they are hidden before the
// scene is edge-on. The "Happy New Year!" panel is stored upside down, so
// after the half turn it faces the camera the right way up.
func (w *World) AnimateFlip(progress float64) {
	w.RotX = progress * math.Pi

	if progress > 0.4 {
		w.Obj(IdxTwoLeft).Visible = false
		w.Obj(IdxZero).Visible = false
		w.Obj(IdxTwoRight).Visible = false
		w.Obj(IdxFive).Visible = false
		w.Obj(IdxRing).Visible = false
	}

	hny := w.Obj(IdxHappyNewYear)
	if progress > 0.5 && !hny.Visible {
		hny.Visible = true
		hny.Opacity = 0

		confetti := w.Confetti()
		for i := range confetti {
			confetti[i].Visible = true
		}
	}

	if hny.Visible {
		hny.Opacity = HappyNewYearOpacity(progress)
	}
}

// HappyNewYearOpacity ramps from 0 to 1 over the second half of the flip.
func HappyNewYearOpacity(progress float64) float64 {
	return max(0, (progress-0.5)*2)
}

// AnimateFadeOut fades out everything except the fragments, which are about
// to be used for the crumble.
func (w *World) AnimateFadeOut(progress float64) {
	for i := range w.Objects {
		if w.Objects[i].Kind == Fragment {
			continue
		}
		w.Objects[i].Opacity = 1 - progress
	}
}

// AnimateCrumble shows the fragments and shakes them apart. The jitter is
// drawn anew every Step and accumulates, so the fragments drift further
// apart the further along the crumble is.
func (w *World) AnimateCrumble(progress float64) {
	if progress <= 0 {
		return
	}
	fragments := w.Fragments()
	for i := range fragments {
		f := &fragments[i]
		f.Visible = true
		f.Pos[2] -= 0.1 * progress
		f.Pos[0] += w.RCentered() * 0.1 * progress
		f.Pos[1] += w.RCentered() * 0.1 * progress
		f.RotZ += w.RCentered() * 0.1 * progress
	}
}

// Reset puts the scene back the way it was before the click, except for the
// "4" and the "5" which are moved back into place by AnimateReposition.
func (w *World) Reset() {
	w.Obj(IdxTwoLeft).Visible = true
	w.Obj(IdxZero).Visible = true
	w.Obj(IdxTwoRight).Visible = true
	w.Obj(IdxFive).Visible = true
	w.Obj(IdxHappyNewYear).Visible = false
	w.RotX = 0
	w.Obj(IdxFour).Pos[1] = 0

	for i := range w.Objects {
		w.Objects[i].Opacity = 1
	}

	ring := w.Obj(IdxRing)
	ring.Visible = false
	ring.Opacity = 0
	ring.Scale = 1
	ring.RotZ = 0

	confetti := w.Confetti()
	for i := range confetti {
		p := &confetti[i]
		p.Visible = false
		p.Pos = mgl64.Vec3{w.RCentered() * 2, ConfettiCeiling, w.RCentered()}
	}

	fragments := w.Fragments()
	for i := range fragments {
		f := &fragments[i]
		f.Visible = false
		f.Pos = mgl64.Vec3{w.RCentered() * 2, w.RCentered() * 2, 0}
		f.RotZ = 0
	}
}

// AnimateReposition is the count-up played backwards, without the ring: the
// "4" comes back up into place and the "5" goes back up out of view. When it
// is done the "5" is hidden and shrunk back to its resting size.
func (w *World) AnimateReposition(progress float64) {
	four := w.Obj(IdxFour)
	five := w.Obj(IdxFive)

	four.Visible = true
	four.Pos[1] = progress - 1
	five.Pos[1] = FiveDropHeight * progress

	if progress == 1 {
		five.Visible = false
		five.Scale = 1
	}
}
