package main

import (
	"fmt"
)

// SimulationVersion identifies the behavior of the World. A playthrough can
// only be replayed by a World with the same SimulationVersion as the one that
// recorded it. It must change whenever the same inputs would produce a
// different state: timings, object counts, the order in which random numbers
// are drawn, etc.
const SimulationVersion = 1

// World rules
// - The World is a scene and a state machine that animates it.
// - At rest, the scene shows "2024". Clicking the "4" starts a celebration:
// the "5" comes down while the "4" slides out, the whole scene flips over to
// reveal "Happy New Year!" and confetti, everything fades out, the area
// crumbles, and the scene resets to "2024".
// - A click is only accepted when the World is at rest. There is never more
// than one celebration running.
// - Everything in a phase is a function of the time elapsed since the phase
// started. Time comes from the input, never from a clock, so the same inputs
// always give the same World.
// - Some effects (ring spin, confetti, crumble jitter) advance by a fixed
// amount every Step, as they are meant to look alive rather than to last a
// precise time.

type World struct {
	Rand
	Scene
	Camera     Camera
	Anim       AnimationState
	Phase      Phase
	PhaseStart int64
	Now        int64
	// Cycles counts the celebrations that ran to completion.
	Cycles int64
	// JustCompletedCycle is true only during the Step in which a celebration
	// ended.
	JustCompletedCycle bool
}

type PlayerInput struct {
	// Pos is the cursor position in viewport pixels.
	Pos         Pt
	JustPressed bool
	// NowMs is the number of milliseconds since the session started.
	NowMs int64
}

func (p *PlayerInput) EventOccurred() bool {
	return p.JustPressed
}

func NewWorld(seed int64, viewport Pt) (w World) {
	w.Rand = NewRand(seed)
	w.Scene = NewScene(&w.Rand)
	w.Camera = NewCamera(viewport)
	w.Anim = NewAnimationState()
	w.Phase = Idle
	return
}

func NewWorldFromPlaythrough(p Playthrough) World {
	if p.SimulationVersion != SimulationVersion {
		Check(fmt.Errorf("can't replay playthrough with SimulationVersion %d "+
			"because our SimulationVersion is %d",
			p.SimulationVersion, SimulationVersion))
	}
	return NewWorld(p.Seed, p.ViewportSize)
}

func (w *World) Step(input PlayerInput) {
	Assert(input.NowMs >= w.Now)
	w.Now = input.NowMs
	w.JustCompletedCycle = false

	if input.JustPressed {
		w.Click(input.Pos)
	}

	switch w.Phase {
	case Idle:
	case CountUp, Flip:
		w.StepSequencer()
	case FadeOut:
		w.StepFadeOut()
	case Crumble:
		w.StepCrumble()
	case Pause:
		w.StepPause()
	case Reposition:
		w.StepReposition()
	default:
		panic(fmt.Errorf("unhandled phase: %d", w.Phase))
	}

	// Confetti falls whenever it is visible, no matter the phase.
	if w.ConfettiVisible() {
		w.StepConfetti()
	}
}

// CanStart reports if a click on the "4" would start a celebration right now.
func (w *World) CanStart() bool {
	return !w.Anim.IsAnimating && w.Obj(IdxFour).Visible && w.Phase == Idle
}

// Click handles a click at viewport pixel p. Returns true if the click
// started a celebration. Clicks that miss the "4" or arrive while the World
// is busy change nothing.
func (w *World) Click(p Pt) bool {
	if !w.CanStart() {
		return false
	}
	if !w.HitTest(w.Obj(IdxFour), p) {
		return false
	}

	w.Obj(IdxFive).Visible = true
	w.Anim.IsAnimating = true
	w.Anim.StartTime = w.Now
	w.Anim.CurrentStep = StepCountUp
	w.enterPhase(CountUp)
	return true
}

func (w *World) enterPhase(p Phase) {
	w.Phase = p
	w.PhaseStart = w.Now
}

// StepSequencer runs the click-triggered part of the timeline: the count-up
// and then the flip.
func (w *World) StepSequencer() {
	if !w.Anim.IsAnimating || w.Anim.StartTime == NoStartTime {
		return
	}

	switch w.Anim.CurrentStep {
	case StepCountUp:
		progress := Progress(w.Now, w.Anim.StartTime, CountUpDuration)
		w.AnimateCountUp(progress)
		if progress == 1 {
			w.Anim.CurrentStep = StepFlip
			w.Anim.StartTime = w.Now
			w.enterPhase(Flip)
		}
	case StepFlip:
		progress := Progress(w.Now, w.Anim.StartTime, FlipDuration)
		w.AnimateFlip(progress)
		if progress == 1 {
			w.Anim.IsAnimating = false
			w.enterPhase(FadeOut)
			w.AnimateFadeOut(0)
		}
	default:
		panic(fmt.Errorf("unhandled sequencer step: %d", w.Anim.CurrentStep))
	}
}

func (w *World) StepFadeOut() {
	progress := Progress(w.Now, w.PhaseStart, FadeOutDuration)
	w.AnimateFadeOut(progress)
	if progress == 1 {
		w.enterPhase(Crumble)
	}
}

func (w *World) StepCrumble() {
	progress := Progress(w.Now, w.PhaseStart, CrumbleDuration)
	w.AnimateCrumble(progress)
	if progress == 1 {
		w.Reset()
		w.enterPhase(Pause)
	}
}

func (w *World) StepPause() {
	if w.Now-w.PhaseStart >= PauseDuration {
		w.enterPhase(Reposition)
		w.AnimateReposition(0)
	}
}

func (w *World) StepReposition() {
	progress := Progress(w.Now, w.PhaseStart, RepositionDuration)
	w.AnimateReposition(progress)
	if progress == 1 {
		w.enterPhase(Idle)
		w.Anim = NewAnimationState()
		w.Cycles++
		w.JustCompletedCycle = true
	}
}
