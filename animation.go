package main

// Phase is the tag of the state machine that runs the celebration. The World
// is in exactly one phase at any time and Step dispatches on it.
type Phase int64

const (
	Idle Phase = iota
	CountUp
	Flip
	FadeOut
	Crumble
	Pause
	Reposition
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case CountUp:
		return "count-up"
	case Flip:
		return "flip"
	case FadeOut:
		return "fade-out"
	case Crumble:
		return "crumble"
	case Pause:
		return "pause"
	case Reposition:
		return "reposition"
	default:
		return "unknown"
	}
}

// SequencerStep is the step of the click-triggered part of the timeline.
type SequencerStep int64

const (
	StepCountUp SequencerStep = 0
	StepFlip    SequencerStep = 1
)

// Durations, in milliseconds.
const (
	CountUpDuration    = int64(1000)
	FlipDuration       = CountUpDuration * 3 / 2
	FadeOutDuration    = int64(3000)
	CrumbleDuration    = int64(2000)
	PauseDuration      = int64(1500)
	RepositionDuration = int64(1000)
)

// CycleDuration is how long a full celebration takes, from the click to the
// moment the World is idle again, if every frame lands exactly on a phase
// boundary. In practice a cycle lasts slightly longer, by up to one frame per
// phase.
const CycleDuration = CountUpDuration + FlipDuration + FadeOutDuration +
	CrumbleDuration + PauseDuration + RepositionDuration

// NoStartTime marks an AnimationState that was never started.
const NoStartTime = int64(-1)

// AnimationState is the state of the click-triggered sequencer. IsAnimating is
// only true during the count-up and the flip. The sub-phases that follow run
// with IsAnimating false, but the World still refuses clicks until it is back
// to Idle.
type AnimationState struct {
	IsAnimating bool
	CurrentStep SequencerStep
	StartTime   int64
}

func NewAnimationState() AnimationState {
	return AnimationState{
		IsAnimating: false,
		CurrentStep: StepCountUp,
		StartTime:   NoStartTime,
	}
}

// Progress is how far along an animation of the given duration is, at time
// now, if it started at time start. The result is always in [0, 1].
// It is recomputed from scratch every frame, so the frame rate affects how
// smooth an animation looks but not how long it lasts.
func Progress(now int64, start int64, duration int64) float64 {
	return Clamp01(float64(now-start) / float64(duration))
}
