package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"image/color"
	"math"
)

type ObjectKind int64

const (
	Panel ObjectKind = iota
	Ring
	Confetti
	Fragment
	Dot
)

// Velocity is the fixed per-frame motion of a confetti particle.
type Velocity struct {
	X   float64
	Y   float64
	Rot float64
}

// Object is one drawable entity of the scene. Planes (panels, confetti,
// fragments) are centered on Pos and lie in their local XY plane. The ring
// uses RingInnerRadius and RingOuterRadius instead of Size. Dots are spheres
// of radius Size.X()/2.
type Object struct {
	Name    string
	Kind    ObjectKind
	Pos     mgl64.Vec3
	RotX    float64
	RotZ    float64
	Scale   float64
	Opacity float64
	Visible bool
	Size    mgl64.Vec2
	Color   color.NRGBA
	Text    string
	Vel     Velocity
}

// Scene is the root of the object graph. RotX rotates everything around the
// horizontal axis, which is how the flip is done.
type Scene struct {
	RotX    float64
	Objects []Object
}

const RingInnerRadius = 0.4
const RingOuterRadius = 0.45
const RingSegments = 32

// Indices of the named objects in Scene.Objects. Confetti, fragments and
// dots follow, in that order.
const (
	IdxTwoLeft = iota
	IdxZero
	IdxTwoRight
	IdxFour
	IdxFive
	IdxHappyNewYear
	IdxRing
	IdxConfettiStart
)

const NConfetti = 500
const IdxFragmentsStart = IdxConfettiStart + NConfetti

// Fragments cover [-1, 1] x [-1, 1] with a step of 0.1.
const NFragmentsPerSide = 21
const NFragments = NFragmentsPerSide * NFragmentsPerSide
const IdxDotsStart = IdxFragmentsStart + NFragments

// Dots cover [-9, 9] x [-9, 9] with a step of 0.25.
const NDotsPerSide = 73
const NDots = NDotsPerSide * NDotsPerSide
const NObjects = IdxDotsStart + NDots

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func NewPanel(name string, text string, pos mgl64.Vec3, size float64) Object {
	return Object{
		Name:    name,
		Kind:    Panel,
		Pos:     pos,
		Scale:   1,
		Opacity: 1,
		Visible: true,
		Size:    mgl64.Vec2{size, size / 2},
		Color:   white,
		Text:    text,
	}
}

// NewScene builds the resting scene: "2024" in front of a field of dots, with
// everything used later by the celebration already in place but hidden.
func NewScene(r *Rand) (s Scene) {
	s.Objects = make([]Object, NObjects)

	s.Objects[IdxTwoLeft] = NewPanel("2-left", "2", mgl64.Vec3{-0.75, 0, 0.1}, 6)
	s.Objects[IdxZero] = NewPanel("0", "0", mgl64.Vec3{-0.25, 0, 0.1}, 6)
	s.Objects[IdxTwoRight] = NewPanel("2-right", "2", mgl64.Vec3{0.25, 0, 0.1}, 6)
	s.Objects[IdxFour] = NewPanel("4", "4", mgl64.Vec3{0.75, 0, 0.1}, 6)

	five := NewPanel("5", "5", mgl64.Vec3{0.75, 5, 0.1}, 1.5)
	five.Visible = false
	s.Objects[IdxFive] = five

	// Stored upside down, so that flipping the whole scene shows it upright.
	hny := NewPanel("happy-new-year", "Happy New Year!", mgl64.Vec3{0, 0, 0.1}, 6)
	hny.RotX = math.Pi
	hny.Visible = false
	s.Objects[IdxHappyNewYear] = hny

	s.Objects[IdxRing] = Object{
		Name:  "ring",
		Kind:  Ring,
		Pos:   mgl64.Vec3{0.75, 0, 0.05},
		Scale: 1,
		Size:  mgl64.Vec2{2 * RingOuterRadius, 2 * RingOuterRadius},
		Color: ringColor,
	}

	for i := range NConfetti {
		p := &s.Objects[IdxConfettiStart+i]
		p.Name = "confetti"
		p.Kind = Confetti
		p.Pos = mgl64.Vec3{r.RCentered() * 5, 2, r.RCentered()}
		p.Scale = 1
		p.Opacity = 1
		p.Size = mgl64.Vec2{0.05, 0.05}
		p.Color = confettiPalette[r.RInt(0, int64(len(confettiPalette))-1)]
		p.Vel = Velocity{
			X:   r.RCentered() * 0.03,
			Y:   -0.02 - r.RFloat()*0.02,
			Rot: r.RCentered() * 0.1,
		}
	}

	for i := range NFragments {
		f := &s.Objects[IdxFragmentsStart+i]
		f.Name = "fragment"
		f.Kind = Fragment
		f.Pos = mgl64.Vec3{
			-1 + 0.1*float64(i/NFragmentsPerSide),
			-1 + 0.1*float64(i%NFragmentsPerSide),
			0}
		f.Scale = 1
		f.Opacity = 1
		f.Size = mgl64.Vec2{0.05, 0.05}
		f.Color = white
	}

	for i := range NDots {
		d := &s.Objects[IdxDotsStart+i]
		d.Name = "dot"
		d.Kind = Dot
		d.Pos = mgl64.Vec3{
			-9 + 0.25*float64(i/NDotsPerSide),
			-9 + 0.25*float64(i%NDotsPerSide),
			0}
		d.Scale = 1
		d.Opacity = 1
		d.Visible = true
		d.Size = mgl64.Vec2{0.02, 0.02}
		d.Color = white
	}
	return
}

func (s *Scene) Obj(idx int) *Object {
	return &s.Objects[idx]
}

func (s *Scene) Confetti() []Object {
	return s.Objects[IdxConfettiStart:IdxFragmentsStart]
}

func (s *Scene) Fragments() []Object {
	return s.Objects[IdxFragmentsStart:IdxDotsStart]
}

func (s *Scene) Dots() []Object {
	return s.Objects[IdxDotsStart:]
}

// ModelMatrix returns the transform from the object's local space to world
// space, including the rotation of the scene root. Rotations are applied in
// X then Z order, matching an XYZ Euler rotation with no Y component.
func (s *Scene) ModelMatrix(o *Object) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(s.RotX).
		Mul4(mgl64.Translate3D(o.Pos.X(), o.Pos.Y(), o.Pos.Z())).
		Mul4(mgl64.HomogRotate3DX(o.RotX)).
		Mul4(mgl64.HomogRotate3DZ(o.RotZ)).
		Mul4(mgl64.Scale3D(o.Scale, o.Scale, o.Scale))
}
