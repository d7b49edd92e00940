package main

import (
	"github.com/lucasb-eyer/go-colorful"
	"image/color"
)

// Below this height a particle has left the screen and is recycled at the top.
const ConfettiFloor = -2.0
const ConfettiCeiling = 2.0

var confettiPalette = []color.NRGBA{
	hexColor("#ff0000"),
	hexColor("#00ff00"),
	hexColor("#0000ff"),
	hexColor("#ffff00"),
	hexColor("#ff00ff"),
	hexColor("#00ffff"),
}

// The ring is white with a faint warm tint, blended in Lab space so it stays
// bright.
var ringColor = blendColors("#ffffff", "#ffd27f", 0.15)

func hexColor(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	Check(err)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func blendColors(s1 string, s2 string, t float64) color.NRGBA {
	c1, err := colorful.Hex(s1)
	Check(err)
	c2, err := colorful.Hex(s2)
	Check(err)
	r, g, b := c1.BlendLab(c2, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// StepConfetti moves every visible particle by its velocity. Particles that
// fall below the floor reappear at the top at a new random horizontal
// position, which gives the illusion of a continuous fall.
func (w *World) StepConfetti() {
	confetti := w.Confetti()
	for i := range confetti {
		p := &confetti[i]
		if !p.Visible {
			continue
		}
		p.Pos[0] += p.Vel.X
		p.Pos[1] += p.Vel.Y
		p.RotZ += p.Vel.Rot

		if p.Pos.Y() < ConfettiFloor {
			p.Pos[0] = w.RCentered() * 4
			p.Pos[1] = ConfettiCeiling
			p.Pos[2] = w.RCentered()
		}
	}
}

// ConfettiVisible reports if the confetti is currently shown. All particles
// are shown and hidden together.
func (w *World) ConfettiVisible() bool {
	return w.Confetti()[0].Visible
}
