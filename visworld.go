package main

import (
	"cmp"
	"github.com/go-gl/mathgl/mgl64"
	"image/color"
	"math"
	"slices"
)

// Drawable is an object of the World that was projected on the viewport and
// is ready to be drawn. Quads have their corners in the order top-left,
// top-right, bottom-right, bottom-left (in the object's own space), so that
// texture coordinates can be assigned in the same order.
type Drawable struct {
	Kind    ObjectKind
	Corners [4]mgl64.Vec2
	Depth   float64
	Color   color.NRGBA
	Opacity float64
	Text    string
}

// VisWorld is a world parallel to World that holds "visual logic". Its role is
// to turn the 3D scene of the World into a list of flat shapes, in viewport
// pixels, ordered from the furthest to the closest. Draw() relies on VisWorld
// to know what to draw and where.
//
// VisWorld runs parallel to World and is meant to be updated alongside World,
// in the Update() function.
type VisWorld struct {
	Drawables []Drawable
	// RingStrip holds the vertices of the ring as a triangle strip that
	// alternates inner and outer edge. It is only valid if HasRing is true.
	RingStrip [2 * (RingSegments + 1)]mgl64.Vec2
	RingDepth   float64
	RingColor   color.NRGBA
	RingOpacity float64
	HasRing     bool
}

func NewVisWorld() (v VisWorld) {
	v.Drawables = make([]Drawable, 0, NObjects)
	return v
}

var quadCorners = [4]mgl64.Vec4{
	{-0.5, 0.5, 0, 1},
	{0.5, 0.5, 0, 1},
	{0.5, -0.5, 0, 1},
	{-0.5, -0.5, 0, 1},
}

func (v *VisWorld) Step(w *World) {
	v.Drawables = v.Drawables[:0]
	v.HasRing = false
	vp := w.Camera.ViewProjection()

	for i := range w.Objects {
		o := &w.Objects[i]
		if !o.Visible || o.Opacity <= 0 {
			continue
		}

		model := w.ModelMatrix(o)
		if o.Kind == Ring {
			v.HasRing = v.projectRing(w, vp, model)
			v.RingColor = o.Color
			v.RingOpacity = o.Opacity
			continue
		}

		d := Drawable{
			Kind:    o.Kind,
			Color:   o.Color,
			Opacity: o.Opacity,
			Text:    o.Text,
		}
		visible := true
		for c := range quadCorners {
			local := quadCorners[c]
			local[0] *= o.Size.X()
			local[1] *= o.Size.Y()
			world := model.Mul4x1(local).Vec3()
			px, depth, ok := w.Camera.Project(vp, world)
			if !ok {
				visible = false
				break
			}
			d.Corners[c] = px
			d.Depth += depth / 4
		}
		if visible {
			v.Drawables = append(v.Drawables, d)
		}
	}

	// Painter's algorithm: draw the furthest first. The sort is stable so that
	// objects at the same depth keep the order in which the scene lists them.
	slices.SortStableFunc(v.Drawables, func(a, b Drawable) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}

func (v *VisWorld) projectRing(w *World, vp mgl64.Mat4, model mgl64.Mat4) bool {
	center := model.Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
	if _, depth, ok := w.Camera.Project(vp, center); ok {
		v.RingDepth = depth
	} else {
		return false
	}
	for s := 0; s <= RingSegments; s++ {
		theta := float64(s) / RingSegments * 2 * math.Pi
		cos, sin := math.Cos(theta), math.Sin(theta)
		inner := model.Mul4x1(mgl64.Vec4{RingInnerRadius * cos, RingInnerRadius * sin, 0, 1}).Vec3()
		outer := model.Mul4x1(mgl64.Vec4{RingOuterRadius * cos, RingOuterRadius * sin, 0, 1}).Vec3()
		var ok1, ok2 bool
		v.RingStrip[2*s], _, ok1 = w.Camera.Project(vp, inner)
		v.RingStrip[2*s+1], _, ok2 = w.Camera.Project(vp, outer)
		if !ok1 || !ok2 {
			return false
		}
	}
	return true
}
