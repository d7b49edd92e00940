package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestCamera_PixelToNDC(t *testing.T) {
	c := NewCamera(Pt{1600, 900})
	assert.Equal(t, mgl64.Vec2{-1, 1}, c.PixelToNDC(Pt{0, 0}))
	assert.Equal(t, mgl64.Vec2{1, -1}, c.PixelToNDC(Pt{1600, 900}))
	assert.Equal(t, mgl64.Vec2{0, 0}, c.PixelToNDC(Pt{800, 450}))
}

func TestCamera_Project(t *testing.T) {
	c := NewCamera(Pt{1600, 900})
	vp := c.ViewProjection()

	px, depth, ok := c.Project(vp, mgl64.Vec3{0, 0, 0})
	assert.True(t, ok)
	assert.InDelta(t, 800, px.X(), 1e-9)
	assert.InDelta(t, 450, px.Y(), 1e-9)
	assert.InDelta(t, 2, depth, 1e-9)

	// Up in the world is up on the screen.
	px, _, ok = c.Project(vp, mgl64.Vec3{0, 1, 0})
	assert.True(t, ok)
	assert.Less(t, px.Y(), 450.0)

	// With a 90 degree field of view, at distance 2 the top edge of the
	// viewport is at y = 2.
	px, _, _ = c.Project(vp, mgl64.Vec3{0, 2, 0})
	assert.InDelta(t, 0, px.Y(), 1e-9)

	_, _, ok = c.Project(vp, mgl64.Vec3{0, 0, 3})
	assert.False(t, ok)
}

func TestCamera_RayMatchesProject(t *testing.T) {
	c := NewCamera(Pt{1600, 900})
	vp := c.ViewProjection()
	p := mgl64.Vec3{0.7, -0.3, 0}
	px, _, ok := c.Project(vp, p)
	assert.True(t, ok)

	ndc := mgl64.Vec2{px.X()/800 - 1, 1 - px.Y()/450}
	origin, dir := c.Ray(ndc)
	// Follow the ray down to z = 0.
	tHit := -origin.Z() / dir.Z()
	hit := origin.Add(dir.Mul(tHit))
	assert.InDelta(t, p.X(), hit.X(), 1e-9)
	assert.InDelta(t, p.Y(), hit.Y(), 1e-9)
}

func TestRayHitsPlane(t *testing.T) {
	size := mgl64.Vec2{2, 1}
	origin := mgl64.Vec3{0, 0, 2}
	down := mgl64.Vec3{0, 0, -1}

	model := mgl64.Translate3D(0.5, 0, 0)
	assert.True(t, RayHitsPlane(model, size, origin, down))
	assert.True(t, RayHitsPlane(model, size, mgl64.Vec3{1.4, 0.4, 2}, down))
	assert.False(t, RayHitsPlane(model, size, mgl64.Vec3{1.6, 0, 2}, down))
	assert.False(t, RayHitsPlane(model, size, mgl64.Vec3{0, 0.6, 2}, down))

	// Planes can be hit from behind.
	flipped := model.Mul4(mgl64.HomogRotate3DX(math.Pi))
	assert.True(t, RayHitsPlane(flipped, size, origin, down))

	// Looking away from the plane.
	assert.False(t, RayHitsPlane(model, size, origin, mgl64.Vec3{0, 0, 1}))

	// Edge-on.
	edgeOn := model.Mul4(mgl64.HomogRotate3DX(math.Pi / 2))
	assert.False(t, RayHitsPlane(edgeOn, size, mgl64.Vec3{0, 5, 0}, mgl64.Vec3{1, 0, 0}))
}

func TestWorld_HitTest(t *testing.T) {
	w := NewWorld(1, testViewport)
	assert.True(t, w.HitTest(w.Obj(IdxFour), onFour))
	assert.False(t, w.HitTest(w.Obj(IdxFour), offFour))

	// Once the "4" has slid down by its own height, the center is free.
	w.Obj(IdxFour).Pos[1] = -2
	assert.False(t, w.HitTest(w.Obj(IdxFour), onFour))
}
