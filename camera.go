package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"math"
)

// Camera is a perspective camera placed on the Z axis and looking towards -Z.
// Its viewport is the pixel area the scene is drawn into. Everything the
// World knows about pixels goes through the Camera.
type Camera struct {
	Fov      float64 // vertical, in radians
	Near     float64
	Far      float64
	Pos      mgl64.Vec3
	Viewport Pt
}

func NewCamera(viewport Pt) (c Camera) {
	c.Fov = mgl64.DegToRad(90)
	c.Near = 0.1
	c.Far = 10
	c.Pos = mgl64.Vec3{0, 0, 2}
	c.Viewport = viewport
	return
}

func (c *Camera) Aspect() float64 {
	return float64(c.Viewport.X) / float64(c.Viewport.Y)
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.Translate3D(-c.Pos.X(), -c.Pos.Y(), -c.Pos.Z())
}

func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(c.Fov, c.Aspect(), c.Near, c.Far)
}

func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}

// PixelToNDC converts a viewport pixel to normalized device coordinates:
// x goes from -1 (left) to 1 (right), y from -1 (bottom) to 1 (top).
func (c *Camera) PixelToNDC(p Pt) mgl64.Vec2 {
	return mgl64.Vec2{
		float64(p.X)/float64(c.Viewport.X)*2 - 1,
		-float64(p.Y)/float64(c.Viewport.Y)*2 + 1,
	}
}

// Ray returns the world-space ray that starts at the camera and goes through
// the point ndc on the near plane.
func (c *Camera) Ray(ndc mgl64.Vec2) (origin mgl64.Vec3, dir mgl64.Vec3) {
	tanHalfFov := math.Tan(c.Fov / 2)
	dir = mgl64.Vec3{
		ndc.X() * tanHalfFov * c.Aspect(),
		ndc.Y() * tanHalfFov,
		-1,
	}.Normalize()
	return c.Pos, dir
}

// Project maps a world point to viewport pixels. depth is the distance in
// front of the camera. ok is false for points at or behind the near plane,
// which cannot be drawn.
func (c *Camera) Project(vp mgl64.Mat4, p mgl64.Vec3) (px mgl64.Vec2, depth float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < c.Near {
		return px, w, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	px[0] = (ndcX + 1) / 2 * float64(c.Viewport.X)
	px[1] = (1 - ndcY) / 2 * float64(c.Viewport.Y)
	return px, w, true
}

// RayHitsPlane checks if a world-space ray intersects a plane object. The
// plane is double sided, so hits from behind count too.
func RayHitsPlane(model mgl64.Mat4, size mgl64.Vec2, origin mgl64.Vec3, dir mgl64.Vec3) bool {
	inv := model.Inv()
	o := inv.Mul4x1(origin.Vec4(1)).Vec3()
	d := inv.Mul4x1(dir.Vec4(0)).Vec3()
	if math.Abs(d.Z()) < 1e-12 {
		// Parallel to the plane.
		return false
	}
	t := -o.Z() / d.Z()
	if t < 0 {
		return false
	}
	hit := o.Add(d.Mul(t))
	return math.Abs(hit.X()) <= size.X()/2 && math.Abs(hit.Y()) <= size.Y()/2
}

// HitTest checks if clicking the viewport pixel p would touch the object.
func (w *World) HitTest(o *Object, p Pt) bool {
	origin, dir := w.Camera.Ray(w.Camera.PixelToNDC(p))
	return RayHitsPlane(w.ModelMatrix(o), o.Size, origin, dir)
}
