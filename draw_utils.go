package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"image"
	"image/color"
)

// DrawSprite draws img on screen.
// x and y are in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func DrawSprite(screen *ebiten.Image, img *ebiten.Image,
	x float64, y float64, targetWidth float64, targetHeight float64) {
	op := &ebiten.DrawImageOptions{}

	// Resize image to fit the target size we want to draw.
	imgSize := img.Bounds().Size()
	newDx := targetWidth / float64(imgSize.X)
	newDy := targetHeight / float64(imgSize.Y)
	op.GeoM.Scale(newDx, newDy)
	op.GeoM.Translate(float64(screen.Bounds().Min.X)+x, float64(screen.Bounds().Min.Y)+y)
	screen.DrawImage(img, op)
}

func DrawSpriteStretched(screen *ebiten.Image, img *ebiten.Image) {
	DrawSprite(screen, img, 0, 0,
		float64(screen.Bounds().Dx()),
		float64(screen.Bounds().Dy()))
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image in a sub-image:
	// img2 = img1.SubImage(r) still needs img2.At(r.Min) to get the first
	// pixel of img2. I prefer to think in the local coordinates of the region
	// I'm drawing, which is why the offset is added here and also why the
	// drawing functions in this file add screen.Bounds().Min.
	minPt := screen.Bounds().Min
	ir := image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
	ir = ir.Add(minPt)
	return screen.SubImage(ir).(*ebiten.Image)
}

// maxBatchVertices keeps indices within the range of uint16.
const maxBatchVertices = 65000

// TriangleBatch accumulates textured quads that use the same source image
// and draws them with a single DrawTriangles call. The scene has thousands of
// small quads (dots, confetti, fragments) and drawing them one by one is
// needlessly slow.
type TriangleBatch struct {
	img *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

// AddQuad queues a quad whose corners are given in the local coordinates of
// dst, in the order top-left, top-right, bottom-right, bottom-left. The whole
// of src is mapped on the quad.
func (b *TriangleBatch) AddQuad(dst *ebiten.Image, img *ebiten.Image,
	src image.Rectangle, corners [4]mgl64.Vec2, c color.NRGBA, opacity float64) {
	if b.img != img || len(b.vs)+4 > maxBatchVertices {
		b.Flush(dst)
		b.img = img
	}

	srcPts := [4]image.Point{
		src.Min,
		{src.Max.X, src.Min.Y},
		src.Max,
		{src.Min.X, src.Max.Y},
	}
	offset := dst.Bounds().Min
	base := uint16(len(b.vs))
	for i := range corners {
		b.vs = append(b.vs, ebiten.Vertex{
			DstX:   float32(corners[i].X()) + float32(offset.X),
			DstY:   float32(corners[i].Y()) + float32(offset.Y),
			SrcX:   float32(srcPts[i].X),
			SrcY:   float32(srcPts[i].Y),
			ColorR: float32(c.R) / 255,
			ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255,
			ColorA: float32(c.A) / 255 * float32(opacity),
		})
	}
	b.is = append(b.is, base, base+1, base+2, base, base+2, base+3)
}

func (b *TriangleBatch) Flush(dst *ebiten.Image) {
	if len(b.vs) > 0 {
		op := &ebiten.DrawTrianglesOptions{}
		op.Filter = ebiten.FilterLinear
		dst.DrawTriangles(b.vs, b.is, b.img, op)
	}
	b.vs = b.vs[:0]
	b.is = b.is[:0]
	b.img = nil
}

// DrawStrip draws a triangle strip of a single color, using a white image
// as the source.
func DrawStrip(dst *ebiten.Image, whitePixel *ebiten.Image, strip []mgl64.Vec2,
	c color.NRGBA, opacity float64) {
	offset := dst.Bounds().Min
	vs := make([]ebiten.Vertex, len(strip))
	for i := range strip {
		vs[i] = ebiten.Vertex{
			DstX:   float32(strip[i].X()) + float32(offset.X),
			DstY:   float32(strip[i].Y()) + float32(offset.Y),
			SrcX:   1.5,
			SrcY:   1.5,
			ColorR: float32(c.R) / 255,
			ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255,
			ColorA: float32(c.A) / 255 * float32(opacity),
		}
	}
	is := make([]uint16, 0, 3*(len(strip)-2))
	for i := 0; i+2 < len(strip); i++ {
		is = append(is, uint16(i), uint16(i+1), uint16(i+2))
	}
	dst.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{})
}
