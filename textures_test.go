package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"testing"
)

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

// opaqueBounds returns the smallest rectangle containing every pixel that is
// not fully transparent.
func opaqueBounds(img image.Image) (r image.Rectangle) {
	b := img.Bounds()
	first := true
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if alphaAt(img, x, y) == 0 {
				continue
			}
			p := image.Rect(x, y, x+1, y+1)
			if first {
				r = p
				first = false
			} else {
				r = r.Union(p)
			}
		}
	}
	return
}

func TestTextImage(t *testing.T) {
	face := NewTextFace(TextFontSize)
	img := TextImage("4", face)
	assert.Equal(t, image.Rect(0, 0, TextTextureWidth, TextTextureHeight), img.Bounds())

	r := opaqueBounds(img)
	require.False(t, r.Empty())
	// Centered horizontally, and fully inside the texture.
	center := r.Min.Add(r.Max).Div(2)
	assert.InDelta(t, TextTextureWidth/2, center.X, 15)
	assert.Greater(t, r.Min.Y, 0)
	assert.Less(t, r.Max.Y, TextTextureHeight)
	assert.Less(t, r.Dx(), TextTextureWidth/4)
	assert.Equal(t, uint32(0), alphaAt(img, 0, 0))

	// Longer text, wider ink.
	wide := opaqueBounds(TextImage("Happy New Year!", face))
	assert.Greater(t, wide.Dx(), r.Dx()*4)
}

func TestDotImage(t *testing.T) {
	img := DotImage(16)
	assert.Equal(t, uint32(0xffff), alphaAt(img, 8, 8))
	assert.Equal(t, uint32(0), alphaAt(img, 0, 0))
	assert.Equal(t, uint32(0), alphaAt(img, 15, 15))
}

func TestIconImages(t *testing.T) {
	for _, img := range []image.Image{
		PlayIconImage(IconSize),
		PauseIconImage(IconSize),
		PlaybackCursorImage(IconSize),
		CursorImage(IconSize),
	} {
		assert.Equal(t, image.Rect(0, 0, IconSize, IconSize), img.Bounds())
		assert.False(t, opaqueBounds(img).Empty())
	}
}

func TestPanelTexts(t *testing.T) {
	r := NewRand(0)
	s := NewScene(&r)
	assert.Equal(t, []string{"2", "0", "2", "4", "5", "Happy New Year!"},
		PanelTexts(&s))
}
