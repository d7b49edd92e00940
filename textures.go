package main

import (
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"image"
	"image/color"
	"math"
)

// Text textures are 4:1 and the panels they are put on are 2:1, so the text
// comes out twice as tall as it is drawn. That's the look the panels were
// designed with.
const TextTextureWidth = 1024
const TextTextureHeight = 256
const TextFontSize = 100
const IconSize = 64

// Textures holds every image the Gui draws with. None of them is loaded from
// disk, they are all rendered when the Gui starts.
type Textures struct {
	Text           map[string]*ebiten.Image
	WhitePixel     *ebiten.Image
	Dot            *ebiten.Image
	PlaybackPlay   *ebiten.Image
	PlaybackPause  *ebiten.Image
	PlaybackCursor *ebiten.Image
	Cursor         *ebiten.Image
}

// whitePixelSrc is the region of Textures.WhitePixel that is sampled. The
// image is 3x3 so that sampling the middle pixel never bleeds past the edge.
var whitePixelSrc = image.Rect(1, 1, 2, 2)

func NewTextFace(size float64) font.Face {
	f, err := truetype.Parse(goregular.TTF)
	Check(err)
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// TextImage renders text in white, centered on a transparent image of
// TextTextureWidth x TextTextureHeight pixels.
func TextImage(text string, face font.Face) image.Image {
	dc := gg.NewContext(TextTextureWidth, TextTextureHeight)
	dc.SetFontFace(face)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(text, TextTextureWidth/2, TextTextureHeight/2, 0.5, 0.5)
	return dc.Image()
}

// DotImage is a white disc filling the whole image. Dots are small enough on
// screen that a textured quad looks the same as a sphere.
func DotImage(size int) image.Image {
	dc := gg.NewContext(size, size)
	dc.SetColor(color.White)
	dc.DrawCircle(float64(size)/2, float64(size)/2, float64(size)/2)
	dc.Fill()
	return dc.Image()
}

func PlayIconImage(size int) image.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	dc.SetColor(color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	dc.MoveTo(s*0.25, s*0.2)
	dc.LineTo(s*0.8, s*0.5)
	dc.LineTo(s*0.25, s*0.8)
	dc.ClosePath()
	dc.Fill()
	return dc.Image()
}

func PauseIconImage(size int) image.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	dc.SetColor(color.NRGBA{R: 40, G: 40, B: 40, A: 255})
	dc.DrawRectangle(s*0.25, s*0.2, s*0.18, s*0.6)
	dc.DrawRectangle(s*0.57, s*0.2, s*0.18, s*0.6)
	dc.Fill()
	return dc.Image()
}

func PlaybackCursorImage(size int) image.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	dc.SetColor(color.NRGBA{R: 251, G: 150, B: 32, A: 255})
	dc.DrawRoundedRectangle(s*0.4, 0, s*0.2, s, s*0.1)
	dc.Fill()
	return dc.Image()
}

// CursorImage is the virtual cursor drawn during playback: a ring with a dot
// in the middle, so the exact click position is visible.
func CursorImage(size int) image.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	dc.SetColor(color.NRGBA{R: 255, G: 60, B: 60, A: 220})
	dc.SetLineWidth(math.Max(2, s/12))
	dc.DrawCircle(s/2, s/2, s/2-s/12)
	dc.Stroke()
	dc.DrawCircle(s/2, s/2, s/12)
	dc.Fill()
	return dc.Image()
}

func NewTextures(texts []string) (t Textures) {
	face := NewTextFace(TextFontSize)
	t.Text = map[string]*ebiten.Image{}
	for _, s := range texts {
		if _, ok := t.Text[s]; ok {
			continue
		}
		t.Text[s] = ebiten.NewImageFromImage(TextImage(s, face))
	}

	t.WhitePixel = ebiten.NewImage(3, 3)
	t.WhitePixel.Fill(color.White)
	t.Dot = ebiten.NewImageFromImage(DotImage(16))
	t.PlaybackPlay = ebiten.NewImageFromImage(PlayIconImage(IconSize))
	t.PlaybackPause = ebiten.NewImageFromImage(PauseIconImage(IconSize))
	t.PlaybackCursor = ebiten.NewImageFromImage(PlaybackCursorImage(IconSize))
	t.Cursor = ebiten.NewImageFromImage(CursorImage(IconSize))
	return
}

// PanelTexts lists the texts of every panel in the scene.
func PanelTexts(s *Scene) (texts []string) {
	for i := range s.Objects {
		if s.Objects[i].Kind == Panel {
			texts = append(texts, s.Objects[i].Text)
		}
	}
	return
}
