package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"image"
	"image/color"
)

var nightSky = color.NRGBA{R: 8, G: 10, B: 28, A: 255}

func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen bitmap has the aspect ratio of the application window. We
	// fill all of it with the night sky. Then, we select the area inside of
	// screen on which the camera's viewport is drawn.
	screen.Fill(nightSky)

	game := SubImage(screen, g.gameArea)
	g.DrawScene(game)

	if g.state == Playback || g.state == DebugCrash {
		DrawSprite(game, g.textures.Cursor,
			float64(g.mousePt.X)-25,
			float64(g.mousePt.Y)-25,
			50.0, 50.0)
	}

	if g.ShowDebugInfo {
		g.DrawText(game, fmt.Sprintf("phase: %s  frame: %d  celebrations: %d  TPS: %.1f",
			g.world.Phase, g.frameIdx, g.Celebrations, ebiten.ActualTPS()),
			false, false, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	}

	if g.enableDebugAreas {
		g.DrawPlaybackControls(SubImage(screen, g.debugArea))
	}
}

// DrawScene draws what the VisWorld prepared, from the furthest object to
// the closest. The ring is a single object but not a quad, so it is drawn
// separately, at the right moment in the sequence.
func (g *Gui) DrawScene(screen *ebiten.Image) {
	var batch TriangleBatch
	ringDrawn := !g.visWorld.HasRing
	for i := range g.visWorld.Drawables {
		d := &g.visWorld.Drawables[i]
		if !ringDrawn && d.Depth <= g.visWorld.RingDepth {
			batch.Flush(screen)
			g.DrawRing(screen)
			ringDrawn = true
		}

		switch d.Kind {
		case Panel:
			img := g.textures.Text[d.Text]
			if img == nil {
				continue
			}
			batch.AddQuad(screen, img, img.Bounds(), d.Corners, d.Color, d.Opacity)
		case Dot:
			img := g.textures.Dot
			batch.AddQuad(screen, img, img.Bounds(), d.Corners, d.Color, d.Opacity)
		case Confetti, Fragment:
			batch.AddQuad(screen, g.textures.WhitePixel, whitePixelSrc,
				d.Corners, d.Color, d.Opacity)
		default:
			panic(fmt.Errorf("unhandled drawable kind: %d", d.Kind))
		}
	}
	batch.Flush(screen)
	if !ringDrawn {
		g.DrawRing(screen)
	}
}

func (g *Gui) DrawRing(screen *ebiten.Image) {
	DrawStrip(screen, g.textures.WhitePixel, g.visWorld.RingStrip[:],
		g.visWorld.RingColor, g.visWorld.RingOpacity)
}

func (g *Gui) DrawPlaybackControls(screen *ebiten.Image) {
	// Background of playback bar.
	screen.Fill(color.NRGBA{
		R: 200,
		G: 200,
		B: 200,
		A: 255,
	})

	// Play/pause button.
	playbarHeight := int64(screen.Bounds().Dy())
	playButton := SubImage(screen,
		NewRectangleI(0, 0, playbarHeight, playbarHeight))
	if g.playbackPaused {
		DrawSpriteStretched(playButton, g.textures.PlaybackPlay)
	} else {
		DrawSpriteStretched(playButton, g.textures.PlaybackPause)
	}

	// Play bar.
	barXMargin := int64(10)
	barX := playbarHeight + barXMargin
	barWidth := int64(screen.Bounds().Dx()) - barX - barXMargin
	bar := SubImage(screen, NewRectangleI(barX, playbarHeight/3, barWidth,
		playbarHeight/3))
	bar.Fill(color.NRGBA{R: 120, G: 120, B: 120, A: 255})
	// Remember the region so that Update() can react when it's clicked. The
	// clickable region is the full height of the playback bar.
	g.buttonPlaybackBar = toRectangle(SubImage(screen,
		NewRectangleI(barX, 0, barWidth, playbarHeight)).Bounds())

	// Playback bar cursor.
	nFrames := len(g.playthrough.History)
	if nFrames == 0 {
		return
	}
	cursorSize := float64(playbarHeight)
	factor := float64(g.frameIdx) / float64(nFrames)
	cursorX := float64(barX) + factor*float64(barWidth) - cursorSize/2
	DrawSprite(screen, g.textures.PlaybackCursor, cursorX, 0, cursorSize,
		cursorSize)
}

func toRectangle(r image.Rectangle) Rectangle {
	return Rectangle{
		Min: Pt{int64(r.Min.X), int64(r.Min.Y)},
		Max: Pt{int64(r.Max.X), int64(r.Max.Y)},
	}
}

func (g *Gui) DrawText(screen *ebiten.Image, message string, centerX bool, centerY bool, color color.Color) {
	// Remember that text there is an origin point for the text.
	// That origin point is kind of the lower-left corner of the bounds of the
	// text. Kind of. Read the BoundString docs to understand, particularly this
	// image:
	// https://developer.apple.com/library/archive/documentation/TextFonts/Conceptual/CocoaTextArchitecture/Art/glyphterms_2x.png
	// This means that if you do text.Draw at (x, y), most of the text will
	// appear above y, and a little bit under y. If you want all the pixels in
	// your text to be below y, you should do text.Draw at
	// (x, y - text.BoundString().Min.Y).
	textSize := text.BoundString(g.defaultFont, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	}

	textX := screen.Bounds().Min.X + offsetX
	textY := screen.Bounds().Min.Y + offsetY - textSize.Min.Y
	text.Draw(screen, message, g.defaultFont, textX, textY, color)
}
