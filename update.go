package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"slices"
	"time"
)

func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
	}

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	return nil
}

func (g *Gui) UpdatePlayScreen() {
	// Get the player input.
	var input PlayerInput
	x, y := ebiten.CursorPosition()
	input.Pos = g.ScreenToGame(Pt{int64(x), int64(y)})
	input.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	input.NowMs = time.Since(g.sessionStart).Milliseconds()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile && input.EventOccurred() {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	// Remember cursor position in order to draw the virtual cursor during
	// Draw().
	g.mousePt = input.Pos
	g.world.Step(input)
	g.visWorld.Step(&g.world)
	g.frameIdx++

	if g.world.JustCompletedCycle {
		g.Celebrations++
		g.uploadUserDataChannel <- g.UserData
		g.uploadPlaythroughChannel <- g.playthrough.Clone()
		if g.RecordToFile {
			WriteFile(g.RecordingFile, g.playthrough.Serialize())
		}
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) LeftClickPressedOn(button Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButton0) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return button.ContainsPt(Pt{int64(x), int64(y)})
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	if g.JustPressed(ebiten.KeySpace) {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOn(g.buttonPlaybackBar) {
		x, _ := ebiten.CursorPosition()
		dx := int64(x) - g.buttonPlaybackBar.Min.X
		targetFrameIdx = dx * nFrames / g.buttonPlaybackBar.Width()
	}

	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShift
	}

	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShift
	}

	if g.Pressed(ebiten.KeyLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	targetFrameIdx = max(0, min(targetFrameIdx, nFrames-1))

	if targetFrameIdx != g.frameIdx {
		// Rewind and replay the world up to the target frame.
		g.world = g.playthrough.Replay(targetFrameIdx)
		g.frameIdx = targetFrameIdx
	}

	// Get input from recording.
	input := g.playthrough.History[g.frameIdx]
	// Remember cursor position in order to draw the virtual cursor during
	// Draw().
	g.mousePt = input.Pos

	if !g.playbackPaused {
		g.world.Step(input)

		if g.frameIdx < nFrames-1 {
			g.frameIdx++
		}
	}
	g.visWorld.Step(&g.world)
}

func (g *Gui) UpdateDebugCrash() {
	var input PlayerInput
	// Remember cursor position in order to draw the virtual cursor during
	// Draw().
	if g.frameIdx < int64(len(g.playthrough.History)) {
		input = g.playthrough.History[g.frameIdx]
		g.mousePt = input.Pos
	}

	// Don't do anything, wait for the player to press a key.
	goToNextFrame := g.JustPressed(ebiten.KeyD) || g.JustPressed(ebiten.KeyRight)
	if goToNextFrame && g.frameIdx < int64(len(g.playthrough.History)) {
		g.world.Step(input)
		g.frameIdx++
	}

	goToPreviousFrame := g.JustPressed(ebiten.KeyA) || g.JustPressed(ebiten.KeyLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		g.frameIdx--

		// I have no better way to go to the previous frame than redoing all the
		// frames from the beginning.
		g.world = g.playthrough.Replay(g.frameIdx)
	}
	g.visWorld.Step(&g.world)
}
