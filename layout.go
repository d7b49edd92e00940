package main

// Visual areas
// ------------
//
// - The game area: the viewport of the World's camera. Has a fixed size,
// known at compile time, with the aspect ratio of a typical monitor.
// - The debug area: a strip under the game area, with the playback controls.
// It has a fixed size known at compile time but the decision to display it
// or not happens at runtime.
// - The screen: contains the game area, the debug area if it is displayed
// and any margins necessary to fill in the application window on the OS. Its
// size is known only at run time.

const GameWidth = int64(1600)
const GameHeight = int64(900)
const DebugHeight = int64(60)

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the application window's actual width and height, via
	// outsideWidth, outsideHeight. I have to return the size I want, in pixels,
	// for the bitmap that will be drawn in the window.
	//
	// The way it works:
	// - I can return any size I want.
	// - In the Draw method, I will receive the screen bitmap, which will have
	// the size in pixels that I return here.
	// - The screen bitmap from Draw method will be scaled automatically by
	// ebitengine to fit inside the window, preserving its aspect ratio.
	//
	// What I want:
	// - Cover the entire window with the night sky, even if the scene only
	// occupies the game area.
	// - Have a game area with a fixed size, so that the World's camera always
	// has the same viewport, no matter the window.
	//
	// Solution:
	// - Compute screenWidth and screenHeight so that the aspect ratio of the
	// screen bitmap is the same as the aspect ratio of the window.
	// - Make the game area (plus the debug area, if enabled) as large as it
	// can be while still fitting inside the screen. This means either
	// screenWidth = gameWidth or screenHeight = gameHeight.
	//
	// If aspectRatio(screen) < aspectRatio(game), the screen is thinner than
	// the game, so the game fills the width of the screen and there is space
	// left at the top and bottom. Otherwise the game fills the height.
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return int(GameWidth), int(GameHeight)
	}
	screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameWidth := GameWidth
	gameHeight := GameHeight
	if g.enableDebugAreas {
		gameHeight += DebugHeight
	}
	gameAspectRatio := float64(gameWidth) / float64(gameHeight)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = int(gameWidth)
		// screenAspectRatio = screenWidth / screenHeight, which means:
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = int(gameHeight)
		// screenAspectRatio = screenWidth / screenHeight, which means:
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}

	// Define the game area relative to the total screen area.
	g.gameArea = NewRectangleI(
		(int64(screenWidth)-gameWidth)/2,
		(int64(screenHeight)-gameHeight)/2,
		GameWidth,
		GameHeight)

	// Define the debug area relative to the total screen area.
	g.debugArea = NewRectangleI(
		g.gameArea.Min.X,
		g.gameArea.Max.Y,
		GameWidth,
		DebugHeight)
	return
}

func (g *Gui) ScreenToGame(pt Pt) Pt {
	return pt.Minus(g.gameArea.Min)
}

func (g *Gui) GameToScreen(pt Pt) Pt {
	return pt.Plus(g.gameArea.Min)
}
