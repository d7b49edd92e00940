package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLayout_SameAspectRatio(t *testing.T) {
	var g Gui
	w, h := g.Layout(1600, 900)
	assert.Equal(t, 1600, w)
	assert.Equal(t, 900, h)
	assert.Equal(t, NewRectangleI(0, 0, GameWidth, GameHeight), g.gameArea)
}

func TestLayout_WideWindow(t *testing.T) {
	var g Gui
	w, h := g.Layout(3200, 900)
	assert.Equal(t, 3200, w)
	assert.Equal(t, 900, h)
	assert.Equal(t, Pt{800, 0}, g.gameArea.Min)
	assert.Equal(t, Pt{GameWidth, GameHeight}, g.gameArea.Size())
	assert.Equal(t, Pt{0, 0}, g.ScreenToGame(Pt{800, 0}))
	assert.Equal(t, Pt{900, 10}, g.GameToScreen(Pt{100, 10}))
}

func TestLayout_TallWindow(t *testing.T) {
	var g Gui
	w, h := g.Layout(1000, 1000)
	assert.Equal(t, 1600, w)
	assert.Equal(t, 1600, h)
	assert.Equal(t, Pt{0, 350}, g.gameArea.Min)
}

func TestLayout_DebugArea(t *testing.T) {
	var g Gui
	g.enableDebugAreas = true
	g.Layout(1000, 1000)
	// Game and debug area are centered together.
	assert.Equal(t, Pt{0, 320}, g.gameArea.Min)
	assert.Equal(t, NewRectangleI(0, 1220, GameWidth, DebugHeight), g.debugArea)
}

func TestLayout_MinimizedWindow(t *testing.T) {
	var g Gui
	w, h := g.Layout(0, 0)
	assert.Equal(t, int(GameWidth), w)
	assert.Equal(t, int(GameHeight), h)
}
