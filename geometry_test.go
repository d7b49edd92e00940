package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRectContainsPt(t *testing.T) {
	r := Rectangle{Pt{10, 20}, Pt{30, 50}}
	assert.True(t, r.ContainsPt(Pt{10, 20}))
	assert.True(t, r.ContainsPt(Pt{10, 25}))
	assert.True(t, r.ContainsPt(Pt{15, 25}))
	assert.True(t, r.ContainsPt(Pt{30, 50}))
	assert.False(t, r.ContainsPt(Pt{9, 20}))
	assert.False(t, r.ContainsPt(Pt{10, 19}))
	assert.False(t, r.ContainsPt(Pt{31, 50}))
	assert.False(t, r.ContainsPt(Pt{30, 51}))
	assert.False(t, r.ContainsPt(Pt{31, 51}))
}

func TestNewRectangleI(t *testing.T) {
	r := NewRectangleI(100, 50, 300, 20)
	assert.Equal(t, Pt{100, 50}, r.Min)
	assert.Equal(t, Pt{400, 70}, r.Max)
	assert.Equal(t, Pt{300, 20}, r.Size())
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-3))
	assert.Equal(t, 0.0, Clamp01(0))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 1.0, Clamp01(1))
	assert.Equal(t, 1.0, Clamp01(7.5))
}
