package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestPlaythroughFilename(t *testing.T) {
	row := dbRow{
		startMoment:       time.Date(2025, 12, 31, 23, 59, 7, 0, time.UTC),
		simulationVersion: 1,
		inputVersion:      2,
	}
	assert.Equal(t, "vali/20251231-235907.newyear-1-2",
		PlaythroughFilename("vali", row))
}
