package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuctuc-telu/shuttle-tracker/internal/models"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, lerp(0, 10, 0))
	assert.Equal(t, 10.0, lerp(0, 10, 1))
	assert.Equal(t, 5.0, lerp(0, 10, 0.5))
}

func TestShuttleState_Step(t *testing.T) {
	s := &shuttleState{VehicleID: 1, StopIndex: 0, Progress: 0}

	lat, lng, halte := s.step(0.5)
	from := models.RouteStops[0]
	to := models.RouteStops[1]
	assert.Equal(t, to.Name, halte, "shuttle reports the halte it is approaching")
	assert.InDelta(t, (from.Lat+to.Lat)/2, lat, 1e-9)
	assert.InDelta(t, (from.Lng+to.Lng)/2, lng, 1e-9)
}

func TestShuttleState_StepAdvancesSegments(t *testing.T) {
	s := &shuttleState{VehicleID: 1, StopIndex: 0, Progress: 0}

	_, _, halte := s.step(1.25)
	assert.Equal(t, 1, s.StopIndex)
	assert.InDelta(t, 0.25, s.Progress, 1e-9)
	assert.Equal(t, models.RouteStops[2].Name, halte)
}

func TestShuttleState_StepWrapsAroundLoop(t *testing.T) {
	last := len(models.RouteStops) - 1
	s := &shuttleState{VehicleID: 1, StopIndex: last, Progress: 0.9}

	_, _, halte := s.step(0.2)
	assert.Equal(t, 0, s.StopIndex, "loop wraps back to the first stop")
	assert.Equal(t, models.RouteStops[1].Name, halte)
}
