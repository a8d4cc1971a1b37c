package game

import "testing"

func TestDefaultLevelGeometry(t *testing.T) {
	l := DefaultLevel()
	if len(l.Waypoints) < 2 {
		t.Fatal("road needs at least two waypoints")
	}
	if l.SpawnPoint() != l.Waypoints[0] {
		t.Errorf("SpawnPoint = %+v, want the first waypoint %+v", l.SpawnPoint(), l.Waypoints[0])
	}
	if l.RoadLength() <= 0 {
		t.Errorf("RoadLength = %v, want > 0", l.RoadLength())
	}
	if len(l.BuildSpots) == 0 {
		t.Error("level has no build spots")
	}
	// Degenerate zero-length segments would stall enemies mid-road.
	for i := 1; i < len(l.Waypoints); i++ {
		if l.Waypoints[i] == l.Waypoints[i-1] {
			t.Errorf("waypoints %d and %d coincide", i-1, i)
		}
	}
}
