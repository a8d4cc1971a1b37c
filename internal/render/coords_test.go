package render

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestCoordinateRoundTrip(t *testing.T) {
	cs := NewCoordinateSystem(40, 640, 360)

	cases := []struct{ wx, wy float64 }{
		{0, 0},
		{1, 1},
		{-3.5, 7.25},
		{12.125, -0.5},
	}
	for _, tc := range cases {
		sx, sy := cs.ToScreen(tc.wx, tc.wy)
		wx, wy := cs.ToWorld(sx, sy)
		if math.Abs(wx-tc.wx) > 1e-9 || math.Abs(wy-tc.wy) > 1e-9 {
			t.Errorf("round trip of (%v,%v) came back as (%v,%v)", tc.wx, tc.wy, wx, wy)
		}
	}

	sx, sy := cs.ToScreen(2, -1)
	if sx != 720 || sy != 320 {
		t.Errorf("ToScreen(2,-1) = (%v,%v), want (720,320)", sx, sy)
	}
}

func TestRescaleIsAtomicPerFlush(t *testing.T) {
	cs := NewCoordinateSystem(40, 0, 0)
	r := NewRenderer(cs)

	cs.Rescale(80, 10, 10)
	if cs.Scale() != 40 {
		t.Fatalf("staged rescale visible before flush: scale = %v", cs.Scale())
	}

	// The new transform must already be in effect for the tasks of the
	// flush that commits it.
	var seen float64
	r.AddTask(PriorityTerrain, func(dst *ebiten.Image) { seen = cs.Scale() })
	if err := r.Flush(nil); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if seen != 80 {
		t.Errorf("paint action observed scale %v, want 80", seen)
	}
	if ox, oy := cs.Origin(); ox != 10 || oy != 10 {
		t.Errorf("origin = (%v,%v), want (10,10)", ox, oy)
	}
}
