package ui

import "testing"

func TestButtonContains(t *testing.T) {
	b := &Button{X: 100, Y: 50, Radius: 10}
	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 100, 50, true},
		{"on edge", 110, 50, true},
		{"inside diagonal", 106, 56, true},
		{"just outside", 110.5, 50, false},
		{"corner of bounding box", 110, 60, false},
	}
	for _, tc := range cases {
		if got := b.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("%s: Contains(%v, %v) = %v, want %v", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestNewFace(t *testing.T) {
	face, err := NewFace(16)
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	if face == nil {
		t.Fatal("NewFace returned a nil face")
	}
}
