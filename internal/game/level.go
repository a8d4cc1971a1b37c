package game

// Level holds the static layout of a map: the road enemies walk along and
// the spots towers may be built on. Coordinates are in world units.
type Level struct {
	Width      int
	Height     int
	Waypoints  []Vec2
	BuildSpots []Vec2
}

// SpawnPoint is where enemies enter the map.
func (l *Level) SpawnPoint() Vec2 {
	return l.Waypoints[0]
}

// RoadLength returns the total walking distance from spawn to base.
func (l *Level) RoadLength() float64 {
	total := 0.0
	for i := 1; i < len(l.Waypoints); i++ {
		total += l.Waypoints[i].Dist(l.Waypoints[i-1])
	}
	return total
}

// DefaultLevel is the built-in map, a winding S road across a 16x9 field.
func DefaultLevel() *Level {
	return &Level{
		Width:  16,
		Height: 9,
		Waypoints: []Vec2{
			{-8, -2},
			{-4, -2},
			{-4, 2},
			{2, 2},
			{2, -3},
			{6, -3},
			{6, 1},
			{8, 1},
		},
		BuildSpots: []Vec2{
			{-6, -3.2},
			{-6, -0.8},
			{-2.8, 0},
			{-1, 0.8},
			{1, 0.8},
			{0.8, -2},
			{3.2, -1},
			{4.5, -1.8},
			{4.8, 0.5},
			{7, -0.5},
		},
	}
}
