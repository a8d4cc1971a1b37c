package game

// AimStrategy decides which of two candidate targets a tower prefers.
// It reports whether a should be shot before b.
type AimStrategy func(a, b *Enemy) bool

// AimFirst prefers the enemy closest to the base.
func AimFirst(a, b *Enemy) bool {
	return a.RemainingDistance() < b.RemainingDistance()
}

// AimLast prefers the enemy furthest from the base.
func AimLast(a, b *Enemy) bool {
	return a.RemainingDistance() > b.RemainingDistance()
}

// AimStrong prefers the enemy with the most health left.
func AimStrong(a, b *Enemy) bool {
	return a.Health() > b.Health()
}

// AimWeak prefers the enemy with the least health left.
func AimWeak(a, b *Enemy) bool {
	return a.Health() < b.Health()
}

// aimModes lists the rotation a selected tower cycles through.
var aimModes = []struct {
	Name   string
	Prefer AimStrategy
}{
	{"first", AimFirst},
	{"last", AimLast},
	{"strong", AimStrong},
	{"weak", AimWeak},
}

// pickTarget returns the preferred enemy among candidates, or nil.
func pickTarget(candidates []*Enemy, prefer AimStrategy) *Enemy {
	var best *Enemy
	for _, e := range candidates {
		if best == nil || prefer(e, best) {
			best = e
		}
	}
	return best
}
