// Package component holds small state types shared by gameplay objects.
package component

// Animation is a frame clock accumulator. It converts irregular frame
// deltas into discrete animation steps: elapsed time accumulates and the
// frame index advances once per full frame duration, several times in one
// update when the frame rate dips. Mutated only during the update phase.
type Animation struct {
	frameTime  int64 // nanoseconds per animation frame
	frameCount int
	loop       bool

	frame int
	acc   int64
}

// NewAnimation creates an animation of frameCount frames shown frameTime
// nanoseconds each. A looping animation wraps to frame zero; a non-looping
// one holds its last frame.
func NewAnimation(frameTime int64, frameCount int, loop bool) *Animation {
	if frameCount < 1 {
		frameCount = 1
	}
	return &Animation{frameTime: frameTime, frameCount: frameCount, loop: loop}
}

// Update advances the clock by elapsed nanoseconds. After it returns the
// accumulated remainder is strictly less than one frame duration, unless the
// animation has ended.
func (a *Animation) Update(elapsed int64) {
	a.acc += elapsed
	for !a.Ended() && a.acc >= a.frameTime {
		a.acc -= a.frameTime
		if a.loop {
			a.frame = (a.frame + 1) % a.frameCount
		} else {
			a.frame++
		}
	}
}

// Frame returns the current frame index.
func (a *Animation) Frame() int {
	return a.frame
}

// Ended reports whether a non-looping animation reached its last frame.
// Looping animations never end.
func (a *Animation) Ended() bool {
	return !a.loop && a.frame+1 >= a.frameCount
}

// Remainder returns the accumulated nanoseconds not yet converted into a
// frame step.
func (a *Animation) Remainder() int64 {
	return a.acc
}

// Reset rewinds to the first frame and drops any accumulated time.
func (a *Animation) Reset() {
	a.frame = 0
	a.acc = 0
}
