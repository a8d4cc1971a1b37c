package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-bastion-td/internal/input"
	"go-bastion-td/internal/render"
)

// State is the lifecycle of a loop: Idle until Start, Running while frames
// are driven, Stopped after Stop. There is no paused state at this layer;
// callers freeze time by stepping with elapsed = 0.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

// nominalFrame is the delta assumed for the very first frame, before any
// wall-clock interval exists.
const nominalFrame = int64(time.Second / 60)

// ErrNotRunning is returned when a frame is requested outside the Running
// state.
var ErrNotRunning = errors.New("engine: loop is not running")

// Loop drives one root object through the frame phases on a wall-clock
// cadence, supplying monotonic nanosecond deltas. Single-threaded and
// cooperative: every phase runs synchronously on the caller's goroutine.
type Loop struct {
	root     Root
	renderer *render.Renderer
	inputs   *input.Queue

	now      func() time.Time // swappable for tests
	last     time.Time
	maxDelta int64
	state    State
}

// NewLoop creates an idle loop around the given root, renderer and input
// queue. maxDelta clamps the measured frame delta so a long stall does not
// turn into a simulation jump.
func NewLoop(root Root, renderer *render.Renderer, inputs *input.Queue, maxDelta int64) *Loop {
	return &Loop{
		root:     root,
		renderer: renderer,
		inputs:   inputs,
		now:      time.Now,
		maxDelta: maxDelta,
	}
}

// State returns the loop's lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Start moves the loop from Idle to Running. Starting a stopped loop is not
// supported; build a new one.
func (l *Loop) Start() {
	if l.state == StateIdle {
		l.state = StateRunning
	}
}

// Stop ends the loop. Observed only between frames; there is no
// mid-operation cancellation.
func (l *Loop) Stop() {
	l.state = StateStopped
}

// RunFrame measures the elapsed wall-clock time since the previous frame
// (nominal 1/60 s for the first) and runs one full frame against dst. The
// host presents dst after this returns.
func (l *Loop) RunFrame(dst *ebiten.Image) error {
	if l.state != StateRunning {
		return ErrNotRunning
	}
	now := l.now()
	elapsed := nominalFrame
	if !l.last.IsZero() {
		elapsed = now.Sub(l.last).Nanoseconds()
	}
	l.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if l.maxDelta > 0 && elapsed > l.maxDelta {
		elapsed = l.maxDelta
	}
	return l.run(dst, elapsed)
}

// Step runs one frame with an explicit elapsed time: drain input, update,
// render, flush. Pause states call it with elapsed = 0 to keep painting a
// frozen world. An uncaught failure in any phase is fatal to that frame: it
// is logged, the render queue is cleared, and a *FatalFrameError surfaces to
// the caller. The queue is empty when Step returns, always.
func (l *Loop) Step(dst *ebiten.Image, elapsed int64) error {
	if l.state != StateRunning {
		return ErrNotRunning
	}
	// Keep the wall-clock anchor fresh so a run of explicit steps (a pause
	// screen) does not resume with the whole pause as one delta.
	l.last = l.now()
	return l.run(dst, elapsed)
}

func (l *Loop) run(dst *ebiten.Image, elapsed int64) error {
	if err := l.frame(dst, elapsed); err != nil {
		log.Printf("engine: frame skipped: %v", err)
		l.renderer.Clear()
		return err
	}
	return nil
}

// frame runs the phases, converting a panic into a frame-fatal error.
func (l *Loop) frame(dst *ebiten.Image, elapsed int64) (err error) {
	phase := "input"
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			err = &FatalFrameError{Phase: phase, cause: cause}
		}
	}()

	for _, ev := range l.inputs.Drain() {
		if !ev.Consumed() {
			l.root.ProcessInput(ev)
		}
	}

	phase = "update"
	l.root.Update(elapsed)

	phase = "render"
	l.root.Render(l.renderer)

	phase = "flush"
	if flushErr := l.renderer.Flush(dst); flushErr != nil {
		return &FatalFrameError{Phase: phase, cause: flushErr}
	}
	return nil
}

// FatalFrameError reports an unrecovered failure during a frame phase. The
// frame was skipped and the render queue cleared; the host decides whether
// to continue or stop.
type FatalFrameError struct {
	Phase string
	cause error
}

// Error implements the error interface.
func (e *FatalFrameError) Error() string {
	return fmt.Sprintf("engine: fatal error in %s phase: %v", e.Phase, e.cause)
}

// Unwrap returns the underlying cause.
func (e *FatalFrameError) Unwrap() error {
	return e.cause
}
