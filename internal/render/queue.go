package render

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// PaintFunc is a deferred paint action. It must only draw onto dst; game
// state reads belong in the render phase that created the closure.
type PaintFunc func(dst *ebiten.Image)

// Task is one queued paint action tagged with its draw layer.
type Task struct {
	Priority Priority
	Paint    PaintFunc
}

// Queue buffers paint actions submitted during the render phase. It owns its
// tasks for exactly one frame: Flush drains it completely, success or not.
type Queue struct {
	tasks []Task
}

// Add appends a paint action. It never executes anything synchronously.
func (q *Queue) Add(priority Priority, paint PaintFunc) {
	q.tasks = append(q.tasks, Task{Priority: priority, Paint: paint})
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Clear drops all queued tasks without executing them.
func (q *Queue) Clear() {
	q.tasks = q.tasks[:0]
}

// Flush executes every queued action in non-decreasing priority order,
// stable within a layer, then clears the queue. A failing paint action
// aborts the remainder of the flush and surfaces as a *PaintError; the queue
// is cleared regardless so the next frame starts empty.
func (q *Queue) Flush(dst *ebiten.Image) error {
	defer q.Clear()
	sort.SliceStable(q.tasks, func(i, j int) bool {
		return q.tasks[i].Priority < q.tasks[j].Priority
	})
	for i := range q.tasks {
		if err := runPaint(&q.tasks[i], dst); err != nil {
			return err
		}
	}
	return nil
}

// runPaint executes one task, converting a panic into a wrapped error.
func runPaint(t *Task, dst *ebiten.Image) (err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			err = &PaintError{Priority: t.Priority, cause: cause}
		}
	}()
	t.Paint(dst)
	return nil
}

// PaintError wraps a failure raised by a paint action during a flush.
type PaintError struct {
	Priority Priority
	cause    error
}

// Error implements the error interface.
func (e *PaintError) Error() string {
	return fmt.Sprintf("render: %s paint action failed: %v", e.Priority, e.cause)
}

// Unwrap returns the underlying cause.
func (e *PaintError) Unwrap() error {
	return e.cause
}
