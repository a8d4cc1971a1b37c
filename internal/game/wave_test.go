package game

import (
	"testing"
	"time"

	"go-bastion-td/internal/config"
	"go-bastion-td/internal/event"
)

func TestWaveReleasesScheduleOverTime(t *testing.T) {
	enemies := NewEnemiesManager(event.NewDispatcher())
	schedule := []SpawnEntry{
		{At: 0, EnemyID: "pig"},
		{At: time.Second, EnemyID: "pig"},
		{At: 2 * time.Second, EnemyID: "wolf"},
	}
	w := newWave(1, schedule, enemies, testWaypoints)

	w.Update(secondsNs(0.5))
	if enemies.Count() != 1 {
		t.Fatalf("after 0.5s: %d enemies, want 1", enemies.Count())
	}

	// One oversized tick releases both remaining entries.
	w.Update(secondsNs(2))
	if enemies.Count() != 3 {
		t.Fatalf("after 2.5s: %d enemies, want 3", enemies.Count())
	}
	if !w.SpawnedAll() {
		t.Fatal("schedule should be exhausted")
	}
	if w.Over() {
		t.Fatal("wave cannot be over while enemies stand")
	}
}

func TestWaveOverWhenFieldClears(t *testing.T) {
	d := event.NewDispatcher()
	enemies := NewEnemiesManager(d)
	w := newWave(1, []SpawnEntry{{At: 0, EnemyID: "pig"}}, enemies, testWaypoints)
	w.Update(1)

	// Kill the only enemy and sweep it out.
	for _, e := range enemies.InRange(testWaypoints[0], 1) {
		e.Damage(e.Health())
	}
	enemies.Update(1)

	if !w.Over() {
		t.Fatal("wave should be over once spawned enemies are gone")
	}
}

func TestMakeScheduleIsDeterministicAndOrdered(t *testing.T) {
	a := makeSchedule(3)
	b := makeSchedule(3)
	if len(a) != len(b) || len(a) != 10 {
		t.Fatalf("schedule lengths: %d, %d, want 10", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("schedule not deterministic at %d: %v vs %v", i, a[i], b[i])
		}
		if i > 0 && a[i].At < a[i-1].At {
			t.Fatalf("schedule out of order at %d", i)
		}
	}
}

// waveWatcher records wave lifecycle events via the ancestor kind.
type waveWatcher struct {
	started []int
	ended   []int
}

func (w *waveWatcher) EventListener() {}

func (w *waveWatcher) onWaveEvent(ev WaveEvent) {
	switch ev.(type) {
	case *WaveStartedEvent:
		w.started = append(w.started, ev.WaveNumber())
	case *WaveEndedEvent:
		w.ended = append(w.ended, ev.WaveNumber())
	}
}

func TestWaveManagerLifecycle(t *testing.T) {
	d := event.NewDispatcher()
	watcher := &waveWatcher{}
	if err := d.RegisterListener(watcher, watcher.onWaveEvent); err != nil {
		t.Fatalf("RegisterListener: %v", err)
	}

	enemies := NewEnemiesManager(d)
	m := NewWaveManager(d, enemies, DefaultLevel())

	if !m.Building() || m.CurrentWave() != 0 {
		t.Fatal("manager should open in a build phase before wave 1")
	}

	// Build phase runs down, then wave 1 starts on its own.
	m.Update(config.BuildPhaseDuration)
	if m.Building() {
		t.Fatal("build phase should have ended")
	}
	if len(watcher.started) != 1 || watcher.started[0] != 1 {
		t.Fatalf("started events = %v, want [1]", watcher.started)
	}

	// Let every enemy spawn and walk off the map; the wave then ends and
	// the next build phase begins.
	for i := 0; i < 300 && !m.Building(); i++ {
		m.Update(secondsNs(1))
		enemies.Update(secondsNs(1))
	}
	if len(watcher.ended) != 1 || watcher.ended[0] != 1 {
		t.Fatalf("ended events = %v, want [1]", watcher.ended)
	}
	if !m.Building() {
		t.Fatal("manager should be building again after the wave")
	}
}

func TestStartWaveSkipsBuildPhase(t *testing.T) {
	d := event.NewDispatcher()
	m := NewWaveManager(d, NewEnemiesManager(d), DefaultLevel())

	m.StartWave()
	if m.Building() || m.CurrentWave() != 1 {
		t.Fatalf("StartWave did not begin wave 1")
	}
	// Calling it again mid-wave does nothing.
	m.StartWave()
	if m.CurrentWave() != 1 {
		t.Fatalf("StartWave mid-wave advanced to %d", m.CurrentWave())
	}
}
