package game

import (
	"time"

	"go-bastion-td/internal/config"
	"go-bastion-td/internal/event"
)

// WaveManager alternates between build phases and waves, announcing each
// transition on the bus.
type WaveManager struct {
	dispatcher *event.Dispatcher
	enemies    *EnemiesManager
	waypoints  []Vec2
	number     int
	current    *Wave
	building   bool
	buildLeft  int64
}

func NewWaveManager(dispatcher *event.Dispatcher, enemies *EnemiesManager, level *Level) *WaveManager {
	return &WaveManager{
		dispatcher: dispatcher,
		enemies:    enemies,
		waypoints:  level.Waypoints,
		building:   true,
		buildLeft:  config.BuildPhaseDuration,
	}
}

// CurrentWave is the number of the running or most recently finished wave.
func (m *WaveManager) CurrentWave() int {
	return m.number
}

// Building reports whether the manager is in a build phase.
func (m *WaveManager) Building() bool {
	return m.building
}

// TimeToWave is the build phase time left before the next wave.
func (m *WaveManager) TimeToWave() time.Duration {
	if !m.building {
		return 0
	}
	return time.Duration(m.buildLeft)
}

func (m *WaveManager) Update(elapsed int64) {
	if m.building {
		m.buildLeft -= elapsed
		if m.buildLeft <= 0 {
			m.StartWave()
		}
		return
	}
	m.current.Update(elapsed)
	if m.current.Over() {
		m.announce(NewWaveEndedEvent(m, m.number))
		m.current = nil
		m.building = true
		m.buildLeft = config.BuildPhaseDuration
	}
}

// StartWave ends the build phase early and releases the next wave.
func (m *WaveManager) StartWave() {
	if !m.building {
		return
	}
	m.building = false
	m.buildLeft = 0
	m.number++
	m.current = newWave(m.number, makeSchedule(m.number), m.enemies, m.waypoints)
	m.announce(NewWaveStartedEvent(m, m.number))
}

func (m *WaveManager) announce(ev event.Event) {
	if err := m.dispatcher.Dispatch(ev); err != nil {
		panic(err)
	}
}
