package game

import (
	"log"
	"math/rand"
	"time"

	"go-bastion-td/internal/config"
)

// SpawnEntry schedules one enemy at an offset from the wave's start.
type SpawnEntry struct {
	At      time.Duration
	EnemyID string
}

// Wave releases its schedule onto the road as simulated time accumulates.
// A large frame delta can release several entries at once.
type Wave struct {
	number    int
	schedule  []SpawnEntry
	enemies   *EnemiesManager
	waypoints []Vec2
	next      int
	acc       int64
}

func newWave(number int, schedule []SpawnEntry, enemies *EnemiesManager, waypoints []Vec2) *Wave {
	return &Wave{
		number:    number,
		schedule:  schedule,
		enemies:   enemies,
		waypoints: waypoints,
	}
}

func (w *Wave) Number() int { return w.number }

func (w *Wave) Update(elapsed int64) {
	w.acc += elapsed
	for w.next < len(w.schedule) && int64(w.schedule[w.next].At) <= w.acc {
		entry := w.schedule[w.next]
		w.next++
		if _, err := w.enemies.Spawn(entry.EnemyID, w.waypoints); err != nil {
			log.Printf("wave %d: %v", w.number, err)
		}
	}
}

// SpawnedAll reports whether every scheduled enemy has been released.
func (w *Wave) SpawnedAll() bool {
	return w.next >= len(w.schedule)
}

// Over reports whether the wave is spent and the field is clear.
func (w *Wave) Over() bool {
	return w.SpawnedAll() && w.enemies.AllDead()
}

// makeSchedule builds wave n's spawn list. Waves grow longer and denser,
// and ogres join in from wave three. The jitter source is seeded with the
// wave number so a given wave always plays out the same way.
func makeSchedule(n int) []SpawnEntry {
	count := 4 + 2*n
	interval := 900*time.Millisecond - time.Duration(n)*40*time.Millisecond
	if interval < 300*time.Millisecond {
		interval = 300 * time.Millisecond
	}
	rng := rand.New(rand.NewSource(int64(n)))
	entries := make([]SpawnEntry, 0, count)
	at := time.Duration(0)
	for i := 0; i < count; i++ {
		id := "pig"
		switch {
		case n >= 3 && i%5 == 4:
			id = "ogre"
		case n >= 2 && i%3 == 2:
			id = "wolf"
		}
		entries = append(entries, SpawnEntry{At: at, EnemyID: id})
		at += interval + time.Duration(rng.Int63n(config.EnemySpawnJitter))
	}
	return entries
}
