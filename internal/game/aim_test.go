package game

import (
	"testing"

	"go-bastion-td/internal/event"
)

// spawnAdvanced puts an enemy on the road and walks it for the given time,
// so the candidates differ in remaining distance.
func spawnAdvanced(t *testing.T, m *EnemiesManager, id string, walk float64) *Enemy {
	t.Helper()
	e, err := m.Spawn(id, testWaypoints)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	e.Update(secondsNs(walk))
	return e
}

func TestAimStrategies(t *testing.T) {
	m := NewEnemiesManager(event.NewDispatcher())
	front := spawnAdvanced(t, m, "pig", 2)   // furthest along the road
	middle := spawnAdvanced(t, m, "ogre", 1) // most health
	back := spawnAdvanced(t, m, "wolf", 0)   // least health, at spawn
	back.Damage(5)

	candidates := []*Enemy{middle, back, front}
	cases := []struct {
		name   string
		prefer AimStrategy
		want   *Enemy
	}{
		{"first", AimFirst, front},
		{"last", AimLast, back},
		{"strong", AimStrong, middle},
		{"weak", AimWeak, back},
	}
	for _, tc := range cases {
		if got := pickTarget(candidates, tc.prefer); got != tc.want {
			t.Errorf("%s: picked %s, want %s", tc.name, got.Def().ID, tc.want.Def().ID)
		}
	}
}

func TestPickTargetEmpty(t *testing.T) {
	if pickTarget(nil, AimFirst) != nil {
		t.Fatal("pickTarget(nil) should be nil")
	}
}

func TestTowerFiresOnCooldown(t *testing.T) {
	d := event.NewDispatcher()
	enemies := NewEnemiesManager(d)
	projectiles := NewProjectilesManager(d)
	if _, err := enemies.Spawn("ogre", testWaypoints); err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	tw := newTower(TowerDefs["arrow"], Vec2{1, 1}, enemies, projectiles)

	// Cooldown starts at zero, so the first update fires immediately.
	tw.Update(1)
	if projectiles.Count() != 1 {
		t.Fatalf("projectiles after first shot = %d, want 1", projectiles.Count())
	}

	// Inside the fire interval nothing more comes out.
	tw.Update(int64(TowerDefs["arrow"].FireInterval) / 2)
	if projectiles.Count() != 1 {
		t.Fatalf("tower fired inside its interval")
	}

	// Crossing the interval releases the second shot.
	tw.Update(int64(TowerDefs["arrow"].FireInterval))
	if projectiles.Count() != 2 {
		t.Fatalf("projectiles = %d, want 2", projectiles.Count())
	}
}

func TestTowerHoldsFireOutOfRange(t *testing.T) {
	d := event.NewDispatcher()
	enemies := NewEnemiesManager(d)
	projectiles := NewProjectilesManager(d)
	if _, err := enemies.Spawn("pig", []Vec2{{100, 100}, {101, 100}}); err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	tw := newTower(TowerDefs["arrow"], Vec2{0, 0}, enemies, projectiles)
	tw.Update(secondsNs(5))
	if projectiles.Count() != 0 {
		t.Fatalf("tower fired at an enemy out of range")
	}
}

func TestInRangeSkipsEnemiesAwaitingSweep(t *testing.T) {
	m := NewEnemiesManager(event.NewDispatcher())
	dead := spawnAdvanced(t, m, "pig", 0)
	dead.Damage(dead.Health())
	through := spawnAdvanced(t, m, "wolf", 60) // walked past the last waypoint
	if !through.Breached() {
		t.Fatal("wolf should have breached")
	}
	live := spawnAdvanced(t, m, "ogre", 0)

	got := m.InRange(testWaypoints[0], 100)
	if len(got) != 1 || got[0] != live {
		t.Fatalf("InRange = %v, want only the live ogre", got)
	}
}

// A kill landed by the projectile pass must not leave the victim as a
// target for the tower pass of the same frame.
func TestTowerRetargetsAwayFromFreshKill(t *testing.T) {
	d := event.NewDispatcher()
	enemies := NewEnemiesManager(d)
	projectiles := NewProjectilesManager(d)

	victim, err := enemies.Spawn("pig", testWaypoints)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	victim.Update(secondsNs(1)) // closer to the base, AimFirst's pick
	survivor, err := enemies.Spawn("ogre", testWaypoints)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	victim.Damage(victim.Health()) // dies this frame, sweep still pending

	tw := newTower(TowerDefs["sniper"], Vec2{1, 0}, enemies, projectiles)
	tw.Update(1)
	if projectiles.Count() != 1 {
		t.Fatalf("projectiles = %d, want 1", projectiles.Count())
	}
	if got := projectiles.projectiles[0].target; got != survivor {
		t.Fatalf("tower targeted %s, want the survivor", got.Def().ID)
	}
}

func TestProjectileHitAppliesDamageViaBus(t *testing.T) {
	d := event.NewDispatcher()
	enemies := NewEnemiesManager(d)
	projectiles := NewProjectilesManager(d)
	hits := &hitListener{}
	if err := d.RegisterListener(hits, hits.onProjectileHit); err != nil {
		t.Fatalf("RegisterListener: %v", err)
	}

	target, err := enemies.Spawn("ogre", testWaypoints)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	before := target.Health()

	projectiles.Spawn(Vec2{0, 1}, target, 10.0, 15)
	for i := 0; i < 20 && projectiles.Count() > 0; i++ {
		projectiles.Update(secondsNs(0.1))
	}
	if projectiles.Count() != 0 {
		t.Fatal("projectile never resolved")
	}
	if got := target.Health(); got != before-15 {
		t.Fatalf("target health = %d, want %d", got, before-15)
	}
}

func TestProjectileFizzlesOnDeadTarget(t *testing.T) {
	d := event.NewDispatcher()
	enemies := NewEnemiesManager(d)
	projectiles := NewProjectilesManager(d)
	hits := &hitListener{}
	if err := d.RegisterListener(hits, hits.onProjectileHit); err != nil {
		t.Fatalf("RegisterListener: %v", err)
	}

	target, err := enemies.Spawn("pig", testWaypoints)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	projectiles.Spawn(Vec2{3, 3}, target, 5.0, 5)
	target.Damage(target.Health())

	projectiles.Update(secondsNs(0.05))
	if projectiles.Count() != 0 {
		t.Fatal("projectile should fizzle when its target dies")
	}
	if target.Health() != 0 {
		t.Fatalf("fizzled projectile changed health: %d", target.Health())
	}
}
