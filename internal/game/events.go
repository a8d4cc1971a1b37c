package game

import "go-bastion-td/internal/event"

// EnemyEvent is the shared shape of every enemy-related event. Handlers
// registered against KindEnemy receive died and breached events alike.
type EnemyEvent interface {
	event.Event
	Enemy() *Enemy
}

// WaveEvent is the shared shape of wave lifecycle events.
type WaveEvent interface {
	event.Event
	WaveNumber() int
}

var (
	KindEnemy         = event.NewKind[EnemyEvent]("enemy", nil)
	KindEnemyDied     = event.NewKind[*EnemyDiedEvent]("enemy.died", KindEnemy)
	KindEnemyBreached = event.NewKind[*EnemyBreachedEvent]("enemy.breached", KindEnemy)

	KindWave        = event.NewKind[WaveEvent]("wave", nil)
	KindWaveStarted = event.NewKind[*WaveStartedEvent]("wave.started", KindWave)
	KindWaveEnded   = event.NewKind[*WaveEndedEvent]("wave.ended", KindWave)

	KindProjectileHit  = event.NewKind[*ProjectileHitEvent]("projectile.hit", nil)
	KindPauseRequested = event.NewKind[*PauseRequestedEvent]("ui.pause", nil)
	KindGameOver       = event.NewKind[*GameOverEvent]("game.over", nil)
)

// EnemyDiedEvent fires when a tower kill removes an enemy from the field.
type EnemyDiedEvent struct {
	event.Base
	enemy  *Enemy
	Reward int
}

func NewEnemyDiedEvent(source any, enemy *Enemy, reward int) *EnemyDiedEvent {
	return &EnemyDiedEvent{Base: event.NewBase(source), enemy: enemy, Reward: reward}
}

func (e *EnemyDiedEvent) Enemy() *Enemy { return e.enemy }

// EnemyBreachedEvent fires when an enemy walks past the last waypoint.
type EnemyBreachedEvent struct {
	event.Base
	enemy  *Enemy
	Damage int
}

func NewEnemyBreachedEvent(source any, enemy *Enemy, damage int) *EnemyBreachedEvent {
	return &EnemyBreachedEvent{Base: event.NewBase(source), enemy: enemy, Damage: damage}
}

func (e *EnemyBreachedEvent) Enemy() *Enemy { return e.enemy }

// WaveStartedEvent fires when the build phase ends and spawning begins.
type WaveStartedEvent struct {
	event.Base
	number int
}

func NewWaveStartedEvent(source any, number int) *WaveStartedEvent {
	return &WaveStartedEvent{Base: event.NewBase(source), number: number}
}

func (e *WaveStartedEvent) WaveNumber() int { return e.number }

// WaveEndedEvent fires when a wave's last enemy is dead or through.
type WaveEndedEvent struct {
	event.Base
	number int
}

func NewWaveEndedEvent(source any, number int) *WaveEndedEvent {
	return &WaveEndedEvent{Base: event.NewBase(source), number: number}
}

func (e *WaveEndedEvent) WaveNumber() int { return e.number }

// ProjectileHitEvent fires when a projectile reaches its target.
type ProjectileHitEvent struct {
	event.Base
	Target *Enemy
	Damage int
}

func NewProjectileHitEvent(source any, target *Enemy, damage int) *ProjectileHitEvent {
	return &ProjectileHitEvent{Base: event.NewBase(source), Target: target, Damage: damage}
}

// PauseRequestedEvent asks whoever drives the loop to suspend simulation.
type PauseRequestedEvent struct {
	event.Base
}

func NewPauseRequestedEvent(source any) *PauseRequestedEvent {
	return &PauseRequestedEvent{Base: event.NewBase(source)}
}

// GameOverEvent fires once when the player's base health reaches zero.
type GameOverEvent struct {
	event.Base
}

func NewGameOverEvent(source any) *GameOverEvent {
	return &GameOverEvent{Base: event.NewBase(source)}
}
