package game

import (
	"go-bastion-td/internal/config"
	"go-bastion-td/internal/event"
)

// Player tracks base health and gold. It earns gold from kills and loses
// health from breaches by listening on the bus rather than being called by
// the managers directly.
type Player struct {
	dispatcher *event.Dispatcher
	health     int
	gold       int
}

func NewPlayer(dispatcher *event.Dispatcher) *Player {
	return &Player{
		dispatcher: dispatcher,
		health:     config.BaseHealth,
		gold:       config.StartingGold,
	}
}

func (p *Player) EventListener() {}

func (p *Player) Health() int { return p.health }
func (p *Player) Gold() int   { return p.gold }

// AddGold credits the player, e.g. a kill reward or a sale refund.
func (p *Player) AddGold(amount int) {
	p.gold += amount
}

// SpendGold debits the price if the player can afford it.
func (p *Player) SpendGold(amount int) bool {
	if p.gold < amount {
		return false
	}
	p.gold -= amount
	return true
}

func (p *Player) onEnemyDied(ev *EnemyDiedEvent) {
	p.gold += ev.Reward
}

func (p *Player) onEnemyBreached(ev *EnemyBreachedEvent) {
	if p.health <= 0 {
		return
	}
	p.health -= ev.Damage
	if p.health <= 0 {
		p.health = 0
		if err := p.dispatcher.Dispatch(NewGameOverEvent(p)); err != nil {
			panic(err)
		}
	}
}
