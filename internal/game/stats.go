package game

// Statistics counts what happened over the run. It subscribes to the enemy
// ancestor kind, so one handler sees kills and breaches alike.
type Statistics struct {
	kills        int
	breaches     int
	wavesCleared int
	goldEarned   int
}

func NewStatistics() *Statistics {
	return &Statistics{}
}

func (s *Statistics) EventListener() {}

func (s *Statistics) Kills() int        { return s.kills }
func (s *Statistics) Breaches() int     { return s.breaches }
func (s *Statistics) WavesCleared() int { return s.wavesCleared }
func (s *Statistics) GoldEarned() int   { return s.goldEarned }

func (s *Statistics) onEnemyEvent(ev EnemyEvent) {
	switch e := ev.(type) {
	case *EnemyDiedEvent:
		s.kills++
		s.goldEarned += e.Reward
	case *EnemyBreachedEvent:
		s.breaches++
	}
}

func (s *Statistics) onWaveEnded(ev *WaveEndedEvent) {
	s.wavesCleared++
}
