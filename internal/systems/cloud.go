package systems

import (
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DefaultPoisonTurns - сколько ходов действует отравление, если облако не задало свое.
const DefaultPoisonTurns = 3

// DissipatingCloud - поведение облака: существо под облаком получает отравление,
// через Turns ходов облако рассеивается.
// Отравление - отдельный таймер в кольце ходов уровня, а не урон от самого облака.
type DissipatingCloud struct {
	Turns       int
	Damage      int
	PoisonTurns int

	poisoned map[*domain.Entity]*domain.TimedEffect
}

// Act реализует domain.Behavior.
func (c *DissipatingCloud) Act(self *domain.Entity, turn int) {
	if c.Damage > 0 {
		if victim, ok := creatureUnder(self); ok {
			c.poison(self, victim)
		}
	}

	c.Turns--
	if c.Turns > 0 {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "cloud",
		"cloud":     self.Name(),
		"turn":      turn,
	}).Debug("Cloud dissipated")
	self.Kill()
}

// Poisoned возвращает отравление, которое облако наложило на e, пока оно действует.
func (c *DissipatingCloud) Poisoned(e *domain.Entity) (*domain.TimedEffect, bool) {
	effect, ok := c.poisoned[e]
	if !ok || !effect.Active() {
		return nil, false
	}
	return effect, true
}

// poison запускает отравление на жертве. Действующее отравление не складывается.
func (c *DissipatingCloud) poison(self, victim *domain.Entity) {
	if _, ok := c.Poisoned(victim); ok {
		return
	}
	if c.poisoned == nil {
		c.poisoned = make(map[*domain.Entity]*domain.TimedEffect)
	}

	turns := c.PoisonTurns
	if turns <= 0 {
		turns = DefaultPoisonTurns
	}
	effect := domain.DamageOverTime(self.Name(), victim, turns, c.Damage)
	effect.Start(self.Level().Scheduler())
	c.poisoned[victim] = effect

	logger.Log.WithFields(logrus.Fields{
		"component": "cloud",
		"cloud":     self.Name(),
		"victim":    victim.Name(),
		"turns":     turns,
	}).Debug("Creature poisoned")
}

func creatureUnder(self *domain.Entity) (*domain.Entity, bool) {
	l := self.Level()
	if l == nil {
		return nil, false
	}
	tile, ok := l.Tile(self.Pos())
	if !ok {
		return nil, false
	}
	occ, ok := tile.Entity()
	if !ok {
		return nil, false
	}
	e, ok := occ.(*domain.Entity)
	return e, ok && !e.IsDead()
}
