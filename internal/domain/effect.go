package domain

import (
	"dungeon-core/internal/scheduler"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// EffectFunc применяет один тик эффекта к цели.
type EffectFunc func(target *Entity, turn int)

// TimedEffect - непространственный участник кольца ходов с ограниченным временем жизни.
// Каждый свой ход применяет эффект к цели, по истечении TTL освобождает себя сам.
type TimedEffect struct {
	Name   string
	Target *Entity

	ttl   int
	apply EffectFunc
	ring  *scheduler.ActionScheduler
}

func NewTimedEffect(name string, target *Entity, ttl int, apply EffectFunc) *TimedEffect {
	return &TimedEffect{Name: name, Target: target, ttl: ttl, apply: apply}
}

// Start регистрирует эффект в кольце ходов.
func (t *TimedEffect) Start(ring *scheduler.ActionScheduler) {
	t.ring = ring
	ring.Register(t)
}

// Active - эффект стоит в кольце ходов.
func (t *TimedEffect) Active() bool { return t.ring != nil }

// Remaining - сколько ходов эффекту осталось.
func (t *TimedEffect) Remaining() int { return t.ttl }

// TakeTurn реализует scheduler.Actor.
func (t *TimedEffect) TakeTurn(turn int) {
	if t.ttl <= 0 || t.Target == nil || t.Target.ToBeRemoved() || t.Target.IsDead() {
		t.expire()
		return
	}
	if t.apply != nil {
		t.apply(t.Target, turn)
	}
	t.ttl--
	if t.ttl <= 0 {
		t.expire()
	}
}

func (t *TimedEffect) expire() {
	if t.ring == nil {
		return
	}
	t.ring.Release(t)
	logger.Log.WithFields(logrus.Fields{
		"component": "effect",
		"effect":    t.Name,
	}).Debug("Effect expired")
	t.ring = nil
}

// DamageOverTime - эффект, наносящий урон каждый ход (яд, горение).
func DamageOverTime(name string, target *Entity, ttl, amount int) *TimedEffect {
	return NewTimedEffect(name, target, ttl, func(e *Entity, _ int) {
		h, err := e.Health()
		if err != nil {
			return
		}
		if h.Hurt(amount, name) {
			e.Kill()
		}
	})
}
