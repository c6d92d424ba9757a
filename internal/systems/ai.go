package systems

import (
	"math/rand"

	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AggroRadius - дальше этого расстояния монстр не преследует цель.
const AggroRadius = 10

// MonsterAI - поведение монстра: атакует соседнего врага, преследует видимого,
// иначе бродит случайно.
type MonsterAI struct {
	Damage int
	Rng    *rand.Rand
}

// Act реализует domain.Behavior.
func (ai *MonsterAI) Act(self *domain.Entity, turn int) {
	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"npc":       self.Name(),
		"turn":      turn,
	})

	target, ok := ClosestSeenHostile(self)
	if !ok {
		ai.wander(self)
		aiLogger.Debug("No target visible. Action: WANDER")
		return
	}

	dist := self.Pos().DistanceTo(target.Pos())
	switch {
	case self.Pos().IsAdjacent(target.Pos()):
		ApplyAttack(self, target, ai.Damage)
		aiLogger.WithField("target", target.Name()).Debug("Target in attack range. Action: ATTACK")
	case dist > AggroRadius:
		aiLogger.WithField("distance", dist).Debug("Target out of aggro range. Action: WAIT")
	default:
		dx, dy := calculateSmartMove(self, target)
		if dx == 0 && dy == 0 {
			aiLogger.Debug("Path is blocked. Action: WAIT")
			return
		}
		Step(self, dx, dy)
		aiLogger.WithFields(logrus.Fields{"dx": dx, "dy": dy}).Debug("Action: MOVE")
	}
}

func (ai *MonsterAI) wander(self *domain.Entity) {
	if ai.Rng == nil {
		return
	}
	Step(self, ai.Rng.Intn(3)-1, ai.Rng.Intn(3)-1)
}

// Внутренние утилиты (приватные для пакета systems)

func calculateSmartMove(npc, target *domain.Entity) (int, int) {
	dxRaw := target.Pos().X - npc.Pos().X
	dyRaw := target.Pos().Y - npc.Pos().Y

	stepX := sign(dxRaw)
	stepY := sign(dyRaw)

	// Попытка 1: Идеальный путь
	if CalculateMove(npc, stepX, stepY).HasMoved {
		return stepX, stepY
	}

	// Попытка 2: Smart Sliding (выбор приоритетной оси)
	if abs(dxRaw) > abs(dyRaw) {
		if stepX != 0 && CalculateMove(npc, stepX, 0).HasMoved {
			return stepX, 0
		}
		if stepY != 0 && CalculateMove(npc, 0, stepY).HasMoved {
			return 0, stepY
		}
	} else {
		if stepY != 0 && CalculateMove(npc, 0, stepY).HasMoved {
			return 0, stepY
		}
		if stepX != 0 && CalculateMove(npc, stepX, 0).HasMoved {
			return stepX, 0
		}
	}

	return 0, 0 // Тупик
}
