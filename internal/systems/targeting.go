package systems

import (
	"dungeon-core/internal/domain"
)

// ValidationResult - результат проверки цели
type ValidationResult struct {
	Target  *domain.Entity
	Valid   bool
	Message string // Сообщение об ошибке, если Valid == false
}

// ValidateInteraction проверяет, может ли actor взаимодействовать с target.
//
// Параметры:
// - rangeLimit: максимальная дистанция (1.5 для соседней клетки/диагонали).
// - needLOS: нужна ли прямая видимость (true для выстрела, false для предметов под ногами).
func ValidateInteraction(actor, target *domain.Entity, rangeLimit float64, needLOS bool) ValidationResult {
	if target == nil || target.ToBeRemoved() {
		return ValidationResult{Valid: false, Message: "No target."}
	}

	l := actor.Level()
	if l == nil || target.Level() != l {
		return ValidationResult{Valid: false, Message: "The target is too far away."}
	}

	dist := actor.Pos().DistanceTo(target.Pos())
	if dist > rangeLimit {
		return ValidationResult{Valid: false, Message: "The target is too far away."}
	}

	if needLOS && dist > 0 && !HasLineOfSight(l, actor.Pos(), target.Pos()) {
		return ValidationResult{Valid: false, Message: "You cannot see the target."}
	}

	return ValidationResult{Target: target, Valid: true}
}
