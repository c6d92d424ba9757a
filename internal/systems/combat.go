package systems

import (
	"fmt"

	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ApplyAttack наносит урон цели. Убитая цель убирается из подземелья.
// Возвращает строку для журнала сообщений.
func ApplyAttack(attacker, target *domain.Entity, damage int) string {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name(),
		"target_id":     target.ID,
		"target_name":   target.Name(),
	})

	h, err := target.Health()
	if err != nil {
		combatLogger.Debug("Attack ineffective: target has no Health.")
		return fmt.Sprintf("%s hits the %s to no effect.", attacker.Name(), target.Name())
	}
	if h.IsDead() {
		return fmt.Sprintf("%s kicks the corpse of the %s.", attacker.Name(), target.Name())
	}

	// Минимум 1
	damage = max(damage, 1)

	hpBefore := h.HP
	died := h.Hurt(damage, attacker.Name())

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    h.HP,
		"target_died": died,
	}).Debug("Attack resolved.")

	msg := fmt.Sprintf("%s hits the %s for %d.", attacker.Name(), target.Name(), damage)
	if died {
		target.Kill()
		msg += fmt.Sprintf(" The %s dies.", target.Name())
	}
	return msg
}
