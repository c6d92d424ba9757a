package domain

import (
	"dungeon-core/internal/composite"
	"dungeon-core/internal/core/types"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Health - очки здоровья.
type Health struct {
	composite.Leaf
	HP     int
	MaxHP  int
	killer string
}

func NewHealth(maxHP int) *Health {
	return &Health{Leaf: composite.NewLeaf(composite.TypeHealth), HP: maxHP, MaxHP: maxHP}
}

func (h *Health) IsDead() bool { return h.HP <= 0 }

// KilledBy - имя источника смертельного урона.
func (h *Health) KilledBy() string { return h.killer }

// Hurt наносит урон и вешает на владельца красную вспышку на один тик.
// Во время рассылки сообщений вспышка откладывается до границы тика.
// Возвращает true, если удар оказался смертельным.
func (h *Health) Hurt(amount int, source string) bool {
	if amount <= 0 || h.IsDead() {
		return false
	}
	h.HP -= amount
	if h.HP < 0 {
		h.HP = 0
	}

	if owner, ok := ownerOf(&h.Leaf); ok && owner.HasChild(composite.TypeGraphicChar) {
		flash := NewGraphicChar(types.Glyph{Fg: HurtFlashFg})
		if owner.Broadcasting() {
			// урон из обработчика сообщения: вспышка переезжает на следующий тик
			owner.Defer(func() error { return owner.AttachOverlay(flash) })
		} else if err := owner.AttachOverlay(flash); err != nil {
			logger.Log.WithField("component", "health").WithError(err).Debug("Hurt flash skipped")
		}
	}

	if h.IsDead() {
		h.killer = source
		logger.Log.WithFields(logrus.Fields{
			"component": "health",
			"killer":    source,
		}).Debug("Entity died")
		return true
	}
	return false
}

// Heal восстанавливает здоровье не выше MaxHP. Возвращает фактически восстановленное.
func (h *Health) Heal(amount int) int {
	if amount <= 0 || h.IsDead() {
		return 0
	}
	before := h.HP
	h.HP = min(h.HP+amount, h.MaxHP)
	return h.HP - before
}
