package systems

import (
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HasLineOfSight проверяет прямую видимость между двумя точками уровня.
// Алгоритм Брезенхэма, начальная и конечная клетки не проверяются.
func HasLineOfSight(l *domain.Level, p1, p2 domain.Point) bool {
	losLogger := logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"start_pos": p1,
		"end_pos":   p2,
	})

	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	dx := abs(p2.X - x0)
	dy := abs(p2.Y - y0)
	sx, sy := sign(p2.X-x0), sign(p2.Y-y0)
	err := dx - dy

	for {
		cur := domain.Point{X: x0, Y: y0}
		if cur != p1 && cur != p2 && l.BlocksSight(cur) {
			losLogger.WithField("blocking_point", cur).Debug("Line of sight blocked.")
			return false
		}
		if cur == p2 {
			return true
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
