package systems

import (
	"dungeon-core/internal/domain"
	"dungeon-core/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DefaultSightRadius - радиус обзора сущности без компонента SightRadius.
const DefaultSightRadius = 8

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibleTiles возвращает множество клеток уровня, видимых из origin.
func ComputeVisibleTiles(l *domain.Level, origin domain.Point, radius int) map[domain.Point]struct{} {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
		"radius":       radius,
	})

	visible := make(map[domain.Point]struct{})
	if radius <= 0 || !l.InBounds(origin) {
		fovLogger.Debug("FOV calculation skipped for blind or misplaced observer.")
		return visible
	}

	// Центр всегда виден
	visible[origin] = struct{}{}

	// Рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(l, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	fovLogger.WithField("visible_tiles", len(visible)).Debug("FOV calculation complete.")
	return visible
}

func castLight(l *domain.Level, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible map[domain.Point]struct{}) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			p := domain.Point{X: cx + dx*xx + dy*xy, Y: cy + dx*yx + dy*yy}

			if l.InBounds(p) && float64(dx*dx+dy*dy) < radiusSq {
				visible[p] = struct{}{}
			}

			// Логика теней
			if blocked {
				if l.BlocksSight(p) {
					newStart = rSlope
					continue
				}
				// Стена кончилась
				blocked = false
				start = newStart
			} else if l.BlocksSight(p) && j < radius {
				blocked = true
				castLight(l, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// RefreshVision пересчитывает поле зрения сущности, если кэш сброшен,
// и записывает увиденное в ее память карты.
// Возвращает nil, если у сущности нет компонента Vision.
func RefreshVision(e *domain.Entity) *domain.Vision {
	v, err := e.Vision()
	if err != nil {
		return nil
	}
	if !v.IsDirty() {
		return v
	}

	l := e.Level()
	if l == nil {
		v.Store(map[domain.Point]struct{}{})
		return v
	}

	radius := DefaultSightRadius
	if sr, err := e.SightRadius(); err == nil {
		radius = sr.Value
	}
	cells := ComputeVisibleTiles(l, e.Pos(), radius)
	v.Store(cells)

	if mem, err := e.Memory(); err == nil {
		for p := range cells {
			mem.Remember(l, p)
		}
	}
	return v
}
