package systems

import (
	"dungeon-core/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	Target    domain.Point
	HasMoved  bool
	BlockedBy *domain.Entity // Если врезались в кого-то (для атаки)
	IsWall    bool           // Если врезались в стену или край карты
}

// CalculateMove проверяет шаг на (dx, dy). Не меняет состояние мира!
func CalculateMove(e *domain.Entity, dx, dy int) MovementResult {
	l := e.Level()
	target := e.Pos().Shift(dx, dy)
	res := MovementResult{Target: target}

	if l == nil {
		res.IsWall = true
		return res
	}
	tile, ok := l.Tile(target)
	if !ok {
		res.IsWall = true
		return res
	}

	if occ, ok := tile.Entity(); ok {
		if other, ok := occ.(*domain.Entity); ok && other != e {
			res.BlockedBy = other
			return res
		}
	}
	if tile.IsSolid() {
		res.IsWall = true
		return res
	}

	m, err := e.Mover()
	res.HasMoved = err == nil && m.CanMove(target, l)
	return res
}

// Step выполняет шаг, если он возможен.
func Step(e *domain.Entity, dx, dy int) MovementResult {
	res := CalculateMove(e, dx, dy)
	if !res.HasMoved {
		return res
	}
	m, _ := e.Mover()
	res.HasMoved = m.TryMove(res.Target, nil)
	return res
}
