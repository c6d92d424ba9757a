package domain

import "math"

// Point - координата клетки на уровне.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Nowhere - координата сущности, которая еще не размещена.
var Nowhere = Point{X: -1, Y: -1}

// DistanceTo возвращает точное расстояние до другой точки (float)
func (p Point) DistanceTo(other Point) float64 {
	return math.Sqrt(float64(p.DistanceSquaredTo(other)))
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p Point) DistanceSquaredTo(other Point) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// ChessDistance - расстояние Чебышева (ходов короля).
func (p Point) ChessDistance(other Point) int {
	return max(abs(p.X-other.X), abs(p.Y-other.Y))
}

// IsAdjacent возвращает true, если цель в соседней клетке (включая диагональ)
func (p Point) IsAdjacent(other Point) bool {
	return p.ChessDistance(other) == 1
}

// Shift возвращает новую точку со смещением.
func (p Point) Shift(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Add складывает точку со смещением-вектором.
func (p Point) Add(d Point) Point {
	return p.Shift(d.X, d.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
