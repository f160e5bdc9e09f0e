// internal/component/movement.go
package component

import "math"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — вектор скорости в пикселях за кадр (16 мс)
type Velocity struct {
	DX, DY float64
}

// Rect — прямоугольник в мировых координатах, X и Y задают левый верхний угол
type Rect struct {
	X, Y, W, H float64
}

// Center возвращает центр прямоугольника
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps — проверка пересечения двух прямоугольников (AABB)
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Expand увеличивает прямоугольник на d пикселей с каждой стороны
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Contains проверяет, лежит ли точка внутри прямоугольника
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Distance — евклидово расстояние между точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
