// internal/utils/math.go
package utils

import "math"

// Clamp ограничивает значение отрезком [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Normalize возвращает единичный вектор. Нулевой вектор остаётся нулевым.
func Normalize(dx, dy float64) (float64, float64) {
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0
	}
	return dx / length, dy / length
}
