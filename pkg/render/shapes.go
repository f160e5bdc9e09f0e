// pkg/render/shapes.go
package render

import "math"

// Point: вершина фигуры в экранных координатах
type Point struct {
	X, Y float32
}

// StarPoints: вершины звезды с n лучами, первый луч смотрит вверх.
func StarPoints(cx, cy, outer, inner float64, n int) []Point {
	points := make([]Point, 0, n*2)
	for i := 0; i < n*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/float64(n)
		points = append(points, Point{
			X: float32(cx + r*math.Cos(angle)),
			Y: float32(cy + r*math.Sin(angle)),
		})
	}
	return points
}

// DiamondPoints: ромб, вписанный в квадрат size x size с центром (cx, cy).
func DiamondPoints(cx, cy, size float64) []Point {
	h := size / 2
	return []Point{
		{float32(cx), float32(cy - h)},
		{float32(cx + h), float32(cy)},
		{float32(cx), float32(cy + h)},
		{float32(cx - h), float32(cy)},
	}
}

// HeartPoints: сердце по параметрической кривой, вписанное примерно в size.
func HeartPoints(cx, cy, size float64, segments int) []Point {
	scale := size / 34
	points := make([]Point, 0, segments)
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * float64(i) / float64(segments)
		x := 16 * math.Pow(math.Sin(t), 3)
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		points = append(points, Point{
			X: float32(cx + x*scale),
			Y: float32(cy - y*scale),
		})
	}
	return points
}
