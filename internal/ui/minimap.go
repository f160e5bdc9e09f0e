// internal/ui/minimap.go
package ui

import "endless-survival/internal/component"

const (
	MinimapSize   = 150.0
	minimapMargin = 10.0
)

// Minimap: уменьшенная карта в правом нижнем углу экрана w x h
type Minimap struct {
	Box   component.Rect
	scale float64
}

func NewMinimap(w, h, mapWidth, mapHeight float64) Minimap {
	scale := MinimapSize / mapWidth
	if mapHeight > mapWidth {
		scale = MinimapSize / mapHeight
	}
	return Minimap{
		Box: component.Rect{
			X: w - MinimapSize - minimapMargin,
			Y: h - MinimapSize - minimapMargin,
			W: MinimapSize,
			H: MinimapSize,
		},
		scale: scale,
	}
}

// Project переводит мировую точку в точку на миникарте.
func (m Minimap) Project(x, y float64) (float64, float64) {
	return m.Box.X + x*m.scale, m.Box.Y + y*m.scale
}

// ProjectRect переводит мировой прямоугольник, например видимую область камеры.
func (m Minimap) ProjectRect(r component.Rect) component.Rect {
	x, y := m.Project(r.X, r.Y)
	return component.Rect{X: x, Y: y, W: r.W * m.scale, H: r.H * m.scale}
}
