// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor сдвигает каждый канал к белому на amount.
func LightenColor(c color.RGBA, amount uint8) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+int(amount))),
		G: uint8(min(255, int(c.G)+int(amount))),
		B: uint8(min(255, int(c.B)+int(amount))),
		A: c.A,
	}
}

// WithAlpha умножает прозрачность цвета на alpha из [0, 1].
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}

// vertexColor: компоненты цвета для ebiten.Vertex
func vertexColor(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
