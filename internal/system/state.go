// internal/system/state.go
package system

import (
	"endless-survival/internal/component"
	"endless-survival/internal/config"
	"endless-survival/internal/utils"
)

// RunState: счёт и время текущего забега
type RunState struct {
	Score    int
	GameTime float64 // мс
}

// Seconds: прожитое время в секундах
func (r *RunState) Seconds() float64 {
	return r.GameTime / 1000
}

// Difficulty: множитель сложности 1 + score/1000
func (r *RunState) Difficulty() float64 {
	return 1 + float64(r.Score)/config.DifficultyScoreDivisor
}

// Reset обнуляет забег
func (r *RunState) Reset() {
	r.Score = 0
	r.GameTime = 0
}

// Camera: видимая область карты
type Camera struct {
	X, Y          float64
	Width, Height float64
	MapWidth      float64
	MapHeight     float64
}

// NewCamera создаёт камеру с размером экрана.
func NewCamera(width, height, mapWidth, mapHeight float64) *Camera {
	return &Camera{Width: width, Height: height, MapWidth: mapWidth, MapHeight: mapHeight}
}

// Follow центрирует камеру на точке, не выходя за границы карты.
func (c *Camera) Follow(x, y float64) {
	c.X = utils.Clamp(x-c.Width/2, 0, maxf(0, c.MapWidth-c.Width))
	c.Y = utils.Clamp(y-c.Height/2, 0, maxf(0, c.MapHeight-c.Height))
}

// Viewport: видимая область в мировых координатах
func (c *Camera) Viewport() component.Rect {
	return component.Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}

// WorldToScreen переводит мировые координаты в экранные.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}

// ScreenToWorld переводит экранные координаты в мировые.
func (c *Camera) ScreenToWorld(x, y float64) (float64, float64) {
	return x + c.X, y + c.Y
}

// Visible: прямоугольник попадает в кадр
func (c *Camera) Visible(r component.Rect) bool {
	return c.Viewport().Overlaps(r)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
