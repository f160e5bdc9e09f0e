// internal/component/visual.go
package component

import "image/color"

// Effect — короткоживущий визуальный объект (вспышка атаки, взрыв,
// искра подбора, всплеск уровня, цифра лечения). На игровой процесс не влияет.
type Effect struct {
	X, Y     float64
	ToX, ToY float64 // для линейных эффектов (линия атаки)
	Color    color.RGBA
	Size     float64
	Life     Countdown
	MaxLife  float64
	// Прирост размера за кадр
	Expansion float64
	// Подъём вверх за кадр, для всплывающих цифр
	Rise  float64
	Fade  bool
	Text  string
	Line  bool
}

// NewEffect создаёт эффект с полным временем жизни.
func NewEffect(x, y float64, c color.RGBA, size, life, expansion float64) *Effect {
	return &Effect{
		X: x, Y: y,
		Color:     c,
		Size:      size,
		Life:      NewCountdown(life),
		MaxLife:   life,
		Expansion: expansion,
	}
}

// Update продвигает анимацию эффекта.
func (e *Effect) Update(deltaTime, frameUnit float64) {
	e.Life.Tick(deltaTime)
	frames := deltaTime / frameUnit
	e.Size += e.Expansion * frames
	e.Y -= e.Rise * frames
}

// Alive — эффект ещё отображается
func (e *Effect) Alive() bool {
	return !e.Life.Done()
}

// Alpha — прозрачность в диапазоне [0, 1]
func (e *Effect) Alpha() float64 {
	if !e.Fade || e.MaxLife <= 0 {
		return 1
	}
	a := e.Life.Remaining / e.MaxLife
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
