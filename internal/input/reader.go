// internal/input/reader.go
package input

import (
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"endless-survival/internal/app"
	"endless-survival/internal/config"
	"endless-survival/internal/state"
	"endless-survival/internal/ui"
)

const (
	// задержка и шаг автоповтора Backspace, в тиках
	repeatDelay    = 30
	repeatInterval = 3
)

// Reader опрашивает клавиатуру и мышь ebiten и собирает app.Input.
// Указатель переводится из координат окна в координаты холста.
type Reader struct {
	deviceW, deviceH float64
	chars            []rune
}

func NewReader() *Reader {
	return &Reader{deviceW: config.ScreenWidth, deviceH: config.ScreenHeight}
}

// SetDeviceSize: размер окна, в котором растягивается холст
func (r *Reader) SetDeviceSize(w, h int) {
	r.deviceW, r.deviceH = float64(w), float64(h)
}

// Cursor: положение указателя на холсте
func (r *Reader) Cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return ui.ToCanvas(float64(x), float64(y), r.deviceW, r.deviceH, config.ScreenWidth, config.ScreenHeight)
}

// Read собирает ввод текущего кадра.
func (r *Reader) Read(mode state.Mode) app.Input {
	in := app.Input{
		Up:      anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:    anyPressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:    anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:   anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Actions: Actions(mode, inpututil.IsKeyJustPressed),
	}

	if mode == state.Username {
		r.chars = ebiten.AppendInputChars(r.chars[:0])
		in.Text = printable(r.chars)
		in.Backspace = repeating(ebiten.KeyBackspace)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Clicked = true
		in.ClickX, in.ClickY = r.Cursor()
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		in.Clicked = true
		in.ClickX, in.ClickY = ui.ToCanvas(float64(x), float64(y), r.deviceW, r.deviceH, config.ScreenWidth, config.ScreenHeight)
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		// ebiten даёт положительное значение при прокрутке вверх
		in.Wheel = -dy
	}
	return in
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// repeating: нажатие с автоповтором при удержании
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// printable отбрасывает управляющие символы
func printable(chars []rune) string {
	out := make([]rune, 0, len(chars))
	for _, ch := range chars {
		if unicode.IsPrint(ch) {
			out = append(out, ch)
		}
	}
	return string(out)
}
