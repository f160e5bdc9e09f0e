// internal/screen/renderer.go
package screen

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"endless-survival/internal/app"
	"endless-survival/internal/assets"
	"endless-survival/internal/component"
	"endless-survival/internal/config"
	"endless-survival/internal/state"
	"endless-survival/pkg/render"
)

// Renderer рисует кадр игры: мир, HUD и экраны режимов.
// Состояние игры только читается.
type Renderer struct {
	painter *render.Painter
	sprites *assets.Cache[*ebiten.Image]
	// курсор в координатах холста, для подсветки кнопок
	cursorX, cursorY float64
}

// NewRenderer создаёт рисовальщик. sprites может быть nil, тогда все
// сущности рисуются фигурами.
func NewRenderer(sprites *assets.Cache[*ebiten.Image]) *Renderer {
	return &Renderer{painter: render.NewPainter(), sprites: sprites}
}

// SetCursor запоминает положение указателя на холсте.
func (r *Renderer) SetCursor(x, y float64) {
	r.cursorX, r.cursorY = x, y
}

// Draw рисует текущий режим игры.
func (r *Renderer) Draw(dst *ebiten.Image, g *app.Game) {
	dst.Fill(config.BackgroundColor)

	switch g.Modes.Current() {
	case state.Username:
		r.drawUsername(dst, g)
	case state.Welcome:
		r.drawWelcome(dst, g)
	case state.Profile:
		r.drawProfile(dst, g)
	case state.Playing:
		r.drawWorld(dst, g)
		r.drawHUD(dst, g)
	case state.Shop:
		// магазин открыт поверх замершего мира
		if g.Modes.ShopReturn() == state.Playing {
			r.drawWorld(dst, g)
			r.overlay(dst)
		}
		r.drawShop(dst, g)
	case state.GameOver:
		r.drawWorld(dst, g)
		r.overlay(dst)
		r.drawGameOver(dst, g)
	case state.Reward:
		r.drawWorld(dst, g)
		r.overlay(dst)
		r.drawReward(dst, g)
	}
	r.drawNotice(dst, g)
}

// sprite возвращает изображение по ключу, если оно уже загружено
func (r *Renderer) sprite(key string) (*ebiten.Image, bool) {
	if r.sprites == nil || key == "" {
		return nil, false
	}
	img, ok := r.sprites.Get(key)
	return img, ok && img != nil
}

// drawSprite растягивает изображение на прямоугольник
func drawSprite(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}

func (r *Renderer) overlay(dst *ebiten.Image) {
	r.painter.Rect(dst, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor)
}

func ebitenRect(r component.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}
