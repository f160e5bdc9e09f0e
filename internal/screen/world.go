// internal/screen/world.go
package screen

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"endless-survival/internal/app"
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/entity"
	"endless-survival/internal/system"
	"endless-survival/pkg/render"
)

const gridStep = 100.0

// drawWorld рисует карту и сущности в видимой области камеры
func (r *Renderer) drawWorld(dst *ebiten.Image, g *app.Game) {
	cam := g.Camera
	r.drawGrid(dst, cam)

	for _, res := range g.Store.Resources {
		if cam.Visible(res.Rect()) {
			r.drawResource(dst, cam, res)
		}
	}
	for _, m := range g.Store.Monsters {
		if cam.Visible(m.Rect()) {
			r.drawMonster(dst, cam, m)
		}
		r.drawBullets(dst, cam, m.Bullets)
	}
	r.drawCharacter(dst, cam, g.Character)
	r.drawBullets(dst, cam, g.Character.Bullets)
	r.drawEffects(dst, cam, g.VisualEffectSystem)
}

func (r *Renderer) drawGrid(dst *ebiten.Image, cam *system.Camera) {
	startX := math.Floor(cam.X/gridStep) * gridStep
	startY := math.Floor(cam.Y/gridStep) * gridStep
	for x := startX; x <= cam.X+cam.Width; x += gridStep {
		sx, _ := cam.WorldToScreen(x, 0)
		r.painter.Line(dst, sx, 0, sx, cam.Height, 1, config.GridColor)
	}
	for y := startY; y <= cam.Y+cam.Height; y += gridStep {
		_, sy := cam.WorldToScreen(0, y)
		r.painter.Line(dst, 0, sy, cam.Width, sy, 1, config.GridColor)
	}

	// граница карты
	x0, y0 := cam.WorldToScreen(0, 0)
	r.painter.StrokeRect(dst, x0, y0, cam.MapWidth, cam.MapHeight, 4, config.MapBorderColor)
}

func (r *Renderer) drawResource(dst *ebiten.Image, cam *system.Camera, res *entity.Resource) {
	x, y := cam.WorldToScreen(res.X, res.Y)
	y += res.Bob()
	if img, ok := r.sprite(res.Render.Sprite); ok {
		drawSprite(dst, img, x, y, res.Size, res.Size)
		return
	}

	cx, cy := x+res.Size/2, y+res.Size/2
	c := res.Render.Color
	if res.Expires && res.Life.Remaining < 2000 {
		// мигает перед исчезновением
		if int(res.Life.Remaining/200)%2 == 0 {
			c = render.WithAlpha(c, 0.4)
		}
	}
	switch res.Type {
	case defs.ResourceHealth:
		r.painter.Heart(dst, cx, cy, res.Size, c)
	case defs.ResourceGold:
		r.painter.Star(dst, cx, cy, res.Size, c)
		r.painter.StrokePolygon(dst, render.StarPoints(cx, cy, res.Size/2, res.Size/4, 5), 1, render.DarkenColor(c))
	case defs.ResourceExperience:
		r.painter.Diamond(dst, cx, cy, res.Size, c)
	default:
		r.painter.Circle(dst, cx, cy, res.Size/2, c)
	}
}

func (r *Renderer) drawMonster(dst *ebiten.Image, cam *system.Camera, m *entity.Monster) {
	x, y := cam.WorldToScreen(m.X, m.Y)
	if img, ok := r.sprite(m.Render.Sprite); ok {
		drawSprite(dst, img, x, y, m.Width, m.Height)
	} else {
		r.painter.Rect(dst, x, y, m.Width, m.Height, m.Render.Color)
		r.painter.StrokeRect(dst, x, y, m.Width, m.Height, config.StrokeWidth, render.DarkenColor(m.Render.Color))
	}
	if m.Health < m.MaxHealth {
		r.painter.Bar(dst, x, y-8, m.Width, 4, m.Health/m.MaxHealth, config.HealthBarColor, config.HealthBarBack)
	}
}

func (r *Renderer) drawCharacter(dst *ebiten.Image, cam *system.Camera, c *entity.Character) {
	x, y := cam.WorldToScreen(c.X, c.Y)
	body := config.CharacterColor
	if c.Dashing() {
		body = render.LightenColor(body, 60)
	}
	if img, ok := r.sprite("character.png"); ok {
		drawSprite(dst, img, x, y, c.Width, c.Height)
	} else {
		r.painter.Rect(dst, x, y, c.Width, c.Height, body)
		r.painter.StrokeRect(dst, x, y, c.Width, c.Height, config.StrokeWidth, render.DarkenColor(body))
	}
	if c.PowerArmed() {
		cx, cy := cam.WorldToScreen(c.Center())
		r.painter.Ring(dst, cx, cy, c.Width*0.8, 2, config.LevelUpColor)
	}

	for _, ball := range c.OrbitBalls() {
		bx, by := cam.WorldToScreen(ball.X, ball.Y)
		r.painter.Circle(dst, bx, by, config.OrbitBallRadius, config.OrbitColor)
	}
}

func (r *Renderer) drawBullets(dst *ebiten.Image, cam *system.Camera, bullets []*entity.Bullet) {
	for _, b := range bullets {
		x, y := cam.WorldToScreen(b.X, b.Y)
		if x < -b.Size || y < -b.Size || x > cam.Width+b.Size || y > cam.Height+b.Size {
			continue
		}
		size := b.Size / 2
		if b.Critical {
			size *= 1.5
		}
		r.painter.Circle(dst, x, y, size, b.Color)
	}
}

func (r *Renderer) drawEffects(dst *ebiten.Image, cam *system.Camera, effects *system.VisualEffectSystem) {
	for _, e := range effects.Layer(system.LayerAttack) {
		x1, y1 := cam.WorldToScreen(e.X, e.Y)
		x2, y2 := cam.WorldToScreen(e.ToX, e.ToY)
		r.painter.Line(dst, x1, y1, x2, y2, 2, render.WithAlpha(e.Color, e.Alpha()))
	}
	for _, layer := range []system.EffectLayer{system.LayerHit, system.LayerDeath, system.LayerCollection, system.LayerLevelUp} {
		for _, e := range effects.Layer(layer) {
			x, y := cam.WorldToScreen(e.X, e.Y)
			c := render.WithAlpha(e.Color, e.Alpha())
			r.painter.Ring(dst, x, y, e.Size, 2, c)
			if e.Text != "" {
				r.painter.TextCentered(dst, e.Text, x, y-e.Size-10, c)
			}
		}
	}
	for _, e := range effects.Layer(system.LayerHealing) {
		x, y := cam.WorldToScreen(e.X, e.Y)
		r.painter.TextCentered(dst, e.Text, x, y, render.WithAlpha(e.Color, e.Alpha()))
	}
}
