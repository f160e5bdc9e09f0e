// internal/screen/hud.go
package screen

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"endless-survival/internal/app"
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/entity"
	"endless-survival/internal/ui"
	"endless-survival/pkg/render"
)

const (
	barWidth  = 220.0
	barHeight = 16.0
	lineStep  = 18.0
	slotSize  = 56.0
)

// skillHotkeys: подписи клавиш под активными навыками
var skillHotkeys = map[string]string{
	defs.SkillPowerAttack: "E",
	defs.SkillSecondWind:  "R",
	defs.SkillDash:        "Shift",
}

func (r *Renderer) drawHUD(dst *ebiten.Image, g *app.Game) {
	c := g.Character
	x, y := float64(config.HUDPadding), float64(config.HUDPadding)

	r.painter.Bar(dst, x, y, barWidth, barHeight, c.Health/c.MaxHealth, config.HealthBarColor, config.HealthBarBack)
	r.painter.TextCentered(dst, fmt.Sprintf("%.0f / %.0f", c.Health, c.MaxHealth), x+barWidth/2, y+barHeight/2, config.TextLightColor)
	y += barHeight + 6
	exp := float64(c.Experience) / float64(c.ExperienceToNextLevel)
	r.painter.Bar(dst, x, y, barWidth, barHeight/2, exp, config.ExpBarColor, config.HealthBarBack)
	y += barHeight/2 + 8

	lines := []string{
		fmt.Sprintf("Level %d", c.Level),
		fmt.Sprintf("Gold %d", c.Gold),
		fmt.Sprintf("Score %d", g.Run.Score),
		fmt.Sprintf("Time %s", formatTime(g.Run.Seconds())),
	}
	for _, line := range lines {
		r.painter.Text(dst, line, x, y, config.TextLightColor)
		y += lineStep
	}

	r.drawCombatLog(dst, g)
	r.drawSkillBar(dst, c)
	r.drawMinimap(dst, g)
}

func formatTime(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// drawCombatLog: последние попадания в правом верхнем углу
func (r *Renderer) drawCombatLog(dst *ebiten.Image, g *app.Game) {
	log := g.StatsSystem.Stats.CombatLog
	if len(log) == 0 {
		return
	}
	w := 200.0
	x := float64(config.ScreenWidth) - w - config.HUDPadding
	y := float64(config.HUDPadding)
	r.painter.Rect(dst, x, y, w, float64(len(log))*lineStep+10, config.PanelColor)
	for i, entry := range log {
		c := render.WithAlpha(config.TextLightColor, 1-float64(i)*0.15)
		r.painter.Text(dst, fmt.Sprintf("%s -%.0f", entry.MonsterType, entry.Damage), x+6, y+5+float64(i)*lineStep, c)
	}
}

// drawSkillBar: активные навыки с перезарядкой внизу экрана
func (r *Renderer) drawSkillBar(dst *ebiten.Image, c *entity.Character) {
	var active []*entity.Skill
	for _, s := range c.UnlockedSkills() {
		if s.Def.Kind == defs.SkillActive {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return
	}

	total := float64(len(active))*(slotSize+10) - 10
	x := (float64(config.ScreenWidth) - total) / 2
	y := float64(config.ScreenHeight) - slotSize - 30
	for _, s := range active {
		back := config.ButtonColor
		if !s.IsReady() {
			back = config.DisabledColor
		}
		r.painter.Rect(dst, x, y, slotSize, slotSize, back)
		if part := s.CooldownFraction(); part > 0 {
			// затемнение пропорционально оставшейся перезарядке
			r.painter.Rect(dst, x, y, slotSize, slotSize*part, config.OverlayColor)
		}
		r.painter.StrokeRect(dst, x, y, slotSize, slotSize, 1, config.TextLightColor)
		r.painter.TextCentered(dst, initials(s.Name()), x+slotSize/2, y+slotSize/2, config.TextLightColor)
		if key, ok := skillHotkeys[s.Name()]; ok {
			r.painter.TextCentered(dst, key, x+slotSize/2, y+slotSize+10, config.TextLightColor)
		}
		x += slotSize + 10
	}
}

// drawMinimap: вся карта в углу экрана, персонаж, монстры, ресурсы
// и рамка видимой области
func (r *Renderer) drawMinimap(dst *ebiten.Image, g *app.Game) {
	m := ui.NewMinimap(config.ScreenWidth, config.ScreenHeight, config.MapWidth, config.MapHeight)
	box := m.Box
	r.painter.Rect(dst, box.X, box.Y, box.W, box.H, config.MinimapBackColor)
	r.painter.StrokeRect(dst, box.X, box.Y, box.W, box.H, config.StrokeWidth, config.MinimapBorderColor)

	for _, res := range g.Store.Resources {
		x, y := m.Project(res.X, res.Y)
		r.painter.Circle(dst, x, y, 1.5, config.MinimapResourceColor)
	}
	for _, monster := range g.Store.Monsters {
		x, y := m.Project(monster.Center())
		r.painter.Circle(dst, x, y, 2, config.MinimapMonsterColor)
	}
	x, y := m.Project(g.Character.Center())
	r.painter.Circle(dst, x, y, 3, config.TextLightColor)

	view := m.ProjectRect(g.Camera.Viewport())
	r.painter.StrokeRect(dst, view.X, view.Y, view.W, view.H, 1, config.MinimapViewportColor)
}

// initials: "Power Attack" -> "PA"
func initials(name string) string {
	out := make([]rune, 0, 3)
	start := true
	for _, ch := range name {
		if ch == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, ch)
			start = false
		}
	}
	return string(out)
}

func (r *Renderer) drawNotice(dst *ebiten.Image, g *app.Game) {
	if g.Notice == "" {
		return
	}
	w := float64(r.painter.TextWidth(g.Notice)) + 40
	x := (float64(config.ScreenWidth) - w) / 2
	r.painter.Rect(dst, x, 80, w, 32, config.PanelColor)
	r.painter.TextCentered(dst, g.Notice, float64(config.ScreenWidth)/2, 96, config.TextLightColor)
}
