// internal/screen/menus.go
package screen

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"endless-survival/internal/app"
	"endless-survival/internal/config"
	"endless-survival/internal/ui"
	"endless-survival/pkg/render"
)

const (
	canvasW = float64(config.ScreenWidth)
	canvasH = float64(config.ScreenHeight)
)

func (r *Renderer) drawButton(dst *ebiten.Image, b ui.Button, enabled bool) {
	back := config.ButtonColor
	switch {
	case !enabled:
		back = config.DisabledColor
	case b.IsClicked(r.cursorX, r.cursorY):
		back = config.ButtonHoverColor
	}
	rect := b.Rect
	r.painter.Rect(dst, rect.X, rect.Y, rect.W, rect.H, back)
	r.painter.StrokeRect(dst, rect.X, rect.Y, rect.W, rect.H, 1, render.LightenColor(back, 40))
	r.painter.TextCentered(dst, b.Text, rect.X+rect.W/2, rect.Y+rect.H/2, config.TextLightColor)
}

func (r *Renderer) title(dst *ebiten.Image, s string, y float64) {
	r.painter.TextCentered(dst, s, canvasW/2, y, config.LevelUpColor)
}

func (r *Renderer) drawUsername(dst *ebiten.Image, g *app.Game) {
	field, submit := ui.UsernameLayout(canvasW, canvasH)
	r.title(dst, "ENDLESS SURVIVAL", canvasH/2-120)
	r.painter.TextCentered(dst, "Enter your warrior's name", canvasW/2, field.Y-24, config.TextLightColor)

	r.painter.Rect(dst, field.X, field.Y, field.W, field.H, config.PanelColor)
	r.painter.StrokeRect(dst, field.X, field.Y, field.W, field.H, 1, config.TextLightColor)
	r.painter.Text(dst, g.UsernameDraft+"_", field.X+10, field.Y+field.H/2-7, config.TextLightColor)
	if g.UsernameError != "" {
		r.painter.TextCentered(dst, g.UsernameError, canvasW/2, field.Y+field.H+10, config.HealthBarColor)
	}
	r.drawButton(dst, submit, true)
}

func (r *Renderer) drawWelcome(dst *ebiten.Image, g *app.Game) {
	r.title(dst, "ENDLESS SURVIVAL", canvasH/2-140)
	c := g.Character
	r.painter.TextCentered(dst, fmt.Sprintf("Welcome, %s!", g.Username), canvasW/2, canvasH/2-90, config.TextLightColor)
	r.painter.TextCentered(dst, fmt.Sprintf("Level %d   Gold %d", c.Level, c.Gold), canvasW/2, canvasH/2-60, config.TextLightColor)
	for _, b := range ui.WelcomeButtons(canvasW, canvasH) {
		r.drawButton(dst, b, true)
	}
	r.painter.TextCentered(dst, "Enter - start   P - shop   O - profile   M - mute", canvasW/2, canvasH-40, config.GridColor)
}

func (r *Renderer) drawProfile(dst *ebiten.Image, g *app.Game) {
	r.title(dst, "PROFILE", 80)
	y := 130.0
	for _, stat := range g.ProfileStats() {
		r.painter.Text(dst, stat.Label, canvasW/2-220, y, config.TextLightColor)
		r.painter.Text(dst, stat.Value, canvasW/2+20, y, config.TextLightColor)
		y += lineStep + 4
		if y > canvasH-130 {
			break
		}
	}
	r.drawButton(dst, ui.ProfileBack(canvasW, canvasH), true)
}

func (r *Renderer) drawShop(dst *ebiten.Image, g *app.Game) {
	r.title(dst, "SHOP", 60)
	r.painter.TextCentered(dst, fmt.Sprintf("Gold: %d", g.Character.Gold), canvasW/2, 90, config.LevelUpColor)

	layout := g.ShopLayout()
	r.drawButton(dst, layout.EquipmentTab, g.Shop.Tab == app.EquipmentTab)
	r.drawButton(dst, layout.SkillsTab, g.Shop.Tab == app.SkillsTab)

	items := g.ShopItems()
	if len(items) == 0 {
		r.painter.TextCentered(dst, "Level up to unlock skills", canvasW/2, layout.Content.Y+40, config.TextLightColor)
	}

	// карточки рисуются на отдельном холсте, обрезанном по области списка
	content := layout.Content
	if content.W <= 0 || content.H <= 0 {
		r.drawButton(dst, layout.Back, true)
		return
	}
	clip := dst.SubImage(ebitenRect(content)).(*ebiten.Image)
	for i, item := range items {
		box := layout.Items[i]
		if box.Box.Y+box.Box.H < content.Y || box.Box.Y > content.Y+content.H {
			continue
		}
		r.painter.Rect(clip, box.Box.X, box.Box.Y, box.Box.W, box.Box.H, config.PanelColor)
		r.painter.StrokeRect(clip, box.Box.X, box.Box.Y, box.Box.W, box.Box.H, 1, config.GridColor)
		r.painter.Text(clip, item.Name, box.Box.X+10, box.Box.Y+10, config.TextLightColor)
		r.painter.Text(clip, item.Description, box.Box.X+10, box.Box.Y+30, config.TextLightColor)
		level := fmt.Sprintf("Lv.%d/%d", item.Level, item.MaxLevel)
		r.painter.Text(clip, level, box.Box.X+10, box.Box.Y+box.Box.H-24, config.TextLightColor)

		label := fmt.Sprintf("%d g", item.Cost)
		if item.Maxed {
			label = "MAX"
		}
		buy := ui.Button{Rect: box.Buy, Text: label}
		r.drawButton(clip, buy, item.Affordable && !item.Maxed)
	}

	r.drawButton(dst, layout.Back, true)
}

func (r *Renderer) drawGameOver(dst *ebiten.Image, g *app.Game) {
	r.title(dst, "GAME OVER", canvasH/2-200)
	r.drawRunSummary(dst, g, canvasH/2-160)
	for _, b := range ui.GameOverButtons(canvasW, canvasH) {
		r.drawButton(dst, b, true)
	}
}

// drawRunSummary: счёт и статистика забега
func (r *Renderer) drawRunSummary(dst *ebiten.Image, g *app.Game, y float64) {
	s := g.StatsSystem.Stats
	lines := []string{
		fmt.Sprintf("Score: %d   Time: %s   Level: %d", g.Run.Score, formatTime(g.Run.Seconds()), g.Character.Level),
		fmt.Sprintf("Monsters destroyed: %d", s.MonstersDestroyed),
		fmt.Sprintf("Damage caused: %.0f   Damage received: %.0f", s.TotalDamageCaused, s.DamageReceived),
		fmt.Sprintf("Health recovered: %.0f   Gold collected: %d   Blood: %d", s.TotalHealthRecovered, s.GoldCollected, s.BloodCollected),
	}
	for _, line := range lines {
		r.painter.TextCentered(dst, line, canvasW/2, y, config.TextLightColor)
		y += lineStep + 2
	}
}

func (r *Renderer) drawReward(dst *ebiten.Image, g *app.Game) {
	r.title(dst, "CHOOSE YOUR REWARD", canvasH/2-220)
	r.drawRunSummary(dst, g, canvasH/2-190)

	chosen := g.ChestChosen()
	for i, rect := range ui.ChestRects(canvasW, canvasH, len(g.Chests)) {
		chest := g.Chests[i]
		back := config.LevelUpColor
		switch {
		case chest.Opened:
			back = config.ExpBarColor
		case chosen:
			back = config.DisabledColor
		case rect.Contains(r.cursorX, r.cursorY):
			back = render.LightenColor(back, 40)
		}
		r.painter.Rect(dst, rect.X, rect.Y, rect.W, rect.H, back)
		r.painter.StrokeRect(dst, rect.X, rect.Y, rect.W, rect.H, 2, render.DarkenColor(back))
		if chest.Opened {
			r.painter.TextCentered(dst, fmt.Sprintf("+%d gold", chest.Gold), rect.X+rect.W/2, rect.Y+rect.H/2-10, config.TextDarkColor)
			r.painter.TextCentered(dst, fmt.Sprintf("+%d exp", chest.Experience), rect.X+rect.W/2, rect.Y+rect.H/2+10, config.TextDarkColor)
		} else {
			r.painter.TextCentered(dst, "?", rect.X+rect.W/2, rect.Y+rect.H/2, config.TextDarkColor)
		}
	}

	if chest, ok := g.OpenedChest(); ok {
		msg := fmt.Sprintf("You received %d gold and %d experience", chest.Gold, chest.Experience)
		r.painter.TextCentered(dst, msg, canvasW/2, canvasH/2+50, config.TextLightColor)
	}
	for _, b := range ui.RewardButtons(canvasW, canvasH) {
		r.drawButton(dst, b, chosen)
	}
}
