// internal/app/input.go
package app

import (
	"log"

	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/state"
	"endless-survival/internal/ui"
)

// Action: одиночное действие игрока за кадр
type Action int

const (
	ActionNone Action = iota
	ActionToggleShop
	ActionProfile
	ActionStart
	ActionSubmit
	ActionEquipmentTab
	ActionSkillsTab
	ActionPowerAttack
	ActionSecondWind
	ActionDash
	ActionRestart
	ActionSaveRun
	ActionLoadRun
	ActionToggleMute
	ActionBack
)

// Input: ввод за один кадр в координатах холста
type Input struct {
	Up, Down, Left, Right bool
	Actions               []Action
	// Клик левой кнопкой, уже переведённый в координаты холста
	Clicked        bool
	ClickX, ClickY float64
	// Прокрутка колёсиком: положительная вниз
	Wheel float64
	// Ввод имени
	Text      string
	Backspace bool
}

// Axis: направление движения. По диагонали компоненты умножаются на 0.7071.
func (in Input) Axis() (float64, float64) {
	var dx, dy float64
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if dx != 0 && dy != 0 {
		dx *= config.DiagonalFactor
		dy *= config.DiagonalFactor
	}
	return dx, dy
}

// HandleInput применяет ввод кадра к текущему режиму.
func (g *Game) HandleInput(in Input) {
	if g.Modes.Is(state.Playing) {
		g.SetMovement(in.Axis())
	} else {
		g.SetMovement(0, 0)
	}

	if g.Modes.Is(state.Username) {
		g.editUsername(in)
	}
	for _, a := range in.Actions {
		g.Perform(a)
	}
	if in.Wheel != 0 && g.Modes.Is(state.Shop) {
		g.ScrollShop(in.Wheel * ui.ScrollStep)
	}
	if in.Clicked {
		g.Click(in.ClickX, in.ClickY)
	}
}

// editUsername дописывает набранные символы к черновику имени
func (g *Game) editUsername(in Input) {
	if in.Backspace && len(g.UsernameDraft) > 0 {
		r := []rune(g.UsernameDraft)
		g.UsernameDraft = string(r[:len(r)-1])
	}
	if in.Text != "" && len([]rune(g.UsernameDraft)) < maxUsernameLength {
		g.UsernameDraft += in.Text
	}
}

const maxUsernameLength = 20

// Perform выполняет действие, если оно имеет смысл в текущем режиме.
func (g *Game) Perform(a Action) {
	mode := g.Modes.Current()
	switch a {
	case ActionToggleMute:
		if g.audio != nil {
			log.Printf("Sound muted: %v", g.audio.ToggleMute())
		}
	case ActionToggleShop:
		switch mode {
		case state.Welcome, state.Playing:
			g.transition(state.Shop)
		case state.Shop:
			g.transition(g.Modes.ShopReturn())
		}
	case ActionBack:
		switch mode {
		case state.Shop:
			g.transition(g.Modes.ShopReturn())
		case state.Profile:
			g.transition(state.Welcome)
		}
	case ActionProfile:
		if mode == state.Welcome {
			g.transition(state.Profile)
		}
	case ActionStart:
		if mode == state.Welcome {
			g.transition(state.Playing)
		}
	case ActionSubmit:
		if mode == state.Username {
			if err := g.SubmitUsername(g.UsernameDraft); err == nil {
				g.UsernameDraft = ""
			}
		}
	case ActionEquipmentTab:
		if mode == state.Shop {
			g.SetShopTab(EquipmentTab)
		}
	case ActionSkillsTab:
		if mode == state.Shop {
			g.SetShopTab(SkillsTab)
		}
	case ActionPowerAttack:
		if mode == state.Playing {
			g.Character.ActivateSkill(defs.SkillPowerAttack)
		}
	case ActionSecondWind:
		if mode == state.Playing {
			g.Character.ActivateSkill(defs.SkillSecondWind)
		}
	case ActionDash:
		if mode == state.Playing {
			g.Character.ActivateSkill(defs.SkillDash)
		}
	case ActionRestart:
		if mode == state.GameOver || (mode == state.Reward && g.ChestChosen()) {
			g.transition(state.Playing)
		}
	case ActionSaveRun:
		g.SaveRun()
	case ActionLoadRun:
		g.LoadRun()
	}
}

// Click обрабатывает клик в координатах холста.
func (g *Game) Click(x, y float64) {
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	switch g.Modes.Current() {
	case state.Username:
		if _, submit := ui.UsernameLayout(w, h); submit.IsClicked(x, y) {
			g.Perform(ActionSubmit)
		}
	case state.Welcome:
		if b, ok := ui.HitButton(ui.WelcomeButtons(w, h), x, y); ok {
			switch b.ID {
			case ui.ButtonStart:
				g.Perform(ActionStart)
			case ui.ButtonShop:
				g.Perform(ActionToggleShop)
			case ui.ButtonProfile:
				g.Perform(ActionProfile)
			}
		}
	case state.Shop:
		layout := g.ShopLayout()
		if b, ok := ui.HitButton(layout.Buttons(), x, y); ok {
			switch b.ID {
			case ui.ButtonBack:
				g.Perform(ActionBack)
			case ui.ButtonEquipment:
				g.SetShopTab(EquipmentTab)
			case ui.ButtonSkills:
				g.SetShopTab(SkillsTab)
			}
			return
		}
		if i, ok := layout.HitBuy(x, y); ok {
			g.BuyItem(i)
		}
	case state.GameOver:
		if b, ok := ui.HitButton(ui.GameOverButtons(w, h), x, y); ok {
			g.finishRun(b.ID)
		}
	case state.Reward:
		if !g.ChestChosen() {
			if i, ok := ui.HitChest(ui.ChestRects(w, h, len(g.Chests)), x, y); ok {
				g.SelectChest(i)
			}
			return
		}
		if b, ok := ui.HitButton(ui.RewardButtons(w, h), x, y); ok {
			g.finishRun(b.ID)
		}
	case state.Profile:
		if ui.ProfileBack(w, h).IsClicked(x, y) {
			g.Perform(ActionBack)
		}
	}
}

// finishRun: выбор на экране поражения или наград
func (g *Game) finishRun(id ui.ButtonID) {
	switch id {
	case ui.ButtonRestart:
		g.transition(state.Playing)
	case ui.ButtonWelcome:
		g.transition(state.Welcome)
	}
}
