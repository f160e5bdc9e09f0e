// internal/input/keymap.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"endless-survival/internal/app"
	"endless-survival/internal/state"
)

type binding struct {
	keys   []ebiten.Key
	action app.Action
}

func bind(action app.Action, keys ...ebiten.Key) binding {
	return binding{keys: keys, action: action}
}

// global действуют в любом режиме
var global = []binding{
	bind(app.ActionToggleMute, ebiten.KeyM),
}

// keymaps: одиночные действия по режимам. Одна клавиша может значить
// разное: R в забеге это Second Wind, после смерти перезапуск.
var keymaps = map[state.Mode][]binding{
	state.Username: {
		bind(app.ActionSubmit, ebiten.KeyEnter, ebiten.KeyNumpadEnter),
	},
	state.Welcome: {
		bind(app.ActionStart, ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		bind(app.ActionToggleShop, ebiten.KeyP),
		bind(app.ActionProfile, ebiten.KeyO),
	},
	state.Profile: {
		bind(app.ActionBack, ebiten.KeyEscape, ebiten.KeyO),
	},
	state.Playing: {
		bind(app.ActionToggleShop, ebiten.KeyP),
		bind(app.ActionPowerAttack, ebiten.KeyE),
		bind(app.ActionSecondWind, ebiten.KeyR),
		bind(app.ActionDash, ebiten.KeyShiftLeft, ebiten.KeyShiftRight),
		bind(app.ActionSaveRun, ebiten.KeyF5),
		bind(app.ActionLoadRun, ebiten.KeyF9),
	},
	state.Shop: {
		bind(app.ActionToggleShop, ebiten.KeyP),
		bind(app.ActionBack, ebiten.KeyEscape),
		bind(app.ActionEquipmentTab, ebiten.KeyDigit1),
		bind(app.ActionSkillsTab, ebiten.KeyDigit2),
	},
	state.GameOver: {
		bind(app.ActionRestart, ebiten.KeyR, ebiten.KeyEnter),
	},
	state.Reward: {
		bind(app.ActionRestart, ebiten.KeyR),
	},
}

// Actions возвращает действия режима, клавиши которых нажаты в этом кадре.
// В режиме ввода имени буквенные клавиши не считаются командами.
func Actions(mode state.Mode, justPressed func(ebiten.Key) bool) []app.Action {
	var actions []app.Action
	collect := func(bindings []binding) {
		for _, b := range bindings {
			for _, k := range b.keys {
				if justPressed(k) {
					actions = append(actions, b.action)
					break
				}
			}
		}
	}
	if mode != state.Username {
		collect(global)
	}
	collect(keymaps[mode])
	return actions
}
