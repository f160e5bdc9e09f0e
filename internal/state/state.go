// internal/state/state.go
package state

import (
	"errors"
	"fmt"

	"endless-survival/internal/event"
)

// Mode: режим игры
type Mode string

const (
	Username Mode = "username"
	Welcome  Mode = "welcome"
	Playing  Mode = "playing"
	Shop     Mode = "shop"
	GameOver Mode = "gameOver"
	Reward   Mode = "reward"
	Profile  Mode = "profile"
)

var ErrIllegalTransition = errors.New("illegal mode transition")

// transitions: допустимые переходы между режимами
var transitions = map[Mode][]Mode{
	Username: {Welcome},
	Welcome:  {Playing, Shop, Profile},
	Profile:  {Welcome},
	Playing:  {Shop, GameOver},
	Shop:     {Playing, Welcome},
	GameOver: {Reward, Welcome, Playing},
	Reward:   {Playing, Welcome},
}

// Hook вызывается при входе в режим или выходе из него
type Hook func(from, to Mode)

// StateMachine: машина режимов. Из магазина можно вернуться только туда,
// откуда в него вошли.
type StateMachine struct {
	current    Mode
	shopReturn Mode
	onEnter    map[Mode][]Hook
	onExit     map[Mode][]Hook
	dispatcher *event.Dispatcher
}

// NewStateMachine создаёт машину в начальном режиме. dispatcher может быть nil.
func NewStateMachine(initial Mode, dispatcher *event.Dispatcher) *StateMachine {
	return &StateMachine{
		current:    initial,
		onEnter:    make(map[Mode][]Hook),
		onExit:     make(map[Mode][]Hook),
		dispatcher: dispatcher,
	}
}

// Current возвращает текущий режим
func (sm *StateMachine) Current() Mode {
	return sm.current
}

// Is: текущий режим совпадает с mode
func (sm *StateMachine) Is(mode Mode) bool {
	return sm.current == mode
}

// ShopReturn: режим, в который вернётся магазин
func (sm *StateMachine) ShopReturn() Mode {
	return sm.shopReturn
}

// OnEnter регистрирует обработчик входа в режим.
func (sm *StateMachine) OnEnter(mode Mode, hook Hook) {
	sm.onEnter[mode] = append(sm.onEnter[mode], hook)
}

// OnExit регистрирует обработчик выхода из режима.
func (sm *StateMachine) OnExit(mode Mode, hook Hook) {
	sm.onExit[mode] = append(sm.onExit[mode], hook)
}

// CanTransition проверяет, разрешён ли переход из текущего режима.
func (sm *StateMachine) CanTransition(to Mode) bool {
	if sm.current == Shop && to != sm.shopReturn {
		return false
	}
	for _, m := range transitions[sm.current] {
		if m == to {
			return true
		}
	}
	return false
}

// Transition переключает режим. При недопустимом переходе режим не меняется.
func (sm *StateMachine) Transition(to Mode) error {
	if !sm.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, sm.current, to)
	}
	from := sm.current
	for _, hook := range sm.onExit[from] {
		hook(from, to)
	}
	if to == Shop {
		sm.shopReturn = from
	}
	sm.current = to
	for _, hook := range sm.onEnter[to] {
		hook(from, to)
	}
	sm.dispatcher.Dispatch(event.Event{Type: event.ModeChanged, Data: event.ModeData{From: string(from), To: string(to)}})
	return nil
}

// Reset ставит режим без проверки переходов и без обработчиков.
// Используется при загрузке и в тестах.
func (sm *StateMachine) Reset(mode Mode) {
	sm.current = mode
	sm.shopReturn = ""
}
