// internal/system/movement.go
package system

import (
	"endless-survival/internal/component"
	"endless-survival/internal/config"
	"endless-survival/internal/entity"
)

// MovementSystem продвигает монстров и ресурсы
type MovementSystem struct {
	store  *entity.Store
	bounds component.Rect
}

func NewMovementSystem(store *entity.Store) *MovementSystem {
	return &MovementSystem{
		store:  store,
		bounds: component.Rect{W: config.MapWidth, H: config.MapHeight},
	}
}

// Update двигает монстров к центру персонажа и обновляет таймеры ресурсов.
func (s *MovementSystem) Update(deltaTime float64, character *entity.Character) {
	tx, ty := character.Center()
	for _, m := range s.store.Monsters {
		m.Update(tx, ty, deltaTime, s.bounds)
	}
	for _, r := range s.store.Resources {
		r.Update(deltaTime)
	}
}
