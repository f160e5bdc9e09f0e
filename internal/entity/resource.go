// internal/entity/resource.go
package entity

import (
	"math"

	"endless-survival/internal/component"
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/types"
)

// Resource: выпавший с монстра ресурс
type Resource struct {
	ID        types.EntityID
	X, Y      float64 // левый верхний угол
	Size      float64
	Type      defs.ResourceType
	Value     int
	Expires   bool
	Life      component.Countdown
	Collected bool
	Render    component.Renderable
	// Фаза покачивания, только для отрисовки
	Phase float64
}

// NewResource создаёт ресурс по таблице определений.
func NewResource(id types.EntityID, x, y float64, t defs.ResourceType) *Resource {
	def := defs.Resource(t)
	return &Resource{
		ID:      id,
		X:       x,
		Y:       y,
		Size:    config.ResourceSize,
		Type:    t,
		Value:   def.Value,
		Expires: def.LifeTime > 0,
		Life:    component.NewCountdown(def.LifeTime),
		Render:  component.Renderable{Color: def.Color.RGBA, Sprite: def.Sprite},
	}
}

// Update уменьшает время жизни и помечает ресурс собранным по истечении.
func (r *Resource) Update(deltaTime float64) {
	if r.Collected {
		return
	}
	r.Phase = math.Mod(r.Phase+deltaTime*0.005, 2*math.Pi)
	if !r.Expires {
		return
	}
	r.Life.Tick(deltaTime)
	if r.Life.Done() {
		r.Collected = true
	}
}

// Collect помечает ресурс собранным и возвращает тип и ценность.
func (r *Resource) Collect() (defs.ResourceType, int) {
	r.Collected = true
	return r.Type, r.Value
}

// Rect: хитбокс ресурса
func (r *Resource) Rect() component.Rect {
	return component.Rect{X: r.X, Y: r.Y, W: r.Size, H: r.Size}
}

// Bob: вертикальное смещение для отрисовки
func (r *Resource) Bob() float64 {
	return math.Sin(r.Phase) * 2
}
