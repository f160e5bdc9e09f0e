// internal/entity/monster.go
package entity

import (
	"math"

	"endless-survival/internal/component"
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/types"
	"endless-survival/internal/utils"
)

// Monster: враг. Характеристики фиксируются при создании.
type Monster struct {
	ID            types.EntityID
	Type          defs.MonsterType
	X, Y          float64 // левый верхний угол
	Width, Height float64
	Health        float64
	MaxHealth     float64
	Damage        float64
	Speed         float64
	Render        component.Renderable
	Bullets       []*Bullet

	def          defs.MonsterDefinition
	mover        Mover
	shotCooldown component.Countdown
}

// NewMonster создаёт монстра: здоровье и урон равны floor(база * сложность).
func NewMonster(id types.EntityID, x, y float64, t defs.MonsterType, difficulty float64, rng utils.Random) *Monster {
	def := defs.Monster(t)
	if difficulty <= 0 {
		difficulty = 1
	}
	health := math.Floor(def.Health * difficulty)
	m := &Monster{
		ID:        id,
		Type:      def.Type,
		X:         x,
		Y:         y,
		Width:     def.Size,
		Height:    def.Size,
		Health:    health,
		MaxHealth: health,
		Damage:    math.Floor(def.Damage * difficulty),
		Speed:     def.Speed,
		Render:    component.Renderable{Color: def.Color.RGBA, Sprite: def.Sprite},
		def:       def,
		mover:     NewMover(def, rng),
	}
	if def.Ranged != nil {
		m.shotCooldown.Set(def.Ranged.ShotCooldown)
	}
	return m
}

// Rect: хитбокс монстра
func (m *Monster) Rect() component.Rect {
	return component.Rect{X: m.X, Y: m.Y, W: m.Width, H: m.Height}
}

// Center: центр монстра
func (m *Monster) Center() (float64, float64) {
	return m.X + m.Width/2, m.Y + m.Height/2
}

// Dead: здоровье исчерпано
func (m *Monster) Dead() bool {
	return m.Health <= 0
}

// TakeDamage уменьшает здоровье, не опуская его ниже нуля.
func (m *Monster) TakeDamage(amount float64) {
	if amount <= 0 {
		return
	}
	m.Health -= amount
	if m.Health < 0 {
		m.Health = 0
	}
}

// Update двигает монстра к цели (центр персонажа), стреляет, если умеет,
// и продвигает собственные снаряды. Снаряды за пределами bounds удаляются.
func (m *Monster) Update(targetX, targetY, deltaTime float64, bounds component.Rect) {
	cx, cy := m.Center()
	next := m.mover.Advance(component.Position{X: cx, Y: cy}, component.Position{X: targetX, Y: targetY}, m.Speed, deltaTime)
	m.X = next.X - m.Width/2
	m.Y = next.Y - m.Height/2

	if ranged := m.def.Ranged; ranged != nil {
		m.shotCooldown.Tick(deltaTime)
		cx, cy = m.Center()
		if m.shotCooldown.Done() && component.Distance(cx, cy, targetX, targetY) <= ranged.Reach {
			b := NewBullet(cx, cy, targetX, targetY, ranged.BulletSpeed, m.Damage, config.MonsterBulletColor, OwnerMonster)
			b.Life.Set(ranged.BulletLife)
			b.Size = config.MonsterBulletSize
			m.Bullets = append(m.Bullets, b)
			m.shotCooldown.Set(ranged.ShotCooldown)
		}
	}

	for _, b := range m.Bullets {
		b.Update(deltaTime)
	}
	m.Bullets = utils.RemoveIf(m.Bullets, func(b *Bullet) bool {
		return !b.Alive() || b.OutOfBounds(bounds, config.ProjectileMargin)
	})
}

