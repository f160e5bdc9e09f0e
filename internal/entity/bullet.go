// internal/entity/bullet.go
package entity

import (
	"image/color"
	"math"

	"endless-survival/internal/component"
	"endless-survival/internal/config"
)

// Owner: чей снаряд
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerMonster
)

// Bullet: снаряд. Направление вычисляется один раз при создании.
type Bullet struct {
	X, Y     float64 // центр
	Velocity component.Velocity
	Damage   float64
	Color    color.RGBA
	Owner    Owner
	Size     float64
	Life     component.Countdown
	Critical bool
}

// NewBullet создаёт снаряд из точки (sx, sy) в сторону (tx, ty).
func NewBullet(sx, sy, tx, ty, speed, damage float64, c color.RGBA, owner Owner) *Bullet {
	return NewBulletAngle(sx, sy, math.Atan2(ty-sy, tx-sx), speed, damage, c, owner)
}

// NewBulletAngle создаёт снаряд, летящий под углом angle.
func NewBulletAngle(sx, sy, angle, speed, damage float64, c color.RGBA, owner Owner) *Bullet {
	return &Bullet{
		X: sx, Y: sy,
		Velocity: component.Velocity{DX: math.Cos(angle) * speed, DY: math.Sin(angle) * speed},
		Damage:   damage,
		Color:    c,
		Owner:    owner,
		Size:     config.BulletSize,
		Life:     component.NewCountdown(config.BulletLifeTime),
	}
}

// Update сдвигает снаряд на velocity * dt/16 и уменьшает время жизни.
func (b *Bullet) Update(deltaTime float64) {
	frames := deltaTime / config.FrameUnit
	b.X += b.Velocity.DX * frames
	b.Y += b.Velocity.DY * frames
	b.Life.Tick(deltaTime)
}

// Alive: время жизни не истекло
func (b *Bullet) Alive() bool {
	return !b.Life.Done()
}

// OutOfBounds: снаряд вылетел за границы с запасом margin
func (b *Bullet) OutOfBounds(bounds component.Rect, margin float64) bool {
	return b.X < bounds.X-margin || b.X > bounds.X+bounds.W+margin ||
		b.Y < bounds.Y-margin || b.Y > bounds.Y+bounds.H+margin
}

// Hits: грубая проверка попадания: расстояние от центра цели меньше
// половины усреднённого размера цели и снаряда.
func (b *Bullet) Hits(target component.Rect) bool {
	cx, cy := target.Center()
	threshold := (target.W + target.H + b.Size + b.Size) / 4 * 0.5
	return component.Distance(cx, cy, b.X, b.Y) < threshold
}
