// internal/entity/movement.go
package entity

import (
	"endless-survival/internal/component"
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/utils"
)

// Mover: стратегия движения монстра к цели. speed задаётся в пикселях за кадр.
type Mover interface {
	Advance(pos, target component.Position, speed, deltaTime float64) component.Position
}

// NewMover выбирает стратегию по определению монстра.
func NewMover(def defs.MonsterDefinition, rng utils.Random) Mover {
	switch {
	case def.Ranged != nil:
		return RangedMover{Range: def.Ranged.Range}
	case def.ChargeChance > 0:
		mult := def.ChargeMultiplier
		if mult <= 0 {
			mult = 3
		}
		return ChargeMover{Chance: def.ChargeChance, Multiplier: mult, rng: rng}
	case def.JitterChance > 0:
		return JitterMover{Chance: def.JitterChance, rng: rng}
	}
	return ChaseMover{}
}

func step(pos, target component.Position, distance float64) component.Position {
	dx, dy := utils.Normalize(target.X-pos.X, target.Y-pos.Y)
	return component.Position{X: pos.X + dx*distance, Y: pos.Y + dy*distance}
}

// ChaseMover: прямо к цели
type ChaseMover struct{}

func (ChaseMover) Advance(pos, target component.Position, speed, deltaTime float64) component.Position {
	return step(pos, target, speed*deltaTime/config.FrameUnit)
}

// RangedMover держит дистанцию: отходит, если цель ближе Range,
// и подходит на половинной скорости, если дальше.
type RangedMover struct {
	Range float64
}

func (m RangedMover) Advance(pos, target component.Position, speed, deltaTime float64) component.Position {
	distance := component.Distance(pos.X, pos.Y, target.X, target.Y)
	frames := deltaTime / config.FrameUnit
	switch {
	case distance < m.Range:
		return step(pos, target, -speed*frames)
	case distance > m.Range:
		return step(pos, target, speed*0.5*frames)
	}
	return pos
}

// JitterMover: к цели, изредка со случайным боковым смещением
type JitterMover struct {
	Chance float64
	rng    utils.Random
}

func (m JitterMover) Advance(pos, target component.Position, speed, deltaTime float64) component.Position {
	next := step(pos, target, speed*deltaTime/config.FrameUnit)
	if m.rng != nil && utils.Chance(m.rng, m.Chance) {
		next.X += (m.rng.Float64() - 0.5) * speed * 2
		next.Y += (m.rng.Float64() - 0.5) * speed * 2
	}
	return next
}

// ChargeMover: к цели, изредка рывком с увеличенной скоростью
type ChargeMover struct {
	Chance     float64
	Multiplier float64
	rng        utils.Random
}

func (m ChargeMover) Advance(pos, target component.Position, speed, deltaTime float64) component.Position {
	if m.rng != nil && utils.Chance(m.rng, m.Chance) {
		speed *= m.Multiplier
	}
	return step(pos, target, speed*deltaTime/config.FrameUnit)
}
