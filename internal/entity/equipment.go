// internal/entity/equipment.go
package entity

import (
	"fmt"
	"math"

	"endless-survival/internal/defs"
)

// Equipment: предмет снаряжения. Характеристики выводятся из типа и уровня.
type Equipment struct {
	Type  defs.EquipmentType
	Level int
	Name  string
	Icon  string
	Stat  defs.StatKind
	Bonus float64
	Cost  int

	def   defs.EquipmentDefinition
	known bool
}

// NewEquipment создаёт предмет заданного уровня. Неизвестный тип даёт
// "Basic Item" без бонуса.
func NewEquipment(t defs.EquipmentType, level int) *Equipment {
	if level < 1 {
		level = 1
	}
	def, ok := defs.Equipment(t)
	if !ok {
		def = defs.FallbackEquipment
		def.Type = t
	}
	e := &Equipment{Type: t, Level: level, def: def, known: ok}
	e.recompute()
	return e
}

func (e *Equipment) recompute() {
	e.Name = e.def.Name
	e.Icon = e.def.Icon
	e.Stat = e.def.Stat
	if !e.known {
		e.Bonus = 0
		e.Cost = defs.FallbackEquipmentCost
		return
	}
	e.Bonus = e.def.BaseStat * float64(e.Level)
	e.Cost = e.def.BaseCost * e.Level
}

// Upgrade повышает уровень и возвращает прирост бонуса.
func (e *Equipment) Upgrade() float64 {
	before := e.Bonus
	e.Level++
	e.recompute()
	return e.Bonus - before
}

// UpgradeCost: цена следующего уровня со скидкой 25%, округлённая вниз.
func (e *Equipment) UpgradeCost() int {
	if !e.known {
		return defs.FallbackEquipmentCost
	}
	return int(math.Floor(float64(e.def.BaseCost*(e.Level+1)) * 0.75))
}

// Description возвращает строку с текущим бонусом.
func (e *Equipment) Description() string {
	switch e.Stat {
	case defs.StatDamage:
		return fmt.Sprintf("Damage: +%g", e.Bonus)
	case defs.StatDefense:
		return fmt.Sprintf("Defense: +%g", e.Bonus)
	case defs.StatSpeed:
		return fmt.Sprintf("Speed: +%g", e.Bonus)
	case defs.StatHealth:
		return fmt.Sprintf("Health: +%g", e.Bonus)
	}
	return "A mysterious item"
}
