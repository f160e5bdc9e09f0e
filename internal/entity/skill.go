// internal/entity/skill.go
package entity

import (
	"endless-survival/internal/component"
	"endless-survival/internal/defs"
)

// Skill: экземпляр навыка из каталога. Level 0 означает, что навык не куплен.
type Skill struct {
	Def      defs.SkillDefinition
	Level    int
	Cooldown component.Countdown
	// Накопитель для периодического лечения
	Ticker component.Interval
}

// NewSkill создаёт некупленный навык.
func NewSkill(def defs.SkillDefinition) *Skill {
	return &Skill{
		Def:    def,
		Ticker: component.Interval{Period: def.Interval},
	}
}

func (s *Skill) Name() string { return s.Def.Name }

// Owned: навык куплен хотя бы на первый уровень
func (s *Skill) Owned() bool { return s.Level > 0 }

// CanUpgrade: есть куда расти
func (s *Skill) CanUpgrade() bool {
	return s.Level < s.Def.MaxLevel
}

// Upgrade повышает уровень, если он ниже максимального.
func (s *Skill) Upgrade() bool {
	if !s.CanUpgrade() {
		return false
	}
	s.Level++
	return true
}

// UpgradeCost: стоимость перехода с текущего уровня на следующий.
func (s *Skill) UpgradeCost() int {
	return s.Def.CostPerLevel * s.Level
}

// PurchaseCost: цена в магазине: первая покупка стоит CostPerLevel,
// дальнейшие улучшения UpgradeCost.
func (s *Skill) PurchaseCost() int {
	if s.Level == 0 {
		return s.Def.CostPerLevel
	}
	return s.UpgradeCost()
}

// IsReady: активный навык куплен и не на перезарядке
func (s *Skill) IsReady() bool {
	return s.Def.Kind == defs.SkillActive && s.Level > 0 && s.Cooldown.Done()
}

// Activate запускает перезарядку, если навык готов.
func (s *Skill) Activate() bool {
	if !s.IsReady() {
		return false
	}
	s.Cooldown.Set(s.Def.Cooldown)
	return true
}

// Update уменьшает оставшуюся перезарядку.
func (s *Skill) Update(deltaTime float64) {
	s.Cooldown.Tick(deltaTime)
}

// EffectValue: 0 на нулевом уровне, иначе Base + PerLevel*(Level-1).
func (s *Skill) EffectValue() float64 {
	if s.Level <= 0 {
		return 0
	}
	return s.Def.Base + s.Def.PerLevel*float64(s.Level-1)
}

// Unlocked: персонаж достаточного уровня, чтобы купить навык
func (s *Skill) Unlocked(characterLevel int) bool {
	return characterLevel >= s.Def.UnlockLevel
}

// CooldownFraction: доля оставшейся перезарядки, для индикаторов
func (s *Skill) CooldownFraction() float64 {
	if s.Def.Cooldown <= 0 {
		return 0
	}
	return s.Cooldown.Remaining / s.Def.Cooldown
}
