// internal/system/combat.go
package system

import (
	"sort"

	"endless-survival/internal/component"
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/entity"
	"endless-survival/internal/event"
)

// CombatSystem отвечает за выбор целей, контактный урон, урон вихря
// и атаку персонажа.
type CombatSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(store *entity.Store, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{store: store, eventDispatcher: eventDispatcher}
}

// FindTargets возвращает до max ближайших живых монстров в радиусе атаки,
// отсортированных по расстоянию.
func (s *CombatSystem) FindTargets(character *entity.Character, max int) []*entity.Monster {
	cx, cy := character.Center()
	type candidate struct {
		monster  *entity.Monster
		distance float64
	}
	var candidates []candidate
	for _, m := range s.store.Monsters {
		if m.Dead() {
			continue
		}
		mx, my := m.Center()
		d := component.Distance(cx, cy, mx, my)
		if d <= config.AttackRange {
			candidates = append(candidates, candidate{m, d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})
	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]*entity.Monster, len(candidates))
	for i, c := range candidates {
		out[i] = c.monster
	}
	return out
}

// ApplyContactDamage: каждый монстр, пересекающийся с персонажем,
// наносит 10% своего урона за кадр.
func (s *CombatSystem) ApplyContactDamage(character *entity.Character) {
	box := character.Rect()
	for _, m := range s.store.Monsters {
		if m.Dead() || !box.Overlaps(m.Rect()) {
			continue
		}
		damage := m.Damage * config.ContactDamageFactor
		character.TakeDamage(damage)
		cx, cy := character.Center()
		s.eventDispatcher.Dispatch(event.Event{Type: event.CharacterHit, Data: event.HitData{
			MonsterType: string(m.Type), Damage: damage, Source: "contact", X: cx, Y: cy,
		}})
	}
}

// ApplyOrbitDamage проверяет сферы вихря. За кадр засчитывается не более
// одного попадания на всю систему.
func (s *CombatSystem) ApplyOrbitDamage(character *entity.Character) bool {
	damage := character.SkillValue(defs.SkillWhirlwind)
	if damage <= 0 {
		return false
	}
	for _, ball := range character.OrbitBalls() {
		for _, m := range s.store.Monsters {
			if m.Dead() {
				continue
			}
			mx, my := m.Center()
			if component.Distance(ball.X, ball.Y, mx, my) < config.OrbitBallRadius+m.Width/2 {
				s.ApplyDamage(m, damage, "orbit", false)
				return true
			}
		}
	}
	return false
}

// ResolveAttack: если готов навык нескольких целей и есть цели, атакуем
// ближайшую из них и запускаем перезарядку навыка. Иначе обычная атака по
// ближайшей цели.
func (s *CombatSystem) ResolveAttack(character *entity.Character, nearest *entity.Monster, group []*entity.Monster) bool {
	if multi := character.Skill(defs.SkillTripleEff); multi != nil && multi.IsReady() && len(group) > 0 {
		tx, ty := group[0].Center()
		if character.Attack(tx, ty) {
			multi.Activate()
			cx, cy := character.Center()
			s.eventDispatcher.Dispatch(event.Event{Type: event.SkillActivated, Data: event.SkillData{
				Name: defs.SkillTripleEff, X: cx, Y: cy,
			}})
			return true
		}
		return false
	}
	if nearest != nil && character.CanAttack() {
		tx, ty := nearest.Center()
		return character.Attack(tx, ty)
	}
	return false
}

// ApplyDamage наносит урон монстру и сообщает о попадании. В событие
// попадает фактически снятое здоровье, без избыточного урона.
func (s *CombatSystem) ApplyDamage(m *entity.Monster, damage float64, source string, critical bool) float64 {
	before := m.Health
	m.TakeDamage(damage)
	dealt := before - m.Health
	mx, my := m.Center()
	s.eventDispatcher.Dispatch(event.Event{Type: event.MonsterHit, Data: event.HitData{
		MonsterType: string(m.Type), Damage: dealt, Source: source, X: mx, Y: my, Critical: critical,
	}})
	return dealt
}

// RemoveDead убирает погибших монстров и рассылает MonsterKilled.
func (s *CombatSystem) RemoveDead() int {
	dead := s.store.RemoveDeadMonsters()
	for _, m := range dead {
		mx, my := m.Center()
		s.eventDispatcher.Dispatch(event.Event{Type: event.MonsterKilled, Data: event.MonsterKilledData{
			ID: m.ID, MonsterType: string(m.Type), X: mx, Y: my, Size: m.Width,
		}})
	}
	return len(dead)
}
