// internal/system/projectile.go
package system

import (
	"endless-survival/internal/entity"
	"endless-survival/internal/event"
	"endless-survival/internal/utils"
)

// ProjectileSystem проверяет попадания снарядов персонажа по монстрам
// и снарядов монстров по персонажу.
type ProjectileSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
	combatSystem    *CombatSystem
	rng             utils.Random
}

func NewProjectileSystem(store *entity.Store, eventDispatcher *event.Dispatcher, combatSystem *CombatSystem, rng utils.Random) *ProjectileSystem {
	return &ProjectileSystem{
		store:           store,
		eventDispatcher: eventDispatcher,
		combatSystem:    combatSystem,
		rng:             rng,
	}
}

// ResolvePlayerBullets: каждый снаряд поражает не больше одного монстра
// и после попадания исчезает.
func (s *ProjectileSystem) ResolvePlayerBullets(character *entity.Character) int {
	hits := 0
	character.Bullets = utils.RemoveIf(character.Bullets, func(b *entity.Bullet) bool {
		for _, m := range s.store.Monsters {
			if m.Dead() || !b.Hits(m.Rect()) {
				continue
			}
			s.combatSystem.ApplyDamage(m, b.Damage, "bullet", b.Critical)
			hits++
			return true
		}
		return false
	})
	return hits
}

// ResolveMonsterBullets: снаряды монстров по персонажу. Уклонение отменяет
// урон, но снаряд исчезает в любом случае.
func (s *ProjectileSystem) ResolveMonsterBullets(character *entity.Character) int {
	hits := 0
	box := character.Rect()
	dodge := character.DodgeChance()
	cx, cy := character.Center()
	for _, m := range s.store.Monsters {
		m.Bullets = utils.RemoveIf(m.Bullets, func(b *entity.Bullet) bool {
			if !b.Hits(box) {
				return false
			}
			if utils.Chance(s.rng, dodge) {
				s.eventDispatcher.Dispatch(event.Event{Type: event.AttackDodged, Data: event.HitData{
					MonsterType: string(m.Type), Source: "projectile", X: cx, Y: cy,
				}})
				return true
			}
			character.TakeDamage(b.Damage)
			hits++
			s.eventDispatcher.Dispatch(event.Event{Type: event.CharacterHit, Data: event.HitData{
				MonsterType: string(m.Type), Damage: b.Damage, Source: "projectile", X: cx, Y: cy,
			}})
			return true
		})
	}
	return hits
}
