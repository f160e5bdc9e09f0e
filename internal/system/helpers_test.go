package system

import (
	"testing"

	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/entity"
	"endless-survival/internal/event"
	"endless-survival/internal/utils"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type world struct {
	store      *entity.Store
	dispatcher *event.Dispatcher
	character  *entity.Character
	combat     *CombatSystem
	projectile *ProjectileSystem
	rec        *recorder
}

// newWorld собирает минимальный мир: персонаж в (1000, 1000), без монстров
func newWorld(t *testing.T, rng utils.Random) *world {
	t.Helper()
	if rng == nil {
		rng = &utils.SequenceRandom{Floats: []float64{0.99}}
	}
	w := &world{
		store:      entity.NewStore(),
		dispatcher: event.NewDispatcher(),
		rec:        &recorder{},
	}
	for _, et := range []event.EventType{
		event.MonsterHit, event.MonsterKilled, event.CharacterHit, event.AttackDodged,
		event.ResourceCollected, event.SkillActivated,
	} {
		w.dispatcher.Subscribe(et, w.rec)
	}
	w.character = entity.NewCharacter(1000, 1000, w.dispatcher, rng)
	w.combat = NewCombatSystem(w.store, w.dispatcher)
	w.projectile = NewProjectileSystem(w.store, w.dispatcher, w.combat, rng)
	return w
}

// spawnAt ставит монстра так, чтобы его центр оказался в (cx, cy)
func (w *world) spawnAt(t defs.MonsterType, cx, cy float64) *entity.Monster {
	m := entity.NewMonster(w.store.NewEntity(), 0, 0, t, 1, nil)
	m.X = cx - m.Width/2
	m.Y = cy - m.Height/2
	w.store.AddMonster(m)
	return m
}

func learn(c *entity.Character, name string, level int) *entity.Skill {
	s := c.Skill(name)
	for s.Level < level {
		s.Upgrade()
	}
	return s
}

func newMonsterBullet(x, y, damage float64) *entity.Bullet {
	b := entity.NewBullet(x, y, x+1, y, 5, damage, config.MonsterBulletColor, entity.OwnerMonster)
	return b
}
