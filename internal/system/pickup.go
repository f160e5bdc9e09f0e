// internal/system/pickup.go
package system

import (
	"math"

	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/entity"
	"endless-survival/internal/event"
	"endless-survival/internal/utils"
)

// PickupSystem собирает ресурсы, которых касается персонаж
type PickupSystem struct {
	store           *entity.Store
	eventDispatcher *event.Dispatcher
}

func NewPickupSystem(store *entity.Store, eventDispatcher *event.Dispatcher) *PickupSystem {
	return &PickupSystem{store: store, eventDispatcher: eventDispatcher}
}

// Update собирает пересекающиеся ресурсы и применяет их эффект.
func (s *PickupSystem) Update(character *entity.Character) int {
	box := character.PickupRect()
	collected := 0
	for _, r := range s.store.Resources {
		if r.Collected || !box.Overlaps(r.Rect()) {
			continue
		}
		kind, value := r.Collect()
		applied := ApplyResource(character, kind, value)
		collected++
		cx, cy := r.Rect().Center()
		s.eventDispatcher.Dispatch(event.Event{Type: event.ResourceCollected, Data: event.ResourceData{
			ResourceType: string(kind), Value: applied, X: cx, Y: cy,
		}})
	}
	s.store.RemoveCollectedResources()
	return collected
}

// ApplyResource начисляет ресурс персонажу и возвращает фактическое значение.
// Кровь пока конвертируется в золото.
func ApplyResource(character *entity.Character, kind defs.ResourceType, value int) int {
	switch kind {
	case defs.ResourceHealth:
		return int(character.Heal(float64(value)))
	case defs.ResourceGold:
		gold := int(math.Floor(float64(value) * character.GoldMultiplier()))
		character.Gold += gold
		return gold
	case defs.ResourceExperience:
		exp := int(math.Floor(float64(value) * character.ExperienceMultiplier()))
		character.AddExperience(exp)
		return exp
	case defs.ResourceBlood:
		character.Gold += value
		return value
	}
	return 0
}

// LootSystem создаёт ресурсы на месте погибших монстров
type LootSystem struct {
	store *entity.Store
	rng   utils.Random
}

func NewLootSystem(store *entity.Store, rng utils.Random) *LootSystem {
	return &LootSystem{store: store, rng: rng}
}

// OnEvent обрабатывает MonsterKilled.
func (s *LootSystem) OnEvent(e event.Event) {
	if e.Type != event.MonsterKilled {
		return
	}
	data, ok := e.Data.(event.MonsterKilledData)
	if !ok {
		return
	}
	s.Drop(data.X, data.Y)
}

// Drop бросает по таблице выпадения. X и Y задают центр погибшего монстра.
func (s *LootSystem) Drop(x, y float64) []*entity.Resource {
	var dropped []*entity.Resource
	half := config.ResourceSize / 2
	for _, entry := range defs.DropTable {
		if entry.Chance < 1 && !utils.Chance(s.rng, entry.Chance) {
			continue
		}
		r := entity.NewResource(s.store.NewEntity(), x-half+entry.OffsetX, y-half+entry.OffsetY, entry.Type)
		s.store.AddResource(r)
		dropped = append(dropped, r)
	}
	return dropped
}
