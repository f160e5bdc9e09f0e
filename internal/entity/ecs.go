// internal/entity/ecs.go
package entity

import (
	"endless-survival/internal/types"
	"endless-survival/internal/utils"
)

// Store владеет живыми коллекциями мира. Слайсы хранятся в порядке
// появления, поэтому лимиты срезают самые старые записи.
type Store struct {
	NextID    types.EntityID
	Monsters  []*Monster
	Resources []*Resource
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{NextID: 1}
}

// NewEntity выдаёт следующий идентификатор.
func (s *Store) NewEntity() types.EntityID {
	id := s.NextID
	s.NextID++
	return id
}

// AddMonster добавляет монстра в конец списка.
func (s *Store) AddMonster(m *Monster) {
	s.Monsters = append(s.Monsters, m)
}

// AddResource добавляет ресурс в конец списка.
func (s *Store) AddResource(r *Resource) {
	s.Resources = append(s.Resources, r)
}

// RemoveDeadMonsters удаляет погибших монстров и возвращает их.
func (s *Store) RemoveDeadMonsters() []*Monster {
	var dead []*Monster
	s.Monsters = utils.RemoveIf(s.Monsters, func(m *Monster) bool {
		if m.Dead() {
			dead = append(dead, m)
			return true
		}
		return false
	})
	return dead
}

// RemoveCollectedResources удаляет собранные и истёкшие ресурсы.
func (s *Store) RemoveCollectedResources() {
	s.Resources = utils.RemoveIf(s.Resources, func(r *Resource) bool { return r.Collected })
}

// Trim ограничивает коллекции, удаляя самые старые записи.
func (s *Store) Trim(maxMonsters, maxResources int) {
	s.Monsters = utils.TrimOldest(s.Monsters, maxMonsters)
	s.Resources = utils.TrimOldest(s.Resources, maxResources)
}

// Reset очищает коллекции. Идентификаторы продолжают расти.
func (s *Store) Reset() {
	s.Monsters = nil
	s.Resources = nil
}
