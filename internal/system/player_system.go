// internal/system/player_system.go
package system

import (
	"endless-survival/internal/config"
	"endless-survival/internal/entity"
	"endless-survival/internal/event"
)

// PlayerSystem отвечает за награду за убийство: очки и опыт.
type PlayerSystem struct {
	character *entity.Character
	run       *RunState
}

func NewPlayerSystem(character *entity.Character, run *RunState) *PlayerSystem {
	return &PlayerSystem{character: character, run: run}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.MonsterKilled {
		return
	}
	s.run.Score += config.ScorePerKill
	s.character.AddExperience(config.ExperiencePerKill)
}
