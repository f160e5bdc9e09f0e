// internal/system/sound.go
package system

import "endless-survival/internal/event"

// SoundPlayer: проигрывание звука по имени, без ожидания результата
type SoundPlayer interface {
	PlaySound(name string)
}

// Имена звуков
const (
	SoundAttack       = "attack"
	SoundPlayerHit    = "playerHit"
	SoundMonsterDeath = "monsterDeath"
	SoundCollect      = "collect"
	SoundLevelUp      = "levelUp"
	SoundPurchase     = "purchase"
	SoundGameOver     = "gameOver"
)

var soundByEvent = map[event.EventType]string{
	event.AttackFired:       SoundAttack,
	event.MonsterKilled:     SoundMonsterDeath,
	event.ResourceCollected: SoundCollect,
	event.LevelUp:           SoundLevelUp,
	event.ItemPurchased:     SoundPurchase,
	event.CharacterDied:     SoundGameOver,
}

// SoundSystem переводит игровые события в звуки
type SoundSystem struct {
	player SoundPlayer
}

func NewSoundSystem(player SoundPlayer) *SoundSystem {
	return &SoundSystem{player: player}
}

// Subscribe подписывает систему на события со звуком.
func (s *SoundSystem) Subscribe(d *event.Dispatcher) {
	for t := range soundByEvent {
		d.Subscribe(t, s)
	}
	d.Subscribe(event.CharacterHit, s)
}

func (s *SoundSystem) OnEvent(e event.Event) {
	if s.player == nil {
		return
	}
	if e.Type == event.CharacterHit {
		// контактный урон идёт каждый кадр, звук только для снарядов
		if hit, ok := e.Data.(event.HitData); ok && hit.Source == "projectile" {
			s.player.PlaySound(SoundPlayerHit)
		}
		return
	}
	if name, ok := soundByEvent[e.Type]; ok {
		s.player.PlaySound(name)
	}
}
