package system

import (
	"testing"

	"endless-survival/internal/event"
)

type sounds struct{ played []string }

func (s *sounds) PlaySound(name string) { s.played = append(s.played, name) }

func TestSoundCues(t *testing.T) {
	tests := []struct {
		name     string
		event    event.Event
		expected []string
	}{
		{"Attack", event.Event{Type: event.AttackFired, Data: event.AttackData{}}, []string{SoundAttack}},
		{"Kill", event.Event{Type: event.MonsterKilled, Data: event.MonsterKilledData{}}, []string{SoundMonsterDeath}},
		{"Projectile hit", event.Event{Type: event.CharacterHit, Data: event.HitData{Source: "projectile"}}, []string{SoundPlayerHit}},
		{"Contact hit is silent", event.Event{Type: event.CharacterHit, Data: event.HitData{Source: "contact"}}, nil},
		{"Purchase", event.Event{Type: event.ItemPurchased, Data: event.PurchaseData{}}, []string{SoundPurchase}},
		{"Death", event.Event{Type: event.CharacterDied}, []string{SoundGameOver}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := &sounds{}
			d := event.NewDispatcher()
			NewSoundSystem(player).Subscribe(d)
			d.Dispatch(tt.event)
			if len(player.played) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, player.played)
			}
			for i := range tt.expected {
				if player.played[i] != tt.expected[i] {
					t.Errorf("Expected %v, got %v", tt.expected, player.played)
				}
			}
		})
	}

	// без проигрывателя события просто игнорируются
	NewSoundSystem(nil).OnEvent(event.Event{Type: event.AttackFired})
}
