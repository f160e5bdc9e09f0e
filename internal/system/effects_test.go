package system

import (
	"testing"

	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/event"
)

func TestEffectsCreatedFromEvents(t *testing.T) {
	d := event.NewDispatcher()
	fx := NewVisualEffectSystem()
	fx.Subscribe(d)

	d.Dispatch(event.Event{Type: event.AttackFired, Data: event.AttackData{FromX: 1, FromY: 1, ToX: 50, ToY: 50}})
	d.Dispatch(event.Event{Type: event.MonsterHit, Data: event.HitData{X: 10, Y: 10, Damage: 50}})
	d.Dispatch(event.Event{Type: event.MonsterKilled, Data: event.MonsterKilledData{MonsterType: "boss", X: 10, Y: 10}})
	d.Dispatch(event.Event{Type: event.ResourceCollected, Data: event.ResourceData{ResourceType: "gold"}})
	d.Dispatch(event.Event{Type: event.LevelUp, Data: event.LevelUpData{Level: 2}})
	d.Dispatch(event.Event{Type: event.SkillActivated, Data: event.SkillData{Name: defs.SkillPowerAttack}})
	d.Dispatch(event.Event{Type: event.CharacterHealed, Data: event.HealData{Amount: 12.4}})

	for layer, expected := range map[EffectLayer]int{
		LayerAttack: 1, LayerHit: 1, LayerDeath: 1, LayerCollection: 1, LayerLevelUp: 2, LayerHealing: 1,
	} {
		if got := len(fx.Layer(layer)); got != expected {
			t.Errorf("Layer %d: expected %d effects, got %d", layer, expected, got)
		}
	}
	if text := fx.Layer(LayerHealing)[0].Text; text != "+12" {
		t.Errorf("Expected healing text +12, got %q", text)
	}
	if c := fx.Layer(LayerDeath)[0].Color; c != defs.Monster(defs.MonsterBoss).Color.RGBA {
		t.Errorf("Death burst must use the monster color, got %v", c)
	}
	power := fx.Layer(LayerLevelUp)[1]
	if power.MaxLife != 600 || power.Size != 25 {
		t.Errorf("Power attack burst must use its own look, got life=%v size=%v", power.MaxLife, power.Size)
	}
}

func TestEffectsExpireAndRespectCaps(t *testing.T) {
	fx := NewVisualEffectSystem()
	d := event.NewDispatcher()
	fx.Subscribe(d)
	for i := 0; i < config.MaxDeathEffects+15; i++ {
		d.Dispatch(event.Event{Type: event.MonsterKilled, Data: event.MonsterKilledData{X: float64(i)}})
	}
	fx.Update(0)
	death := fx.Layer(LayerDeath)
	if len(death) != config.MaxDeathEffects {
		t.Fatalf("Expected cap %d, got %d", config.MaxDeathEffects, len(death))
	}
	if death[0].X != 15 {
		t.Errorf("Oldest effects must be evicted first, first x=%v", death[0].X)
	}

	fx.Update(config.DeathEffectLife)
	if fx.Count() != 0 {
		t.Errorf("All effects must expire, %d left", fx.Count())
	}
}
