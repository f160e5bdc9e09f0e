// internal/system/visual_effect.go
package system

import (
	"fmt"
	"math"

	"endless-survival/internal/component"
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/event"
	"endless-survival/internal/utils"
)

// EffectLayer: вид эффекта, у каждого свой лимит
type EffectLayer int

const (
	LayerAttack EffectLayer = iota
	LayerHit
	LayerDeath
	LayerCollection
	LayerLevelUp
	LayerHealing
	layerCount
)

var layerCaps = [layerCount]int{
	LayerAttack:     config.MaxAttackEffects,
	LayerHit:        config.MaxHitEffects,
	LayerDeath:      config.MaxDeathEffects,
	LayerCollection: config.MaxCollectionEffects,
	LayerLevelUp:    config.MaxLevelUpEffects,
	LayerHealing:    config.MaxHealingEffects,
}

// VisualEffectSystem управляет визуальными эффектами. Эффекты создаются
// по событиям и анимируются в любом режиме игры.
type VisualEffectSystem struct {
	layers [layerCount][]*component.Effect
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem() *VisualEffectSystem {
	return &VisualEffectSystem{}
}

// Subscribe подписывает систему на события, порождающие эффекты.
func (s *VisualEffectSystem) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.AttackFired, event.MonsterHit, event.MonsterKilled, event.ResourceCollected,
		event.LevelUp, event.SkillActivated, event.CharacterHealed,
	} {
		d.Subscribe(t, s)
	}
}

// Layer возвращает эффекты слоя в порядке создания.
func (s *VisualEffectSystem) Layer(layer EffectLayer) []*component.Effect {
	return s.layers[layer]
}

// Count: общее число живых эффектов
func (s *VisualEffectSystem) Count() int {
	n := 0
	for _, l := range s.layers {
		n += len(l)
	}
	return n
}

// Add добавляет эффект в слой.
func (s *VisualEffectSystem) Add(layer EffectLayer, e *component.Effect) {
	s.layers[layer] = append(s.layers[layer], e)
}

// Clear удаляет все эффекты
func (s *VisualEffectSystem) Clear() {
	for i := range s.layers {
		s.layers[i] = nil
	}
}

// Update обновляет все активные визуальные эффекты, удаляет истёкшие
// и срезает самые старые сверх лимита.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for i := range s.layers {
		for _, e := range s.layers[i] {
			e.Update(deltaTime, config.FrameUnit)
		}
		s.layers[i] = utils.RemoveIf(s.layers[i], func(e *component.Effect) bool { return !e.Alive() })
		s.layers[i] = utils.TrimOldest(s.layers[i], layerCaps[i])
	}
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.AttackData:
		line := component.NewEffect(data.FromX, data.FromY, config.AttackLineColor, 2, config.AttackEffectLife, 0)
		line.ToX, line.ToY = data.ToX, data.ToY
		line.Line = true
		line.Fade = true
		s.Add(LayerAttack, line)
	case event.HitData:
		c := config.HitEffectColor
		if data.Critical {
			c = config.LevelUpColor
		}
		s.Add(LayerHit, component.NewEffect(data.X, data.Y, c, config.HitEffectSize, config.HitEffectLife, config.HitEffectExpansion))
	case event.MonsterKilledData:
		c := defs.Monster(defs.MonsterType(data.MonsterType)).Color.RGBA
		s.Add(LayerDeath, component.NewEffect(data.X, data.Y, c, config.DeathEffectSize, config.DeathEffectLife, config.DeathEffectExpansion))
	case event.ResourceData:
		c := defs.Resource(defs.ResourceType(data.ResourceType)).Color.RGBA
		fx := component.NewEffect(data.X, data.Y, c, config.CollectionEffectSize, config.CollectionEffectLife, config.CollectionEffectExpansion)
		fx.Fade = true
		s.Add(LayerCollection, fx)
	case event.LevelUpData:
		fx := component.NewEffect(data.X, data.Y, config.LevelUpColor, config.LevelUpEffectSize, config.LevelUpEffectLife, config.LevelUpEffectExpansion)
		fx.Fade = true
		fx.Text = fmt.Sprintf("LEVEL %d", data.Level)
		s.Add(LayerLevelUp, fx)
	case event.SkillData:
		def, _ := defs.Skill(data.Name)
		look := def.Effect
		if look.Life <= 0 {
			look = defs.SkillEffectDef{Color: defs.MustHex("#9b59b6"), Size: 15, Life: 800}
		}
		fx := component.NewEffect(data.X, data.Y, look.Color.RGBA, look.Size, look.Life, config.SkillEffectExpansion)
		fx.Fade = true
		fx.Text = data.Name
		s.Add(LayerLevelUp, fx)
	case event.HealData:
		fx := component.NewEffect(data.X, data.Y, config.HealingTextColor, 0, config.HealingEffectLife, 0)
		fx.Rise = config.HealingEffectRise
		fx.Fade = true
		fx.Text = fmt.Sprintf("+%d", int(math.Round(data.Amount)))
		s.Add(LayerHealing, fx)
	}
}
