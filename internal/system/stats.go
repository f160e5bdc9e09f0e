// internal/system/stats.go
package system

import (
	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/event"
)

// CombatLogEntry: одно попадание по монстру
type CombatLogEntry struct {
	MonsterType string
	Damage      float64
	Time        float64 // мс с начала забега
}

// Statistics: статистика забега
type Statistics struct {
	MonstersDestroyed    int
	TotalDamageCaused    float64
	DamageReceived       float64
	TotalHealthRecovered float64
	GoldCollected        int
	BloodCollected       int
	// последние попадания, самое свежее первым
	CombatLog []CombatLogEntry
}

// StatsSystem собирает статистику по событиям
type StatsSystem struct {
	Stats Statistics
	run   *RunState
}

func NewStatsSystem(run *RunState) *StatsSystem {
	return &StatsSystem{run: run}
}

// Reset обнуляет статистику
func (s *StatsSystem) Reset() {
	s.Stats = Statistics{}
}

// Subscribe подписывает систему на нужные события.
func (s *StatsSystem) Subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.MonsterHit, event.MonsterKilled, event.CharacterHit,
		event.CharacterHealed, event.ResourceCollected,
	} {
		d.Subscribe(t, s)
	}
}

func (s *StatsSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.HitData:
		if e.Type == event.MonsterHit {
			s.Stats.TotalDamageCaused += data.Damage
			s.log(data)
		} else if e.Type == event.CharacterHit {
			s.Stats.DamageReceived += data.Damage
		}
	case event.MonsterKilledData:
		s.Stats.MonstersDestroyed++
	case event.HealData:
		s.Stats.TotalHealthRecovered += data.Amount
	case event.ResourceData:
		switch defs.ResourceType(data.ResourceType) {
		case defs.ResourceGold:
			s.Stats.GoldCollected += data.Value
		case defs.ResourceBlood:
			s.Stats.BloodCollected++
			s.Stats.GoldCollected += data.Value
		}
	}
}

func (s *StatsSystem) log(hit event.HitData) {
	entry := CombatLogEntry{MonsterType: hit.MonsterType, Damage: hit.Damage, Time: s.run.GameTime}
	s.Stats.CombatLog = append([]CombatLogEntry{entry}, s.Stats.CombatLog...)
	if len(s.Stats.CombatLog) > config.CombatLogSize {
		s.Stats.CombatLog = s.Stats.CombatLog[:config.CombatLogSize]
	}
}
