// internal/app/snapshot.go
package app

import (
	"errors"
	"fmt"
	"log"

	"endless-survival/internal/defs"
	"endless-survival/internal/entity"
	"endless-survival/internal/persistence"
	"endless-survival/internal/state"
)

// Progress снимает прогресс персонажа для сохранения.
func (g *Game) Progress() *persistence.Progress {
	c := g.Character
	p := &persistence.Progress{
		ProfileID:             g.ProfileID,
		Username:              g.Username,
		MaxHealth:             c.MaxHealth,
		Damage:                c.Damage,
		Speed:                 c.Speed,
		Level:                 c.Level,
		Experience:            c.Experience,
		ExperienceToNextLevel: c.ExperienceToNextLevel,
		Gold:                  c.Gold,
	}
	for _, item := range c.Inventory {
		p.Inventory = append(p.Inventory, persistence.InventoryItem{Type: string(item.Type), Level: item.Level})
	}
	for _, s := range c.Skills {
		p.Skills = append(p.Skills, persistence.SkillLevel{Name: s.Name(), CurrentLevel: s.Level})
	}
	return p
}

func validProgress(p *persistence.Progress) error {
	switch {
	case p.MaxHealth <= 0:
		return fmt.Errorf("maxHealth %v", p.MaxHealth)
	case p.Level < 1:
		return fmt.Errorf("level %d", p.Level)
	case p.ExperienceToNextLevel <= 0:
		return fmt.Errorf("experienceToNextLevel %d", p.ExperienceToNextLevel)
	case p.Gold < 0 || p.Experience < 0:
		return fmt.Errorf("negative gold or experience")
	}
	return nil
}

// RestoreProgress применяет сохранённый прогресс к персонажу. Бонусы
// снаряжения повторно не начисляются: сохранённые характеристики их уже
// содержат. Некорректный снимок отклоняется, персонаж не меняется.
func (g *Game) RestoreProgress(p *persistence.Progress) error {
	if p == nil {
		return errors.New("empty progress")
	}
	if err := validProgress(p); err != nil {
		return fmt.Errorf("malformed progress: %w", err)
	}

	c := g.Character
	c.MaxHealth = p.MaxHealth
	c.Health = p.MaxHealth
	c.Damage = p.Damage
	c.Speed = p.Speed
	c.Level = p.Level
	c.Experience = p.Experience
	c.ExperienceToNextLevel = p.ExperienceToNextLevel
	c.Gold = p.Gold

	c.Inventory = nil
	c.Defense = 0
	for _, saved := range p.Inventory {
		t := defs.EquipmentType(saved.Type)
		if c.Equipment(t) != nil {
			continue
		}
		item := entity.NewEquipment(t, saved.Level)
		c.Inventory = append(c.Inventory, item)
		if item.Stat == defs.StatDefense {
			c.Defense += item.Bonus
		}
	}

	for _, s := range c.Skills {
		s.Level = 0
	}
	for _, saved := range p.Skills {
		s := c.Skill(saved.Name)
		if s == nil {
			log.Printf("Unknown skill in save: %q", saved.Name)
			continue
		}
		s.Level = min(max(saved.CurrentLevel, 0), s.Def.MaxLevel)
	}

	g.ProfileID = p.ProfileID
	g.Username = p.Username
	return nil
}

// SaveProgress сохраняет прогресс текущего профиля.
func (g *Game) SaveProgress() error {
	if g.ProfileID == "" {
		return nil
	}
	if err := g.storage.SaveProgress(g.Progress()); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// LoadProgress загружает последний профиль. При отсутствии или порче
// сохранения персонаж остаётся со значениями по умолчанию.
func (g *Game) LoadProgress() bool {
	p, err := g.storage.LatestProgress()
	if err != nil {
		if !errors.Is(err, persistence.ErrNotFound) {
			log.Printf("Failed to load progress: %v", err)
		}
		return false
	}
	if err := g.RestoreProgress(p); err != nil {
		log.Printf("Failed to restore progress: %v", err)
		return false
	}
	log.Printf("Loaded profile %s (level %d)", p.Username, p.Level)
	return true
}

// RunSnapshot снимает состояние текущего забега.
func (g *Game) RunSnapshot() *persistence.RunSnapshot {
	c := g.Character
	return &persistence.RunSnapshot{
		ID:        persistence.NewID(),
		ProfileID: g.ProfileID,
		Score:     g.Run.Score,
		GameTime:  g.Run.GameTime,
		Character: persistence.CharacterState{
			X:                     c.X,
			Y:                     c.Y,
			Health:                c.Health,
			MaxHealth:             c.MaxHealth,
			Damage:                c.Damage,
			Speed:                 c.Speed,
			Level:                 c.Level,
			Experience:            c.Experience,
			ExperienceToNextLevel: c.ExperienceToNextLevel,
			Gold:                  c.Gold,
		},
	}
}

// RestoreRun применяет сохранение забега. Монстры и ресурсы не
// сохраняются, поэтому поле очищается.
func (g *Game) RestoreRun(r *persistence.RunSnapshot) error {
	if r == nil {
		return errors.New("empty run snapshot")
	}
	s := r.Character
	if s.MaxHealth <= 0 || s.Health <= 0 || s.Level < 1 || s.ExperienceToNextLevel <= 0 {
		return errors.New("malformed run snapshot")
	}

	c := g.Character
	c.X, c.Y = s.X, s.Y
	c.ClampTo(g.mapBounds)
	c.Health = min(s.Health, s.MaxHealth)
	c.MaxHealth = s.MaxHealth
	c.Damage = s.Damage
	c.Speed = s.Speed
	c.Level = s.Level
	c.Experience = s.Experience
	c.ExperienceToNextLevel = s.ExperienceToNextLevel
	c.Gold = s.Gold
	c.Bullets = nil

	g.Run.Score = r.Score
	g.Run.GameTime = r.GameTime
	g.Store.Reset()
	g.SpawnSystem.Reset()
	g.VisualEffectSystem.Clear()
	g.Camera.Follow(c.Center())
	return nil
}

// SaveRun сохраняет текущий забег (F5).
func (g *Game) SaveRun() bool {
	if !g.Modes.Is(state.Playing) || g.ProfileID == "" {
		return false
	}
	if err := g.storage.SaveRun(g.RunSnapshot()); err != nil {
		log.Printf("Failed to save run: %v", err)
		return false
	}
	g.ShowNotice("Game saved")
	return true
}

// LoadRun загружает последнее сохранение забега (F9).
func (g *Game) LoadRun() bool {
	if !g.Modes.Is(state.Playing) || g.ProfileID == "" {
		return false
	}
	r, err := g.storage.LoadRun(g.ProfileID)
	if err != nil {
		if !errors.Is(err, persistence.ErrNotFound) {
			log.Printf("Failed to load run: %v", err)
		}
		return false
	}
	if err := g.RestoreRun(r); err != nil {
		log.Printf("Failed to restore run: %v", err)
		return false
	}
	g.ShowNotice("Game loaded")
	return true
}
