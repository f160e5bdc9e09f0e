// internal/event/types.go
package event

import "endless-survival/internal/types"

const (
	MonsterKilled     EventType = "MonsterKilled"
	MonsterHit        EventType = "MonsterHit"
	CharacterHit      EventType = "CharacterHit"
	CharacterHealed   EventType = "CharacterHealed"
	CharacterDied     EventType = "CharacterDied"
	LevelUp           EventType = "LevelUp"
	ResourceCollected EventType = "ResourceCollected"
	SkillActivated    EventType = "SkillActivated"
	AttackFired       EventType = "AttackFired"
	AttackDodged      EventType = "AttackDodged"
	ModeChanged       EventType = "ModeChanged"
	ItemPurchased     EventType = "ItemPurchased"
)

// MonsterKilledData — монстр погиб, X и Y задают его центр
type MonsterKilledData struct {
	ID          types.EntityID
	MonsterType string
	X, Y        float64
	Size        float64
}

// HitData — попадание по монстру или персонажу
type HitData struct {
	MonsterType string
	Damage      float64
	Source      string // "bullet", "orbit", "contact", "projectile"
	X, Y        float64
	Critical    bool
}

// HealData — фактически восстановленное здоровье (после ограничения максимумом)
type HealData struct {
	Amount float64
	X, Y   float64
}

// LevelUpData — новый уровень персонажа
type LevelUpData struct {
	Level int
	X, Y  float64
}

// ResourceData — подобранный ресурс и начисленное значение
type ResourceData struct {
	ResourceType string
	Value        int
	X, Y         float64
}

// SkillData — активированный навык
type SkillData struct {
	Name string
	X, Y float64
}

// AttackData — выстрел персонажа от точки до цели
type AttackData struct {
	FromX, FromY float64
	ToX, ToY     float64
	Bullets      int
}

// ModeData — смена режима игры
type ModeData struct {
	From, To string
}

// PurchaseData — покупка или улучшение в магазине
type PurchaseData struct {
	Item  string
	Level int
	Cost  int
}
