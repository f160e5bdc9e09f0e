// internal/defs/enemies.go
package defs

// MonsterType: тип монстра
type MonsterType string

const (
	MonsterNormal MonsterType = "normal"
	MonsterFast   MonsterType = "fast"
	MonsterTanker MonsterType = "tanker"
	MonsterRanged MonsterType = "ranged"
	MonsterElite  MonsterType = "elite"
	MonsterBoss   MonsterType = "boss"
)

// MonsterDefinition holds all the static data for a specific type of monster.
// Health and Damage are base values, scaled by the difficulty factor at spawn.
type MonsterDefinition struct {
	Type   MonsterType `yaml:"type"`
	Name   string      `yaml:"name"`
	Health float64     `yaml:"health"`
	Damage float64     `yaml:"damage"`
	Speed  float64     `yaml:"speed"`
	Size   float64     `yaml:"size"`
	Color  Color       `yaml:"color"`
	Sprite string      `yaml:"sprite,omitempty"`
	Ranged *RangedDef  `yaml:"ranged,omitempty"`
	// Вероятность случайного бокового рывка за тик
	JitterChance float64 `yaml:"jitter_chance,omitempty"`
	// Вероятность рывка с ускорением ChargeMultiplier за тик
	ChargeChance     float64 `yaml:"charge_chance,omitempty"`
	ChargeMultiplier float64 `yaml:"charge_multiplier,omitempty"`
}

// RangedDef describes how a ranged monster keeps distance and shoots.
type RangedDef struct {
	Range        float64 `yaml:"range"`
	Reach        float64 `yaml:"reach"` // дальность, с которой монстр начинает стрелять
	ShotCooldown float64 `yaml:"shot_cooldown"` // мс
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletLife   float64 `yaml:"bullet_life"` // мс
}

// MonsterDefs is the library of all monster definitions, mapped by type.
var MonsterDefs = map[MonsterType]MonsterDefinition{
	MonsterNormal: {Type: MonsterNormal, Name: "Monster", Health: 80, Damage: 8, Speed: 3, Size: 30, Color: MustHex("#2ecc71")},
	MonsterFast:   {Type: MonsterFast, Name: "Runner", Health: 40, Damage: 6, Speed: 4, Size: 30, Color: MustHex("#f39c12")},
	MonsterTanker: {Type: MonsterTanker, Name: "Tanker", Health: 120, Damage: 12, Speed: 1, Size: 30, Color: MustHex("#e74c3c")},
	MonsterRanged: {
		Type: MonsterRanged, Name: "Archer", Health: 55, Damage: 9, Speed: 2, Size: 30, Color: MustHex("#9b59b6"),
		Ranged: &RangedDef{Range: 150, Reach: 300, ShotCooldown: 2000, BulletSpeed: 5, BulletLife: 1000},
	},
	MonsterElite: {Type: MonsterElite, Name: "Elite", Health: 240, Damage: 20, Speed: 2, Size: 30, Color: MustHex("#ff6600"), JitterChance: 0.02},
	MonsterBoss: {
		Type: MonsterBoss, Name: "Boss", Health: 800, Damage: 40, Speed: 2, Size: 60, Color: MustHex("#800080"),
		ChargeChance: 0.005, ChargeMultiplier: 3,
	},
}

// Monster возвращает определение по типу. Неизвестный тип даёт обычного монстра.
func Monster(t MonsterType) MonsterDefinition {
	if def, ok := MonsterDefs[t]; ok {
		return def
	}
	return MonsterDefs[MonsterNormal]
}
