// internal/defs/skills.go
package defs

// SkillKind: пассивный или активируемый навык
type SkillKind string

const (
	SkillPassive SkillKind = "passive"
	SkillActive  SkillKind = "active"
)

// ValueKind: как потребители трактуют значение эффекта
type ValueKind string

const (
	ValueDamage   ValueKind = "damage"
	ValueHeal     ValueKind = "heal"
	ValueChance   ValueKind = "chance"
	ValueRange    ValueKind = "range"
	ValueMovement ValueKind = "movement"
	ValueCount    ValueKind = "count"
)

// Имена навыков каталога
const (
	SkillCriticalStrike = "Critical Strike"
	SkillWhirlwind      = "Whirlwind"
	SkillPowerAttack    = "Power Attack"
	SkillRegeneration   = "Health Regeneration"
	SkillHealing        = "Healing"
	SkillSecondWind     = "Second Wind"
	SkillDash           = "Dash"
	SkillEvasion        = "Evasion"
	SkillGoldFinder     = "Gold Finder"
	SkillExpBoost       = "Experience Boost"
	SkillMagnet         = "Resource Magnet"
	SkillTripleEff      = "Triple Eff"
	SkillMultiShot      = "Multi Shot"
)

// SkillDefinition: описание навыка. Значение эффекта на уровне L >= 1
// равно Base + PerLevel*(L-1).
type SkillDefinition struct {
	Name         string         `yaml:"name"`
	Description  string         `yaml:"description"`
	Kind         SkillKind      `yaml:"kind"`
	Value        ValueKind      `yaml:"value"`
	Base         float64        `yaml:"base"`
	PerLevel     float64        `yaml:"per_level"`
	Cooldown     float64        `yaml:"cooldown,omitempty"` // мс, только для активных
	Interval     float64        `yaml:"interval,omitempty"` // мс, период для лечения
	Duration     float64        `yaml:"duration,omitempty"` // мс, длительность действия
	MaxLevel     int            `yaml:"max_level"`
	UnlockLevel  int            `yaml:"unlock_level"`
	CostPerLevel int            `yaml:"cost_per_level"`
	Effect       SkillEffectDef `yaml:"effect"`
}

// SkillEffectDef: всплеск, который рисуется при срабатывании навыка
type SkillEffectDef struct {
	Color Color   `yaml:"color"`
	Size  float64 `yaml:"size"`
	Life  float64 `yaml:"life"`
}

var defaultSkillEffect = SkillEffectDef{Color: MustHex("#9b59b6"), Size: 15, Life: 800}

// SkillDefs: фиксированный каталог навыков, порядок совпадает с порядком в магазине.
var SkillDefs = []SkillDefinition{
	{
		Name: SkillCriticalStrike, Description: "Chance to deal double damage",
		Kind: SkillPassive, Value: ValueChance, Base: 5, PerLevel: 5,
		MaxLevel: 5, UnlockLevel: 3, CostPerLevel: 100, Effect: defaultSkillEffect,
	},
	{
		Name: SkillWhirlwind, Description: "Orbiting blades damage nearby monsters",
		Kind: SkillPassive, Value: ValueDamage, Base: 50, PerLevel: 25,
		MaxLevel: 5, UnlockLevel: 5, CostPerLevel: 150,
		Effect: SkillEffectDef{Color: MustHex("#3498db"), Size: 20, Life: 1000},
	},
	{
		Name: SkillPowerAttack, Description: "Next attack deals bonus damage",
		Kind: SkillActive, Value: ValueDamage, Base: 150, PerLevel: 30, Cooldown: 10000,
		MaxLevel: 5, UnlockLevel: 7, CostPerLevel: 120,
		Effect: SkillEffectDef{Color: MustHex("#e74c3c"), Size: 25, Life: 600},
	},
	{
		Name: SkillRegeneration, Description: "Restores health every second",
		Kind: SkillPassive, Value: ValueHeal, Base: 1, PerLevel: 1, Interval: 1000,
		MaxLevel: 5, UnlockLevel: 4, CostPerLevel: 100,
		Effect: SkillEffectDef{Color: MustHex("#2ecc71"), Size: 15, Life: 1200},
	},
	{
		Name: SkillHealing, Description: "Restores health every five seconds",
		Kind: SkillPassive, Value: ValueHeal, Base: 10, PerLevel: 5, Interval: 5000,
		MaxLevel: 5, UnlockLevel: 5, CostPerLevel: 120,
		Effect: SkillEffectDef{Color: MustHex("#2ecc71"), Size: 15, Life: 1200},
	},
	{
		Name: SkillSecondWind, Description: "Restores a share of max health",
		Kind: SkillActive, Value: ValueHeal, Base: 30, PerLevel: 5, Cooldown: 60000,
		MaxLevel: 3, UnlockLevel: 8, CostPerLevel: 200,
		Effect: SkillEffectDef{Color: MustHex("#2ecc71"), Size: 30, Life: 1500},
	},
	{
		Name: SkillDash, Description: "Short burst of speed",
		Kind: SkillActive, Value: ValueMovement, Base: 2, PerLevel: 1, Cooldown: 8000, Duration: 300,
		MaxLevel: 3, UnlockLevel: 5, CostPerLevel: 120, Effect: defaultSkillEffect,
	},
	{
		Name: SkillEvasion, Description: "Chance to dodge projectiles",
		Kind: SkillPassive, Value: ValueChance, Base: 5, PerLevel: 5,
		MaxLevel: 5, UnlockLevel: 7, CostPerLevel: 150, Effect: defaultSkillEffect,
	},
	{
		Name: SkillGoldFinder, Description: "More gold from drops",
		Kind: SkillPassive, Value: ValueChance, Base: 5, PerLevel: 5,
		MaxLevel: 5, UnlockLevel: 4, CostPerLevel: 100, Effect: defaultSkillEffect,
	},
	{
		Name: SkillExpBoost, Description: "More experience from drops",
		Kind: SkillPassive, Value: ValueChance, Base: 10, PerLevel: 10,
		MaxLevel: 5, UnlockLevel: 6, CostPerLevel: 120, Effect: defaultSkillEffect,
	},
	{
		Name: SkillMagnet, Description: "Larger pickup range",
		Kind: SkillPassive, Value: ValueRange, Base: 20, PerLevel: 20,
		MaxLevel: 3, UnlockLevel: 9, CostPerLevel: 180, Effect: defaultSkillEffect,
	},
	{
		Name: SkillTripleEff, Description: "Strike several monsters at once",
		Kind: SkillActive, Value: ValueCount, Base: 3, PerLevel: 0, Cooldown: 3000,
		MaxLevel: 3, UnlockLevel: 3, CostPerLevel: 150, Effect: defaultSkillEffect,
	},
	{
		Name: SkillMultiShot, Description: "More bullets per attack",
		Kind: SkillPassive, Value: ValueCount, Base: 1, PerLevel: 1,
		MaxLevel: 5, UnlockLevel: 2, CostPerLevel: 100, Effect: defaultSkillEffect,
	},
}

// Skill ищет определение навыка по имени.
func Skill(name string) (SkillDefinition, bool) {
	for _, def := range SkillDefs {
		if def.Name == name {
			return def, true
		}
	}
	return SkillDefinition{}, false
}
