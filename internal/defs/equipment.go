// internal/defs/equipment.go
package defs

// EquipmentType: слот снаряжения
type EquipmentType string

const (
	EquipmentSword  EquipmentType = "sword"
	EquipmentShield EquipmentType = "shield"
	EquipmentBoots  EquipmentType = "boots"
	EquipmentAmulet EquipmentType = "amulet"
)

// StatKind: характеристика, которую усиливает снаряжение
type StatKind string

const (
	StatDamage  StatKind = "damage"
	StatDefense StatKind = "defense"
	StatSpeed   StatKind = "speed"
	StatHealth  StatKind = "health"
	StatNone    StatKind = ""
)

// EquipmentDefinition: базовые константы предмета. На уровне L бонус равен
// BaseStat*L, стоимость BaseCost*L.
type EquipmentDefinition struct {
	Type     EquipmentType `yaml:"type"`
	Name     string        `yaml:"name"`
	Icon     string        `yaml:"icon"`
	Stat     StatKind      `yaml:"stat"`
	BaseStat float64       `yaml:"base_stat"`
	BaseCost int           `yaml:"base_cost"`
	Sprite   string        `yaml:"sprite,omitempty"`
}

// FallbackEquipment: предмет для неизвестного типа: без бонуса, фиксированная цена
var FallbackEquipment = EquipmentDefinition{Name: "Basic Item", Icon: "📦", Stat: StatNone, BaseCost: 10}

// FallbackEquipmentCost: цена и цена улучшения неизвестного предмета
const FallbackEquipmentCost = 10

// EquipmentDefs: ассортимент магазина, порядок совпадает с порядком вывода.
var EquipmentDefs = []EquipmentDefinition{
	{Type: EquipmentSword, Name: "Sword", Icon: "⚔️", Stat: StatDamage, BaseStat: 5, BaseCost: 50},
	{Type: EquipmentShield, Name: "Shield", Icon: "🛡️", Stat: StatDefense, BaseStat: 2, BaseCost: 40},
	{Type: EquipmentBoots, Name: "Boots", Icon: "👢", Stat: StatSpeed, BaseStat: 1, BaseCost: 30},
	{Type: EquipmentAmulet, Name: "Amulet", Icon: "📿", Stat: StatHealth, BaseStat: 20, BaseCost: 60},
}

// Equipment ищет определение по типу.
func Equipment(t EquipmentType) (EquipmentDefinition, bool) {
	for _, def := range EquipmentDefs {
		if def.Type == t {
			return def, true
		}
	}
	return EquipmentDefinition{}, false
}
