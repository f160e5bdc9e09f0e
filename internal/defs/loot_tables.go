// internal/defs/loot_tables.go
package defs

// ResourceType: тип выпадающего ресурса
type ResourceType string

const (
	ResourceHealth     ResourceType = "health"
	ResourceGold       ResourceType = "gold"
	ResourceExperience ResourceType = "experience"
	ResourceBlood      ResourceType = "blood"
)

// ResourceDefinition: ценность ресурса и время жизни (0 значит не исчезает)
type ResourceDefinition struct {
	Type     ResourceType `yaml:"type"`
	Value    int          `yaml:"value"`
	LifeTime float64      `yaml:"life_time"` // мс
	Color    Color        `yaml:"color"`
	Sprite   string       `yaml:"sprite,omitempty"`
}

// ResourceDefs: таблица ресурсов
var ResourceDefs = map[ResourceType]ResourceDefinition{
	ResourceHealth:     {Type: ResourceHealth, Value: 25, LifeTime: 10000, Color: MustHex("#e74c3c")},
	ResourceGold:       {Type: ResourceGold, Value: 1, Color: MustHex("#f1c40f")},
	ResourceExperience: {Type: ResourceExperience, Value: 10, Color: MustHex("#9b59b6")},
	ResourceBlood:      {Type: ResourceBlood, Value: 5, Color: MustHex("#ff0000")},
}

// unknownResource: ресурс неизвестного типа ничего не даёт и исчезает
var unknownResource = ResourceDefinition{Value: 0, LifeTime: 10000, Color: MustHex("#3498db")}

// Resource возвращает определение ресурса по типу.
func Resource(t ResourceType) ResourceDefinition {
	if def, ok := ResourceDefs[t]; ok {
		return def
	}
	def := unknownResource
	def.Type = t
	return def
}

// DropEntry: одна запись таблицы выпадения: шанс и смещение от позиции монстра.
type DropEntry struct {
	Type    ResourceType `yaml:"type"`
	Chance  float64      `yaml:"chance"`
	OffsetX float64      `yaml:"offset_x"`
	OffsetY float64      `yaml:"offset_y"`
}

// DropTable: что выпадает при смерти монстра. Записи проверяются независимо.
var DropTable = []DropEntry{
	{Type: ResourceExperience, Chance: 1},
	{Type: ResourceGold, Chance: 0.5, OffsetX: 20},
	{Type: ResourceBlood, Chance: 0.3, OffsetX: -20},
	{Type: ResourceHealth, Chance: 0.2, OffsetY: 20},
}
