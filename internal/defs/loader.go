// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Definitions: содержимое файла переопределений баланса.
// Каждая секция необязательна.
type Definitions struct {
	Monsters   []MonsterDefinition   `yaml:"monsters"`
	Skills     []SkillDefinition     `yaml:"skills"`
	Equipment  []EquipmentDefinition `yaml:"equipment"`
	Resources  []ResourceDefinition  `yaml:"resources"`
	SpawnTiers []SpawnTier           `yaml:"spawn_tiers"`
	Drops      []DropEntry           `yaml:"drops"`
}

// LoadDefinitions reads the balance override file and merges it into the built-in tables.
func LoadDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read definitions file: %w", err)
	}

	var overrides Definitions
	if err := yaml.Unmarshal(file, &overrides); err != nil {
		return fmt.Errorf("failed to unmarshal definitions: %w", err)
	}
	return Apply(overrides)
}

// Apply merges overrides into the built-in tables. Skills are matched by name:
// the catalog is fixed, so unknown skill names are rejected.
func Apply(overrides Definitions) error {
	for _, def := range overrides.Skills {
		if _, ok := Skill(def.Name); !ok {
			return fmt.Errorf("unknown skill %q in definitions", def.Name)
		}
		if def.MaxLevel < 1 {
			return fmt.Errorf("skill %q: max_level must be at least 1", def.Name)
		}
	}
	for _, def := range overrides.Monsters {
		if def.Type == "" {
			return fmt.Errorf("monster definition without type")
		}
	}

	for _, def := range overrides.Monsters {
		if def.Size <= 0 {
			def.Size = Monster(def.Type).Size
		}
		MonsterDefs[def.Type] = def
	}
	for _, def := range overrides.Skills {
		for i := range SkillDefs {
			if SkillDefs[i].Name == def.Name {
				SkillDefs[i] = def
			}
		}
	}
	for _, def := range overrides.Equipment {
		replaced := false
		for i := range EquipmentDefs {
			if EquipmentDefs[i].Type == def.Type {
				EquipmentDefs[i] = def
				replaced = true
			}
		}
		if !replaced {
			EquipmentDefs = append(EquipmentDefs, def)
		}
	}
	for _, def := range overrides.Resources {
		ResourceDefs[def.Type] = def
	}
	if len(overrides.SpawnTiers) > 0 {
		SpawnTiers = overrides.SpawnTiers
	}
	if len(overrides.Drops) > 0 {
		DropTable = overrides.Drops
	}

	log.Printf("Loaded definitions: %d monsters, %d skills, %d equipment, %d resources",
		len(overrides.Monsters), len(overrides.Skills), len(overrides.Equipment), len(overrides.Resources))
	return nil
}
