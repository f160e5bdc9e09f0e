// internal/app/rewards.go
package app

import (
	"log"

	"endless-survival/internal/config"
	"endless-survival/internal/utils"
)

// Chest: сундук с наградой в конце забега
type Chest struct {
	Gold       int
	Experience int
	Opened     bool
}

func (g *Game) rollChests() {
	g.Chests = make([]Chest, config.RewardChestCount)
	for i := range g.Chests {
		g.Chests[i] = Chest{
			Gold:       utils.IntRange(g.Rng, config.ChestGoldMin, config.ChestGoldMax),
			Experience: utils.IntRange(g.Rng, config.ChestExpMin, config.ChestExpMax),
		}
	}
}

// ChestChosen: сундук уже выбран в этом забеге
func (g *Game) ChestChosen() bool {
	for _, c := range g.Chests {
		if c.Opened {
			return true
		}
	}
	return false
}

// OpenedChest возвращает выбранный сундук.
func (g *Game) OpenedChest() (Chest, bool) {
	for _, c := range g.Chests {
		if c.Opened {
			return c, true
		}
	}
	return Chest{}, false
}

// SelectChest открывает сундук и начисляет награду. Открыть можно только
// один сундук, повторный выбор ничего не делает.
func (g *Game) SelectChest(index int) bool {
	if index < 0 || index >= len(g.Chests) || g.ChestChosen() {
		return false
	}
	chest := &g.Chests[index]
	chest.Opened = true
	g.Character.Gold += chest.Gold
	g.Character.AddExperience(chest.Experience)
	log.Printf("Chest %d opened: %d gold, %d experience", index, chest.Gold, chest.Experience)
	if err := g.SaveProgress(); err != nil {
		log.Printf("Failed to save progress: %v", err)
	}
	return true
}
