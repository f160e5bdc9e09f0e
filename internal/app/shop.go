// internal/app/shop.go
package app

import (
	"fmt"
	"log"

	"endless-survival/internal/config"
	"endless-survival/internal/defs"
	"endless-survival/internal/entity"
	"endless-survival/internal/event"
	"endless-survival/internal/ui"
	"endless-survival/internal/utils"
)

// ShopTab: вкладка магазина
type ShopTab int

const (
	EquipmentTab ShopTab = iota
	SkillsTab
)

// ShopView: состояние экрана магазина
type ShopView struct {
	Tab    ShopTab
	Scroll float64
}

// ShopItem: строка магазина, как её видит игрок
type ShopItem struct {
	Name        string
	Icon        string
	Description string
	Level       int
	MaxLevel    int
	Cost        int
	Affordable  bool
	Maxed       bool

	equipment defs.EquipmentType
	skill     string
}

// ShopItems: товары текущей вкладки. Во вкладке навыков только навыки,
// доступные по уровню персонажа.
func (g *Game) ShopItems() []ShopItem {
	c := g.Character
	var items []ShopItem
	if g.Shop.Tab == EquipmentTab {
		for _, def := range defs.EquipmentDefs {
			item := ShopItem{Name: def.Name, Icon: def.Icon, MaxLevel: config.MaxEquipmentLevel, equipment: def.Type}
			if owned := c.Equipment(def.Type); owned != nil {
				item.Level = owned.Level
				item.Description = owned.Description()
				item.Maxed = owned.Level >= config.MaxEquipmentLevel
				item.Cost = owned.UpgradeCost()
			} else {
				fresh := entity.NewEquipment(def.Type, 1)
				item.Description = fresh.Description()
				item.Cost = fresh.Cost
			}
			item.Affordable = !item.Maxed && c.Gold >= item.Cost
			items = append(items, item)
		}
		return items
	}

	for _, s := range c.AvailableSkills() {
		items = append(items, ShopItem{
			Name:        s.Name(),
			Description: s.Def.Description,
			Level:       s.Level,
			MaxLevel:    s.Def.MaxLevel,
			Cost:        s.PurchaseCost(),
			Maxed:       !s.CanUpgrade(),
			Affordable:  s.CanUpgrade() && c.Gold >= s.PurchaseCost(),
			skill:       s.Name(),
		})
	}
	return items
}

// BuyItem покупает товар текущей вкладки по индексу.
func (g *Game) BuyItem(index int) bool {
	items := g.ShopItems()
	if index < 0 || index >= len(items) {
		return false
	}
	if g.Shop.Tab == EquipmentTab {
		return g.BuyEquipment(items[index].equipment)
	}
	return g.BuySkill(items[index].skill)
}

// BuyEquipment покупает предмет первого уровня или улучшает имеющийся
// (не выше MaxEquipmentLevel). Без золота ничего не происходит.
func (g *Game) BuyEquipment(t defs.EquipmentType) bool {
	c := g.Character
	owned := c.Equipment(t)
	if owned == nil {
		item := entity.NewEquipment(t, 1)
		if c.Gold < item.Cost {
			return false
		}
		c.Gold -= item.Cost
		c.AddEquipment(item)
		g.purchased(item.Name, item.Level, item.Cost)
		return true
	}

	if owned.Level >= config.MaxEquipmentLevel {
		return false
	}
	cost := owned.UpgradeCost()
	if c.Gold < cost {
		return false
	}
	c.Gold -= cost
	c.UpgradeEquipment(t)
	g.purchased(owned.Name, owned.Level, cost)
	return true
}

// BuySkill покупает навык или повышает его уровень. Нужен уровень
// персонажа не ниже уровня открытия навыка.
func (g *Game) BuySkill(name string) bool {
	c := g.Character
	s := c.Skill(name)
	if s == nil || !s.Unlocked(c.Level) || !s.CanUpgrade() {
		return false
	}
	cost := s.PurchaseCost()
	if c.Gold < cost {
		return false
	}
	c.Gold -= cost
	s.Upgrade()
	g.purchased(s.Name(), s.Level, cost)
	return true
}

func (g *Game) purchased(name string, level, cost int) {
	log.Printf("Purchased %s level %d for %d gold", name, level, cost)
	g.EventDispatcher.Dispatch(event.Event{Type: event.ItemPurchased, Data: event.PurchaseData{
		Item: name, Level: level, Cost: cost,
	}})
	g.ShowNotice(fmt.Sprintf("%s level %d", name, level))
	if err := g.SaveProgress(); err != nil {
		log.Printf("Failed to save progress: %v", err)
	}
}

// SetShopTab переключает вкладку и сбрасывает прокрутку.
func (g *Game) SetShopTab(tab ShopTab) {
	if g.Shop.Tab != tab {
		g.Shop.Tab = tab
		g.Shop.Scroll = 0
	}
}

// ScrollShop прокручивает список товаров в пределах содержимого.
func (g *Game) ScrollShop(delta float64) {
	limit := ui.MaxScroll(config.ScreenHeight, len(g.ShopItems()))
	g.Shop.Scroll = utils.Clamp(g.Shop.Scroll+delta, 0, limit)
}

// ShopLayout: раскладка магазина для текущей вкладки
func (g *Game) ShopLayout() ui.ShopLayout {
	return ui.NewShopLayout(config.ScreenWidth, config.ScreenHeight, len(g.ShopItems()), g.Shop.Scroll)
}
