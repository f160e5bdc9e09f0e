// internal/ui/layout.go
package ui

import (
	"math"

	"endless-survival/internal/component"
)

// Размеры элементов магазина
const (
	TabWidth     = 150.0
	TabHeight    = 40.0
	TabY         = 120.0
	ItemWidth    = 350.0
	ItemHeight   = 100.0
	ItemSpacing  = 20.0
	ItemColumns  = 2
	BuyWidth     = 80.0
	BuyHeight    = 28.0
	BuyMargin    = 10.0
	BackWidth    = 150.0
	BackHeight   = 40.0
	ScrollStep   = 30.0
	shopBottom   = 120.0 // отступ области товаров от низа экрана
	menuButtonW  = 200.0
	menuButtonH  = 40.0
	chestWidth   = 100.0
	chestHeight  = 80.0
	chestSpacing = 150.0
)

// ShopItemLayout: карточка товара и её кнопка покупки
type ShopItemLayout struct {
	Box component.Rect
	Buy component.Rect
}

// ShopLayout: расположение элементов магазина для экрана w x h
type ShopLayout struct {
	EquipmentTab Button
	SkillsTab    Button
	Back         Button
	// Content: видимая область списка товаров
	Content component.Rect
	Items   []ShopItemLayout
}

// NewShopLayout раскладывает count товаров сеткой в две колонки.
// scroll сдвигает список вверх.
func NewShopLayout(w, h float64, count int, scroll float64) ShopLayout {
	l := ShopLayout{
		EquipmentTab: NewButton(ButtonEquipment, w/2-TabWidth-10, TabY, TabWidth, TabHeight, "Equipment"),
		SkillsTab:    NewButton(ButtonSkills, w/2+10, TabY, TabWidth, TabHeight, "Skills"),
		Back:         NewButton(ButtonBack, w/2-BackWidth/2, h-70, BackWidth, BackHeight, "Back"),
	}
	top := TabY + TabHeight + 20
	l.Content = component.Rect{X: 0, Y: top, W: w, H: math.Max(0, h-shopBottom-top)}

	columnWidth := ItemWidth + ItemSpacing
	startX := (w - (ItemColumns*columnWidth - ItemSpacing)) / 2
	for i := 0; i < count; i++ {
		col := i % ItemColumns
		row := i / ItemColumns
		box := component.Rect{
			X: startX + float64(col)*columnWidth,
			Y: top + float64(row)*(ItemHeight+ItemSpacing) - scroll,
			W: ItemWidth,
			H: ItemHeight,
		}
		buy := component.Rect{
			X: box.X + box.W - BuyWidth - BuyMargin,
			Y: box.Y + box.H - BuyHeight - BuyMargin,
			W: BuyWidth,
			H: BuyHeight,
		}
		l.Items = append(l.Items, ShopItemLayout{Box: box, Buy: buy})
	}
	return l
}

// MaxScroll: насколько можно прокрутить список из count товаров
func MaxScroll(h float64, count int) float64 {
	rows := (count + ItemColumns - 1) / ItemColumns
	content := float64(rows) * (ItemHeight + ItemSpacing)
	visible := h - shopBottom - (TabY + TabHeight + 20)
	return math.Max(0, content-visible)
}

// HitBuy возвращает индекс товара, по кнопке покупки которого пришёлся клик.
// Клики вне видимой области списка игнорируются.
func (l ShopLayout) HitBuy(x, y float64) (int, bool) {
	if !l.Content.Contains(x, y) {
		return 0, false
	}
	for i, item := range l.Items {
		if item.Buy.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Buttons: кнопки магазина в порядке проверки кликов
func (l ShopLayout) Buttons() []Button {
	return []Button{l.Back, l.EquipmentTab, l.SkillsTab}
}

// WelcomeButtons: главное меню
func WelcomeButtons(w, h float64) []Button {
	x := w/2 - menuButtonW/2
	y := h / 2
	return []Button{
		NewButton(ButtonStart, x, y, menuButtonW, menuButtonH, "Start Game"),
		NewButton(ButtonShop, x, y+60, menuButtonW, menuButtonH, "Shop"),
		NewButton(ButtonProfile, x, y+120, menuButtonW, menuButtonH, "Profile"),
	}
}

// UsernameLayout: поле ввода имени и кнопка подтверждения
func UsernameLayout(w, h float64) (component.Rect, Button) {
	field := component.Rect{X: w/2 - 150, Y: h/2 - 20, W: 300, H: 40}
	submit := NewButton(ButtonSubmit, w/2-75, h/2+40, 150, 40, "Continue")
	return field, submit
}

// GameOverButtons: кнопки экрана поражения
func GameOverButtons(w, h float64) []Button {
	return []Button{
		NewButton(ButtonRestart, w/2-menuButtonW-10, h/2, menuButtonW, menuButtonH, "Start New Game"),
		NewButton(ButtonWelcome, w/2+10, h/2, menuButtonW, menuButtonH, "Return to Welcome"),
	}
}

// ChestRects: сундуки в ряд по центру экрана
func ChestRects(w, h float64, count int) []component.Rect {
	rects := make([]component.Rect, count)
	for i := range rects {
		rects[i] = component.Rect{
			X: w/2 - chestSpacing + float64(i)*chestSpacing,
			Y: h/2 - 50,
			W: chestWidth,
			H: chestHeight,
		}
	}
	return rects
}

// HitChest возвращает индекс сундука под точкой.
func HitChest(rects []component.Rect, x, y float64) (int, bool) {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// RewardButtons: кнопки после выбора сундука
func RewardButtons(w, h float64) []Button {
	y := h/2 - 50 + 120
	return []Button{
		NewButton(ButtonRestart, w/2-BackWidth-10, y, BackWidth, BackHeight, "Restart"),
		NewButton(ButtonWelcome, w/2+10, y, BackWidth, BackHeight, "Start New"),
	}
}

// ProfileBack: кнопка возврата с экрана профиля
func ProfileBack(w, h float64) Button {
	return NewButton(ButtonBack, w/2-BackWidth/2, h-100, BackWidth, BackHeight, "Back")
}
