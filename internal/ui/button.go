// internal/ui/button.go
package ui

import "endless-survival/internal/component"

// ButtonID: что делает кнопка
type ButtonID string

const (
	ButtonStart     ButtonID = "start"
	ButtonShop      ButtonID = "shop"
	ButtonProfile   ButtonID = "profile"
	ButtonBack      ButtonID = "back"
	ButtonRestart   ButtonID = "restart"
	ButtonWelcome   ButtonID = "welcome"
	ButtonSubmit    ButtonID = "submit"
	ButtonEquipment ButtonID = "equipmentTab"
	ButtonSkills    ButtonID = "skillsTab"
)

// Button: прямоугольная кнопка в координатах холста.
// Рисованием занимается пакет screen.
type Button struct {
	ID   ButtonID
	Rect component.Rect
	Text string
}

// NewButton создает новую кнопку.
func NewButton(id ButtonID, x, y, w, h float64, text string) Button {
	return Button{ID: id, Rect: component.Rect{X: x, Y: y, W: w, H: h}, Text: text}
}

// IsClicked проверяет, попадает ли точка в кнопку. Границы включительно.
func (b Button) IsClicked(x, y float64) bool {
	return b.Rect.Contains(x, y)
}

// HitButton возвращает первую кнопку под точкой.
func HitButton(buttons []Button, x, y float64) (Button, bool) {
	for _, b := range buttons {
		if b.IsClicked(x, y) {
			return b, true
		}
	}
	return Button{}, false
}
