// internal/component/render.go
package component

import "image/color"

// Renderable — что и где рисовать для сущности. Sprite — ключ в кэше изображений,
// пустой ключ или незагруженное изображение рисуются цветной фигурой.
type Renderable struct {
	Color  color.RGBA
	Sprite string
}
