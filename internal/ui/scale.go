// internal/ui/scale.go
package ui

// ToCanvas переводит координаты устройства в координаты холста
// обратным масштабированием.
func ToCanvas(x, y, deviceW, deviceH, canvasW, canvasH float64) (float64, float64) {
	if deviceW <= 0 || deviceH <= 0 {
		return x, y
	}
	return x * canvasW / deviceW, y * canvasH / deviceH
}
