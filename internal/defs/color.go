// internal/defs/color.go
package defs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color: цвет в таблицах определений. В YAML записывается строкой "#rrggbb".
type Color struct {
	color.RGBA
}

// Hex разбирает строку вида "#rrggbb" или "#rrggbbaa".
func Hex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return Color{color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}}, nil
}

// MustHex: Hex для статических таблиц, паникует на неверной строке.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String возвращает цвет в виде "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// UnmarshalYAML принимает строку "#rrggbb".
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string, line %d", value.Line)
	}
	parsed, err := Hex(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML записывает цвет строкой.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
