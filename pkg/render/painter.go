// pkg/render/painter.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Painter рисует примитивы поверх ebiten.Image. Буферы вершин
// переиспользуются между вызовами, поэтому Painter не потокобезопасен.
type Painter struct {
	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
	Face    font.Face
}

func NewPainter() *Painter {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Painter{
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 64),
		is:      make([]uint16, 0, 96),
		Face:    basicfont.Face7x13,
	}
}

func polygonPath(points []Point) *vector.Path {
	path := &vector.Path{}
	for i, p := range points {
		if i == 0 {
			path.MoveTo(p.X, p.Y)
		} else {
			path.LineTo(p.X, p.Y)
		}
	}
	path.Close()
	return path
}

func (p *Painter) drawVertices(dst *ebiten.Image, c color.RGBA) {
	r, g, b, a := vertexColor(c)
	for i := range p.vs {
		p.vs[i].ColorR = r
		p.vs[i].ColorG = g
		p.vs[i].ColorB = b
		p.vs[i].ColorA = a
	}
	dst.DrawTriangles(p.vs, p.is, p.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// FillPolygon заливает многоугольник.
func (p *Painter) FillPolygon(dst *ebiten.Image, points []Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	p.vs, p.is = polygonPath(points).AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	p.drawVertices(dst, c)
}

// StrokePolygon обводит многоугольник.
func (p *Painter) StrokePolygon(dst *ebiten.Image, points []Point, width float32, c color.RGBA) {
	if len(points) < 2 {
		return
	}
	p.vs, p.is = polygonPath(points).AppendVerticesAndIndicesForStroke(p.vs[:0], p.is[:0], &vector.StrokeOptions{
		Width: width,
	})
	p.drawVertices(dst, c)
}

func (p *Painter) Star(dst *ebiten.Image, cx, cy, size float64, c color.RGBA) {
	p.FillPolygon(dst, StarPoints(cx, cy, size/2, size/4, 5), c)
}

func (p *Painter) Diamond(dst *ebiten.Image, cx, cy, size float64, c color.RGBA) {
	p.FillPolygon(dst, DiamondPoints(cx, cy, size), c)
}

func (p *Painter) Heart(dst *ebiten.Image, cx, cy, size float64, c color.RGBA) {
	p.FillPolygon(dst, HeartPoints(cx, cy, size, 24), c)
}

// Rect заливает прямоугольник.
func (p *Painter) Rect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// StrokeRect обводит прямоугольник.
func (p *Painter) StrokeRect(dst *ebiten.Image, x, y, w, h float64, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), width, c, false)
}

func (p *Painter) Circle(dst *ebiten.Image, cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), c, true)
}

func (p *Painter) Ring(dst *ebiten.Image, cx, cy, r float64, width float32, c color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(r), width, c, true)
}

func (p *Painter) Line(dst *ebiten.Image, x1, y1, x2, y2 float64, width float32, c color.Color) {
	vector.StrokeLine(dst, float32(x1), float32(y1), float32(x2), float32(y2), width, c, true)
}

// Bar: полоса прогресса: фон и заполненная часть ratio из [0, 1].
func (p *Painter) Bar(dst *ebiten.Image, x, y, w, h, ratio float64, fg, bg color.Color) {
	ratio = max(0, min(1, ratio))
	p.Rect(dst, x, y, w, h, bg)
	if ratio > 0 {
		p.Rect(dst, x, y, w*ratio, h, fg)
	}
}

// TextWidth: ширина строки в пикселях для текущего шрифта.
func (p *Painter) TextWidth(s string) int {
	return font.MeasureString(p.Face, s).Ceil()
}

// Text рисует строку; (x, y) задаёт левый верхний угол.
func (p *Painter) Text(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	ascent := p.Face.Metrics().Ascent.Ceil()
	text.Draw(dst, s, p.Face, int(x), int(y)+ascent, c)
}

// TextCentered рисует строку с центром в (cx, cy).
func (p *Painter) TextCentered(dst *ebiten.Image, s string, cx, cy float64, c color.Color) {
	m := p.Face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	p.Text(dst, s, cx-float64(p.TextWidth(s))/2, cy-float64(h)/2, c)
}
