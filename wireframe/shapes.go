package wireframe

import (
	"math"
	"strings"
)

// Kind tags the variant of a Shape.
type Kind uint8

const (
	KindRect Kind = iota
	KindRoundRect
	KindEllipse
	KindPolygon
	KindLine
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindRoundRect:
		return "round-rect"
	case KindEllipse:
		return "ellipse"
	case KindPolygon:
		return "polygon"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	default:
		return "<unknown Kind>"
	}
}

// Point is a position on the canvas, in device independent units.
type Point struct{ X, Y float64 }

// Box is an axis aligned rectangle given by two corners,
// following the [x0, y0, x1, y1] convention of the layouts.
type Box struct{ X0, Y0, X1, Y1 float64 }

// B is a shorthand for Box{x0, y0, x1, y1}.
func B(x0, y0, x1, y1 float64) Box { return Box{X0: x0, Y0: y0, X1: x1, Y1: y1} }

func (b Box) W() float64 { return b.X1 - b.X0 }
func (b Box) H() float64 { return b.Y1 - b.Y0 }

// Center returns the middle of the box.
func (b Box) Center() Point { return Point{X: (b.X0 + b.X1) / 2, Y: (b.Y0 + b.Y1) / 2} }

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		X0: math.Min(b.X0, o.X0), Y0: math.Min(b.Y0, o.Y0),
		X1: math.Max(b.X1, o.X1), Y1: math.Max(b.Y1, o.Y1),
	}
}

// Overlaps returns true if the interiors of b and o intersect.
// Boxes sharing only an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X0 < o.X1 && o.X0 < b.X1 && b.Y0 < o.Y1 && o.Y0 < b.Y1
}

// Inside returns true if b lies within o, edges included.
func (b Box) Inside(o Box) bool {
	return b.X0 >= o.X0 && b.Y0 >= o.Y0 && b.X1 <= o.X1 && b.Y1 <= o.Y1
}

// inset grows (d > 0) or shrinks the box on every side.
func (b Box) inset(d float64) Box {
	return Box{X0: b.X0 - d, Y0: b.Y0 - d, X1: b.X1 + d, Y1: b.Y1 + d}
}

// Style holds the paint of a geometric shape.
// A zero Fill disables filling, a zero Outline or Width disables stroking.
type Style struct {
	Fill    Color
	Outline Color
	Width   float64
}

// Filled returns a style which only fills.
func Filled(c Color) Style { return Style{Fill: c} }

// Outlined returns a style which only strokes.
func Outlined(c Color, width float64) Style { return Style{Outline: c, Width: width} }

// FilledOutlined returns a style which fills then strokes.
func FilledOutlined(fill, outline Color, width float64) Style {
	return Style{Fill: fill, Outline: outline, Width: width}
}

func (s Style) willFill() bool   { return !s.Fill.IsZero() }
func (s Style) willStroke() bool { return !s.Outline.IsZero() && s.Width > 0 }

// Shape is one drawing instruction of a Layout.
// It is implemented by Rect, RoundRect, Ellipse, Polygon, Line and Text.
type Shape interface {
	Kind() Kind
	// Extent returns the area painted by the shape, strokes included.
	// For Text it is an estimate, since glyph metrics depend on the driver.
	Extent() Box
	isShape()
}

// geometric is implemented by every shape reduced to a path.
type geometric interface {
	Shape
	// Path returns the outline of the shape.
	Path() Path
	paint() (Style, JoinOptions)
}

var (
	_ geometric = Rect{}
	_ geometric = RoundRect{}
	_ geometric = Ellipse{}
	_ geometric = Polygon{}
	_ geometric = Line{}
	_ Shape     = Text{}
)

var outlineJoin = JoinOptions{LineJoin: Miter, MiterLimit: fToFixed(4), Cap: ButtCap}

type Rect struct {
	Box
	Style
}

type RoundRect struct {
	Box
	Radius float64
	Style
}

// Ellipse is inscribed in its Box.
type Ellipse struct {
	Box
	Style
}

// Polygon is a closed sequence of points.
type Polygon struct {
	Points []Point
	Style
}

// Line is an open polyline of at least two points.
type Line struct {
	Points []Point
	Color  Color
	Width  float64
}

// DefaultTextSize is used for Text with a zero Size.
const DefaultTextSize = 13

// lineSpacing is the ratio between two baselines and the text size.
const lineSpacing = 1.25

// Text is anchored at its top-left corner. Content may span
// several lines separated by '\n'.
type Text struct {
	At      Point
	Content string
	Color   Color
	Size    float64
	Bold    bool
}

// T is a shorthand for a regular Text of default size.
func T(x, y float64, content string, c Color) Text {
	return Text{At: Point{X: x, Y: y}, Content: content, Color: c}
}

func (Rect) Kind() Kind      { return KindRect }
func (RoundRect) Kind() Kind { return KindRoundRect }
func (Ellipse) Kind() Kind   { return KindEllipse }
func (Polygon) Kind() Kind   { return KindPolygon }
func (Line) Kind() Kind      { return KindLine }
func (Text) Kind() Kind      { return KindText }

func (Rect) isShape()      {}
func (RoundRect) isShape() {}
func (Ellipse) isShape()   {}
func (Polygon) isShape()   {}
func (Line) isShape()      {}
func (Text) isShape()      {}

func (r Rect) paint() (Style, JoinOptions)      { return r.Style, outlineJoin }
func (r RoundRect) paint() (Style, JoinOptions) { return r.Style, outlineJoin }
func (e Ellipse) paint() (Style, JoinOptions)   { return e.Style, outlineJoin }
func (p Polygon) paint() (Style, JoinOptions)   { return p.Style, outlineJoin }

func (l Line) paint() (Style, JoinOptions) {
	return Outlined(l.Color, l.Width), JoinOptions{LineJoin: Round, Cap: ButtCap}
}

func strokedExtent(p Path, s Style) Box {
	ext := p.Extent()
	if s.willStroke() {
		ext = ext.inset(s.Width / 2)
	}
	return ext
}

func (r Rect) Extent() Box      { return strokedExtent(r.Path(), r.Style) }
func (r RoundRect) Extent() Box { return strokedExtent(r.Path(), r.Style) }
func (e Ellipse) Extent() Box   { return strokedExtent(e.Path(), e.Style) }
func (p Polygon) Extent() Box   { return strokedExtent(p.Path(), p.Style) }
func (l Line) Extent() Box      { return strokedExtent(l.Path(), Outlined(l.Color, l.Width)) }

// FontSize returns the effective size of the text.
func (t Text) FontSize() float64 {
	if t.Size <= 0 {
		return DefaultTextSize
	}
	return t.Size
}

// Lines splits the content on '\n'.
func (t Text) Lines() []string { return strings.Split(t.Content, "\n") }

// LineHeight is the distance between two consecutive baselines.
func (t Text) LineHeight() float64 { return t.FontSize() * lineSpacing }

// Extent estimates the text box with an average advance of 0.6 em.
func (t Text) Extent() Box {
	size := t.FontSize()
	var maxRunes int
	lines := t.Lines()
	for _, line := range lines {
		if n := len([]rune(line)); n > maxRunes {
			maxRunes = n
		}
	}
	return Box{
		X0: t.At.X, Y0: t.At.Y,
		X1: t.At.X + float64(maxRunes)*size*0.6,
		Y1: t.At.Y + float64(len(lines))*t.LineHeight(),
	}
}
