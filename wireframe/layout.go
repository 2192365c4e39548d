// Package wireframe provides a declarative representation of
// UI mockups: a Layout is an ordered list of shape primitives
// over a fixed size canvas, which can then be consumed by painting drivers.
// See for example mockups/wfraster or mockups/wfpdf .
package wireframe

import (
	"fmt"
)

// Layout holds the primitives of one screen, chrome included.
// Shapes are painted in order, on top of the Background.
type Layout struct {
	Name          string
	Width, Height int
	Background    Color
	Shapes        []Shape
}

// New returns an empty layout for a canvas of the given size.
func New(name string, width, height int, background Color) *Layout {
	return &Layout{Name: name, Width: width, Height: height, Background: background}
}

// Add appends shapes on top of the current ones.
func (l *Layout) Add(shapes ...Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Bounds returns the canvas rectangle.
func (l *Layout) Bounds() Box {
	return Box{X1: float64(l.Width), Y1: float64(l.Height)}
}

// Filter returns the shapes of the given kind, in drawing order.
func (l *Layout) Filter(kind Kind) []Shape {
	var out []Shape
	for _, s := range l.Shapes {
		if s.Kind() == kind {
			out = append(out, s)
		}
	}
	return out
}

// Texts returns the text primitives whose content is `content`.
func (l *Layout) Texts(content string) []Text {
	var out []Text
	for _, s := range l.Shapes {
		if t, ok := s.(Text); ok && t.Content == content {
			out = append(out, t)
		}
	}
	return out
}

// SetTextSize gives `size` to the texts using the default size.
// Texts with an explicit size are scaled accordingly.
func (l *Layout) SetTextSize(size float64) {
	if size <= 0 || size == DefaultTextSize {
		return
	}
	for i, s := range l.Shapes {
		if t, ok := s.(Text); ok {
			t.Size = t.FontSize() * size / DefaultTextSize
			l.Shapes[i] = t
		}
	}
}

// Validate checks that the canvas is not empty and that every
// geometric shape stays on it. Text is not checked, since its extent
// is only an estimate.
func (l *Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("layout %s: invalid canvas size %dx%d", l.Name, l.Width, l.Height)
	}
	canvas := l.Bounds()
	for i, s := range l.Shapes {
		if s.Kind() == KindText {
			continue
		}
		if ext := s.Extent(); !ext.Inside(canvas) {
			return fmt.Errorf("layout %s: shape %d (%s) at %v is outside the %dx%d canvas",
				l.Name, i, s.Kind(), ext, l.Width, l.Height)
		}
	}
	return nil
}

// Descriptor is a flat, serializable view of a shape.
type Descriptor struct {
	Kind    string  `yaml:"kind"`
	Box     *Box    `yaml:"box,omitempty"`
	Points  []Point `yaml:"points,omitempty"`
	Radius  float64 `yaml:"radius,omitempty"`
	Fill    *Color  `yaml:"fill,omitempty"`
	Outline *Color  `yaml:"outline,omitempty"`
	Width   float64 `yaml:"width,omitempty"`
	Text    string  `yaml:"text,omitempty"`
	Size    float64 `yaml:"size,omitempty"`
	Bold    bool    `yaml:"bold,omitempty"`
}

func colorRef(c Color) *Color {
	if c.IsZero() {
		return nil
	}
	return &c
}

func boxRef(b Box) *Box { return &b }

func describeStyle(d *Descriptor, s Style) {
	d.Fill = colorRef(s.Fill)
	if s.willStroke() {
		d.Outline = colorRef(s.Outline)
		d.Width = s.Width
	}
}

// Describe returns the descriptor of a shape.
func Describe(s Shape) Descriptor {
	d := Descriptor{Kind: s.Kind().String()}
	switch s := s.(type) {
	case Rect:
		d.Box = boxRef(s.Box)
		describeStyle(&d, s.Style)
	case RoundRect:
		d.Box, d.Radius = boxRef(s.Box), s.Radius
		describeStyle(&d, s.Style)
	case Ellipse:
		d.Box = boxRef(s.Box)
		describeStyle(&d, s.Style)
	case Polygon:
		d.Points = s.Points
		describeStyle(&d, s.Style)
	case Line:
		d.Points = s.Points
		d.Outline, d.Width = colorRef(s.Color), s.Width
	case Text:
		d.Points = []Point{s.At}
		d.Fill = colorRef(s.Color)
		d.Text, d.Size, d.Bold = s.Content, s.FontSize(), s.Bold
	}
	return d
}

// Descriptors returns the descriptors of all the shapes, in drawing order.
func (l *Layout) Descriptors() []Descriptor {
	out := make([]Descriptor, len(l.Shapes))
	for i, s := range l.Shapes {
		out[i] = Describe(s)
	}
	return out
}
