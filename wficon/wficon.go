// Package wficon parses the small SVG glyphs drawn in the mockups
// (navigation icons, pins, padlocks...) into wireframe shapes.
// Only the basic shape elements are supported: svg, g, rect, circle,
// ellipse, line, polyline and polygon, styled with fill, stroke and
// stroke-width, either as attributes or in a style attribute.
// The special color currentColor is resolved when the glyph is placed.
package wficon

import (
	"embed"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/unitrack/mockups/wireframe"
	"golang.org/x/net/html/charset"
)

//go:embed icons/*.svg
var iconFiles embed.FS

// ErrorMode is the for setting how the parser reacts to unsupported elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for unsupported elements
	WarnErrorMode
	// StrictErrorMode returns an error for unsupported elements
	StrictErrorMode
)

var (
	// ErrParamMismatch is returned when an attribute
	// has the wrong number of values.
	ErrParamMismatch = errors.New("wficon: param mismatch")

	errInvalidXML = errors.New("wficon: invalid svg xml icon")
)

// Bounds defines a viewport.
type Bounds struct{ X, Y, W, H float64 }

// Icon holds data from parsed SVGs.
// See the `Shapes` method to use it.
type Icon struct {
	ViewBox  Bounds
	Titles   []string // Title elements collect here
	elements []element
}

// ReadIconStream reads the Icon from the given io.Reader.
// errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*Icon, error) {
	icon := &Icon{}
	cursor := &iconCursor{styleStack: []style{defaultStyle}, icon: icon, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errInvalidXML
				}
				break
			}
			return icon, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			// Reads all recognized style attributes from the start element
			// and places it on top of the styleStack
			if err = cursor.pushStyle(se.Attr); err != nil {
				return icon, err
			}
			if err = cursor.readStartElement(se); err != nil {
				return icon, err
			}
		case xml.EndElement:
			cursor.styleStack = cursor.styleStack[:len(cursor.styleStack)-1]
			if se.Name.Local == "title" {
				cursor.inTitleText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
		}
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return icon, fmt.Errorf("wficon: empty viewBox %v", icon.ViewBox)
	}
	return icon, nil
}

// Load parses the embedded glyph `name` (without extension).
// Unsupported elements are errors, since the glyphs are ours.
func Load(name string) (*Icon, error) {
	f, err := iconFiles.Open(path.Join("icons", name+".svg"))
	if err != nil {
		return nil, fmt.Errorf("loading icon %s: %w", name, err)
	}
	defer f.Close()
	icon, err := ReadIconStream(f, StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parsing icon %s: %w", name, err)
	}
	return icon, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(name string) *Icon {
	icon, err := Load(name)
	if err != nil {
		panic(err)
	}
	return icon
}

// Names returns the sorted names of the embedded glyphs.
func Names() []string {
	entries, err := fs.ReadDir(iconFiles, "icons")
	if err != nil { // the directory is embedded
		panic(err)
	}
	var out []string
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".svg"))
	}
	sort.Strings(out)
	return out
}

// Shapes returns the icon primitives scaled to fit `target`,
// the same way a viewBox is mapped to a viewport with
// preserveAspectRatio="none". `current` resolves currentColor.
func (ic *Icon) Shapes(target wireframe.Box, current wireframe.Color) []wireframe.Shape {
	t := transform{
		sx: target.W() / ic.ViewBox.W, sy: target.H() / ic.ViewBox.H,
		dx: target.X0, dy: target.Y0,
		ox: ic.ViewBox.X, oy: ic.ViewBox.Y,
	}
	out := make([]wireframe.Shape, 0, len(ic.elements))
	for _, e := range ic.elements {
		if s := e.shape(t, current); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// transform maps the viewBox to the target box.
type transform struct {
	sx, sy, dx, dy, ox, oy float64
}

func (t transform) point(p wireframe.Point) wireframe.Point {
	return wireframe.Point{X: t.dx + (p.X-t.ox)*t.sx, Y: t.dy + (p.Y-t.oy)*t.sy}
}

func (t transform) box(b wireframe.Box) wireframe.Box {
	p0 := t.point(wireframe.Point{X: b.X0, Y: b.Y0})
	p1 := t.point(wireframe.Point{X: b.X1, Y: b.Y1})
	return wireframe.B(p0.X, p0.Y, p1.X, p1.Y)
}

// length scales a non directional length, like a stroke width.
func (t transform) length(l float64) float64 {
	return l * (t.sx + t.sy) / 2
}
