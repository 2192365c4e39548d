package wficon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/unitrack/mockups/wireframe"
)

type (
	// paint is either a plain color, currentColor or none
	paint struct {
		color   wireframe.Color
		current bool
	}

	// style holds the state of the SVG style
	style struct {
		fill, stroke paint
		strokeWidth  float64
	}

	// element is a basic shape, in viewBox units
	element struct {
		kind   wireframe.Kind
		box    wireframe.Box // rect and ellipse
		radius float64       // rounded rect
		points []wireframe.Point
		style  style
	}

	// iconCursor is used while parsing SVG files
	iconCursor struct {
		icon        *Icon
		styleStack  []style
		points      []float64
		errorMode   ErrorMode
		inTitleText bool
	}
)

// defaultStyle fills black, without stroke, as SVG does.
var defaultStyle = style{
	fill:        paint{color: wireframe.RGB(0, 0, 0)},
	strokeWidth: 1,
}

func (p paint) resolve(current wireframe.Color) wireframe.Color {
	if p.current {
		return current
	}
	return p.color
}

var namedColors = map[string]wireframe.Color{
	"black": wireframe.RGB(0, 0, 0),
	"white": wireframe.RGB(255, 255, 255),
	"red":   wireframe.RGB(255, 0, 0),
	"green": wireframe.RGB(0, 128, 0),
	"blue":  wireframe.RGB(0, 0, 255),
	"gray":  wireframe.RGB(128, 128, 128),
}

func parsePaint(v string) (paint, error) {
	v = strings.TrimSpace(v)
	switch lv := strings.ToLower(v); lv {
	case "none", "transparent":
		return paint{}, nil
	case "currentcolor":
		return paint{current: true}, nil
	default:
		if c, ok := namedColors[lv]; ok {
			return paint{color: c}, nil
		}
	}
	if !strings.HasPrefix(v, "#") {
		return paint{}, fmt.Errorf("wficon: unsupported color %q", v)
	}
	c, err := wireframe.ParseHex(v)
	return paint{color: c}, err
}

// parseLength reads a number, with an optional px unit.
func parseLength(v string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\n' || r == '\t'
		})
}

// getPoints reads a list of numbers into c.points
func (c *iconCursor) getPoints(dataPoints string) error {
	c.points = c.points[:0]
	for _, f := range splitOnCommaOrSpace(dataPoints) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return err
		}
		c.points = append(c.points, v)
	}
	return nil
}

func (c *iconCursor) readStyleAttr(curStyle *style, k, v string) (err error) {
	switch k {
	case "fill":
		curStyle.fill, err = parsePaint(v)
	case "stroke":
		curStyle.stroke, err = parsePaint(v)
	case "stroke-width":
		curStyle.strokeWidth, err = parseLength(v)
	}
	return err
}

// pushStyle parses the style element, and push it on the style stack.
// Note that this parses both the contents of a style attribute plus
// direct fill and stroke attributes.
func (c *iconCursor) pushStyle(attrs []xml.Attr) error {
	var pairs []string
	for _, attr := range attrs {
		switch strings.ToLower(attr.Name.Local) {
		case "style":
			pairs = append(pairs, strings.Split(attr.Value, ";")...)
		default:
			pairs = append(pairs, attr.Name.Local+":"+attr.Value)
		}
	}
	// Make a copy of the top style
	curStyle := c.styleStack[len(c.styleStack)-1]
	for _, pair := range pairs {
		kv := strings.Split(pair, ":")
		if len(kv) >= 2 {
			k := strings.TrimSpace(strings.ToLower(kv[0]))
			v := strings.TrimSpace(kv[1])
			if err := c.readStyleAttr(&curStyle, k, v); err != nil {
				return err
			}
		}
	}
	c.styleStack = append(c.styleStack, curStyle) // Push style onto stack
	return nil
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		errStr := "Cannot process svg element " + se.Name.Local
		if c.errorMode == StrictErrorMode {
			return errors.New(errStr)
		} else if c.errorMode == WarnErrorMode {
			log.Println(errStr)
		}
		return nil
	}
	return df(c, se.Attr)
}

func (c *iconCursor) add(e element) {
	e.style = c.styleStack[len(c.styleStack)-1]
	c.icon.elements = append(c.icon.elements, e)
}

type svgFunc func(c *iconCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":      svgF,
	"g":        gF,
	"title":    titleF,
	"desc":     gF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, // circleF handles ellipse also
	"line":     lineF,
	"polyline": polylineF,
	"polygon":  polygonF,
}

func svgF(c *iconCursor, attrs []xml.Attr) error {
	c.icon.ViewBox = Bounds{}
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			err = c.getPoints(attr.Value)
			if len(c.points) != 4 {
				return ErrParamMismatch
			}
			c.icon.ViewBox = Bounds{X: c.points[0], Y: c.points[1], W: c.points[2], H: c.points[3]}
		case "width":
			width, err = parseLength(attr.Value)
		case "height":
			height, err = parseLength(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = height
	}
	return nil
}

func gF(*iconCursor, []xml.Attr) error { return nil } // g does nothing but push the style

func titleF(c *iconCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.icon.Titles = append(c.icon.Titles, "")
	return nil
}

func rectF(c *iconCursor, attrs []xml.Attr) error {
	var x, y, w, h, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = parseLength(attr.Value)
		case "y":
			y, err = parseLength(attr.Value)
		case "width":
			w, err = parseLength(attr.Value)
		case "height":
			h, err = parseLength(attr.Value)
		case "rx":
			rx, err = parseLength(attr.Value)
		case "ry":
			ry, err = parseLength(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if w == 0 || h == 0 { // not drawn, but not an error
		return nil
	}
	// a single radius is drawn for both axes
	r := math.Max(rx, ry)
	kind := wireframe.KindRect
	if r > 0 {
		kind = wireframe.KindRoundRect
	}
	c.add(element{kind: kind, box: wireframe.B(x, y, x+w, y+h), radius: r})
	return nil
}

func circleF(c *iconCursor, attrs []xml.Attr) error {
	var cx, cy, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx, err = parseLength(attr.Value)
		case "cy":
			cy, err = parseLength(attr.Value)
		case "r":
			rx, err = parseLength(attr.Value)
			ry = rx
		case "rx":
			rx, err = parseLength(attr.Value)
		case "ry":
			ry, err = parseLength(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if rx == 0 || ry == 0 { // not drawn, but not an error
		return nil
	}
	c.add(element{kind: wireframe.KindEllipse, box: wireframe.B(cx-rx, cy-ry, cx+rx, cy+ry)})
	return nil
}

func lineF(c *iconCursor, attrs []xml.Attr) error {
	var x1, x2, y1, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = parseLength(attr.Value)
		case "x2":
			x2, err = parseLength(attr.Value)
		case "y1":
			y1, err = parseLength(attr.Value)
		case "y2":
			y2, err = parseLength(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	c.add(element{kind: wireframe.KindLine, points: []wireframe.Point{{X: x1, Y: y1}, {X: x2, Y: y2}}})
	return nil
}

func (c *iconCursor) readPoints(attrs []xml.Attr) ([]wireframe.Point, error) {
	c.points = c.points[:0]
	for _, attr := range attrs {
		if attr.Name.Local == "points" {
			if err := c.getPoints(attr.Value); err != nil {
				return nil, err
			}
			if len(c.points)%2 != 0 {
				return nil, errors.New("polygon has odd number of points")
			}
		}
	}
	out := make([]wireframe.Point, 0, len(c.points)/2)
	for i := 0; i+1 < len(c.points); i += 2 {
		out = append(out, wireframe.Point{X: c.points[i], Y: c.points[i+1]})
	}
	return out, nil
}

func polylineF(c *iconCursor, attrs []xml.Attr) error {
	points, err := c.readPoints(attrs)
	if err != nil {
		return err
	}
	if len(points) >= 2 {
		c.add(element{kind: wireframe.KindLine, points: points})
	}
	return nil
}

func polygonF(c *iconCursor, attrs []xml.Attr) error {
	points, err := c.readPoints(attrs)
	if err != nil {
		return err
	}
	if len(points) >= 3 {
		c.add(element{kind: wireframe.KindPolygon, points: points})
	}
	return nil
}

// shape returns the wireframe primitive for `e`, or nil
// if it paints nothing.
func (e element) shape(t transform, current wireframe.Color) wireframe.Shape {
	fill := e.style.fill.resolve(current)
	outline := e.style.stroke.resolve(current)
	width := t.length(e.style.strokeWidth)
	st := wireframe.Style{Fill: fill, Outline: outline, Width: width}
	if fill.IsZero() && (outline.IsZero() || width <= 0) {
		return nil
	}

	points := make([]wireframe.Point, len(e.points))
	for i, p := range e.points {
		points[i] = t.point(p)
	}
	switch e.kind {
	case wireframe.KindRect:
		return wireframe.Rect{Box: t.box(e.box), Style: st}
	case wireframe.KindRoundRect:
		return wireframe.RoundRect{Box: t.box(e.box), Radius: t.length(e.radius), Style: st}
	case wireframe.KindEllipse:
		return wireframe.Ellipse{Box: t.box(e.box), Style: st}
	case wireframe.KindPolygon:
		return wireframe.Polygon{Points: points, Style: st}
	case wireframe.KindLine:
		// open lines are never filled
		if outline.IsZero() || width <= 0 {
			return nil
		}
		return wireframe.Line{Points: points, Color: outline, Width: width}
	}
	return nil
}
