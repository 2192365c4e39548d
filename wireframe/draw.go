package wireframe

import (
	"golang.org/x/image/math/fixed"
)

// Given a Layout, implements how to draw it on a surface.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.

// Drawer knows how to do the actual draw operations
// but doesn't need any knowledge of the shapes:
// they are already reduced to paths.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(color Color, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every shape.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, one can assume that the exact same draw operations
	// will be performed on the Filler first and then on the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)

	// DrawText paints a text primitive. Glyph handling is left
	// to the driver, which knows its fonts.
	DrawText(t Text)
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Round JoinMode = iota
	Bevel
	Miter
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	case Miter:
		return "Miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}

type JoinOptions struct {
	MiterLimit fixed.Int26_6 // the miter cutoff value for the miter join mode
	LineJoin   JoinMode
	Cap        CapMode // used at both ends of open paths
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line
	Join      JoinOptions
}

func fToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

// Draw the layout shapes into the driver `d`, in order:
// later shapes cover the earlier ones.
// The background is not painted: drivers start from it.
func (l *Layout) Draw(d Driver) {
	for _, s := range l.Shapes {
		DrawShape(d, s)
	}
}

// DrawShape sends one shape to the driver.
func DrawShape(d Driver, s Shape) {
	switch s := s.(type) {
	case Text:
		d.DrawText(s)
	case geometric:
		style, join := s.paint()
		drawPath(d, s.Path(), style, join)
	}
}

func drawPath(d Driver, path Path, style Style, join JoinOptions) {
	if len(path) == 0 {
		return
	}
	filler, stroker := d.SetupDrawers(style.willFill(), style.willStroke())
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(true)

		for _, op := range path {
			op.drawTo(filler)
		}
		filler.Stop(false)

		filler.SetColor(style.Fill, 1)
		filler.Draw()
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fToFixed(style.Width),
			Join:      join,
		})

		for _, op := range path {
			op.drawTo(stroker)
		}
		stroker.Stop(false)

		stroker.SetColor(style.Outline, 1)
		stroker.Draw()
	}
}
