package wireframe

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// cubic is a cubic bezier segment: start point, two controls, end point.
type cubic [4]fixed.Point26_6

// axis returns the coordinates of the four points along one axis.
func (cu cubic) axis(y bool) (p0, p1, p2, p3 float64) {
	pick := func(p fixed.Point26_6) float64 {
		if y {
			return float64(p.Y) / 64
		}
		return float64(p.X) / 64
	}
	return pick(cu[0]), pick(cu[1]), pick(cu[2]), pick(cu[3])
}

// at evaluates the curve at `t`, expanded as
// (p3-3p2+3p1-p0)t^3 + (3p2-6p1+3p0)t^2 + (3p1-3p0)t + p0
func (cu cubic) at(t float64) (x, y float64) {
	eval := func(p0, p1, p2, p3 float64) float64 {
		return ((p3-3*p2+3*p1-p0)*t+(3*p2-6*p1+3*p0))*t*t + (3*p1-3*p0)*t + p0
	}
	return eval(cu.axis(false)), eval(cu.axis(true))
}

// extrema returns the parameters in (0,1) where the derivative
// of one coordinate vanishes. The derivative is
// (3p3-9p2+9p1-3p0)t^2 + (6p2-12p1+6p0)t + (3p1-3p0)
func extrema(p0, p1, p2, p3 float64) []float64 {
	a, b, c := 3*p3-9*p2+9*p1-3*p0, 6*p2-12*p1+6*p0, 3*p1-3*p0
	var roots []float64
	switch d := b*b - 4*a*c; {
	case a == 0 && b == 0:
	case a == 0:
		roots = []float64{-c / b}
	case d < 0:
	case d == 0:
		roots = []float64{-b / (2 * a)}
	default:
		sq := math.Sqrt(d)
		roots = []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
	}
	out := roots[:0]
	for _, t := range roots {
		if 0 < t && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

// box is the exact bounding box of the segment, not only
// the hull of its control points.
func (cu cubic) box() Box {
	b := pointBox(cu[0])
	ts := append(extrema(cu.axis(false)), extrema(cu.axis(true))...)
	for _, t := range append(ts, 1) {
		x, y := cu.at(t)
		b = b.Union(Box{X0: x, Y0: y, X1: x, Y1: y})
	}
	return b
}

func pointBox(p fixed.Point26_6) Box {
	x, y := fixedTof(p)
	return Box{X0: x, Y0: y, X1: x, Y1: y}
}

// Extent returns the bounding box of the path, used to check
// that shapes stay on the canvas and that stacked blocks do not overlap.
// An empty path has a zero extent.
func (p Path) Extent() Box {
	var (
		ext     Box
		started bool
	)
	add := func(b Box) {
		if !started {
			ext, started = b, true
			return
		}
		ext = ext.Union(b)
	}
	var current fixed.Point26_6
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = fixed.Point26_6(op)
			add(pointBox(current))
		case LineTo:
			// the extent of a segment is the one of its end points
			current = fixed.Point26_6(op)
			add(pointBox(current))
		case CubicTo:
			add(cubic{current, op[0], op[1], op[2]}.box())
			current = op[2]
		}
	}
	return ext
}

