package wireframe

// This file implements the transformation from
// high level shapes to their path equivalent

// kappa is the distance of the control points, relative to the radius,
// of the cubic bezier approximating a quarter of circle.
const kappa = 0.5522847498307936

func (r Rect) Path() Path {
	var p Path
	p.Start(toFixedP(r.X0, r.Y0))
	p.Line(toFixedP(r.X1, r.Y0))
	p.Line(toFixedP(r.X1, r.Y1))
	p.Line(toFixedP(r.X0, r.Y1))
	p.Stop(true)
	return p
}

// Path rounds the corners with quarter ellipses, the radius
// being clamped to half of the smallest side.
func (r RoundRect) Path() Path {
	rad := r.Radius
	if m := r.W() / 2; rad > m {
		rad = m
	}
	if m := r.H() / 2; rad > m {
		rad = m
	}
	if rad <= 0 {
		return Rect{Box: r.Box}.Path()
	}
	k := rad * (1 - kappa)
	var p Path
	p.Start(toFixedP(r.X0+rad, r.Y0))
	p.Line(toFixedP(r.X1-rad, r.Y0))
	p.CubeBezier(toFixedP(r.X1-k, r.Y0), toFixedP(r.X1, r.Y0+k), toFixedP(r.X1, r.Y0+rad))
	p.Line(toFixedP(r.X1, r.Y1-rad))
	p.CubeBezier(toFixedP(r.X1, r.Y1-k), toFixedP(r.X1-k, r.Y1), toFixedP(r.X1-rad, r.Y1))
	p.Line(toFixedP(r.X0+rad, r.Y1))
	p.CubeBezier(toFixedP(r.X0+k, r.Y1), toFixedP(r.X0, r.Y1-k), toFixedP(r.X0, r.Y1-rad))
	p.Line(toFixedP(r.X0, r.Y0+rad))
	p.CubeBezier(toFixedP(r.X0, r.Y0+k), toFixedP(r.X0+k, r.Y0), toFixedP(r.X0+rad, r.Y0))
	p.Stop(true)
	return p
}

// Path approximates the ellipse with four cubic bezier curves.
func (e Ellipse) Path() Path {
	c := e.Center()
	rx, ry := e.W()/2, e.H()/2
	kx, ky := rx*kappa, ry*kappa
	var p Path
	p.Start(toFixedP(c.X+rx, c.Y))
	p.CubeBezier(toFixedP(c.X+rx, c.Y+ky), toFixedP(c.X+kx, c.Y+ry), toFixedP(c.X, c.Y+ry))
	p.CubeBezier(toFixedP(c.X-kx, c.Y+ry), toFixedP(c.X-rx, c.Y+ky), toFixedP(c.X-rx, c.Y))
	p.CubeBezier(toFixedP(c.X-rx, c.Y-ky), toFixedP(c.X-kx, c.Y-ry), toFixedP(c.X, c.Y-ry))
	p.CubeBezier(toFixedP(c.X+kx, c.Y-ry), toFixedP(c.X+rx, c.Y-ky), toFixedP(c.X+rx, c.Y))
	p.Stop(true)
	return p
}

func polyline(points []Point, closeLoop bool) Path {
	if len(points) < 2 {
		return nil
	}
	var p Path
	p.Start(toFixedP(points[0].X, points[0].Y))
	for _, pt := range points[1:] {
		p.Line(toFixedP(pt.X, pt.Y))
	}
	p.Stop(closeLoop)
	return p
}

func (pg Polygon) Path() Path { return polyline(pg.Points, true) }

func (l Line) Path() Path { return polyline(l.Points, false) }
