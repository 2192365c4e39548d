package screens

import "github.com/unitrack/mockups/wireframe"

type building struct {
	box  wireframe.Box
	name string
}

var campusBuildings = []building{
	{wireframe.B(50, 120, 140, 200), "Admin\nBuilding"},
	{wireframe.B(160, 120, 250, 200), "IT\nBuilding"},
	{wireframe.B(260, 120, 350, 200), "Library"},
	{wireframe.B(50, 320, 140, 400), "Canteen"},
	{wireframe.B(160, 320, 250, 400), "Gym"},
	{wireframe.B(260, 320, 350, 400), "Science\nBuilding"},
}

type marker struct {
	at     wireframe.Point
	label  string
	status Status
}

var facultyMarkers = []marker{
	{wireframe.Point{X: 90, Y: 160}, "Dr. S", Available},
	{wireframe.Point{X: 200, Y: 350}, "Prof. G", InClass},
	{wireframe.Point{X: 300, Y: 160}, "Dr. R", Available},
}

// userLocation is the blue dot of the current user.
var userLocation = wireframe.Point{X: 200, Y: 545}

// route goes from the user to the Admin Building.
// destination is the Admin Building marker of the navigation screen.
var destination = wireframe.Point{X: 100, Y: 160}

var route = []wireframe.Point{{X: 200, Y: 545}, {X: 200, Y: 400}, {X: 200, Y: 250}, {X: 150, Y: 250}, {X: 100, Y: 200}}

// campusMap draws the map area with its road grid.
func campusMap(l *wireframe.Layout, p Palette) {
	w, h := float64(l.Width), float64(l.Height)
	l.Add(wireframe.Rect{Box: wireframe.B(20, 60, w-20, h-110), Style: wireframe.Filled(p.MapGreen)})
	for i := 0; i < 5; i++ {
		y := 100 + float64(i)*120
		l.Add(wireframe.Line{Points: []wireframe.Point{{X: 30, Y: y}, {X: w - 30, Y: y}}, Color: p.White, Width: 8})
	}
	for i := 0; i < 4; i++ {
		x := 60 + float64(i)*90
		l.Add(wireframe.Line{Points: []wireframe.Point{{X: x, Y: 70}, {X: x, Y: h - 120}}, Color: p.White, Width: 8})
	}
}

func drawBuilding(l *wireframe.Layout, p Palette, b building, label wireframe.Point) {
	l.Add(
		wireframe.Rect{Box: b.box, Style: wireframe.FilledOutlined(p.LightBlue, p.DarkBlue, 2)},
		wireframe.T(label.X, label.Y, b.name, p.DarkBlue),
	)
}

// Distance from the pin center to its tip.
const (
	markerTip      = 30
	destinationTip = 35
)

// pin draws a map marker whose tip is `tip` below its center.
func pin(l *wireframe.Layout, p Palette, at wireframe.Point, tip float64, c wireframe.Color) {
	x, y := at.X, at.Y
	l.Add(
		wireframe.Ellipse{Box: wireframe.B(x-15, y-15, x+15, y+15), Style: wireframe.FilledOutlined(c, p.White, 3)},
		wireframe.Polygon{Points: []wireframe.Point{{X: x - 10, Y: y + 10}, {X: x + 10, Y: y + 10}, {X: x, Y: y + tip}}, Style: wireframe.Filled(c)},
	)
}

func locationDot(l *wireframe.Layout, p Palette) {
	x, y := userLocation.X, userLocation.Y
	l.Add(wireframe.Ellipse{Box: wireframe.B(x-15, y-15, x+15, y+15), Style: wireframe.FilledOutlined(p.DarkBlue, p.White, 3)})
}

// LiveMap draws the campus map with the located faculty members.
func LiveMap(p Palette) *wireframe.Layout {
	l := newScreen("live_map", p.LightGray, p)
	w, h := float64(l.Width), float64(l.Height)

	campusMap(l, p)
	for _, b := range campusBuildings {
		drawBuilding(l, p, b, wireframe.Point{X: b.box.X0 + 10, Y: b.box.Y0 + 30})
	}
	for _, m := range facultyMarkers {
		pin(l, p, m.at, markerTip, p.Status(m.status))
		l.Add(small(m.at.X-12, m.at.Y-7, truncate(m.label, 4), p.White))
	}
	locationDot(l, p)
	l.Add(wireframe.T(175, 565, "You", p.DarkBlue))

	// search overlay
	l.Add(wireframe.RoundRect{Box: wireframe.B(40, 80, w-40, 120), Radius: 10, Style: wireframe.FilledOutlined(p.White, p.LightGray, 1)})
	labeled(l, "search", 60, 93, "Dr. Santos", p.Black)
	l.Add(wireframe.T(w-80, 93, "2 min", p.Green))

	// selected faculty
	card(l, wireframe.B(40, h-180, w-40, h-115), 15, p)
	l.Add(wireframe.T(60, h-170, "Dr. Santos", p.Black))
	labeled(l, "pin", 60, h-145, "Admin Building • "+Available.String(), p.Status(Available))
	l.Add(
		wireframe.RoundRect{Box: wireframe.B(w-140, h-165, w-55, h-130), Radius: 10, Style: wireframe.Filled(p.Green)},
		wireframe.T(w-130, h-155, "Navigate", p.White),
	)

	BottomNav(l, p, 1)
	return l
}

// Navigation draws the walking directions to the Admin Building.
func Navigation(p Palette) *wireframe.Layout {
	l := newScreen("navigation", p.LightGray, p)
	w, h := float64(l.Width), float64(l.Height)

	campusMap(l, p)
	admin := building{box: campusBuildings[0].box, name: "Admin"}
	drawBuilding(l, p, admin, wireframe.Point{X: 55, Y: 150})

	l.Add(wireframe.Line{Points: route, Color: p.DarkBlue, Width: 6})
	// walker position
	at := route[1]
	l.Add(wireframe.Ellipse{Box: wireframe.B(at.X-8, at.Y-8, at.X+8, at.Y+8), Style: wireframe.Filled(p.DarkBlue)})

	// destination
	pin(l, p, destination, destinationTip, p.Green)
	glyph(l, "pin", wireframe.B(93, 153, 107, 167), p.White)
	locationDot(l, p)

	// directions
	card(l, wireframe.B(40, 80, w-40, 150), 15, p)
	l.Add(
		title(60, 90, "↑ Head North", p.DarkBlue),
		wireframe.T(60, 115, "Walk 50m to Admin Building", p.Gray),
	)

	card(l, wireframe.B(40, h-200, w-40, h-115), 15, p)
	l.Add(
		wireframe.T(60, h-190, "2 min • 150m", p.Black),
		wireframe.T(60, h-165, "Dr. Santos • Admin Building", p.Gray),
		wireframe.RoundRect{Box: wireframe.B(w-120, h-190, w-55, h-160), Radius: 8, Style: wireframe.Filled(p.Green)},
		wireframe.T(w-110, h-182, "ETA", p.White),
	)

	BottomNav(l, p, 1)
	return l
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
